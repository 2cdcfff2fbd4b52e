package services

import (
	"time"

	"lounge_backend/internal/auth"
	"lounge_backend/internal/email"
	"lounge_backend/internal/logger"
	"lounge_backend/internal/models"
	"lounge_backend/internal/repositories"
	"lounge_backend/internal/services/dto"
	"lounge_backend/pkg/apperrors"
)

type UserService interface {
	Create(req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetByID(userID string) (*dto.UserResponse, error)
	List(limit, offset int) ([]dto.UserResponse, int64, error)
	Update(userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(userID string) error
}

type UserServiceImpl struct {
	userRepo         repositories.UserRepository
	subscriptionRepo repositories.SubscriptionRepository
	emailProvider    email.Provider
}

func NewUserService(
	userRepo repositories.UserRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	emailProvider email.Provider,
) UserService {
	return &UserServiceImpl{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		emailProvider:    emailProvider,
	}
}

// Create - создание пользователя администратором.
// Новому пользователю уходит приветственное письмо.
func (s *UserServiceImpl) Create(req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	role := models.UserRoleUser
	if req.Role == string(models.UserRoleAdmin) {
		role = models.UserRoleAdmin
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		PhoneNumber:  req.PhoneNumber,
		IsAdmin:      req.IsAdmin,
		Role:         role,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if s.emailProvider != nil {
		go func() {
			if err := s.emailProvider.SendWelcome(user.Email, user.FirstName, user.LastName); err != nil {
				logger.Error("failed to send welcome email", "email", user.Email, "error", err)
			}
		}()
	}

	return buildUserResponse(user, s.subscriptionRepo), nil
}

// GetByID - пользователь по ID с данными действующей подписки
func (s *UserServiceImpl) GetByID(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return buildUserResponse(user, s.subscriptionRepo), nil
}

// List - список пользователей с пагинацией
func (s *UserServiceImpl) List(limit, offset int) ([]dto.UserResponse, int64, error) {
	users, err := s.userRepo.FindAll(limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	total, err := s.userRepo.CountAll()
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *buildUserResponse(&users[i], s.subscriptionRepo))
	}

	return responses, total, nil
}

// Update - частичное обновление: nil-поля не трогаем
func (s *UserServiceImpl) Update(userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil && *req.Email != user.Email {
		// Новый email не должен быть занят
		if existing, err := s.userRepo.FindByEmail(*req.Email); err == nil && existing.ID != user.ID {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		if err := auth.ValidatePassword(*req.Password); err != nil {
			return nil, apperrors.ErrWeakPassword
		}
		hashedPassword, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = hashedPassword
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if req.Role != nil {
		user.Role = models.UserRole(*req.Role)
	}

	if err := s.userRepo.Update(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return buildUserResponse(user, s.subscriptionRepo), nil
}

// Delete - удаление пользователя вместе с бронями и подписками
func (s *UserServiceImpl) Delete(userID string) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// buildUserResponse собирает ответ API. Тип и срок подписки не хранятся
// на пользователе, а выводятся запросом по действующей подписке.
// isAdmin считается так же, как при выдаче токена, чтобы ответ API
// не расходился с claims.
func buildUserResponse(user *models.User, subscriptionRepo repositories.SubscriptionRepository) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		IsAdmin:     user.HasAdminRights(),
		Role:        string(user.Role),
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}

	if subscriptionRepo != nil {
		if sub, err := subscriptionRepo.FindActiveByUser(user.ID, time.Now()); err == nil {
			subType := string(sub.Type)
			expiry := sub.EndDate
			resp.SubscriptionType = &subType
			resp.SubscriptionExpiryDate = &expiry
		}
	}

	return resp
}
