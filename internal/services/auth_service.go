package services

import (
	"lounge_backend/internal/auth"
	"lounge_backend/internal/email"
	"lounge_backend/internal/logger"
	"lounge_backend/internal/models"
	"lounge_backend/internal/repositories"
	"lounge_backend/internal/services/dto"
	"lounge_backend/pkg/apperrors"
)

// Пути редиректа после входа, зависят от прав пользователя
const (
	redirectAdmin = "/dashboard"
	redirectUser  = "/lounges"
)

type AuthService interface {
	Signup(req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	subscriptionRepo repositories.SubscriptionRepository
	emailProvider    email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		emailProvider:    emailProvider,
	}
}

// Signup - саморегистрация пользователя
func (s *AuthServiceImpl) Signup(req *dto.SignupRequest) (*dto.AuthResponse, error) {
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

	s.sendWelcomeEmail(user)

	return s.buildAuthResponse(user)
}

// Login - аутентификация по email и паролю
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

// buildAuthResponse выдает токен и собирает ответ с редиректом
func (s *AuthServiceImpl) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, user.Email, string(user.Role), user.HasAdminRights())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	redirect := redirectUser
	if user.HasAdminRights() {
		redirect = redirectAdmin
	}

	return &dto.AuthResponse{
		User:     buildUserResponse(user, s.subscriptionRepo),
		Token:    token,
		Redirect: redirect,
	}, nil
}

// sendWelcomeEmail отправляет приветственное письмо в фоне.
// Ошибка отправки логируется и не влияет на регистрацию.
func (s *AuthServiceImpl) sendWelcomeEmail(user *models.User) {
	if s.emailProvider == nil {
		return
	}

	go func() {
		if err := s.emailProvider.SendWelcome(user.Email, user.FirstName, user.LastName); err != nil {
			logger.Error("failed to send welcome email", "email", user.Email, "error", err)
		}
	}()
}
