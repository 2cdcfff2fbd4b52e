package services

import (
	"math"
	"time"

	"lounge_backend/internal/models"
	"lounge_backend/internal/repositories"
	"lounge_backend/internal/services/dto"
	"lounge_backend/pkg/apperrors"
)

type SubscriptionService interface {
	Create(req *dto.CreateSubscriptionRequest) (*models.Subscription, error)
	GetByID(subscriptionID string) (*models.Subscription, error)
	List() ([]models.Subscription, error)
	ListByUser(userID string) ([]models.Subscription, error)
	Update(subscriptionID string, req *dto.UpdateSubscriptionRequest) (*models.Subscription, error)
	Delete(subscriptionID string) error
	Cancel(subscriptionID string) (*models.Subscription, error)
	CheckStatus(subscriptionID string) (*dto.SubscriptionStatusResponse, error)

	// Журнал платежей
	CreateTransaction(req *dto.CreateTransactionRequest) (*models.SubscriptionTransaction, error)
	GetTransaction(txID string) (*models.SubscriptionTransaction, error)
	ListTransactions() ([]models.SubscriptionTransaction, error)
	ListTransactionsByUser(userID string) ([]models.SubscriptionTransaction, error)
	UpdateTransaction(txID string, req *dto.UpdateTransactionRequest) (*models.SubscriptionTransaction, error)
	DeleteTransaction(txID string) error
}

type SubscriptionServiceImpl struct {
	subscriptionRepo repositories.SubscriptionRepository
	transactionRepo  repositories.SubscriptionTransactionRepository
	userRepo         repositories.UserRepository
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	transactionRepo repositories.SubscriptionTransactionRepository,
	userRepo repositories.UserRepository,
) SubscriptionService {
	return &SubscriptionServiceImpl{
		subscriptionRepo: subscriptionRepo,
		transactionRepo:  transactionRepo,
		userRepo:         userRepo,
	}
}

// Create - открытие подписки для пользователя
func (s *SubscriptionServiceImpl) Create(req *dto.CreateSubscriptionRequest) (*models.Subscription, error) {
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	subType := models.SubscriptionType(req.Type)
	if !models.ValidSubscriptionType(subType) {
		return nil, apperrors.ErrInvalidSubscriptionTy
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	subscription := &models.Subscription{
		UserID:    req.UserID,
		Type:      subType,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Price:     req.Price,
		IsActive:  isActive,
		PaymentID: req.PaymentID,
		IsPaid:    req.IsPaid,
	}

	if err := s.subscriptionRepo.Create(subscription); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return subscription, nil
}

func (s *SubscriptionServiceImpl) GetByID(subscriptionID string) (*models.Subscription, error) {
	subscription, err := s.subscriptionRepo.FindByID(subscriptionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.ErrSubscriptionNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return subscription, nil
}

func (s *SubscriptionServiceImpl) List() ([]models.Subscription, error) {
	subscriptions, err := s.subscriptionRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return subscriptions, nil
}

func (s *SubscriptionServiceImpl) ListByUser(userID string) ([]models.Subscription, error) {
	subscriptions, err := s.subscriptionRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return subscriptions, nil
}

// Update - частичное обновление подписки
func (s *SubscriptionServiceImpl) Update(subscriptionID string, req *dto.UpdateSubscriptionRequest) (*models.Subscription, error) {
	subscription, err := s.subscriptionRepo.FindByID(subscriptionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.ErrSubscriptionNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Type != nil {
		subType := models.SubscriptionType(*req.Type)
		if !models.ValidSubscriptionType(subType) {
			return nil, apperrors.ErrInvalidSubscriptionTy
		}
		subscription.Type = subType
	}
	if req.StartDate != nil {
		subscription.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		subscription.EndDate = *req.EndDate
	}
	if req.Price != nil {
		subscription.Price = *req.Price
	}
	if req.IsActive != nil {
		subscription.IsActive = *req.IsActive
	}
	if req.PaymentID != nil {
		subscription.PaymentID = *req.PaymentID
	}
	if req.IsPaid != nil {
		subscription.IsPaid = *req.IsPaid
	}

	if err := s.subscriptionRepo.Update(subscription); err != nil {
		if apperrors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.ErrSubscriptionNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return subscription, nil
}

func (s *SubscriptionServiceImpl) Delete(subscriptionID string) error {
	if err := s.subscriptionRepo.Delete(subscriptionID); err != nil {
		if apperrors.Is(err, repositories.ErrSubscriptionNotFound) {
			return apperrors.ErrSubscriptionNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Cancel - деактивация подписки. Повторная отмена - ошибка.
func (s *SubscriptionServiceImpl) Cancel(subscriptionID string) (*models.Subscription, error) {
	subscription, err := s.subscriptionRepo.FindByID(subscriptionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.ErrSubscriptionNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !subscription.IsActive {
		return nil, apperrors.ErrSubscriptionInactive
	}

	subscription.IsActive = false
	if err := s.subscriptionRepo.Update(subscription); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return subscription, nil
}

// CheckStatus - действует ли подписка и сколько дней осталось.
// Для неактивной или истекшей подписки daysRemaining всегда 0.
func (s *SubscriptionServiceImpl) CheckStatus(subscriptionID string) (*dto.SubscriptionStatusResponse, error) {
	subscription, err := s.subscriptionRepo.FindByID(subscriptionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.ErrSubscriptionNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	if !subscription.IsActive || subscription.Expired(now) {
		return &dto.SubscriptionStatusResponse{IsActive: false, DaysRemaining: 0}, nil
	}

	// Неполный день считается целым
	days := int(math.Ceil(subscription.EndDate.Sub(now).Hours() / 24))

	return &dto.SubscriptionStatusResponse{
		IsActive:      true,
		DaysRemaining: days,
	}, nil
}

// CreateTransaction - запись платежа в журнал. Побочный эффект:
// открывает новую или продлевает действующую подписку пользователя.
func (s *SubscriptionServiceImpl) CreateTransaction(req *dto.CreateTransactionRequest) (*models.SubscriptionTransaction, error) {
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	subType := models.SubscriptionType(req.SubscriptionType)
	if !models.ValidSubscriptionType(subType) {
		return nil, apperrors.ErrInvalidSubscriptionTy
	}

	txDate := time.Now()
	if req.TransactionDate != nil {
		txDate = *req.TransactionDate
	}

	status := models.TransactionStatusPending
	if req.Status != "" {
		status = models.TransactionStatus(req.Status)
	}

	tx := &models.SubscriptionTransaction{
		UserID:           req.UserID,
		SubscriptionType: subType,
		Amount:           req.Amount,
		PaymentMethod:    req.PaymentMethod,
		TransactionDate:  txDate,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Status:           status,
		Notes:            req.Notes,
	}

	if err := s.transactionRepo.Create(tx); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.applyTransactionToSubscription(tx); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return tx, nil
}

// applyTransactionToSubscription продлевает действующую подписку
// или открывает новую по данным платежа
func (s *SubscriptionServiceImpl) applyTransactionToSubscription(tx *models.SubscriptionTransaction) error {
	existing, err := s.subscriptionRepo.FindActiveByUser(tx.UserID, time.Now())
	if err != nil {
		if !apperrors.Is(err, repositories.ErrSubscriptionNotFound) {
			return err
		}

		subscription := &models.Subscription{
			UserID:    tx.UserID,
			Type:      tx.SubscriptionType,
			StartDate: tx.StartDate,
			EndDate:   tx.EndDate,
			Price:     tx.Amount,
			IsActive:  true,
			PaymentID: tx.ID,
			IsPaid:    tx.Status == models.TransactionStatusCompleted,
		}
		return s.subscriptionRepo.Create(subscription)
	}

	existing.Type = tx.SubscriptionType
	existing.EndDate = tx.EndDate
	existing.Price = tx.Amount
	existing.PaymentID = tx.ID
	existing.IsPaid = tx.Status == models.TransactionStatusCompleted
	return s.subscriptionRepo.Update(existing)
}

func (s *SubscriptionServiceImpl) GetTransaction(txID string) (*models.SubscriptionTransaction, error) {
	tx, err := s.transactionRepo.FindByID(txID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return tx, nil
}

func (s *SubscriptionServiceImpl) ListTransactions() ([]models.SubscriptionTransaction, error) {
	txs, err := s.transactionRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return txs, nil
}

func (s *SubscriptionServiceImpl) ListTransactionsByUser(userID string) ([]models.SubscriptionTransaction, error) {
	txs, err := s.transactionRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return txs, nil
}

// UpdateTransaction - правка записи журнала. На подписку не влияет.
func (s *SubscriptionServiceImpl) UpdateTransaction(txID string, req *dto.UpdateTransactionRequest) (*models.SubscriptionTransaction, error) {
	tx, err := s.transactionRepo.FindByID(txID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.SubscriptionType != nil {
		subType := models.SubscriptionType(*req.SubscriptionType)
		if !models.ValidSubscriptionType(subType) {
			return nil, apperrors.ErrInvalidSubscriptionTy
		}
		tx.SubscriptionType = subType
	}
	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.PaymentMethod != nil {
		tx.PaymentMethod = *req.PaymentMethod
	}
	if req.TransactionDate != nil {
		tx.TransactionDate = *req.TransactionDate
	}
	if req.StartDate != nil {
		tx.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		tx.EndDate = *req.EndDate
	}
	if req.Status != nil {
		tx.Status = models.TransactionStatus(*req.Status)
	}
	if req.Notes != nil {
		tx.Notes = *req.Notes
	}

	if err := s.transactionRepo.Update(tx); err != nil {
		if apperrors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return tx, nil
}

func (s *SubscriptionServiceImpl) DeleteTransaction(txID string) error {
	if err := s.transactionRepo.Delete(txID); err != nil {
		if apperrors.Is(err, repositories.ErrTransactionNotFound) {
			return apperrors.ErrTransactionNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
