package services

import (
	"testing"
	"time"

	"lounge_backend/internal/models"
	"lounge_backend/internal/services/dto"
	"lounge_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeSubscription(endDate time.Time) *models.Subscription {
	return &models.Subscription{
		BaseModel: models.BaseModel{ID: "sub-1"},
		UserID:    "user-1",
		Type:      models.SubscriptionTypeClassic,
		StartDate: endDate.AddDate(0, -1, 0),
		EndDate:   endDate,
		Price:     5000,
		IsActive:  true,
	}
}

// TestSubscriptionCheckStatus_Active - для действующей подписки
// остаток считается с округлением неполного дня вверх
func TestSubscriptionCheckStatus_Active(t *testing.T) {
	subscriptionRepo := &mockSubscriptionRepo{
		findByIDFunc: func(id string) (*models.Subscription, error) {
			return activeSubscription(time.Now().Add(10*24*time.Hour + time.Hour)), nil
		},
	}

	service := NewSubscriptionService(subscriptionRepo, &mockTransactionRepo{}, &mockUserRepo{})

	status, err := service.CheckStatus("sub-1")
	require.NoError(t, err)

	assert.True(t, status.IsActive)
	assert.Equal(t, 11, status.DaysRemaining)
}

// TestSubscriptionCheckStatus_Expired - истекшая подписка всегда {false, 0}
func TestSubscriptionCheckStatus_Expired(t *testing.T) {
	subscriptionRepo := &mockSubscriptionRepo{
		findByIDFunc: func(id string) (*models.Subscription, error) {
			return activeSubscription(time.Now().Add(-time.Hour)), nil
		},
	}

	service := NewSubscriptionService(subscriptionRepo, &mockTransactionRepo{}, &mockUserRepo{})

	status, err := service.CheckStatus("sub-1")
	require.NoError(t, err)

	assert.False(t, status.IsActive)
	assert.Equal(t, 0, status.DaysRemaining)
}

// TestSubscriptionCheckStatus_Deactivated - отмененная подписка не действует,
// даже если срок еще не вышел
func TestSubscriptionCheckStatus_Deactivated(t *testing.T) {
	subscriptionRepo := &mockSubscriptionRepo{
		findByIDFunc: func(id string) (*models.Subscription, error) {
			sub := activeSubscription(time.Now().AddDate(0, 1, 0))
			sub.IsActive = false
			return sub, nil
		},
	}

	service := NewSubscriptionService(subscriptionRepo, &mockTransactionRepo{}, &mockUserRepo{})

	status, err := service.CheckStatus("sub-1")
	require.NoError(t, err)

	assert.False(t, status.IsActive)
	assert.Equal(t, 0, status.DaysRemaining)
}

// TestSubscriptionCancel - отмена деактивирует, повторная отмена - ошибка
func TestSubscriptionCancel(t *testing.T) {
	sub := activeSubscription(time.Now().AddDate(0, 1, 0))

	subscriptionRepo := &mockSubscriptionRepo{
		findByIDFunc: func(id string) (*models.Subscription, error) {
			return sub, nil
		},
	}

	service := NewSubscriptionService(subscriptionRepo, &mockTransactionRepo{}, &mockUserRepo{})

	cancelled, err := service.Cancel("sub-1")
	require.NoError(t, err)
	assert.False(t, cancelled.IsActive)

	_, err = service.Cancel("sub-1")
	assert.ErrorIs(t, err, apperrors.ErrSubscriptionInactive)
}

// TestSubscriptionCreate_InvalidType - неизвестный тип подписки отклоняется
func TestSubscriptionCreate_InvalidType(t *testing.T) {
	userRepo := &mockUserRepo{
		findByIDFunc: func(id string) (*models.User, error) {
			return &models.User{BaseModel: models.BaseModel{ID: id}}, nil
		},
	}

	service := NewSubscriptionService(&mockSubscriptionRepo{}, &mockTransactionRepo{}, userRepo)

	_, err := service.Create(&dto.CreateSubscriptionRequest{
		UserID:    "user-1",
		Type:      "GOLD",
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 1, 0),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidSubscriptionTy)
}

// TestCreateTransaction_OpensSubscription - платеж без действующей подписки
// открывает новую по данным транзакции
func TestCreateTransaction_OpensSubscription(t *testing.T) {
	var createdSub *models.Subscription

	userRepo := &mockUserRepo{
		findByIDFunc: func(id string) (*models.User, error) {
			return &models.User{BaseModel: models.BaseModel{ID: id}}, nil
		},
	}
	subscriptionRepo := &mockSubscriptionRepo{
		createFunc: func(sub *models.Subscription) error {
			createdSub = sub
			return nil
		},
	}
	transactionRepo := &mockTransactionRepo{
		createFunc: func(tx *models.SubscriptionTransaction) error {
			tx.ID = "tx-1"
			return nil
		},
	}

	service := NewSubscriptionService(subscriptionRepo, transactionRepo, userRepo)

	startDate := time.Now()
	endDate := startDate.AddDate(0, 1, 0)

	tx, err := service.CreateTransaction(&dto.CreateTransactionRequest{
		UserID:           "user-1",
		SubscriptionType: "PREMIUM",
		Amount:           9000,
		PaymentMethod:    "card",
		StartDate:        startDate,
		EndDate:          endDate,
		Status:           "completed",
	})
	require.NoError(t, err)
	require.NotNil(t, createdSub)

	assert.Equal(t, models.TransactionStatusCompleted, tx.Status)
	assert.Equal(t, "user-1", createdSub.UserID)
	assert.Equal(t, models.SubscriptionTypePremium, createdSub.Type)
	assert.Equal(t, 9000.0, createdSub.Price)
	assert.Equal(t, "tx-1", createdSub.PaymentID)
	assert.True(t, createdSub.IsActive)
	assert.True(t, createdSub.IsPaid)
}

// TestCreateTransaction_ExtendsSubscription - платеж при действующей
// подписке продлевает ее, а не создает новую
func TestCreateTransaction_ExtendsSubscription(t *testing.T) {
	existing := activeSubscription(time.Now().AddDate(0, 0, 5))

	var (
		updatedSub  *models.Subscription
		createCalls int
	)

	userRepo := &mockUserRepo{
		findByIDFunc: func(id string) (*models.User, error) {
			return &models.User{BaseModel: models.BaseModel{ID: id}}, nil
		},
	}
	subscriptionRepo := &mockSubscriptionRepo{
		findActiveByUserFunc: func(userID string, now time.Time) (*models.Subscription, error) {
			return existing, nil
		},
		createFunc: func(sub *models.Subscription) error {
			createCalls++
			return nil
		},
		updateFunc: func(sub *models.Subscription) error {
			updatedSub = sub
			return nil
		},
	}
	transactionRepo := &mockTransactionRepo{
		createFunc: func(tx *models.SubscriptionTransaction) error {
			tx.ID = "tx-2"
			return nil
		},
	}

	service := NewSubscriptionService(subscriptionRepo, transactionRepo, userRepo)

	newEndDate := time.Now().AddDate(0, 1, 5)

	_, err := service.CreateTransaction(&dto.CreateTransactionRequest{
		UserID:           "user-1",
		SubscriptionType: "PREMIUM",
		Amount:           9000,
		PaymentMethod:    "card",
		StartDate:        time.Now(),
		EndDate:          newEndDate,
		Status:           "completed",
	})
	require.NoError(t, err)
	require.NotNil(t, updatedSub)

	assert.Equal(t, 0, createCalls, "новая подписка не должна создаваться")
	assert.Equal(t, models.SubscriptionTypePremium, updatedSub.Type)
	assert.True(t, newEndDate.Equal(updatedSub.EndDate))
	assert.Equal(t, "tx-2", updatedSub.PaymentID)
}

// TestCreateTransaction_UnknownUser - ссылка на несуществующего пользователя
func TestCreateTransaction_UnknownUser(t *testing.T) {
	service := NewSubscriptionService(&mockSubscriptionRepo{}, &mockTransactionRepo{}, &mockUserRepo{})

	_, err := service.CreateTransaction(&dto.CreateTransactionRequest{
		UserID:           "missing",
		SubscriptionType: "CLASSIC",
		Amount:           5000,
		PaymentMethod:    "card",
		StartDate:        time.Now(),
		EndDate:          time.Now().AddDate(0, 1, 0),
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

// TestUpdateTransaction_DoesNotTouchSubscription - правка журнала
// не влияет на подписку
func TestUpdateTransaction_DoesNotTouchSubscription(t *testing.T) {
	var subscriptionWrites int

	subscriptionRepo := &mockSubscriptionRepo{
		createFunc: func(sub *models.Subscription) error {
			subscriptionWrites++
			return nil
		},
		updateFunc: func(sub *models.Subscription) error {
			subscriptionWrites++
			return nil
		},
	}
	transactionRepo := &mockTransactionRepo{
		findByIDFunc: func(id string) (*models.SubscriptionTransaction, error) {
			return &models.SubscriptionTransaction{
				BaseModel:        models.BaseModel{ID: id},
				UserID:           "user-1",
				SubscriptionType: models.SubscriptionTypeClassic,
				Status:           models.TransactionStatusPending,
			}, nil
		},
	}

	service := NewSubscriptionService(subscriptionRepo, transactionRepo, &mockUserRepo{})

	newStatus := "failed"
	tx, err := service.UpdateTransaction("tx-1", &dto.UpdateTransactionRequest{Status: &newStatus})
	require.NoError(t, err)

	assert.Equal(t, models.TransactionStatusFailed, tx.Status)
	assert.Equal(t, 0, subscriptionWrites)
}
