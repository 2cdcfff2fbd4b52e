package repositories

import (
	"errors"
	"time"

	"lounge_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSubscriptionNotFound = errors.New("subscription not found")

type SubscriptionRepository interface {
	FindByID(id string) (*models.Subscription, error)
	Create(subscription *models.Subscription) error
	Update(subscription *models.Subscription) error
	Delete(subscriptionID string) error
	FindAll() ([]models.Subscription, error)
	FindByUser(userID string) ([]models.Subscription, error)

	// FindActiveByUser возвращает действующую подписку пользователя:
	// is_active и срок не истек. При нескольких - с самым поздним end_date.
	FindActiveByUser(userID string, now time.Time) (*models.Subscription, error)

	// ExpireOverdue помечает неактивными все подписки с истекшим сроком.
	ExpireOverdue(now time.Time) (int64, error)
}

type SubscriptionRepositoryImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &SubscriptionRepositoryImpl{db: db}
}

func (r *SubscriptionRepositoryImpl) FindByID(id string) (*models.Subscription, error) {
	var subscription models.Subscription
	err := r.db.Preload("User").First(&subscription, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &subscription, nil
}

func (r *SubscriptionRepositoryImpl) Create(subscription *models.Subscription) error {
	return r.db.Create(subscription).Error
}

func (r *SubscriptionRepositoryImpl) Update(subscription *models.Subscription) error {
	result := r.db.Model(subscription).Updates(map[string]interface{}{
		"type":                        subscription.Type,
		"start_date":                  subscription.StartDate,
		"end_date":                    subscription.EndDate,
		"price":                       subscription.Price,
		"is_active":                   subscription.IsActive,
		"payment_id":                  subscription.PaymentID,
		"is_paid":                     subscription.IsPaid,
		"has_used_free_lounge_access": subscription.HasUsedFreeLoungeAccess,
		"updated_at":                  time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) Delete(subscriptionID string) error {
	result := r.db.Where("id = ?", subscriptionID).Delete(&models.Subscription{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) FindAll() ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	err := r.db.Preload("User").Order("created_at DESC").Find(&subscriptions).Error
	return subscriptions, err
}

func (r *SubscriptionRepositoryImpl) FindByUser(userID string) ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&subscriptions).Error
	return subscriptions, err
}

func (r *SubscriptionRepositoryImpl) FindActiveByUser(userID string, now time.Time) (*models.Subscription, error) {
	var subscription models.Subscription
	err := r.db.
		Where("user_id = ? AND is_active = ? AND end_date > ?", userID, true, now).
		Order("end_date DESC").
		First(&subscription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &subscription, nil
}

func (r *SubscriptionRepositoryImpl) ExpireOverdue(now time.Time) (int64, error) {
	result := r.db.Model(&models.Subscription{}).
		Where("is_active = ? AND end_date < ?", true, now).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": now,
		})
	return result.RowsAffected, result.Error
}
