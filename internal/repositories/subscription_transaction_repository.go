package repositories

import (
	"errors"
	"time"

	"lounge_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("subscription transaction not found")

type SubscriptionTransactionRepository interface {
	FindByID(id string) (*models.SubscriptionTransaction, error)
	Create(tx *models.SubscriptionTransaction) error
	Update(tx *models.SubscriptionTransaction) error
	Delete(txID string) error
	FindAll() ([]models.SubscriptionTransaction, error)
	FindByUser(userID string) ([]models.SubscriptionTransaction, error)
}

type SubscriptionTransactionRepositoryImpl struct {
	db *gorm.DB
}

func NewSubscriptionTransactionRepository(db *gorm.DB) SubscriptionTransactionRepository {
	return &SubscriptionTransactionRepositoryImpl{db: db}
}

func (r *SubscriptionTransactionRepositoryImpl) FindByID(id string) (*models.SubscriptionTransaction, error) {
	var tx models.SubscriptionTransaction
	err := r.db.First(&tx, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *SubscriptionTransactionRepositoryImpl) Create(tx *models.SubscriptionTransaction) error {
	return r.db.Create(tx).Error
}

func (r *SubscriptionTransactionRepositoryImpl) Update(tx *models.SubscriptionTransaction) error {
	result := r.db.Model(tx).Updates(map[string]interface{}{
		"subscription_type": tx.SubscriptionType,
		"amount":            tx.Amount,
		"payment_method":    tx.PaymentMethod,
		"transaction_date":  tx.TransactionDate,
		"start_date":        tx.StartDate,
		"end_date":          tx.EndDate,
		"status":            tx.Status,
		"notes":             tx.Notes,
		"updated_at":        time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *SubscriptionTransactionRepositoryImpl) Delete(txID string) error {
	result := r.db.Where("id = ?", txID).Delete(&models.SubscriptionTransaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *SubscriptionTransactionRepositoryImpl) FindAll() ([]models.SubscriptionTransaction, error) {
	var txs []models.SubscriptionTransaction
	err := r.db.Order("transaction_date DESC").Find(&txs).Error
	return txs, err
}

func (r *SubscriptionTransactionRepositoryImpl) FindByUser(userID string) ([]models.SubscriptionTransaction, error) {
	var txs []models.SubscriptionTransaction
	err := r.db.Where("user_id = ?", userID).Order("transaction_date DESC").Find(&txs).Error
	return txs, err
}
