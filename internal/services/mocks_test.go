package services

import (
	"time"

	"lounge_backend/internal/models"
	"lounge_backend/internal/repositories"
)

// Моки репозиториев для unit-тестов сервисов. Поведение задается
// func-полями; незаданный метод возвращает "не найдено" или пустой срез.

type mockUserRepo struct {
	findByIDFunc    func(id string) (*models.User, error)
	findByEmailFunc func(email string) (*models.User, error)
	createFunc      func(user *models.User) error
	updateFunc      func(user *models.User) error
}

func (m *mockUserRepo) FindByID(id string) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(id)
	}
	return nil, repositories.ErrUserNotFound
}

func (m *mockUserRepo) FindByEmail(email string) (*models.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(email)
	}
	return nil, repositories.ErrUserNotFound
}

func (m *mockUserRepo) Create(user *models.User) error {
	if m.createFunc != nil {
		return m.createFunc(user)
	}
	return nil
}

func (m *mockUserRepo) Update(user *models.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(user)
	}
	return nil
}

func (m *mockUserRepo) Delete(userID string) error { return nil }

func (m *mockUserRepo) FindAll(limit, offset int) ([]models.User, error) {
	return []models.User{}, nil
}

func (m *mockUserRepo) CountAll() (int64, error) { return 0, nil }

type mockLoungeRepo struct {
	findByIDFunc func(id string) (*models.Lounge, error)
}

func (m *mockLoungeRepo) FindByID(id string) (*models.Lounge, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(id)
	}
	return nil, repositories.ErrLoungeNotFound
}

func (m *mockLoungeRepo) Create(lounge *models.Lounge) error { return nil }
func (m *mockLoungeRepo) Update(lounge *models.Lounge) error { return nil }
func (m *mockLoungeRepo) Delete(loungeID string) error       { return nil }

func (m *mockLoungeRepo) FindAll() ([]models.Lounge, error) { return []models.Lounge{}, nil }

func (m *mockLoungeRepo) FindByAirport(airport string) ([]models.Lounge, error) {
	return []models.Lounge{}, nil
}

func (m *mockLoungeRepo) FindByCountry(country string) ([]models.Lounge, error) {
	return []models.Lounge{}, nil
}

func (m *mockLoungeRepo) Search(query string) ([]models.Lounge, error) {
	return []models.Lounge{}, nil
}

func (m *mockLoungeRepo) CountAll() (int64, error) { return 0, nil }

func (m *mockLoungeRepo) CountByCountry() ([]repositories.GroupCount, error) {
	return []repositories.GroupCount{}, nil
}

func (m *mockLoungeRepo) CountByAirport() ([]repositories.GroupCount, error) {
	return []repositories.GroupCount{}, nil
}

type mockBookingRepo struct {
	findByIDFunc     func(id string) (*models.Booking, error)
	createFunc       func(booking *models.Booking) error
	updateStatusFunc func(bookingID string, status models.BookingStatus) error
	findByUserFunc   func(userID string) ([]models.Booking, error)
}

func (m *mockBookingRepo) FindByID(id string) (*models.Booking, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(id)
	}
	return nil, repositories.ErrBookingNotFound
}

func (m *mockBookingRepo) Create(booking *models.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(booking)
	}
	return nil
}

func (m *mockBookingRepo) Update(booking *models.Booking) error { return nil }

func (m *mockBookingRepo) UpdateStatus(bookingID string, status models.BookingStatus) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(bookingID, status)
	}
	return nil
}

func (m *mockBookingRepo) Delete(bookingID string) error { return nil }

func (m *mockBookingRepo) FindAll() ([]models.Booking, error) { return []models.Booking{}, nil }

func (m *mockBookingRepo) FindByUser(userID string) ([]models.Booking, error) {
	if m.findByUserFunc != nil {
		return m.findByUserFunc(userID)
	}
	return []models.Booking{}, nil
}

func (m *mockBookingRepo) FindByLounge(loungeID string) ([]models.Booking, error) {
	return []models.Booking{}, nil
}

func (m *mockBookingRepo) CountByLounge(loungeID string) (int64, error) { return 0, nil }

func (m *mockBookingRepo) CountByLoungeAndStatus(loungeID string, status models.BookingStatus) (int64, error) {
	return 0, nil
}

type mockSubscriptionRepo struct {
	findByIDFunc         func(id string) (*models.Subscription, error)
	createFunc           func(subscription *models.Subscription) error
	updateFunc           func(subscription *models.Subscription) error
	findActiveByUserFunc func(userID string, now time.Time) (*models.Subscription, error)
	expireOverdueFunc    func(now time.Time) (int64, error)
}

func (m *mockSubscriptionRepo) FindByID(id string) (*models.Subscription, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(id)
	}
	return nil, repositories.ErrSubscriptionNotFound
}

func (m *mockSubscriptionRepo) Create(subscription *models.Subscription) error {
	if m.createFunc != nil {
		return m.createFunc(subscription)
	}
	return nil
}

func (m *mockSubscriptionRepo) Update(subscription *models.Subscription) error {
	if m.updateFunc != nil {
		return m.updateFunc(subscription)
	}
	return nil
}

func (m *mockSubscriptionRepo) Delete(subscriptionID string) error { return nil }

func (m *mockSubscriptionRepo) FindAll() ([]models.Subscription, error) {
	return []models.Subscription{}, nil
}

func (m *mockSubscriptionRepo) FindByUser(userID string) ([]models.Subscription, error) {
	return []models.Subscription{}, nil
}

func (m *mockSubscriptionRepo) FindActiveByUser(userID string, now time.Time) (*models.Subscription, error) {
	if m.findActiveByUserFunc != nil {
		return m.findActiveByUserFunc(userID, now)
	}
	return nil, repositories.ErrSubscriptionNotFound
}

func (m *mockSubscriptionRepo) ExpireOverdue(now time.Time) (int64, error) {
	if m.expireOverdueFunc != nil {
		return m.expireOverdueFunc(now)
	}
	return 0, nil
}

type mockTransactionRepo struct {
	findByIDFunc func(id string) (*models.SubscriptionTransaction, error)
	createFunc   func(tx *models.SubscriptionTransaction) error
	updateFunc   func(tx *models.SubscriptionTransaction) error
}

func (m *mockTransactionRepo) FindByID(id string) (*models.SubscriptionTransaction, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(id)
	}
	return nil, repositories.ErrTransactionNotFound
}

func (m *mockTransactionRepo) Create(tx *models.SubscriptionTransaction) error {
	if m.createFunc != nil {
		return m.createFunc(tx)
	}
	return nil
}

func (m *mockTransactionRepo) Update(tx *models.SubscriptionTransaction) error {
	if m.updateFunc != nil {
		return m.updateFunc(tx)
	}
	return nil
}

func (m *mockTransactionRepo) Delete(txID string) error { return nil }

func (m *mockTransactionRepo) FindAll() ([]models.SubscriptionTransaction, error) {
	return []models.SubscriptionTransaction{}, nil
}

func (m *mockTransactionRepo) FindByUser(userID string) ([]models.SubscriptionTransaction, error) {
	return []models.SubscriptionTransaction{}, nil
}
