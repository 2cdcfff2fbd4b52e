package repositories

import (
	"errors"
	"time"

	"lounge_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository interface {
	FindByID(id string) (*models.Booking, error)
	Create(booking *models.Booking) error
	Update(booking *models.Booking) error
	UpdateStatus(bookingID string, status models.BookingStatus) error
	Delete(bookingID string) error
	FindAll() ([]models.Booking, error)
	FindByUser(userID string) ([]models.Booking, error)
	FindByLounge(loungeID string) ([]models.Booking, error)
	CountByLounge(loungeID string) (int64, error)
	CountByLoungeAndStatus(loungeID string, status models.BookingStatus) (int64, error)
}

type BookingRepositoryImpl struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &BookingRepositoryImpl{db: db}
}

func (r *BookingRepositoryImpl) FindByID(id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.Preload("User").Preload("Lounge").
		First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

func (r *BookingRepositoryImpl) Update(booking *models.Booking) error {
	result := r.db.Model(booking).Updates(map[string]interface{}{
		"booking_date":     booking.BookingDate,
		"number_of_guests": booking.NumberOfGuests,
		"total_price":      booking.TotalPrice,
		"status":           booking.Status,
		"special_requests": booking.SpecialRequests,
		"payment_id":       booking.PaymentID,
		"is_paid":          booking.IsPaid,
		"updated_at":       time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepositoryImpl) UpdateStatus(bookingID string, status models.BookingStatus) error {
	result := r.db.Model(&models.Booking{}).Where("id = ?", bookingID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepositoryImpl) Delete(bookingID string) error {
	result := r.db.Where("id = ?", bookingID).Delete(&models.Booking{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepositoryImpl) FindAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("User").Preload("Lounge").
		Order("booking_date DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) FindByUser(userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Lounge").
		Where("user_id = ?", userID).
		Order("booking_date DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) FindByLounge(loungeID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("User").
		Where("lounge_id = ?", loungeID).
		Order("booking_date DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) CountByLounge(loungeID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).Where("lounge_id = ?", loungeID).Count(&count).Error
	return count, err
}

func (r *BookingRepositoryImpl) CountByLoungeAndStatus(loungeID string, status models.BookingStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).
		Where("lounge_id = ? AND status = ?", loungeID, status).
		Count(&count).Error
	return count, err
}
