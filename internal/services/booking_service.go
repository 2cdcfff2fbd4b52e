package services

import (
	"time"

	"lounge_backend/internal/models"
	"lounge_backend/internal/repositories"
	"lounge_backend/internal/services/dto"
	"lounge_backend/pkg/apperrors"
)

type BookingService interface {
	Create(req *dto.CreateBookingRequest) (*models.Booking, error)
	GetByID(bookingID string) (*models.Booking, error)
	List(query *dto.ListBookingsQuery) ([]models.Booking, error)
	ListByUser(userID string) ([]models.Booking, error)
	Update(bookingID string, req *dto.UpdateBookingRequest) (*models.Booking, error)
	Delete(bookingID string) error

	// Переходы жизненного цикла. Любое другое изменение статуса запрещено.
	Confirm(bookingID string) (*models.Booking, error)
	Cancel(bookingID string) (*models.Booking, error)
	Complete(bookingID string) (*models.Booking, error)
}

type BookingServiceImpl struct {
	bookingRepo      repositories.BookingRepository
	loungeRepo       repositories.LoungeRepository
	userRepo         repositories.UserRepository
	subscriptionRepo repositories.SubscriptionRepository
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	loungeRepo repositories.LoungeRepository,
	userRepo repositories.UserRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) BookingService {
	return &BookingServiceImpl{
		bookingRepo:      bookingRepo,
		loungeRepo:       loungeRepo,
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// Create - новая бронь. Без явной цены она считается по тарифу зала
// с учетом действующей подписки пользователя.
func (s *BookingServiceImpl) Create(req *dto.CreateBookingRequest) (*models.Booking, error) {
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	lounge, err := s.loungeRepo.FindByID(req.LoungeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLoungeNotFound) {
			return nil, apperrors.ErrLoungeNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	status := models.BookingStatusPending
	if req.Status != "" {
		status = models.BookingStatus(req.Status)
		if !models.ValidBookingStatus(status) {
			return nil, apperrors.ErrInvalidStatus("bookings", "invalid booking status")
		}
	}

	totalPrice := req.TotalPrice
	if totalPrice == 0 {
		totalPrice = s.priceForUser(lounge, req.UserID) * float64(req.NumberOfGuests)
	}

	booking := &models.Booking{
		UserID:          req.UserID,
		LoungeID:        req.LoungeID,
		BookingDate:     req.BookingDate,
		NumberOfGuests:  req.NumberOfGuests,
		TotalPrice:      totalPrice,
		Status:          status,
		SpecialRequests: req.SpecialRequests,
		PaymentID:       req.PaymentID,
		IsPaid:          req.IsPaid,
	}

	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetByID(booking.ID)
}

func (s *BookingServiceImpl) GetByID(bookingID string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(bookingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return booking, nil
}

// List - все брони с опциональными фильтрами по пользователю и залу
func (s *BookingServiceImpl) List(query *dto.ListBookingsQuery) ([]models.Booking, error) {
	var (
		bookings []models.Booking
		err      error
	)

	switch {
	case query != nil && query.UserID != "":
		bookings, err = s.bookingRepo.FindByUser(query.UserID)
	case query != nil && query.LoungeID != "":
		bookings, err = s.bookingRepo.FindByLounge(query.LoungeID)
	default:
		bookings, err = s.bookingRepo.FindAll()
	}

	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return bookings, nil
}

func (s *BookingServiceImpl) ListByUser(userID string) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return bookings, nil
}

// Update - частичное обновление брони. Статус отсюда не меняется,
// только через Confirm/Cancel/Complete.
func (s *BookingServiceImpl) Update(bookingID string, req *dto.UpdateBookingRequest) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(bookingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.BookingDate != nil {
		booking.BookingDate = *req.BookingDate
	}
	if req.NumberOfGuests != nil {
		booking.NumberOfGuests = *req.NumberOfGuests
	}
	if req.TotalPrice != nil {
		booking.TotalPrice = *req.TotalPrice
	}
	if req.SpecialRequests != nil {
		booking.SpecialRequests = *req.SpecialRequests
	}
	if req.PaymentID != nil {
		booking.PaymentID = *req.PaymentID
	}
	if req.IsPaid != nil {
		booking.IsPaid = *req.IsPaid
	}

	if err := s.bookingRepo.Update(booking); err != nil {
		if apperrors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return booking, nil
}

func (s *BookingServiceImpl) Delete(bookingID string) error {
	if err := s.bookingRepo.Delete(bookingID); err != nil {
		if apperrors.Is(err, repositories.ErrBookingNotFound) {
			return apperrors.ErrBookingNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Confirm - PENDING -> CONFIRMED
func (s *BookingServiceImpl) Confirm(bookingID string) (*models.Booking, error) {
	return s.transition(bookingID, models.BookingStatusConfirmed, func(b *models.Booking) error {
		if !b.CanConfirm() {
			return apperrors.ErrBookingNotPending
		}
		return nil
	})
}

// Cancel - переход в CANCELLED из любого статуса, кроме COMPLETED
func (s *BookingServiceImpl) Cancel(bookingID string) (*models.Booking, error) {
	return s.transition(bookingID, models.BookingStatusCancelled, func(b *models.Booking) error {
		if !b.CanCancel() {
			return apperrors.ErrBookingCompleted
		}
		return nil
	})
}

// Complete - CONFIRMED -> COMPLETED
func (s *BookingServiceImpl) Complete(bookingID string) (*models.Booking, error) {
	return s.transition(bookingID, models.BookingStatusCompleted, func(b *models.Booking) error {
		if !b.CanComplete() {
			return apperrors.ErrBookingNotConfirmed
		}
		return nil
	})
}

// transition проверяет допустимость перехода и сохраняет новый статус
func (s *BookingServiceImpl) transition(bookingID string, to models.BookingStatus, guard func(*models.Booking) error) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(bookingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := guard(booking); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.UpdateStatus(bookingID, to); err != nil {
		return nil, apperrors.InternalError(err)
	}

	booking.Status = to
	return booking, nil
}

// priceForUser - цена за гостя по тарифу действующей подписки
func (s *BookingServiceImpl) priceForUser(lounge *models.Lounge, userID string) float64 {
	sub, err := s.subscriptionRepo.FindActiveByUser(userID, time.Now())
	if err != nil {
		return lounge.Price
	}
	return lounge.PriceFor(sub.Type)
}
