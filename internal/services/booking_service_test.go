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

func newBookingFixture(status models.BookingStatus) *models.Booking {
	return &models.Booking{
		BaseModel:      models.BaseModel{ID: "booking-1"},
		UserID:         "user-1",
		LoungeID:       "lounge-1",
		BookingDate:    time.Now().Add(24 * time.Hour),
		NumberOfGuests: 2,
		TotalPrice:     100,
		Status:         status,
	}
}

// TestBookingCreate_DefaultStatusAndPrice - без явных цены и статуса
// бронь создается в PENDING, цена считается по тарифу подписки
func TestBookingCreate_DefaultStatusAndPrice(t *testing.T) {
	var created *models.Booking

	userRepo := &mockUserRepo{
		findByIDFunc: func(id string) (*models.User, error) {
			return &models.User{BaseModel: models.BaseModel{ID: id}}, nil
		},
	}
	loungeRepo := &mockLoungeRepo{
		findByIDFunc: func(id string) (*models.Lounge, error) {
			return &models.Lounge{
				BaseModel:            models.BaseModel{ID: id},
				Price:                100,
				ClassicDiscountPrice: 60,
				PremiumDiscountPrice: 40,
			}, nil
		},
	}
	subscriptionRepo := &mockSubscriptionRepo{
		findActiveByUserFunc: func(userID string, now time.Time) (*models.Subscription, error) {
			return &models.Subscription{Type: models.SubscriptionTypePremium, IsActive: true}, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		createFunc: func(b *models.Booking) error {
			b.ID = "booking-1"
			created = b
			return nil
		},
		findByIDFunc: func(id string) (*models.Booking, error) {
			return created, nil
		},
	}

	service := NewBookingService(bookingRepo, loungeRepo, userRepo, subscriptionRepo)

	booking, err := service.Create(&dto.CreateBookingRequest{
		UserID:         "user-1",
		LoungeID:       "lounge-1",
		BookingDate:    time.Now().Add(24 * time.Hour),
		NumberOfGuests: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusPending, booking.Status)
	// 3 гостя по премиум-тарифу 40
	assert.Equal(t, 120.0, booking.TotalPrice)
}

// TestBookingCreate_NoSubscriptionFullPrice - без действующей подписки
// берется полная цена зала
func TestBookingCreate_NoSubscriptionFullPrice(t *testing.T) {
	var created *models.Booking

	userRepo := &mockUserRepo{
		findByIDFunc: func(id string) (*models.User, error) {
			return &models.User{BaseModel: models.BaseModel{ID: id}}, nil
		},
	}
	loungeRepo := &mockLoungeRepo{
		findByIDFunc: func(id string) (*models.Lounge, error) {
			return &models.Lounge{
				BaseModel:            models.BaseModel{ID: id},
				Price:                100,
				ClassicDiscountPrice: 60,
				PremiumDiscountPrice: 40,
			}, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		createFunc: func(b *models.Booking) error {
			b.ID = "booking-1"
			created = b
			return nil
		},
		findByIDFunc: func(id string) (*models.Booking, error) {
			return created, nil
		},
	}

	service := NewBookingService(bookingRepo, loungeRepo, userRepo, &mockSubscriptionRepo{})

	booking, err := service.Create(&dto.CreateBookingRequest{
		UserID:         "user-1",
		LoungeID:       "lounge-1",
		BookingDate:    time.Now().Add(24 * time.Hour),
		NumberOfGuests: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 200.0, booking.TotalPrice)
}

// TestBookingCreate_ExplicitPriceKept - явная цена не пересчитывается
func TestBookingCreate_ExplicitPriceKept(t *testing.T) {
	var created *models.Booking

	userRepo := &mockUserRepo{
		findByIDFunc: func(id string) (*models.User, error) {
			return &models.User{BaseModel: models.BaseModel{ID: id}}, nil
		},
	}
	loungeRepo := &mockLoungeRepo{
		findByIDFunc: func(id string) (*models.Lounge, error) {
			return &models.Lounge{BaseModel: models.BaseModel{ID: id}, Price: 100}, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		createFunc: func(b *models.Booking) error {
			b.ID = "booking-1"
			created = b
			return nil
		},
		findByIDFunc: func(id string) (*models.Booking, error) {
			return created, nil
		},
	}

	service := NewBookingService(bookingRepo, loungeRepo, userRepo, &mockSubscriptionRepo{})

	booking, err := service.Create(&dto.CreateBookingRequest{
		UserID:         "user-1",
		LoungeID:       "lounge-1",
		BookingDate:    time.Now().Add(24 * time.Hour),
		NumberOfGuests: 2,
		TotalPrice:     55,
	})
	require.NoError(t, err)
	assert.Equal(t, 55.0, booking.TotalPrice)
}

// TestBookingCreate_UnknownLounge - несуществующий зал дает 404
func TestBookingCreate_UnknownLounge(t *testing.T) {
	userRepo := &mockUserRepo{
		findByIDFunc: func(id string) (*models.User, error) {
			return &models.User{BaseModel: models.BaseModel{ID: id}}, nil
		},
	}

	service := NewBookingService(&mockBookingRepo{}, &mockLoungeRepo{}, userRepo, &mockSubscriptionRepo{})

	_, err := service.Create(&dto.CreateBookingRequest{
		UserID:         "user-1",
		LoungeID:       "missing",
		BookingDate:    time.Now(),
		NumberOfGuests: 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrLoungeNotFound)
}

// TestBookingCreate_InvalidStatus - произвольная строка статуса отклоняется
func TestBookingCreate_InvalidStatus(t *testing.T) {
	userRepo := &mockUserRepo{
		findByIDFunc: func(id string) (*models.User, error) {
			return &models.User{BaseModel: models.BaseModel{ID: id}}, nil
		},
	}
	loungeRepo := &mockLoungeRepo{
		findByIDFunc: func(id string) (*models.Lounge, error) {
			return &models.Lounge{BaseModel: models.BaseModel{ID: id}}, nil
		},
	}

	service := NewBookingService(&mockBookingRepo{}, loungeRepo, userRepo, &mockSubscriptionRepo{})

	_, err := service.Create(&dto.CreateBookingRequest{
		UserID:         "user-1",
		LoungeID:       "lounge-1",
		BookingDate:    time.Now(),
		NumberOfGuests: 1,
		Status:         "APPROVED",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

// TestBookingTransitions - матрица допустимых переходов статуса
func TestBookingTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    models.BookingStatus
		action  string
		want    models.BookingStatus
		wantErr error
	}{
		{name: "confirm from pending", from: models.BookingStatusPending, action: "confirm", want: models.BookingStatusConfirmed},
		{name: "confirm from confirmed", from: models.BookingStatusConfirmed, action: "confirm", wantErr: apperrors.ErrBookingNotPending},
		{name: "confirm from cancelled", from: models.BookingStatusCancelled, action: "confirm", wantErr: apperrors.ErrBookingNotPending},
		{name: "complete from confirmed", from: models.BookingStatusConfirmed, action: "complete", want: models.BookingStatusCompleted},
		{name: "complete from pending", from: models.BookingStatusPending, action: "complete", wantErr: apperrors.ErrBookingNotConfirmed},
		{name: "cancel from pending", from: models.BookingStatusPending, action: "cancel", want: models.BookingStatusCancelled},
		{name: "cancel from confirmed", from: models.BookingStatusConfirmed, action: "cancel", want: models.BookingStatusCancelled},
		{name: "cancel from cancelled", from: models.BookingStatusCancelled, action: "cancel", want: models.BookingStatusCancelled},
		{name: "cancel from completed", from: models.BookingStatusCompleted, action: "cancel", wantErr: apperrors.ErrBookingCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var savedStatus models.BookingStatus

			bookingRepo := &mockBookingRepo{
				findByIDFunc: func(id string) (*models.Booking, error) {
					return newBookingFixture(tt.from), nil
				},
				updateStatusFunc: func(bookingID string, status models.BookingStatus) error {
					savedStatus = status
					return nil
				},
			}

			service := NewBookingService(bookingRepo, &mockLoungeRepo{}, &mockUserRepo{}, &mockSubscriptionRepo{})

			var (
				booking *models.Booking
				err     error
			)
			switch tt.action {
			case "confirm":
				booking, err = service.Confirm("booking-1")
			case "complete":
				booking, err = service.Complete("booking-1")
			case "cancel":
				booking, err = service.Cancel("booking-1")
			}

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, savedStatus, "статус не должен сохраняться при запрещенном переходе")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, booking.Status)
			assert.Equal(t, tt.want, savedStatus)
		})
	}
}

// TestBookingTransition_NotFound - переход по несуществующей брони
func TestBookingTransition_NotFound(t *testing.T) {
	service := NewBookingService(&mockBookingRepo{}, &mockLoungeRepo{}, &mockUserRepo{}, &mockSubscriptionRepo{})

	_, err := service.Confirm("missing")
	assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
}

// TestBookingUpdate_StatusUntouched - частичное обновление не трогает статус
func TestBookingUpdate_StatusUntouched(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		findByIDFunc: func(id string) (*models.Booking, error) {
			return newBookingFixture(models.BookingStatusConfirmed), nil
		},
	}

	service := NewBookingService(bookingRepo, &mockLoungeRepo{}, &mockUserRepo{}, &mockSubscriptionRepo{})

	guests := 5
	booking, err := service.Update("booking-1", &dto.UpdateBookingRequest{NumberOfGuests: &guests})
	require.NoError(t, err)

	assert.Equal(t, 5, booking.NumberOfGuests)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
}

// TestBookingList_UserFilter - фильтр по пользователю идет через FindByUser
func TestBookingList_UserFilter(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		findByUserFunc: func(userID string) ([]models.Booking, error) {
			return []models.Booking{*newBookingFixture(models.BookingStatusPending)}, nil
		},
	}

	service := NewBookingService(bookingRepo, &mockLoungeRepo{}, &mockUserRepo{}, &mockSubscriptionRepo{})

	bookings, err := service.List(&dto.ListBookingsQuery{UserID: "user-1"})
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}
