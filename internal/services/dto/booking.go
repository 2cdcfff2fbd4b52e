package dto

import "time"

// CreateBookingRequest - создание брони. UserID берется из токена,
// поле в теле игнорируется для обычных пользователей.
type CreateBookingRequest struct {
	UserID          string    `json:"userId,omitempty"`
	LoungeID        string    `json:"loungeId" validate:"required"`
	BookingDate     time.Time `json:"bookingDate" validate:"required"`
	NumberOfGuests  int       `json:"numberOfGuests" validate:"required,min=1"`
	TotalPrice      float64   `json:"totalPrice,omitempty" validate:"gte=0"`
	Status          string    `json:"status,omitempty" validate:"omitempty,booking_status"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	PaymentID       string    `json:"paymentId,omitempty"`
	IsPaid          bool      `json:"isPaid,omitempty"`
}

// UpdateBookingRequest - частичное обновление брони.
// Статус здесь менять нельзя - только через confirm/cancel/complete.
type UpdateBookingRequest struct {
	BookingDate     *time.Time `json:"bookingDate,omitempty"`
	NumberOfGuests  *int       `json:"numberOfGuests,omitempty" validate:"omitempty,min=1"`
	TotalPrice      *float64   `json:"totalPrice,omitempty" validate:"omitempty,gte=0"`
	SpecialRequests *string    `json:"specialRequests,omitempty"`
	PaymentID       *string    `json:"paymentId,omitempty"`
	IsPaid          *bool      `json:"isPaid,omitempty"`
}

// ListBookingsQuery - фильтры GET /bookings
type ListBookingsQuery struct {
	UserID   string `form:"userId"`
	LoungeID string `form:"loungeId"`
}
