package models

import "time"

type Booking struct {
	BaseModel
	UserID          string        `gorm:"type:varchar(36);not null;index" json:"userId"`
	LoungeID        string        `gorm:"type:varchar(36);not null;index" json:"loungeId"`
	BookingDate     time.Time     `gorm:"not null" json:"bookingDate"`
	NumberOfGuests  int           `gorm:"not null" json:"numberOfGuests"`
	TotalPrice      float64       `gorm:"not null" json:"totalPrice"`
	Status          BookingStatus `gorm:"type:varchar(10);default:'PENDING'" json:"status"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	PaymentID       string        `json:"paymentId,omitempty"`
	IsPaid          bool          `gorm:"default:false" json:"isPaid"`

	// Relations
	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Lounge *Lounge `gorm:"foreignKey:LoungeID" json:"lounge,omitempty"`
}

// CanConfirm - подтверждение допустимо только из PENDING
func (b *Booking) CanConfirm() bool {
	return b.Status == BookingStatusPending
}

// CanCancel - отмена запрещена только для завершенной брони
func (b *Booking) CanCancel() bool {
	return b.Status != BookingStatusCompleted
}

// CanComplete - завершение допустимо только из CONFIRMED
func (b *Booking) CanComplete() bool {
	return b.Status == BookingStatusConfirmed
}
