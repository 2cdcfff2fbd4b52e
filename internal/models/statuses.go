package models

type UserRole string
type BookingStatus string
type SubscriptionType string
type TransactionStatus string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"

	SubscriptionTypeClassic SubscriptionType = "CLASSIC"
	SubscriptionTypePremium SubscriptionType = "PREMIUM"

	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusRefunded  TransactionStatus = "refunded"
)

// ValidBookingStatus проверяет, что строка - один из статусов брони
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// ValidSubscriptionType проверяет тип подписки
func ValidSubscriptionType(t SubscriptionType) bool {
	return t == SubscriptionTypeClassic || t == SubscriptionTypePremium
}
