package dto

import "time"

// CreateSubscriptionRequest - открытие подписки
type CreateSubscriptionRequest struct {
	UserID    string    `json:"userId" validate:"required"`
	Type      string    `json:"type" validate:"required,subscription_type"`
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required"`
	Price     float64   `json:"price" validate:"gte=0"`
	IsActive  *bool     `json:"isActive,omitempty"`
	PaymentID string    `json:"paymentId,omitempty"`
	IsPaid    bool      `json:"isPaid,omitempty"`
}

// UpdateSubscriptionRequest - частичное обновление подписки
type UpdateSubscriptionRequest struct {
	Type      *string    `json:"type,omitempty" validate:"omitempty,subscription_type"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Price     *float64   `json:"price,omitempty" validate:"omitempty,gte=0"`
	IsActive  *bool      `json:"isActive,omitempty"`
	PaymentID *string    `json:"paymentId,omitempty"`
	IsPaid    *bool      `json:"isPaid,omitempty"`
}

// SubscriptionStatusResponse - ответ GET /subscriptions/:id/status.
// Для истекшей подписки daysRemaining всегда 0.
type SubscriptionStatusResponse struct {
	IsActive      bool `json:"isActive"`
	DaysRemaining int  `json:"daysRemaining"`
}

// CreateTransactionRequest - запись платежа в журнал.
// Побочный эффект: открывает/продлевает подписку пользователя.
type CreateTransactionRequest struct {
	UserID           string     `json:"userId" validate:"required"`
	SubscriptionType string     `json:"subscriptionType" validate:"required,subscription_type"`
	Amount           float64    `json:"amount" validate:"required,gte=0"`
	PaymentMethod    string     `json:"paymentMethod" validate:"required"`
	TransactionDate  *time.Time `json:"transactionDate,omitempty"`
	StartDate        time.Time  `json:"startDate" validate:"required"`
	EndDate          time.Time  `json:"endDate" validate:"required"`
	Status           string     `json:"status,omitempty" validate:"omitempty,oneof=pending completed failed refunded"`
	Notes            string     `json:"notes,omitempty"`
}

// UpdateTransactionRequest - правка записи журнала (admin)
type UpdateTransactionRequest struct {
	SubscriptionType *string    `json:"subscriptionType,omitempty" validate:"omitempty,subscription_type"`
	Amount           *float64   `json:"amount,omitempty" validate:"omitempty,gte=0"`
	PaymentMethod    *string    `json:"paymentMethod,omitempty"`
	TransactionDate  *time.Time `json:"transactionDate,omitempty"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	Status           *string    `json:"status,omitempty" validate:"omitempty,oneof=pending completed failed refunded"`
	Notes            *string    `json:"notes,omitempty"`
}
