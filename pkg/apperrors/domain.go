package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для общих
ошибок бизнес-логики и домена.
*/

// =========================================================================
// Фабричные функции (оборачивание ошибок, напр. из репозитория)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus - фабрика для невалидных переходов статуса (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные доменные ошибки
// =========================================================================

var (
	// auth
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid credentials", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)
	ErrAdminRequired      = New(CodeForbidden, "auth", "Admin privileges required", http.StatusForbidden)

	// users
	ErrUserNotFound       = New(CodeNotFound, "users", "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeAlreadyExists, "users", "Email already exists", http.StatusConflict)
	ErrWeakPassword       = New(CodeValidationFailed, "users", "Password is too weak", http.StatusBadRequest)

	// lounges
	ErrLoungeNotFound = New(CodeNotFound, "lounges", "Lounge not found", http.StatusNotFound)

	// bookings
	ErrBookingNotFound     = New(CodeNotFound, "bookings", "Booking not found", http.StatusNotFound)
	ErrBookingNotPending   = New(CodeInvalidStatus, "bookings", "Booking is not in pending status", http.StatusBadRequest)
	ErrBookingNotConfirmed = New(CodeInvalidStatus, "bookings", "Booking must be confirmed before completion", http.StatusBadRequest)
	ErrBookingCompleted    = New(CodeInvalidStatus, "bookings", "Cannot cancel a completed booking", http.StatusBadRequest)

	// subscriptions
	ErrSubscriptionNotFound  = New(CodeNotFound, "subscriptions", "Subscription not found", http.StatusNotFound)
	ErrSubscriptionInactive  = New(CodeInvalidOperation, "subscriptions", "Subscription is already inactive", http.StatusBadRequest)
	ErrSubscriptionRequired  = New(CodeSubscriptionRequired, "subscriptions", "An active subscription is required to access this resource", http.StatusForbidden)
	ErrTransactionNotFound   = New(CodeNotFound, "subscriptions", "Subscription transaction not found", http.StatusNotFound)
	ErrInvalidSubscriptionTy = New(CodeValidationFailed, "subscriptions", "Invalid subscription type", http.StatusBadRequest)
)
