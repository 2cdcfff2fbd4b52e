package services

import (
	"lounge_backend/internal/email"
	"lounge_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	LoungeService       LoungeService
	BookingService      BookingService
	SubscriptionService SubscriptionService
	UploadService       UploadService
	EmailService        email.Provider
	Storage             storage.Storage
}
