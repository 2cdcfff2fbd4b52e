package validator

import (
	"lounge_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует доменные правила валидации.
func registerCustomRules(v *validator.Validate) {
	// subscription_type: CLASSIC | PREMIUM
	_ = v.RegisterValidation("subscription_type", func(fl validator.FieldLevel) bool {
		return models.ValidSubscriptionType(models.SubscriptionType(fl.Field().String()))
	})

	// booking_status: один из четырех статусов жизненного цикла
	_ = v.RegisterValidation("booking_status", func(fl validator.FieldLevel) bool {
		return models.ValidBookingStatus(models.BookingStatus(fl.Field().String()))
	})
}
