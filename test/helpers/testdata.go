package helpers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"lounge_backend/internal/models"
	"lounge_backend/internal/services/dto"
	"lounge_backend/pkg/client"

	"github.com/stretchr/testify/require"
)

// UniqueEmail генерирует уникальный email, чтобы тесты не мешали друг другу
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// SignupUser регистрирует обычного пользователя и возвращает
// залогиненный API-клиент
func SignupUser(t *testing.T, ts *TestServer, firstName, lastName string) (*client.Client, *dto.AuthResponse) {
	t.Helper()

	api := client.New(ts.Server.URL)
	auth, err := api.Auth.Signup(context.Background(), &dto.SignupRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     UniqueEmail(firstName),
		Password:  "password123",
	})
	require.NoError(t, err, "регистрация тестового пользователя")

	return api, auth
}

// SignupAdmin регистрирует администратора и возвращает залогиненный клиент
func SignupAdmin(t *testing.T, ts *TestServer) (*client.Client, *dto.AuthResponse) {
	t.Helper()

	api := client.New(ts.Server.URL)
	auth, err := api.Auth.Signup(context.Background(), &dto.SignupRequest{
		FirstName: "Admin",
		LastName:  "User",
		Email:     UniqueEmail("admin"),
		Password:  "password123",
		Role:      "admin",
	})
	require.NoError(t, err, "регистрация тестового администратора")

	return api, auth
}

// GiveSubscription открывает пользователю действующую подписку напрямую в БД
func GiveSubscription(t *testing.T, ts *TestServer, userID string, subType models.SubscriptionType) *models.Subscription {
	t.Helper()

	sub := &models.Subscription{
		UserID:    userID,
		Type:      subType,
		StartDate: time.Now().AddDate(0, 0, -1),
		EndDate:   time.Now().AddDate(0, 1, 0),
		Price:     5000,
		IsActive:  true,
		IsPaid:    true,
	}
	require.NoError(t, ts.DB.Create(sub).Error, "создание тестовой подписки")
	return sub
}

// CreateLounge создает зал от имени администратора
func CreateLounge(t *testing.T, admin *client.Client, name string) *models.Lounge {
	t.Helper()

	lounge, err := admin.Lounges.Create(context.Background(), &dto.CreateLoungeRequest{
		Name:                 name,
		Location:             "Terminal 2",
		Airport:              "DSS",
		Country:              "Senegal",
		Description:          "Test lounge",
		Price:                100,
		ClassicDiscountPrice: 60,
		PremiumDiscountPrice: 40,
		Amenities:            []string{"wifi", "showers"},
	})
	require.NoError(t, err, "создание тестового зала")
	return lounge
}
