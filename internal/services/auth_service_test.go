package services

import (
	"testing"
	"time"

	"lounge_backend/internal/auth"
	"lounge_backend/internal/config"
	"lounge_backend/internal/email"
	"lounge_backend/internal/models"
	"lounge_backend/internal/repositories"
	"lounge_backend/internal/services/dto"
	"lounge_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setTestConfig подставляет конфигурацию для выдачи токенов в тестах
func setTestConfig(t *testing.T) {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

// TestSignup - регистрация выдает токен и редирект на /lounges
func TestSignup(t *testing.T) {
	setTestConfig(t)

	var created *models.User

	userRepo := &mockUserRepo{
		createFunc: func(user *models.User) error {
			user.ID = "user-1"
			created = user
			return nil
		},
	}

	service := NewAuthService(userRepo, &mockSubscriptionRepo{}, email.NoopProvider{})

	resp, err := service.Signup(&dto.SignupRequest{
		FirstName: "Awa",
		LastName:  "Diop",
		Email:     "awa@example.com",
		Password:  "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, models.UserRoleUser, created.Role)
	assert.False(t, created.IsAdmin)
	assert.NotEqual(t, "secret123", created.PasswordHash, "пароль не должен храниться открытым текстом")

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "/lounges", resp.Redirect)
	assert.Equal(t, "awa@example.com", resp.User.Email)
}

// TestSignup_AdminRedirect - админ после входа попадает на /dashboard
func TestSignup_AdminRedirect(t *testing.T) {
	setTestConfig(t)

	userRepo := &mockUserRepo{
		createFunc: func(user *models.User) error {
			user.ID = "admin-1"
			return nil
		},
	}

	service := NewAuthService(userRepo, &mockSubscriptionRepo{}, email.NoopProvider{})

	resp, err := service.Signup(&dto.SignupRequest{
		FirstName: "Admin",
		LastName:  "User",
		Email:     "admin@example.com",
		Password:  "secret123",
		Role:      "admin",
	})
	require.NoError(t, err)

	assert.Equal(t, "/dashboard", resp.Redirect)
	assert.True(t, resp.User.IsAdmin, "роль admin дает права даже без флага isAdmin")

	// Ответ API и claims токена должны совпадать по правам
	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, claims.IsAdmin, resp.User.IsAdmin)
}

// TestSignup_DuplicateEmail - повторный email дает конфликт
func TestSignup_DuplicateEmail(t *testing.T) {
	setTestConfig(t)

	userRepo := &mockUserRepo{
		createFunc: func(user *models.User) error {
			return repositories.ErrUserAlreadyExists
		},
	}

	service := NewAuthService(userRepo, &mockSubscriptionRepo{}, email.NoopProvider{})

	_, err := service.Signup(&dto.SignupRequest{
		FirstName: "Awa",
		LastName:  "Diop",
		Email:     "awa@example.com",
		Password:  "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

// TestSignup_WeakPassword - короткий пароль отклоняется до записи в базу
func TestSignup_WeakPassword(t *testing.T) {
	setTestConfig(t)

	var createCalls int
	userRepo := &mockUserRepo{
		createFunc: func(user *models.User) error {
			createCalls++
			return nil
		},
	}

	service := NewAuthService(userRepo, &mockSubscriptionRepo{}, email.NoopProvider{})

	_, err := service.Signup(&dto.SignupRequest{
		FirstName: "Awa",
		LastName:  "Diop",
		Email:     "awa@example.com",
		Password:  "123",
	})

	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
	assert.Equal(t, 0, createCalls)
}

// TestLogin - вход по валидным учетным данным
func TestLogin(t *testing.T) {
	setTestConfig(t)

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	userRepo := &mockUserRepo{
		findByEmailFunc: func(email string) (*models.User, error) {
			return &models.User{
				BaseModel:    models.BaseModel{ID: "user-1"},
				FirstName:    "Awa",
				LastName:     "Diop",
				Email:        email,
				PasswordHash: hash,
				Role:         models.UserRoleUser,
			}, nil
		},
	}

	service := NewAuthService(userRepo, &mockSubscriptionRepo{}, email.NoopProvider{})

	resp, err := service.Login(&dto.LoginRequest{Email: "awa@example.com", Password: "secret123"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "/lounges", resp.Redirect)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.False(t, claims.IsAdmin)
}

// TestLogin_WrongPassword - неверный пароль и неизвестный email дают
// одну и ту же ошибку, без утечки информации о существовании аккаунта
func TestLogin_WrongPassword(t *testing.T) {
	setTestConfig(t)

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	userRepo := &mockUserRepo{
		findByEmailFunc: func(email string) (*models.User, error) {
			return &models.User{
				BaseModel:    models.BaseModel{ID: "user-1"},
				Email:        email,
				PasswordHash: hash,
			}, nil
		},
	}

	service := NewAuthService(userRepo, &mockSubscriptionRepo{}, email.NoopProvider{})

	_, err = service.Login(&dto.LoginRequest{Email: "awa@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	unknown := NewAuthService(&mockUserRepo{}, &mockSubscriptionRepo{}, email.NoopProvider{})
	_, err = unknown.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

// TestUserResponse_SubscriptionFields - в ответе заполняются тип и срок
// действующей подписки пользователя
func TestUserResponse_SubscriptionFields(t *testing.T) {
	setTestConfig(t)

	endDate := time.Now().AddDate(0, 1, 0)

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	userRepo := &mockUserRepo{
		findByEmailFunc: func(email string) (*models.User, error) {
			return &models.User{
				BaseModel:    models.BaseModel{ID: "user-1"},
				Email:        email,
				PasswordHash: hash,
			}, nil
		},
	}
	subscriptionRepo := &mockSubscriptionRepo{
		findActiveByUserFunc: func(userID string, now time.Time) (*models.Subscription, error) {
			return &models.Subscription{
				BaseModel: models.BaseModel{ID: "sub-1"},
				UserID:    userID,
				Type:      models.SubscriptionTypePremium,
				EndDate:   endDate,
				IsActive:  true,
			}, nil
		},
	}

	service := NewAuthService(userRepo, subscriptionRepo, email.NoopProvider{})

	resp, err := service.Login(&dto.LoginRequest{Email: "awa@example.com", Password: "secret123"})
	require.NoError(t, err)

	require.NotNil(t, resp.User.SubscriptionType)
	assert.Equal(t, "PREMIUM", *resp.User.SubscriptionType)
	require.NotNil(t, resp.User.SubscriptionExpiryDate)
	assert.True(t, endDate.Equal(*resp.User.SubscriptionExpiryDate))
}
