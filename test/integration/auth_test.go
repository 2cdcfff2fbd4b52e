package integration_test

import (
	"context"
	"testing"

	"lounge_backend/internal/services/dto"
	"lounge_backend/pkg/client"
	"lounge_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAuth_SignupAndMe - регистрация выдает рабочий токен,
// /users/me возвращает свежесозданный аккаунт
func TestAuth_SignupAndMe(t *testing.T) {
	ts := GetTestServer(t)

	api, auth := helpers.SignupUser(t, ts, "Awa", "Diop")

	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "/lounges", auth.Redirect)
	assert.False(t, auth.User.IsAdmin)

	me, err := api.Users.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, auth.User.ID, me.ID)
	assert.Equal(t, "Awa", me.FirstName)
	assert.Nil(t, me.SubscriptionType, "подписки при регистрации нет")
}

// TestAuth_AdminRedirect - админ получает редирект на дашборд
func TestAuth_AdminRedirect(t *testing.T) {
	ts := GetTestServer(t)

	_, auth := helpers.SignupAdmin(t, ts)

	assert.Equal(t, "/dashboard", auth.Redirect)
	assert.True(t, auth.User.IsAdmin)
}

// TestAuth_DuplicateEmail - повторная регистрация на тот же email
func TestAuth_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)

	email := helpers.UniqueEmail("dup")
	api := client.New(ts.Server.URL)

	_, err := api.Auth.Signup(context.Background(), &dto.SignupRequest{
		FirstName: "First",
		LastName:  "User",
		Email:     email,
		Password:  "password123",
	})
	require.NoError(t, err)

	_, err = api.Auth.Signup(context.Background(), &dto.SignupRequest{
		FirstName: "Second",
		LastName:  "User",
		Email:     email,
		Password:  "password123",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email already exists")
}

// TestAuth_ConcurrentSignupSameEmail - две одновременные регистрации
// на один email: ровно одна проходит, вторая получает конфликт, не 500
func TestAuth_ConcurrentSignupSameEmail(t *testing.T) {
	ts := GetTestServer(t)

	email := helpers.UniqueEmail("race")
	errs := make(chan error, 2)

	for i := 0; i < 2; i++ {
		go func() {
			api := client.New(ts.Server.URL)
			_, err := api.Auth.Signup(context.Background(), &dto.SignupRequest{
				FirstName: "Race",
				LastName:  "User",
				Email:     email,
				Password:  "password123",
			})
			errs <- err
		}()
	}

	var failures []error
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			failures = append(failures, err)
		}
	}

	require.Len(t, failures, 1, "ровно одна из двух регистраций должна пройти")
	assert.Contains(t, failures[0].Error(), "Email already exists")
}

// TestAuth_LoginWrongPassword - неверный пароль не пускает
func TestAuth_LoginWrongPassword(t *testing.T) {
	ts := GetTestServer(t)

	_, auth := helpers.SignupUser(t, ts, "Moussa", "Ndiaye")

	api := client.New(ts.Server.URL)
	_, err := api.Auth.Login(context.Background(), auth.User.Email, "wrong-password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

// TestAuth_ProtectedRouteWithoutToken - защищенный роут без токена дает 401
func TestAuth_ProtectedRouteWithoutToken(t *testing.T) {
	ts := GetTestServer(t)

	api := client.New(ts.Server.URL)
	_, err := api.Users.Me(context.Background())
	assert.Error(t, err)
}
