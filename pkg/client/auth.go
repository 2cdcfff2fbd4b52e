package client

import (
	"context"
	"fmt"
	"net/http"

	"lounge_backend/internal/services/dto"
)

type AuthClient struct {
	http *HttpClient
}

// Login аутентифицирует пользователя и сохраняет токен в сессии клиента
func (c *AuthClient) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	resp, err := c.http.POST(ctx, "/api/v1/auth/login", dto.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("login failed: %s", GetErrorMessage(resp))
	}

	var auth dto.AuthResponse
	if err := resp.DecodeJSON(&auth); err != nil {
		return nil, err
	}

	c.http.SetToken(auth.Token)
	return &auth, nil
}

// Signup регистрирует аккаунт и сохраняет выданный токен
func (c *AuthClient) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	resp, err := c.http.POST(ctx, "/api/v1/auth/signup", req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("signup failed: %s", GetErrorMessage(resp))
	}

	var auth dto.AuthResponse
	if err := resp.DecodeJSON(&auth); err != nil {
		return nil, err
	}

	c.http.SetToken(auth.Token)
	return &auth, nil
}
