package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"lounge_backend/internal/services/dto"
)

type UserClient struct {
	http *HttpClient
}

// Me возвращает профиль текущего пользователя
func (c *UserClient) Me(ctx context.Context) (*dto.UserResponse, error) {
	resp, err := c.http.GET(ctx, "/api/v1/users/me")
	if err != nil {
		return nil, err
	}
	return decodeUser(resp)
}

func (c *UserClient) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	resp, err := c.http.POST(ctx, "/api/v1/users", req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create user failed: %s", GetErrorMessage(resp))
	}

	var user dto.UserResponse
	if err := resp.DecodeJSON(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *UserClient) List(ctx context.Context, page, pageSize int) ([]dto.UserResponse, int64, error) {
	path := fmt.Sprintf("/api/v1/users?page=%d&page_size=%d", page, pageSize)
	resp, err := c.http.GET(ctx, path)
	if err != nil {
		return nil, 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("list users failed: %s", GetErrorMessage(resp))
	}

	var wrapper struct {
		Users []dto.UserResponse `json:"users"`
		Total int64              `json:"total"`
	}
	if err := resp.DecodeJSON(&wrapper); err != nil {
		return nil, 0, err
	}
	return wrapper.Users, wrapper.Total, nil
}

func (c *UserClient) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	resp, err := c.http.GET(ctx, "/api/v1/users/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	return decodeUser(resp)
}

func (c *UserClient) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	resp, err := c.http.PATCH(ctx, "/api/v1/users/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}
	return decodeUser(resp)
}

func (c *UserClient) Delete(ctx context.Context, id string) error {
	resp, err := c.http.DELETE(ctx, "/api/v1/users/"+url.PathEscape(id))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("delete user failed: %s", GetErrorMessage(resp))
	}
	return nil
}

func decodeUser(resp *Response) (*dto.UserResponse, error) {
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user request failed: %s", GetErrorMessage(resp))
	}

	var user dto.UserResponse
	if err := resp.DecodeJSON(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
