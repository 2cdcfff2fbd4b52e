package dto

import "time"

// CreateUserRequest - создание пользователя администратором
type CreateUserRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	IsAdmin     bool   `json:"isAdmin,omitempty"`
	Role        string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

// UpdateUserRequest - частичное обновление: nil-поля не трогаем
type UpdateUserRequest struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=6"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	IsAdmin     *bool   `json:"isAdmin,omitempty"`
	Role        *string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

// UserResponse - пользователь в ответах API. Поля подписки не хранятся
// на пользователе, а выводятся запросом по действующей подписке.
type UserResponse struct {
	ID                     string     `json:"id"`
	FirstName              string     `json:"firstName"`
	LastName               string     `json:"lastName"`
	Email                  string     `json:"email"`
	PhoneNumber            string     `json:"phoneNumber,omitempty"`
	IsAdmin                bool       `json:"isAdmin"`
	Role                   string     `json:"role"`
	SubscriptionType       *string    `json:"subscriptionType"`
	SubscriptionExpiryDate *time.Time `json:"subscriptionExpiryDate"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}
