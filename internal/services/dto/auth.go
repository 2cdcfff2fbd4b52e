package dto

// LoginRequest - тело запроса POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest - тело запроса POST /auth/signup.
// Роль по умолчанию "user"; isAdmin выставляется только если роль admin.
type SignupRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
	IsAdmin     bool   `json:"isAdmin,omitempty"`
}

// AuthResponse - ответ login/signup: пользователь, токен и путь редиректа
type AuthResponse struct {
	User     *UserResponse `json:"user"`
	Token    string        `json:"token"`
	Redirect string        `json:"redirect"`
}
