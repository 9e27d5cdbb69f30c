package models

// RegisterRequest запрос на регистрацию пользователя
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse данные пользователя без учетных данных
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse токен и данные пользователя
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
