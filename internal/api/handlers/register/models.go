package register

import "github.com/m04kA/SMC-SlotService/internal/service/auth/models"

// RegisterResponse HTTP response model
type RegisterResponse struct {
	User models.UserResponse `json:"user"`
}
