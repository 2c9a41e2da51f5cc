// File: internal/dto/login_request.go
package dto

// swagger:model dto.LoginRequest
type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email,max=100" example:"alice@example.com"`
	Password string `form:"password" json:"-" validate:"required,max=72" example:"Secret123!"`
}
