// File: internal/dto/register_request.go
package dto

// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email,max=100" example:"alice@example.com"`
	Password string `form:"password" json:"-" validate:"required,max=72" example:"Secret123!"`
	Name     string `form:"name" json:"name" validate:"required,max=100" example:"Alice"`
}
