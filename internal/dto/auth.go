package dto

type RegisterRequestDTO struct {
	Username         string `json:"username" validate:"required,max=150" example:"kevin_design"`
	Email            string `json:"email" validate:"required,email" example:"kevin@example.com"`
	Password         string `json:"password" validate:"required,min=6" example:"asdasd"`
	RepeatedPassword string `json:"repeated_password" validate:"required" example:"asdasd"`
	Type             string `json:"type" validate:"required,oneof=business customer" example:"business"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required" example:"kevin_design"`
	Password string `json:"password" validate:"required" example:"asdasd"`
}

type GuestLoginRequestDTO struct {
	Type string `json:"type" validate:"omitempty,oneof=business customer" example:"customer"`
}

type AuthResponseDTO struct {
	Token    string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	UserID   int    `json:"user_id" example:"1"`
	Username string `json:"username" example:"kevin_design"`
	Email    string `json:"email" example:"kevin@example.com"`
	Type     string `json:"type" example:"business"`
	Guest    bool   `json:"guest,omitempty" example:"false"`
}
