package dto

type ProfileResponseDTO struct {
	User         int    `json:"user" example:"2"`
	Username     string `json:"username" example:"kevin_design"`
	FirstName    string `json:"first_name" example:"Kevin"`
	LastName     string `json:"last_name" example:"Miller"`
	File         string `json:"file" example:"profile_pictures/kevin.png"`
	Location     string `json:"location" example:"Berlin"`
	Tel          string `json:"tel" example:"0123456789"`
	Description  string `json:"description" example:"Logo and brand design"`
	WorkingHours string `json:"working_hours" example:"9-17"`
	Type         string `json:"type" example:"business"`
	Email        string `json:"email" example:"kevin@example.com"`
	CreatedAt    string `json:"created_at" example:"2024-12-01T10:00:00Z"`
}

type ProfileUpdateRequestDTO struct {
	FirstName    *string `json:"first_name" validate:"omitempty,max=150"`
	LastName     *string `json:"last_name" validate:"omitempty,max=150"`
	Email        *string `json:"email" validate:"omitempty,email"`
	File         *string `json:"file"`
	Location     *string `json:"location" validate:"omitempty,max=255"`
	Tel          *string `json:"tel" validate:"omitempty,max=50"`
	Description  *string `json:"description"`
	WorkingHours *string `json:"working_hours" validate:"omitempty,max=100"`
}
