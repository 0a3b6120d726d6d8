package dto

type CreateReviewRequestDTO struct {
	BusinessUser int    `json:"business_user" validate:"required,gte=1" example:"2"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5" example:"4"`
	Description  string `json:"description" validate:"required" example:"Alles war toll!"`
}

type ReviewPatchRequestDTO struct {
	Rating      *int    `json:"rating" validate:"omitempty,gte=1,lte=5" example:"5"`
	Description *string `json:"description" validate:"omitempty,min=1" example:"Noch besser als erwartet!"`
}

type ReviewResponseDTO struct {
	ID           int    `json:"id" example:"1"`
	BusinessUser int    `json:"business_user" example:"2"`
	Reviewer     int    `json:"reviewer" example:"5"`
	Rating       int    `json:"rating" example:"4"`
	Description  string `json:"description" example:"Alles war toll!"`
	CreatedAt    string `json:"created_at" example:"2024-12-01T10:00:00Z"`
	UpdatedAt    string `json:"updated_at" example:"2024-12-01T10:00:00Z"`
}
