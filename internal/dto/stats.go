package dto

type BaseInfoResponseDTO struct {
	ReviewCount          int     `json:"review_count" example:"10"`
	AverageRating        float64 `json:"average_rating" example:"4.6"`
	BusinessProfileCount int     `json:"business_profile_count" example:"45"`
	OfferCount           int     `json:"offer_count" example:"150"`
}
