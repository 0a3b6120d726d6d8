package dto

import "github.com/shopspring/decimal"

type OfferDetailRequestDTO struct {
	Title              string           `json:"title" validate:"required,max=255" example:"Basic Design"`
	Revisions          int              `json:"revisions" validate:"gte=-1" example:"2"`
	DeliveryTimeInDays int              `json:"delivery_time_in_days" validate:"gte=1" example:"5"`
	Price              *decimal.Decimal `json:"price" validate:"required" swaggertype:"number" example:"100"`
	Features           []string         `json:"features" validate:"dive,required" example:"Logo Design,Visitenkarte"`
	OfferType          string           `json:"offer_type" validate:"required,oneof=basic standard premium" example:"basic"`
}

type OfferRequestDTO struct {
	Title       string                  `json:"title" validate:"required,max=255" example:"Grafikdesign-Paket"`
	Image       *string                 `json:"image" example:"offers/logo.png"`
	Description string                  `json:"description" validate:"required" example:"Ein umfassendes Grafikdesign-Paket."`
	Details     []OfferDetailRequestDTO `json:"details" validate:"required,len=3,dive"`
}

type OfferDetailPatchDTO struct {
	Title              *string          `json:"title" validate:"omitempty,min=1,max=255"`
	Revisions          *int             `json:"revisions" validate:"omitempty,gte=-1"`
	DeliveryTimeInDays *int             `json:"delivery_time_in_days" validate:"omitempty,gte=1"`
	Price              *decimal.Decimal `json:"price" swaggertype:"number"`
	Features           *[]string        `json:"features" validate:"omitempty,dive,required"`
	OfferType          string           `json:"offer_type" validate:"required,oneof=basic standard premium" example:"basic"`
}

type OfferPatchRequestDTO struct {
	Title       *string               `json:"title" validate:"omitempty,min=1,max=255"`
	Image       *string               `json:"image"`
	Description *string               `json:"description" validate:"omitempty,min=1"`
	Details     []OfferDetailPatchDTO `json:"details" validate:"omitempty,dive"`
}

type OfferDetailResponseDTO struct {
	ID                 int      `json:"id" example:"1"`
	Title              string   `json:"title" example:"Basic Design"`
	Revisions          int      `json:"revisions" example:"2"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days" example:"5"`
	Price              string   `json:"price" example:"100.00"`
	Features           []string `json:"features" example:"Logo Design,Visitenkarte"`
	OfferType          string   `json:"offer_type" example:"basic"`
}

type OfferDetailRefDTO struct {
	ID  int    `json:"id" example:"1"`
	URL string `json:"url" example:"/offerdetails/1/"`
}

type UserDetailsDTO struct {
	FirstName string `json:"first_name" example:"Kevin"`
	LastName  string `json:"last_name" example:"Miller"`
	Username  string `json:"username" example:"kevin_design"`
}

type OfferResponseDTO struct {
	ID              int                 `json:"id" example:"1"`
	User            int                 `json:"user" example:"2"`
	Title           string              `json:"title" example:"Grafikdesign-Paket"`
	Image           *string             `json:"image" example:"offers/logo.png"`
	Description     string              `json:"description" example:"Ein umfassendes Grafikdesign-Paket."`
	CreatedAt       string              `json:"created_at" example:"2024-12-01T10:00:00Z"`
	UpdatedAt       string              `json:"updated_at" example:"2024-12-01T10:00:00Z"`
	Details         []OfferDetailRefDTO `json:"details"`
	MinPrice        string              `json:"min_price" example:"100.00"`
	MinDeliveryTime int                 `json:"min_delivery_time" example:"5"`
	UserDetails     *UserDetailsDTO     `json:"user_details,omitempty"`
}

type OfferFullResponseDTO struct {
	ID          int                      `json:"id" example:"1"`
	Title       string                   `json:"title" example:"Grafikdesign-Paket"`
	Image       *string                  `json:"image" example:"offers/logo.png"`
	Description string                   `json:"description" example:"Ein umfassendes Grafikdesign-Paket."`
	Details     []OfferDetailResponseDTO `json:"details"`
}

type OfferPageResponseDTO struct {
	Count    int                `json:"count" example:"8"`
	Next     *string            `json:"next" example:"/api/offers/?page=2"`
	Previous *string            `json:"previous"`
	Results  []OfferResponseDTO `json:"results"`
}
