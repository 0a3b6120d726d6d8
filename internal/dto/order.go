package dto

type CreateOrderRequestDTO struct {
	OfferDetailID int `json:"offer_detail_id" validate:"required,gte=1" example:"1"`
}

type UpdateOrderStatusRequestDTO struct {
	Status string `json:"status" validate:"required" example:"completed"`
}

type OrderResponseDTO struct {
	ID                 int      `json:"id" example:"1"`
	CustomerUser       int      `json:"customer_user" example:"5"`
	BusinessUser       int      `json:"business_user" example:"2"`
	Title              string   `json:"title" example:"Logo Design"`
	Revisions          int      `json:"revisions" example:"3"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days" example:"5"`
	Price              string   `json:"price" example:"150.00"`
	Features           []string `json:"features" example:"Logo Design,Visitenkarten"`
	OfferType          string   `json:"offer_type" example:"basic"`
	Status             string   `json:"status" example:"in_progress"`
	CreatedAt          string   `json:"created_at" example:"2024-12-01T10:00:00Z"`
	UpdatedAt          string   `json:"updated_at" example:"2024-12-01T10:00:00Z"`
}

type OrderCountResponseDTO struct {
	OrderCount int `json:"order_count" example:"3"`
}

type CompletedOrderCountResponseDTO struct {
	CompletedOrderCount int `json:"completed_order_count" example:"1"`
}
