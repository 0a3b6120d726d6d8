package orders

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/GlebRadaev/coderr/internal/dto"
	"github.com/GlebRadaev/coderr/pkg/auth"
	"github.com/GlebRadaev/coderr/pkg/utils"
	"github.com/GlebRadaev/coderr/pkg/validate"
)

type Service interface {
	CanCreate(caller domain.Caller) error
	CanChangeStatus(ctx context.Context, caller domain.Caller, id int) error
	CreateOrder(ctx context.Context, caller domain.Caller, detailID int) (*domain.Order, error)
	ListOrders(ctx context.Context, caller domain.Caller) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, caller domain.Caller, id int, status domain.OrderStatus) (*domain.Order, error)
	DeleteOrder(ctx context.Context, caller domain.Caller, id int) error
	CountOrders(ctx context.Context, caller domain.Caller, businessUserID int, status domain.OrderStatus) (int, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrder godoc
//
//	@Summary		Place an order
//	@Description	Customers order one offer tier. The order keeps a copy of the tier's terms.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Offer tier to order"
//	@Success		201		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request data"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Only customers can order"
//	@Failure		404		{object}	utils.Response	"Offer detail not found"
//	@Router			/api/orders/ [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFrom(r.Context())
	if err := h.orderService.CanCreate(caller); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	order, err := h.orderService.CreateOrder(r.Context(), caller, req.OfferDetailID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(order))
}

// ListOrders godoc
//
//	@Summary		List own orders
//	@Description	Orders where the caller is the customer or the business
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Router			/api/orders/ [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context(), auth.CallerFrom(r.Context()))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for i := range orders {
		response = append(response, toResponse(&orders[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateOrder godoc
//
//	@Summary		Change order status
//	@Description	The business side moves an in_progress order to completed or cancelled
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int								true	"Order ID"
//	@Param			request	body		dto.UpdateOrderStatusRequestDTO	true	"New status"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid status or transition"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Not found"
//	@Router			/api/orders/{id}/ [patch]
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.PathID(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
		return
	}
	caller := auth.CallerFrom(r.Context())
	if err := h.orderService.CanChangeStatus(r.Context(), caller, id); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	var req dto.UpdateOrderStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	order, err := h.orderService.UpdateStatus(r.Context(), caller, id, domain.OrderStatus(req.Status))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(order))
}

// DeleteOrder godoc
//
//	@Summary	Delete an order
//	@Tags		Orders
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Order ID"
//	@Success	204
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	403	{object}	utils.Response	"Staff only"
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/orders/{id}/ [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.PathID(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
		return
	}
	if err := h.orderService.DeleteOrder(r.Context(), auth.CallerFrom(r.Context()), id); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// OrderCount godoc
//
//	@Summary	Count in-progress orders of a business
//	@Tags		Orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		business_user_id	path		int	true	"Business user ID"
//	@Success	200					{object}	dto.OrderCountResponseDTO
//	@Failure	401					{object}	utils.Response	"Unauthorized"
//	@Failure	404					{object}	utils.Response	"Business user not found"
//	@Router		/api/order-count/{business_user_id}/ [get]
func (h *OrderHandler) OrderCount(w http.ResponseWriter, r *http.Request) {
	count, ok := h.count(w, r, domain.OrderStatusInProgress)
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OrderCountResponseDTO{OrderCount: count})
}

// CompletedOrderCount godoc
//
//	@Summary	Count completed orders of a business
//	@Tags		Orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		business_user_id	path		int	true	"Business user ID"
//	@Success	200					{object}	dto.CompletedOrderCountResponseDTO
//	@Failure	401					{object}	utils.Response	"Unauthorized"
//	@Failure	404					{object}	utils.Response	"Business user not found"
//	@Router		/api/completed-order-count/{business_user_id}/ [get]
func (h *OrderHandler) CompletedOrderCount(w http.ResponseWriter, r *http.Request) {
	count, ok := h.count(w, r, domain.OrderStatusCompleted)
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CompletedOrderCountResponseDTO{CompletedOrderCount: count})
}

func (h *OrderHandler) count(w http.ResponseWriter, r *http.Request, status domain.OrderStatus) (int, bool) {
	id, ok := utils.PathID(r, "business_user_id")
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Business user not found")
		return 0, false
	}
	count, err := h.orderService.CountOrders(r.Context(), auth.CallerFrom(r.Context()), id, status)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return 0, false
	}
	return count, true
}

func toResponse(o *domain.Order) dto.OrderResponseDTO {
	features := o.Features
	if features == nil {
		features = []string{}
	}
	return dto.OrderResponseDTO{
		ID:                 o.ID,
		CustomerUser:       o.CustomerID,
		BusinessUser:       o.BusinessUserID,
		Title:              o.Title,
		Revisions:          o.Revisions,
		DeliveryTimeInDays: o.DeliveryTimeInDays,
		Price:              o.Price.StringFixed(2),
		Features:           features,
		OfferType:          string(o.OfferType),
		Status:             string(o.Status),
		CreatedAt:          utils.FormatTime(o.CreatedAt),
		UpdatedAt:          utils.FormatTime(o.UpdatedAt),
	}
}
