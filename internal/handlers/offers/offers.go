package offers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/GlebRadaev/coderr/internal/dto"
	"github.com/GlebRadaev/coderr/internal/service/offerservice"
	"github.com/GlebRadaev/coderr/pkg/auth"
	"github.com/GlebRadaev/coderr/pkg/utils"
	"github.com/GlebRadaev/coderr/pkg/validate"
	"github.com/shopspring/decimal"
)

type Service interface {
	List(ctx context.Context, filter domain.OfferFilter, page, pageSize int) (*offerservice.Page, error)
	GetOffer(ctx context.Context, caller domain.Caller, id int) (*domain.Offer, error)
	GetDetail(ctx context.Context, id int) (*domain.OfferDetail, error)
	CanCreate(caller domain.Caller) error
	CanEdit(ctx context.Context, caller domain.Caller, id int) error
	CreateOffer(ctx context.Context, caller domain.Caller, offer *domain.Offer) (*domain.Offer, error)
	UpdateOffer(ctx context.Context, caller domain.Caller, id int, patch domain.OfferPatch) (*domain.Offer, error)
	ReplaceOffer(ctx context.Context, caller domain.Caller, id int, offer *domain.Offer) (*domain.Offer, error)
	DeleteOffer(ctx context.Context, caller domain.Caller, id int) error
}

type OfferHandler struct {
	offerService Service
	// hide creator details from guest tokens
	restrictGuests bool
}

func New(offerService Service, restrictGuests bool) *OfferHandler {
	return &OfferHandler{
		offerService:   offerService,
		restrictGuests: restrictGuests,
	}
}

// ListOffers godoc
//
//	@Summary		List offers
//	@Description	Public, paginated offer listing with filters
//	@Tags			Offers
//	@Produce		json
//	@Param			creator_id			query		int		false	"Only offers of this business user"
//	@Param			min_price			query		number	false	"Offers with a tier priced at least this"
//	@Param			max_delivery_time	query		int		false	"Offers with a tier deliverable within this many days"
//	@Param			search				query		string	false	"Search title and description"
//	@Param			ordering			query		string	false	"updated_at, -updated_at, min_price or -min_price"
//	@Param			page				query		int		false	"Page number"
//	@Param			page_size			query		int		false	"Page size"
//	@Success		200					{object}	dto.OfferPageResponseDTO
//	@Failure		400					{object}	utils.Response	"Invalid request data"
//	@Failure		404					{object}	utils.Response	"Invalid page"
//	@Router			/api/offers/ [get]
func (h *OfferHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	filter, page, pageSize, err := parseListQuery(r.URL.Query())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	result, err := h.offerService.List(r.Context(), filter, page, pageSize)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	caller := auth.CallerFrom(r.Context())
	response := dto.OfferPageResponseDTO{
		Count:   result.Count,
		Results: make([]dto.OfferResponseDTO, 0, len(result.Offers)),
	}
	for i := range result.Offers {
		response.Results = append(response.Results, h.toResponse(&result.Offers[i], caller))
	}
	if result.HasNext {
		response.Next = pageURL(r.URL, result.Page+1)
	}
	if result.Page > 1 {
		response.Previous = pageURL(r.URL, result.Page-1)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOffer godoc
//
//	@Summary	Get an offer
//	@Tags		Offers
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Offer ID"
//	@Success	200	{object}	dto.OfferResponseDTO
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/offers/{id}/ [get]
func (h *OfferHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.PathID(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
		return
	}
	caller := auth.CallerFrom(r.Context())
	offer, err := h.offerService.GetOffer(r.Context(), caller, id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toResponse(offer, caller))
}

// GetOfferDetail godoc
//
//	@Summary	Get one offer tier
//	@Tags		Offers
//	@Produce	json
//	@Param		id	path		int	true	"Offer detail ID"
//	@Success	200	{object}	dto.OfferDetailResponseDTO
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/offerdetails/{id}/ [get]
func (h *OfferHandler) GetOfferDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.PathID(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
		return
	}
	detail, err := h.offerService.GetDetail(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDetailResponse(detail))
}

// CreateOffer godoc
//
//	@Summary		Create an offer
//	@Description	Business users create an offer with exactly one basic, standard and premium tier
//	@Tags			Offers
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.OfferRequestDTO	true	"Offer with three tiers"
//	@Success		201		{object}	dto.OfferFullResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request data"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Router			/api/offers/ [post]
func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFrom(r.Context())
	if err := h.offerService.CanCreate(caller); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	offer, ok := decodeOffer(w, r)
	if !ok {
		return
	}
	created, err := h.offerService.CreateOffer(r.Context(), caller, offer)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toFullResponse(created))
}

// ReplaceOffer godoc
//
//	@Summary	Replace an offer
//	@Tags		Offers
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int					true	"Offer ID"
//	@Param		request	body		dto.OfferRequestDTO	true	"Full offer with three tiers"
//	@Success	200		{object}	dto.OfferFullResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request data"
//	@Failure	401		{object}	utils.Response	"Unauthorized"
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Failure	404		{object}	utils.Response	"Not found"
//	@Router		/api/offers/{id}/ [put]
func (h *OfferHandler) ReplaceOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.PathID(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
		return
	}
	caller := auth.CallerFrom(r.Context())
	if err := h.offerService.CanEdit(r.Context(), caller, id); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	offer, ok := decodeOffer(w, r)
	if !ok {
		return
	}
	updated, err := h.offerService.ReplaceOffer(r.Context(), caller, id, offer)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toFullResponse(updated))
}

// UpdateOffer godoc
//
//	@Summary		Partially update an offer
//	@Description	Tiers in the payload are matched by offer_type. A features list replaces the stored one.
//	@Tags			Offers
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int							true	"Offer ID"
//	@Param			request	body		dto.OfferPatchRequestDTO	true	"Fields to update"
//	@Success		200		{object}	dto.OfferFullResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request data"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Not found"
//	@Router			/api/offers/{id}/ [patch]
func (h *OfferHandler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.PathID(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
		return
	}
	caller := auth.CallerFrom(r.Context())
	if err := h.offerService.CanEdit(r.Context(), caller, id); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	var req dto.OfferPatchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	patch := domain.OfferPatch{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	}
	for _, d := range req.Details {
		patch.Details = append(patch.Details, domain.OfferDetailPatch{
			OfferType:          domain.OfferType(d.OfferType),
			Title:              d.Title,
			Revisions:          d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              d.Price,
			Features:           d.Features,
		})
	}
	updated, err := h.offerService.UpdateOffer(r.Context(), caller, id, patch)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toFullResponse(updated))
}

// DeleteOffer godoc
//
//	@Summary	Delete an offer
//	@Tags		Offers
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Offer ID"
//	@Success	204
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/offers/{id}/ [delete]
func (h *OfferHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.PathID(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
		return
	}
	if err := h.offerService.DeleteOffer(r.Context(), auth.CallerFrom(r.Context()), id); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func parseListQuery(q url.Values) (domain.OfferFilter, int, int, error) {
	var filter domain.OfferFilter
	verr := &domain.ValidationError{}

	intParam := func(name string) *int {
		raw := q.Get(name)
		if raw == "" {
			return nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			verr.Add(name, "A valid integer is required.")
			return nil
		}
		return &v
	}

	filter.CreatorID = intParam("creator_id")
	filter.MaxDeliveryTime = intParam("max_delivery_time")
	if raw := q.Get("min_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			verr.Add("min_price", "A valid number is required.")
		} else {
			filter.MinPrice = &price
		}
	}
	filter.Search = q.Get("search")
	filter.Ordering = q.Get("ordering")

	page, pageSize := 1, 0
	if v := intParam("page"); v != nil {
		page = *v
	}
	if v := intParam("page_size"); v != nil {
		pageSize = *v
	}
	if !verr.Empty() {
		return filter, 0, 0, verr
	}
	return filter, page, pageSize, nil
}

func pageURL(u *url.URL, page int) *string {
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	link := u.Path + "?" + q.Encode()
	return &link
}

func decodeOffer(w http.ResponseWriter, r *http.Request) (*domain.Offer, bool) {
	var req dto.OfferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return nil, false
	}

	offer := &domain.Offer{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	}
	for _, d := range req.Details {
		features := d.Features
		if features == nil {
			features = []string{}
		}
		offer.Details = append(offer.Details, domain.OfferDetail{
			OfferType:          domain.OfferType(d.OfferType),
			Title:              d.Title,
			Revisions:          d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              *d.Price,
			Features:           features,
		})
	}
	return offer, true
}

func (h *OfferHandler) toResponse(offer *domain.Offer, caller domain.Caller) dto.OfferResponseDTO {
	resp := dto.OfferResponseDTO{
		ID:              offer.ID,
		User:            offer.CreatorID,
		Title:           offer.Title,
		Image:           offer.Image,
		Description:     offer.Description,
		CreatedAt:       utils.FormatTime(offer.CreatedAt),
		UpdatedAt:       utils.FormatTime(offer.UpdatedAt),
		Details:         make([]dto.OfferDetailRefDTO, 0, len(offer.Details)),
		MinPrice:        offer.MinPrice.StringFixed(2),
		MinDeliveryTime: offer.MinDeliveryTime,
	}
	for _, d := range offer.Details {
		resp.Details = append(resp.Details, dto.OfferDetailRefDTO{
			ID:  d.ID,
			URL: "/offerdetails/" + strconv.Itoa(d.ID) + "/",
		})
	}
	if !(h.restrictGuests && caller.IsGuest) {
		resp.UserDetails = &dto.UserDetailsDTO{
			FirstName: offer.Creator.FirstName,
			LastName:  offer.Creator.LastName,
			Username:  offer.Creator.Username,
		}
	}
	return resp
}

func toFullResponse(offer *domain.Offer) dto.OfferFullResponseDTO {
	resp := dto.OfferFullResponseDTO{
		ID:          offer.ID,
		Title:       offer.Title,
		Image:       offer.Image,
		Description: offer.Description,
		Details:     make([]dto.OfferDetailResponseDTO, 0, len(offer.Details)),
	}
	for i := range offer.Details {
		resp.Details = append(resp.Details, toDetailResponse(&offer.Details[i]))
	}
	return resp
}

func toDetailResponse(d *domain.OfferDetail) dto.OfferDetailResponseDTO {
	features := d.Features
	if features == nil {
		features = []string{}
	}
	return dto.OfferDetailResponseDTO{
		ID:                 d.ID,
		Title:              d.Title,
		Revisions:          d.Revisions,
		DeliveryTimeInDays: d.DeliveryTimeInDays,
		Price:              d.Price.StringFixed(2),
		Features:           features,
		OfferType:          string(d.OfferType),
	}
}
