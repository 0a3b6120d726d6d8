package reviews

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
	CanEdit(ctx context.Context, caller domain.Caller, id int) error
	CreateReview(ctx context.Context, caller domain.Caller, review *domain.Review) (*domain.Review, error)
	ListReviews(ctx context.Context, caller domain.Caller, filter domain.ReviewFilter) ([]domain.Review, error)
	UpdateReview(ctx context.Context, caller domain.Caller, id int, patch domain.ReviewPatch) (*domain.Review, error)
	DeleteReview(ctx context.Context, caller domain.Caller, id int) error
}

type ReviewHandler struct {
	reviewService Service
}

func New(reviewService Service) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// ListReviews godoc
//
//	@Summary	List reviews
//	@Tags		Reviews
//	@Produce	json
//	@Security	BearerAuth
//	@Param		business_user_id	query		int		false	"Reviews of this business"
//	@Param		reviewer_id			query		int		false	"Reviews written by this customer"
//	@Param		ordering			query		string	false	"updated_at, -updated_at, rating or -rating"
//	@Success	200					{array}		dto.ReviewResponseDTO
//	@Failure	400					{object}	utils.Response	"Invalid request data"
//	@Failure	401					{object}	utils.Response	"Unauthorized"
//	@Router		/api/reviews/ [get]
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	verr := &domain.ValidationError{}
	businessUserID, ok := utils.QueryInt(r, "business_user_id")
	if !ok {
		verr.Add("business_user_id", "A valid integer is required.")
	}
	reviewerID, ok := utils.QueryInt(r, "reviewer_id")
	if !ok {
		verr.Add("reviewer_id", "A valid integer is required.")
	}
	if !verr.Empty() {
		utils.RespondWithServiceError(w, verr)
		return
	}

	reviews, err := h.reviewService.ListReviews(r.Context(), auth.CallerFrom(r.Context()), domain.ReviewFilter{
		BusinessUserID: businessUserID,
		ReviewerID:     reviewerID,
		Ordering:       r.URL.Query().Get("ordering"),
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	response := make([]dto.ReviewResponseDTO, 0, len(reviews))
	for i := range reviews {
		response = append(response, toResponse(&reviews[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateReview godoc
//
//	@Summary		Review a business
//	@Description	Customers may review each business once
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateReviewRequestDTO	true	"Review"
//	@Success		201		{object}	dto.ReviewResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request data"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Only customers can review"
//	@Failure		409		{object}	utils.Response	"Business already reviewed"
//	@Router			/api/reviews/ [post]
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFrom(r.Context())
	if err := h.reviewService.CanCreate(caller); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	var req dto.CreateReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	review, err := h.reviewService.CreateReview(r.Context(), caller, &domain.Review{
		BusinessUserID: req.BusinessUser,
		Rating:         req.Rating,
		Description:    req.Description,
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(review))
}

// UpdateReview godoc
//
//	@Summary	Edit own review
//	@Tags		Reviews
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int							true	"Review ID"
//	@Param		request	body		dto.ReviewPatchRequestDTO	true	"Fields to update"
//	@Success	200		{object}	dto.ReviewResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request data"
//	@Failure	401		{object}	utils.Response	"Unauthorized"
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Failure	404		{object}	utils.Response	"Not found"
//	@Router		/api/reviews/{id}/ [patch]
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.PathID(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
		return
	}
	caller := auth.CallerFrom(r.Context())
	if err := h.reviewService.CanEdit(r.Context(), caller, id); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	var req dto.ReviewPatchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	review, err := h.reviewService.UpdateReview(r.Context(), caller, id, domain.ReviewPatch{
		Rating:      req.Rating,
		Description: req.Description,
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(review))
}

// DeleteReview godoc
//
//	@Summary	Delete own review
//	@Tags		Reviews
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Review ID"
//	@Success	204
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/reviews/{id}/ [delete]
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.PathID(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
		return
	}
	if err := h.reviewService.DeleteReview(r.Context(), auth.CallerFrom(r.Context()), id); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func toResponse(rv *domain.Review) dto.ReviewResponseDTO {
	return dto.ReviewResponseDTO{
		ID:           rv.ID,
		BusinessUser: rv.BusinessUserID,
		Reviewer:     rv.ReviewerID,
		Rating:       rv.Rating,
		Description:  rv.Description,
		CreatedAt:    utils.FormatTime(rv.CreatedAt),
		UpdatedAt:    utils.FormatTime(rv.UpdatedAt),
	}
}
