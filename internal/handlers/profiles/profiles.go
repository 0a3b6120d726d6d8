package profiles

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
	GetProfile(ctx context.Context, caller domain.Caller, userID int) (*domain.Profile, error)
	ListProfiles(ctx context.Context, caller domain.Caller, role domain.Role) ([]domain.Profile, error)
	UpdateProfile(ctx context.Context, caller domain.Caller, userID int, upd domain.ProfileUpdate) (*domain.Profile, error)
	CanEdit(ctx context.Context, caller domain.Caller, userID int) error
}

type ProfileHandler struct {
	profileService Service
}

func New(profileService Service) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile godoc
//
//	@Summary		Get a profile
//	@Tags			Profiles
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Not found"
//	@Router			/api/profile/{id}/ [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.PathID(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
		return
	}
	profile, err := h.profileService.GetProfile(r.Context(), auth.CallerFrom(r.Context()), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(profile))
}

// UpdateProfile godoc
//
//	@Summary		Update own profile
//	@Description	Partially update the caller's profile. The account type cannot be changed.
//	@Tags			Profiles
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int							true	"User ID"
//	@Param			request	body		dto.ProfileUpdateRequestDTO	true	"Fields to update"
//	@Success		200		{object}	dto.ProfileResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request data"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Not found"
//	@Router			/api/profile/{id}/ [patch]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.PathID(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
		return
	}
	caller := auth.CallerFrom(r.Context())
	if err := h.profileService.CanEdit(r.Context(), caller, id); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	var req dto.ProfileUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	profile, err := h.profileService.UpdateProfile(r.Context(), caller, id, domain.ProfileUpdate{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		File:         req.File,
		Location:     req.Location,
		Tel:          req.Tel,
		Description:  req.Description,
		WorkingHours: req.WorkingHours,
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(profile))
}

// ListProfiles godoc
//
//	@Summary		List profiles by type
//	@Tags			Profiles
//	@Produce		json
//	@Security		BearerAuth
//	@Param			type	query		string	true	"business or customer"
//	@Success		200		{array}		dto.ProfileResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request data"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Router			/api/profiles/ [get]
func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.Role(r.URL.Query().Get("type")))
}

// ListBusinessProfiles godoc
//
//	@Summary	List business profiles
//	@Tags		Profiles
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.ProfileResponseDTO
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Router		/api/profiles/business/ [get]
func (h *ProfileHandler) ListBusinessProfiles(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.RoleBusiness)
}

// ListCustomerProfiles godoc
//
//	@Summary	List customer profiles
//	@Tags		Profiles
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.ProfileResponseDTO
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Router		/api/profiles/customer/ [get]
func (h *ProfileHandler) ListCustomerProfiles(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.RoleCustomer)
}

func (h *ProfileHandler) list(w http.ResponseWriter, r *http.Request, role domain.Role) {
	profiles, err := h.profileService.ListProfiles(r.Context(), auth.CallerFrom(r.Context()), role)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	response := make([]dto.ProfileResponseDTO, 0, len(profiles))
	for i := range profiles {
		response = append(response, toResponse(&profiles[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toResponse(p *domain.Profile) dto.ProfileResponseDTO {
	return dto.ProfileResponseDTO{
		User:         p.UserID,
		Username:     p.Username,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		File:         p.File,
		Location:     p.Location,
		Tel:          p.Tel,
		Description:  p.Description,
		WorkingHours: p.WorkingHours,
		Type:         string(p.Type),
		Email:        p.Email,
		CreatedAt:    utils.FormatTime(p.CreatedAt),
	}
}
