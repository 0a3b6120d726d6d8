package auth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/GlebRadaev/coderr/internal/dto"
	"github.com/GlebRadaev/coderr/internal/service/authservice"
	"github.com/GlebRadaev/coderr/pkg/utils"
	"github.com/GlebRadaev/coderr/pkg/validate"
)

type Service interface {
	Register(ctx context.Context, reg domain.Registration) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GuestLogin(ctx context.Context, role domain.Role) (*domain.User, error)
	GenerateToken(user *domain.User) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a business or customer account together with its profile
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		201		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request data"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/registration/ [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	user, err := h.authService.Register(r.Context(), domain.Registration{
		Username:         req.Username,
		Email:            req.Email,
		Password:         req.Password,
		RepeatedPassword: req.RepeatedPassword,
		Type:             domain.Role(req.Type),
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	h.respondWithToken(w, http.StatusCreated, user)
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with username and password and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request data"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/login/ [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if errors.Is(err, authservice.ErrInvalidCredentials) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	h.respondWithToken(w, http.StatusOK, user)
}

// GuestLogin godoc
//
//	@Summary		Log in as a guest
//	@Description	Get a short-lived token for the demo customer or business account
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.GuestLoginRequestDTO	false	"Account type, customer by default"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request data"
//	@Failure		404		{object}	utils.Response	"Guest account not provisioned"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/guest-login/ [post]
func (h *AuthHandler) GuestLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.GuestLoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	role := domain.RoleCustomer
	if req.Type != "" {
		role = domain.Role(req.Type)
	}
	user, err := h.authService.GuestLogin(r.Context(), role)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	h.respondWithToken(w, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, code int, user *domain.User) {
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, code, dto.AuthResponseDTO{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Type:     string(user.Role),
		Guest:    user.IsGuest,
	})
}
