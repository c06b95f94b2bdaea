package handler

import (
	"net/http"

	"coursecatalog/internal/api/v1/dto"
	"coursecatalog/internal/api/v1/render"
	"coursecatalog/internal/middleware"
	"coursecatalog/internal/model"
	"coursecatalog/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type UserHandler struct {
	userService service.UserService
	validate    *validator.Validate
	logger      zerolog.Logger
}

func NewUserHandler(userService service.UserService, v *validator.Validate, logger zerolog.Logger) *UserHandler {
	return &UserHandler{userService: userService, validate: v, logger: logger}
}

// RegisterRoutes mounts the profile routes. Every route requires an identity.
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireAuth).Route("/profile", func(r chi.Router) {
		r.Get("/", h.getProfile)
		r.Put("/", h.updateProfile)
		r.Patch("/", h.updateProfile)
	})
}

// getProfile godoc
// @Summary Get the current user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponseDTO
// @Failure 401 {object} map[string]string "Authentication credentials were not provided."
// @Router /profile/ [get]
func (h *UserHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, r, h.logger, service.ErrUnauthenticated)
		return
	}

	user, err := h.userService.Get(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	render.JSON(w, http.StatusOK, dto.NewUserResponse(user))
}

// updateProfile godoc
// @Summary Update the current user's names
// @Description Only first_name and last_name are writable; username and email are ignored.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body dto.ProfileUpdateDTO true "Profile fields"
// @Success 200 {object} dto.UserResponseDTO
// @Failure 400 {object} map[string][]string "Validation failed"
// @Failure 401 {object} map[string]string "Authentication credentials were not provided."
// @Router /profile/ [put]
// @Router /profile/ [patch]
func (h *UserHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.ProfileUpdateDTO
	decodeErr := decodeJSON(w, r, &req)

	user, err := h.userService.UpdateProfile(r.Context(), middleware.IdentityFromContext(r.Context()), func(u *model.User) error {
		if decodeErr != nil {
			return decodeErr
		}
		if err := dto.Validate(h.validate, &req); err != nil {
			return err
		}
		req.ApplyTo(u)
		return nil
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	render.JSON(w, http.StatusOK, dto.NewUserResponse(user))
}
