package handler

import (
	"net/http"

	"coursecatalog/internal/api/v1/dto"
	"coursecatalog/internal/api/v1/render"
	"coursecatalog/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// AuthHandler handles registration and token endpoints
type AuthHandler struct {
	userService service.UserService
	authService service.AuthService
	validate    *validator.Validate
	logger      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService service.UserService, authService service.AuthService, v *validator.Validate, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{userService: userService, authService: authService, validate: v, logger: logger}
}

// RegisterRoutes mounts /register.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
}

// RegisterTokenRoutes mounts /login and /token/refresh. These routes ignore
// any Authorization header, so they must sit outside the auth middleware.
func (h *AuthHandler) RegisterTokenRoutes(r chi.Router) {
	r.Post("/login", h.login)
	r.Post("/token/refresh", h.refresh)
}

// register godoc
// @Summary Register a user
// @Description Creates a new account. The password is stored as a bcrypt hash and never returned.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequestDTO true "Registration request"
// @Success 201 {object} dto.UserResponseDTO
// @Failure 400 {object} map[string][]string "Validation failed"
// @Router /register/ [post]
func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if err := dto.Validate(h.validate, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	user, err := h.userService.Register(r.Context(), req.Input())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	h.logger.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("User registered")
	render.JSON(w, http.StatusCreated, dto.NewUserResponse(user))
}

// login godoc
// @Summary Obtain a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequestDTO true "Username and password"
// @Success 200 {object} dto.TokenPairDTO
// @Failure 400 {object} map[string][]string "Validation failed"
// @Failure 401 {object} map[string]string "No active account found with the given credentials"
// @Router /login/ [post]
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if err := dto.Validate(h.validate, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	pair, err := h.authService.Login(r.Context(), *req.Username, *req.Password)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	render.JSON(w, http.StatusOK, dto.TokenPairDTO{Access: pair.Access, Refresh: pair.Refresh})
}

// refresh godoc
// @Summary Refresh an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.RefreshRequestDTO true "Refresh token"
// @Success 200 {object} dto.RefreshResponseDTO
// @Failure 400 {object} map[string][]string "Validation failed"
// @Failure 401 {object} map[string]string "Token is invalid or expired"
// @Router /token/refresh/ [post]
func (h *AuthHandler) refresh(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshRequestDTO
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if err := dto.Validate(h.validate, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	res, err := h.authService.Refresh(r.Context(), *req.Refresh)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	render.JSON(w, http.StatusOK, dto.RefreshResponseDTO{Access: res.Access, Refresh: res.Refresh})
}
