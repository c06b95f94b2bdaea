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

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	categoryService service.CategoryService
	validate        *validator.Validate
	logger          zerolog.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService service.CategoryService, v *validator.Validate, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, validate: v, logger: logger}
}

// RegisterRoutes mounts category routes. Reads are public, writes need an identity.
func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireAuthUnlessSafe).Route("/categories", func(r chi.Router) {
		r.Get("/", h.listCategories)
		r.Post("/", h.createCategory)
		r.Get("/{id:[0-9]+}", h.getCategory)
		r.Put("/{id:[0-9]+}", h.replaceCategory)
		r.Patch("/{id:[0-9]+}", h.patchCategory)
		r.Delete("/{id:[0-9]+}", h.deleteCategory)
	})
}

// listCategories godoc
// @Summary List categories
// @Description Returns every category ordered by name.
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponseDTO
// @Router /categories/ [get]
func (h *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	render.JSON(w, http.StatusOK, dto.NewCategoryListResponse(categories))
}

// createCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body dto.CategoryCreateDTO true "Category"
// @Success 201 {object} dto.CategoryResponseDTO
// @Failure 400 {object} map[string][]string "Validation failed"
// @Failure 401 {object} map[string]string "Authentication credentials were not provided."
// @Router /categories/ [post]
func (h *CategoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryCreateDTO
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if err := dto.Validate(h.validate, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	category := &model.Category{}
	req.ApplyTo(category)
	created, err := h.categoryService.CreateCategory(r.Context(), middleware.IdentityFromContext(r.Context()), category)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	render.JSON(w, http.StatusCreated, dto.NewCategoryResponse(created))
}

// getCategory godoc
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.CategoryResponseDTO
// @Failure 404 {object} map[string]string "Not found."
// @Router /categories/{id}/ [get]
func (h *CategoryHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, r, h.logger, service.ErrCategoryNotFound)
		return
	}
	category, err := h.categoryService.GetCategory(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	render.JSON(w, http.StatusOK, dto.NewCategoryResponse(category))
}

// replaceCategory godoc
// @Summary Replace a category
// @Description name is required; description keeps its value when omitted.
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param category body dto.CategoryCreateDTO true "Category"
// @Success 200 {object} dto.CategoryResponseDTO
// @Failure 400 {object} map[string][]string "Validation failed"
// @Failure 401 {object} map[string]string "Authentication credentials were not provided."
// @Failure 404 {object} map[string]string "Not found."
// @Router /categories/{id}/ [put]
func (h *CategoryHandler) replaceCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryCreateDTO
	h.updateCategory(w, r, &req, func(c *model.Category) { req.ApplyTo(c) })
}

// patchCategory godoc
// @Summary Partially update a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param category body dto.CategoryUpdateDTO true "Fields to change"
// @Success 200 {object} dto.CategoryResponseDTO
// @Failure 400 {object} map[string][]string "Validation failed"
// @Failure 401 {object} map[string]string "Authentication credentials were not provided."
// @Failure 404 {object} map[string]string "Not found."
// @Router /categories/{id}/ [patch]
func (h *CategoryHandler) patchCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryUpdateDTO
	h.updateCategory(w, r, &req, func(c *model.Category) { req.ApplyTo(c) })
}

// updateCategory decodes into req up front but reports decode and validation
// failures only after the category has been found.
func (h *CategoryHandler) updateCategory(w http.ResponseWriter, r *http.Request, req any, apply func(*model.Category)) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, r, h.logger, service.ErrCategoryNotFound)
		return
	}
	decodeErr := decodeJSON(w, r, req)

	updated, err := h.categoryService.UpdateCategory(r.Context(), middleware.IdentityFromContext(r.Context()), id, func(c *model.Category) error {
		if decodeErr != nil {
			return decodeErr
		}
		if err := dto.Validate(h.validate, req); err != nil {
			return err
		}
		apply(c)
		return nil
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	render.JSON(w, http.StatusOK, dto.NewCategoryResponse(updated))
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Courses in the category are kept with their category cleared.
// @Tags categories
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 204
// @Failure 401 {object} map[string]string "Authentication credentials were not provided."
// @Failure 404 {object} map[string]string "Not found."
// @Router /categories/{id}/ [delete]
func (h *CategoryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, r, h.logger, service.ErrCategoryNotFound)
		return
	}
	if err := h.categoryService.DeleteCategory(r.Context(), middleware.IdentityFromContext(r.Context()), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
