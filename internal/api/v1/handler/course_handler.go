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

// CourseHandler handles course-related endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, v *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{courseService: courseService, validate: v, logger: logger}
}

// RegisterRoutes mounts course routes
func (h *CourseHandler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireAuthUnlessSafe).Route("/courses", func(r chi.Router) {
		r.Get("/", h.listCourses)
		r.Post("/", h.createCourse)
		r.Get("/{id:[0-9]+}", h.getCourse)
		r.Put("/{id:[0-9]+}", h.replaceCourse)
		r.Patch("/{id:[0-9]+}", h.patchCourse)
		r.Delete("/{id:[0-9]+}", h.deleteCourse)
	})
}

// listCourses godoc
// @Summary List courses
// @Description Returns every course, newest first.
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseResponseDTO
// @Router /courses/ [get]
func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.ListCourses(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	render.JSON(w, http.StatusOK, dto.NewCourseListResponse(courses))
}

// createCourse godoc
// @Summary Create a new course
// @Description Creates a course taught by the authenticated user. Any instructor in the body is ignored.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course body dto.CourseCreateDTO true "Course creation request"
// @Success 201 {object} dto.CourseResponseDTO
// @Failure 400 {object} map[string][]string "Validation failed"
// @Failure 401 {object} map[string]string "Authentication credentials were not provided."
// @Router /courses/ [post]
func (h *CourseHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	var req dto.CourseCreateDTO
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if err := dto.Validate(h.validate, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	course := &model.Course{}
	req.ApplyTo(course)
	created, err := h.courseService.CreateCourse(r.Context(), middleware.IdentityFromContext(r.Context()), course)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	render.JSON(w, http.StatusCreated, dto.NewCourseResponse(created))
}

// getCourse godoc
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 404 {object} map[string]string "Not found."
// @Router /courses/{id}/ [get]
func (h *CourseHandler) getCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, r, h.logger, service.ErrCourseNotFound)
		return
	}
	course, err := h.courseService.GetCourse(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	render.JSON(w, http.StatusOK, dto.NewCourseResponse(course))
}

// replaceCourse godoc
// @Summary Replace a course
// @Description title and description are required. Only the instructor may update.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param course body dto.CourseCreateDTO true "Course"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 400 {object} map[string][]string "Validation failed"
// @Failure 401 {object} map[string]string "Authentication credentials were not provided."
// @Failure 403 {object} map[string]string "Not the instructor"
// @Failure 404 {object} map[string]string "Not found."
// @Router /courses/{id}/ [put]
func (h *CourseHandler) replaceCourse(w http.ResponseWriter, r *http.Request) {
	var req dto.CourseCreateDTO
	h.updateCourse(w, r, &req, func(c *model.Course) { req.ApplyTo(c) })
}

// patchCourse godoc
// @Summary Partially update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param course body dto.CourseUpdateDTO true "Fields to change"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 400 {object} map[string][]string "Validation failed"
// @Failure 401 {object} map[string]string "Authentication credentials were not provided."
// @Failure 403 {object} map[string]string "Not the instructor"
// @Failure 404 {object} map[string]string "Not found."
// @Router /courses/{id}/ [patch]
func (h *CourseHandler) patchCourse(w http.ResponseWriter, r *http.Request) {
	var req dto.CourseUpdateDTO
	h.updateCourse(w, r, &req, func(c *model.Course) { req.ApplyTo(c) })
}

func (h *CourseHandler) updateCourse(w http.ResponseWriter, r *http.Request, req any, apply func(*model.Course)) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, r, h.logger, service.ErrCourseNotFound)
		return
	}
	decodeErr := decodeJSON(w, r, req)

	updated, err := h.courseService.UpdateCourse(r.Context(), middleware.IdentityFromContext(r.Context()), id, func(c *model.Course) error {
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
	render.JSON(w, http.StatusOK, dto.NewCourseResponse(updated))
}

// deleteCourse godoc
// @Summary Delete a course
// @Description Only the instructor may delete.
// @Tags courses
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 204
// @Failure 401 {object} map[string]string "Authentication credentials were not provided."
// @Failure 403 {object} map[string]string "Not the instructor"
// @Failure 404 {object} map[string]string "Not found."
// @Router /courses/{id}/ [delete]
func (h *CourseHandler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, r, h.logger, service.ErrCourseNotFound)
		return
	}
	if err := h.courseService.DeleteCourse(r.Context(), middleware.IdentityFromContext(r.Context()), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
