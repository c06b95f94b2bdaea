package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"coursecatalog/internal/api/v1/dto"
	"coursecatalog/internal/api/v1/render"
	"coursecatalog/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const (
	msgNotFound        = "Not found."
	msgInternal        = "Internal server error."
	msgNotProvided     = "Authentication credentials were not provided."
	msgForbidden       = "You do not have permission to perform this action."
	msgBadCredentials  = "No active account found with the given credentials"
	msgTokenInvalid    = "Token is invalid or expired"
	codeTokenNotValid  = "token_not_valid"
	bearerChallenge    = `Bearer realm="api"`
	maxRequestBodySize = 1 << 20
)

// decodeJSON reads the request body into dst. An empty body decodes as an
// empty object so that missing fields are reported by validation.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return dto.DecodeError(err)
}

// idParam returns the numeric {id} URL parameter. Route patterns only match
// digits, so a parse failure means the value overflowed.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// writeError maps service and decoding errors onto HTTP responses. Unknown
// errors are logged and reported as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, logger zerolog.Logger, err error) {
	var verr *service.ValidationError
	var malformed *dto.MalformedError
	switch {
	case errors.As(err, &verr):
		render.JSON(w, http.StatusBadRequest, verr.Fields)
	case errors.As(err, &malformed):
		render.Detail(w, http.StatusBadRequest, malformed.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", bearerChallenge)
		render.Detail(w, http.StatusUnauthorized, msgBadCredentials)
	case errors.Is(err, service.ErrInvalidToken):
		w.Header().Set("WWW-Authenticate", bearerChallenge)
		render.DetailCode(w, http.StatusUnauthorized, msgTokenInvalid, codeTokenNotValid)
	case errors.Is(err, service.ErrUnauthenticated):
		w.Header().Set("WWW-Authenticate", bearerChallenge)
		render.Detail(w, http.StatusUnauthorized, msgNotProvided)
	case errors.Is(err, service.ErrForbidden):
		render.Detail(w, http.StatusForbidden, msgForbidden)
	case errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrUserNotFound):
		render.Detail(w, http.StatusNotFound, msgNotFound)
	default:
		logger.Error().
			Err(err).
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Request failed")
		render.Detail(w, http.StatusInternalServerError, msgInternal)
	}
}
