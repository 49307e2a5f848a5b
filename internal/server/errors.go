package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/spigell/cv-assistant/internal/assistant"
	"github.com/spigell/cv-assistant/internal/filtering"
	"github.com/spigell/cv-assistant/internal/recruitment"
)

// requestError is a client mistake detected before any domain call.
type requestError struct {
	msg string
}

func (e *requestError) Error() string { return e.msg }

func badRequest(format string, args ...any) error {
	return &requestError{msg: fmt.Sprintf(format, args...)}
}

// HTTPStatus maps an error to the response status.
func HTTPStatus(err error) int {
	var reqErr *requestError

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &reqErr),
		errors.Is(err, assistant.ErrMalformedInput),
		errors.Is(err, filtering.ErrInvalidPage):
		return http.StatusBadRequest
	case errors.Is(err, assistant.ErrNotFound),
		errors.Is(err, recruitment.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, recruitment.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse writes {"detail": ...}. Internal errors are logged and their
// text is not returned to the client.
func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)

	detail := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("request_id", requestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		detail = "internal server error"
	}

	s.jsonResponse(w, status, map[string]string{"detail": detail})
}

func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}
