package common

import (
	"encoding/json"
	"go-cuts-api/logger"
	"net/http"

	"github.com/sirupsen/logrus"
)

// AppError is the transport-level error envelope for everything that fails
// before a request reaches GraphQL execution (bad payloads, oversized
// uploads, method mismatches). Resolver-level failures travel inside the
// GraphQL response instead.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Send writes the error as a JSON response. The internal error is logged but
// never exposed to the caller.
func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil {
		logger.Log.WithFields(logrus.Fields{
			"status_code":    e.Code,
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Code)
	json.NewEncoder(w).Encode(e)
}
