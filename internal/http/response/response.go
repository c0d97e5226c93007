package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"risuwork/internal/common"
)

var logger *slog.Logger = slog.Default()

// SetLogger installs the logger used for internal errors. Client-facing
// bodies never include internal error text.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func Error(w http.ResponseWriter, err error) {
	code := common.CodeOf(err)
	status := statusOf(code)

	message := "internal error"
	var fields map[string]string
	var coded *common.Error
	if errors.As(err, &coded) && code != common.CodeInternal {
		message = coded.Message
		fields = coded.Fields
	}
	if code == common.CodeInternal {
		logger.Error("request failed", "error", err)
	}

	JSON(w, status, errorBody{Error: message, Fields: fields})
}

func statusOf(code common.Code) int {
	switch code {
	case common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeConflict:
		return http.StatusConflict
	case common.CodeUnprocessable:
		return http.StatusUnprocessableEntity
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
