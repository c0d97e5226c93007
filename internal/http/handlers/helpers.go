package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"risuwork/internal/common"
)

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return common.NewError(common.CodeValidation, "invalid request payload", err)
	}
	return nil
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "not logged in", nil)
}

// jobIDFromPath extracts the id segment from /api/cl/job/{jobid}[/archive].
func jobIDFromPath(r *http.Request) (int64, error) {
	trimmed := strings.TrimPrefix(r.URL.Path, "/api/cl/job/")
	if idx := strings.IndexByte(trimmed, '/'); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || id <= 0 {
		return 0, common.NewError(common.CodeNotFound, "job not found", err)
	}
	return id, nil
}

// pageParam reads the 0-indexed page query parameter; anything unparsable
// falls back to page 0.
func pageParam(r *http.Request) int {
	value := r.URL.Query().Get("page")
	if value == "" {
		return 0
	}
	page, err := strconv.Atoi(value)
	if err != nil || page < 0 {
		return 0
	}
	return page
}

func intParam(r *http.Request, name string) int64 {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}
