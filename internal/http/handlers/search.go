package handlers

import (
	"net/http"

	"risuwork/internal/app"
	"risuwork/internal/http/response"
)

type SearchHandler struct {
	search *app.SearchService
}

func NewSearchHandler(search *app.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// Search is the public surface; no identity required.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := app.SearchQuery{
		Keyword:    r.URL.Query().Get("keyword"),
		MinSalary:  intParam(r, "min_salary"),
		MaxSalary:  intParam(r, "max_salary"),
		Tag:        r.URL.Query().Get("tag"),
		IndustryID: r.URL.Query().Get("industry_id"),
		Page:       pageParam(r),
	}
	page, err := h.search.Search(r.Context(), query)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, page)
}
