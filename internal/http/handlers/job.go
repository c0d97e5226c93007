package handlers

import (
	"net/http"

	"risuwork/internal/app"
	"risuwork/internal/domain/job"
	"risuwork/internal/http/middleware"
	"risuwork/internal/http/response"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type createJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Salary      int64  `json:"salary"`
	Tags        string `json:"tags"`
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req createJobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Create(r.Context(), email, app.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Salary:      req.Salary,
		Tags:        req.Tags,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"message": "job created successfully", "id": created.ID})
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := jobIDFromPath(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	var patch job.Patch
	if err := decodeJSON(r, &patch); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Update(r.Context(), email, jobID, patch); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "job updated successfully"})
}

func (h *JobHandler) Archive(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := jobIDFromPath(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Archive(r.Context(), email, jobID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "job archived successfully"})
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := jobIDFromPath(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	detail, err := h.jobs.Get(r.Context(), email, jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, detail)
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	page, err := h.jobs.ListByCompany(r.Context(), email, pageParam(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, page)
}
