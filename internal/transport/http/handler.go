package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"job-posting-service/internal/entity"
	"job-posting-service/internal/repository/mongodb"
	"job-posting-service/internal/service"
)

type Handler struct {
	jobSvc *service.JobService
}

func NewHandler(jobSvc *service.JobService) *Handler {
	return &Handler{jobSvc: jobSvc}
}

// Welcome godoc
// @Summary Welcome message
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to this fantastic app."})
}

// CreateJob godoc
// @Summary Add a new job
// @Description Inserts a new job record. A unique id is assigned and returned in the response.
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body entity.Job true "job payload (id, created, updated are server-assigned)"
// @Success 201 {object} entity.Job
// @Failure 400 {object} apiError
// @Failure 422 {object} apiError
// @Failure 500 {object} apiError
// @Router /jobs [post]
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var job entity.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}

	created, err := h.jobSvc.CreateJob(r.Context(), &job)
	if err != nil {
		h.respondError(w, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListJobs godoc
// @Summary List all jobs
// @Description Unpaginated; the response is capped at 1000 records.
// @Tags jobs
// @Produce json
// @Success 200 {object} entity.JobCollection
// @Failure 500 {object} apiError
// @Router /jobs [get]
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	collection, err := h.jobSvc.ListJobs(r.Context())
	if err != nil {
		h.respondError(w, err, "")
		return
	}

	writeJSON(w, http.StatusOK, collection)
}

// GetJob godoc
// @Summary Get a single job
// @Tags jobs
// @Produce json
// @Param id path string true "job id (24-char hex)"
// @Success 200 {object} entity.Job
// @Failure 400 {object} apiError
// @Failure 404 {object} apiError
// @Failure 500 {object} apiError
// @Router /jobs/{id} [get]
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	job, err := h.jobSvc.GetJob(r.Context(), id)
	if err != nil {
		h.respondError(w, err, id.Hex())
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// UpdateJob godoc
// @Summary Update a job
// @Description Updates individual fields of an existing record. Missing or null fields are left untouched; an all-null body returns the record unchanged.
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "job id (24-char hex)"
// @Param request body entity.JobUpdate true "fields to overwrite"
// @Success 200 {object} entity.Job
// @Failure 400 {object} apiError
// @Failure 404 {object} apiError
// @Failure 422 {object} apiError
// @Failure 500 {object} apiError
// @Router /jobs/{id} [put]
func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var patch entity.JobUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}

	job, err := h.jobSvc.UpdateJob(r.Context(), id, &patch)
	if err != nil {
		h.respondError(w, err, id.Hex())
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// DeleteJob godoc
// @Summary Delete a job
// @Tags jobs
// @Param id path string true "job id (24-char hex)"
// @Success 204 "no content"
// @Failure 400 {object} apiError
// @Failure 404 {object} apiError
// @Failure 500 {object} apiError
// @Router /jobs/{id} [delete]
func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.jobSvc.DeleteJob(r.Context(), id); err != nil {
		h.respondError(w, err, id.Hex())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} path param. A malformed id is a 400, never a 404.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid id")
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, err error, id string) {
	var verrs service.ValidationErrors
	if errors.As(err, &verrs) {
		writeValidationErr(w, verrs)
		return
	}

	if errors.Is(err, mongodb.ErrNotFound) {
		writeErr(w, http.StatusNotFound, "job "+id+" not found")
		return
	}

	log.Errorf("persistence failure: %v", err)
	writeErr(w, http.StatusInternalServerError, "internal error")
}
