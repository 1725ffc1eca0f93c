package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/service"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/models"
)

// owner returns the identity stored by the auth middleware. Handlers behind
// auth always have one; the check guards against mis-wired routes.
func owner(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
	}
	return identity, ok
}

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	identity, ok := owner(w, r)
	if !ok {
		return
	}

	var req models.JobRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	job, err := h.services.JobService.Create(r.Context(), identity, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("job_id", job.ID).Msg("job application created")
	writeJSON(w, r, job, http.StatusCreated)
}

func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	identity, ok := owner(w, r)
	if !ok {
		return
	}

	jobs, err := h.services.JobService.List(r.Context(), identity)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if jobs == nil {
		jobs = []models.JobApplication{}
	}

	writeJSON(w, r, jobs, http.StatusOK)
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	identity, ok := owner(w, r)
	if !ok {
		return
	}

	job, err := h.services.JobService.Get(r.Context(), identity, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, job, http.StatusOK)
}

func (h *Handler) updateJob(w http.ResponseWriter, r *http.Request) {
	identity, ok := owner(w, r)
	if !ok {
		return
	}

	var req models.JobRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	job, err := h.services.JobService.Update(r.Context(), identity, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, job, http.StatusOK)
}

func (h *Handler) deleteJob(w http.ResponseWriter, r *http.Request) {
	identity, ok := owner(w, r)
	if !ok {
		return
	}

	if err := h.services.JobService.Delete(r.Context(), identity, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, r, msgJobDeleted, http.StatusOK)
}
