// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package publishing

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/campaignhq/campaign-service/internal/http/types"
	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/monitoring"
	"github.com/campaignhq/campaign-service/internal/storage"
	"github.com/campaignhq/campaign-service/internal/tracing"
	"github.com/campaignhq/campaign-service/internal/types"
	"github.com/campaignhq/campaign-service/pkg/authentication"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.service = service
	a.validate = validator.New()
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Post("/publish-jobs", a.enqueue)
	router.Get("/publish-jobs", a.list)
	router.Get("/publish-jobs/{id}", a.get)
}

type enqueueRequest struct {
	AccountID  string   `json:"account_id" validate:"required,uuid"`
	CampaignID string   `json:"campaign_id" validate:"omitempty,uuid"`
	Body       string   `json:"body" validate:"required,max=5000"`
	MediaURLs  []string `json:"media_urls" validate:"omitempty,dive,url"`
	RunAt      string   `json:"run_at" validate:"omitempty"`
}

type jobView struct {
	ID         string   `json:"id"`
	AccountID  string   `json:"account_id"`
	Platform   string   `json:"platform"`
	CampaignID string   `json:"campaign_id,omitempty"`
	Body       string   `json:"body"`
	MediaURLs  []string `json:"media_urls,omitempty"`
	Status     string   `json:"status"`
	Attempts   int      `json:"attempts"`
	LastError  string   `json:"last_error,omitempty"`
	RunAt      string   `json:"run_at"`
}

func newJobView(job *types.PublishJob) jobView {
	return jobView{
		ID:         job.ID,
		AccountID:  job.AccountID,
		Platform:   job.Platform,
		CampaignID: job.CampaignID,
		Body:       job.Body,
		MediaURLs:  job.MediaURLs,
		Status:     job.Status,
		Attempts:   job.Attempts,
		LastError:  job.LastError,
		RunAt:      job.RunAt.UTC().Format(time.RFC3339),
	}
}

func (a *API) enqueue(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "publishing.API.enqueue")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req enqueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteValidationError(w, err)
		return
	}

	job := &types.PublishJob{
		AccountID:  req.AccountID,
		CampaignID: req.CampaignID,
		Body:       req.Body,
		MediaURLs:  req.MediaURLs,
	}

	if req.RunAt != "" {
		runAt, err := time.Parse(time.RFC3339, req.RunAt)
		if err != nil {
			httpTypes.WriteError(w, http.StatusBadRequest, "run_at must be RFC 3339")
			return
		}
		job.RunAt = runAt
	}

	created, err := a.service.Enqueue(ctx, principal.OrgID, job)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusAccepted, "job queued", newJobView(created))
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "publishing.API.list")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	jobs, err := a.service.ListJobs(ctx, principal.OrgID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	views := make([]jobView, 0, len(jobs))
	for _, job := range jobs {
		views = append(views, newJobView(job))
	}

	httpTypes.WriteJSON(w, http.StatusOK, "ok", views)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "publishing.API.get")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	job, err := a.service.GetJob(ctx, principal.OrgID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, "ok", newJobView(job))
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrCampaignNotFound):
		httpTypes.WriteError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		httpTypes.WriteError(w, http.StatusNotFound, "job not found")
	default:
		a.logger.Errorf("publishing request failed: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
