// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package campaigns

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
	router.Post("/campaigns", a.create)
	router.Get("/campaigns", a.list)
	router.Get("/campaigns/{id}", a.get)
	router.Patch("/campaigns/{id}", a.update)
	router.Delete("/campaigns/{id}", a.delete)
	router.Post("/campaigns/{id}/content-plans", a.createContentPlan)
	router.Get("/campaigns/{id}/content-plans", a.listContentPlans)
	router.Post("/audiences", a.createAudience)
	router.Get("/audiences", a.listAudiences)
	router.Delete("/audiences/{id}", a.deleteAudience)
}

type campaignRequest struct {
	Name     string     `json:"name" validate:"required,min=1,max=200"`
	Goal     string     `json:"goal" validate:"max=2000"`
	Status   string     `json:"status" validate:"omitempty,oneof=draft active paused archived"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "campaigns.API.create")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteValidationError(w, err)
		return
	}

	campaign := &types.Campaign{Name: req.Name, Goal: req.Goal, Status: req.Status}
	if req.StartsAt != nil {
		campaign.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		campaign.EndsAt = *req.EndsAt
	}

	created, err := a.service.CreateCampaign(ctx, principal.OrgID, campaign)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, "campaign created", created)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "campaigns.API.list")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	campaigns, err := a.service.ListCampaigns(ctx, principal.OrgID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, "ok", campaigns)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "campaigns.API.get")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	campaign, err := a.service.GetCampaign(ctx, principal.OrgID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, "ok", campaign)
}

type campaignUpdateRequest struct {
	Name     *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Goal     *string    `json:"goal" validate:"omitempty,max=2000"`
	Status   *string    `json:"status" validate:"omitempty,oneof=draft active paused archived"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "campaigns.API.update")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req campaignUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteValidationError(w, err)
		return
	}

	campaign := &types.Campaign{ID: chi.URLParam(r, "id")}
	paths := make([]string, 0, 5)
	if req.Name != nil {
		campaign.Name = *req.Name
		paths = append(paths, "name")
	}
	if req.Goal != nil {
		campaign.Goal = *req.Goal
		paths = append(paths, "goal")
	}
	if req.Status != nil {
		campaign.Status = *req.Status
		paths = append(paths, "status")
	}
	if req.StartsAt != nil {
		campaign.StartsAt = *req.StartsAt
		paths = append(paths, "starts_at")
	}
	if req.EndsAt != nil {
		campaign.EndsAt = *req.EndsAt
		paths = append(paths, "ends_at")
	}

	if len(paths) == 0 {
		httpTypes.WriteError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	updated, err := a.service.UpdateCampaign(ctx, principal.OrgID, campaign, paths)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, "campaign updated", updated)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "campaigns.API.delete")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	if err := a.service.DeleteCampaign(ctx, principal.OrgID, chi.URLParam(r, "id")); err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, "campaign deleted", nil)
}

type contentPlanRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	Body  string `json:"body" validate:"required"`
}

func (a *API) createContentPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "campaigns.API.createContentPlan")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req contentPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteValidationError(w, err)
		return
	}

	plan := &types.ContentPlan{CampaignID: chi.URLParam(r, "id"), Title: req.Title, Body: req.Body}
	created, err := a.service.CreateContentPlan(ctx, principal.OrgID, plan)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, "content plan created", created)
}

func (a *API) listContentPlans(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "campaigns.API.listContentPlans")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	plans, err := a.service.ListContentPlans(ctx, principal.OrgID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, "ok", plans)
}

type audienceRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

func (a *API) createAudience(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "campaigns.API.createAudience")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req audienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteValidationError(w, err)
		return
	}

	created, err := a.service.CreateAudience(ctx, principal.OrgID, &types.Audience{Name: req.Name, Description: req.Description})
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, "audience created", created)
}

func (a *API) listAudiences(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "campaigns.API.listAudiences")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	audiences, err := a.service.ListAudiences(ctx, principal.OrgID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, "ok", audiences)
}

func (a *API) deleteAudience(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "campaigns.API.deleteAudience")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	if err := a.service.DeleteAudience(ctx, principal.OrgID, chi.URLParam(r, "id")); err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, "audience deleted", nil)
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		httpTypes.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidSchedule):
		httpTypes.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrForeignKeyViolation):
		httpTypes.WriteError(w, http.StatusBadRequest, "referenced resource does not exist")
	default:
		a.logger.Errorf("campaigns request failed: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
