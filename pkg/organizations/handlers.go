// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/campaignhq/campaign-service/internal/http/types"
	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/monitoring"
	"github.com/campaignhq/campaign-service/internal/storage"
	"github.com/campaignhq/campaign-service/internal/tracing"
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
	router.Post("/organizations", a.create)
	router.Get("/organizations", a.listMine)
	router.Post("/organizations/{id}/switch", a.switchOrg)
	router.Get("/organizations/{id}/members", a.listMembers)
	router.Post("/organizations/{id}/members", a.inviteMember)
	router.Patch("/organizations/{id}/members/{userID}", a.updateMemberRole)
}

type createOrganizationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.create")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req createOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteValidationError(w, err)
		return
	}

	org, err := a.service.CreateOrganization(ctx, req.Name, principal.UserID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, "organization created", org)
}

func (a *API) listMine(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.listMine")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	orgs, err := a.service.ListMyOrganizations(ctx, principal.UserID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, "ok", orgs)
}

func (a *API) switchOrg(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.switchOrg")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	orgID := chi.URLParam(r, "id")
	if err := a.service.SwitchOrganization(ctx, principal.UserID, orgID); err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, "organization switched", nil)
}

type inviteMemberRequest struct {
	Subject string `json:"subject" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Role    string `json:"role" validate:"required,oneof=owner admin editor viewer"`
}

func (a *API) inviteMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.inviteMember")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req inviteMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteValidationError(w, err)
		return
	}

	orgID := chi.URLParam(r, "id")
	membership, err := a.service.InviteMember(ctx, principal.UserID, orgID, req.Subject, req.Email, req.Role)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, "member invited", membership)
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.listMembers")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	orgID := chi.URLParam(r, "id")
	members, err := a.service.ListMembers(ctx, principal.UserID, orgID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, "ok", members)
}

type updateMemberRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=owner admin editor viewer"`
}

func (a *API) updateMemberRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.updateMemberRole")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req updateMemberRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteValidationError(w, err)
		return
	}

	orgID := chi.URLParam(r, "id")
	memberID := chi.URLParam(r, "userID")
	if err := a.service.UpdateMemberRole(ctx, principal.UserID, orgID, memberID, req.Role); err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, "member role updated", nil)
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotMember), errors.Is(err, ErrForbidden):
		httpTypes.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidRole):
		httpTypes.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		httpTypes.WriteError(w, http.StatusNotFound, "not found")
	default:
		a.logger.Errorf("organizations request failed: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
