// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connections

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/campaignhq/campaign-service/internal/http/types"
	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/monitoring"
	"github.com/campaignhq/campaign-service/internal/platform"
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
	router.Get("/connections", a.list)
	router.Get("/connections/platforms", a.platforms)
	router.Post("/connections/{platform}", a.connect)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "connections.API.list")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	accounts, err := a.service.ListAccounts(ctx, principal.OrgID)
	if err != nil {
		writeServiceError(w, err, a.logger)
		return
	}

	// Token material never leaves the service.
	type accountView struct {
		ID             string `json:"id"`
		Platform       string `json:"platform"`
		PlatformUserID string `json:"platform_user_id"`
		ExpiresAt      string `json:"expires_at"`
	}
	views := make([]accountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, accountView{
			ID:             account.ID,
			Platform:       account.Platform,
			PlatformUserID: account.PlatformUserID,
			ExpiresAt:      account.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	httpTypes.WriteJSON(w, http.StatusOK, "ok", views)
}

func (a *API) platforms(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "connections.API.platforms")
	defer span.End()
	_ = ctx

	httpTypes.WriteJSON(w, http.StatusOK, "ok", a.service.Platforms())
}

type connectRequest struct {
	AccountRef string `json:"account_ref" validate:"max=500"`
}

func (a *API) connect(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "connections.API.connect")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req connectRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := a.validate.Struct(req); err != nil {
			httpTypes.WriteValidationError(w, err)
			return
		}
	}

	url, err := a.service.ConnectURL(ctx, principal.OrgID, chi.URLParam(r, "platform"), req.AccountRef)
	if err != nil {
		writeServiceError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, "ok", map[string]string{"auth_url": url})
}

// CallbackAPI serves the OAuth redirect leg. Platforms send the user's
// browser here without a bearer token, so it mounts on the public
// router; the single-use state resolves the organization that started
// the connect.
type CallbackAPI struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewCallbackAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *CallbackAPI {
	a := new(CallbackAPI)

	a.service = service
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *CallbackAPI) RegisterEndpoints(router chi.Router) {
	router.Get("/api/v1/connections/{platform}/callback", a.callback)
}

func (a *CallbackAPI) callback(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "connections.CallbackAPI.callback")
	defer span.End()

	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" || state == "" {
		httpTypes.WriteError(w, http.StatusBadRequest, "code and state are required")
		return
	}

	account, err := a.service.CompleteConnection(ctx, chi.URLParam(r, "platform"), code, state)
	if err != nil {
		writeServiceError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, "account connected", map[string]string{
		"id":       account.ID,
		"platform": account.Platform,
	})
}

func writeServiceError(w http.ResponseWriter, err error, logger logging.LoggerInterface) {
	var platformErr *platform.Error

	switch {
	case errors.Is(err, platform.ErrUnknownPlatform):
		httpTypes.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidState):
		httpTypes.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrDuplicateKey):
		httpTypes.WriteError(w, http.StatusConflict, "account already connected")
	case errors.As(err, &platformErr):
		httpTypes.WriteError(w, http.StatusBadGateway, "platform request failed")
	default:
		logger.Errorf("connections request failed: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
