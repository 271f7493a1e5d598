// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"

	httpTypes "github.com/campaignhq/campaign-service/internal/http/types"
	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/monitoring"
	"github.com/campaignhq/campaign-service/internal/tracing"
)

// Version is set at build time via ldflags.
var Version = "dev"

type API struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Get("/api/v1/status", a.alive)
	router.Get("/api/v1/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	httpTypes.WriteJSON(w, http.StatusOK, "ok", nil)
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	httpTypes.WriteJSON(w, http.StatusOK, "ok", map[string]string{"version": Version})
}
