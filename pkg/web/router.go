// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/campaignhq/campaign-service/internal/db"
	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/monitoring"
	"github.com/campaignhq/campaign-service/internal/tracing"
	"github.com/campaignhq/campaign-service/pkg/authentication"
)

// NewRouter assembles the HTTP surface. Public APIs (status, metrics,
// webhooks) are mounted at the root. Everything under /api/v1 is
// authenticated and runs inside a per-request database transaction that
// carries the caller's tenant. Tenant APIs additionally require the
// principal to have a current organization.
func NewRouter(
	environment string,
	corsAllowedOrigins []string,
	dbClient db.DBClientInterface,
	authMdw *authentication.Middleware,
	publicAPIs []EndpointRegistererInterface,
	accountAPIs []EndpointRegistererInterface,
	tenantAPIs []EndpointRegistererInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		SecurityHeaders(environment),
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsAllowedOrigins),
	)

	router.Use(middlewares...)

	for _, api := range publicAPIs {
		api.RegisterEndpoints(router)
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(authMdw.Authenticate())
		r.Use(db.TenantContextMiddleware(dbClient, logger))

		for _, api := range accountAPIs {
			api.RegisterEndpoints(r)
		}

		r.Group(func(r chi.Router) {
			r.Use(authMdw.RequireOrganization())

			for _, api := range tenantAPIs {
				api.RegisterEndpoints(r)
			}
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
