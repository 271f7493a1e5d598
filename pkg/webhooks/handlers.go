// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	httpTypes "github.com/campaignhq/campaign-service/internal/http/types"
	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/tracing"
)

type API struct {
	service ServiceInterface
	secret  string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// NewAPI mounts the registration webhook. When secret is non-empty the
// identity provider must send it in the X-Webhook-Token header.
func NewAPI(service ServiceInterface, secret string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.secret = secret
	a.tracer = tracer
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Post("/webhooks/registration", a.registration)
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "webhooks.API.registration")
	defer span.End()

	if a.secret != "" {
		token := r.Header.Get("X-Webhook-Token")
		if subtle.ConstantTimeCompare([]byte(token), []byte(a.secret)) != 1 {
			a.logger.Security().AuthzFailure("", "registration_webhook")
			httpTypes.WriteError(w, http.StatusUnauthorized, "invalid webhook token")
			return
		}
	}

	var event RegistrationEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.service.HandleRegistration(ctx, event.Subject, event.Email); err != nil {
		a.logger.Errorf("registration webhook failed: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, "workspace provisioned", nil)
}
