// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/campaignhq/campaign-service/internal/db"
	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/monitoring"
	"github.com/campaignhq/campaign-service/internal/storage"
	"github.com/campaignhq/campaign-service/internal/tracing"
)

type Middleware struct {
	verifier TokenVerifierInterface
	store    IdentityStoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate verifies the bearer token, resolves the subject into a
// local user and binds the user's current organization to the request
// context. A user without a usable current organization still proceeds,
// but with an org-less principal and no tenant bound.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				m.unauthorizedResponse(w, "missing authorization header")
				return
			}

			identity, err := m.verifier.VerifyToken(ctx, token)
			if err != nil {
				m.logger.Debugf("JWT verification failed: %v", err)
				m.unauthorizedResponse(w, "invalid token")
				return
			}

			user, err := m.store.GetUserBySubject(ctx, identity.Subject)
			if errors.Is(err, storage.ErrNotFound) {
				user, err = m.store.UpsertUserBySubject(ctx, identity.Subject, identity.Email)
			}
			if err != nil {
				m.logger.Errorf("failed to resolve user for subject: %v", err)
				m.unauthorizedResponse(w, "invalid token")
				return
			}

			principal := Principal{UserID: user.ID}

			if user.CurrentOrgID != "" {
				membership, err := m.store.GetMembership(ctx, user.CurrentOrgID, user.ID)
				switch {
				case errors.Is(err, storage.ErrNotFound):
					// Stale current org, e.g. membership revoked. Proceed
					// without a tenant rather than locking the user out of
					// org management endpoints.
					m.logger.Security().TenantContextFailure(user.ID, errors.New("current organization has no active membership"))
				case err != nil:
					m.logger.Errorf("failed to load membership: %v", err)
					m.unauthorizedResponse(w, "invalid token")
					return
				case membership.Active:
					principal.OrgID = user.CurrentOrgID
					principal.Role = membership.Role
					ctx = db.ContextWithTenant(ctx, db.TenantContext{OrgID: principal.OrgID, UserID: user.ID})
					m.logger.Security().TenantContextBound(principal.OrgID, user.ID)
				default:
					m.logger.Security().TenantContextFailure(user.ID, errors.New("membership is inactive"))
				}
			}

			ctx = WithPrincipal(ctx, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireOrganization rejects requests whose principal has no current
// organization. Mount it on tenant-scoped routes, after Authenticate.
func (m *Middleware) RequireOrganization() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok || principal.OrgID == "" {
				m.forbiddenResponse(w, "no current organization")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, message string) {
	m.errorResponse(w, http.StatusUnauthorized, message)
}

func (m *Middleware) forbiddenResponse(w http.ResponseWriter, message string) {
	m.errorResponse(w, http.StatusForbidden, message)
}

func (m *Middleware) errorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode error response: %v", err)
	}
}

func NewMiddleware(verifier TokenVerifierInterface, store IdentityStoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier: verifier,
		store:    store,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
