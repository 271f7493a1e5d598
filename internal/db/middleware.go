// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"fmt"
	"net/http"

	"github.com/campaignhq/campaign-service/internal/logging"
)

// TenantContextMiddleware wraps each request in a lazy database transaction
// that carries the request's tenant pair. The pair is bound to the
// transaction with transaction-local set_config calls the moment the first
// statement runs, so every query in the request is filtered by the row
// policies without per-query plumbing.
//
// Requests without a bound tenant run with the settings unset: the row
// policies then match nothing, which is the intended fail-closed behavior
// for unauthenticated or organization-less principals.
//
// The transaction is committed if the handler completes successfully
// (status < 400) and rolled back otherwise.
func TenantContextMiddleware(db DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			err := db.WithTx(ctx, func(txCtx context.Context) error {
				rw := &responseWriter{
					ResponseWriter: w,
					statusCode:     http.StatusOK,
				}

				next.ServeHTTP(rw, r.WithContext(txCtx))

				if rw.statusCode >= 400 {
					return fmt.Errorf("request failed with status %d", rw.statusCode)
				}

				return nil
			})
			if err != nil {
				logger.Debugf("request transaction rolled back: %v", err)
			}
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
