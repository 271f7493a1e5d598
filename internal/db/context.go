// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
)

// TenantContext is the per-request identity pair bound to the database
// transaction. It is never persisted and never shared between requests.
type TenantContext struct {
	OrgID  string
	UserID string
}

type tenantContextKey struct{}

var tenantCtxKey tenantContextKey

// ContextWithTenant returns a new context carrying the tenant pair.
// Transactions created under this context bind the pair as
// transaction-local session settings before any other statement runs.
func ContextWithTenant(ctx context.Context, tc TenantContext) context.Context {
	return context.WithValue(ctx, tenantCtxKey, tc)
}

// TenantFromContext extracts the tenant pair, if one was bound.
func TenantFromContext(ctx context.Context) (TenantContext, bool) {
	tc, ok := ctx.Value(tenantCtxKey).(TenantContext)
	return tc, ok
}
