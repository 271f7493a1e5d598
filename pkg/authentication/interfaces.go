// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/campaignhq/campaign-service/internal/types"
)

// Identity is the verified token identity before it is resolved against
// the local user table.
type Identity struct {
	Subject string
	Email   string
}

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw JWT string and validates authorization claims
	// Returns the token identity if the token is valid and authorized, otherwise an error
	VerifyToken(ctx context.Context, rawToken string) (*Identity, error)
}

// IdentityStoreInterface is the slice of storage the middleware needs to
// resolve a token subject into a principal.
type IdentityStoreInterface interface {
	GetUserBySubject(ctx context.Context, subject string) (*types.User, error)
	UpsertUserBySubject(ctx context.Context, subject, email string) (*types.User, error)
	GetMembership(ctx context.Context, orgID, userID string) (*types.Membership, error)
}
