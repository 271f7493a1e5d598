// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/campaignhq/campaign-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go

// StorageInterface is the subset of internal/storage this package needs.
type StorageInterface interface {
	UpsertUserBySubject(ctx context.Context, subject, email string) (*types.User, error)
	CreateOrganization(ctx context.Context, org *types.Organization) (*types.Organization, error)
	AddMember(ctx context.Context, orgID, userID, role string) (string, error)
	SetCurrentOrg(ctx context.Context, userID, orgID string) error
}

type ServiceInterface interface {
	HandleRegistration(ctx context.Context, subject, email string) error
}
