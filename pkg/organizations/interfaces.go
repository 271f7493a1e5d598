// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"

	"github.com/campaignhq/campaign-service/internal/types"
)

type ServiceInterface interface {
	CreateOrganization(ctx context.Context, name, creatorUserID string) (*types.Organization, error)
	ListMyOrganizations(ctx context.Context, userID string) ([]*types.Organization, error)
	SwitchOrganization(ctx context.Context, userID, orgID string) error
	InviteMember(ctx context.Context, callerID, orgID, subject, email, role string) (*types.Membership, error)
	ListMembers(ctx context.Context, callerID, orgID string) ([]*types.Membership, error)
	UpdateMemberRole(ctx context.Context, callerID, orgID, memberID, role string) error
}

type StorageInterface interface {
	CreateOrganization(ctx context.Context, org *types.Organization) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	ListOrganizationsByUserID(ctx context.Context, userID string) ([]*types.Organization, error)
	AddMember(ctx context.Context, orgID, userID, role string) (string, error)
	GetMembership(ctx context.Context, orgID, userID string) (*types.Membership, error)
	ListMembersByOrgID(ctx context.Context, orgID string) ([]*types.Membership, error)
	UpdateMemberRole(ctx context.Context, orgID, userID, role string) error
	UpsertUserBySubject(ctx context.Context, subject, email string) (*types.User, error)
	SetCurrentOrg(ctx context.Context, userID, orgID string) error
}
