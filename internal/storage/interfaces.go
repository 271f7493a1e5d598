// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/campaignhq/campaign-service/internal/types"
)

// StorageInterface is the full persistence surface. Every tenant-scoped
// method takes the owning organization ID explicitly and appends the org
// filter itself; callers never query tenant data without naming the tenant.
type StorageInterface interface {
	// Organizations and memberships
	CreateOrganization(ctx context.Context, org *types.Organization) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	ListOrganizationsByUserID(ctx context.Context, userID string) ([]*types.Organization, error)
	AddMember(ctx context.Context, orgID, userID, role string) (string, error)
	GetMembership(ctx context.Context, orgID, userID string) (*types.Membership, error)
	ListMembersByOrgID(ctx context.Context, orgID string) ([]*types.Membership, error)
	UpdateMemberRole(ctx context.Context, orgID, userID, role string) error

	// Users
	UpsertUserBySubject(ctx context.Context, subject, email string) (*types.User, error)
	GetUserBySubject(ctx context.Context, subject string) (*types.User, error)
	SetCurrentOrg(ctx context.Context, userID, orgID string) error

	// Campaigns, content plans, audiences (tenant-scoped)
	CreateCampaign(ctx context.Context, orgID string, c *types.Campaign) (*types.Campaign, error)
	GetCampaignByID(ctx context.Context, orgID, id string) (*types.Campaign, error)
	ListCampaigns(ctx context.Context, orgID string) ([]*types.Campaign, error)
	UpdateCampaign(ctx context.Context, orgID string, c *types.Campaign, paths []string) error
	DeleteCampaign(ctx context.Context, orgID, id string) error
	CreateContentPlan(ctx context.Context, orgID string, p *types.ContentPlan) (*types.ContentPlan, error)
	ListContentPlansByCampaign(ctx context.Context, orgID, campaignID string) ([]*types.ContentPlan, error)
	CreateAudience(ctx context.Context, orgID string, a *types.Audience) (*types.Audience, error)
	ListAudiences(ctx context.Context, orgID string) ([]*types.Audience, error)
	DeleteAudience(ctx context.Context, orgID, id string) error

	// Social accounts and auth analytics (tenant-scoped)
	CreateSocialAccount(ctx context.Context, orgID string, a *types.SocialAccount) (*types.SocialAccount, error)
	GetSocialAccountByID(ctx context.Context, orgID, id string) (*types.SocialAccount, error)
	ListSocialAccounts(ctx context.Context, orgID string) ([]*types.SocialAccount, error)
	UpdateSocialAccountToken(ctx context.Context, orgID, id, accessToken, refreshToken string, expiresAt time.Time) error
	ListAccountsExpiringBefore(ctx context.Context, deadline time.Time) ([]*types.SocialAccount, error)
	RecordAuthEvent(ctx context.Context, e *types.AuthEvent) error

	// Publish queue
	EnqueuePublishJob(ctx context.Context, orgID string, job *types.PublishJob) (*types.PublishJob, error)
	GetPublishJobByID(ctx context.Context, orgID, id string) (*types.PublishJob, error)
	ListPublishJobs(ctx context.Context, orgID string) ([]*types.PublishJob, error)
	ClaimNextPublishJob(ctx context.Context) (*types.PublishJob, error)
	MarkJobPublished(ctx context.Context, id string) error
	MarkJobFailed(ctx context.Context, id string, attempts int, lastError string) error
	RequeuePublishJob(ctx context.Context, id string, attempts int, lastError string, runAt time.Time) error
}
