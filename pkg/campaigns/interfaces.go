// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package campaigns

import (
	"context"

	"github.com/campaignhq/campaign-service/internal/types"
)

type ServiceInterface interface {
	CreateCampaign(ctx context.Context, orgID string, c *types.Campaign) (*types.Campaign, error)
	GetCampaign(ctx context.Context, orgID, id string) (*types.Campaign, error)
	ListCampaigns(ctx context.Context, orgID string) ([]*types.Campaign, error)
	UpdateCampaign(ctx context.Context, orgID string, c *types.Campaign, paths []string) (*types.Campaign, error)
	DeleteCampaign(ctx context.Context, orgID, id string) error
	CreateContentPlan(ctx context.Context, orgID string, p *types.ContentPlan) (*types.ContentPlan, error)
	ListContentPlans(ctx context.Context, orgID, campaignID string) ([]*types.ContentPlan, error)
	CreateAudience(ctx context.Context, orgID string, a *types.Audience) (*types.Audience, error)
	ListAudiences(ctx context.Context, orgID string) ([]*types.Audience, error)
	DeleteAudience(ctx context.Context, orgID, id string) error
}

type StorageInterface interface {
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
}
