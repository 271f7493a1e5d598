// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package publishing

import (
	"context"
	"time"

	"github.com/campaignhq/campaign-service/internal/platform"
	"github.com/campaignhq/campaign-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package publishing -destination ./mock_publishing.go -source=./interfaces.go

type ServiceInterface interface {
	Enqueue(ctx context.Context, orgID string, job *types.PublishJob) (*types.PublishJob, error)
	GetJob(ctx context.Context, orgID, id string) (*types.PublishJob, error)
	ListJobs(ctx context.Context, orgID string) ([]*types.PublishJob, error)
}

type StorageInterface interface {
	EnqueuePublishJob(ctx context.Context, orgID string, job *types.PublishJob) (*types.PublishJob, error)
	GetPublishJobByID(ctx context.Context, orgID, id string) (*types.PublishJob, error)
	ListPublishJobs(ctx context.Context, orgID string) ([]*types.PublishJob, error)
	ClaimNextPublishJob(ctx context.Context) (*types.PublishJob, error)
	MarkJobPublished(ctx context.Context, id string) error
	MarkJobFailed(ctx context.Context, id string, attempts int, lastError string) error
	RequeuePublishJob(ctx context.Context, id string, attempts int, lastError string, runAt time.Time) error
	GetSocialAccountByID(ctx context.Context, orgID, id string) (*types.SocialAccount, error)
	GetCampaignByID(ctx context.Context, orgID, id string) (*types.Campaign, error)
}

type RegistryInterface interface {
	Get(name string) (platform.ClientInterface, error)
}
