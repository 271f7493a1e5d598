// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package publishing

import (
	"context"
	"errors"
	"time"

	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/monitoring"
	"github.com/campaignhq/campaign-service/internal/tracing"
	"github.com/campaignhq/campaign-service/internal/types"
)

var (
	ErrAccountNotFound  = errors.New("social account not found")
	ErrCampaignNotFound = errors.New("campaign not found")
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Enqueue queues a post for the connected account. The account pins the
// target platform; jobs with a zero run_at become runnable immediately.
func (s *Service) Enqueue(ctx context.Context, orgID string, job *types.PublishJob) (*types.PublishJob, error) {
	ctx, span := s.tracer.Start(ctx, "publishing.Service.Enqueue")
	defer span.End()

	account, err := s.storage.GetSocialAccountByID(ctx, orgID, job.AccountID)
	if err != nil {
		return nil, ErrAccountNotFound
	}
	job.Platform = account.Platform

	if job.CampaignID != "" {
		if _, err := s.storage.GetCampaignByID(ctx, orgID, job.CampaignID); err != nil {
			return nil, ErrCampaignNotFound
		}
	}

	if job.RunAt.IsZero() {
		job.RunAt = time.Now()
	}

	return s.storage.EnqueuePublishJob(ctx, orgID, job)
}

func (s *Service) GetJob(ctx context.Context, orgID, id string) (*types.PublishJob, error) {
	ctx, span := s.tracer.Start(ctx, "publishing.Service.GetJob")
	defer span.End()

	return s.storage.GetPublishJobByID(ctx, orgID, id)
}

func (s *Service) ListJobs(ctx context.Context, orgID string) ([]*types.PublishJob, error) {
	ctx, span := s.tracer.Start(ctx, "publishing.Service.ListJobs")
	defer span.End()

	return s.storage.ListPublishJobs(ctx, orgID)
}
