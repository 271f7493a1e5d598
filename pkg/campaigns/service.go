// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package campaigns

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/monitoring"
	"github.com/campaignhq/campaign-service/internal/tracing"
	"github.com/campaignhq/campaign-service/internal/types"
)

// Campaign lifecycle states.
const (
	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusPaused   = "paused"
	StatusArchived = "archived"
)

var (
	ErrInvalidStatus   = errors.New("invalid campaign status")
	ErrInvalidSchedule = errors.New("campaign end must be after its start")
)

var validStatuses = []string{StatusDraft, StatusActive, StatusPaused, StatusArchived}

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

func (s *Service) CreateCampaign(ctx context.Context, orgID string, c *types.Campaign) (*types.Campaign, error) {
	ctx, span := s.tracer.Start(ctx, "campaigns.Service.CreateCampaign")
	defer span.End()

	if c.Status == "" {
		c.Status = StatusDraft
	}
	if err := validateCampaign(c); err != nil {
		return nil, err
	}

	return s.storage.CreateCampaign(ctx, orgID, c)
}

func (s *Service) GetCampaign(ctx context.Context, orgID, id string) (*types.Campaign, error) {
	ctx, span := s.tracer.Start(ctx, "campaigns.Service.GetCampaign")
	defer span.End()

	return s.storage.GetCampaignByID(ctx, orgID, id)
}

func (s *Service) ListCampaigns(ctx context.Context, orgID string) ([]*types.Campaign, error) {
	ctx, span := s.tracer.Start(ctx, "campaigns.Service.ListCampaigns")
	defer span.End()

	return s.storage.ListCampaigns(ctx, orgID)
}

// UpdateCampaign applies the named field paths and returns the updated
// row. Updates outside the caller's organization surface as not found.
func (s *Service) UpdateCampaign(ctx context.Context, orgID string, c *types.Campaign, paths []string) (*types.Campaign, error) {
	ctx, span := s.tracer.Start(ctx, "campaigns.Service.UpdateCampaign")
	defer span.End()

	if slices.Contains(paths, "status") && !slices.Contains(validStatuses, c.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, c.Status)
	}

	if err := s.storage.UpdateCampaign(ctx, orgID, c, paths); err != nil {
		return nil, err
	}

	return s.storage.GetCampaignByID(ctx, orgID, c.ID)
}

func (s *Service) DeleteCampaign(ctx context.Context, orgID, id string) error {
	ctx, span := s.tracer.Start(ctx, "campaigns.Service.DeleteCampaign")
	defer span.End()

	return s.storage.DeleteCampaign(ctx, orgID, id)
}

// CreateContentPlan verifies the parent campaign belongs to the
// organization before inserting.
func (s *Service) CreateContentPlan(ctx context.Context, orgID string, p *types.ContentPlan) (*types.ContentPlan, error) {
	ctx, span := s.tracer.Start(ctx, "campaigns.Service.CreateContentPlan")
	defer span.End()

	if _, err := s.storage.GetCampaignByID(ctx, orgID, p.CampaignID); err != nil {
		return nil, err
	}

	return s.storage.CreateContentPlan(ctx, orgID, p)
}

func (s *Service) ListContentPlans(ctx context.Context, orgID, campaignID string) ([]*types.ContentPlan, error) {
	ctx, span := s.tracer.Start(ctx, "campaigns.Service.ListContentPlans")
	defer span.End()

	return s.storage.ListContentPlansByCampaign(ctx, orgID, campaignID)
}

func (s *Service) CreateAudience(ctx context.Context, orgID string, a *types.Audience) (*types.Audience, error) {
	ctx, span := s.tracer.Start(ctx, "campaigns.Service.CreateAudience")
	defer span.End()

	return s.storage.CreateAudience(ctx, orgID, a)
}

func (s *Service) ListAudiences(ctx context.Context, orgID string) ([]*types.Audience, error) {
	ctx, span := s.tracer.Start(ctx, "campaigns.Service.ListAudiences")
	defer span.End()

	return s.storage.ListAudiences(ctx, orgID)
}

func (s *Service) DeleteAudience(ctx context.Context, orgID, id string) error {
	ctx, span := s.tracer.Start(ctx, "campaigns.Service.DeleteAudience")
	defer span.End()

	return s.storage.DeleteAudience(ctx, orgID, id)
}

func validateCampaign(c *types.Campaign) error {
	if !slices.Contains(validStatuses, c.Status) {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, c.Status)
	}
	if !c.StartsAt.IsZero() && !c.EndsAt.IsZero() && !c.EndsAt.After(c.StartsAt) {
		return ErrInvalidSchedule
	}

	return nil
}
