// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"

	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/monitoring"
	"github.com/campaignhq/campaign-service/internal/tracing"
	"github.com/campaignhq/campaign-service/internal/types"
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

// HandleRegistration provisions a personal workspace for a freshly
// signed-up user: the user record, an organization named after them,
// an owner membership and the current-organization pointer.
func (s *Service) HandleRegistration(ctx context.Context, subject, email string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if subject == "" || email == "" {
		return fmt.Errorf("subject or email is empty")
	}

	user, err := s.storage.UpsertUserBySubject(ctx, subject, email)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	org, err := s.storage.CreateOrganization(ctx, &types.Organization{
		Name:    fmt.Sprintf("%s's workspace", email),
		Enabled: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}

	if _, err := s.storage.AddMember(ctx, org.ID, user.ID, "owner"); err != nil {
		return fmt.Errorf("failed to add owner membership: %w", err)
	}

	if err := s.storage.SetCurrentOrg(ctx, user.ID, org.ID); err != nil {
		return fmt.Errorf("failed to set current organization: %w", err)
	}

	s.logger.Infof("provisioned workspace %s for user %s", org.ID, user.ID)
	return nil
}
