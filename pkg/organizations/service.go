// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/monitoring"
	"github.com/campaignhq/campaign-service/internal/storage"
	"github.com/campaignhq/campaign-service/internal/tracing"
	"github.com/campaignhq/campaign-service/internal/types"
)

const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

var (
	ErrNotMember   = errors.New("user is not an active member of the organization")
	ErrForbidden   = errors.New("caller is not allowed to manage members")
	ErrInvalidRole = errors.New("invalid role")
)

var validRoles = []string{RoleOwner, RoleAdmin, RoleEditor, RoleViewer}

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

// CreateOrganization creates the organization, makes the creator its
// owner and switches the creator into it.
func (s *Service) CreateOrganization(ctx context.Context, name, creatorUserID string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.CreateOrganization")
	defer span.End()

	org, err := s.storage.CreateOrganization(ctx, &types.Organization{Name: name, Enabled: true})
	if err != nil {
		s.logger.Errorf("failed to create organization: %v", err)
		return nil, err
	}

	if _, err := s.storage.AddMember(ctx, org.ID, creatorUserID, RoleOwner); err != nil {
		s.logger.Errorf("failed to add creator as owner: %v", err)
		return nil, err
	}

	if err := s.storage.SetCurrentOrg(ctx, creatorUserID, org.ID); err != nil {
		s.logger.Errorf("failed to set current organization: %v", err)
		return nil, err
	}

	return org, nil
}

func (s *Service) ListMyOrganizations(ctx context.Context, userID string) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.ListMyOrganizations")
	defer span.End()

	return s.storage.ListOrganizationsByUserID(ctx, userID)
}

// SwitchOrganization sets the user's current organization after
// validating an active membership. The new tenant takes effect on the
// next request.
func (s *Service) SwitchOrganization(ctx context.Context, userID, orgID string) error {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.SwitchOrganization")
	defer span.End()

	membership, err := s.storage.GetMembership(ctx, orgID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotMember
	}
	if err != nil {
		return err
	}
	if !membership.Active {
		return ErrNotMember
	}

	return s.storage.SetCurrentOrg(ctx, userID, orgID)
}

// InviteMember provisions the invitee's user record if needed and adds
// an active membership. Only owners and admins may invite.
func (s *Service) InviteMember(ctx context.Context, callerID, orgID, subject, email, role string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.InviteMember")
	defer span.End()

	if !slices.Contains(validRoles, role) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	if err := s.requireManager(ctx, callerID, orgID); err != nil {
		return nil, err
	}

	user, err := s.storage.UpsertUserBySubject(ctx, subject, email)
	if err != nil {
		s.logger.Errorf("failed to provision invited user: %v", err)
		return nil, err
	}

	id, err := s.storage.AddMember(ctx, orgID, user.ID, role)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("user is already a member of the organization")
		}
		return nil, err
	}

	return &types.Membership{ID: id, OrgID: orgID, UserID: user.ID, Role: role, Active: true}, nil
}

func (s *Service) ListMembers(ctx context.Context, callerID, orgID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.ListMembers")
	defer span.End()

	if err := s.requireMember(ctx, callerID, orgID); err != nil {
		return nil, err
	}

	return s.storage.ListMembersByOrgID(ctx, orgID)
}

func (s *Service) UpdateMemberRole(ctx context.Context, callerID, orgID, memberID, role string) error {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.UpdateMemberRole")
	defer span.End()

	if !slices.Contains(validRoles, role) {
		return fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	if err := s.requireManager(ctx, callerID, orgID); err != nil {
		return err
	}

	return s.storage.UpdateMemberRole(ctx, orgID, memberID, role)
}

func (s *Service) requireMember(ctx context.Context, userID, orgID string) error {
	membership, err := s.storage.GetMembership(ctx, orgID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotMember
	}
	if err != nil {
		return err
	}
	if !membership.Active {
		return ErrNotMember
	}

	return nil
}

func (s *Service) requireManager(ctx context.Context, userID, orgID string) error {
	membership, err := s.storage.GetMembership(ctx, orgID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotMember
	}
	if err != nil {
		return err
	}
	if !membership.Active {
		return ErrNotMember
	}
	if membership.Role != RoleOwner && membership.Role != RoleAdmin {
		s.logger.Security().AuthzFailure(userID, "manage_members")
		return ErrForbidden
	}

	return nil
}
