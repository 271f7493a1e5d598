// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/monitoring"
	"github.com/campaignhq/campaign-service/internal/storage"
	"github.com/campaignhq/campaign-service/internal/tracing"
	"github.com/campaignhq/campaign-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package organizations -destination ./mock_organizations.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	s := NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return s, mockStorage
}

func TestService_CreateOrganization(t *testing.T) {
	dbErr := errors.New("db error")
	created := &types.Organization{ID: "org-1", Name: "Acme", Enabled: true}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).Return(created, nil)
				mockStorage.EXPECT().AddMember(gomock.Any(), "org-1", "user-1", RoleOwner).Return("m-1", nil)
				mockStorage.EXPECT().SetCurrentOrg(gomock.Any(), "user-1", "org-1").Return(nil)
			},
		},
		{
			name: "create fails",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
		{
			name: "owner membership fails",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).Return(created, nil)
				mockStorage.EXPECT().AddMember(gomock.Any(), "org-1", "user-1", RoleOwner).Return("", dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage := newTestService(t)
			tc.setupMocks(mockStorage)

			org, err := s.CreateOrganization(context.Background(), "Acme", "user-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if org.ID != "org-1" {
				t.Errorf("expected org-1, got %q", org.ID)
			}
		})
	}
}

func TestService_SwitchOrganization(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "active membership switches",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMembership(gomock.Any(), "org-1", "user-1").Return(&types.Membership{OrgID: "org-1", UserID: "user-1", Role: RoleEditor, Active: true}, nil)
				mockStorage.EXPECT().SetCurrentOrg(gomock.Any(), "user-1", "org-1").Return(nil)
			},
		},
		{
			name: "no membership",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMembership(gomock.Any(), "org-1", "user-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotMember,
		},
		{
			name: "inactive membership",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMembership(gomock.Any(), "org-1", "user-1").Return(&types.Membership{OrgID: "org-1", UserID: "user-1", Role: RoleEditor, Active: false}, nil)
			},
			expectedErr: ErrNotMember,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage := newTestService(t)
			tc.setupMocks(mockStorage)

			err := s.SwitchOrganization(context.Background(), "user-1", "org-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_InviteMember(t *testing.T) {
	owner := &types.Membership{OrgID: "org-1", UserID: "caller-1", Role: RoleOwner, Active: true}
	viewer := &types.Membership{OrgID: "org-1", UserID: "caller-1", Role: RoleViewer, Active: true}
	invitee := &types.User{ID: "user-2", Subject: "subject-2"}

	testCases := []struct {
		name        string
		role        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "owner invites editor",
			role: RoleEditor,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(owner, nil)
				mockStorage.EXPECT().UpsertUserBySubject(gomock.Any(), "subject-2", "new@example.com").Return(invitee, nil)
				mockStorage.EXPECT().AddMember(gomock.Any(), "org-1", "user-2", RoleEditor).Return("m-2", nil)
			},
		},
		{
			name: "viewer may not invite",
			role: RoleEditor,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(viewer, nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name:        "invalid role",
			role:        "superuser",
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrInvalidRole,
		},
		{
			name: "caller not a member",
			role: RoleEditor,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotMember,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage := newTestService(t)
			tc.setupMocks(mockStorage)

			membership, err := s.InviteMember(context.Background(), "caller-1", "org-1", "subject-2", "new@example.com", tc.role)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if membership.UserID != "user-2" || membership.Role != tc.role {
				t.Errorf("unexpected membership: %+v", membership)
			}
		})
	}
}

func TestService_UpdateMemberRole(t *testing.T) {
	admin := &types.Membership{OrgID: "org-1", UserID: "caller-1", Role: RoleAdmin, Active: true}

	s, mockStorage := newTestService(t)
	mockStorage.EXPECT().GetMembership(gomock.Any(), "org-1", "caller-1").Return(admin, nil)
	mockStorage.EXPECT().UpdateMemberRole(gomock.Any(), "org-1", "user-2", RoleViewer).Return(nil)

	if err := s.UpdateMemberRole(context.Background(), "caller-1", "org-1", "user-2", RoleViewer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
