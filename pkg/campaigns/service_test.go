// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package campaigns

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/monitoring"
	"github.com/campaignhq/campaign-service/internal/storage"
	"github.com/campaignhq/campaign-service/internal/tracing"
	"github.com/campaignhq/campaign-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package campaigns -destination ./mock_campaigns.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	s := NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return s, mockStorage
}

func TestService_CreateCampaign(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name        string
		campaign    *types.Campaign
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:     "defaults to draft",
			campaign: &types.Campaign{Name: "Spring launch"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateCampaign(gomock.Any(), "org-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, c *types.Campaign) (*types.Campaign, error) {
						if c.Status != StatusDraft {
							t.Errorf("expected draft status, got %q", c.Status)
						}
						return c, nil
					})
			},
		},
		{
			name:        "rejects unknown status",
			campaign:    &types.Campaign{Name: "Spring launch", Status: "running"},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrInvalidStatus,
		},
		{
			name:        "rejects end before start",
			campaign:    &types.Campaign{Name: "Spring launch", Status: StatusDraft, StartsAt: now, EndsAt: now.Add(-time.Hour)},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrInvalidSchedule,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage := newTestService(t)
			tc.setupMocks(mockStorage)

			_, err := s.CreateCampaign(context.Background(), "org-1", tc.campaign)

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

func TestService_UpdateCampaign(t *testing.T) {
	updated := &types.Campaign{ID: "c-1", OrgID: "org-1", Name: "Renamed", Status: StatusActive}

	testCases := []struct {
		name        string
		paths       []string
		campaign    *types.Campaign
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:     "success",
			paths:    []string{"name"},
			campaign: &types.Campaign{ID: "c-1", Name: "Renamed"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().UpdateCampaign(gomock.Any(), "org-1", gomock.Any(), []string{"name"}).Return(nil)
				mockStorage.EXPECT().GetCampaignByID(gomock.Any(), "org-1", "c-1").Return(updated, nil)
			},
		},
		{
			// A campaign belonging to another organization updates zero
			// rows and surfaces as not found.
			name:     "cross-tenant update is not found",
			paths:    []string{"name"},
			campaign: &types.Campaign{ID: "c-other", Name: "Renamed"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().UpdateCampaign(gomock.Any(), "org-1", gomock.Any(), []string{"name"}).Return(storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name:        "invalid status on status path",
			paths:       []string{"status"},
			campaign:    &types.Campaign{ID: "c-1", Status: "running"},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrInvalidStatus,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage := newTestService(t)
			tc.setupMocks(mockStorage)

			_, err := s.UpdateCampaign(context.Background(), "org-1", tc.campaign, tc.paths)

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

func TestService_CreateContentPlan(t *testing.T) {
	plan := &types.ContentPlan{CampaignID: "c-1", Title: "Week 1", Body: "copy"}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "parent campaign exists",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetCampaignByID(gomock.Any(), "org-1", "c-1").Return(&types.Campaign{ID: "c-1", OrgID: "org-1"}, nil)
				mockStorage.EXPECT().CreateContentPlan(gomock.Any(), "org-1", plan).Return(plan, nil)
			},
		},
		{
			name: "parent campaign in another organization",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetCampaignByID(gomock.Any(), "org-1", "c-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage := newTestService(t)
			tc.setupMocks(mockStorage)

			_, err := s.CreateContentPlan(context.Background(), "org-1", plan)

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
