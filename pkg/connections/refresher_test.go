// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connections

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/campaignhq/campaign-service/internal/db"
	"github.com/campaignhq/campaign-service/internal/lock"
	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/platform"
	"github.com/campaignhq/campaign-service/internal/tracing"
	"github.com/campaignhq/campaign-service/internal/types"
)

type fakeLocker struct {
	err      error
	name     string
	ttl      time.Duration
	released bool
}

func (f *fakeLocker) Acquire(ctx context.Context, name string, ttl time.Duration) (func(context.Context), error) {
	f.name = name
	f.ttl = ttl
	if f.err != nil {
		return nil, f.err
	}
	return func(context.Context) { f.released = true }, nil
}

func TestRefresher_RefreshExpiring(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	mockRegistry := NewMockRegistryInterface(ctrl)
	mockClient := platform.NewMockClientInterface(ctrl)
	locker := &fakeLocker{}

	r := NewRefresher(mockStorage, mockRegistry, locker, time.Minute, time.Hour, tracing.NewNoopTracer(), logging.NewNoopLogger())

	expiry := time.Now().Add(2 * time.Hour).UTC()

	mockStorage.EXPECT().ListAccountsExpiringBefore(gomock.Any(), gomock.Any()).Return(
		[]*types.SocialAccount{
			{ID: "acc-1", OrgID: "org-1", Platform: "meta", RefreshToken: "old-rt"},
		},
		nil,
	)
	mockRegistry.EXPECT().Get("meta").Return(mockClient, nil)
	mockClient.EXPECT().Refresh(gomock.Any(), "old-rt").DoAndReturn(
		func(ctx context.Context, refreshToken string) (*platform.Token, error) {
			if tc, ok := db.TenantFromContext(ctx); !ok || tc.OrgID != "org-1" {
				t.Errorf("expected refresh context bound to the account's org, got %+v", tc)
			}
			return &platform.Token{AccessToken: "new-at", RefreshToken: "new-rt", ExpiresAt: expiry}, nil
		},
	)
	mockStorage.EXPECT().UpdateSocialAccountToken(gomock.Any(), "org-1", "acc-1", "new-at", "new-rt", expiry).Return(nil)

	if err := r.RefreshExpiring(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if locker.name != "token-refresh" {
		t.Errorf("expected token-refresh lock, got %q", locker.name)
	}
	if !locker.released {
		t.Errorf("expected lock to be released")
	}
}

func TestRefresher_RefreshExpiring_LockHeldElsewhere(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	mockRegistry := NewMockRegistryInterface(ctrl)
	locker := &fakeLocker{err: lock.ErrNotAcquired}

	r := NewRefresher(mockStorage, mockRegistry, locker, time.Minute, time.Hour, tracing.NewNoopTracer(), logging.NewNoopLogger())

	// No storage or registry expectations: another replica holds the lock.
	if err := r.RefreshExpiring(context.Background()); err != nil {
		t.Errorf("expected no error when lock is held elsewhere, got %v", err)
	}
}

func TestRefresher_RefreshExpiring_SkipsFailingAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	mockRegistry := NewMockRegistryInterface(ctrl)
	mockClient := platform.NewMockClientInterface(ctrl)
	locker := &fakeLocker{}

	r := NewRefresher(mockStorage, mockRegistry, locker, time.Minute, time.Hour, tracing.NewNoopTracer(), logging.NewNoopLogger())

	expiry := time.Now().Add(2 * time.Hour).UTC()
	revokedErr := &platform.Error{Platform: "tumblr", Operation: "refresh", StatusCode: 401}

	mockStorage.EXPECT().ListAccountsExpiringBefore(gomock.Any(), gomock.Any()).Return(
		[]*types.SocialAccount{
			{ID: "acc-1", OrgID: "org-1", Platform: "tumblr", RefreshToken: "revoked-rt"},
			{ID: "acc-2", OrgID: "org-2", Platform: "meta", RefreshToken: "old-rt"},
		},
		nil,
	)
	mockRegistry.EXPECT().Get("tumblr").Return(mockClient, nil)
	mockClient.EXPECT().Refresh(gomock.Any(), "revoked-rt").Return(nil, revokedErr)
	mockRegistry.EXPECT().Get("meta").Return(mockClient, nil)
	mockClient.EXPECT().Refresh(gomock.Any(), "old-rt").Return(
		&platform.Token{AccessToken: "new-at", RefreshToken: "new-rt", ExpiresAt: expiry},
		nil,
	)
	mockStorage.EXPECT().UpdateSocialAccountToken(gomock.Any(), "org-2", "acc-2", "new-at", "new-rt", expiry).Return(nil)

	if err := r.RefreshExpiring(context.Background()); err != nil {
		t.Fatalf("expected pass to continue past failing account, got %v", err)
	}
}
