// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package publishing

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/campaignhq/campaign-service/internal/db"
	"github.com/campaignhq/campaign-service/internal/lock"
	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/platform"
	"github.com/campaignhq/campaign-service/internal/storage"
	"github.com/campaignhq/campaign-service/internal/tracing"
	"github.com/campaignhq/campaign-service/internal/types"
)

type fakeLocker struct {
	err      error
	name     string
	released bool
}

func (f *fakeLocker) Acquire(ctx context.Context, name string, ttl time.Duration) (func(context.Context), error) {
	f.name = name
	if f.err != nil {
		return nil, f.err
	}
	return func(context.Context) { f.released = true }, nil
}

func setupWorkerTest(t *testing.T) (*Worker, *MockStorageInterface, *MockRegistryInterface, *platform.MockClientInterface, *fakeLocker) {
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	mockRegistry := NewMockRegistryInterface(ctrl)
	mockClient := platform.NewMockClientInterface(ctrl)
	locker := &fakeLocker{}

	w := NewWorker(mockStorage, mockRegistry, locker, time.Minute, tracing.NewNoopTracer(), logging.NewNoopLogger())

	return w, mockStorage, mockRegistry, mockClient, locker
}

func TestWorker_DrainQueue(t *testing.T) {
	w, mockStorage, mockRegistry, mockClient, locker := setupWorkerTest(t)

	job := &types.PublishJob{
		ID:        "job-1",
		OrgID:     "org-1",
		AccountID: "acc-1",
		Platform:  "meta",
		Body:      "hello",
	}

	first := mockStorage.EXPECT().ClaimNextPublishJob(gomock.Any()).Return(job, nil)
	mockStorage.EXPECT().ClaimNextPublishJob(gomock.Any()).Return(nil, storage.ErrNotFound).After(first)
	mockStorage.EXPECT().GetSocialAccountByID(gomock.Any(), "org-1", "acc-1").Return(
		&types.SocialAccount{ID: "acc-1", OrgID: "org-1", Platform: "meta", PlatformUserID: "page-42", AccessToken: "at"}, nil,
	)
	mockRegistry.EXPECT().Get("meta").Return(mockClient, nil)
	mockClient.EXPECT().Publish(gomock.Any(), "at", gomock.Any()).DoAndReturn(
		func(ctx context.Context, accessToken string, post *platform.Post) (*platform.PublishResult, error) {
			if tc, ok := db.TenantFromContext(ctx); !ok || tc.OrgID != "org-1" {
				t.Errorf("expected publish context bound to the job's org, got %+v", tc)
			}
			if post.AccountRef != "page-42" {
				t.Errorf("expected account ref from connected account, got %q", post.AccountRef)
			}
			if post.Body != "hello" {
				t.Errorf("expected job body, got %q", post.Body)
			}
			return &platform.PublishResult{ExternalID: "ext-1"}, nil
		},
	)
	mockStorage.EXPECT().MarkJobPublished(gomock.Any(), "job-1").Return(nil)

	if err := w.DrainQueue(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if locker.name != "publish-worker" {
		t.Errorf("expected publish-worker lock, got %q", locker.name)
	}
	if !locker.released {
		t.Errorf("expected lock to be released")
	}
}

func TestWorker_DrainQueue_LockHeldElsewhere(t *testing.T) {
	w, _, _, _, locker := setupWorkerTest(t)
	locker.err = lock.ErrNotAcquired

	// No storage expectations: another replica is draining.
	if err := w.DrainQueue(context.Background()); err != nil {
		t.Errorf("expected no error when lock is held elsewhere, got %v", err)
	}
}

func TestWorker_DrainQueue_RetryableFailureRequeues(t *testing.T) {
	w, mockStorage, mockRegistry, mockClient, _ := setupWorkerTest(t)
	w.retrier = platform.NewRetrierWithSleep(logging.NewNoopLogger(), func(context.Context, time.Duration) error { return nil })

	job := &types.PublishJob{
		ID:        "job-1",
		OrgID:     "org-1",
		AccountID: "acc-1",
		Platform:  "meta",
		Body:      "hello",
		Attempts:  0,
	}
	outage := &platform.Error{Platform: "meta", Operation: "publish", StatusCode: 503}

	first := mockStorage.EXPECT().ClaimNextPublishJob(gomock.Any()).Return(job, nil)
	mockStorage.EXPECT().ClaimNextPublishJob(gomock.Any()).Return(nil, storage.ErrNotFound).After(first)
	mockStorage.EXPECT().GetSocialAccountByID(gomock.Any(), "org-1", "acc-1").Return(
		&types.SocialAccount{ID: "acc-1", OrgID: "org-1", Platform: "meta", PlatformUserID: "page-42", AccessToken: "at"}, nil,
	)
	mockRegistry.EXPECT().Get("meta").Return(mockClient, nil)
	before := time.Now()
	mockClient.EXPECT().Publish(gomock.Any(), "at", gomock.Any()).Return(nil, outage).Times(3)
	mockStorage.EXPECT().RequeuePublishJob(gomock.Any(), "job-1", 1, gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, id string, attempts int, lastError string, runAt time.Time) error {
			if !runAt.After(before) {
				t.Errorf("expected run_at pushed into the future, got %v", runAt)
			}
			return nil
		},
	)

	if err := w.DrainQueue(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestWorker_DrainQueue_ClientErrorIsTerminal(t *testing.T) {
	w, mockStorage, mockRegistry, mockClient, _ := setupWorkerTest(t)

	job := &types.PublishJob{
		ID:        "job-1",
		OrgID:     "org-1",
		AccountID: "acc-1",
		Platform:  "meta",
		Body:      "hello",
	}
	forbidden := &platform.Error{Platform: "meta", Operation: "publish", StatusCode: 403}

	first := mockStorage.EXPECT().ClaimNextPublishJob(gomock.Any()).Return(job, nil)
	mockStorage.EXPECT().ClaimNextPublishJob(gomock.Any()).Return(nil, storage.ErrNotFound).After(first)
	mockStorage.EXPECT().GetSocialAccountByID(gomock.Any(), "org-1", "acc-1").Return(
		&types.SocialAccount{ID: "acc-1", OrgID: "org-1", Platform: "meta", PlatformUserID: "page-42", AccessToken: "at"}, nil,
	)
	mockRegistry.EXPECT().Get("meta").Return(mockClient, nil)
	mockClient.EXPECT().Publish(gomock.Any(), "at", gomock.Any()).Return(nil, forbidden)
	mockStorage.EXPECT().MarkJobFailed(gomock.Any(), "job-1", 1, gomock.Any()).Return(nil)

	if err := w.DrainQueue(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestWorker_DrainQueue_AttemptBudgetExhausted(t *testing.T) {
	w, mockStorage, mockRegistry, mockClient, _ := setupWorkerTest(t)
	w.retrier = platform.NewRetrierWithSleep(logging.NewNoopLogger(), func(context.Context, time.Duration) error { return nil })

	job := &types.PublishJob{
		ID:        "job-1",
		OrgID:     "org-1",
		AccountID: "acc-1",
		Platform:  "meta",
		Body:      "hello",
		Attempts:  2,
	}
	outage := &platform.Error{Platform: "meta", Operation: "publish", StatusCode: 503}

	first := mockStorage.EXPECT().ClaimNextPublishJob(gomock.Any()).Return(job, nil)
	mockStorage.EXPECT().ClaimNextPublishJob(gomock.Any()).Return(nil, storage.ErrNotFound).After(first)
	mockStorage.EXPECT().GetSocialAccountByID(gomock.Any(), "org-1", "acc-1").Return(
		&types.SocialAccount{ID: "acc-1", OrgID: "org-1", Platform: "meta", PlatformUserID: "page-42", AccessToken: "at"}, nil,
	)
	mockRegistry.EXPECT().Get("meta").Return(mockClient, nil)
	mockClient.EXPECT().Publish(gomock.Any(), "at", gomock.Any()).Return(nil, outage).Times(3)
	mockStorage.EXPECT().MarkJobFailed(gomock.Any(), "job-1", 3, gomock.Any()).Return(nil)

	if err := w.DrainQueue(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
