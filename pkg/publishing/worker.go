// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package publishing

import (
	"context"
	"errors"
	"time"

	"github.com/campaignhq/campaign-service/internal/db"
	"github.com/campaignhq/campaign-service/internal/lock"
	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/platform"
	"github.com/campaignhq/campaign-service/internal/storage"
	"github.com/campaignhq/campaign-service/internal/tracing"
	"github.com/campaignhq/campaign-service/internal/types"
)

// A job is abandoned once it has burned through this many delivery
// attempts; each attempt already carries its own transport retries.
const maxJobAttempts = 3

// Requeued jobs move their run_at forward by attempts * this base so a
// transiently failing platform is not hammered again in the same pass.
const jobRetryBaseDelay = time.Minute

type LockerInterface interface {
	Acquire(ctx context.Context, name string, ttl time.Duration) (func(context.Context), error)
}

// Worker drains the publish queue. Claiming uses SKIP LOCKED so several
// replicas can run it, but the distributed lock keeps a full drain pass
// single-flight to avoid hammering the platforms from every replica at
// once.
type Worker struct {
	storage  StorageInterface
	registry RegistryInterface
	locker   LockerInterface
	retrier  *platform.Retrier

	interval time.Duration

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewWorker(
	storage StorageInterface,
	registry RegistryInterface,
	locker LockerInterface,
	interval time.Duration,
	tracer tracing.TracingInterface,
	logger logging.LoggerInterface,
) *Worker {
	return &Worker{
		storage:  storage,
		registry: registry,
		locker:   locker,
		retrier:  platform.NewRetrier(logger),
		interval: interval,
		tracer:   tracer,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.DrainQueue(ctx); err != nil {
				w.logger.Errorf("publish queue drain failed: %v", err)
			}
		}
	}
}

// DrainQueue claims and publishes runnable jobs until the queue is empty.
func (w *Worker) DrainQueue(ctx context.Context) error {
	ctx, span := w.tracer.Start(ctx, "publishing.Worker.DrainQueue")
	defer span.End()

	release, err := w.locker.Acquire(ctx, "publish-worker", w.interval)
	if errors.Is(err, lock.ErrNotAcquired) {
		return nil
	}
	if err != nil {
		return err
	}
	defer release(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		job, err := w.storage.ClaimNextPublishJob(ctx)
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		w.process(ctx, job)
	}
}

func (w *Worker) process(ctx context.Context, job *types.PublishJob) {
	ctx, span := w.tracer.Start(ctx, "publishing.Worker.process")
	defer span.End()

	// The worker runs outside any request, so bind the job's tenant
	// here; auth analytics pick the org up from the context.
	ctx = db.ContextWithTenant(ctx, db.TenantContext{OrgID: job.OrgID})

	account, err := w.storage.GetSocialAccountByID(ctx, job.OrgID, job.AccountID)
	if err != nil {
		w.fail(ctx, job, err, false)
		return
	}

	client, err := w.registry.Get(job.Platform)
	if err != nil {
		w.fail(ctx, job, err, false)
		return
	}

	post := &platform.Post{
		AccountRef: account.PlatformUserID,
		Body:       job.Body,
		MediaURLs:  job.MediaURLs,
	}

	var result *platform.PublishResult
	err = w.retrier.Do(ctx, "publish to "+job.Platform, func(ctx context.Context) error {
		var publishErr error
		result, publishErr = client.Publish(ctx, account.AccessToken, post)
		return publishErr
	})
	if err != nil {
		w.fail(ctx, job, err, platform.IsRetryable(err))
		return
	}

	if err := w.storage.MarkJobPublished(ctx, job.ID); err != nil {
		w.logger.Errorf("failed to mark job %s published: %v", job.ID, err)
		return
	}

	w.logger.Infof("published job %s to %s as %s", job.ID, job.Platform, result.ExternalID)
}

// fail records the failed attempt. Retryable failures go back to the
// queue with a pushed-out run_at until the attempt budget is spent;
// everything else is terminal.
func (w *Worker) fail(ctx context.Context, job *types.PublishJob, cause error, retryable bool) {
	attempts := job.Attempts + 1

	if retryable && attempts < maxJobAttempts {
		runAt := time.Now().Add(time.Duration(attempts) * jobRetryBaseDelay)
		w.logger.Errorf("job %s attempt %d failed, requeued for %s: %v", job.ID, attempts, runAt.UTC().Format(time.RFC3339), cause)
		if err := w.storage.RequeuePublishJob(ctx, job.ID, attempts, cause.Error(), runAt); err != nil {
			w.logger.Errorf("failed to requeue job %s: %v", job.ID, err)
		}
		return
	}

	w.logger.Errorf("job %s attempt %d failed permanently: %v", job.ID, attempts, cause)
	if err := w.storage.MarkJobFailed(ctx, job.ID, attempts, cause.Error()); err != nil {
		w.logger.Errorf("failed to mark job %s failed: %v", job.ID, err)
	}
}
