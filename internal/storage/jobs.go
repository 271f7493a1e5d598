// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/campaignhq/campaign-service/internal/types"
)

func (s *Storage) EnqueuePublishJob(ctx context.Context, orgID string, job *types.PublishJob) (*types.PublishJob, error) {
	ctx, span := s.tracer.Start(ctx, "storage.EnqueuePublishJob")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate job ID: %w", err)
	}

	var created types.PublishJob
	err = s.db.Statement(ctx).
		Insert("publish_jobs").
		Columns("id", "org_id", "account_id", "platform", "campaign_id", "body", "media_urls", "status", "run_at").
		Values(id.String(), orgID, job.AccountID, job.Platform, job.CampaignID, job.Body, strings.Join(job.MediaURLs, ","), types.JobStatusQueued, job.RunAt).
		Suffix("RETURNING id, org_id, account_id, platform, campaign_id, body, status, attempts, run_at, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OrgID, &created.AccountID, &created.Platform, &created.CampaignID, &created.Body, &created.Status, &created.Attempts, &created.RunAt, &created.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to enqueue publish job: %w", err)
	}

	created.MediaURLs = job.MediaURLs

	return &created, nil
}

// ClaimNextPublishJob atomically claims the oldest runnable job using
// SKIP LOCKED so concurrent workers never double-claim.
func (s *Storage) ClaimNextPublishJob(ctx context.Context) (*types.PublishJob, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ClaimNextPublishJob")
	defer span.End()

	var job types.PublishJob
	var lastError *string
	var mediaURLs string
	err := s.db.Statement(ctx).
		Update("publish_jobs").
		Set("status", types.JobStatusRunning).
		Set("claimed_at", sq.Expr("now()")).
		Where(sq.Expr(`id = (
			SELECT id FROM publish_jobs
			WHERE status = ? AND run_at <= now()
			ORDER BY run_at
			FOR UPDATE SKIP LOCKED
			LIMIT 1
		)`, types.JobStatusQueued)).
		Suffix("RETURNING id, org_id, account_id, platform, campaign_id, body, media_urls, status, attempts, last_error, run_at, created_at").
		QueryRowContext(ctx).
		Scan(&job.ID, &job.OrgID, &job.AccountID, &job.Platform, &job.CampaignID, &job.Body, &mediaURLs, &job.Status, &job.Attempts, &lastError, &job.RunAt, &job.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to claim publish job: %w", err)
	}

	if lastError != nil {
		job.LastError = *lastError
	}
	if mediaURLs != "" {
		job.MediaURLs = strings.Split(mediaURLs, ",")
	}

	return &job, nil
}

func (s *Storage) GetPublishJobByID(ctx context.Context, orgID, id string) (*types.PublishJob, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPublishJobByID")
	defer span.End()

	var job types.PublishJob
	var lastError *string
	var mediaURLs string
	err := s.db.Statement(ctx).
		Select("id", "org_id", "account_id", "platform", "campaign_id", "body", "media_urls", "status", "attempts", "last_error", "run_at", "created_at").
		From("publish_jobs").
		Where(sq.Eq{"id": id, "org_id": orgID}).
		QueryRowContext(ctx).
		Scan(&job.ID, &job.OrgID, &job.AccountID, &job.Platform, &job.CampaignID, &job.Body, &mediaURLs, &job.Status, &job.Attempts, &lastError, &job.RunAt, &job.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get publish job: %w", err)
	}

	if lastError != nil {
		job.LastError = *lastError
	}
	if mediaURLs != "" {
		job.MediaURLs = strings.Split(mediaURLs, ",")
	}

	return &job, nil
}

func (s *Storage) ListPublishJobs(ctx context.Context, orgID string) ([]*types.PublishJob, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPublishJobs")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "org_id", "account_id", "platform", "campaign_id", "body", "media_urls", "status", "attempts", "last_error", "run_at", "created_at").
		From("publish_jobs").
		Where(sq.Eq{"org_id": orgID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list publish jobs: %w", err)
	}
	defer rows.Close()

	jobs := []*types.PublishJob{}
	for rows.Next() {
		var job types.PublishJob
		var lastError *string
		var mediaURLs string
		if err := rows.Scan(&job.ID, &job.OrgID, &job.AccountID, &job.Platform, &job.CampaignID, &job.Body, &mediaURLs, &job.Status, &job.Attempts, &lastError, &job.RunAt, &job.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan publish job: %w", err)
		}
		if lastError != nil {
			job.LastError = *lastError
		}
		if mediaURLs != "" {
			job.MediaURLs = strings.Split(mediaURLs, ",")
		}
		jobs = append(jobs, &job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list publish jobs: %w", err)
	}

	return jobs, nil
}

func (s *Storage) MarkJobPublished(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkJobPublished")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("publish_jobs").
		Set("status", types.JobStatusPublished).
		Set("last_error", "").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark job published: %w", err)
	}

	return nil
}

func (s *Storage) MarkJobFailed(ctx context.Context, id string, attempts int, lastError string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkJobFailed")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("publish_jobs").
		Set("status", types.JobStatusFailed).
		Set("attempts", attempts).
		Set("last_error", lastError).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark job failed: %w", err)
	}

	return nil
}

// RequeuePublishJob returns a failed attempt to the queue with a new
// run_at so the same drain pass does not claim it again immediately.
func (s *Storage) RequeuePublishJob(ctx context.Context, id string, attempts int, lastError string, runAt time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.RequeuePublishJob")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("publish_jobs").
		Set("status", types.JobStatusQueued).
		Set("attempts", attempts).
		Set("last_error", lastError).
		Set("run_at", runAt).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to requeue publish job: %w", err)
	}

	return nil
}
