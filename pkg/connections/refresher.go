// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connections

import (
	"context"
	"errors"
	"time"

	"github.com/campaignhq/campaign-service/internal/db"
	"github.com/campaignhq/campaign-service/internal/lock"
	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/platform"
	"github.com/campaignhq/campaign-service/internal/tracing"
)

type LockerInterface interface {
	Acquire(ctx context.Context, name string, ttl time.Duration) (func(context.Context), error)
}

// Refresher renews tokens that expire within the configured window. A
// distributed lock keeps the loop single-flight across replicas.
type Refresher struct {
	storage  StorageInterface
	registry RegistryInterface
	locker   LockerInterface
	retrier  *platform.Retrier

	interval time.Duration
	window   time.Duration

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewRefresher(
	storage StorageInterface,
	registry RegistryInterface,
	locker LockerInterface,
	interval, window time.Duration,
	tracer tracing.TracingInterface,
	logger logging.LoggerInterface,
) *Refresher {
	return &Refresher{
		storage:  storage,
		registry: registry,
		locker:   locker,
		retrier:  platform.NewRetrier(logger),
		interval: interval,
		window:   window,
		tracer:   tracer,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.RefreshExpiring(ctx); err != nil {
				r.logger.Errorf("token refresh pass failed: %v", err)
			}
		}
	}
}

// RefreshExpiring renews every account whose token expires inside the
// window. Individual account failures are logged and skipped so one
// broken connection never blocks the rest.
func (r *Refresher) RefreshExpiring(ctx context.Context) error {
	ctx, span := r.tracer.Start(ctx, "connections.Refresher.RefreshExpiring")
	defer span.End()

	release, err := r.locker.Acquire(ctx, "token-refresh", r.interval)
	if errors.Is(err, lock.ErrNotAcquired) {
		return nil
	}
	if err != nil {
		return err
	}
	defer release(ctx)

	accounts, err := r.storage.ListAccountsExpiringBefore(ctx, time.Now().Add(r.window))
	if err != nil {
		return err
	}

	for _, account := range accounts {
		client, err := r.registry.Get(account.Platform)
		if err != nil {
			r.logger.Warnf("skipping account %s: %v", account.ID, err)
			continue
		}

		// The loop runs outside any request, so bind the account's
		// tenant here; auth analytics pick the org up from the context.
		accountCtx := db.ContextWithTenant(ctx, db.TenantContext{OrgID: account.OrgID})

		var token *platform.Token
		err = r.retrier.Do(accountCtx, "refresh "+account.Platform, func(ctx context.Context) error {
			var refreshErr error
			token, refreshErr = client.Refresh(ctx, account.RefreshToken)
			return refreshErr
		})
		if err != nil {
			r.logger.Errorf("failed to refresh %s account %s: %v", account.Platform, account.ID, err)
			continue
		}

		if err := r.storage.UpdateSocialAccountToken(accountCtx, account.OrgID, account.ID, token.AccessToken, token.RefreshToken, token.ExpiresAt); err != nil {
			r.logger.Errorf("failed to store refreshed token for account %s: %v", account.ID, err)
		}
	}

	return nil
}
