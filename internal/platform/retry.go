// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"context"
	"time"

	"github.com/campaignhq/campaign-service/internal/logging"
)

const (
	defaultRetryAttempts  = 3
	defaultRetryBaseDelay = 1 * time.Second
)

// Retrier re-runs transient platform failures with a doubling delay
// between attempts. Non-retryable errors and context cancellation stop
// it immediately.
type Retrier struct {
	attempts  int
	baseDelay time.Duration
	sleep     func(context.Context, time.Duration) error
	logger    logging.LoggerInterface
}

func NewRetrier(logger logging.LoggerInterface) *Retrier {
	return &Retrier{
		attempts:  defaultRetryAttempts,
		baseDelay: defaultRetryBaseDelay,
		sleep:     sleepContext,
		logger:    logger,
	}
}

// NewRetrierWithSleep overrides how the retrier waits between attempts.
// Tests use it to skip the real delays.
func NewRetrierWithSleep(logger logging.LoggerInterface, sleep func(context.Context, time.Duration) error) *Retrier {
	r := NewRetrier(logger)
	r.sleep = sleep
	return r
}

func (r *Retrier) Do(ctx context.Context, operation string, fn func(context.Context) error) error {
	delay := r.baseDelay

	var err error
	for attempt := 1; ; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if !IsRetryable(err) || attempt == r.attempts {
			return err
		}

		r.logger.Warnf("%s failed on attempt %d/%d, retrying in %s: %v", operation, attempt, r.attempts, delay, err)

		if serr := r.sleep(ctx, delay); serr != nil {
			return serr
		}
		delay *= 2
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
