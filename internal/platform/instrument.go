// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"context"
	"errors"
	"time"

	"github.com/campaignhq/campaign-service/internal/db"
	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/types"
)

type AuthEventRecorderInterface interface {
	RecordAuthEvent(ctx context.Context, e *types.AuthEvent) error
}

// instrumentedClient records every auth call as an analytics event. The
// organization comes from the tenant already bound to the context; calls
// made outside a tenant context (the refresh loop) record the account's
// organization through the explicit OrgID the caller placed in context.
type instrumentedClient struct {
	ClientInterface

	recorder AuthEventRecorderInterface
	logger   logging.LoggerInterface
}

// Instrument wraps a platform client so token exchanges, refreshes and
// publishes are recorded to the auth analytics table.
func Instrument(next ClientInterface, recorder AuthEventRecorderInterface, logger logging.LoggerInterface) ClientInterface {
	return &instrumentedClient{ClientInterface: next, recorder: recorder, logger: logger}
}

func (c *instrumentedClient) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	start := time.Now()
	tok, err := c.ClientInterface.ExchangeCode(ctx, code)
	c.record(ctx, "exchange", time.Since(start), err)
	return tok, err
}

func (c *instrumentedClient) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	start := time.Now()
	tok, err := c.ClientInterface.Refresh(ctx, refreshToken)
	c.record(ctx, "refresh", time.Since(start), err)
	return tok, err
}

func (c *instrumentedClient) Publish(ctx context.Context, accessToken string, post *Post) (*PublishResult, error) {
	start := time.Now()
	res, err := c.ClientInterface.Publish(ctx, accessToken, post)
	c.record(ctx, "publish", time.Since(start), err)
	return res, err
}

func (c *instrumentedClient) record(ctx context.Context, operation string, duration time.Duration, callErr error) {
	event := &types.AuthEvent{
		Platform:  c.Platform(),
		Operation: operation,
		Success:   callErr == nil,
		Duration:  duration,
	}

	if tc, ok := db.TenantFromContext(ctx); ok {
		event.OrgID = tc.OrgID
	}

	var pe *Error
	if errors.As(callErr, &pe) {
		event.StatusCode = pe.StatusCode
	}

	if err := c.recorder.RecordAuthEvent(ctx, event); err != nil {
		c.logger.Errorf("failed to record %s auth event for %s: %v", operation, c.Platform(), err)
	}
}
