// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/tracing"
)

const maxResponseBody = 1 << 20

// baseClient carries the pieces every platform client shares: the oauth2
// config for the code and refresh flows and a bounded HTTP client for
// the platform's content API.
type baseClient struct {
	name       string
	conf       *oauth2.Config
	httpClient *http.Client
	tracer     tracing.TracingInterface
	logger     logging.LoggerInterface
}

func newBaseClient(name string, conf *oauth2.Config, timeout time.Duration, tracer tracing.TracingInterface, logger logging.LoggerInterface) baseClient {
	return baseClient{
		name:       name,
		conf:       conf,
		httpClient: &http.Client{Timeout: timeout},
		tracer:     tracer,
		logger:     logger,
	}
}

func (c *baseClient) Platform() string {
	return c.name
}

func (c *baseClient) AuthCodeURL(state string) string {
	return c.conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (c *baseClient) exchange(ctx context.Context, code string) (*Token, error) {
	ctx, span := c.tracer.Start(ctx, "platform."+c.name+".ExchangeCode")
	defer span.End()

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	t, err := c.conf.Exchange(ctx, code)
	if err != nil {
		return nil, wrapOAuthError(c.name, "exchange", err)
	}

	return normalizeToken(t), nil
}

func (c *baseClient) refresh(ctx context.Context, refreshToken string) (*Token, error) {
	ctx, span := c.tracer.Start(ctx, "platform."+c.name+".Refresh")
	defer span.End()

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	t, err := c.conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return nil, wrapOAuthError(c.name, "refresh", err)
	}

	tok := normalizeToken(t)
	if tok.RefreshToken == "" {
		// Platforms that rotate refresh tokens omit the old one from the
		// response; keep the one we already hold.
		tok.RefreshToken = refreshToken
	}

	return tok, nil
}

// postJSON performs an authenticated JSON POST against the platform's
// content API and decodes the response into out. Non-2xx responses come
// back as *Error with the upstream status and body.
func (c *baseClient) postJSON(ctx context.Context, url, accessToken string, headers map[string]string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", c.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", c.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Platform: c.name, Operation: "publish", Body: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return &Error{Platform: c.name, Operation: "publish", StatusCode: resp.StatusCode, Body: err.Error()}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &Error{Platform: c.name, Operation: "publish", StatusCode: resp.StatusCode, Body: string(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", c.name, err)
		}
	}

	return nil
}
