// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"

	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/tracing"
)

const metaGraphBase = "https://graph.facebook.com/v19.0"

var metaEndpoint = oauth2.Endpoint{
	AuthURL:  "https://www.facebook.com/v19.0/dialog/oauth",
	TokenURL: metaGraphBase + "/oauth/access_token",
}

// MetaClient publishes to Facebook pages through the Graph API.
type MetaClient struct {
	baseClient
}

func NewMetaClient(clientID, clientSecret, redirectBase string, timeout time.Duration, tracer tracing.TracingInterface, logger logging.LoggerInterface) *MetaClient {
	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     metaEndpoint,
		RedirectURL:  redirectBase + "/api/v1/connections/" + PlatformMeta + "/callback",
		Scopes:       []string{"pages_manage_posts", "pages_read_engagement"},
	}

	return &MetaClient{
		baseClient: newBaseClient(PlatformMeta, conf, timeout, tracer, logger),
	}
}

func (c *MetaClient) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	return c.exchange(ctx, code)
}

func (c *MetaClient) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	return c.refresh(ctx, refreshToken)
}

func (c *MetaClient) Publish(ctx context.Context, accessToken string, post *Post) (*PublishResult, error) {
	ctx, span := c.tracer.Start(ctx, "platform.meta.Publish")
	defer span.End()

	payload := map[string]interface{}{
		"message": post.Body,
	}
	if len(post.MediaURLs) > 0 {
		payload["link"] = post.MediaURLs[0]
	}

	var resp struct {
		ID string `json:"id"`
	}
	url := fmt.Sprintf("%s/%s/feed", metaGraphBase, post.AccountRef)
	if err := c.postJSON(ctx, url, accessToken, nil, payload, &resp); err != nil {
		return nil, err
	}

	return &PublishResult{ExternalID: resp.ID}, nil
}
