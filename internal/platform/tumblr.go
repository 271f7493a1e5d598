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

var tumblrEndpoint = oauth2.Endpoint{
	AuthURL:  "https://www.tumblr.com/oauth2/authorize",
	TokenURL: "https://api.tumblr.com/v2/oauth2/token",
}

// TumblrClient publishes NPF posts to a Tumblr blog. AccountRef is the
// blog identifier (name or UUID).
type TumblrClient struct {
	baseClient
}

func NewTumblrClient(consumerKey, consumerSecret, redirectBase string, timeout time.Duration, tracer tracing.TracingInterface, logger logging.LoggerInterface) *TumblrClient {
	conf := &oauth2.Config{
		ClientID:     consumerKey,
		ClientSecret: consumerSecret,
		Endpoint:     tumblrEndpoint,
		RedirectURL:  redirectBase + "/api/v1/connections/" + PlatformTumblr + "/callback",
		Scopes:       []string{"basic", "write", "offline_access"},
	}

	return &TumblrClient{
		baseClient: newBaseClient(PlatformTumblr, conf, timeout, tracer, logger),
	}
}

func (c *TumblrClient) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	return c.exchange(ctx, code)
}

func (c *TumblrClient) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	return c.refresh(ctx, refreshToken)
}

func (c *TumblrClient) Publish(ctx context.Context, accessToken string, post *Post) (*PublishResult, error) {
	ctx, span := c.tracer.Start(ctx, "platform.tumblr.Publish")
	defer span.End()

	// Neue Post Format: one text block, one image block per media URL.
	content := []map[string]interface{}{
		{"type": "text", "text": post.Body},
	}
	for _, u := range post.MediaURLs {
		content = append(content, map[string]interface{}{
			"type":  "image",
			"media": []map[string]string{{"url": u}},
		})
	}

	payload := map[string]interface{}{
		"content": content,
		"state":   "published",
	}

	var resp struct {
		Response struct {
			ID string `json:"id_string"`
		} `json:"response"`
	}
	url := fmt.Sprintf("https://api.tumblr.com/v2/blog/%s/posts", post.AccountRef)
	if err := c.postJSON(ctx, url, accessToken, nil, payload, &resp); err != nil {
		return nil, err
	}

	return &PublishResult{ExternalID: resp.Response.ID}, nil
}
