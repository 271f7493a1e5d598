// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/tracing"
)

var tiktokEndpoint = oauth2.Endpoint{
	AuthURL:   "https://www.tiktok.com/v2/auth/authorize/",
	TokenURL:  "https://open.tiktokapis.com/v2/oauth/token/",
	AuthStyle: oauth2.AuthStyleInParams,
}

// TikTokClient publishes photo posts through the Content Posting API.
type TikTokClient struct {
	baseClient
}

func NewTikTokClient(clientKey, clientSecret, redirectBase string, timeout time.Duration, tracer tracing.TracingInterface, logger logging.LoggerInterface) *TikTokClient {
	conf := &oauth2.Config{
		ClientID:     clientKey,
		ClientSecret: clientSecret,
		Endpoint:     tiktokEndpoint,
		RedirectURL:  redirectBase + "/api/v1/connections/" + PlatformTikTok + "/callback",
		Scopes:       []string{"user.info.basic", "video.publish"},
	}

	return &TikTokClient{
		baseClient: newBaseClient(PlatformTikTok, conf, timeout, tracer, logger),
	}
}

// AuthCodeURL overrides the base: TikTok names the client credential
// client_key in the authorization request.
func (c *TikTokClient) AuthCodeURL(state string) string {
	return c.conf.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("client_key", c.conf.ClientID),
	)
}

func (c *TikTokClient) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	return c.exchange(ctx, code)
}

func (c *TikTokClient) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	return c.refresh(ctx, refreshToken)
}

func (c *TikTokClient) Publish(ctx context.Context, accessToken string, post *Post) (*PublishResult, error) {
	ctx, span := c.tracer.Start(ctx, "platform.tiktok.Publish")
	defer span.End()

	payload := map[string]interface{}{
		"post_info": map[string]interface{}{
			"title":       post.Title,
			"description": post.Body,
		},
		"source_info": map[string]interface{}{
			"source":       "PULL_FROM_URL",
			"photo_images": post.MediaURLs,
		},
		"post_mode":  "DIRECT_POST",
		"media_type": "PHOTO",
	}

	var resp struct {
		Data struct {
			PublishID string `json:"publish_id"`
		} `json:"data"`
	}
	url := "https://open.tiktokapis.com/v2/post/publish/content/init/"
	if err := c.postJSON(ctx, url, accessToken, nil, payload, &resp); err != nil {
		return nil, err
	}

	return &PublishResult{ExternalID: resp.Data.PublishID}, nil
}
