// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/tracing"
)

const googleBusinessBase = "https://mybusiness.googleapis.com/v4"

// GoogleBusinessClient publishes local posts to Google Business Profile
// locations. AccountRef is the full location resource name
// (accounts/{account}/locations/{location}).
type GoogleBusinessClient struct {
	baseClient
}

func NewGoogleBusinessClient(clientID, clientSecret, redirectBase string, timeout time.Duration, tracer tracing.TracingInterface, logger logging.LoggerInterface) *GoogleBusinessClient {
	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  redirectBase + "/api/v1/connections/" + PlatformGoogleBusiness + "/callback",
		Scopes:       []string{"https://www.googleapis.com/auth/business.manage"},
	}

	return &GoogleBusinessClient{
		baseClient: newBaseClient(PlatformGoogleBusiness, conf, timeout, tracer, logger),
	}
}

func (c *GoogleBusinessClient) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	return c.exchange(ctx, code)
}

func (c *GoogleBusinessClient) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	return c.refresh(ctx, refreshToken)
}

func (c *GoogleBusinessClient) Publish(ctx context.Context, accessToken string, post *Post) (*PublishResult, error) {
	ctx, span := c.tracer.Start(ctx, "platform.google-business.Publish")
	defer span.End()

	payload := map[string]interface{}{
		"languageCode": "en",
		"topicType":    "STANDARD",
		"summary":      post.Body,
	}
	if len(post.MediaURLs) > 0 {
		media := make([]map[string]string, 0, len(post.MediaURLs))
		for _, u := range post.MediaURLs {
			media = append(media, map[string]string{
				"mediaFormat": "PHOTO",
				"sourceUrl":   u,
			})
		}
		payload["media"] = media
	}

	var resp struct {
		Name string `json:"name"`
	}
	url := fmt.Sprintf("%s/%s/localPosts", googleBusinessBase, post.AccountRef)
	if err := c.postJSON(ctx, url, accessToken, nil, payload, &resp); err != nil {
		return nil, err
	}

	return &PublishResult{ExternalID: resp.Name}, nil
}
