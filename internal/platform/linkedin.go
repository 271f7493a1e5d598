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

var linkedinEndpoint = oauth2.Endpoint{
	AuthURL:  "https://www.linkedin.com/oauth/v2/authorization",
	TokenURL: "https://www.linkedin.com/oauth/v2/accessToken",
}

// LinkedInClient publishes UGC posts. AccountRef is the author URN
// (urn:li:person:... or urn:li:organization:...).
type LinkedInClient struct {
	baseClient
}

func NewLinkedInClient(clientID, clientSecret, redirectBase string, timeout time.Duration, tracer tracing.TracingInterface, logger logging.LoggerInterface) *LinkedInClient {
	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     linkedinEndpoint,
		RedirectURL:  redirectBase + "/api/v1/connections/" + PlatformLinkedIn + "/callback",
		Scopes:       []string{"openid", "w_member_social"},
	}

	return &LinkedInClient{
		baseClient: newBaseClient(PlatformLinkedIn, conf, timeout, tracer, logger),
	}
}

func (c *LinkedInClient) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	return c.exchange(ctx, code)
}

func (c *LinkedInClient) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	return c.refresh(ctx, refreshToken)
}

func (c *LinkedInClient) Publish(ctx context.Context, accessToken string, post *Post) (*PublishResult, error) {
	ctx, span := c.tracer.Start(ctx, "platform.linkedin.Publish")
	defer span.End()

	shareContent := map[string]interface{}{
		"shareCommentary": map[string]string{
			"text": post.Body,
		},
		"shareMediaCategory": "NONE",
	}
	if len(post.MediaURLs) > 0 {
		media := make([]map[string]interface{}, 0, len(post.MediaURLs))
		for _, u := range post.MediaURLs {
			media = append(media, map[string]interface{}{
				"status":      "READY",
				"originalUrl": u,
			})
		}
		shareContent["shareMediaCategory"] = "ARTICLE"
		shareContent["media"] = media
	}

	payload := map[string]interface{}{
		"author":         post.AccountRef,
		"lifecycleState": "PUBLISHED",
		"specificContent": map[string]interface{}{
			"com.linkedin.ugc.ShareContent": shareContent,
		},
		"visibility": map[string]string{
			"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC",
		},
	}

	headers := map[string]string{"X-Restli-Protocol-Version": "2.0.0"}

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.postJSON(ctx, "https://api.linkedin.com/v2/ugcPosts", accessToken, headers, payload, &resp); err != nil {
		return nil, err
	}

	return &PublishResult{ExternalID: resp.ID}, nil
}
