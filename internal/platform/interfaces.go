// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"context"
)

//go:generate mockgen -build_flags=--mod=mod -package platform -destination ./mock_platform.go -source=./interfaces.go

// Supported platform identifiers.
const (
	PlatformMeta           = "meta"
	PlatformGoogleBusiness = "google-business"
	PlatformTumblr         = "tumblr"
	PlatformTikTok         = "tiktok"
	PlatformLinkedIn       = "linkedin"
)

// Post is a platform-agnostic publish request; each client shapes it into
// the platform's payload (Tumblr NPF blocks, Google Business local posts).
type Post struct {
	// AccountRef is the platform-side target of the post: a page ID for
	// Meta, a location resource name for Google Business, a blog
	// identifier for Tumblr, an author URN for LinkedIn.
	AccountRef string
	Title      string
	Body       string
	MediaURLs  []string
}

type PublishResult struct {
	ExternalID string
}

// ClientInterface is implemented once per platform and resolved through
// the Registry at startup.
type ClientInterface interface {
	Platform() string
	// AuthCodeURL returns the platform consent URL for the given CSRF state.
	AuthCodeURL(state string) string
	// ExchangeCode trades an authorization code for a normalized token.
	// One-shot: token exchange is never retried.
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	// Refresh trades a refresh token for a fresh normalized token.
	Refresh(ctx context.Context, refreshToken string) (*Token, error)
	// Publish posts content on behalf of the account holding accessToken.
	Publish(ctx context.Context, accessToken string, post *Post) (*PublishResult, error)
}
