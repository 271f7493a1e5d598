// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestNormalizeToken(t *testing.T) {
	expiry := time.Now().Add(1 * time.Hour).Truncate(time.Second)

	base := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		Expiry:       expiry,
	}
	withExtras := base.WithExtra(map[string]interface{}{"scope": "pages_manage_posts"})

	tok := normalizeToken(withExtras)
	if tok.AccessToken != "access" || tok.RefreshToken != "refresh" {
		t.Errorf("token material not carried: %+v", tok)
	}
	if tok.Scope != "pages_manage_posts" {
		t.Errorf("expected scope from extras, got %q", tok.Scope)
	}
	if !tok.ExpiresAt.Equal(expiry) {
		t.Errorf("expected expiry %s, got %s", expiry, tok.ExpiresAt)
	}
}

func TestNormalizeToken_AbsoluteExpiresAt(t *testing.T) {
	at := time.Now().Add(2 * time.Hour).Unix()

	tok := normalizeToken((&oauth2.Token{AccessToken: "a"}).WithExtra(map[string]interface{}{
		"expires_at": float64(at),
	}))
	if tok.ExpiresAt.Unix() != at {
		t.Errorf("expected expiry %d, got %d", at, tok.ExpiresAt.Unix())
	}

	tok = normalizeToken((&oauth2.Token{AccessToken: "a"}).WithExtra(map[string]interface{}{
		"expires_at": "1735689600",
	}))
	if tok.ExpiresAt.Unix() != 1735689600 {
		t.Errorf("expected expiry 1735689600, got %d", tok.ExpiresAt.Unix())
	}
}

func TestRegistry(t *testing.T) {
	meta := &MetaClient{baseClient: baseClient{name: PlatformMeta}}
	tumblr := &TumblrClient{baseClient: baseClient{name: PlatformTumblr}}

	r := NewRegistry(meta, tumblr)

	c, err := r.Get(PlatformMeta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Platform() != PlatformMeta {
		t.Errorf("expected meta client, got %s", c.Platform())
	}

	if _, err := r.Get("myspace"); err == nil {
		t.Error("expected error for unknown platform")
	}

	platforms := r.Platforms()
	if len(platforms) != 2 || platforms[0] != PlatformMeta || platforms[1] != PlatformTumblr {
		t.Errorf("unexpected platform list: %v", platforms)
	}
}
