// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

// Token is the normalized token record. Platforms disagree on expiry
// (expires_in vs expires_at) and scope encodings; everything funnels into
// this one shape before touching storage.
type Token struct {
	AccessToken  string
	RefreshToken string
	Scope        string
	ExpiresAt    time.Time
}

func normalizeToken(t *oauth2.Token) *Token {
	tok := &Token{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		ExpiresAt:    t.Expiry,
	}

	if s, ok := t.Extra("scope").(string); ok {
		tok.Scope = s
	}

	if tok.ExpiresAt.IsZero() {
		// Some platforms return an absolute expires_at instead of expires_in.
		switch v := t.Extra("expires_at").(type) {
		case float64:
			tok.ExpiresAt = time.Unix(int64(v), 0)
		case string:
			if sec, err := strconv.ParseInt(v, 10, 64); err == nil {
				tok.ExpiresAt = time.Unix(sec, 0)
			}
		}
	}

	return tok
}
