// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Organization struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	Enabled   bool      `db:"enabled"`
}

type User struct {
	ID           string    `db:"id"`
	Subject      string    `db:"subject"`
	Email        string    `db:"email"`
	CurrentOrgID string    `db:"current_org_id"`
	CreatedAt    time.Time `db:"created_at"`
}

type Membership struct {
	ID        string    `db:"id"`
	OrgID     string    `db:"org_id"`
	UserID    string    `db:"user_id"`
	Role      string    `db:"role"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
}

type Campaign struct {
	ID        string    `db:"id"`
	OrgID     string    `db:"org_id"`
	Name      string    `db:"name"`
	Goal      string    `db:"goal"`
	Status    string    `db:"status"`
	StartsAt  time.Time `db:"starts_at"`
	EndsAt    time.Time `db:"ends_at"`
	CreatedAt time.Time `db:"created_at"`
}

type ContentPlan struct {
	ID         string    `db:"id"`
	OrgID      string    `db:"org_id"`
	CampaignID string    `db:"campaign_id"`
	Title      string    `db:"title"`
	Body       string    `db:"body"`
	CreatedAt  time.Time `db:"created_at"`
}

type Audience struct {
	ID          string    `db:"id"`
	OrgID       string    `db:"org_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// SocialAccount is a third-party platform account connected to an
// organization, together with its current token material.
type SocialAccount struct {
	ID             string    `db:"id"`
	OrgID          string    `db:"org_id"`
	Platform       string    `db:"platform"`
	PlatformUserID string    `db:"platform_user_id"`
	AccessToken    string    `db:"access_token"`
	RefreshToken   string    `db:"refresh_token"`
	Scope          string    `db:"scope"`
	ExpiresAt      time.Time `db:"expires_at"`
	CreatedAt      time.Time `db:"created_at"`
}

// AuthEvent is an analytics record of a platform auth call.
type AuthEvent struct {
	ID         string        `db:"id"`
	OrgID      string        `db:"org_id"`
	Platform   string        `db:"platform"`
	Operation  string        `db:"operation"`
	Success    bool          `db:"success"`
	StatusCode int           `db:"status_code"`
	Duration   time.Duration `db:"duration"`
	CreatedAt  time.Time     `db:"created_at"`
}

type PublishJob struct {
	ID         string     `db:"id"`
	OrgID      string     `db:"org_id"`
	AccountID  string     `db:"account_id"`
	Platform   string     `db:"platform"`
	CampaignID string     `db:"campaign_id"`
	Body       string     `db:"body"`
	MediaURLs  []string   `db:"media_urls"`
	Status     string     `db:"status"`
	Attempts   int        `db:"attempts"`
	LastError  string     `db:"last_error"`
	RunAt      time.Time  `db:"run_at"`
	ClaimedAt  *time.Time `db:"claimed_at"`
	CreatedAt  time.Time  `db:"created_at"`
}

// PublishJob status values.
const (
	JobStatusQueued    = "queued"
	JobStatusRunning   = "running"
	JobStatusPublished = "published"
	JobStatusFailed    = "failed"
)
