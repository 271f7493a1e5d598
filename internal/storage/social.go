// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/campaignhq/campaign-service/internal/types"
)

func (s *Storage) CreateSocialAccount(ctx context.Context, orgID string, a *types.SocialAccount) (*types.SocialAccount, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSocialAccount")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate account ID: %w", err)
	}

	var created types.SocialAccount
	err = s.db.Statement(ctx).
		Insert("social_accounts").
		Columns("id", "org_id", "platform", "platform_user_id", "access_token", "refresh_token", "scope", "expires_at").
		Values(id.String(), orgID, a.Platform, a.PlatformUserID, a.AccessToken, a.RefreshToken, a.Scope, a.ExpiresAt).
		Suffix("RETURNING id, org_id, platform, platform_user_id, access_token, refresh_token, scope, expires_at, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OrgID, &created.Platform, &created.PlatformUserID, &created.AccessToken, &created.RefreshToken, &created.Scope, &created.ExpiresAt, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert social account: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetSocialAccountByID(ctx context.Context, orgID, id string) (*types.SocialAccount, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSocialAccountByID")
	defer span.End()

	var a types.SocialAccount
	err := s.db.Statement(ctx).
		Select("id", "org_id", "platform", "platform_user_id", "access_token", "refresh_token", "scope", "expires_at", "created_at").
		From("social_accounts").
		Where(sq.Eq{"id": id, "org_id": orgID}).
		QueryRowContext(ctx).
		Scan(&a.ID, &a.OrgID, &a.Platform, &a.PlatformUserID, &a.AccessToken, &a.RefreshToken, &a.Scope, &a.ExpiresAt, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get social account: %w", err)
	}

	return &a, nil
}

func (s *Storage) ListSocialAccounts(ctx context.Context, orgID string) ([]*types.SocialAccount, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSocialAccounts")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "org_id", "platform", "platform_user_id", "access_token", "refresh_token", "scope", "expires_at", "created_at").
		From("social_accounts").
		Where(sq.Eq{"org_id": orgID}).
		OrderBy("platform")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list social accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*types.SocialAccount
	for rows.Next() {
		var a types.SocialAccount
		if err := rows.Scan(&a.ID, &a.OrgID, &a.Platform, &a.PlatformUserID, &a.AccessToken, &a.RefreshToken, &a.Scope, &a.ExpiresAt, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan social account: %w", err)
		}
		accounts = append(accounts, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return accounts, nil
}

func (s *Storage) UpdateSocialAccountToken(ctx context.Context, orgID, id, accessToken, refreshToken string, expiresAt time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateSocialAccountToken")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("social_accounts").
		Set("access_token", accessToken).
		Set("refresh_token", refreshToken).
		Set("expires_at", expiresAt).
		Where(sq.Eq{"id": id, "org_id": orgID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update social account token: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// ListAccountsExpiringBefore is used by the token refresh loop. It runs
// outside a tenant context and therefore queries across organizations;
// the refresh worker connects with the maintenance role the row policies
// exempt.
func (s *Storage) ListAccountsExpiringBefore(ctx context.Context, deadline time.Time) ([]*types.SocialAccount, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAccountsExpiringBefore")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "org_id", "platform", "platform_user_id", "access_token", "refresh_token", "scope", "expires_at", "created_at").
		From("social_accounts").
		Where(sq.Lt{"expires_at": deadline}).
		Where(sq.NotEq{"refresh_token": ""}).
		OrderBy("expires_at")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*types.SocialAccount
	for rows.Next() {
		var a types.SocialAccount
		if err := rows.Scan(&a.ID, &a.OrgID, &a.Platform, &a.PlatformUserID, &a.AccessToken, &a.RefreshToken, &a.Scope, &a.ExpiresAt, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan social account: %w", err)
		}
		accounts = append(accounts, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return accounts, nil
}

func (s *Storage) RecordAuthEvent(ctx context.Context, e *types.AuthEvent) error {
	ctx, span := s.tracer.Start(ctx, "storage.RecordAuthEvent")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate auth event ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("auth_events").
		Columns("id", "org_id", "platform", "operation", "success", "status_code", "duration_ms").
		Values(id.String(), e.OrgID, e.Platform, e.Operation, e.Success, e.StatusCode, e.Duration.Milliseconds()).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to record auth event: %w", err)
	}

	return nil
}
