// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/campaignhq/campaign-service/internal/types"
)

func (s *Storage) CreateCampaign(ctx context.Context, orgID string, c *types.Campaign) (*types.Campaign, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCampaign")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate campaign ID: %w", err)
	}

	var created types.Campaign
	err = s.db.Statement(ctx).
		Insert("campaigns").
		Columns("id", "org_id", "name", "goal", "status", "starts_at", "ends_at").
		Values(id.String(), orgID, c.Name, c.Goal, c.Status, c.StartsAt, c.EndsAt).
		Suffix("RETURNING id, org_id, name, goal, status, starts_at, ends_at, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OrgID, &created.Name, &created.Goal, &created.Status, &created.StartsAt, &created.EndsAt, &created.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert campaign: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetCampaignByID(ctx context.Context, orgID, id string) (*types.Campaign, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCampaignByID")
	defer span.End()

	var c types.Campaign
	err := s.db.Statement(ctx).
		Select("id", "org_id", "name", "goal", "status", "starts_at", "ends_at", "created_at").
		From("campaigns").
		Where(sq.Eq{"id": id, "org_id": orgID}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.OrgID, &c.Name, &c.Goal, &c.Status, &c.StartsAt, &c.EndsAt, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return &c, nil
}

func (s *Storage) ListCampaigns(ctx context.Context, orgID string) ([]*types.Campaign, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCampaigns")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "org_id", "name", "goal", "status", "starts_at", "ends_at", "created_at").
		From("campaigns").
		Where(sq.Eq{"org_id": orgID}).
		OrderBy("created_at DESC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*types.Campaign
	for rows.Next() {
		var c types.Campaign
		if err := rows.Scan(&c.ID, &c.OrgID, &c.Name, &c.Goal, &c.Status, &c.StartsAt, &c.EndsAt, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return campaigns, nil
}

// UpdateCampaign updates fields specified in paths, scoped to the owning
// organization. Updating a row owned by another organization affects zero
// rows and surfaces ErrNotFound.
func (s *Storage) UpdateCampaign(ctx context.Context, orgID string, c *types.Campaign, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCampaign")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = c.Name
		case "goal":
			updateMap["goal"] = c.Goal
		case "status":
			updateMap["status"] = c.Status
		case "starts_at":
			updateMap["starts_at"] = c.StartsAt
		case "ends_at":
			updateMap["ends_at"] = c.EndsAt
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("campaigns").
		SetMap(updateMap).
		Where(sq.Eq{"id": c.ID, "org_id": orgID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
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

func (s *Storage) DeleteCampaign(ctx context.Context, orgID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCampaign")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("campaigns").
		Where(sq.Eq{"id": id, "org_id": orgID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
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

func (s *Storage) CreateContentPlan(ctx context.Context, orgID string, p *types.ContentPlan) (*types.ContentPlan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateContentPlan")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate content plan ID: %w", err)
	}

	var created types.ContentPlan
	err = s.db.Statement(ctx).
		Insert("content_plans").
		Columns("id", "org_id", "campaign_id", "title", "body").
		Values(id.String(), orgID, p.CampaignID, p.Title, p.Body).
		Suffix("RETURNING id, org_id, campaign_id, title, body, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OrgID, &created.CampaignID, &created.Title, &created.Body, &created.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert content plan: %w", err)
	}

	return &created, nil
}

func (s *Storage) ListContentPlansByCampaign(ctx context.Context, orgID, campaignID string) ([]*types.ContentPlan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListContentPlansByCampaign")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "org_id", "campaign_id", "title", "body", "created_at").
		From("content_plans").
		Where(sq.Eq{"org_id": orgID, "campaign_id": campaignID}).
		OrderBy("created_at")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list content plans: %w", err)
	}
	defer rows.Close()

	var plans []*types.ContentPlan
	for rows.Next() {
		var p types.ContentPlan
		if err := rows.Scan(&p.ID, &p.OrgID, &p.CampaignID, &p.Title, &p.Body, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan content plan: %w", err)
		}
		plans = append(plans, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return plans, nil
}

func (s *Storage) CreateAudience(ctx context.Context, orgID string, a *types.Audience) (*types.Audience, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAudience")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate audience ID: %w", err)
	}

	var created types.Audience
	err = s.db.Statement(ctx).
		Insert("audiences").
		Columns("id", "org_id", "name", "description").
		Values(id.String(), orgID, a.Name, a.Description).
		Suffix("RETURNING id, org_id, name, description, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OrgID, &created.Name, &created.Description, &created.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert audience: %w", err)
	}

	return &created, nil
}

func (s *Storage) ListAudiences(ctx context.Context, orgID string) ([]*types.Audience, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAudiences")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "org_id", "name", "description", "created_at").
		From("audiences").
		Where(sq.Eq{"org_id": orgID}).
		OrderBy("name")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audiences: %w", err)
	}
	defer rows.Close()

	var audiences []*types.Audience
	for rows.Next() {
		var a types.Audience
		if err := rows.Scan(&a.ID, &a.OrgID, &a.Name, &a.Description, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audience: %w", err)
		}
		audiences = append(audiences, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return audiences, nil
}

func (s *Storage) DeleteAudience(ctx context.Context, orgID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteAudience")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("audiences").
		Where(sq.Eq{"id": id, "org_id": orgID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete audience: %w", err)
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
