// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connections

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/monitoring"
	"github.com/campaignhq/campaign-service/internal/tracing"
	"github.com/campaignhq/campaign-service/internal/types"
)

const stateTTL = 10 * time.Minute

var ErrInvalidState = errors.New("invalid or expired oauth state")

type Service struct {
	storage  StorageInterface
	registry RegistryInterface
	states   StateStoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	registry RegistryInterface,
	states StateStoreInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		registry: registry,
		states:   states,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) Platforms() []string {
	return s.registry.Platforms()
}

// ConnectURL generates a single-use CSRF state bound to the caller's
// organization and returns the platform consent URL. The accountRef is
// the platform-side publish target (page, blog, location) the caller
// wants the connection for; it travels through the state.
func (s *Service) ConnectURL(ctx context.Context, orgID, platformName, accountRef string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "connections.Service.ConnectURL")
	defer span.End()

	client, err := s.registry.Get(platformName)
	if err != nil {
		return "", err
	}

	state, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate oauth state: %w", err)
	}

	payload := strings.Join([]string{orgID, platformName, accountRef}, "|")
	if err := s.states.Set(ctx, stateKey(state.String()), payload, stateTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store oauth state: %w", err)
	}

	return client.AuthCodeURL(state.String()), nil
}

// CompleteConnection validates the callback state, exchanges the code
// and persists the normalized token as a connected account. The
// platform redirects the user's browser here without credentials, so
// the single-use state is the sole link back to the organization that
// started the connect.
func (s *Service) CompleteConnection(ctx context.Context, platformName, code, state string) (*types.SocialAccount, error) {
	ctx, span := s.tracer.Start(ctx, "connections.Service.CompleteConnection")
	defer span.End()

	payload, err := s.states.GetDel(ctx, stateKey(state)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrInvalidState
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load oauth state: %w", err)
	}

	parts := strings.SplitN(payload, "|", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] != platformName {
		s.logger.Security().AuthzFailure(parts[0], "oauth_callback")
		return nil, ErrInvalidState
	}
	orgID := parts[0]
	accountRef := parts[2]

	client, err := s.registry.Get(platformName)
	if err != nil {
		return nil, err
	}

	token, err := client.ExchangeCode(ctx, code)
	if err != nil {
		s.logger.Errorf("token exchange with %s failed: %v", platformName, err)
		return nil, err
	}

	account := &types.SocialAccount{
		Platform:       platformName,
		PlatformUserID: accountRef,
		AccessToken:    token.AccessToken,
		RefreshToken:   token.RefreshToken,
		Scope:          token.Scope,
		ExpiresAt:      token.ExpiresAt,
	}

	return s.storage.CreateSocialAccount(ctx, orgID, account)
}

func (s *Service) ListAccounts(ctx context.Context, orgID string) ([]*types.SocialAccount, error) {
	ctx, span := s.tracer.Start(ctx, "connections.Service.ListAccounts")
	defer span.End()

	return s.storage.ListSocialAccounts(ctx, orgID)
}

func stateKey(state string) string {
	return "oauthstate:" + state
}
