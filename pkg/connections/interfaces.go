// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connections

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campaignhq/campaign-service/internal/platform"
	"github.com/campaignhq/campaign-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package connections -destination ./mock_connections.go -source=./interfaces.go

type ServiceInterface interface {
	ConnectURL(ctx context.Context, orgID, platformName, accountRef string) (string, error)
	CompleteConnection(ctx context.Context, platformName, code, state string) (*types.SocialAccount, error)
	ListAccounts(ctx context.Context, orgID string) ([]*types.SocialAccount, error)
	Platforms() []string
}

type StorageInterface interface {
	CreateSocialAccount(ctx context.Context, orgID string, a *types.SocialAccount) (*types.SocialAccount, error)
	ListSocialAccounts(ctx context.Context, orgID string) ([]*types.SocialAccount, error)
	UpdateSocialAccountToken(ctx context.Context, orgID, id, accessToken, refreshToken string, expiresAt time.Time) error
	ListAccountsExpiringBefore(ctx context.Context, deadline time.Time) ([]*types.SocialAccount, error)
}

type RegistryInterface interface {
	Get(name string) (platform.ClientInterface, error)
	Platforms() []string
}

// StateStoreInterface is the slice of go-redis used to hold pending
// OAuth states between the connect and callback requests.
type StateStoreInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	GetDel(ctx context.Context, key string) *redis.StringCmd
}
