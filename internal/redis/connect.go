// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campaignhq/campaign-service/internal/logging"
)

const connectTimeout = 10 * time.Second

// Connect parses the connection URL and verifies the server is
// reachable before handing the client back.
func Connect(ctx context.Context, url string, logger logging.LoggerInterface) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}

	logger.Infof("connected to redis at %s", opts.Addr)
	return client, nil
}
