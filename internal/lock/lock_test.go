// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campaignhq/campaign-service/internal/logging"
)

type fakeRedis struct {
	setNXResult bool
	setNXErr    error
	setKey      string
	setValue    string
	setTTL      time.Duration

	evalKeys []string
	evalArgs []interface{}
	evalErr  error
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	f.setKey = key
	f.setValue, _ = value.(string)
	f.setTTL = expiration
	return redis.NewBoolResult(f.setNXResult, f.setNXErr)
}

func (f *fakeRedis) Eval(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	f.evalKeys = keys
	f.evalArgs = args
	return redis.NewCmdResult(int64(1), f.evalErr)
}

func TestLocker_Acquire(t *testing.T) {
	testCases := []struct {
		name        string
		setNXResult bool
		setNXErr    error
		expectedErr error
	}{
		{
			name:        "acquired",
			setNXResult: true,
		},
		{
			name:        "held by another replica",
			setNXResult: false,
			expectedErr: ErrNotAcquired,
		},
		{
			name:        "redis unavailable",
			setNXErr:    errors.New("connection refused"),
			expectedErr: errors.New("connection refused"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeRedis{setNXResult: tc.setNXResult, setNXErr: tc.setNXErr}
			l := NewLocker(client, logging.NewNoopLogger())

			release, err := l.Acquire(context.Background(), "publish-worker", 30*time.Second)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatal("expected error")
				}
				if errors.Is(tc.expectedErr, ErrNotAcquired) && !errors.Is(err, ErrNotAcquired) {
					t.Errorf("expected ErrNotAcquired, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if client.setKey != "lock:publish-worker" {
				t.Errorf("unexpected lock key %q", client.setKey)
			}
			if client.setTTL != 30*time.Second {
				t.Errorf("unexpected TTL %s", client.setTTL)
			}

			release(context.Background())
			if len(client.evalKeys) != 1 || client.evalKeys[0] != "lock:publish-worker" {
				t.Errorf("release did not target the lock key: %v", client.evalKeys)
			}
			if len(client.evalArgs) != 1 || client.evalArgs[0] != client.setValue {
				t.Errorf("release token does not match acquire token")
			}
		})
	}
}
