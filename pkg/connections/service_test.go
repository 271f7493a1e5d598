// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connections

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/mock/gomock"

	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/monitoring"
	"github.com/campaignhq/campaign-service/internal/platform"
	"github.com/campaignhq/campaign-service/internal/tracing"
	"github.com/campaignhq/campaign-service/internal/types"
)

func setupServiceTest(t *testing.T) (*Service, *MockStorageInterface, *MockRegistryInterface, *MockStateStoreInterface) {
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	mockRegistry := NewMockRegistryInterface(ctrl)
	mockStates := NewMockStateStoreInterface(ctrl)

	s := NewService(mockStorage, mockRegistry, mockStates, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	return s, mockStorage, mockRegistry, mockStates
}

func TestService_ConnectURL(t *testing.T) {
	s, _, mockRegistry, mockStates := setupServiceTest(t)

	ctrl := gomock.NewController(t)
	mockClient := platform.NewMockClientInterface(ctrl)

	var storedKey, storedPayload string
	mockRegistry.EXPECT().Get("meta").Return(mockClient, nil)
	mockStates.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), stateTTL).DoAndReturn(
		func(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
			storedKey = key
			storedPayload = value.(string)
			return redis.NewStatusResult("OK", nil)
		},
	)
	mockClient.EXPECT().AuthCodeURL(gomock.Any()).DoAndReturn(func(state string) string {
		return "https://consent.example.com?state=" + state
	})

	url, err := s.ConnectURL(context.Background(), "org-1", "meta", "page-42")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.HasPrefix(storedKey, "oauthstate:") {
		t.Errorf("expected state key with oauthstate prefix, got %q", storedKey)
	}
	state := strings.TrimPrefix(storedKey, "oauthstate:")
	if storedPayload != "org-1|meta|page-42" {
		t.Errorf("expected payload bound to org and platform, got %q", storedPayload)
	}
	if !strings.HasSuffix(url, "state="+state) {
		t.Errorf("expected consent url carrying state %q, got %q", state, url)
	}
}

func TestService_ConnectURL_UnknownPlatform(t *testing.T) {
	s, _, mockRegistry, _ := setupServiceTest(t)

	mockRegistry.EXPECT().Get("myspace").Return(nil, platform.ErrUnknownPlatform)

	_, err := s.ConnectURL(context.Background(), "org-1", "myspace", "")
	if !errors.Is(err, platform.ErrUnknownPlatform) {
		t.Errorf("expected ErrUnknownPlatform, got %v", err)
	}
}

func TestService_CompleteConnection(t *testing.T) {
	s, mockStorage, mockRegistry, mockStates := setupServiceTest(t)

	ctrl := gomock.NewController(t)
	mockClient := platform.NewMockClientInterface(ctrl)

	expiry := time.Now().Add(time.Hour).UTC()

	mockStates.EXPECT().GetDel(gomock.Any(), "oauthstate:state-1").Return(
		redis.NewStringResult("org-1|meta|page-42", nil),
	)
	mockRegistry.EXPECT().Get("meta").Return(mockClient, nil)
	mockClient.EXPECT().ExchangeCode(gomock.Any(), "code-1").Return(
		&platform.Token{AccessToken: "at", RefreshToken: "rt", Scope: "pages_manage_posts", ExpiresAt: expiry},
		nil,
	)
	mockStorage.EXPECT().CreateSocialAccount(gomock.Any(), "org-1", gomock.Any()).DoAndReturn(
		func(ctx context.Context, orgID string, a *types.SocialAccount) (*types.SocialAccount, error) {
			if a.Platform != "meta" {
				t.Errorf("expected platform meta, got %q", a.Platform)
			}
			if a.PlatformUserID != "page-42" {
				t.Errorf("expected platform user id page-42, got %q", a.PlatformUserID)
			}
			if a.AccessToken != "at" || a.RefreshToken != "rt" {
				t.Errorf("expected token material to be persisted, got %+v", a)
			}
			if !a.ExpiresAt.Equal(expiry) {
				t.Errorf("expected expiry %v, got %v", expiry, a.ExpiresAt)
			}
			a.ID = "acc-1"
			return a, nil
		},
	)

	account, err := s.CompleteConnection(context.Background(), "meta", "code-1", "state-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if account.ID != "acc-1" {
		t.Errorf("expected persisted account, got %+v", account)
	}
}

func TestService_CompleteConnection_StateExpired(t *testing.T) {
	s, _, _, mockStates := setupServiceTest(t)

	mockStates.EXPECT().GetDel(gomock.Any(), "oauthstate:gone").Return(
		redis.NewStringResult("", redis.Nil),
	)

	_, err := s.CompleteConnection(context.Background(), "meta", "code-1", "gone")
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
}

func TestService_CompleteConnection_StateMismatch(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "different platform",
			payload: "org-1|tumblr|page-42",
		},
		{
			name:    "malformed payload",
			payload: "org-1",
		},
		{
			name:    "missing organization",
			payload: "|meta|page-42",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, _, _, mockStates := setupServiceTest(t)

			mockStates.EXPECT().GetDel(gomock.Any(), "oauthstate:state-1").Return(
				redis.NewStringResult(test.payload, nil),
			)

			_, err := s.CompleteConnection(context.Background(), "meta", "code-1", "state-1")
			if !errors.Is(err, ErrInvalidState) {
				t.Errorf("expected ErrInvalidState, got %v", err)
			}
		})
	}
}

func TestService_CompleteConnection_ExchangeFails(t *testing.T) {
	s, _, mockRegistry, mockStates := setupServiceTest(t)

	ctrl := gomock.NewController(t)
	mockClient := platform.NewMockClientInterface(ctrl)

	exchangeErr := &platform.Error{Platform: "meta", Operation: "exchange", StatusCode: 400}

	mockStates.EXPECT().GetDel(gomock.Any(), "oauthstate:state-1").Return(
		redis.NewStringResult("org-1|meta|", nil),
	)
	mockRegistry.EXPECT().Get("meta").Return(mockClient, nil)
	mockClient.EXPECT().ExchangeCode(gomock.Any(), "bad-code").Return(nil, exchangeErr)

	_, err := s.CompleteConnection(context.Background(), "meta", "bad-code", "state-1")

	var platformErr *platform.Error
	if !errors.As(err, &platformErr) {
		t.Fatalf("expected platform error, got %v", err)
	}
	if platformErr.StatusCode != 400 {
		t.Errorf("expected status 400, got %d", platformErr.StatusCode)
	}
}
