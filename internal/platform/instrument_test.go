// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/campaignhq/campaign-service/internal/db"
	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/types"
)

type fakeRecorder struct {
	events []*types.AuthEvent
}

func (f *fakeRecorder) RecordAuthEvent(ctx context.Context, e *types.AuthEvent) error {
	f.events = append(f.events, e)
	return nil
}

func TestInstrument_RecordsTenantFromContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := NewMockClientInterface(ctrl)
	mockClient.EXPECT().Platform().Return("meta").AnyTimes()
	mockClient.EXPECT().Refresh(gomock.Any(), "rt").Return(&Token{AccessToken: "at"}, nil)

	recorder := &fakeRecorder{}
	client := Instrument(mockClient, recorder, logging.NewNoopLogger())

	ctx := db.ContextWithTenant(context.Background(), db.TenantContext{OrgID: "org-1"})
	if _, err := client.Refresh(ctx, "rt"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(recorder.events) != 1 {
		t.Fatalf("expected one auth event, got %d", len(recorder.events))
	}
	event := recorder.events[0]
	if event.OrgID != "org-1" {
		t.Errorf("expected auth event attributed to org-1, got %q", event.OrgID)
	}
	if event.Platform != "meta" || event.Operation != "refresh" || !event.Success {
		t.Errorf("expected successful meta refresh event, got %+v", event)
	}
}

func TestInstrument_RecordsFailureStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := NewMockClientInterface(ctrl)
	mockClient.EXPECT().Platform().Return("tumblr").AnyTimes()
	mockClient.EXPECT().ExchangeCode(gomock.Any(), "bad-code").Return(
		nil, &Error{Platform: "tumblr", Operation: "exchange", StatusCode: 401},
	)

	recorder := &fakeRecorder{}
	client := Instrument(mockClient, recorder, logging.NewNoopLogger())

	ctx := db.ContextWithTenant(context.Background(), db.TenantContext{OrgID: "org-2"})
	if _, err := client.ExchangeCode(ctx, "bad-code"); err == nil {
		t.Fatalf("expected exchange error to propagate")
	}

	if len(recorder.events) != 1 {
		t.Fatalf("expected one auth event, got %d", len(recorder.events))
	}
	event := recorder.events[0]
	if event.OrgID != "org-2" || event.Success || event.StatusCode != 401 {
		t.Errorf("expected failed exchange event for org-2 with status 401, got %+v", event)
	}
}
