// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package campaigns

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/monitoring"
	"github.com/campaignhq/campaign-service/internal/storage"
	"github.com/campaignhq/campaign-service/internal/tracing"
	"github.com/campaignhq/campaign-service/internal/types"
	"github.com/campaignhq/campaign-service/pkg/authentication"
)

func newTestAPI(t *testing.T) (*chi.Mux, *MockServiceInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	api := NewAPI(mockService, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	router := chi.NewMux()
	api.RegisterEndpoints(router)
	return router, mockService
}

func asOrg(req *http.Request, orgID string) *http.Request {
	return req.WithContext(authentication.WithPrincipal(req.Context(), authentication.Principal{UserID: "user-1", OrgID: orgID}))
}

func TestAPI_Get(t *testing.T) {
	testCases := []struct {
		name           string
		orgID          string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:  "found in own organization",
			orgID: "org-1",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().GetCampaign(gomock.Any(), "org-1", "c-1").Return(&types.Campaign{ID: "c-1", OrgID: "org-1", Name: "Spring"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			// The service filters by the caller's org, so a campaign owned
			// by another organization is indistinguishable from a missing one.
			name:  "cross-tenant access is not found",
			orgID: "org-2",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().GetCampaign(gomock.Any(), "org-2", "c-1").Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, mockService := newTestAPI(t)
			tc.setupMocks(mockService)

			req := asOrg(httptest.NewRequest(http.MethodGet, "/campaigns/c-1", nil), tc.orgID)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
		})
	}
}

func TestAPI_Create(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "created",
			body: `{"name":"Spring launch","goal":"awareness"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().CreateCampaign(gomock.Any(), "org-1", gomock.Any()).Return(&types.Campaign{ID: "c-1", Name: "Spring launch"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			body:           `{"goal":"awareness"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid status value",
			body:           `{"name":"Spring","status":"running"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, mockService := newTestAPI(t)
			tc.setupMocks(mockService)

			req := asOrg(httptest.NewRequest(http.MethodPost, "/campaigns", strings.NewReader(tc.body)), "org-1")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAPI_Update_NoFields(t *testing.T) {
	router, _ := newTestAPI(t)

	req := asOrg(httptest.NewRequest(http.MethodPatch, "/campaigns/c-1", strings.NewReader(`{}`)), "org-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
