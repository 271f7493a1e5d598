// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/monitoring"
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

func authenticated(req *http.Request) *http.Request {
	return req.WithContext(authentication.WithPrincipal(req.Context(), authentication.Principal{UserID: "user-1"}))
}

func TestAPI_Create(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		principal      bool
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:      "created",
			body:      `{"name":"Acme"}`,
			principal: true,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().CreateOrganization(gomock.Any(), "Acme", "user-1").Return(&types.Organization{ID: "org-1", Name: "Acme"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			body:           `{}`,
			principal:      true,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "malformed body",
			body:           `{`,
			principal:      true,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unauthenticated",
			body:           `{"name":"Acme"}`,
			principal:      false,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, mockService := newTestAPI(t)
			tc.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, "/organizations", strings.NewReader(tc.body))
			if tc.principal {
				req = authenticated(req)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAPI_SwitchOrg(t *testing.T) {
	testCases := []struct {
		name           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "switched",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().SwitchOrganization(gomock.Any(), "user-1", "org-9").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not a member",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().SwitchOrganization(gomock.Any(), "user-1", "org-9").Return(ErrNotMember)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, mockService := newTestAPI(t)
			tc.setupMocks(mockService)

			req := authenticated(httptest.NewRequest(http.MethodPost, "/organizations/org-9/switch", nil))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
		})
	}
}
