// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connections

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/monitoring"
	"github.com/campaignhq/campaign-service/internal/platform"
	"github.com/campaignhq/campaign-service/internal/tracing"
	"github.com/campaignhq/campaign-service/internal/types"
	"github.com/campaignhq/campaign-service/pkg/authentication"
)

func setupHandlerTest(t *testing.T) (*chi.Mux, *MockServiceInterface) {
	ctrl := gomock.NewController(t)
	mockService := NewMockServiceInterface(ctrl)

	api := NewAPI(mockService, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	router := chi.NewRouter()
	api.RegisterEndpoints(router)

	return router, mockService
}

func asOrg(req *http.Request, orgID string) *http.Request {
	return req.WithContext(authentication.WithPrincipal(req.Context(), authentication.Principal{UserID: "user-1", OrgID: orgID}))
}

func TestAPI_List_HidesTokenMaterial(t *testing.T) {
	router, mockService := setupHandlerTest(t)

	mockService.EXPECT().ListAccounts(gomock.Any(), "org-1").Return(
		[]*types.SocialAccount{
			{
				ID:             "acc-1",
				OrgID:          "org-1",
				Platform:       "meta",
				PlatformUserID: "page-42",
				AccessToken:    "secret-at",
				RefreshToken:   "secret-rt",
				ExpiresAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			},
		},
		nil,
	)

	req := asOrg(httptest.NewRequest(http.MethodGet, "/connections", nil), "org-1")
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.Code)
	}

	body := res.Body.String()
	if strings.Contains(body, "secret-at") || strings.Contains(body, "secret-rt") {
		t.Errorf("expected token material to be omitted from response, got %s", body)
	}
	if !strings.Contains(body, "page-42") {
		t.Errorf("expected account reference in response, got %s", body)
	}
}

func TestAPI_Connect(t *testing.T) {
	router, mockService := setupHandlerTest(t)

	mockService.EXPECT().ConnectURL(gomock.Any(), "org-1", "meta", "page-42").Return("https://consent.example.com", nil)

	req := asOrg(httptest.NewRequest(http.MethodPost, "/connections/meta", strings.NewReader(`{"account_ref":"page-42"}`)), "org-1")
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.Code)
	}

	var payload struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(res.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Data["auth_url"] != "https://consent.example.com" {
		t.Errorf("expected auth_url in response, got %+v", payload.Data)
	}
}

func TestAPI_Connect_UnknownPlatform(t *testing.T) {
	router, mockService := setupHandlerTest(t)

	mockService.EXPECT().ConnectURL(gomock.Any(), "org-1", "myspace", "").Return("", platform.ErrUnknownPlatform)

	req := asOrg(httptest.NewRequest(http.MethodPost, "/connections/myspace", nil), "org-1")
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	if res.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", res.Code)
	}
}

func setupCallbackTest(t *testing.T) (*chi.Mux, *MockServiceInterface) {
	ctrl := gomock.NewController(t)
	mockService := NewMockServiceInterface(ctrl)

	api := NewCallbackAPI(mockService, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	router := chi.NewRouter()
	api.RegisterEndpoints(router)

	return router, mockService
}

func TestCallbackAPI_Callback(t *testing.T) {
	testCases := []struct {
		name           string
		target         string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "completes the connection",
			target: "/api/v1/connections/meta/callback?code=code-1&state=state-1",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().CompleteConnection(gomock.Any(), "meta", "code-1", "state-1").Return(
					&types.SocialAccount{ID: "acc-1", Platform: "meta"}, nil,
				)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing code",
			target:         "/api/v1/connections/meta/callback?state=state-1",
			setupMocks:     func(mockService *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "expired state",
			target: "/api/v1/connections/meta/callback?code=code-1&state=gone",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().CompleteConnection(gomock.Any(), "meta", "code-1", "gone").Return(nil, ErrInvalidState)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "platform rejects the exchange",
			target: "/api/v1/connections/meta/callback?code=bad&state=state-1",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().CompleteConnection(gomock.Any(), "meta", "bad", "state-1").Return(
					nil, &platform.Error{Platform: "meta", Operation: "exchange", StatusCode: 400},
				)
			},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			router, mockService := setupCallbackTest(t)
			testCase.setupMocks(mockService)

			// The redirect leg carries no principal: the state alone
			// identifies the organization.
			req := httptest.NewRequest(http.MethodGet, testCase.target, nil)
			res := httptest.NewRecorder()

			router.ServeHTTP(res, req)

			if res.Code != testCase.expectedStatus {
				t.Errorf("expected status %d, got %d", testCase.expectedStatus, res.Code)
			}
		})
	}
}
