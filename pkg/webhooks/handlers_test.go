// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/campaignhq/campaign-service/internal/logging"
	"github.com/campaignhq/campaign-service/internal/tracing"
)

func TestAPI_Registration(t *testing.T) {
	testCases := []struct {
		name           string
		secret         string
		token          string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "provisions the workspace",
			secret: "hook-secret",
			token:  "hook-secret",
			body:   `{"subject":"subject-1","email":"jo@example.com"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().HandleRegistration(gomock.Any(), "subject-1", "jo@example.com").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rejects a wrong token",
			secret:         "hook-secret",
			token:          "guess",
			body:           `{"subject":"subject-1","email":"jo@example.com"}`,
			setupMocks:     func(mockService *MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "accepts without token when no secret is configured",
			secret: "",
			token:  "",
			body:   `{"subject":"subject-1","email":"jo@example.com"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().HandleRegistration(gomock.Any(), "subject-1", "jo@example.com").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rejects a malformed body",
			secret:         "",
			token:          "",
			body:           `{"subject":`,
			setupMocks:     func(mockService *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := NewMockServiceInterface(ctrl)
			testCase.setupMocks(mockService)

			api := NewAPI(mockService, testCase.secret, tracing.NewNoopTracer(), logging.NewNoopLogger())
			router := chi.NewRouter()
			api.RegisterEndpoints(router)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/registration", strings.NewReader(testCase.body))
			if testCase.token != "" {
				req.Header.Set("X-Webhook-Token", testCase.token)
			}
			res := httptest.NewRecorder()

			router.ServeHTTP(res, req)

			if res.Code != testCase.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", testCase.expectedStatus, res.Code, res.Body.String())
			}
		})
	}
}
