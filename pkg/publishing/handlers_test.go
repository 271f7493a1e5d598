// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package publishing

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
	"github.com/campaignhq/campaign-service/internal/storage"
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

func TestAPI_Enqueue(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "queues the job",
			body: `{"account_id":"0191e0a0-0000-7000-8000-000000000001","body":"hello","run_at":"2026-03-01T12:00:00Z"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Enqueue(gomock.Any(), "org-1", gomock.Any()).DoAndReturn(
					func(ctx interface{}, orgID string, job *types.PublishJob) (*types.PublishJob, error) {
						if !job.RunAt.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)) {
							t.Errorf("expected parsed run_at, got %v", job.RunAt)
						}
						job.ID = "job-1"
						job.Status = types.JobStatusQueued
						return job, nil
					},
				)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "missing account",
			body:           `{"body":"hello"}`,
			setupMocks:     func(mockService *MockServiceInterface) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "malformed run_at",
			body:           `{"account_id":"0191e0a0-0000-7000-8000-000000000001","body":"hello","run_at":"tomorrow"}`,
			setupMocks:     func(mockService *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "account belongs to another organization",
			body: `{"account_id":"0191e0a0-0000-7000-8000-000000000001","body":"hello"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Enqueue(gomock.Any(), "org-1", gomock.Any()).Return(nil, ErrAccountNotFound)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			router, mockService := setupHandlerTest(t)
			testCase.setupMocks(mockService)

			req := asOrg(httptest.NewRequest(http.MethodPost, "/publish-jobs", strings.NewReader(testCase.body)), "org-1")
			res := httptest.NewRecorder()

			router.ServeHTTP(res, req)

			if res.Code != testCase.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", testCase.expectedStatus, res.Code, res.Body.String())
			}
		})
	}
}

func TestAPI_Get(t *testing.T) {
	router, mockService := setupHandlerTest(t)

	mockService.EXPECT().GetJob(gomock.Any(), "org-1", "job-1").Return(
		&types.PublishJob{
			ID:        "job-1",
			OrgID:     "org-1",
			AccountID: "acc-1",
			Platform:  "meta",
			Body:      "hello",
			Status:    types.JobStatusPublished,
			Attempts:  1,
			RunAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		nil,
	)

	req := asOrg(httptest.NewRequest(http.MethodGet, "/publish-jobs/job-1", nil), "org-1")
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.Code)
	}

	var payload struct {
		Data jobView `json:"data"`
	}
	if err := json.Unmarshal(res.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Data.Status != types.JobStatusPublished {
		t.Errorf("expected published status, got %q", payload.Data.Status)
	}
	if payload.Data.RunAt != "2026-03-01T12:00:00Z" {
		t.Errorf("expected RFC 3339 run_at, got %q", payload.Data.RunAt)
	}
}

func TestAPI_Get_CrossTenant(t *testing.T) {
	router, mockService := setupHandlerTest(t)

	mockService.EXPECT().GetJob(gomock.Any(), "org-1", "job-other").Return(nil, storage.ErrNotFound)

	req := asOrg(httptest.NewRequest(http.MethodGet, "/publish-jobs/job-other", nil), "org-1")
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	if res.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", res.Code)
	}
}
