// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits structured audit events for the security-relevant
// paths: authentication, tenant boundary enforcement and process lifecycle.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("security event", zap.String("event", "system_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("security event", zap.String("event", "system_shutdown"))
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.l.Warn("security event",
		zap.String("event", "authz_failure"),
		zap.String("subject", subject),
		zap.String("action", action),
	)
}

func (s *SecurityLogger) TenantContextBound(orgID, userID string) {
	s.l.Debug("security event",
		zap.String("event", "tenant_context_bound"),
		zap.String("org_id", orgID),
		zap.String("user_id", userID),
	)
}

func (s *SecurityLogger) TenantContextFailure(userID string, err error) {
	s.l.Error("security event",
		zap.String("event", "tenant_context_failure"),
		zap.String("user_id", userID),
		zap.Error(err),
	)
}
