// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// RegistrationEvent is the payload the identity provider posts after a
// successful sign-up.
type RegistrationEvent struct {
	Subject string `json:"subject"`
	Email   string `json:"email"`
}
