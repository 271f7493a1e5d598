// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	chi "github.com/go-chi/chi/v5"
)

// EndpointRegistererInterface is implemented by every API package that
// mounts routes on the router.
type EndpointRegistererInterface interface {
	RegisterEndpoints(router chi.Router)
}
