// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"fmt"
	"sort"
)

// Registry holds the configured platform clients, keyed by platform
// identifier. It is assembled once at startup and read-only afterwards.
type Registry struct {
	clients map[string]ClientInterface
}

func NewRegistry(clients ...ClientInterface) *Registry {
	r := &Registry{clients: make(map[string]ClientInterface, len(clients))}
	for _, c := range clients {
		r.clients[c.Platform()] = c
	}
	return r
}

func (r *Registry) Get(name string) (ClientInterface, error) {
	c, ok := r.clients[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlatform, name)
	}
	return c, nil
}

func (r *Registry) Platforms() []string {
	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
