// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"

	"github.com/geowebcache/gwcconf/pkg/tilelayer"
)

//go:generate mockgen -destination=mocks/mock_provider.go -package=mocks -source=interface.go Provider

// Provider defines the interface for tile layer configuration operations
type Provider interface {
	// GetTileLayers returns the configured layers, loading them if needed.
	GetTileLayers(reload bool) ([]*tilelayer.TileLayer, error)
	// AddLayer adds a new layer and persists the configuration.
	AddLayer(ctx context.Context, layer *tilelayer.TileLayer) error
	// ModifyLayer replaces an existing layer and persists the configuration.
	ModifyLayer(ctx context.Context, layer *tilelayer.TileLayer) error
	// DeleteLayer removes a layer and persists the configuration.
	DeleteLayer(ctx context.Context, name string) error
	// Identifier names where the configuration comes from.
	Identifier() string
}

var _ Provider = (*XMLConfiguration)(nil)
