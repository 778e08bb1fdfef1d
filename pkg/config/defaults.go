// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"dario.cat/mergo"

	"github.com/geowebcache/gwcconf/pkg/cache"
	"github.com/geowebcache/gwcconf/pkg/tilelayer"
)

// Hard-coded fallbacks used when neither the layer nor the global
// configuration sets a value.
const (
	DefaultCacheBypassAllowed = false
	DefaultBackendTimeout     = 120
)

// ApplyDefaults fills the unset optional fields of layer, first from the
// global values of cfg and then from the hard-coded fallbacks, and wires
// factory into the layer. Fields already set, including to false or 0, are kept.
func ApplyDefaults(cfg *tilelayer.Configuration, layer *tilelayer.TileLayer, factory *cache.Factory) {
	layer.SetCacheFactory(factory)

	global := &tilelayer.TileLayer{}
	if cfg != nil {
		if cfg.CacheBypassAllowed != nil {
			global.CacheBypassAllowed = tilelayer.Bool(*cfg.CacheBypassAllowed)
		}
		if cfg.BackendTimeout != nil {
			global.BackendTimeout = tilelayer.Int(*cfg.BackendTimeout)
		}
	}
	fallback := &tilelayer.TileLayer{
		CacheBypassAllowed: tilelayer.Bool(DefaultCacheBypassAllowed),
		BackendTimeout:     tilelayer.Int(DefaultBackendTimeout),
	}

	// Pointers are compared, not dereferenced, so an explicit false or 0 is kept.
	_ = mergo.Merge(layer, global, mergo.WithoutDereference)
	_ = mergo.Merge(layer, fallback, mergo.WithoutDereference)
}
