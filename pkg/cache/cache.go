// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package cache holds the cache backend collaborators that the configuration
// pipeline wires into tile layers. The caching engine itself lives elsewhere;
// this package only names backends and hands them out.
package cache

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/stacklok/toolhive-core/env"
)

// CacheDirEnvVar names the environment variable that points the file cache
// at its storage root.
const CacheDirEnvVar = "GEOWEBCACHE_CACHE_DIR"

// ErrNoDefaultPrefix is returned when a backend cannot derive a default location.
var ErrNoDefaultPrefix = errors.New("no default prefix available")

// Backend is a named cache implementation.
type Backend interface {
	Name() string
}

// Factory hands out cache backends by name. Every loaded tile layer holds a
// reference to the same factory.
type Factory struct {
	backends    map[string]Backend
	defaultName string
}

// NewFactory creates a factory over the given backends. The first backend is the default.
func NewFactory(backends ...Backend) *Factory {
	f := &Factory{backends: make(map[string]Backend, len(backends))}
	for i, b := range backends {
		if i == 0 {
			f.defaultName = b.Name()
		}
		f.backends[b.Name()] = b
	}
	return f
}

// Get returns the backend registered under name.
func (f *Factory) Get(name string) (Backend, bool) {
	if f == nil {
		return nil, false
	}
	b, ok := f.backends[name]
	return b, ok
}

// Default returns the default backend, or nil for an empty factory.
func (f *Factory) Default() Backend {
	if f == nil {
		return nil
	}
	return f.backends[f.defaultName]
}

// Names returns the registered backend names in sorted order.
func (f *Factory) Names() []string {
	if f == nil {
		return nil
	}
	names := make([]string, 0, len(f.backends))
	for name := range f.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FileCache is the disk-backed cache backend. Its storage root doubles as a
// default location for the configuration file.
type FileCache struct {
	env env.Reader
}

// NewFileCache creates a file cache that reads its root from the process environment.
func NewFileCache() *FileCache {
	return NewFileCacheWithEnv(&env.OSReader{})
}

// NewFileCacheWithEnv creates a file cache using the provided environment reader.
func NewFileCacheWithEnv(envReader env.Reader) *FileCache {
	return &FileCache{env: envReader}
}

// Name implements Backend.
func (*FileCache) Name() string {
	return "file"
}

// DefaultPrefix returns the path of fileName inside the cache root.
func (c *FileCache) DefaultPrefix(fileName string) (string, error) {
	root := c.env.Getenv(CacheDirEnvVar)
	if root == "" {
		return "", fmt.Errorf("%w: %s is not set", ErrNoDefaultPrefix, CacheDirEnvVar)
	}
	return filepath.Join(root, fileName), nil
}
