// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package config locates, loads, migrates, validates and persists the tile
// layer configuration file (geowebcache.xml).
//
// An XMLConfiguration runs the pipeline: the Resolver picks the directory,
// LoadDocument parses the file, Migrate rewrites legacy documents, Validate
// checks the schema, Decode maps the tree onto the tilelayer model and
// ApplyDefaults back-fills each layer. Mutations go through AddLayer,
// ModifyLayer and DeleteLayer, which write the file back with a Persister.
package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/beevik/etree"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/geowebcache/gwcconf/pkg/cache"
	gwcerrors "github.com/geowebcache/gwcconf/pkg/errors"
	"github.com/geowebcache/gwcconf/pkg/logger"
	"github.com/geowebcache/gwcconf/pkg/tilelayer"
)

// MockIdentifier is returned by Identifier for configurations built from a stream.
const MockIdentifier = "Mock configuration"

// XMLConfiguration owns one loaded tile layer configuration. The zero value is
// not usable; create instances with New or NewFromReader.
type XMLConfiguration struct {
	mu sync.Mutex

	resolver     *Resolver
	prefixerSet  bool
	registry     tilelayer.HandlerRegistry
	cacheFactory *cache.Factory
	persister    Persister
	logger       *slog.Logger
	metrics      *Metrics
	strict       bool

	mock       bool
	model      *tilelayer.Configuration
	validation ValidationResult
}

// Option configures an XMLConfiguration.
type Option func(*XMLConfiguration) error

// WithAbsolutePath sets the configuration directory explicitly.
func WithAbsolutePath(dir string) Option {
	return func(c *XMLConfiguration) error {
		c.resolver.AbsolutePath = dir
		return nil
	}
}

// WithRelativePath sets the configuration directory relative to the base directory.
func WithRelativePath(rel string) Option {
	return func(c *XMLConfiguration) error {
		c.resolver.RelativePath = rel
		return nil
	}
}

// WithBaseDir sets the application base directory.
func WithBaseDir(dir string) Option {
	return func(c *XMLConfiguration) error {
		c.resolver.BaseDir = dir
		return nil
	}
}

// WithStandardPaths replaces the standard paths tried under the base directory.
func WithStandardPaths(paths ...string) Option {
	return func(c *XMLConfiguration) error {
		c.resolver.StandardPaths = paths
		return nil
	}
}

// WithUserConfigFallback enables the lookup in the XDG config directory.
func WithUserConfigFallback(enabled bool) Option {
	return func(c *XMLConfiguration) error {
		c.resolver.UserConfigFallback = enabled
		return nil
	}
}

// WithDefaultPrefixer sets the backend used to derive a default directory.
// Passing nil disables that lookup.
func WithDefaultPrefixer(p DefaultPrefixer) Option {
	return func(c *XMLConfiguration) error {
		c.resolver.Prefixer = p
		c.prefixerSet = true
		return nil
	}
}

// WithCacheFactory sets the cache factory wired into every layer.
func WithCacheFactory(f *cache.Factory) Option {
	return func(c *XMLConfiguration) error {
		c.cacheFactory = f
		return nil
	}
}

// WithHandlerRegistry sets the registry used to resolve dimension extent
// handlers. A nil registry makes loading fail for documents with dimensions.
func WithHandlerRegistry(r tilelayer.HandlerRegistry) Option {
	return func(c *XMLConfiguration) error {
		c.registry = r
		return nil
	}
}

// WithStrictValidation makes schema violations fail the load.
func WithStrictValidation(strict bool) Option {
	return func(c *XMLConfiguration) error {
		c.strict = strict
		return nil
	}
}

// WithPersister replaces the file persister.
func WithPersister(p Persister) Option {
	return func(c *XMLConfiguration) error {
		c.persister = p
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *XMLConfiguration) error {
		c.logger = l
		return nil
	}
}

// WithMetrics registers the pipeline counters with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *XMLConfiguration) error {
		m, err := NewMetrics(reg)
		if err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
		c.metrics = m
		return nil
	}
}

// New creates a configuration that reads and writes geowebcache.xml in the
// resolved directory. Nothing is read until GetTileLayers is called.
func New(opts ...Option) (*XMLConfiguration, error) {
	c := &XMLConfiguration{
		resolver:     NewResolver(nil),
		registry:     tilelayer.NewDefaultRegistry(),
		cacheFactory: cache.NewFactory(cache.NewFileCache()),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.logger == nil {
		c.logger = logger.ForComponent("config")
	}
	c.resolver.logger = c.logger
	if c.persister == nil {
		c.persister = NewFilePersister(c.logger)
	}
	if !c.prefixerSet {
		if p, ok := c.cacheFactory.Default().(DefaultPrefixer); ok {
			c.resolver.Prefixer = p
		}
	}
	return c, nil
}

// NewFromReader creates a mock configuration from a document stream. The
// document goes through migration, validation and mapping as usual, but no
// directory is ever resolved and mutations are not persisted.
func NewFromReader(r io.Reader, opts ...Option) (*XMLConfiguration, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	c.mock = true

	doc, err := ReadDocument(r, "configuration stream")
	if err != nil {
		c.metrics.observeLoad(err)
		return nil, err
	}
	model, result, err := c.process(doc)
	c.metrics.observeLoad(err)
	if err != nil {
		return nil, err
	}
	c.model = model
	c.validation = result
	c.applyDefaults()
	return c, nil
}

// GetTileLayers returns the configured layers, loading the file on first use
// or when reload is set. Defaults are applied to every layer on each call.
// A failed reload leaves the configuration unloaded.
func (c *XMLConfiguration) GetTileLayers(reload bool) ([]*tilelayer.TileLayer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.mock && (c.model == nil || reload) {
		c.model = nil
		err := c.load()
		c.metrics.observeLoad(err)
		if err != nil {
			return nil, err
		}
	}

	c.applyDefaults()
	return c.model.Layers, nil
}

// AddLayer validates layer, wires the cache factory into it and appends it,
// then writes the file. A layer whose name is taken is rejected before anything
// is written.
func (c *XMLConfiguration) AddLayer(ctx context.Context, layer *tilelayer.TileLayer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkMutation(layer); err != nil {
		return err
	}
	layer.SetCacheFactory(c.cacheFactory)
	if !c.model.AddLayer(layer) {
		return gwcerrors.NewLayerExistsError(fmt.Sprintf("layer %s already exists", layer.Name), nil)
	}
	return c.persist(ctx)
}

// ModifyLayer replaces the layer with the same name, then writes the file.
func (c *XMLConfiguration) ModifyLayer(ctx context.Context, layer *tilelayer.TileLayer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkMutation(layer); err != nil {
		return err
	}
	layer.SetCacheFactory(c.cacheFactory)
	if !c.model.ReplaceLayer(layer) {
		return gwcerrors.NewLayerNotFoundError(fmt.Sprintf("layer %s not found", layer.Name), nil)
	}
	return c.persist(ctx)
}

// DeleteLayer removes the named layer, then writes the file.
func (c *XMLConfiguration) DeleteLayer(ctx context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.model == nil {
		return gwcerrors.NewNotLoadedError("configuration has not been loaded", nil)
	}
	if !c.model.RemoveLayer(name) {
		return gwcerrors.NewLayerNotFoundError(fmt.Sprintf("layer %s not found", name), nil)
	}
	return c.persist(ctx)
}

// Save writes the loaded configuration to disk as it is.
func (c *XMLConfiguration) Save(ctx context.Context) (PersistReport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.model == nil {
		return PersistReport{}, gwcerrors.NewNotLoadedError("configuration has not been loaded", nil)
	}
	if c.mock {
		return PersistReport{}, nil
	}
	return c.write(ctx)
}

// Identifier returns the configuration directory, MockIdentifier for mock
// configurations, or "" when no directory can be determined.
func (c *XMLConfiguration) Identifier() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mock {
		return MockIdentifier
	}
	res, err := c.resolver.Resolve()
	if err != nil {
		return ""
	}
	return res.Dir
}

// ConfigFile returns the path of the configuration file.
func (c *XMLConfiguration) ConfigFile() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.configFile()
}

// InvalidateDirectory forgets the resolved directory.
func (c *XMLConfiguration) InvalidateDirectory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolver.Invalidate()
}

// Validation returns the schema validation result of the last load.
func (c *XMLConfiguration) Validation() ValidationResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validation
}

// Model returns the loaded configuration, or nil before the first load.
func (c *XMLConfiguration) Model() *tilelayer.Configuration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.model
}

// CacheFactory returns the cache factory wired into layers.
func (c *XMLConfiguration) CacheFactory() *cache.Factory {
	return c.cacheFactory
}

// IsMock reports whether the configuration was built from a stream.
func (c *XMLConfiguration) IsMock() bool {
	return c.mock
}

func (c *XMLConfiguration) configFile() (string, error) {
	res, err := c.resolver.Resolve()
	if err != nil {
		return "", err
	}
	c.logger.Debug("found configuration file", "dir", res.Dir)
	return filepath.Join(res.Dir, FileName), nil
}

func (c *XMLConfiguration) load() error {
	path, err := c.configFile()
	if err != nil {
		return err
	}
	doc, err := LoadDocument(path)
	if err != nil {
		return err
	}
	model, result, err := c.process(doc)
	if err != nil {
		return err
	}
	c.model = model
	c.validation = result
	return nil
}

// process runs migration, validation and mapping over a parsed document.
func (c *XMLConfiguration) process(doc *etree.Document) (*tilelayer.Configuration, ValidationResult, error) {
	doc, migrated, err := Migrate(doc)
	if migrated {
		c.logger.Info("the configuration file is of the old type, trying to convert")
		if err == nil {
			c.metrics.observeMigration()
		}
	}
	if err != nil {
		c.logger.Error("unable to parse file, expected " + tilelayer.RootElement + " at root after transform")
		return nil, ValidationResult{}, err
	}

	result := Validate(doc)
	if result.Valid() {
		c.logger.Info("configuration file validated fine")
	} else {
		for _, v := range result.Violations {
			c.logger.Info(v.String())
		}
		c.logger.Info("will try to use configuration anyway")
		c.metrics.observeViolations(len(result.Violations))
		if c.strict {
			return nil, result, result.Err()
		}
	}

	model, err := Decode(doc, c.registry)
	if err != nil {
		return nil, result, err
	}
	return model, result, nil
}

func (c *XMLConfiguration) applyDefaults() {
	for _, l := range c.model.Layers {
		ApplyDefaults(c.model, l, c.cacheFactory)
	}
}

func (c *XMLConfiguration) checkMutation(layer *tilelayer.TileLayer) error {
	if c.model == nil {
		return gwcerrors.NewNotLoadedError("configuration has not been loaded", nil)
	}
	if layer == nil {
		return gwcerrors.NewInvalidLayerError("layer must not be nil", nil)
	}
	if err := layer.Validate(); err != nil {
		return gwcerrors.NewInvalidLayerError("layer rejected", err)
	}
	return nil
}

// persist writes the model after a mutation. The in-memory change is kept
// when the write fails.
func (c *XMLConfiguration) persist(ctx context.Context) error {
	if c.mock {
		c.logger.Debug("mock configuration, not persisting")
		return nil
	}
	_, err := c.write(ctx)
	return err
}

func (c *XMLConfiguration) write(ctx context.Context) (PersistReport, error) {
	path, err := c.configFile()
	if err != nil {
		return PersistReport{}, err
	}
	report, err := c.persister.Persist(ctx, c.model, path)
	c.metrics.observePersist(err)
	return report, err
}
