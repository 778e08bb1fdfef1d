// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/adrg/xdg"

	gwcerrors "github.com/geowebcache/gwcconf/pkg/errors"
	"github.com/geowebcache/gwcconf/pkg/fileutils"
)

//go:generate mockgen -destination=mocks/mock_resolver.go -package=mocks -source=resolver.go DefaultPrefixer

// FileName is the name of the configuration file inside the configuration directory.
const FileName = "geowebcache.xml"

// DefaultStandardPaths are tried in order, relative to the base directory,
// when no explicit location was configured.
var DefaultStandardPaths = []string{"/WEB-INF/classes", "/../resources"}

// DefaultPrefixer is a cache backend able to suggest a default location for a file.
type DefaultPrefixer interface {
	// DefaultPrefix returns the full path fileName would have in the backend's storage root.
	DefaultPrefix(fileName string) (string, error)
}

// Level identifies which lookup rule produced a directory.
type Level int

// Lookup rules in precedence order.
const (
	LevelNone Level = iota
	LevelAbsolutePath
	LevelRelativePath
	LevelCachePrefix
	LevelStandardPath
	LevelUserConfig
)

func (l Level) String() string {
	switch l {
	case LevelAbsolutePath:
		return "absolute path"
	case LevelRelativePath:
		return "relative path"
	case LevelCachePrefix:
		return "cache default prefix"
	case LevelStandardPath:
		return "standard path"
	case LevelUserConfig:
		return "user config directory"
	default:
		return "none"
	}
}

// Resolution is the outcome of a successful directory lookup.
type Resolution struct {
	Dir   string
	Level Level
}

// Resolver determines the directory holding the configuration file. Successful
// lookups are cached until Invalidate is called; failed lookups are retried on
// the next call.
type Resolver struct {
	// AbsolutePath, when set, is used as the directory without further checks.
	AbsolutePath string
	// RelativePath, when set, is joined to BaseDir and used without further checks.
	RelativePath string
	// BaseDir is the application base directory.
	BaseDir string
	// Prefixer, when set, supplies a candidate file location.
	Prefixer DefaultPrefixer
	// StandardPaths are tried in order under BaseDir.
	StandardPaths []string
	// UserConfigFallback enables a final lookup in the XDG config directory.
	UserConfigFallback bool

	logger     *slog.Logger
	cached     *Resolution
	configHome string
}

// NewResolver creates a resolver using the standard paths.
func NewResolver(logger *slog.Logger) *Resolver {
	return &Resolver{
		StandardPaths: DefaultStandardPaths,
		logger:        logger,
	}
}

// Resolve returns the configuration directory, running the lookup rules if no
// directory is cached.
func (r *Resolver) Resolve() (Resolution, error) {
	if r.cached != nil {
		return *r.cached, nil
	}

	res, ok := r.lookup()
	if !ok {
		r.logger.Error("failed to find " + FileName)
		return Resolution{}, gwcerrors.NewConfigurationDirectoryNotFoundError(
			"unable to determine configuration directory", nil)
	}

	if abs, err := filepath.Abs(res.Dir); err == nil {
		res.Dir = abs
	}
	r.logger.Info("configuration directory set", "dir", res.Dir, "level", res.Level.String())
	if !fileutils.IsReadableFile(filepath.Join(res.Dir, FileName)) {
		r.logger.Error("configuration file cannot be read or does not exist", "dir", res.Dir)
	}

	r.cached = &res
	return res, nil
}

// Cached returns the cached directory, if any.
func (r *Resolver) Cached() (Resolution, bool) {
	if r.cached == nil {
		return Resolution{}, false
	}
	return *r.cached, true
}

// Invalidate clears the cached directory so the next Resolve runs the lookup again.
func (r *Resolver) Invalidate() {
	r.cached = nil
}

func (r *Resolver) lookup() (Resolution, bool) {
	if r.AbsolutePath != "" {
		return Resolution{Dir: filepath.Clean(r.AbsolutePath), Level: LevelAbsolutePath}, true
	}
	if r.RelativePath != "" {
		return Resolution{Dir: r.underBase(r.RelativePath), Level: LevelRelativePath}, true
	}

	if r.Prefixer != nil {
		// Backends without a usable root are skipped.
		if candidate, err := r.Prefixer.DefaultPrefix(FileName); err == nil && fileutils.IsReadableFile(candidate) {
			return Resolution{Dir: filepath.Dir(candidate), Level: LevelCachePrefix}, true
		}
	}

	for _, rel := range r.StandardPaths {
		dir := r.underBase(rel)
		if fileutils.IsReadableFile(filepath.Join(dir, FileName)) {
			r.logger.Info(fmt.Sprintf("no configuration directory was specified, using %s", dir))
			return Resolution{Dir: dir, Level: LevelStandardPath}, true
		}
	}

	if r.UserConfigFallback {
		home := r.configHome
		if home == "" {
			home = xdg.ConfigHome
		}
		dir := filepath.Join(home, "geowebcache")
		if fileutils.IsReadableFile(filepath.Join(dir, FileName)) {
			return Resolution{Dir: dir, Level: LevelUserConfig}, true
		}
	}

	return Resolution{}, false
}

func (r *Resolver) underBase(rel string) string {
	return filepath.Join(r.BaseDir, filepath.FromSlash(rel))
}
