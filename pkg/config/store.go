// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	gwcerrors "github.com/geowebcache/gwcconf/pkg/errors"
	"github.com/geowebcache/gwcconf/pkg/fileutils"
	"github.com/geowebcache/gwcconf/pkg/tilelayer"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks -source=store.go Persister

// PersistReport describes what a persist call wrote.
type PersistReport struct {
	// Path is the file that was written.
	Path string
	// DroppedDimensions names the layers whose dimensions were not written.
	DroppedDimensions []string
}

// Persister writes a configuration to disk.
type Persister interface {
	// Persist replaces the file at path with the serialized configuration.
	Persist(ctx context.Context, cfg *tilelayer.Configuration, path string) (PersistReport, error)
}

// FilePersister writes configurations through a temporary file that is
// renamed into place, holding an advisory lock on "<path>.lock" meanwhile.
type FilePersister struct {
	lockTimeout time.Duration
	perm        os.FileMode
	logger      *slog.Logger
}

// NewFilePersister creates a persister with the default lock timeout.
func NewFilePersister(logger *slog.Logger) *FilePersister {
	return &FilePersister{
		lockTimeout: fileutils.DefaultLockTimeout,
		perm:        0o644,
		logger:      logger,
	}
}

// Persist implements Persister. Every failure is an I/O error and leaves the
// previous file content in place.
func (p *FilePersister) Persist(ctx context.Context, cfg *tilelayer.Configuration, path string) (PersistReport, error) {
	report := PersistReport{Path: path, DroppedDimensions: layersWithDimensions(cfg)}

	data, err := Encode(cfg)
	if err != nil {
		return report, gwcerrors.NewIOError(fmt.Sprintf("error encoding configuration for %s", path), err)
	}

	err = fileutils.WithFileLock(ctx, path, p.lockTimeout, func() error {
		return fileutils.AtomicWriteFile(path, data, p.perm)
	})
	if err != nil {
		return report, gwcerrors.NewIOError(fmt.Sprintf("error writing to %s", path), err)
	}

	if len(report.DroppedDimensions) > 0 {
		p.logger.Warn("dimensions are not written to the configuration file",
			"path", path, "layers", report.DroppedDimensions)
	}
	p.logger.Info("wrote configuration to " + filepath.Clean(path))
	return report, nil
}
