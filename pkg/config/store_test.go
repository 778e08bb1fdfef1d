// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gwcerrors "github.com/geowebcache/gwcconf/pkg/errors"
	"github.com/geowebcache/gwcconf/pkg/tilelayer"
)

func TestFilePersister_Persist(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := installFixture(t, dir, "current.xml")

	cfg, err := Decode(loadFixture(t, "current.xml"), nil)
	require.NoError(t, err)
	cfg.RemoveLayer("raster test layer")

	report, err := NewFilePersister(testLogger()).Persist(context.Background(), cfg, path)
	require.NoError(t, err)
	assert.Equal(t, path, report.Path)
	assert.Empty(t, report.DroppedDimensions)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), xmlHeader))
	assert.NotContains(t, string(data), "raster test layer")

	reloaded, err := LoadDocument(path)
	require.NoError(t, err)
	again, err := Decode(reloaded, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"topp:states"}, again.LayerNames())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".tmp-"), "temp file %s left behind", e.Name())
	}
}

func TestFilePersister_ReportsDroppedDimensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := Decode(loadFixture(t, "dimensions.xml"), tilelayer.NewDefaultRegistry())
	require.NoError(t, err)

	report, err := NewFilePersister(testLogger()).Persist(context.Background(), cfg, filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Equal(t, []string{"nurc:Arc_Sample"}, report.DroppedDimensions)
}

func TestFilePersister_Failure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", FileName)

	_, err := NewFilePersister(testLogger()).Persist(context.Background(), tilelayer.NewConfiguration(), path)
	require.Error(t, err)
	assert.True(t, gwcerrors.IsIO(err))
	assert.Contains(t, err.Error(), path)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFilePersister_KeepsPreviousContentOnFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := installFixture(t, dir, "current.xml")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A cancelled context fails lock acquisition before anything is written.
	_, err = NewFilePersister(testLogger()).Persist(ctx, tilelayer.NewConfiguration(), path)
	require.Error(t, err)
	assert.True(t, gwcerrors.IsIO(err))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
