// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gwcerrors "github.com/geowebcache/gwcconf/pkg/errors"
	"github.com/geowebcache/gwcconf/pkg/tilelayer"
)

var modelOpts = cmp.Options{
	cmpopts.IgnoreFields(tilelayer.Configuration{}, "XMLName"),
	cmpopts.IgnoreUnexported(tilelayer.TileLayer{}),
}

func TestDecode_Current(t *testing.T) {
	t.Parallel()

	cfg, err := Decode(loadFixture(t, "current.xml"), tilelayer.NewDefaultRegistry())
	require.NoError(t, err)

	want := &tilelayer.Configuration{
		Namespace:      tilelayer.CurrentNamespace(),
		BackendTimeout: tilelayer.Int(90),
		Layers: []*tilelayer.TileLayer{
			{
				Name:        "topp:states",
				MimeFormats: []string{"image/gif", "image/jpeg", "image/png"},
				Grids: []tilelayer.Grid{{
					SRS:        tilelayer.SRS{Number: 4326},
					DataBounds: tilelayer.NewBBox(-129.6, 3.45, -62.1, 70.9),
					GridBounds: tilelayer.NewBBox(-180, -90, 180, 90),
					ZoomStart:  0,
					ZoomStop:   25,
				}},
				WMSURL:          []string{"http://localhost:8080/geoserver/wms"},
				WMSLayers:       "topp:states",
				MetaWidthHeight: []int{3, 3},
				Transparent:     tilelayer.Bool(true),
				BackendTimeout:  tilelayer.Int(30),
			},
			{
				Name:               "raster test layer",
				MimeFormats:        []string{"image/png"},
				WMSURL:             []string{"http://demo.opengeo.org/geoserver/wms"},
				WMSLayers:          "nurc:Img_Sample",
				CacheBypassAllowed: tilelayer.Bool(true),
			},
		},
	}

	if diff := cmp.Diff(want, cfg, modelOpts); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_Dimensions(t *testing.T) {
	t.Parallel()

	cfg, err := Decode(loadFixture(t, "dimensions.xml"), tilelayer.NewDefaultRegistry())
	require.NoError(t, err)
	require.Len(t, cfg.Layers, 1)

	dims := cfg.Layers[0].Dimensions
	assert.Equal(t, []string{"time", "elevation"}, dims.Keys())

	timeDim, ok := dims.Get("time")
	require.True(t, ok)
	assert.Equal(t, "time", timeDim.Name())
	assert.Equal(t, tilelayer.UnitsISO8601, timeDim.Units())
	assert.Equal(t, "2008-01-01/2008-12-31/P1M", timeDim.Extent())
	assert.True(t, timeDim.Current())
	assert.False(t, timeDim.NearestValue())
	assert.True(t, timeDim.MultipleValues())
	assert.Equal(t, "2008-01-01", timeDim.DefaultValue())
	assert.Equal(t, "t", timeDim.UnitSymbol())
	assert.IsType(t, tilelayer.TimeHandler{}, timeDim.Handler())

	elevation, ok := dims.Get("elevation")
	require.True(t, ok)
	assert.False(t, elevation.Current())
	assert.IsType(t, tilelayer.ListHandler{}, elevation.Handler())
	values, err := elevation.Values()
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "100", "200"}, values)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	t.Run("dimensions without a registry", func(t *testing.T) {
		t.Parallel()
		_, err := Decode(loadFixture(t, "dimensions.xml"), nil)
		require.Error(t, err)
		assert.True(t, gwcerrors.IsHandlerResolution(err))
	})

	t.Run("no dimensions needs no registry", func(t *testing.T) {
		t.Parallel()
		_, err := Decode(loadFixture(t, "current.xml"), nil)
		assert.NoError(t, err)
	})

	t.Run("wrongly typed value", func(t *testing.T) {
		t.Parallel()
		doc, err := ReadDocument(strings.NewReader(
			`<gwcConfiguration><backendTimeout>ninety</backendTimeout></gwcConfiguration>`), "inline")
		require.NoError(t, err)

		_, err = Decode(doc, tilelayer.NewDefaultRegistry())
		require.Error(t, err)
		assert.True(t, gwcerrors.IsMapping(err))
	})

	t.Run("unknown elements are ignored", func(t *testing.T) {
		t.Parallel()
		cfg, err := Decode(loadFixture(t, "violations.xml"), tilelayer.NewDefaultRegistry())
		require.NoError(t, err)
		assert.Equal(t, []string{"topp:states"}, cfg.LayerNames())
	})
}

func TestDecode_NamespaceDefaults(t *testing.T) {
	t.Parallel()

	doc, err := ReadDocument(strings.NewReader(`<gwcConfiguration xmlns="urn:custom"/>`), "inline")
	require.NoError(t, err)

	cfg, err := Decode(doc, nil)
	require.NoError(t, err)
	assert.Equal(t, "urn:custom", cfg.Namespace.Default)
	assert.Equal(t, tilelayer.XSINamespace, cfg.Namespace.XSI)
	assert.Equal(t, tilelayer.SchemaLocation, cfg.Namespace.SchemaLocation)
	assert.Empty(t, cfg.Layers)
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	registry := tilelayer.NewDefaultRegistry()
	first, err := Decode(loadFixture(t, "current.xml"), registry)
	require.NoError(t, err)

	data, err := Encode(first)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte(xmlHeader)))

	doc, err := ReadDocument(bytes.NewReader(data), "encoded")
	require.NoError(t, err)
	assert.True(t, Validate(doc).Valid(), "encoded documents satisfy the schema")

	second, err := Decode(doc, registry)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second, modelOpts); diff != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", diff)
	}
}

func TestEncode_DropsDimensions(t *testing.T) {
	t.Parallel()

	registry := tilelayer.NewDefaultRegistry()
	cfg, err := Decode(loadFixture(t, "dimensions.xml"), registry)
	require.NoError(t, err)
	assert.Equal(t, []string{"nurc:Arc_Sample"}, layersWithDimensions(cfg))

	data, err := Encode(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "2008-01-01")
	assert.NotContains(t, string(data), `units=`)

	doc, err := ReadDocument(bytes.NewReader(data), "encoded")
	require.NoError(t, err)
	again, err := Decode(doc, registry)
	require.NoError(t, err)

	d, ok := again.Layers[0].Dimensions.Get("time")
	require.True(t, ok, "entry keys survive")
	assert.Empty(t, d.Name())
	assert.Empty(t, d.Extent())
}
