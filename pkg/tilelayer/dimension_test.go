// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package tilelayer_test

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	gwcerrors "github.com/geowebcache/gwcconf/pkg/errors"
	"github.com/geowebcache/gwcconf/pkg/tilelayer"
	"github.com/geowebcache/gwcconf/pkg/tilelayer/mocks"
)

func TestParseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "one is true", value: "1", want: true},
		{name: "zero is false", value: "0", want: false},
		{name: "empty is false", value: "", want: false},
		{name: "true literal is false", value: "true", want: false},
		{name: "padded one is false", value: " 1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tilelayer.ParseFlag(tt.value))
		})
	}
}

const dimensionXML = `<dimension name="time" units="ISO8601" current="1" nearestValue="0" default="2020-01-01" unitSymbol="t">
  2020-01-01,2020-02-01
</dimension>`

func TestDimension_UnmarshalXML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		doc          string
		wantCurrent  bool
		wantNearest  bool
		wantMultiple bool
		wantDefault  string
		wantExtent   string
	}{
		{
			name:        "all attributes",
			doc:         dimensionXML,
			wantCurrent: true,
			wantDefault: "2020-01-01",
			wantExtent:  "2020-01-01,2020-02-01",
		},
		{
			name:       "absent flags are false",
			doc:        `<dimension name="elevation" units="EPSG:5030">0,100,200</dimension>`,
			wantExtent: "0,100,200",
		},
		{
			name:         "multiple values flag",
			doc:          `<dimension name="elevation" units="EPSG:5030" multipleValues="1">0</dimension>`,
			wantMultiple: true,
			wantExtent:   "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var d tilelayer.Dimension
			require.NoError(t, xml.Unmarshal([]byte(tt.doc), &d))

			assert.Equal(t, tt.wantCurrent, d.Current())
			assert.Equal(t, tt.wantNearest, d.NearestValue())
			assert.Equal(t, tt.wantMultiple, d.MultipleValues())
			assert.Equal(t, tt.wantDefault, d.DefaultValue())
			assert.Equal(t, tt.wantExtent, d.Extent())
			assert.Nil(t, d.Handler(), "handlers are bound after decoding")
		})
	}
}

func TestDimension_MarshalXMLIsEmpty(t *testing.T) {
	t.Parallel()

	var d tilelayer.Dimension
	require.NoError(t, xml.Unmarshal([]byte(dimensionXML), &d))

	out, err := xml.Marshal(&d)
	require.NoError(t, err)
	assert.Equal(t, "<Dimension></Dimension>", string(out))

	entry := tilelayer.DimensionEntry{Key: "time", Dimension: &d}
	out, err = xml.Marshal(entry)
	require.NoError(t, err)
	assert.Equal(t, "<DimensionEntry><string>time</string><dimension></dimension></DimensionEntry>", string(out))
}

func decodeDimensions(t *testing.T, doc string) tilelayer.Dimensions {
	t.Helper()
	var wrapper struct {
		Entries tilelayer.Dimensions `xml:"entry"`
	}
	require.NoError(t, xml.Unmarshal([]byte(doc), &wrapper))
	return wrapper.Entries
}

const dimensionsXML = `<dimensions>
  <entry><string>time</string><dimension name="time" units="ISO8601">2020-01-01</dimension></entry>
  <entry><string>depth</string><dimension name="depth" units="fathoms">1,2</dimension></entry>
</dimensions>`

func TestDimensions_ResolveHandlers(t *testing.T) {
	t.Parallel()

	t.Run("binds handlers through the registry", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		handler := mocks.NewMockExtentHandler(ctrl)
		registry := mocks.NewMockHandlerRegistry(ctrl)
		registry.EXPECT().Resolve(tilelayer.UnitsISO8601).Return(handler)
		registry.EXPECT().Resolve("fathoms").Return(nil)

		ds := decodeDimensions(t, dimensionsXML)
		require.NoError(t, ds.ResolveHandlers(registry))

		assert.Equal(t, []string{"time", "depth"}, ds.Keys())

		timeDim, ok := ds.Get("time")
		require.True(t, ok)
		assert.Same(t, handler, timeDim.Handler())

		depth, ok := ds.Get("depth")
		require.True(t, ok)
		assert.Nil(t, depth.Handler(), "unregistered units leave the handler unset")

		handler.EXPECT().Values("2020-01-01").Return([]string{"2020-01-01"}, nil)
		values, err := timeDim.Values()
		require.NoError(t, err)
		assert.Equal(t, []string{"2020-01-01"}, values)

		_, err = depth.Values()
		assert.Error(t, err)
	})

	t.Run("nil registry is a handler resolution error", func(t *testing.T) {
		t.Parallel()

		ds := decodeDimensions(t, dimensionsXML)
		err := ds.ResolveHandlers(nil)
		require.Error(t, err)
		assert.True(t, gwcerrors.IsHandlerResolution(err))
	})

	t.Run("resolution runs once", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		registry := mocks.NewMockHandlerRegistry(ctrl)
		registry.EXPECT().Resolve(gomock.Any()).Return(tilelayer.ListHandler{}).Times(2)

		ds := decodeDimensions(t, dimensionsXML)
		require.NoError(t, ds.ResolveHandlers(registry))
		require.NoError(t, ds.ResolveHandlers(registry))
	})

	t.Run("constructed dimensions need no registry", func(t *testing.T) {
		t.Parallel()

		ds := tilelayer.Dimensions{{
			Key:       "elevation",
			Dimension: tilelayer.NewDimension("elevation", "m", "0,10", tilelayer.ListHandler{}),
		}}
		require.NoError(t, ds.ResolveHandlers(nil))
	})
}

func TestDimensions_Get(t *testing.T) {
	t.Parallel()

	ds := tilelayer.Dimensions{
		{Key: "empty"},
		{Key: "elevation", Dimension: tilelayer.NewDimension("elevation", "m", "0", nil)},
	}

	_, ok := ds.Get("empty")
	assert.False(t, ok, "entries without a dimension are not returned")
	_, ok = ds.Get("missing")
	assert.False(t, ok)
	d, ok := ds.Get("elevation")
	require.True(t, ok)
	assert.Equal(t, "m", d.Units())
}
