// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gwcerrors "github.com/geowebcache/gwcconf/pkg/errors"
	"github.com/geowebcache/gwcconf/pkg/tilelayer"
)

func TestMigrate_CurrentIsIdentity(t *testing.T) {
	t.Parallel()

	doc := loadFixture(t, "current.xml")
	before, err := doc.WriteToString()
	require.NoError(t, err)

	out, migrated, err := Migrate(doc)
	require.NoError(t, err)
	assert.False(t, migrated)
	assert.Same(t, doc, out)

	after, err := out.WriteToString()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMigrate_Legacy(t *testing.T) {
	t.Parallel()

	out, migrated, err := Migrate(loadFixture(t, "legacy.xml"))
	require.NoError(t, err)
	assert.True(t, migrated)

	root := out.Root()
	require.NotNil(t, root)
	assert.Equal(t, tilelayer.RootElement, root.Tag)
	assert.Equal(t, tilelayer.SchemaNamespace, root.SelectAttrValue("xmlns", ""))
	assert.Equal(t, tilelayer.XSINamespace, root.SelectAttrValue("xmlns:xsi", ""))

	layers := root.FindElements("./layers/wmsLayer")
	require.Len(t, layers, 2)

	first := layers[0]
	assert.Equal(t, "topp:states", first.SelectElement("name").Text())
	assert.Equal(t, "topp:states", first.SelectElement("wmsLayers").Text())
	assert.Equal(t, "population", first.SelectElement("wmsStyles").Text())
	assert.Nil(t, first.SelectElement("WMSurl"))
	assert.Nil(t, first.SelectElement("cachePrefix"), "fields without a current equivalent are dropped")

	urls := first.FindElements("./wmsUrl/string")
	require.Len(t, urls, 2)
	assert.Equal(t, "http://localhost:8080/geoserver/wms", urls[0].Text())
	assert.Equal(t, "http://backup:8080/geoserver/wms", urls[1].Text())

	formats := layers[1].FindElements("./mimeFormats/string")
	require.Len(t, formats, 2)
	assert.Equal(t, "image/jpeg", formats[0].Text())
	assert.Equal(t, "image/png", formats[1].Text())

	assert.True(t, Validate(out).Valid(), "migrated documents satisfy the schema")
}

func TestMigrate_EmptyLegacyList(t *testing.T) {
	t.Parallel()

	doc, err := ReadDocument(strings.NewReader("<layers/>"), "inline")
	require.NoError(t, err)

	out, migrated, err := Migrate(doc)
	require.NoError(t, err)
	assert.True(t, migrated)
	assert.Equal(t, tilelayer.RootElement, out.Root().Tag)
	assert.Empty(t, out.Root().FindElements("./layers/wmsLayer"))
}

func TestMigrate_Unrecognized(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown root", doc: "<seedRequest><name>topp:states</name></seedRequest>"},
		{name: "prefixed current root", doc: `<gwc:gwcConfiguration xmlns:gwc="urn:gwc"/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := ReadDocument(strings.NewReader(tt.doc), "inline")
			require.NoError(t, err)

			out, migrated, err := Migrate(doc)
			require.Error(t, err)
			assert.True(t, migrated, "the transform was attempted")
			assert.True(t, gwcerrors.IsUnrecognizedSchema(err))
			assert.Nil(t, out)
		})
	}
}

func TestMigrate_UnrecognizedFixture(t *testing.T) {
	t.Parallel()

	_, _, err := Migrate(loadFixture(t, "unrecognized.xml"))
	require.Error(t, err)
	assert.True(t, gwcerrors.IsUnrecognizedSchema(err))
	assert.Contains(t, err.Error(), `"seedRequest"`)
}
