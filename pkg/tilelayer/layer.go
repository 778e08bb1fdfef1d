// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package tilelayer

import (
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/geowebcache/gwcconf/pkg/cache"
)

// TileLayer is a WMS-backed tile layer. Pointer-typed fields are optional:
// nil means "not set in the document", which is distinct from false or 0.
type TileLayer struct {
	Name             string     `xml:"name" json:"name" yaml:"name" toml:"name"`
	MimeFormats      []string   `xml:"mimeFormats>string,omitempty" json:"mimeFormats,omitempty" yaml:"mimeFormats,omitempty" toml:"mimeFormats,omitempty"`
	Grids            []Grid     `xml:"grids>grid,omitempty" json:"grids,omitempty" yaml:"grids,omitempty" toml:"grids,omitempty"`
	Dimensions       Dimensions `xml:"dimensions>entry,omitempty" json:"-" yaml:"-" toml:"-"`
	WMSURL           []string   `xml:"wmsUrl>string,omitempty" json:"wmsUrl,omitempty" yaml:"wmsUrl,omitempty" toml:"wmsUrl,omitempty"`
	WMSLayers        string     `xml:"wmsLayers,omitempty" json:"wmsLayers,omitempty" yaml:"wmsLayers,omitempty" toml:"wmsLayers,omitempty"`
	WMSStyles        string     `xml:"wmsStyles,omitempty" json:"wmsStyles,omitempty" yaml:"wmsStyles,omitempty" toml:"wmsStyles,omitempty"`
	MetaWidthHeight  []int      `xml:"metaWidthHeight>int,omitempty" json:"metaWidthHeight,omitempty" yaml:"metaWidthHeight,omitempty" toml:"metaWidthHeight,omitempty"`
	ErrorMime        string     `xml:"errorMime,omitempty" json:"errorMime,omitempty" yaml:"errorMime,omitempty" toml:"errorMime,omitempty"`
	Transparent      *bool      `xml:"transparent,omitempty" json:"transparent,omitempty" yaml:"transparent,omitempty" toml:"transparent,omitempty"`
	Tiled            *bool      `xml:"tiled,omitempty" json:"tiled,omitempty" yaml:"tiled,omitempty" toml:"tiled,omitempty"`
	BgColor          string     `xml:"bgColor,omitempty" json:"bgColor,omitempty" yaml:"bgColor,omitempty" toml:"bgColor,omitempty"`
	Palette          string     `xml:"palette,omitempty" json:"palette,omitempty" yaml:"palette,omitempty" toml:"palette,omitempty"`
	VendorParameters string     `xml:"vendorParameters,omitempty" json:"vendorParameters,omitempty" yaml:"vendorParameters,omitempty" toml:"vendorParameters,omitempty"`
	ExpireCache      string     `xml:"expireCache,omitempty" json:"expireCache,omitempty" yaml:"expireCache,omitempty" toml:"expireCache,omitempty"`
	ExpireClients    string     `xml:"expireClients,omitempty" json:"expireClients,omitempty" yaml:"expireClients,omitempty" toml:"expireClients,omitempty"`

	CacheBypassAllowed *bool `xml:"cacheBypassAllowed,omitempty" json:"cacheBypassAllowed,omitempty" yaml:"cacheBypassAllowed,omitempty" toml:"cacheBypassAllowed,omitempty"`
	BackendTimeout     *int  `xml:"backendTimeout,omitempty" json:"backendTimeout,omitempty" yaml:"backendTimeout,omitempty" toml:"backendTimeout,omitempty"`

	cacheFactory *cache.Factory
}

type stringList struct {
	Items []string `xml:"string"`
}

type intList struct {
	Items []int `xml:"int"`
}

type gridList struct {
	Items []Grid `xml:"grid"`
}

type dimensionList struct {
	Entries Dimensions `xml:"entry"`
}

func newStringList(items []string) *stringList {
	if len(items) == 0 {
		return nil
	}
	return &stringList{Items: items}
}

// MarshalXML writes the layer with the same element names its struct tags
// decode. Wrapped lists are written only when they hold items, since
// encoding/xml ignores omitempty on "parent>child" paths.
func (l *TileLayer) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	out := struct {
		Name               string         `xml:"name"`
		MimeFormats        *stringList    `xml:"mimeFormats,omitempty"`
		Grids              *gridList      `xml:"grids,omitempty"`
		Dimensions         *dimensionList `xml:"dimensions,omitempty"`
		WMSURL             *stringList    `xml:"wmsUrl,omitempty"`
		WMSLayers          string         `xml:"wmsLayers,omitempty"`
		WMSStyles          string         `xml:"wmsStyles,omitempty"`
		MetaWidthHeight    *intList       `xml:"metaWidthHeight,omitempty"`
		ErrorMime          string         `xml:"errorMime,omitempty"`
		Transparent        *bool          `xml:"transparent,omitempty"`
		Tiled              *bool          `xml:"tiled,omitempty"`
		BgColor            string         `xml:"bgColor,omitempty"`
		Palette            string         `xml:"palette,omitempty"`
		VendorParameters   string         `xml:"vendorParameters,omitempty"`
		ExpireCache        string         `xml:"expireCache,omitempty"`
		ExpireClients      string         `xml:"expireClients,omitempty"`
		CacheBypassAllowed *bool          `xml:"cacheBypassAllowed,omitempty"`
		BackendTimeout     *int           `xml:"backendTimeout,omitempty"`
	}{
		Name:               l.Name,
		MimeFormats:        newStringList(l.MimeFormats),
		WMSURL:             newStringList(l.WMSURL),
		WMSLayers:          l.WMSLayers,
		WMSStyles:          l.WMSStyles,
		ErrorMime:          l.ErrorMime,
		Transparent:        l.Transparent,
		Tiled:              l.Tiled,
		BgColor:            l.BgColor,
		Palette:            l.Palette,
		VendorParameters:   l.VendorParameters,
		ExpireCache:        l.ExpireCache,
		ExpireClients:      l.ExpireClients,
		CacheBypassAllowed: l.CacheBypassAllowed,
		BackendTimeout:     l.BackendTimeout,
	}
	if len(l.Grids) > 0 {
		out.Grids = &gridList{Items: l.Grids}
	}
	if len(l.Dimensions) > 0 {
		out.Dimensions = &dimensionList{Entries: l.Dimensions}
	}
	if len(l.MetaWidthHeight) > 0 {
		out.MetaWidthHeight = &intList{Items: l.MetaWidthHeight}
	}
	if start.Name.Local == "" {
		start.Name.Local = "wmsLayer"
	}
	return e.EncodeElement(out, start)
}

// CacheFactory returns the cache factory wired into the layer.
func (l *TileLayer) CacheFactory() *cache.Factory {
	return l.cacheFactory
}

// SetCacheFactory wires the cache factory into the layer.
func (l *TileLayer) SetCacheFactory(f *cache.Factory) {
	l.cacheFactory = f
}

// IsCacheBypassAllowed returns the effective cache bypass flag, false when unset.
func (l *TileLayer) IsCacheBypassAllowed() bool {
	return l.CacheBypassAllowed != nil && *l.CacheBypassAllowed
}

// BackendTimeoutSeconds returns the effective backend timeout, 0 when unset.
func (l *TileLayer) BackendTimeoutSeconds() int {
	if l.BackendTimeout == nil {
		return 0
	}
	return *l.BackendTimeout
}

// Validate checks the invariants a layer must satisfy before it is added to
// or replaced in a configuration.
func (l *TileLayer) Validate() error {
	if l.Name == "" {
		return errors.New("layer name must not be empty")
	}
	if l.BackendTimeout != nil && *l.BackendTimeout < 0 {
		return fmt.Errorf("layer %s: backend timeout must not be negative", l.Name)
	}
	if len(l.MetaWidthHeight) != 0 && len(l.MetaWidthHeight) != 2 {
		return fmt.Errorf("layer %s: metaWidthHeight needs 2 values, got %d", l.Name, len(l.MetaWidthHeight))
	}
	for i := range l.Grids {
		if err := l.Grids[i].Validate(); err != nil {
			return fmt.Errorf("layer %s: %w", l.Name, err)
		}
	}
	return nil
}

// Grid returns the grid defined for the given EPSG code.
func (l *TileLayer) Grid(epsg int) (*Grid, bool) {
	for i := range l.Grids {
		if l.Grids[i].SRS.Number == epsg {
			return &l.Grids[i], true
		}
	}
	return nil, false
}

// SupportsFormat reports whether mime is one of the layer's output formats.
func (l *TileLayer) SupportsFormat(mime string) bool {
	for _, f := range l.MimeFormats {
		if f == mime {
			return true
		}
	}
	return false
}

// Bool returns a pointer to b, for populating optional fields.
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to i, for populating optional fields.
func Int(i int) *int {
	return &i
}
