// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package tilelayer contains the in-memory configuration model of the tile
// cache: the root Configuration, its tile layers and their grids and
// dimensions. The xml struct tags on these types are the alias table used both
// to read and to write geowebcache.xml.
package tilelayer

import (
	"encoding/xml"
)

// Current schema identifiers.
const (
	// RootElement is the root tag of a current-schema document.
	RootElement = "gwcConfiguration"
	// SchemaNamespace is the default namespace of the current schema.
	SchemaNamespace = "http://geowebcache.org/schema/1.0.0"
	// XSINamespace is the XML Schema instance namespace.
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"
	// SchemaLocation is the advertised location of the current schema definition.
	SchemaLocation = "http://geowebcache.org/schema/1.0.0/geowebcache.xsd"
)

// Namespace is the schema namespace metadata carried on the root element.
type Namespace struct {
	Default        string `json:"xmlns,omitempty" yaml:"xmlns,omitempty"`
	XSI            string `json:"xmlnsXsi,omitempty" yaml:"xmlnsXsi,omitempty"`
	SchemaLocation string `json:"schemaLocation,omitempty" yaml:"schemaLocation,omitempty"`
}

// CurrentNamespace returns the namespace metadata of the current schema.
func CurrentNamespace() Namespace {
	return Namespace{
		Default:        SchemaNamespace,
		XSI:            XSINamespace,
		SchemaLocation: SchemaLocation,
	}
}

func (n Namespace) attrs() []xml.Attr {
	var attrs []xml.Attr
	// Local names are written verbatim by the encoder when Space is empty.
	if n.XSI != "" {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "xmlns:xsi"}, Value: n.XSI})
	}
	if n.SchemaLocation != "" {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "xsi:noNamespaceSchemaLocation"}, Value: n.SchemaLocation})
	}
	if n.Default != "" {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "xmlns"}, Value: n.Default})
	}
	return attrs
}

// Configuration is the root aggregate of a loaded configuration: global
// defaults plus the ordered list of tile layers. Layer names are unique;
// AddLayer, ReplaceLayer and RemoveLayer maintain that invariant.
type Configuration struct {
	XMLName            xml.Name     `xml:"gwcConfiguration" json:"-" yaml:"-" toml:"-"`
	Namespace          Namespace    `xml:"-" json:"namespace" yaml:"namespace" toml:"namespace"`
	BackendTimeout     *int         `xml:"backendTimeout,omitempty" json:"backendTimeout,omitempty" yaml:"backendTimeout,omitempty" toml:"backendTimeout,omitempty"`
	CacheBypassAllowed *bool        `xml:"cacheBypassAllowed,omitempty" json:"cacheBypassAllowed,omitempty" yaml:"cacheBypassAllowed,omitempty" toml:"cacheBypassAllowed,omitempty"`
	Layers             []*TileLayer `xml:"layers>wmsLayer" json:"layers" yaml:"layers" toml:"layers"`
}

// NewConfiguration returns an empty configuration in the current schema.
func NewConfiguration() *Configuration {
	return &Configuration{Namespace: CurrentNamespace()}
}

// Init fills namespace metadata that was missing from the source document.
func (c *Configuration) Init() {
	if c.Namespace.Default == "" {
		c.Namespace.Default = SchemaNamespace
	}
	if c.Namespace.XSI == "" {
		c.Namespace.XSI = XSINamespace
	}
	if c.Namespace.SchemaLocation == "" {
		c.Namespace.SchemaLocation = SchemaLocation
	}
}

// MarshalXML writes the root element with its namespace attributes.
func (c *Configuration) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: RootElement}
	start.Attr = c.Namespace.attrs()
	type plain Configuration
	return e.EncodeElement((*plain)(c), start)
}

// Layer returns the layer with the given name.
func (c *Configuration) Layer(name string) (*TileLayer, bool) {
	i := c.indexOf(name)
	if i < 0 {
		return nil, false
	}
	return c.Layers[i], true
}

// LayerNames returns the layer names in document order.
func (c *Configuration) LayerNames() []string {
	names := make([]string, 0, len(c.Layers))
	for _, l := range c.Layers {
		names = append(names, l.Name)
	}
	return names
}

// AddLayer appends layer unless a layer with the same name exists.
func (c *Configuration) AddLayer(layer *TileLayer) bool {
	if layer == nil || c.indexOf(layer.Name) >= 0 {
		return false
	}
	c.Layers = append(c.Layers, layer)
	return true
}

// ReplaceLayer swaps in layer for the existing layer of the same name,
// keeping its position.
func (c *Configuration) ReplaceLayer(layer *TileLayer) bool {
	if layer == nil {
		return false
	}
	i := c.indexOf(layer.Name)
	if i < 0 {
		return false
	}
	c.Layers[i] = layer
	return true
}

// RemoveLayer deletes the layer with the given name.
func (c *Configuration) RemoveLayer(name string) bool {
	i := c.indexOf(name)
	if i < 0 {
		return false
	}
	c.Layers = append(c.Layers[:i], c.Layers[i+1:]...)
	return true
}

func (c *Configuration) indexOf(name string) int {
	for i, l := range c.Layers {
		if l != nil && l.Name == name {
			return i
		}
	}
	return -1
}
