// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package tilelayer

import (
	"encoding/xml"
	"fmt"
	"strings"

	gwcerrors "github.com/geowebcache/gwcconf/pkg/errors"
)

// ParseFlag interprets a boolean attribute: exactly "1" is true, anything
// else (including an absent attribute) is false.
func ParseFlag(v string) bool {
	return v == "1"
}

// Dimension is a named, unit-typed axis of variation of a layer, such as time
// or elevation. Its extent is interpreted by the handler registered for its units.
//
// Dimensions are read from the document but never written back: MarshalXML
// emits an empty element, so a persisted configuration loses dimension data.
type Dimension struct {
	name           string
	units          string
	extent         string
	handler        ExtentHandler
	resolved       bool
	current        bool
	nearestValue   bool
	multipleValues bool
	defaultValue   string
	unitSymbol     string
}

// NewDimension creates a dimension bound to handler.
func NewDimension(name, units, extent string, handler ExtentHandler) *Dimension {
	return &Dimension{
		name:     name,
		units:    units,
		extent:   extent,
		handler:  handler,
		resolved: true,
	}
}

// Name returns the dimension name.
func (d *Dimension) Name() string { return d.name }

// Units returns the unit label used to pick the extent handler.
func (d *Dimension) Units() string { return d.units }

// Extent returns the raw extent string.
func (d *Dimension) Extent() string { return d.extent }

// Handler returns the extent handler; nil when the units have no registered handler.
func (d *Dimension) Handler() ExtentHandler { return d.handler }

// Current reports whether the dimension supports the "current" value.
func (d *Dimension) Current() bool { return d.current }

// NearestValue reports whether requests snap to the nearest extent value.
func (d *Dimension) NearestValue() bool { return d.nearestValue }

// MultipleValues reports whether requests may name several values.
func (d *Dimension) MultipleValues() bool { return d.multipleValues }

// DefaultValue returns the default value, empty when none was declared.
func (d *Dimension) DefaultValue() string { return d.defaultValue }

// UnitSymbol returns the unit symbol, empty when none was declared.
func (d *Dimension) UnitSymbol() string { return d.unitSymbol }

// SetCurrent sets the current flag.
func (d *Dimension) SetCurrent(v bool) { d.current = v }

// SetNearestValue sets the nearest value flag.
func (d *Dimension) SetNearestValue(v bool) { d.nearestValue = v }

// SetMultipleValues sets the multiple values flag.
func (d *Dimension) SetMultipleValues(v bool) { d.multipleValues = v }

// SetDefaultValue sets the default value.
func (d *Dimension) SetDefaultValue(v string) { d.defaultValue = v }

// SetUnitSymbol sets the unit symbol.
func (d *Dimension) SetUnitSymbol(v string) { d.unitSymbol = v }

// Values expands the extent through the handler.
func (d *Dimension) Values() ([]string, error) {
	if d.handler == nil {
		return nil, fmt.Errorf("dimension %q: no extent handler for units %q", d.name, d.units)
	}
	return d.handler.Values(d.extent)
}

// UnmarshalXML reads the dimension attributes and takes the element text as
// the extent. The handler is bound later by Dimensions.ResolveHandlers.
func (d *Dimension) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var raw struct {
		Name           string `xml:"name,attr"`
		Units          string `xml:"units,attr"`
		Current        string `xml:"current,attr"`
		NearestValue   string `xml:"nearestValue,attr"`
		MultipleValues string `xml:"multipleValues,attr"`
		Default        string `xml:"default,attr"`
		UnitSymbol     string `xml:"unitSymbol,attr"`
		Extent         string `xml:",chardata"`
	}
	if err := dec.DecodeElement(&raw, &start); err != nil {
		return err
	}
	*d = Dimension{
		name:           raw.Name,
		units:          raw.Units,
		extent:         strings.TrimSpace(raw.Extent),
		current:        ParseFlag(raw.Current),
		nearestValue:   ParseFlag(raw.NearestValue),
		multipleValues: ParseFlag(raw.MultipleValues),
		defaultValue:   raw.Default,
		unitSymbol:     raw.UnitSymbol,
	}
	return nil
}

// MarshalXML writes an empty element. Dimension data is not serialized.
func (*Dimension) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

// DimensionEntry is one keyed entry of a layer's dimension map.
type DimensionEntry struct {
	Key       string     `xml:"string"`
	Dimension *Dimension `xml:"dimension"`
}

// Dimensions is a layer's dimension map in document order.
type Dimensions []DimensionEntry

// Get returns the dimension stored under key.
func (ds Dimensions) Get(key string) (*Dimension, bool) {
	for _, e := range ds {
		if e.Key == key {
			return e.Dimension, e.Dimension != nil
		}
	}
	return nil, false
}

// Keys returns the dimension keys in document order.
func (ds Dimensions) Keys() []string {
	keys := make([]string, 0, len(ds))
	for _, e := range ds {
		keys = append(keys, e.Key)
	}
	return keys
}

// ResolveHandlers binds every decoded dimension to the handler registered for
// its units. A nil registry is a handler resolution error; units with no
// registered handler leave the handler nil.
func (ds Dimensions) ResolveHandlers(registry HandlerRegistry) error {
	for _, e := range ds {
		if e.Dimension == nil || e.Dimension.resolved {
			continue
		}
		if registry == nil {
			return gwcerrors.NewHandlerResolutionError(
				fmt.Sprintf("cannot resolve extent handler for dimension %q: no handler registry", e.Key), nil)
		}
		e.Dimension.handler = registry.Resolve(e.Dimension.units)
		e.Dimension.resolved = true
	}
	return nil
}
