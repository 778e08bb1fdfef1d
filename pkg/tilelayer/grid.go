// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package tilelayer

import (
	"fmt"
)

// SRS is a spatial reference system identified by its EPSG code.
type SRS struct {
	Number int `xml:"number" json:"number" yaml:"number" toml:"number"`
}

// String returns the SRS in "EPSG:<code>" form.
func (s SRS) String() string {
	return fmt.Sprintf("EPSG:%d", s.Number)
}

// BBox is a bounding box stored as [minx, miny, maxx, maxy].
type BBox struct {
	Coords []float64 `xml:"coords>double" json:"coords" yaml:"coords" toml:"coords"`
}

// NewBBox creates a bounding box from its corner coordinates.
func NewBBox(minX, minY, maxX, maxY float64) *BBox {
	return &BBox{Coords: []float64{minX, minY, maxX, maxY}}
}

// Validate checks that the box has four coordinates and positive extent.
func (b *BBox) Validate() error {
	if len(b.Coords) != 4 {
		return fmt.Errorf("bounding box needs 4 coordinates, got %d", len(b.Coords))
	}
	if b.Coords[0] >= b.Coords[2] || b.Coords[1] >= b.Coords[3] {
		return fmt.Errorf("bounding box %v has no area", b.Coords)
	}
	return nil
}

// Grid describes the tiling of a layer in one spatial reference system.
type Grid struct {
	SRS        SRS   `xml:"srs" json:"srs" yaml:"srs" toml:"srs"`
	DataBounds *BBox `xml:"dataBounds,omitempty" json:"dataBounds,omitempty" yaml:"dataBounds,omitempty" toml:"dataBounds,omitempty"`
	GridBounds *BBox `xml:"gridBounds,omitempty" json:"gridBounds,omitempty" yaml:"gridBounds,omitempty" toml:"gridBounds,omitempty"`
	ZoomStart  int   `xml:"zoomStart" json:"zoomStart" yaml:"zoomStart" toml:"zoomStart"`
	ZoomStop   int   `xml:"zoomStop" json:"zoomStop" yaml:"zoomStop" toml:"zoomStop"`
}

// Validate checks the zoom range and any bounds present on the grid.
func (g *Grid) Validate() error {
	if g.ZoomStart < 0 || g.ZoomStop < g.ZoomStart {
		return fmt.Errorf("grid %s: invalid zoom range %d-%d", g.SRS, g.ZoomStart, g.ZoomStop)
	}
	for _, b := range []*BBox{g.DataBounds, g.GridBounds} {
		if b == nil {
			continue
		}
		if err := b.Validate(); err != nil {
			return fmt.Errorf("grid %s: %w", g.SRS, err)
		}
	}
	return nil
}
