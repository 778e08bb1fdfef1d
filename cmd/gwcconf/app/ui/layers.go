// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package ui renders CLI tables.
package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/geowebcache/gwcconf/pkg/tilelayer"
)

var layerHeaders = []string{"Name", "Formats", "Grids", "Dimensions", "Timeout", "Bypass"}

// RenderLayersTable renders the layers with their effective settings to w.
func RenderLayersTable(w io.Writer, layers []*tilelayer.TileLayer) error {
	if len(layers) == 0 {
		fmt.Fprintln(w, "No layers configured.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Options(
		tablewriter.WithHeader(layerHeaders),
		tablewriter.WithRendition(
			tw.Rendition{
				Borders: tw.Border{
					Left:   tw.State(1),
					Top:    tw.State(1),
					Right:  tw.State(1),
					Bottom: tw.State(1),
				},
			},
		),
		tablewriter.WithAlignment(tw.MakeAlign(len(layerHeaders), tw.AlignLeft)),
	)

	for _, l := range layers {
		if err := table.Append(LayerRow(l)); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// LayerRow returns the table cells for one layer.
func LayerRow(l *tilelayer.TileLayer) []string {
	grids := make([]string, 0, len(l.Grids))
	for _, g := range l.Grids {
		grids = append(grids, g.SRS.String())
	}
	bypass := "no"
	if l.IsCacheBypassAllowed() {
		bypass = "yes"
	}
	return []string{
		l.Name,
		strings.Join(l.MimeFormats, ", "),
		strings.Join(grids, ", "),
		strings.Join(l.Dimensions.Keys(), ", "),
		strconv.Itoa(l.BackendTimeoutSeconds()) + "s",
		bypass,
	}
}
