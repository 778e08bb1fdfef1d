// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/geowebcache/gwcconf/cmd/gwcconf/app/ui"
	"github.com/geowebcache/gwcconf/pkg/tilelayer"
)

const defaultZoomStop = 20

func newLayersCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layers",
		Short: "List and edit tile layers",
	}
	cmd.AddCommand(newLayersListCmd(v))
	cmd.AddCommand(newLayersShowCmd(v))
	cmd.AddCommand(newLayersAddCmd(v))
	cmd.AddCommand(newLayersSetCmd(v))
	cmd.AddCommand(newLayersRmCmd(v))
	return cmd
}

func newLayersListCmd(v *viper.Viper) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured layers with their effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newConfiguration(v)
			if err != nil {
				return err
			}
			layers, err := c.GetTileLayers(false)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			switch format {
			case FormatJSON:
				return writeEncoded(cmd.OutOrStdout(), layers, FormatJSON)
			case FormatText:
				return ui.RenderLayersTable(cmd.OutOrStdout(), layers)
			default:
				return fmt.Errorf("unsupported format %q", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", FormatText, "Output format (text or json)")
	return cmd
}

func newLayersShowCmd(v *viper.Viper) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Print one layer with defaults applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfiguration(v)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			layer, ok := c.Model().Layer(args[0])
			if !ok {
				return fmt.Errorf("layer %s not found", args[0])
			}
			return writeEncoded(cmd.OutOrStdout(), layer, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", FormatYAML, "Output format (yaml, json or toml)")
	return cmd
}

// layerFlags holds the editable layer settings shared by add and set.
type layerFlags struct {
	mimeFormats []string
	wmsURLs     []string
	wmsLayers   string
	wmsStyles   string
	srs         []int
	zoomStop    int
	timeout     int
	bypass      bool
	transparent bool
}

func (f *layerFlags) register(fs *pflag.FlagSet) {
	fs.StringSliceVar(&f.mimeFormats, "mime", nil, "Output MIME types (repeatable)")
	fs.StringSliceVar(&f.wmsURLs, "wms-url", nil, "Backend WMS URLs (repeatable)")
	fs.StringVar(&f.wmsLayers, "wms-layers", "", "Backend WMS layer list")
	fs.StringVar(&f.wmsStyles, "wms-styles", "", "Backend WMS styles")
	fs.IntSliceVar(&f.srs, "srs", nil, "EPSG codes of the grids (repeatable)")
	fs.IntVar(&f.zoomStop, "zoom-stop", defaultZoomStop, "Last zoom level of new grids")
	fs.IntVar(&f.timeout, "timeout", 0, "Backend timeout in seconds")
	fs.BoolVar(&f.bypass, "bypass", false, "Allow clients to bypass the cache")
	fs.BoolVar(&f.transparent, "transparent", false, "Request transparent images")
}

// apply copies every flag the user set onto layer. Unset flags leave the
// layer untouched so that optional fields stay unset.
func (f *layerFlags) apply(fs *pflag.FlagSet, layer *tilelayer.TileLayer) {
	if fs.Changed("mime") {
		layer.MimeFormats = f.mimeFormats
	}
	if fs.Changed("wms-url") {
		layer.WMSURL = f.wmsURLs
	}
	if fs.Changed("wms-layers") {
		layer.WMSLayers = f.wmsLayers
	}
	if fs.Changed("wms-styles") {
		layer.WMSStyles = f.wmsStyles
	}
	if fs.Changed("srs") {
		layer.Grids = layer.Grids[:0]
		for _, code := range f.srs {
			layer.Grids = append(layer.Grids, tilelayer.Grid{
				SRS:      tilelayer.SRS{Number: code},
				ZoomStop: f.zoomStop,
			})
		}
	}
	if fs.Changed("timeout") {
		layer.BackendTimeout = tilelayer.Int(f.timeout)
	}
	if fs.Changed("bypass") {
		layer.CacheBypassAllowed = tilelayer.Bool(f.bypass)
	}
	if fs.Changed("transparent") {
		layer.Transparent = tilelayer.Bool(f.transparent)
	}
}

func newLayersAddCmd(v *viper.Viper) *cobra.Command {
	var flags layerFlags
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a layer and write the configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfiguration(v)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			layer := &tilelayer.TileLayer{Name: args[0]}
			flags.apply(cmd.Flags(), layer)
			if err := c.AddLayer(cmd.Context(), layer); err != nil {
				return fmt.Errorf("failed to add layer: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added layer %s\n", layer.Name)
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newLayersSetCmd(v *viper.Viper) *cobra.Command {
	var flags layerFlags
	cmd := &cobra.Command{
		Use:   "set NAME",
		Short: "Modify a layer and write the configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfiguration(v)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			current, ok := c.Model().Layer(args[0])
			if !ok {
				return fmt.Errorf("layer %s not found", args[0])
			}
			updated := *current
			updated.Grids = append([]tilelayer.Grid(nil), current.Grids...)
			flags.apply(cmd.Flags(), &updated)
			if err := c.ModifyLayer(cmd.Context(), &updated); err != nil {
				return fmt.Errorf("failed to modify layer: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated layer %s\n", updated.Name)
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newLayersRmCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "rm NAME",
		Short: "Remove a layer and write the configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfiguration(v)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if err := c.DeleteLayer(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to remove layer: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed layer %s\n", args[0])
			return nil
		},
	}
}

// writeEncoded encodes v to w in the requested format.
func writeEncoded(w io.Writer, v any, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(v); err != nil {
			return fmt.Errorf("failed to encode TOML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
