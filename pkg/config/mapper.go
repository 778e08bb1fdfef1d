// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/beevik/etree"

	gwcerrors "github.com/geowebcache/gwcconf/pkg/errors"
	"github.com/geowebcache/gwcconf/pkg/tilelayer"
)

// xmlHeader opens every persisted document.
const xmlHeader = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

// Decode maps a current-schema document onto the configuration model. The xml
// tags of the tilelayer types drive the mapping; unknown elements are ignored.
// Dimension extent handlers are resolved through registry.
func Decode(doc *etree.Document, registry tilelayer.HandlerRegistry) (*tilelayer.Configuration, error) {
	root := doc.Root()
	if root == nil {
		return nil, gwcerrors.NewMappingError("document has no root element", nil)
	}

	// Serialize only the root so that prolog tokens do not reach the decoder.
	single := etree.NewDocument()
	single.SetRoot(root.Copy())
	raw, err := single.WriteToBytes()
	if err != nil {
		return nil, gwcerrors.NewMappingError("failed to serialize document tree", err)
	}

	cfg := &tilelayer.Configuration{}
	if err := xml.Unmarshal(raw, cfg); err != nil {
		return nil, gwcerrors.NewMappingError("failed to map document onto configuration", err)
	}

	cfg.Namespace = tilelayer.Namespace{
		Default:        root.SelectAttrValue("xmlns", ""),
		XSI:            root.SelectAttrValue("xmlns:xsi", ""),
		SchemaLocation: root.SelectAttrValue("xsi:noNamespaceSchemaLocation", ""),
	}
	cfg.Init()

	for _, layer := range cfg.Layers {
		if err := layer.Dimensions.ResolveHandlers(registry); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Encode serializes cfg with the same alias table Decode reads. Dimension data
// is not written; see tilelayer.Dimension.
func Encode(cfg *tilelayer.Configuration) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// layersWithDimensions returns the names of layers carrying dimension data
// that Encode drops.
func layersWithDimensions(cfg *tilelayer.Configuration) []string {
	var names []string
	for _, l := range cfg.Layers {
		if len(l.Dimensions) > 0 {
			names = append(names, l.Name)
		}
	}
	return names
}
