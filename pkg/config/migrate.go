// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/beevik/etree"

	gwcerrors "github.com/geowebcache/gwcconf/pkg/errors"
	"github.com/geowebcache/gwcconf/pkg/tilelayer"
)

// rewrite is a declarative structural transform from one document layout to
// the current one.
type rewrite struct {
	// roots are the root tags the transform recognizes.
	roots []string
	// layerTags are the root children that become wmsLayer elements.
	layerTags []string
	// renames maps legacy layer field tags to current ones.
	renames map[string]string
	// lists maps fields that held a comma separated value to the item tag
	// they are expanded into.
	lists map[string]string
	// drops are layer fields with no current equivalent.
	drops []string
}

// pre10 migrates the layout used before the 1.0 schema: a bare list of layers
// serialized under their implementation class name.
var pre10 = rewrite{
	roots:     []string{"layers", "list"},
	layerTags: []string{"wmsLayer", "WMSLayer", "org.geowebcache.layer.wms.WMSLayer"},
	renames: map[string]string{
		"WMSurl":    "wmsUrl",
		"wmsURL":    "wmsUrl",
		"WMSlayers": "wmsLayers",
		"WMSstyles": "wmsStyles",
		"mimeTypes": "mimeFormats",
	},
	lists: map[string]string{
		"wmsUrl":      "string",
		"mimeFormats": "string",
	},
	drops: []string{"cacheFactory", "cachePrefix", "cacheKey", "cache"},
}

// Migrate brings doc to the current schema. A document already rooted at the
// current tag is returned as is. Anything else goes through the legacy
// transform once; the bool reports whether it ran.
func Migrate(doc *etree.Document) (*etree.Document, bool, error) {
	if isCurrent(doc) {
		return doc, false, nil
	}

	out := pre10.apply(doc)
	if !isCurrent(out) {
		found := ""
		if root := doc.Root(); root != nil {
			found = root.FullTag()
		}
		return nil, true, gwcerrors.NewUnrecognizedSchemaError(
			fmt.Sprintf("unable to parse after transform, expected %s at root but found %q", tilelayer.RootElement, found), nil)
	}
	return out, true, nil
}

func isCurrent(doc *etree.Document) bool {
	root := doc.Root()
	return root != nil && root.FullTag() == tilelayer.RootElement
}

func (rw rewrite) apply(doc *etree.Document) *etree.Document {
	src := doc.Root()
	if src == nil || !slices.Contains(rw.roots, src.FullTag()) {
		return doc.Copy()
	}

	out := etree.NewDocument()
	out.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	root := out.CreateElement(tilelayer.RootElement)
	ns := tilelayer.CurrentNamespace()
	root.CreateAttr("xmlns:xsi", ns.XSI)
	root.CreateAttr("xsi:noNamespaceSchemaLocation", ns.SchemaLocation)
	root.CreateAttr("xmlns", ns.Default)

	layers := root.CreateElement("layers")
	for _, el := range src.ChildElements() {
		if slices.Contains(rw.layerTags, el.FullTag()) {
			layers.AddChild(rw.layer(el))
		}
	}
	return out
}

func (rw rewrite) layer(src *etree.Element) *etree.Element {
	layer := etree.NewElement("wmsLayer")
	for _, field := range src.ChildElements() {
		tag := field.FullTag()
		if slices.Contains(rw.drops, tag) {
			continue
		}
		c := field.Copy()
		if renamed, ok := rw.renames[tag]; ok {
			c.Space, c.Tag = "", renamed
		}
		if item, ok := rw.lists[c.Tag]; ok && len(c.ChildElements()) == 0 {
			text := c.Text()
			c.SetText("")
			for _, v := range strings.Split(text, ",") {
				if v = strings.TrimSpace(v); v != "" {
					c.CreateElement(item).SetText(v)
				}
			}
		}
		layer.AddChild(c)
	}
	return layer
}
