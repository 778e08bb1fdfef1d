// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/beevik/etree"
	"github.com/xeipuuv/gojsonschema"

	gwcerrors "github.com/geowebcache/gwcconf/pkg/errors"
)

//go:embed schema/geowebcache.json
var schemaBytes []byte

var compileSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaBytes))
})

// Violation is a single schema violation.
type Violation struct {
	// Field is the dotted path of the offending node, "(root)" for the root element.
	Field string `json:"field" yaml:"field"`
	// Description explains the violation.
	Description string `json:"description" yaml:"description"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Description)
}

// ValidationResult is the outcome of validating a document against the
// bundled schema. Violations do not stop the pipeline unless strict
// validation is enabled.
type ValidationResult struct {
	Violations []Violation `json:"violations,omitempty" yaml:"violations,omitempty"`
}

// Valid reports whether the document had no violations.
func (r ValidationResult) Valid() bool {
	return len(r.Violations) == 0
}

// Err returns a schema violation error listing every violation, or nil.
func (r ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		msgs = append(msgs, v.String())
	}
	return gwcerrors.NewSchemaViolationError(
		fmt.Sprintf("configuration does not match schema: %s", strings.Join(msgs, "; ")), nil)
}

// Validate checks the structure of doc against the bundled schema. Problems
// with the schema itself are reported as a violation, so the result is
// always usable.
func Validate(doc *etree.Document) ValidationResult {
	root := doc.Root()
	if root == nil {
		return ValidationResult{Violations: []Violation{{Field: "(root)", Description: "document has no root element"}}}
	}

	schema, err := compileSchema()
	if err != nil {
		return ValidationResult{Violations: []Violation{{Field: "(schema)", Description: err.Error()}}}
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(project(root)))
	if err != nil {
		return ValidationResult{Violations: []Violation{{Field: "(schema)", Description: err.Error()}}}
	}

	var out ValidationResult
	for _, re := range result.Errors() {
		out.Violations = append(out.Violations, Violation{Field: re.Field(), Description: re.Description()})
	}
	return out
}

// project converts an element into the JSON shape the schema is written
// against: attributes as "@name", text as "#text", child elements grouped by
// tag into arrays. Elements with neither attributes nor children collapse to
// their trimmed text.
func project(el *etree.Element) any {
	children := el.ChildElements()
	text := strings.TrimSpace(el.Text())
	if len(children) == 0 && len(el.Attr) == 0 {
		return text
	}

	obj := make(map[string]any, len(el.Attr)+len(children)+1)
	for _, a := range el.Attr {
		obj["@"+a.FullKey()] = a.Value
	}
	if text != "" {
		obj["#text"] = text
	}
	for _, c := range children {
		key := c.FullTag()
		list, _ := obj[key].([]any)
		obj[key] = append(list, project(c))
	}
	return obj
}
