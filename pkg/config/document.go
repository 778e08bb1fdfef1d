// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/beevik/etree"

	gwcerrors "github.com/geowebcache/gwcconf/pkg/errors"
)

// LoadDocument reads and parses the document at path. Read and syntax
// failures are reported as parse errors carrying the path.
func LoadDocument(path string) (*etree.Document, error) {
	path = filepath.Clean(path)
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, gwcerrors.NewParseError(fmt.Sprintf("error parsing file %s", path), err)
	}
	if doc.Root() == nil {
		return nil, gwcerrors.NewParseError(fmt.Sprintf("error parsing file %s, top node came out as null", path), nil)
	}
	return doc, nil
}

// ReadDocument parses a document from r. source names the stream in errors.
func ReadDocument(r io.Reader, source string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, gwcerrors.NewParseError(fmt.Sprintf("error parsing %s", source), err)
	}
	if doc.Root() == nil {
		return nil, gwcerrors.NewParseError(fmt.Sprintf("error parsing %s, top node came out as null", source), nil)
	}
	return doc, nil
}
