// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package tilelayer

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

//go:generate mockgen -destination=mocks/mock_extent.go -package=mocks -source=extent.go ExtentHandler,HandlerRegistry

// Well known dimension units.
const (
	UnitsISO8601 = "ISO8601"
	// UnitsElevation is the EPSG code of vertical extents in metres.
	UnitsElevation = "EPSG:5030"
)

// ExtentHandler interprets the extent string of a dimension.
type ExtentHandler interface {
	// Values expands an extent into its discrete values.
	Values(extent string) ([]string, error)
	// Contains reports whether value lies within extent.
	Contains(extent, value string) (bool, error)
}

// HandlerRegistry resolves extent handlers by unit label.
type HandlerRegistry interface {
	// Resolve returns the handler for units, or nil when none is registered.
	Resolve(units string) ExtentHandler
}

// MapRegistry is a HandlerRegistry backed by a map. It is safe for concurrent use.
type MapRegistry struct {
	mu       sync.RWMutex
	handlers map[string]ExtentHandler
}

// NewMapRegistry creates an empty registry.
func NewMapRegistry() *MapRegistry {
	return &MapRegistry{handlers: map[string]ExtentHandler{}}
}

// NewDefaultRegistry returns a registry with the built-in handlers.
func NewDefaultRegistry() *MapRegistry {
	r := NewMapRegistry()
	r.Register(UnitsISO8601, TimeHandler{})
	r.Register(UnitsElevation, ListHandler{})
	return r
}

// Register binds handler to units, replacing any previous binding.
func (r *MapRegistry) Register(units string, handler ExtentHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[units] = handler
}

// Resolve implements HandlerRegistry.
func (r *MapRegistry) Resolve(units string) ExtentHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.handlers[units]
}

// ListHandler treats an extent as a comma separated list of values.
type ListHandler struct{}

// Values implements ExtentHandler.
func (ListHandler) Values(extent string) ([]string, error) {
	return splitList(extent), nil
}

// Contains implements ExtentHandler.
func (h ListHandler) Contains(extent, value string) (bool, error) {
	values, _ := h.Values(extent)
	for _, v := range values {
		if v == value {
			return true, nil
		}
	}
	return false, nil
}

// TimeHandler interprets ISO8601 extents: either a comma separated list of
// instants or a single "start/end/period" interval.
type TimeHandler struct{}

var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02", "2006-01", "2006"}

func parseInstant(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO8601 instant %q", s)
}

// Values implements ExtentHandler. Intervals yield their start and end instants.
func (TimeHandler) Values(extent string) ([]string, error) {
	if strings.Contains(extent, "/") {
		start, end, err := parseInterval(extent)
		if err != nil {
			return nil, err
		}
		return []string{start.Format(time.RFC3339), end.Format(time.RFC3339)}, nil
	}
	values := splitList(extent)
	for _, v := range values {
		if _, err := parseInstant(v); err != nil {
			return nil, err
		}
	}
	return values, nil
}

// Contains implements ExtentHandler.
func (TimeHandler) Contains(extent, value string) (bool, error) {
	t, err := parseInstant(value)
	if err != nil {
		return false, err
	}
	if strings.Contains(extent, "/") {
		start, end, err := parseInterval(extent)
		if err != nil {
			return false, err
		}
		return !t.Before(start) && !t.After(end), nil
	}
	for _, v := range splitList(extent) {
		instant, err := parseInstant(v)
		if err != nil {
			return false, err
		}
		if instant.Equal(t) {
			return true, nil
		}
	}
	return false, nil
}

func parseInterval(extent string) (time.Time, time.Time, error) {
	parts := strings.Split(extent, "/")
	if len(parts) < 2 || len(parts) > 3 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid ISO8601 interval %q", extent)
	}
	start, err := parseInstant(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseInstant(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("interval %q ends before it starts", extent)
	}
	return start, end, nil
}

func splitList(extent string) []string {
	var values []string
	for _, v := range strings.Split(extent, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
