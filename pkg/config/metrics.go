// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "gwcconf"

// Metrics counts pipeline events. A nil *Metrics is valid and records nothing.
type Metrics struct {
	loads      *prometheus.CounterVec
	persists   *prometheus.CounterVec
	migrations prometheus.Counter
	violations prometheus.Counter
}

// NewMetrics creates the pipeline counters and registers them with reg.
// Counters already registered by another instance are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "loads_total",
			Help:      "Configuration loads by result.",
		}, []string{"result"}),
		persists: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "persists_total",
			Help:      "Configuration writes by result.",
		}, []string{"result"}),
		migrations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "migrations_total",
			Help:      "Legacy documents migrated to the current schema.",
		}),
		violations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "schema_violations_total",
			Help:      "Schema violations found while loading.",
		}),
	}

	var err error
	if m.loads, err = register(reg, m.loads); err != nil {
		return nil, err
	}
	if m.persists, err = register(reg, m.persists); err != nil {
		return nil, err
	}
	if m.migrations, err = register(reg, m.migrations); err != nil {
		return nil, err
	}
	if m.violations, err = register(reg, m.violations); err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func (m *Metrics) observeLoad(err error) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues(resultLabel(err)).Inc()
}

func (m *Metrics) observePersist(err error) {
	if m == nil {
		return
	}
	m.persists.WithLabelValues(resultLabel(err)).Inc()
}

func (m *Metrics) observeMigration() {
	if m == nil {
		return
	}
	m.migrations.Inc()
}

func (m *Metrics) observeViolations(n int) {
	if m == nil {
		return
	}
	m.violations.Add(float64(n))
}
