// Package metrics holds the Prometheus counters exported on /metrics.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess   = "success"
	OutcomeError     = "error"
	OutcomeIgnored   = "ignored"
	OutcomeDuplicate = "duplicate"
)

// Metrics is safe to use through a nil pointer; every method is then a no-op.
type Metrics struct {
	webhookEvents *prometheus.CounterVec
	syncs         *prometheus.CounterVec
	gate          *prometheus.CounterVec
}

// New creates the counters and registers them on registerer. A nil
// registerer uses prometheus.DefaultRegisterer.
func New(registerer prometheus.Registerer) (*Metrics, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		webhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leaft_webhook_events_total",
			Help: "Billing webhook events by type and outcome.",
		}, []string{"type", "outcome"}),
		syncs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leaft_subscription_syncs_total",
			Help: "Subscription syncs by trigger and outcome.",
		}, []string{"source", "outcome"}),
		gate: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leaft_access_gate_decisions_total",
			Help: "Access gate decisions by decision and reason.",
		}, []string{"decision", "reason"}),
	}

	var err error
	if m.webhookEvents, err = register(registerer, m.webhookEvents); err != nil {
		return nil, err
	}
	if m.syncs, err = register(registerer, m.syncs); err != nil {
		return nil, err
	}
	if m.gate, err = register(registerer, m.gate); err != nil {
		return nil, err
	}
	return m, nil
}

// register returns the collector already registered under the same
// descriptor, so building Metrics twice shares one set of series.
func register(registerer prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := registerer.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

func (m *Metrics) WebhookEvent(eventType, outcome string) {
	if m == nil {
		return
	}
	m.webhookEvents.WithLabelValues(eventType, outcome).Inc()
}

func (m *Metrics) SubscriptionSync(source, outcome string) {
	if m == nil {
		return
	}
	m.syncs.WithLabelValues(source, outcome).Inc()
}

func (m *Metrics) GateDecision(decision, reason string) {
	if m == nil {
		return
	}
	m.gate.WithLabelValues(decision, reason).Inc()
}
