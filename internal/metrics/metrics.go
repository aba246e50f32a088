// Package metrics provides application-level metrics collection.
// This is a lightweight metrics foundation using atomic counters.
// For production observability, consider integrating with Prometheus or similar.
package metrics

import (
	"sync/atomic"
	"time"
)

// Metrics holds handshake metrics using atomic counters for thread safety.
type Metrics struct {
	// Handshake outcomes
	attemptsTotal atomic.Int64
	connected     atomic.Int64
	walletMissing atomic.Int64
	enableFailed  atomic.Int64
	notEnabled    atomic.Int64
	stateFailed   atomic.Int64

	// Handshake latency (includes time spent waiting on user approval)
	handshakeNanos atomic.Int64

	// Bridge RPC traffic
	bridgeCallsTotal  atomic.Int64
	bridgeErrorsTotal atomic.Int64
}

// Global is the global metrics instance.
// Use this for recording metrics throughout the application.
//
//nolint:gochecknoglobals // Intentional global for metrics access
var Global = &Metrics{}

// Outcome identifies how a handshake attempt ended.
type Outcome int

// Handshake outcomes.
const (
	OutcomeConnected Outcome = iota
	OutcomeWalletMissing
	OutcomeEnableFailed
	OutcomeNotEnabled
	OutcomeStateFailed
)

// RecordHandshake records a connect attempt with its duration and outcome.
func (m *Metrics) RecordHandshake(outcome Outcome, duration time.Duration) {
	m.attemptsTotal.Add(1)
	m.handshakeNanos.Add(duration.Nanoseconds())

	switch outcome {
	case OutcomeConnected:
		m.connected.Add(1)
	case OutcomeWalletMissing:
		m.walletMissing.Add(1)
	case OutcomeEnableFailed:
		m.enableFailed.Add(1)
	case OutcomeNotEnabled:
		m.notEnabled.Add(1)
	case OutcomeStateFailed:
		m.stateFailed.Add(1)
	}
}

// RecordBridgeCall records a bridge RPC call and whether it failed.
func (m *Metrics) RecordBridgeCall(err error) {
	m.bridgeCallsTotal.Add(1)
	if err != nil {
		m.bridgeErrorsTotal.Add(1)
	}
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	Attempts         int64
	Connected        int64
	WalletMissing    int64
	EnableFailed     int64
	NotEnabled       int64
	StateFailed      int64
	HandshakeLatency time.Duration
	BridgeCalls      int64
	BridgeErrors     int64
}

// Snapshot returns a consistent-enough copy of the counters for display.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Attempts:         m.attemptsTotal.Load(),
		Connected:        m.connected.Load(),
		WalletMissing:    m.walletMissing.Load(),
		EnableFailed:     m.enableFailed.Load(),
		NotEnabled:       m.notEnabled.Load(),
		StateFailed:      m.stateFailed.Load(),
		HandshakeLatency: time.Duration(m.handshakeNanos.Load()),
		BridgeCalls:      m.bridgeCallsTotal.Load(),
		BridgeErrors:     m.bridgeErrorsTotal.Load(),
	}
}

// Reset zeroes all counters. Primarily for tests.
func (m *Metrics) Reset() {
	m.attemptsTotal.Store(0)
	m.connected.Store(0)
	m.walletMissing.Store(0)
	m.enableFailed.Store(0)
	m.notEnabled.Store(0)
	m.stateFailed.Store(0)
	m.handshakeNanos.Store(0)
	m.bridgeCallsTotal.Store(0)
	m.bridgeErrorsTotal.Store(0)
}
