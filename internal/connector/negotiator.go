package connector

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bochaco/mn-wallet-connect/internal/metrics"
	mnerr "github.com/bochaco/mn-wallet-connect/pkg/errors"
)

// Negotiator drives the enable/verify/fetch-state handshake against a
// located wallet capability and produces a normalized ConnectionState.
//
// Every failure path collapses to the disconnected state: the failure
// boundary of Connect is total. Failures are distinguished only for
// diagnostic logging and metrics, never for differentiated UI messaging.
type Negotiator struct {
	locator  Locator
	walletID string
	logger   LogWriter
	metrics  *metrics.Metrics
}

// Config contains dependencies for creating a negotiator.
type Config struct {
	Locator  Locator
	WalletID string
	Logger   LogWriter
	Metrics  *metrics.Metrics // Defaults to metrics.Global
}

// NewNegotiator creates a new negotiator instance.
func NewNegotiator(cfg *Config) *Negotiator {
	m := cfg.Metrics
	if m == nil {
		m = metrics.Global
	}
	return &Negotiator{
		locator:  cfg.Locator,
		walletID: cfg.WalletID,
		logger:   cfg.Logger,
		metrics:  m,
	}
}

// WalletID returns the wallet identifier this negotiator targets.
func (n *Negotiator) WalletID() string {
	return n.walletID
}

// Connect performs the full handshake and returns the resulting state.
// It blocks while the wallet waits on end-user approval, bounded only by
// ctx. It never returns an error and never panics, whatever the external
// capability does; concurrent calls are not deduplicated, last to finish
// wins at the caller.
func (n *Negotiator) Connect(ctx context.Context) ConnectionState {
	start := time.Now()
	state, outcome := n.handshake(ctx)
	n.metrics.RecordHandshake(outcome, time.Since(start))
	return state
}

// Disconnect resets the connection view. It is synchronous and never
// touches the capability: the wallet's own session is not revoked.
func (n *Negotiator) Disconnect() ConnectionState {
	n.logger.Debug("wallet %q: local disconnect", n.walletID)
	return Disconnected()
}

func (n *Negotiator) handshake(ctx context.Context) (state ConnectionState, outcome metrics.Outcome) {
	// The capability is externally owned code; a panic from it must not
	// escape the connect flow.
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("wallet %q: capability panicked: %v", n.walletID, r)
			state = Disconnected()
			outcome = metrics.OutcomeStateFailed
		}
	}()

	capability, ok := n.locator.Locate(n.walletID)
	if !ok {
		n.logger.Error("%v", mnerr.Wrap(mnerr.ErrWalletNotFound, "wallet %q is not registered", n.walletID))
		if s, isSuggester := n.locator.(Suggester); isSuggester {
			if hint := s.Suggest(n.walletID); hint != "" {
				n.logger.Debug("wallet %q: closest registered wallet is %q", n.walletID, hint)
			}
		}
		return Disconnected(), metrics.OutcomeWalletMissing
	}

	enabled, err := capability.Enable(ctx)
	if err != nil {
		n.logger.Error("%v", mnerr.Wrap(mnerr.ErrEnableRejected, "wallet %q: enable failed", n.walletID))
		n.logger.Debug("wallet %q: enable error detail: %v", n.walletID, err)
		return Disconnected(), metrics.OutcomeEnableFailed
	}

	isEnabled, err := capability.IsEnabled(ctx)
	if err != nil || !isEnabled {
		if err != nil {
			n.logger.Debug("wallet %q: isEnabled error detail: %v", n.walletID, err)
		}
		n.logger.Error("%v", mnerr.Wrap(mnerr.ErrNotEnabled, "wallet %q: connection not enabled", n.walletID))
		return Disconnected(), metrics.OutcomeNotEnabled
	}

	walletState, err := enabled.State(ctx)
	if err != nil {
		n.logger.Error("%v", mnerr.Wrap(mnerr.ErrStateUnavailable, "wallet %q: state fetch failed", n.walletID))
		n.logger.Debug("wallet %q: state error detail: %v", n.walletID, err)
		return Disconnected(), metrics.OutcomeStateFailed
	}

	if err := validateAddress(walletState.Address); err != nil {
		n.logger.Error("%v", mnerr.Wrap(err, "wallet %q: rejected reported address", n.walletID))
		return Disconnected(), metrics.OutcomeStateFailed
	}

	n.logger.Debug("wallet %q: connected as %s", n.walletID, walletState.Address)
	return Connected(walletState.Address), metrics.OutcomeConnected
}

// validateAddress checks the wallet-reported address is well-formed. The
// address is passed through verbatim on success so the UI shows exactly
// what the wallet reported.
func validateAddress(address string) error {
	if !common.IsHexAddress(address) {
		return mnerr.WithDetails(mnerr.ErrInvalidAddress, map[string]string{
			"address": fmt.Sprintf("%.64q", address),
		})
	}
	return nil
}
