// Package connector implements discovery and negotiation of an externally
// provided wallet capability. The wallet itself lives outside this process
// (a browser extension, a local daemon); this package only locates its
// capability object and drives the enable/verify/fetch-state handshake.
package connector

import "context"

// WalletState is the state an enabled wallet capability reports.
type WalletState struct {
	Address string `json:"address"`
	Network string `json:"network,omitempty"`
}

// Capability is the handle an external wallet exposes to dApps. The
// application never constructs or tears down the wallet behind it; it only
// looks the capability up and invokes methods on it.
type Capability interface {
	// Enable requests authorization from the wallet. It may block
	// indefinitely while the wallet waits on end-user approval, and may
	// fail on denial or wallet error.
	Enable(ctx context.Context) (EnabledCapability, error)

	// IsEnabled reports whether the connection is currently authorized.
	IsEnabled(ctx context.Context) (bool, error)
}

// EnabledCapability is the capability returned by a successful Enable.
type EnabledCapability interface {
	// State returns the wallet's current state.
	State(ctx context.Context) (WalletState, error)
}

// Locator resolves a wallet identifier to a capability. Locate is total:
// a missing wallet yields ok=false, never an error or a panic, so callers
// branch instead of crashing.
type Locator interface {
	Locate(walletID string) (Capability, bool)
}

// Suggester is optionally implemented by locators that can offer a
// close-match wallet identifier when a lookup misses.
type Suggester interface {
	Suggest(walletID string) string
}

// LogWriter provides diagnostic logging capabilities.
type LogWriter interface {
	Debug(format string, args ...any)
	Error(format string, args ...any)
}
