package connector

import (
	"sort"
	"sync"

	"github.com/agnivade/levenshtein"
)

// maxSuggestionDistance bounds how far a wallet ID can be from a
// registered one before no suggestion is offered.
const maxSuggestionDistance = 3

// Registry maps wallet identifiers to their capability objects. It is the
// process-wide analogue of the browser's wallet namespace: extensions
// register themselves under a well-known ID and dApps look them up.
type Registry struct {
	mu      sync.RWMutex
	wallets map[string]Capability
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{wallets: make(map[string]Capability)}
}

// Register adds a capability under a wallet identifier, replacing any
// previous registration for the same ID.
func (r *Registry) Register(walletID string, capability Capability) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wallets[walletID] = capability
}

// Deregister removes a wallet's capability, if present.
func (r *Registry) Deregister(walletID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.wallets, walletID)
}

// Locate implements Locator. A missing entry yields ok=false.
func (r *Registry) Locate(walletID string) (Capability, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	capability, ok := r.wallets[walletID]
	if !ok || capability == nil {
		return nil, false
	}
	return capability, true
}

// Wallets returns the registered wallet identifiers in sorted order.
func (r *Registry) Wallets() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.wallets))
	for id := range r.wallets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Suggest returns the registered wallet ID closest to the given one, for
// "did you mean" diagnostics on lookup misses. Returns "" when nothing is
// close enough.
func (r *Registry) Suggest(walletID string) string {
	best := ""
	bestDist := maxSuggestionDistance + 1
	for _, id := range r.Wallets() {
		dist := levenshtein.ComputeDistance(walletID, id)
		if dist < bestDist {
			best = id
			bestDist = dist
		}
	}
	return best
}

// Default is the process-wide registry, shared by providers and the CLI.
//
//nolint:gochecknoglobals // Intentional global, mirrors the browser's shared wallet namespace
var Default = NewRegistry()

// Register adds a capability to the default registry.
func Register(walletID string, capability Capability) {
	Default.Register(walletID, capability)
}

// Lookup finds a capability in the default registry.
func Lookup(walletID string) (Capability, bool) {
	return Default.Locate(walletID)
}
