// Package demowallet provides an in-process wallet capability for demos
// and tests. It implements the capability contract only: the address is
// derived once from a mnemonic and the private key is discarded. There is
// no signing, no storage, and no real wallet behind it.
package demowallet

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"

	"github.com/bochaco/mn-wallet-connect/internal/connector"
	mnerr "github.com/bochaco/mn-wallet-connect/pkg/errors"
)

// Network is the network name the demo wallet reports.
const Network = "demonet"

// Derivation path m/44'/60'/0'/0/0, the first external Ethereum address.
var derivationPath = []uint32{ //nolint:gochecknoglobals // BIP44 path constant
	bip32.FirstHardenedChild + 44,
	bip32.FirstHardenedChild + 60,
	bip32.FirstHardenedChild,
	0,
	0,
}

// ErrInvalidMnemonic indicates the configured mnemonic is not valid BIP-39.
var ErrInvalidMnemonic = &mnerr.ConnectError{
	Code:     "INVALID_MNEMONIC",
	Message:  "demo wallet mnemonic is invalid",
	ExitCode: mnerr.ExitInput,
}

// Config controls the demo wallet's behavior.
type Config struct {
	// Mnemonic seeds the address derivation.
	Mnemonic string

	// ApprovalDelay simulates the user deliberating over the wallet's
	// approval prompt before Enable resolves.
	ApprovalDelay time.Duration

	// DenyEnable makes Enable fail, as if the user rejected the prompt.
	DenyEnable bool

	// ReportDisabled makes IsEnabled return false even after a
	// successful Enable.
	ReportDisabled bool

	// FailState makes State fail after a successful handshake start.
	FailState bool
}

// Wallet is the in-process capability. It tracks whether Enable has
// succeeded, the way a real extension remembers an approved dApp.
type Wallet struct {
	cfg     Config
	address string
	enabled bool
}

// New derives the demo wallet's address and returns the capability.
func New(cfg Config) (*Wallet, error) {
	address, err := deriveAddress(cfg.Mnemonic)
	if err != nil {
		return nil, err
	}
	return &Wallet{cfg: cfg, address: address}, nil
}

// Enable implements connector.Capability.
func (w *Wallet) Enable(ctx context.Context) (connector.EnabledCapability, error) {
	if w.cfg.ApprovalDelay > 0 {
		select {
		case <-time.After(w.cfg.ApprovalDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if w.cfg.DenyEnable {
		return nil, mnerr.Wrap(mnerr.ErrEnableRejected, "demo wallet denied the request")
	}

	w.enabled = true
	return &session{wallet: w}, nil
}

// IsEnabled implements connector.Capability.
func (w *Wallet) IsEnabled(_ context.Context) (bool, error) {
	if w.cfg.ReportDisabled {
		return false, nil
	}
	return w.enabled, nil
}

// Address returns the derived demo address.
func (w *Wallet) Address() string {
	return w.address
}

// session is the enabled capability handed out by Enable.
type session struct {
	wallet *Wallet
}

// State implements connector.EnabledCapability.
func (s *session) State(_ context.Context) (connector.WalletState, error) {
	if s.wallet.cfg.FailState {
		return connector.WalletState{}, mnerr.Wrap(mnerr.ErrStateUnavailable, "demo wallet state failure")
	}
	return connector.WalletState{
		Address: s.wallet.address,
		Network: Network,
	}, nil
}

// Install derives the demo wallet and registers it under walletID in the
// default registry.
func Install(walletID string, cfg Config) (*Wallet, error) {
	w, err := New(cfg)
	if err != nil {
		return nil, err
	}
	connector.Register(walletID, w)
	return w, nil
}

// deriveAddress turns a BIP-39 mnemonic into the first external Ethereum
// address. The intermediate key material never leaves this function.
func deriveAddress(mnemonic string) (string, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return "", ErrInvalidMnemonic
	}

	seed := bip39.NewSeed(mnemonic, "")
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return "", mnerr.Wrap(err, "deriving master key")
	}

	for _, index := range derivationPath {
		key, err = key.NewChildKey(index)
		if err != nil {
			return "", mnerr.Wrap(err, "deriving child key")
		}
	}

	priv, err := crypto.ToECDSA(key.Key)
	if err != nil {
		return "", mnerr.Wrap(err, "converting key")
	}

	return crypto.PubkeyToAddress(priv.PublicKey).Hex(), nil
}
