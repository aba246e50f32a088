package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bochaco/mn-wallet-connect/internal/connector"
	mnerr "github.com/bochaco/mn-wallet-connect/pkg/errors"
)

// Demo wallet address for the default test mnemonic.
const demoAddress = "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"

// execute runs the root command with a fresh flag state and captures
// output. CLI tests share package globals and the process-wide registry,
// so they do not run in parallel.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Reset flag-bound globals between runs; cobra keeps them otherwise
	homeDir = ""
	walletID = ""
	verbose = false
	demoMode = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--home", t.TempDir()}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestConnect_DemoWallet(t *testing.T) {
	wallet := "cli-demo-connect"
	defer connector.Default.Deregister(wallet)

	out, err := execute(t, "--demo", "--wallet", wallet, "connect")
	require.NoError(t, err)
	assert.Contains(t, out, "Status:  connected")
	assert.Contains(t, out, demoAddress)
}

func TestConnect_NoWalletRegistered(t *testing.T) {
	out, err := execute(t, "--wallet", "cli-missing-wallet", "connect")
	require.NoError(t, err)
	assert.Contains(t, out, "Status:  not connected")
	assert.NotContains(t, out, "0x")
}

func TestDisconnect_AlwaysDisconnected(t *testing.T) {
	wallet := "cli-demo-disconnect"
	defer connector.Default.Deregister(wallet)

	out, err := execute(t, "--demo", "--wallet", wallet, "disconnect")
	require.NoError(t, err)
	assert.Contains(t, out, "Status:  not connected")
}

func TestWallets_ListsRegistered(t *testing.T) {
	wallet := "cli-demo-wallets"
	defer connector.Default.Deregister(wallet)

	out, err := execute(t, "--demo", "--wallet", wallet, "wallets")
	require.NoError(t, err)
	assert.Contains(t, out, "* "+wallet)
}

func TestWallets_EmptyRegistryHint(t *testing.T) {
	// The registry may hold leftovers from other tests; only assert when
	// it is actually empty.
	if len(connector.Default.Wallets()) > 0 {
		t.Skip("registry not empty in this test process")
	}

	out, err := execute(t, "--wallet", "cli-none", "wallets")
	require.NoError(t, err)
	assert.Contains(t, out, "No wallet capabilities registered")
}

func TestStatus_ShowsCounters(t *testing.T) {
	out, err := execute(t, "--wallet", "cli-status", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Wallet:          cli-status")
	assert.Contains(t, out, "Attempts:")
}

func TestUI_RequiresTerminal(t *testing.T) {
	_, err := execute(t, "--wallet", "cli-ui", "ui")
	require.Error(t, err)
	assert.ErrorIs(t, err, mnerr.ErrNoTerminal)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, mnerr.ExitNotFound, ExitCode(mnerr.ErrWalletNotFound))
}
