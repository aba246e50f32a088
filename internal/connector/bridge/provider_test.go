package bridge

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mnerr "github.com/bochaco/mn-wallet-connect/pkg/errors"
)

const daemonAddress = "0xDEF0000000000000000000000000000000000def"

func newTestProvider(t *testing.T, results map[string]any) (*Provider, func()) {
	t.Helper()
	srv := httptest.NewServer(rpcHandler(t, results))
	return NewProvider(NewClient(srv.URL)), srv.Close
}

func TestProvider_FullHandshake(t *testing.T) {
	t.Parallel()

	provider, done := newTestProvider(t, map[string]any{
		"wallet_enable":    map[string]any{"session": "tok-1"},
		"wallet_isEnabled": true,
		"wallet_getState":  map[string]any{"address": daemonAddress, "network": "mainnet"},
	})
	defer done()

	ctx := context.Background()

	enabled, err := provider.Enable(ctx)
	require.NoError(t, err)

	ok, err := provider.IsEnabled(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	state, err := enabled.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, daemonAddress, state.Address)
	assert.Equal(t, "mainnet", state.Network)
}

func TestProvider_EnableDenied(t *testing.T) {
	t.Parallel()

	// No wallet_enable entry: the daemon answers with a JSON-RPC error,
	// the shape of a user denial.
	provider, done := newTestProvider(t, map[string]any{
		"wallet_isEnabled": true,
	})
	defer done()

	_, err := provider.Enable(context.Background())
	assert.Error(t, err)
}

func TestProvider_EnableMissingSession(t *testing.T) {
	t.Parallel()

	provider, done := newTestProvider(t, map[string]any{
		"wallet_enable": map[string]any{},
	})
	defer done()

	_, err := provider.Enable(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, mnerr.ErrBridgeResponse)
}

func TestProvider_IsEnabledFalse(t *testing.T) {
	t.Parallel()

	provider, done := newTestProvider(t, map[string]any{
		"wallet_isEnabled": false,
	})
	defer done()

	ok, err := provider.IsEnabled(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_StateRejectsBadAddress(t *testing.T) {
	t.Parallel()

	provider, done := newTestProvider(t, map[string]any{
		"wallet_enable":   map[string]any{"session": "tok-1"},
		"wallet_getState": map[string]any{"address": "garbage"},
	})
	defer done()

	enabled, err := provider.Enable(context.Background())
	require.NoError(t, err)

	_, err = enabled.State(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, mnerr.ErrInvalidAddress)
}
