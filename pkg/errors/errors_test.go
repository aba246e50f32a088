package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectError_Error(t *testing.T) {
	t.Parallel()

	err := &ConnectError{
		Code:    "TEST_ERROR",
		Message: "something failed",
	}
	assert.Equal(t, "something failed", err.Error())
}

func TestConnectError_ErrorWithDetails(t *testing.T) {
	t.Parallel()

	err := &ConnectError{
		Code:    "TEST_ERROR",
		Message: "something failed",
		Details: map[string]string{
			"wallet": "mnwallet",
			"stage":  "enable",
		},
	}

	// Details are sorted for deterministic output
	assert.Equal(t, "something failed (stage: enable) (wallet: mnwallet)", err.Error())
}

func TestConnectError_ErrorWithCause(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("connection refused")
	err := &ConnectError{
		Code:    "BRIDGE_REQUEST_FAILED",
		Message: "wallet bridge request failed",
		Cause:   cause,
	}

	assert.Equal(t, "wallet bridge request failed: connection refused", err.Error())
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestConnectError_Is(t *testing.T) {
	t.Parallel()

	err := Wrap(ErrEnableRejected, "user dismissed the approval prompt")
	assert.ErrorIs(t, err, ErrEnableRejected)
	assert.NotErrorIs(t, err, ErrWalletNotFound)
}

func TestWrap_PreservesCodeAndExitCode(t *testing.T) {
	t.Parallel()

	err := Wrap(ErrWalletNotFound, "wallet '%s' is not registered", "ghost")
	require.Error(t, err)

	var ce *ConnectError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "WALLET_NOT_FOUND", ce.Code)
	assert.Equal(t, ExitNotFound, ce.ExitCode)
	assert.Contains(t, err.Error(), "ghost")
}

func TestWrap_Nil(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Wrap(nil, "ignored"))
}

func TestWrap_PlainError(t *testing.T) {
	t.Parallel()

	err := Wrap(stderrors.New("boom"), "handshake failed")
	assert.Equal(t, "GENERAL_ERROR", Code(err))
	assert.Equal(t, ExitGeneral, ExitCode(err))
}

func TestWithDetails_Merges(t *testing.T) {
	t.Parallel()

	base := WithDetails(ErrStateUnavailable, map[string]string{"wallet": "mnwallet"})
	err := WithDetails(base, map[string]string{"stage": "state"})

	var ce *ConnectError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "mnwallet", ce.Details["wallet"])
	assert.Equal(t, "state", ce.Details["stage"])
	assert.ErrorIs(t, err, ErrStateUnavailable)
}

func TestWithSuggestion(t *testing.T) {
	t.Parallel()

	err := WithSuggestion(ErrWalletNotFound, "install the wallet extension or run with --demo")

	var ce *ConnectError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "install the wallet extension or run with --demo", ce.Suggestion)
	assert.Equal(t, ExitNotFound, ce.ExitCode)
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", stderrors.New("boom"), ExitGeneral},
		{"not found", ErrWalletNotFound, ExitNotFound},
		{"denied", ErrEnableRejected, ExitDenied},
		{"invalid config", ErrConfigInvalid, ExitInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NOT_ENABLED", Code(ErrNotEnabled))
	assert.Equal(t, "GENERAL_ERROR", Code(stderrors.New("boom")))
}
