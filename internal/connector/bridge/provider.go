package bridge

import (
	"context"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bochaco/mn-wallet-connect/internal/connector"
	mnerr "github.com/bochaco/mn-wallet-connect/pkg/errors"
)

// RPC methods the wallet daemon exposes.
const (
	methodEnable    = "wallet_enable"
	methodIsEnabled = "wallet_isEnabled"
	methodGetState  = "wallet_getState"
)

// Provider exposes a wallet daemon as a connector.Capability.
type Provider struct {
	client *Client
}

// NewProvider creates a capability provider backed by the given client.
func NewProvider(client *Client) *Provider {
	return &Provider{client: client}
}

// enableResult is the wallet_enable response payload.
type enableResult struct {
	Session string `json:"session"`
}

// Enable implements connector.Capability. The daemon holds the request
// open while its own UI waits on user approval, so this call blocks for
// as long as the user deliberates; ctx is the only bound.
func (p *Provider) Enable(ctx context.Context) (connector.EnabledCapability, error) {
	raw, err := p.client.Call(ctx, methodEnable)
	if err != nil {
		return nil, mnerr.Wrap(err, "enable request failed")
	}

	var res enableResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, mnerr.Wrap(mnerr.ErrBridgeResponse, "decoding enable result")
	}
	if res.Session == "" {
		return nil, mnerr.WithDetails(mnerr.ErrBridgeResponse, map[string]string{
			"reason": "enable result missing session",
		})
	}

	return &Session{client: p.client, token: res.Session}, nil
}

// IsEnabled implements connector.Capability.
func (p *Provider) IsEnabled(ctx context.Context) (bool, error) {
	raw, err := p.client.Call(ctx, methodIsEnabled)
	if err != nil {
		return false, err
	}

	var enabled bool
	if err := json.Unmarshal(raw, &enabled); err != nil {
		return false, mnerr.Wrap(mnerr.ErrBridgeResponse, "decoding isEnabled result")
	}
	return enabled, nil
}

// Session is the enabled capability returned by a successful Enable. The
// token scopes state queries to the approved session.
type Session struct {
	client *Client
	token  string
}

// stateResult is the wallet_getState response payload.
type stateResult struct {
	Address string `json:"address"`
	Network string `json:"network"`
}

// State implements connector.EnabledCapability.
func (s *Session) State(ctx context.Context) (connector.WalletState, error) {
	raw, err := s.client.Call(ctx, methodGetState, s.token)
	if err != nil {
		return connector.WalletState{}, err
	}

	var res stateResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return connector.WalletState{}, mnerr.Wrap(mnerr.ErrBridgeResponse, "decoding state result")
	}

	if !common.IsHexAddress(res.Address) {
		return connector.WalletState{}, mnerr.WithDetails(mnerr.ErrInvalidAddress, map[string]string{
			"source": "wallet daemon",
		})
	}

	return connector.WalletState{
		Address: res.Address,
		Network: res.Network,
	}, nil
}
