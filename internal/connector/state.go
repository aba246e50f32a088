package connector

// ConnectionState is the two-field view model driving the UI. Address is
// set only when Connected is true; the two fields are always replaced
// together, never independently.
type ConnectionState struct {
	Connected bool
	Address   string
}

// Disconnected returns the initial (and reset) connection state.
func Disconnected() ConnectionState {
	return ConnectionState{}
}

// Connected returns the state for a completed handshake.
func Connected(address string) ConnectionState {
	return ConnectionState{Connected: true, Address: address}
}
