package protocol

import "errors"

// Every handshake failure wraps exactly one of these, so callers can
// classify it with errors.Is. Engine errors from the service package are
// wrapped alongside.
var (
	ErrDecode            = errors.New("decode error")
	ErrEncode            = errors.New("encode error")
	ErrTransport         = errors.New("transport error")
	ErrUnexpectedClose   = errors.New("connection closed unexpectedly")
	ErrProtocolViolation = errors.New("protocol violation")
)
