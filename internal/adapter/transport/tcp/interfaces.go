package tcp

import "github.com/dayanaadylkhanova/pow-wisdom/internal/protocol"

//go:generate mockgen -source=interfaces.go -destination=./server_mock.go -package=tcp

// Handshake is the responder side, run once per accepted connection.
type Handshake interface {
	Serve(t protocol.Transport) error
}

// Initiator is the client side, run once per dialed connection.
type Initiator interface {
	Run(t protocol.Transport) (string, error)
}
