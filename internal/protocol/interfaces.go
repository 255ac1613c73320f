package protocol

import "github.com/dayanaadylkhanova/pow-wisdom/internal/entity"

//go:generate mockgen -source=interfaces.go -destination=./protocol_mock.go -package=protocol

// Transport moves whole frames. Receive returns io.EOF once the peer has
// closed the stream.
type Transport interface {
	Send(payload []byte) error
	Receive() ([]byte, error)
}

type PoW interface {
	NewChallenge(difficulty uint8) entity.Challenge
	Solve(ch entity.Challenge) (entity.Solution, error)
	Verify(sol entity.Solution, ch entity.Challenge) (entity.Outcome, error)
}

type Quote interface {
	Random() string
}
