package protocol

import (
	"fmt"
	"log/slog"

	"github.com/dayanaadylkhanova/pow-wisdom/internal/entity"
)

// Initiator is the client side of the handshake. It is not safe for
// concurrent use; run one per connection.
type Initiator struct {
	log   *slog.Logger
	pow   PoW
	state State
}

func NewInitiator(log *slog.Logger, pow PoW) *Initiator {
	return &Initiator{log: log, pow: pow, state: StateStart}
}

// State reports where the last Run stopped.
func (i *Initiator) State() State { return i.state }

// Run sends Hello, solves the challenge it gets back and returns the wisdom.
// The search in Solving runs on the calling goroutine.
func (i *Initiator) Run(t Transport) (string, error) {
	var (
		ch     entity.Challenge
		wisdom string
	)
	i.state = StateStart
	for i.state != StateDone {
		i.log.Debug("initiator", "state", i.state.String())
		switch i.state {
		case StateStart:
			if err := send(t, NewMsgHello()); err != nil {
				return "", err
			}
			i.state = StateAwaitingChallenge

		case StateAwaitingChallenge:
			msg, err := await(i.log, t, KindChallenge)
			if err != nil {
				return "", err
			}
			ch = msg.(*MsgChallenge).Challenge
			i.log.Debug("challenge received", "value", ch.Value, "difficulty", ch.Difficulty)
			i.state = StateSolving

		case StateSolving:
			sol, err := i.pow.Solve(ch)
			if err != nil {
				return "", fmt.Errorf("solve challenge: %w", err)
			}
			if err := send(t, NewMsgSolution(sol)); err != nil {
				return "", err
			}
			i.log.Debug("solution sent", "nonce", sol.Nonce)
			i.state = StateAwaitingWisdom

		case StateAwaitingWisdom:
			msg, err := await(i.log, t, KindWisdom)
			if err != nil {
				return "", err
			}
			wisdom = msg.(*MsgWisdom).Text
			i.state = StateDone

		default:
			return "", fmt.Errorf("%w: initiator in state %s", ErrProtocolViolation, i.state)
		}
	}
	return wisdom, nil
}
