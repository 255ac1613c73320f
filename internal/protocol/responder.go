package protocol

import (
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/dayanaadylkhanova/pow-wisdom/internal/entity"
)

// DefaultDifficulty is the number of leading zero bytes the responder asks for.
const DefaultDifficulty uint8 = 1

// Responder is the server side of the handshake. It holds no per-connection
// state, so one value may serve any number of connections concurrently.
type Responder struct {
	log        *slog.Logger
	pow        PoW
	quotes     Quote
	difficulty uint8
}

func NewResponder(log *slog.Logger, pow PoW, quotes Quote, difficulty uint8) *Responder {
	return &Responder{
		log:        log,
		pow:        pow,
		quotes:     quotes,
		difficulty: difficulty,
	}
}

// Serve runs one handshake over t. A non-nil error means the handshake was
// aborted and nothing more should be written to t.
func (r *Responder) Serve(t Transport) error {
	var (
		ch  entity.Challenge
		sol entity.Solution
	)
	state := StateAwaitingHello
	for {
		r.log.Debug("responder", "state", state.String())
		switch state {
		case StateAwaitingHello:
			if _, err := await(r.log, t, KindHello); err != nil {
				return err
			}
			state = StateChallenging

		case StateChallenging:
			ch = r.pow.NewChallenge(r.difficulty)
			if err := send(t, NewMsgChallenge(ch)); err != nil {
				return err
			}
			state = StateAwaitingSolution

		case StateAwaitingSolution:
			msg, err := await(r.log, t, KindSolution)
			if err != nil {
				return err
			}
			sol = msg.(*MsgSolution).Solution
			state = StateVerifying

		case StateVerifying:
			out, err := r.pow.Verify(sol, ch)
			if err != nil {
				return fmt.Errorf("verify solution: %w", err)
			}
			if !out.Valid {
				return fmt.Errorf("%w: solution does not address challenge %d", ErrProtocolViolation, ch.Value)
			}
			r.log.Info("solution accepted",
				"challenge", ch.Value,
				"difficulty", ch.Difficulty,
				"nonce", sol.Nonce,
				"digest", hex.EncodeToString(out.Digest[:]),
			)
			state = StateDone

		case StateDone:
			return send(t, NewMsgWisdom(r.quotes.Random()))

		default:
			return fmt.Errorf("%w: responder in state %s", ErrProtocolViolation, state)
		}
	}
}
