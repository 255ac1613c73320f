package protocol

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

type State int

const (
	StateStart State = iota
	StateAwaitingHello
	StateChallenging
	StateAwaitingChallenge
	StateSolving
	StateAwaitingSolution
	StateVerifying
	StateAwaitingWisdom
	StateDone
)

var stateNames = map[State]string{
	StateStart:             "Start",
	StateAwaitingHello:     "AwaitingHello",
	StateChallenging:       "Challenging",
	StateAwaitingChallenge: "AwaitingChallenge",
	StateSolving:           "Solving",
	StateAwaitingSolution:  "AwaitingSolution",
	StateVerifying:         "Verifying",
	StateAwaitingWisdom:    "AwaitingWisdom",
	StateDone:              "Done",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func send(t Transport, msg Message) error {
	data, err := Encode(msg)
	if err != nil {
		return err
	}
	if err := t.Send(data); err != nil {
		return fmt.Errorf("%w: sending %s: %w", ErrTransport, msg.Kind(), err)
	}
	return nil
}

// await reads frames until one of kind want arrives. Well-formed messages of
// any other kind are dropped.
func await(log *slog.Logger, t Transport, want Kind) (Message, error) {
	for {
		data, err := t.Receive()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: waiting for %s", ErrUnexpectedClose, want)
			}
			return nil, fmt.Errorf("%w: waiting for %s: %w", ErrTransport, want, err)
		}
		msg, err := Decode(data)
		if err != nil {
			return nil, err
		}
		if msg.Kind() == want {
			return msg, nil
		}
		log.Debug("discarding message", "want", want.String(), "got", msg.Kind().String())
	}
}
