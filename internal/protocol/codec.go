package protocol

import (
	"fmt"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

var (
	encMode   cbor.EncMode
	decMode   cbor.DecMode
	modesErr  error
	modesOnce sync.Once
)

func getModes() (cbor.EncMode, cbor.DecMode, error) {
	modesOnce.Do(func() {
		encMode, modesErr = cbor.CoreDetEncOptions().EncMode()
		if modesErr != nil {
			return
		}
		decMode, modesErr = cbor.DecOptions{
			// wisdom text must come back byte for byte
			UTF8: cbor.UTF8DecodeInvalid,
		}.DecMode()
	})
	return encMode, decMode, modesErr
}

// Encode serializes one message into a single frame payload.
func Encode(msg Message) ([]byte, error) {
	if msg == nil {
		return nil, fmt.Errorf("%w: nil message", ErrEncode)
	}
	em, _, err := getModes()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	data, err := em.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEncode, msg.Kind(), err)
	}
	return data, nil
}

func newMessage(k Kind) Message {
	switch k {
	case KindHello:
		return &MsgHello{}
	case KindChallenge:
		return &MsgChallenge{}
	case KindSolution:
		return &MsgSolution{}
	case KindWisdom:
		return &MsgWisdom{}
	}
	return nil
}

// Decode parses one whole frame payload. It never returns a partially
// filled message.
func Decode(data []byte) (Message, error) {
	_, dm, err := getModes()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	var items []cbor.RawMessage
	if err := dm.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty message", ErrDecode)
	}
	var kind Kind
	if err := dm.Unmarshal(items[0], &kind); err != nil {
		return nil, fmt.Errorf("%w: message kind: %w", ErrDecode, err)
	}
	msg := newMessage(kind)
	if msg == nil {
		return nil, fmt.Errorf("%w: unknown message kind %d", ErrDecode, uint8(kind))
	}
	if err := dm.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, kind, err)
	}
	return msg, nil
}
