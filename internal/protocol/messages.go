package protocol

import (
	"fmt"

	"github.com/dayanaadylkhanova/pow-wisdom/internal/entity"
)

// Kind is the discriminant carried as the first element of every message.
type Kind uint8

const (
	KindHello Kind = iota
	KindChallenge
	KindSolution
	KindWisdom
)

func (k Kind) String() string {
	switch k {
	case KindHello:
		return "Hello"
	case KindChallenge:
		return "Challenge"
	case KindSolution:
		return "Solution"
	case KindWisdom:
		return "Wisdom"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

type Message interface {
	Kind() Kind
}

type MessageBase struct {
	// Tells the CBOR codec to convert to/from a struct and a CBOR array
	_           struct{} `cbor:",toarray"`
	MessageKind Kind
}

func (m *MessageBase) Kind() Kind {
	return m.MessageKind
}

type MsgHello struct {
	MessageBase
}

func NewMsgHello() *MsgHello {
	return &MsgHello{
		MessageBase: MessageBase{MessageKind: KindHello},
	}
}

type MsgChallenge struct {
	MessageBase
	Challenge entity.Challenge
}

func NewMsgChallenge(ch entity.Challenge) *MsgChallenge {
	return &MsgChallenge{
		MessageBase: MessageBase{MessageKind: KindChallenge},
		Challenge:   ch,
	}
}

type MsgSolution struct {
	MessageBase
	Solution entity.Solution
}

func NewMsgSolution(sol entity.Solution) *MsgSolution {
	return &MsgSolution{
		MessageBase: MessageBase{MessageKind: KindSolution},
		Solution:    sol,
	}
}

type MsgWisdom struct {
	MessageBase
	Text string
}

func NewMsgWisdom(text string) *MsgWisdom {
	return &MsgWisdom{
		MessageBase: MessageBase{MessageKind: KindWisdom},
		Text:        text,
	}
}
