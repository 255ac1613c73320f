package service

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	mrand "math/rand/v2"

	"github.com/dayanaadylkhanova/pow-wisdom/internal/entity"
)

var ErrNonceExhausted = errors.New("nonce space exhausted")

type DifficultyOutOfRangeError struct {
	Difficulty uint8
}

func (e *DifficultyOutOfRangeError) Error() string {
	return fmt.Sprintf("difficulty can be at most %d, found: %d", entity.MaxDifficulty, e.Difficulty)
}

type ChallengeMismatchError struct {
	Expected uint64
	Found    uint64
}

func (e *ChallengeMismatchError) Error() string {
	return fmt.Sprintf("challenge must be %d, solution contains %d", e.Expected, e.Found)
}

type globalSource struct{}

func (globalSource) Uint64() uint64 { return mrand.Uint64() }

// GlobalSource is safe for concurrent use by all connections.
var GlobalSource Source = globalSource{}

// Puzzle issues, solves and checks sha256 leading-zero-byte challenges.
type Puzzle struct {
	src Source
}

func NewPuzzle(src Source) *Puzzle {
	if src == nil {
		src = GlobalSource
	}
	return &Puzzle{src: src}
}

func (p *Puzzle) NewChallenge(difficulty uint8) entity.Challenge {
	return entity.Challenge{
		Value:      p.src.Uint64(),
		Difficulty: difficulty,
	}
}

func checkDifficulty(d uint8) error {
	if d > entity.MaxDifficulty {
		return &DifficultyOutOfRangeError{Difficulty: d}
	}
	return nil
}

// solutionMessage is the fixed 16-byte layout hashed by both peers:
// challenge value then nonce, little-endian.
func solutionMessage(sol entity.Solution) []byte {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], sol.ChallengeValue)
	binary.LittleEndian.PutUint64(buf[8:], sol.Nonce)
	return buf[:]
}

func leadingZeroBytes(b []byte, n uint8) bool {
	if int(n) > len(b) {
		return false
	}
	for _, x := range b[:n] {
		if x != 0 {
			return false
		}
	}
	return true
}

// Solve blocks until it finds the smallest nonce that verifies.
func (p *Puzzle) Solve(ch entity.Challenge) (entity.Solution, error) {
	if err := checkDifficulty(ch.Difficulty); err != nil {
		return entity.Solution{}, err
	}
	sol := entity.Solution{ChallengeValue: ch.Value}
	for {
		out, err := p.Verify(sol, ch)
		if err != nil {
			return entity.Solution{}, err
		}
		if out.Valid {
			return sol, nil
		}
		sol.Nonce++
		if sol.Nonce == 0 {
			return entity.Solution{}, ErrNonceExhausted
		}
	}
}

func (p *Puzzle) Verify(sol entity.Solution, ch entity.Challenge) (entity.Outcome, error) {
	if err := checkDifficulty(ch.Difficulty); err != nil {
		return entity.Outcome{}, err
	}
	if sol.ChallengeValue != ch.Value {
		return entity.Outcome{}, &ChallengeMismatchError{Expected: ch.Value, Found: sol.ChallengeValue}
	}
	sum := sha256.Sum256(solutionMessage(sol))
	if !leadingZeroBytes(sum[:], ch.Difficulty) {
		return entity.Outcome{}, nil
	}
	return entity.Outcome{Valid: true, Digest: sum}, nil
}
