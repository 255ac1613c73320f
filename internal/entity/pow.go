package entity

// MaxDifficulty is the largest number of leading zero bytes a peer may ask for.
const MaxDifficulty uint8 = 32

// Challenge is issued by the responder once per connection.
// Difficulty counts leading zero bytes of the solution digest.
type Challenge struct {
	_          struct{} `cbor:",toarray"`
	Value      uint64
	Difficulty uint8
}

// Solution binds a nonce to the challenge value it was found for.
type Solution struct {
	_              struct{} `cbor:",toarray"`
	ChallengeValue uint64
	Nonce          uint64
}

// Outcome of verifying a Solution. Digest is set only when Valid.
type Outcome struct {
	Valid  bool
	Digest [32]byte
}
