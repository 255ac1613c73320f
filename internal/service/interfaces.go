package service

// Source feeds challenge values. *math/rand/v2.Rand satisfies it.
type Source interface {
	Uint64() uint64
}
