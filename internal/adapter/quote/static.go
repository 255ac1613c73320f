package quote

import (
	mrand "math/rand/v2"
)

// Book is the default set of sayings handed out after a valid solution.
var Book = []string{
	"Observe sunset at least once a day",
	"You only get one chance to make a first impression",
	"“Do. Or do not. There is no try.” – Yoda",
	"“Simplicity is the soul of efficiency.” – Austin Freeman",
	"“Programs must be written for people to read.” – Harold Abelson",
	"“Premature optimization is the root of all evil.” – Donald Knuth",
	"“Talk is cheap. Show me the code.” – Linus Torvalds",
}

// Static picks sayings uniformly from a fixed list. Safe for concurrent
// use when r is nil.
type Static struct {
	list []string
	r    *mrand.Rand
}

func NewStatic() *Static {
	list := make([]string, len(Book))
	copy(list, Book)
	return &Static{list: list}
}

// NewStaticWith доп. конструктор для тестов/DI
func NewStaticWith(list []string, r *mrand.Rand) *Static {
	return &Static{list: list, r: r}
}

func (s *Static) Random() string {
	if len(s.list) == 0 {
		return "" // защита от panic
	}
	if s.r != nil {
		return s.list[s.r.IntN(len(s.list))]
	}
	return s.list[mrand.IntN(len(s.list))]
}

func (s *Static) Len() int { return len(s.list) }
