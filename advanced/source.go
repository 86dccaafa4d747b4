package advanced

import (
	"math/rand"
)

// A Source yields independent uniform variates on [0, 1). *rand.Rand
// satisfies it, as does anything that wraps a quasi-random sequence.
type Source interface {
	Float64() float64
}

func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// A SequenceSource replays a fixed list of variates, in order. Running past the
// end is a programming error and panics.
type SequenceSource struct {
	Values []float64
	next   int
}

func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{Values: values}
}

func (s *SequenceSource) Float64() float64 {
	if s.next >= len(s.Values) {
		panic("sequence source exhausted")
	}
	v := s.Values[s.next]
	s.next++
	return v
}

// Number of variates consumed so far.
func (s *SequenceSource) Consumed() int {
	return s.next
}

// CellStreams gives every cell index its own generator, seeded from seed and
// the index. The streams do not depend on which goroutine draws from them or in
// what order cells are visited, so results are reproducible under any worker
// count.
func CellStreams(seed int64) func(cell int) Source {
	return func(cell int) Source {
		return NewSource(int64(splitmix64(uint64(seed) ^ splitmix64(uint64(cell)))))
	}
}

// splitmix64 finalizer, used to decorrelate neighbouring seeds.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
