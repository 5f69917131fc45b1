package random

import (
	"crypto/rand"
	"math/big"
)

// Source yields uniform integers in [0, n). Probabilistic operations
// consume one or two values per call, so a scripted Source makes every
// outcome reproducible in tests.
type Source interface {
	Intn(n int) int
}

type cryptoSource struct{}

// Crypto returns a crypto/rand backed source.
func Crypto() Source {
	return cryptoSource{}
}

func (cryptoSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// Should never happen with the platform reader.
		return 0
	}
	return int(v.Int64())
}

// Sequence replays a fixed list of values, wrapping around at the end.
// Values are taken modulo the requested bound.
type Sequence struct {
	Values []int
	pos    int
}

func (s *Sequence) Intn(n int) int {
	if n <= 0 || len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v % n
}
