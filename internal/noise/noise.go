// Package noise provides small deterministic generators used for
// procedural surface detail.
package noise

import "github.com/chewxy/math32"

const (
	randDegree = 31
	randSep    = 3
	randWarmup = 310
)

// CRand reproduces the additive feedback generator behind the C library
// rand()/srand() pair. It is a plain value: every instance owns its state,
// so a generator can be created per call without touching shared state.
type CRand struct {
	state [randDegree]int32
	front int
	rear  int
}

// NewCRand creates a generator seeded the same way srand(seed) does
func NewCRand(seed uint32) CRand {
	var r CRand

	word := int32(seed)
	if word == 0 {
		word = 1
	}
	r.state[0] = word
	for i := 1; i < randDegree; i++ {
		// Schrage's method for 16807 * word % 2147483647
		hi := word / 127773
		lo := word % 127773
		word = 16807*lo - 2836*hi
		if word < 0 {
			word += 2147483647
		}
		r.state[i] = word
	}

	r.front = randSep
	r.rear = 0
	for i := 0; i < randWarmup; i++ {
		r.next()
	}
	return r
}

func (r *CRand) next() int32 {
	r.state[r.front] += r.state[r.rear]
	result := int32(uint32(r.state[r.front]) >> 1)

	r.front++
	if r.front >= randDegree {
		r.front = 0
	}
	r.rear++
	if r.rear >= randDegree {
		r.rear = 0
	}
	return result
}

// Int31 returns the next value in [0, 2^31)
func (r *CRand) Int31() int32 {
	return r.next()
}

// Float returns the next value scaled to [0, 1)
func (r *CRand) Float() float32 {
	return float32(r.next()) / 2147483648.0
}

// Seed32 folds a floating point value into a 32-bit seed the way a
// truncating integer conversion would, wrapping out of range values.
func Seed32(v float32) uint32 {
	if math32.IsNaN(v) || math32.Abs(v) >= 9e18 {
		return 0
	}
	return uint32(int64(v))
}
