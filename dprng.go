package rtrand

import (
	"crypto/rand"
	"encoding/binary"
)

// DPRNG is a deterministic xorshift* bit source (see https://en.wikipedia.org/wiki/Xorshift#xorshift*).
// Equal seeds give equal sequences, which makes it the default source for reproducible
// draws and tests. The period is 2^64-1: every non-zero state is visited once per period.
// Each call has a constant runtime. DPRNG is neither cryptographically secure nor
// thread-safe. The state must never be zero.
type DPRNG struct {
	State uint64
	Round uint64 // for debugging purposes
}

// NewDPRNG returns a DPRNG seeded with the first given seed. If no seed or a zero seed
// is given, the state is initialized from crypto/rand (the xorshift state must never be zero).
func NewDPRNG(seed ...uint64) *DPRNG {
	var s uint64
	if len(seed) > 0 {
		s = seed[0]
	}
	for s == 0 {
		var b [8]byte
		if _, err := rand.Read(b[:]); err != nil {
			panic(err)
		}
		s = binary.LittleEndian.Uint64(b[:])
	}
	return &DPRNG{State: s}
}

// Uint64 advances the state and returns the scrambled next value.
func (thisState *DPRNG) Uint64() uint64 {
	x := thisState.State
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	thisState.State = x
	thisState.Round++
	return x * 0x2545F4914F6CDD1D
}

// Uint32 returns the upper 32 bits of the next number in the sequence.
// The lower bits of xorshift* fail some statistical tests, the upper ones do not.
func (thisState *DPRNG) Uint32() uint32 {
	return uint32(thisState.Uint64() >> 32)
}
