package rtrand

import (
	"errors"
	"fmt"
	"strings"

	dcrrand "github.com/decred/dcrd/crypto/rand"
	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"
)

// ErrUnknownSource is returned by NewSource for names it does not know.
var ErrUnknownSource = errors.New("rtrand: unknown bit source")

// SourceNames lists the names accepted by NewSource.
var SourceNames = []string{"dprng", "cprng", "chacha", "mt19937", "pcg"}

// ChaChaSource is a cryptographically secure bit source backed by a ChaCha20 keystream that is
// periodically rekeyed with entropy from crypto/rand. Not safe for concurrent use.
type ChaChaSource struct {
	prng *dcrrand.PRNG
}

// NewChaChaSource returns a freshly seeded ChaChaSource.
func NewChaChaSource() (*ChaChaSource, error) {
	p, err := dcrrand.NewPRNG()
	if err != nil {
		return nil, fmt.Errorf("seeding chacha20 source: %w", err)
	}
	return &ChaChaSource{prng: p}, nil
}

func (c *ChaChaSource) Uint32() uint32 { return c.prng.Uint32() }

func (c *ChaChaSource) Uint64() uint64 { return c.prng.Uint64() }

// NewMT19937 returns a 32 bit Mersenne Twister seeded with seed. MT19937 produces both 32 and
// 64 bit draws natively, so it is used as a BitSource without an adapter.
func NewMT19937(seed uint64) BitSource {
	mt := prng.NewMT19937()
	mt.Seed(seed)
	return mt
}

// NewPCG returns a 128 bit state PCG generator seeded with seed.
// Uint32 draws take the upper half of a 64 bit draw.
func NewPCG(seed uint64) BitSource {
	pcg := new(exprand.PCGSource)
	pcg.Seed(seed)
	return From64(pcg)
}

// NewSource returns the bit source registered under name (see SourceNames).
// The seed is used by the deterministic sources (dprng, mt19937, pcg); a zero seed
// makes dprng pick a random one. The crypto sources ignore it.
func NewSource(name string, seed uint64) (BitSource, error) {
	switch strings.ToLower(name) {
	case "dprng":
		return NewDPRNG(seed), nil
	case "cprng":
		return NewCPRNG(8192), nil
	case "chacha":
		return NewChaChaSource()
	case "mt19937":
		return NewMT19937(seed), nil
	case "pcg":
		return NewPCG(seed), nil
	}
	return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownSource, name, strings.Join(SourceNames, ", "))
}
