package rtrand

import (
	"crypto/rand"
	"encoding/binary"
)

// CPRNG is a cryptographically secure random bit source ("CryptographicPrecisionRNG")
// that reads random bytes in batches to reduce the number of calls to the underlying
// crypto/rand.Reader (OS call). This improves performance while maintaining security.
// This RNG is thread-safe as long as each goroutine uses its own instance.
// The memory footprint can be adjusted by changing the capBytes parameter in NewCPRNG.
// CPRNG implements BitSource.
type CPRNG struct {
	bufPos uint32
	buf    []byte
}

// NewCPRNG creates a new CPRNG with a buffer capacity of capBytes.
// The buffer is filled with random bytes upon creation and refilled as needed.
// A larger buffer reduces the number of operating system calls to crypto/rand.Reader,
// improving performance. A smaller buffer reduces memory usage.
// This random number generator is not deterministic in the sequence of numbers it generates.
// This random number generator is not deterministic in its runtime (it periodically refills its buffer via crypto/rand.Reader, an OS call).
// This random number generator is cryptographically secure (relying on crypto/rand, see https://pkg.go.dev/crypto/rand).
func NewCPRNG(capBytes uint32) *CPRNG {
	if capBytes < 8 {
		capBytes = 8 // minimum buffer size to hold at least one uint64
	}
	b := &CPRNG{buf: make([]byte, capBytes)}
	b.refill()
	return b
}

func (c *CPRNG) refill() {
	if _, err := rand.Read(c.buf); err != nil {
		panic(err)
	}
	c.bufPos = 0
}

// next returns the next n unread bytes, refilling the buffer first if fewer are left.
func (c *CPRNG) next(n uint32) []byte {
	if c.bufPos+n > uint32(len(c.buf)) {
		c.refill()
	}
	b := c.buf[c.bufPos : c.bufPos+n]
	c.bufPos += n
	return b
}

// Uint64 returns a uniformly distributed uint64.
func (c *CPRNG) Uint64() uint64 {
	return binary.LittleEndian.Uint64(c.next(8))
}

// Uint32 returns a uniformly distributed uint32. It consumes only four bytes of the buffer.
func (c *CPRNG) Uint32() uint32 {
	return binary.LittleEndian.Uint32(c.next(4))
}
