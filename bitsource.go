package rtrand

// BitSource is the raw bit generator consumed by every range and float function in this package.
// Each call must return uniformly distributed bits, i.e. all 2^32 (resp. 2^64) values are equally likely.
// BitSource implementations are not required to be thread-safe; this package never locks them.
type BitSource interface {
	Uint32() uint32
	Uint64() uint64
}

// Source32 is a generator that natively produces 32 random bits per call.
type Source32 interface {
	Uint32() uint32
}

// Source64 is a generator that natively produces 64 random bits per call.
type Source64 interface {
	Uint64() uint64
}

type from32 struct {
	src Source32
}

func (s from32) Uint32() uint32 { return s.src.Uint32() }

// Uint64 combines two 32 bit draws; the first one becomes the upper half.
func (s from32) Uint64() uint64 {
	hi := uint64(s.src.Uint32())
	lo := uint64(s.src.Uint32())
	return hi<<32 | lo
}

// From32 turns a 32 bit generator into a BitSource. Every Uint64 call costs two Uint32 calls.
func From32(src Source32) BitSource {
	return from32{src: src}
}

type from64 struct {
	src Source64
}

// Uint32 returns the upper half of a 64 bit draw. The upper bits of most
// generators (xorshift*, PCG, LCGs) have the better statistical quality.
func (s from64) Uint32() uint32 { return uint32(s.src.Uint64() >> 32) }

func (s from64) Uint64() uint64 { return s.src.Uint64() }

// From64 turns a 64 bit generator into a BitSource. Every Uint32 call consumes one Uint64 call.
func From64(src Source64) BitSource {
	return from64{src: src}
}

// CountingSource wraps a BitSource and counts the calls made to it.
// Use it to observe the amortized cost (bit source calls per generated value) of the
// generators in this package.
type CountingSource struct {
	Source  BitSource
	Calls32 uint64
	Calls64 uint64
}

// NewCountingSource returns a CountingSource reading from src.
func NewCountingSource(src BitSource) *CountingSource {
	return &CountingSource{Source: src}
}

func (c *CountingSource) Uint32() uint32 {
	c.Calls32++
	return c.Source.Uint32()
}

func (c *CountingSource) Uint64() uint64 {
	c.Calls64++
	return c.Source.Uint64()
}

// Calls returns the total number of calls (32 and 64 bit) seen so far.
func (c *CountingSource) Calls() uint64 {
	return c.Calls32 + c.Calls64
}

// Reset sets both counters back to zero.
func (c *CountingSource) Reset() {
	c.Calls32 = 0
	c.Calls64 = 0
}
