package rtrand

// scriptedSource replays fixed raw values. It fails the test (by panicking) when a
// generator asks for more values than scripted, which makes the number of bit source
// calls of an algorithm part of the test.
type scriptedSource struct {
	vals32 []uint32
	vals64 []uint64
	i32    int
	i64    int
}

func seq32(vals ...uint32) *scriptedSource {
	return &scriptedSource{vals32: vals}
}

func seq64(vals ...uint64) *scriptedSource {
	return &scriptedSource{vals64: vals}
}

func (s *scriptedSource) Uint32() uint32 {
	if s.i32 >= len(s.vals32) {
		panic("scriptedSource: no 32 bit values left")
	}
	v := s.vals32[s.i32]
	s.i32++
	return v
}

func (s *scriptedSource) Uint64() uint64 {
	if s.i64 >= len(s.vals64) {
		panic("scriptedSource: no 64 bit values left")
	}
	v := s.vals64[s.i64]
	s.i64++
	return v
}

// exhausted reports whether all scripted values were consumed.
func (s *scriptedSource) exhausted() bool {
	return s.i32 == len(s.vals32) && s.i64 == len(s.vals64)
}
