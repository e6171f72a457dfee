package rng

// Script is a Roller that replays queued values in order. Tests use it to
// force specific rolls (a guaranteed critical, a failed dodge, an exact
// damage die) without touching a real random source.
//
// Drawing from an exhausted queue panics: a test that rolls more than it
// scripted is asserting on values it never chose.
type Script struct {
	Ints   []int
	Floats []float64
}

func (s *Script) Between(lo, hi int) int {
	if len(s.Ints) == 0 {
		panic("rng: scripted roller out of ints")
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < lo || v > hi {
		panic("rng: scripted int out of requested range")
	}
	return v
}

func (s *Script) Float64() float64 {
	if len(s.Floats) == 0 {
		panic("rng: scripted roller out of floats")
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}
