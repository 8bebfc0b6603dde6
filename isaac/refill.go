package isaac

// Refill advances the generator by one block, writing Words fresh output
// words to out. The result depends only on the state before the call.
func (s *State) Refill(out *[Words]uint32) {
	const half = Words / 2

	s.count++
	a := s.a
	b := s.b + s.count
	mm := &s.mm

	for i := 0; i < Words; i++ {
		switch i & 3 {
		case 0:
			a ^= a << 13
		case 1:
			a ^= a >> 6
		case 2:
			a ^= a << 2
		case 3:
			a ^= a >> 16
		}
		a += mm[(i+half)&wordMask]

		x := mm[i]
		y := mm[(x>>2)&wordMask] + a + b
		mm[i] = y
		b = mm[(y>>(Log2Words+2))&wordMask] + x
		out[i] = b
	}

	s.a = a
	s.b = b
}
