package isaac

// Mix applies Jenkins' 256-bit mixing function to eight accumulators and
// returns the scrambled values.
func Mix(p [8]uint32) [8]uint32 {
	a, b, c, d, e, f, g, h := p[0], p[1], p[2], p[3], p[4], p[5], p[6], p[7]

	a ^= b << 11
	d += a
	b += c
	b ^= c >> 2
	e += b
	c += d
	c ^= d << 8
	f += c
	d += e
	d ^= e >> 16
	g += d
	e += f
	e ^= f << 10
	h += e
	f += g
	f ^= g >> 4
	a += f
	g += h
	g ^= h << 8
	b += g
	h += a
	h ^= a >> 9
	c += h
	a += b

	return [8]uint32{a, b, c, d, e, f, g, h}
}

// mixState runs one initialization pass over the whole main array, carrying
// the scratch vector through every 8-word group.
func (s *State) mixState() {
	acc := s.iv
	for i := 0; i < Words; i += 8 {
		for j := range acc {
			acc[j] += s.mm[i+j]
		}
		acc = Mix(acc)
		copy(s.mm[i:i+8], acc[:])
	}
	s.iv = acc
}
