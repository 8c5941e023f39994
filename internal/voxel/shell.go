package voxel

// Hollow returns a new set without the fully interior voxels: a cell is
// dropped when all six axis-aligned neighbors are occupied, since it can
// never be seen or built against. The result is always a subset of the
// input and hollowing an already-hollow set changes nothing.
func Hollow(s *Set) *Set {
	out := NewSet()
	s.Each(func(c Coord, id string) {
		if !interior(s, c) {
			out.Put(c, id)
		}
	})
	return out
}

func interior(s *Set, c Coord) bool {
	return s.Has(Coord{c.X - 1, c.Y, c.Z}) &&
		s.Has(Coord{c.X + 1, c.Y, c.Z}) &&
		s.Has(Coord{c.X, c.Y - 1, c.Z}) &&
		s.Has(Coord{c.X, c.Y + 1, c.Z}) &&
		s.Has(Coord{c.X, c.Y, c.Z - 1}) &&
		s.Has(Coord{c.X, c.Y, c.Z + 1})
}

// Ground translates the set so its lowest occupied cell sits at y=0,
// keeping crouching or sitting statues from floating above or sinking
// below the reference plane. Grounding a grounded set is the identity.
func Ground(s *Set) *Set {
	min, _, ok := s.Bounds()
	if !ok || min.Y == 0 {
		return s
	}
	out := NewSet()
	s.Each(func(c Coord, id string) {
		out.Put(Coord{c.X, c.Y - min.Y, c.Z}, id)
	})
	return out
}
