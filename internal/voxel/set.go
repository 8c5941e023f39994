// Package voxel turns posed part volumes into the final block lattice:
// inverse-mapped oversampling per cell, base/overlay layer resolution,
// part-priority union, hollow shell extraction and auto-grounding.
package voxel

import "sort"

// Coord is an integer lattice position.
type Coord struct {
	X, Y, Z int
}

// Set is a sparse voxel collection mapping occupied cells to material ids.
// Sets are built once and replaced, never edited in place, by the pipeline
// stages that consume them.
type Set struct {
	blocks map[Coord]string
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{blocks: make(map[Coord]string)}
}

// Put stores a material at a cell, overwriting any previous value.
func (s *Set) Put(c Coord, id string) {
	s.blocks[c] = id
}

// Get returns the material at a cell.
func (s *Set) Get(c Coord) (string, bool) {
	id, ok := s.blocks[c]
	return id, ok
}

// Has reports whether a cell is occupied.
func (s *Set) Has(c Coord) bool {
	_, ok := s.blocks[c]
	return ok
}

// Len returns the number of occupied cells.
func (s *Set) Len() int { return len(s.blocks) }

// Each visits every occupied cell in unspecified order.
func (s *Set) Each(fn func(Coord, string)) {
	for c, id := range s.blocks {
		fn(c, id)
	}
}

// Sorted returns all cells ordered by Y, then Z, then X, for deterministic
// serialization.
func (s *Set) Sorted() []Coord {
	coords := make([]Coord, 0, len(s.blocks))
	for c := range s.blocks {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		a, b := coords[i], coords[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.X < b.X
	})
	return coords
}

// Bounds returns the inclusive min/max corners of the occupied cells.
// ok is false for an empty set.
func (s *Set) Bounds() (min, max Coord, ok bool) {
	first := true
	for c := range s.blocks {
		if first {
			min, max = c, c
			first = false
			continue
		}
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.Z < min.Z {
			min.Z = c.Z
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
		if c.Z > max.Z {
			max.Z = c.Z
		}
	}
	return min, max, !first
}

// MergeLayers resolves one part's two layers: every cell in both sets takes
// the overlay material, so jackets and hats never bleed base color through.
func MergeLayers(base, overlay *Set) *Set {
	merged := NewSet()
	base.Each(merged.Put)
	overlay.Each(merged.Put)
	return merged
}

// Union combines per-part sets in priority order: the first set claiming a
// cell keeps it, so earlier parts beat later ones at seams.
func Union(sets []*Set) *Set {
	out := NewSet()
	for _, s := range sets {
		s.Each(func(c Coord, id string) {
			if !out.Has(c) {
				out.Put(c, id)
			}
		})
	}
	return out
}
