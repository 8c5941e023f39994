package palette

import "sync"

// Matcher resolves an RGB triple to the palette entry with minimum squared
// Euclidean distance; exact ties go to the first-declared entry. Results are
// memoized per triple. Safe for concurrent use, so one matcher can back a
// whole batch run: whichever goroutine computes a triple first, the stored
// answer always equals the single-threaded result.
type Matcher struct {
	palette Palette

	mu    sync.RWMutex
	cache map[[3]uint8]string
}

// NewMatcher builds a matcher for a palette. Fails with ErrEmptyPalette when
// the palette has no entries.
func NewMatcher(p Palette) (*Matcher, error) {
	if len(p.Entries) == 0 {
		return nil, ErrEmptyPalette
	}
	return &Matcher{
		palette: p,
		cache:   make(map[[3]uint8]string),
	}, nil
}

// Palette returns the matcher's palette.
func (m *Matcher) Palette() Palette { return m.palette }

// Match returns the material id nearest to the given color.
func (m *Matcher) Match(r, g, b uint8) string {
	key := [3]uint8{r, g, b}

	// Fast path: read lock.
	m.mu.RLock()
	if id, ok := m.cache[key]; ok {
		m.mu.RUnlock()
		return id
	}
	m.mu.RUnlock()

	id := m.nearest(r, g, b)

	// Write lock with double-check.
	m.mu.Lock()
	if cached, ok := m.cache[key]; ok {
		m.mu.Unlock()
		return cached
	}
	m.cache[key] = id
	m.mu.Unlock()

	return id
}

// CacheLen reports the number of memoized triples.
func (m *Matcher) CacheLen() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cache)
}

func (m *Matcher) nearest(r, g, b uint8) string {
	best := m.palette.Entries[0].ID
	bestDist := 1 << 30
	for _, e := range m.palette.Entries {
		dr := int(r) - int(e.RGB[0])
		dg := int(g) - int(e.RGB[1])
		db := int(b) - int(e.RGB[2])
		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			bestDist = dist
			best = e.ID
		}
	}
	return best
}
