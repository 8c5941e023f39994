package palette

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func grayDirt() Palette {
	return Palette{Name: "test", Entries: []Entry{
		{ID: "stone", RGB: [3]uint8{125, 125, 125}},
		{ID: "dirt", RGB: [3]uint8{100, 70, 50}},
	}}
}

func TestMatcherNearest(t *testing.T) {
	m, err := NewMatcher(grayDirt())
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Match(120, 120, 120); got != "stone" {
		t.Errorf("near-gray: got %q, want stone", got)
	}
	if got := m.Match(110, 80, 60); got != "dirt" {
		t.Errorf("brownish: got %q, want dirt", got)
	}
}

// Exact ties resolve to the first-declared entry, so results never depend on
// map iteration or goroutine scheduling.
func TestMatcherTieBreak(t *testing.T) {
	p := Palette{Name: "tie", Entries: []Entry{
		{ID: "a", RGB: [3]uint8{10, 0, 0}},
		{ID: "b", RGB: [3]uint8{30, 0, 0}},
	}}
	m, err := NewMatcher(p)
	if err != nil {
		t.Fatal(err)
	}
	// (20,0,0) is equidistant from both.
	if got := m.Match(20, 0, 0); got != "a" {
		t.Errorf("tie: got %q, want first entry a", got)
	}
}

func TestMatcherCache(t *testing.T) {
	m, err := NewMatcher(grayDirt())
	if err != nil {
		t.Fatal(err)
	}
	if m.CacheLen() != 0 {
		t.Fatalf("fresh cache: %d entries", m.CacheLen())
	}
	first := m.Match(90, 90, 90)
	if m.CacheLen() != 1 {
		t.Errorf("after one match: %d entries", m.CacheLen())
	}
	if again := m.Match(90, 90, 90); again != first {
		t.Errorf("cached answer changed: %q then %q", first, again)
	}
	if m.CacheLen() != 1 {
		t.Errorf("repeat match grew cache: %d entries", m.CacheLen())
	}
}

func TestMatcherConcurrent(t *testing.T) {
	m, err := NewMatcher(mustBuiltin(t, "mixed"))
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				v := uint8((i + seed) % 256)
				m.Match(v, v/2, v/3)
			}
		}(g)
	}
	wg.Wait()

	// Every goroutine asked the same 256-ish triples; answers must agree
	// with a fresh single-threaded matcher.
	fresh, _ := NewMatcher(m.Palette())
	for i := 0; i < 256; i++ {
		v := uint8(i)
		if m.Match(v, v/2, v/3) != fresh.Match(v, v/2, v/3) {
			t.Fatalf("concurrent result diverged at %d", i)
		}
	}
}

func mustBuiltin(t *testing.T, name string) Palette {
	t.Helper()
	p, err := Builtin(name)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestEmptyPalette(t *testing.T) {
	if _, err := NewMatcher(Palette{}); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("want ErrEmptyPalette, got %v", err)
	}
}

func TestBuiltinPalettes(t *testing.T) {
	for _, name := range BuiltinNames() {
		p, err := Builtin(name)
		if err != nil {
			t.Fatalf("Builtin(%q): %v", name, err)
		}
		if len(p.Entries) == 0 {
			t.Errorf("%s: empty", name)
		}
	}

	mixed := mustBuiltin(t, "mixed")
	concrete := mustBuiltin(t, "concrete")
	wool := mustBuiltin(t, "wool")
	terracotta := mustBuiltin(t, "terracotta")
	if len(mixed.Entries) != len(concrete.Entries)+len(wool.Entries)+len(terracotta.Entries) {
		t.Errorf("mixed should concatenate all families, got %d entries", len(mixed.Entries))
	}

	if _, err := Builtin("chrome"); err == nil {
		t.Error("expected error for unknown builtin")
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := `
- id: "minecraft:gold_block"
  rgb: [246, 208, 61]
- id: "minecraft:iron_block"
  rgb: [220, 220, 220]
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Entries) != 2 {
		t.Fatalf("entries: got %d", len(p.Entries))
	}
	if p.Entries[0].ID != "minecraft:gold_block" || p.Entries[0].RGB != [3]uint8{246, 208, 61} {
		t.Errorf("first entry: %+v", p.Entries[0])
	}

	if rgb, ok := p.Color("minecraft:iron_block"); !ok || rgb != [3]uint8{220, 220, 220} {
		t.Errorf("Color lookup: %v %v", rgb, ok)
	}
	if _, ok := p.Color("minecraft:tnt"); ok {
		t.Error("Color should miss unknown id")
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("[]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("want ErrEmptyPalette, got %v", err)
	}
}

func TestDitherZeroStrength(t *testing.T) {
	r, g, b := Dither(100, 150, 200, 3, 4, 5, 0)
	if r != 100 || g != 150 || b != 200 {
		t.Errorf("zero strength changed color: %d %d %d", r, g, b)
	}
}

func TestDitherDeterministicAndBounded(t *testing.T) {
	r1, g1, b1 := Dither(128, 128, 128, 7, 2, 3, DitherStrength)
	r2, g2, b2 := Dither(128, 128, 128, 7, 2, 3, DitherStrength)
	if r1 != r2 || g1 != g2 || b1 != b2 {
		t.Error("dither not deterministic")
	}

	// Offset magnitude is at most strength/2.
	for x := -8; x < 8; x++ {
		for y := -8; y < 8; y++ {
			r, _, _ := Dither(128, 128, 128, x, y, 0, DitherStrength)
			d := int(r) - 128
			if d < -16 || d > 16 {
				t.Fatalf("offset out of range at (%d,%d): %d", x, y, d)
			}
		}
	}
}

func TestDitherClamps(t *testing.T) {
	// Position with the maximum positive threshold pushes past 255.
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			r, _, _ := Dither(250, 250, 250, x, y, 0, 64)
			if r < 218 {
				t.Fatalf("clamp low at (%d,%d): %d", x, y, r)
			}
			lo, _, _ := Dither(5, 5, 5, x, y, 0, 64)
			if lo > 37 {
				t.Fatalf("clamp high at (%d,%d): %d", x, y, lo)
			}
		}
	}
}
