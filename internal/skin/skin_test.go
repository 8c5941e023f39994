package skin

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"

	"mc-skin-statue/internal/rig"
)

func setPix(img *image.NRGBA, x, y int, c color.NRGBA) {
	i := img.PixOffset(x, y)
	img.Pix[i] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = c.A
}

func getPix(img *image.NRGBA, x, y int) color.NRGBA {
	i := img.PixOffset(x, y)
	return color.NRGBA{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
}

func TestNormalizeModernPassthrough(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	out, err := Normalize(img)
	if err != nil {
		t.Fatal(err)
	}
	if out != img {
		t.Error("64x64 input should pass through unchanged")
	}
}

func TestNormalizeRejectsOddSizes(t *testing.T) {
	for _, dims := range [][2]int{{32, 32}, {128, 128}, {64, 48}, {48, 64}, {1, 1}} {
		img := image.NewNRGBA(image.Rect(0, 0, dims[0], dims[1]))
		if _, err := Normalize(img); !errors.Is(err, ErrInvalidTextureDimensions) {
			t.Errorf("%dx%d: want ErrInvalidTextureDimensions, got %v", dims[0], dims[1], err)
		}
	}
}

func TestUpgradeLegacyMirrorsLimbs(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 32))
	// Unique colors across the right-leg and right-arm regions.
	for y := 16; y < 32; y++ {
		for x := 0; x < 16; x++ {
			setPix(src, x, y, color.NRGBA{uint8(x * 10), uint8(y * 5), 1, 255})
		}
		for x := 40; x < 56; x++ {
			setPix(src, x, y, color.NRGBA{uint8(x * 3), uint8(y * 5), 2, 255})
		}
	}
	// Marker in the top half.
	setPix(src, 10, 10, color.NRGBA{9, 9, 9, 255})

	out, err := Normalize(src)
	if err != nil {
		t.Fatal(err)
	}
	if out.Bounds().Dx() != 64 || out.Bounds().Dy() != 64 {
		t.Fatalf("upgraded size: %v", out.Bounds())
	}

	// Top half unchanged.
	if got := getPix(out, 10, 10); got != (color.NRGBA{9, 9, 9, 255}) {
		t.Errorf("top half pixel changed: %v", got)
	}

	// Left leg slot (16,48) is the right leg region flipped horizontally.
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := getPix(src, 15-x, 16+y)
			if got := getPix(out, 16+x, 48+y); got != want {
				t.Fatalf("left leg (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
	// Left arm slot (32,48) mirrors the right arm region.
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := getPix(src, 40+(15-x), 16+y)
			if got := getPix(out, 32+x, 48+y); got != want {
				t.Fatalf("left arm (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}

	// Overlay slots below y=32 outside the copied limbs stay transparent.
	if got := getPix(out, 20, 36); got.A != 0 {
		t.Errorf("jacket overlay should stay transparent, got %v", got)
	}
}

func TestDetectVariant(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	if v := DetectVariant(img); v != rig.Slim {
		t.Errorf("transparent detect pixel: got %v, want slim", v)
	}
	setPix(img, 54, 20, color.NRGBA{1, 2, 3, 255})
	if v := DetectVariant(img); v != rig.Classic {
		t.Errorf("opaque detect pixel: got %v, want classic", v)
	}
}

func TestResolveVariant(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))

	v, err := ResolveVariant("auto", img)
	if err != nil || v != rig.Slim {
		t.Errorf("auto on slim texture: got %v, %v", v, err)
	}

	v, err = ResolveVariant("classic", img)
	if err != nil || v != rig.Classic {
		t.Errorf("explicit classic: got %v, %v", v, err)
	}

	if _, err := ResolveVariant("chunky", img); !errors.Is(err, rig.ErrInvalidModelVariant) {
		t.Errorf("want ErrInvalidModelVariant, got %v", err)
	}
}

func TestLoadPNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	setPix(img, 5, 5, color.NRGBA{200, 100, 50, 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "skin.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := getPix(out, 5, 5); got != (color.NRGBA{200, 100, 50, 255}) {
		t.Errorf("loaded pixel: got %v", got)
	}
}

// Both supported formats must route to their own decoder: TGA has no magic
// number, so a PNG must never end up in the TGA path and vice versa.
func TestDecodeFormats(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	setPix(img, 7, 9, color.NRGBA{10, 200, 30, 255})
	setPix(img, 54, 20, color.NRGBA{50, 50, 50, 255})

	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		t.Fatal(err)
	}
	var tgaBuf bytes.Buffer
	if err := tga.Encode(&tgaBuf, img); err != nil {
		t.Fatal(err)
	}

	for _, c := range []struct {
		format string
		raw    []byte
	}{
		{"png", pngBuf.Bytes()},
		{"tga", tgaBuf.Bytes()},
	} {
		out, err := Decode(c.raw)
		if err != nil {
			t.Fatalf("%s decode: %v", c.format, err)
		}
		if got := getPix(out, 7, 9); got != (color.NRGBA{10, 200, 30, 255}) {
			t.Errorf("%s pixel: got %v", c.format, got)
		}
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Error("expected decode error")
	}
}

func TestAcquireInvalidSource(t *testing.T) {
	// Too short for a username, not a file, not a URL.
	if _, err := Acquire("x"); err == nil {
		t.Error("expected error for invalid source")
	}
}
