package skin

import (
	"fmt"
	"image"
)

// Normalize validates skin dimensions and upgrades the legacy 64×32 layout
// to 64×64. The upgrade pastes the legacy texture into the top half and
// mirrors the right-limb regions into the modern left-limb slots; overlay
// slots for body and limbs stay fully transparent, which disables them.
func Normalize(img *image.NRGBA) (*image.NRGBA, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	switch {
	case w == 64 && h == 64:
		return img, nil
	case w == 64 && h == 32:
		return upgradeLegacy(img), nil
	}
	return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTextureDimensions, w, h)
}

func upgradeLegacy(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, 64, 64))

	// Top half carries over unchanged.
	for y := 0; y < 32; y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+64*4], src.Pix[y*src.Stride:y*src.Stride+64*4])
	}

	// Right leg (0,16 16×16) → left leg slot (16,48), mirrored.
	mirrorRegion(dst, src, 0, 16, 16, 16, 16, 48)
	// Right arm (40,16 16×16) → left arm slot (32,48), mirrored.
	mirrorRegion(dst, src, 40, 16, 16, 16, 32, 48)

	return dst
}

// mirrorRegion copies a w×h region horizontally flipped. The flip converts
// the right-limb unfolded box layout into a valid left-limb layout.
func mirrorRegion(dst, src *image.NRGBA, sx, sy, w, h, dx, dy int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := src.PixOffset(sx+(w-1-x), sy+y)
			di := dst.PixOffset(dx+x, dy+y)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
}
