// Package preview renders a voxel set to a flat orthographic front view so
// a statue can be eyeballed without loading the export anywhere.
package preview

import (
	"fmt"
	"image"
	"os"

	"github.com/HugoSmits86/nativewebp"

	"mc-skin-statue/internal/palette"
	"mc-skin-statue/internal/voxel"
)

// Render draws the front view of a set. Each block becomes a blockPx×blockPx
// square; columns are filled back-to-front so the nearest voxel wins, with a
// slight depth darkening so limbs read against the body. The image is
// mirrored in X to match looking at the statue from the front.
func Render(s *voxel.Set, pal palette.Palette, blockPx int) *image.NRGBA {
	min, max, ok := s.Bounds()
	if !ok {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}
	if blockPx < 1 {
		blockPx = 1
	}

	dx := max.X - min.X + 1
	dy := max.Y - min.Y + 1
	dz := max.Z - min.Z + 1
	img := image.NewNRGBA(image.Rect(0, 0, dx*blockPx, dy*blockPx))

	colors := make(map[string][3]uint8, len(pal.Entries))
	for _, e := range pal.Entries {
		colors[e.ID] = e.RGB
	}

	for z := max.Z; z >= min.Z; z-- {
		s.Each(func(c voxel.Coord, id string) {
			if c.Z != z {
				return
			}
			rgb := colors[id]
			shade := 1.0
			if dz > 1 {
				shade = 1 - 0.25*float64(c.Z-min.Z)/float64(dz-1)
			}
			px := (max.X - c.X) * blockPx
			py := (max.Y - c.Y) * blockPx
			fill(img, px, py, blockPx,
				uint8(float64(rgb[0])*shade),
				uint8(float64(rgb[1])*shade),
				uint8(float64(rgb[2])*shade))
		})
	}
	return img
}

func fill(img *image.NRGBA, x0, y0, size int, r, g, b uint8) {
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 255
		}
	}
}

// WriteWebP encodes the preview image to a WebP file.
func WriteWebP(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: create %s: %w", path, err)
	}
	defer f.Close()
	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("preview: encode %s: %w", path, err)
	}
	return nil
}
