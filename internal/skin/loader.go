// Package skin loads character textures and normalizes them to the 64×64
// RGBA layout the voxel pipeline expects.
package skin

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/ftrvxmtrx/tga"
)

// ErrInvalidTextureDimensions reports a texture that is neither 64×64 nor
// the legacy 64×32 layout.
var ErrInvalidTextureDimensions = errors.New("skin: invalid texture dimensions")

// Load reads and decodes a skin file (PNG or TGA) and normalizes it.
func Load(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("skin: read %s: %w", path, err)
	}
	return Decode(raw)
}

// pngMagic is the 8-byte PNG file signature.
var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Decode decodes raw PNG or TGA bytes and normalizes the result to 64×64.
// Dispatch sniffs the PNG signature directly: TGA has no magic number, so
// registry-based image.Decode cannot tell the two formats apart.
func Decode(raw []byte) (*image.NRGBA, error) {
	var img image.Image
	var err error
	if bytes.HasPrefix(raw, pngMagic) {
		img, err = png.Decode(bytes.NewReader(raw))
	} else {
		img, err = tga.Decode(bytes.NewReader(raw))
	}
	if err != nil {
		return nil, fmt.Errorf("skin: decode: %w", err)
	}
	return Normalize(toNRGBA(img))
}

// toNRGBA converts any decoded image to NRGBA format.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha channel — draw and force alpha to 255.
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 255
		}
	default:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				i := dst.PixOffset(x, y)
				dst.Pix[i] = c.R
				dst.Pix[i+1] = c.G
				dst.Pix[i+2] = c.B
				dst.Pix[i+3] = c.A
			}
		}
	}
	return dst
}
