package skin

import (
	"image"

	"mc-skin-statue/internal/rig"
)

// detectPixel is inside the right arm's back face on classic skins and
// outside the narrower slim arm region, so slim skins leave it transparent.
var detectPixel = image.Point{X: 54, Y: 20}

// DetectVariant resolves the "auto" model variant by inspecting the
// signature pixel's alpha channel. Runs on a normalized 64×64 texture.
func DetectVariant(img *image.NRGBA) rig.Variant {
	i := img.PixOffset(detectPixel.X, detectPixel.Y)
	if i >= 0 && i+3 < len(img.Pix) && img.Pix[i+3] == 0 {
		return rig.Slim
	}
	return rig.Classic
}

// ResolveVariant maps a user-facing variant string (classic/slim/auto) to a
// concrete variant, consulting the texture only for "auto".
func ResolveVariant(s string, img *image.NRGBA) (rig.Variant, error) {
	if s == "auto" {
		return DetectVariant(img), nil
	}
	return rig.ParseVariant(s)
}
