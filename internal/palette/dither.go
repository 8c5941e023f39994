package palette

// bayer8 is the 8×8 ordered dithering threshold matrix, normalized to 0..1.
var bayer8 = [8][8]float64{
	{0, 32, 8, 40, 2, 34, 10, 42},
	{48, 16, 56, 24, 50, 18, 58, 26},
	{12, 44, 4, 36, 14, 46, 6, 38},
	{60, 28, 52, 20, 62, 30, 54, 22},
	{3, 35, 11, 43, 1, 33, 9, 41},
	{51, 19, 59, 27, 49, 17, 57, 25},
	{15, 47, 7, 39, 13, 45, 5, 37},
	{63, 31, 55, 23, 61, 29, 53, 21},
}

// DitherStrength is the default RGB shift magnitude for ordered dithering.
const DitherStrength = 32.0

// Dither shifts a color by the Bayer threshold at the voxel's lattice
// position before matching, breaking up flat banding across large
// single-color regions. Indexing folds x and z together so side faces get
// the same pattern density as the front.
func Dither(r, g, b uint8, x, y, z int, strength float64) (uint8, uint8, uint8) {
	bx := (((x ^ z) % 8) + 8) % 8
	by := ((y % 8) + 8) % 8
	offset := (bayer8[by][bx]/64.0 - 0.5) * strength
	return clamp8(float64(r) + offset), clamp8(float64(g) + offset), clamp8(float64(b) + offset)
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
