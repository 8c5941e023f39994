package voxel

import (
	"image"
	"math"

	"mc-skin-statue/internal/mathutil"
	"mc-skin-statue/internal/palette"
	"mc-skin-statue/internal/rig"
	"mc-skin-statue/internal/transform"
)

// sampleEps is the face-probe offset from the cell center, in blocks. The
// six probes must stay inside the cell (< 0.5) while reaching far enough
// that a 1-block shell rotated off-axis cannot pass between the centers of
// two adjacent cells.
const sampleEps = 0.45

// sampleOffsets are the 7 probe points per cell: the exact center first,
// then one probe toward each face. Order is fixed so the first hit is
// always the probe closest to the center, keeping color assignment
// deterministic when several probes strike different faces.
var sampleOffsets = [7]mathutil.Vec3{
	{0, 0, 0},
	{-sampleEps, 0, 0},
	{sampleEps, 0, 0},
	{0, -sampleEps, 0},
	{0, sampleEps, 0},
	{0, 0, -sampleEps},
	{0, 0, sampleEps},
}

// Voxelizer inverse-maps lattice cells through posed part volumes against
// the skin texture.
type Voxelizer struct {
	Skin    *image.NRGBA
	Matcher *palette.Matcher
	Dither  bool
}

// Placement voxelizes one posed cuboid volume. For every candidate cell in
// the volume's padded world bounds, the 7 probes are pulled back into the
// part's local frame; a cell is occupied as soon as any probe lands inside
// the cuboid and reads a non-transparent texel. A single-probe test misses
// thin rotated shells between adjacent cells — the extra probes are what
// closes those cracks, at the cost of occupying slightly generously.
func (vx *Voxelizer) Placement(pl transform.Placement) *Set {
	set := NewSet()
	lo, hi := pl.AABB()
	x0, x1 := int(math.Floor(lo[0]))-1, int(math.Ceil(hi[0]))+1
	y0, y1 := int(math.Floor(lo[1]))-1, int(math.Ceil(hi[1]))+1
	z0, z1 := int(math.Floor(lo[2]))-1, int(math.Ceil(hi[2]))+1

	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			for z := z0; z < z1; z++ {
				center := mathutil.Vec3{float64(x) + 0.5, float64(y) + 0.5, float64(z) + 0.5}
				for _, off := range sampleOffsets {
					local := pl.Inverse.MulPoint(center.Add(off))
					if !insideBox(local, pl.Size) {
						continue
					}
					r, g, b, a := vx.sampleFace(pl, local)
					if a == 0 {
						// Transparent texel does not occupy even though the
						// probe is geometrically inside; try the next probe.
						continue
					}
					set.Put(Coord{x, y, z}, vx.material(r, g, b, x, y, z))
					break
				}
			}
		}
	}
	return set
}

// Item voxelizes a posed held-item cuboid with its flat color.
func (vx *Voxelizer) Item(ib transform.ItemBox) *Set {
	set := NewSet()
	lo, hi := ib.AABB()
	x0, x1 := int(math.Floor(lo[0]))-1, int(math.Ceil(hi[0]))+1
	y0, y1 := int(math.Floor(lo[1]))-1, int(math.Ceil(hi[1]))+1
	z0, z1 := int(math.Floor(lo[2]))-1, int(math.Ceil(hi[2]))+1

	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			for z := z0; z < z1; z++ {
				center := mathutil.Vec3{float64(x) + 0.5, float64(y) + 0.5, float64(z) + 0.5}
				for _, off := range sampleOffsets {
					local := ib.Inverse.MulPoint(center.Add(off))
					if local[0] < ib.Min[0] || local[0] >= ib.Max[0] ||
						local[1] < ib.Min[1] || local[1] >= ib.Max[1] ||
						local[2] < ib.Min[2] || local[2] >= ib.Max[2] {
						continue
					}
					c := ib.Color
					set.Put(Coord{x, y, z}, vx.material(c[0], c[1], c[2], x, y, z))
					break
				}
			}
		}
	}
	return set
}

func (vx *Voxelizer) material(r, g, b uint8, x, y, z int) string {
	if vx.Dither {
		r, g, b = palette.Dither(r, g, b, x, y, z, palette.DitherStrength)
	}
	return vx.Matcher.Match(r, g, b)
}

func insideBox(l mathutil.Vec3, size [3]int) bool {
	return l[0] >= 0 && l[0] < float64(size[0]) &&
		l[1] >= 0 && l[1] < float64(size[1]) &&
		l[2] >= 0 && l[2] < float64(size[2])
}

// sampleFace projects a local point to the nearest cuboid face, maps the
// surface coordinate through that face's texture rectangle and reads the
// texel. Overlay cuboids are larger than their texture region, so the face
// coordinate is scaled nearest-neighbor onto the rectangle; for base
// cuboids the scale is exactly 1 and the mapping is pixel-perfect.
func (vx *Voxelizer) sampleFace(pl transform.Placement, l mathutil.Vec3) (r, g, b, a uint8) {
	w := float64(pl.Size[0])
	h := float64(pl.Size[1])
	d := float64(pl.Size[2])
	lx, ly, lz := l[0], l[1], l[2]

	face := rig.FaceTop
	best := h - ly
	if ly < best {
		face, best = rig.FaceBottom, ly
	}
	if w-lx < best {
		face, best = rig.FaceRight, w-lx
	}
	if lx < best {
		face, best = rig.FaceLeft, lx
	}
	if lz < best {
		face, best = rig.FaceFront, lz
	}
	if d-lz < best {
		face = rig.FaceBack
	}

	// Surface coordinate and the face's span on the cuboid. Texture v grows
	// downward, so side faces flip y.
	var u, v, spanU, spanV float64
	switch face {
	case rig.FaceTop, rig.FaceBottom:
		u, v, spanU, spanV = lx, lz, w, d
	case rig.FaceFront, rig.FaceBack:
		u, v, spanU, spanV = lx, h-ly, w, h
	default: // left, right
		u, v, spanU, spanV = lz, h-ly, d, h
	}

	rect := pl.UV.Rect(face)
	tu := rect.U + clampIdx(int(u*float64(rect.W)/spanU), rect.W)
	tv := rect.V + clampIdx(int(v*float64(rect.H)/spanV), rect.H)

	bounds := vx.Skin.Bounds()
	if tu < bounds.Min.X || tu >= bounds.Max.X || tv < bounds.Min.Y || tv >= bounds.Max.Y {
		return 0, 0, 0, 0
	}
	i := vx.Skin.PixOffset(tu, tv)
	pix := vx.Skin.Pix
	return pix[i], pix[i+1], pix[i+2], pix[i+3]
}

func clampIdx(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
