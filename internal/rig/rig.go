// Package rig defines the static geometry of the character model: part
// cuboids, joint pivots and the texture regions each cuboid face reads from.
//
// World frame (lattice units, 1 block = 1 texture pixel):
//
//	X: left (-X) to right (+X), Y: ground (0) up, Z: front (0) to back (+Z)
package rig

import (
	"errors"
	"fmt"

	"mc-skin-statue/internal/mathutil"
)

// ErrInvalidModelVariant reports a model variant other than classic or slim.
var ErrInvalidModelVariant = errors.New("rig: invalid model variant")

// Variant selects the arm geometry of the model.
type Variant string

const (
	Classic Variant = "classic" // 4-wide arms
	Slim    Variant = "slim"    // 3-wide arms
)

// ParseVariant validates a variant string. "auto" must be resolved by the
// caller (see skin.DetectVariant) before the rig is built.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case Classic, Slim:
		return Variant(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidModelVariant, s)
}

// ArmWidth returns the arm cuboid width in blocks.
func (v Variant) ArmWidth() int {
	if v == Slim {
		return 3
	}
	return 4
}

// Face identifies one side of a part cuboid.
type Face int

const (
	FaceTop Face = iota
	FaceBottom
	FaceRight // +X side
	FaceFront // Z=0 side
	FaceLeft  // -X side
	FaceBack
	faceCount
)

func (f Face) String() string {
	switch f {
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	case FaceRight:
		return "right"
	case FaceFront:
		return "front"
	case FaceLeft:
		return "left"
	case FaceBack:
		return "back"
	}
	return "unknown"
}

// FaceRect is a texture rectangle in pixels.
type FaceRect struct {
	U, V, W, H int
}

// BoxUV maps each cuboid face to its texture rectangle.
type BoxUV [faceCount]FaceRect

// Rect returns the rectangle for a face.
func (b BoxUV) Rect(f Face) FaceRect { return b[f] }

// boxUV lays out the six faces of a w×h×d cuboid in the standard unfolded
// pattern anchored at texture position (u, v).
func boxUV(u, v, w, h, d int) BoxUV {
	return BoxUV{
		FaceTop:    {u + d, v, w, d},
		FaceBottom: {u + d + w, v, w, d},
		FaceRight:  {u, v + d, d, h},
		FaceFront:  {u + d, v + d, w, h},
		FaceLeft:   {u + d + w, v + d, d, h},
		FaceBack:   {u + d + w + d, v + d, w, h},
	}
}

// Joint is a pivot in the part hierarchy. Pivot is expressed relative to the
// parent joint; rotation applied at a joint carries all attached children.
type Joint struct {
	Name   string
	Parent string // "" for the root
	Pivot  mathutil.Vec3
}

// Part is one body cuboid plus its overlay shell. Origin places the cuboid's
// minimum corner relative to the owning joint's pivot. The overlay cuboid is
// the base expanded by one block on every face, sharing the joint.
type Part struct {
	Name          string
	Joint         string
	Size          [3]int // w, h, d in blocks
	Origin        mathutil.Vec3
	BaseUV        BoxUV
	OverlaySize   [3]int
	OverlayOrigin mathutil.Vec3
	OverlayUV     BoxUV
}

// Rig holds the joints (topological order, root first) and the parts in
// collision priority order: when two parts claim the same lattice cell the
// earlier part wins, so a sleeve beats the jacket at the shoulder seam.
type Rig struct {
	Variant Variant
	Joints  []Joint
	Parts   []Part
}

// New builds the fixed character rig for a variant. Only the arm cuboids and
// their UV rectangles change between classic and slim.
//
// Shoulder pivots sit at y = 24 − armWidth so that an arm rotated 90° stays
// flush with the top of the body instead of poking above the shoulder line.
func New(v Variant) (*Rig, error) {
	if _, err := ParseVariant(string(v)); err != nil {
		return nil, err
	}
	aw := v.ArmWidth()
	awf := float64(aw)

	joints := []Joint{
		{Name: "Body", Pivot: mathutil.Vec3{0, 12, 0}},
		{Name: "Head", Parent: "Body", Pivot: mathutil.Vec3{0, 12, 0}},
		{Name: "RightArm", Parent: "Body", Pivot: mathutil.Vec3{4, 12 - awf, 0}},
		{Name: "LeftArm", Parent: "Body", Pivot: mathutil.Vec3{-4, 12 - awf, 0}},
		{Name: "RightLeg", Parent: "Body", Pivot: mathutil.Vec3{2, 0, 0}},
		{Name: "LeftLeg", Parent: "Body", Pivot: mathutil.Vec3{-2, 0, 0}},
	}

	// Upright arms must still span global y 12..24. Relative to the lowered
	// shoulder pivot that range is [armWidth-12, armWidth].
	armY := awf - 12

	parts := []Part{
		{
			Name:          "Head",
			Joint:         "Head",
			Size:          [3]int{8, 8, 8},
			Origin:        mathutil.Vec3{-4, 0, -4},
			BaseUV:        boxUV(0, 0, 8, 8, 8),
			OverlaySize:   [3]int{10, 10, 10},
			OverlayOrigin: mathutil.Vec3{-5, -1, -5},
			OverlayUV:     boxUV(32, 0, 8, 8, 8),
		},
		{
			Name:          "RightArm",
			Joint:         "RightArm",
			Size:          [3]int{aw, 12, 4},
			Origin:        mathutil.Vec3{0, armY, -2},
			BaseUV:        boxUV(40, 16, aw, 12, 4),
			OverlaySize:   [3]int{aw + 2, 14, 6},
			OverlayOrigin: mathutil.Vec3{-1, armY - 1, -3},
			OverlayUV:     boxUV(40, 32, aw, 12, 4),
		},
		{
			Name:          "LeftArm",
			Joint:         "LeftArm",
			Size:          [3]int{aw, 12, 4},
			Origin:        mathutil.Vec3{-awf, armY, -2},
			BaseUV:        boxUV(32, 48, aw, 12, 4),
			OverlaySize:   [3]int{aw + 2, 14, 6},
			OverlayOrigin: mathutil.Vec3{-awf - 1, armY - 1, -3},
			OverlayUV:     boxUV(48, 48, aw, 12, 4),
		},
		{
			Name:          "RightLeg",
			Joint:         "RightLeg",
			Size:          [3]int{4, 12, 4},
			Origin:        mathutil.Vec3{-2, -12, -2},
			BaseUV:        boxUV(0, 16, 4, 12, 4),
			OverlaySize:   [3]int{6, 14, 6},
			OverlayOrigin: mathutil.Vec3{-3, -13, -3},
			OverlayUV:     boxUV(0, 32, 4, 12, 4),
		},
		{
			Name:          "LeftLeg",
			Joint:         "LeftLeg",
			Size:          [3]int{4, 12, 4},
			Origin:        mathutil.Vec3{-2, -12, -2},
			BaseUV:        boxUV(16, 48, 4, 12, 4),
			OverlaySize:   [3]int{6, 14, 6},
			OverlayOrigin: mathutil.Vec3{-3, -13, -3},
			OverlayUV:     boxUV(0, 48, 4, 12, 4),
		},
		{
			Name:          "Body",
			Joint:         "Body",
			Size:          [3]int{8, 12, 4},
			Origin:        mathutil.Vec3{-4, 0, -2},
			BaseUV:        boxUV(16, 16, 8, 12, 4),
			OverlaySize:   [3]int{10, 14, 6},
			OverlayOrigin: mathutil.Vec3{-5, -1, -3},
			OverlayUV:     boxUV(16, 32, 8, 12, 4),
		},
	}

	return &Rig{Variant: v, Joints: joints, Parts: parts}, nil
}

// Joint looks up a joint by name.
func (r *Rig) Joint(name string) (Joint, bool) {
	for _, j := range r.Joints {
		if j.Name == name {
			return j, true
		}
	}
	return Joint{}, false
}
