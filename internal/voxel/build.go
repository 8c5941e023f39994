package voxel

import (
	"image"

	"mc-skin-statue/internal/palette"
	"mc-skin-statue/internal/pose"
	"mc-skin-statue/internal/rig"
	"mc-skin-statue/internal/transform"
)

// Options control one statue build.
type Options struct {
	Solid  bool // keep interior voxels
	Dither bool // ordered-dither colors before matching
}

// Build runs the full pipeline for one skin: pose transforms, per-part
// two-layer voxelization, priority union, held items, optional hollowing
// and grounding. The skin must already be normalized to 64×64.
func Build(skin *image.NRGBA, r *rig.Rig, p pose.Pose, m *palette.Matcher, opts Options) (*Set, error) {
	sk, err := transform.Build(r, p)
	if err != nil {
		return nil, err
	}

	vx := &Voxelizer{Skin: skin, Matcher: m, Dither: opts.Dither}

	sets := make([]*Set, 0, len(sk.Parts)+len(sk.Items))
	for _, pt := range sk.Parts {
		base := vx.Placement(pt.Base)
		overlay := vx.Placement(pt.Overlay)
		sets = append(sets, MergeLayers(base, overlay))
	}
	for _, ib := range sk.Items {
		sets = append(sets, vx.Item(ib))
	}

	merged := Union(sets)
	if !opts.Solid {
		merged = Hollow(merged)
	}
	return Ground(merged), nil
}
