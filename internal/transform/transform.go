// Package transform composes the rig hierarchy and a pose into per-part
// world transforms. Each placement carries both directions: the forward
// matrix for bounding-box estimation and the inverse for sampling cells back
// into part-local space.
package transform

import (
	"fmt"

	"mc-skin-statue/internal/mathutil"
	"mc-skin-statue/internal/pose"
	"mc-skin-statue/internal/rig"
)

// Placement is one cuboid volume positioned in the world.
type Placement struct {
	Size    [3]int
	UV      rig.BoxUV
	Forward mathutil.Mat4
	Inverse mathutil.Mat4
}

// PartTransform holds the posed base and overlay volumes of one body part.
type PartTransform struct {
	Part    *rig.Part
	Base    Placement
	Overlay Placement
}

// ItemBox is a posed held-item cuboid with its flat color.
type ItemBox struct {
	Name    string
	Min     mathutil.Vec3 // local, relative to Forward's frame
	Max     mathutil.Vec3
	Color   [4]uint8
	Forward mathutil.Mat4
	Inverse mathutil.Mat4
}

// Skeleton is the fully composed result for one statue.
type Skeleton struct {
	Parts []PartTransform
	Items []ItemBox
}

// Build walks the joint hierarchy root-first, applying each joint's pose
// rotation at its pivot, and derives world placements for every part volume.
// Fails with pose.ErrInvalidPoseAngle before any matrix work if the pose
// carries an out-of-range rotation.
func Build(r *rig.Rig, p pose.Pose) (*Skeleton, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	worlds := make(map[string]mathutil.Mat4, len(r.Joints))
	for _, j := range r.Joints {
		jp := p.Joints[j.Name]

		pivot := j.Pivot
		if jp.Pivot != nil {
			pivot = *jp.Pivot
		}

		q := mathutil.EulerToQuat(
			mathutil.Deg2Rad(jp.Rotation[0]),
			mathutil.Deg2Rad(jp.Rotation[1]),
			mathutil.Deg2Rad(jp.Rotation[2]),
		)
		local := mathutil.FromMat3Translation(mathutil.QuatToMat3(q), pivot)

		if j.Parent == "" {
			worlds[j.Name] = local
			continue
		}
		pw, ok := worlds[j.Parent]
		if !ok {
			return nil, fmt.Errorf("transform: joint %q before its parent %q", j.Name, j.Parent)
		}
		worlds[j.Name] = mathutil.Mat4Mul(pw, local)
	}

	sk := &Skeleton{Parts: make([]PartTransform, 0, len(r.Parts))}
	for i := range r.Parts {
		part := &r.Parts[i]
		jw, ok := worlds[part.Joint]
		if !ok {
			return nil, fmt.Errorf("transform: part %q references unknown joint %q", part.Name, part.Joint)
		}
		sk.Parts = append(sk.Parts, PartTransform{
			Part:    part,
			Base:    place(jw, part.Origin, part.Size, part.BaseUV),
			Overlay: place(jw, part.OverlayOrigin, part.OverlaySize, part.OverlayUV),
		})
	}

	if p.Item != nil {
		jw, ok := worlds[p.Item.Joint]
		if !ok {
			return nil, fmt.Errorf("transform: item %q references unknown joint %q", p.Item.Name, p.Item.Joint)
		}
		inv := jw.InvertAffine()
		for _, b := range p.Item.Boxes {
			sk.Items = append(sk.Items, ItemBox{
				Name:    b.Name,
				Min:     b.Min,
				Max:     b.Max,
				Color:   b.Color,
				Forward: jw,
				Inverse: inv,
			})
		}
	}

	return sk, nil
}

// place anchors a cuboid's minimum corner at origin within the joint frame.
func place(joint mathutil.Mat4, origin mathutil.Vec3, size [3]int, uv rig.BoxUV) Placement {
	fwd := mathutil.Mat4Mul(joint, mathutil.Mat4Translation(origin))
	return Placement{
		Size:    size,
		UV:      uv,
		Forward: fwd,
		Inverse: fwd.InvertAffine(),
	}
}

// AABB returns the world axis-aligned bounds of the placement's cuboid by
// transforming its 8 corners.
func (pl Placement) AABB() (min, max mathutil.Vec3) {
	return boxAABB(pl.Forward, mathutil.Vec3{}, mathutil.Vec3{
		float64(pl.Size[0]), float64(pl.Size[1]), float64(pl.Size[2]),
	})
}

// AABB returns the world bounds of the item box.
func (ib ItemBox) AABB() (min, max mathutil.Vec3) {
	return boxAABB(ib.Forward, ib.Min, ib.Max)
}

func boxAABB(m mathutil.Mat4, lo, hi mathutil.Vec3) (min, max mathutil.Vec3) {
	first := true
	for _, x := range [2]float64{lo[0], hi[0]} {
		for _, y := range [2]float64{lo[1], hi[1]} {
			for _, z := range [2]float64{lo[2], hi[2]} {
				w := m.MulPoint(mathutil.Vec3{x, y, z})
				if first {
					min, max = w, w
					first = false
					continue
				}
				for i := 0; i < 3; i++ {
					if w[i] < min[i] {
						min[i] = w[i]
					}
					if w[i] > max[i] {
						max[i] = w[i]
					}
				}
			}
		}
	}
	return min, max
}
