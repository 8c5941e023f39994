// Package pose holds the named stance library. A pose assigns per-joint Euler
// rotations (degrees) and optional pivot overrides; joints without an entry
// keep the rig's default standing orientation.
package pose

import (
	"errors"
	"fmt"
	"sort"

	"mc-skin-statue/internal/mathutil"
)

var (
	// ErrUnknownPose reports a pose name missing from the library.
	ErrUnknownPose = errors.New("pose: unknown pose")
	// ErrInvalidPoseAngle reports a rotation outside [-180, 180] degrees.
	ErrInvalidPoseAngle = errors.New("pose: angle out of range")
)

// JointPose is the rigid offset for one joint: Euler rotation in degrees
// (X, Y, Z, composed Rz·Ry·Rx) around the joint pivot, plus an optional
// absolute pivot replacement.
type JointPose struct {
	Rotation mathutil.Vec3
	Pivot    *mathutil.Vec3
}

// Pose is a read-only stance template. Item is non-nil when the stance holds
// something in a hand.
type Pose struct {
	Name   string
	Joints map[string]JointPose
	Item   *Item
}

// Validate checks every rotation against the [-180, 180] per-axis bound.
func (p Pose) Validate() error {
	for joint, jp := range p.Joints {
		for axis, deg := range jp.Rotation {
			if deg < -180 || deg > 180 {
				return fmt.Errorf("%w: %s axis %d = %g", ErrInvalidPoseAngle, joint, axis, deg)
			}
		}
	}
	return nil
}

func rot(x, y, z float64) JointPose {
	return JointPose{Rotation: mathutil.Vec3{x, y, z}}
}

// library holds the built-in stances. Angles follow the world frame of the
// rig: positive X tips forward joints backward, Z swings arms sideways.
var library = map[string]Pose{
	"standing": {Name: "standing", Joints: map[string]JointPose{}},
	"t_pose": {Name: "t_pose", Joints: map[string]JointPose{
		// Shoulder pivots are already lowered by the rig, so a plain
		// ±90° swing leaves the arm tops flush with the body top.
		"RightArm": rot(0, 0, 90),
		"LeftArm":  rot(0, 0, -90),
	}},
	"walking": {Name: "walking", Joints: map[string]JointPose{
		"RightArm": rot(30, 0, 0),
		"LeftArm":  rot(-30, 0, 0),
		"RightLeg": rot(-25, 0, 0),
		"LeftLeg":  rot(25, 0, 0),
	}},
	"running": {Name: "running", Joints: map[string]JointPose{
		"Body":     rot(12, 0, 0),
		"Head":     rot(-12, 0, 0),
		"RightArm": rot(50, 0, 0),
		"LeftArm":  rot(-50, 0, 0),
		"RightLeg": rot(-45, 0, 0),
		"LeftLeg":  rot(45, 0, 0),
	}},
	"sitting": {Name: "sitting", Joints: map[string]JointPose{
		"RightLeg": rot(-90, 0, 0),
		"LeftLeg":  rot(-90, 0, 0),
		"RightArm": rot(-20, 0, 0),
		"LeftArm":  rot(-20, 0, 0),
	}},
	"crouching": {Name: "crouching", Joints: map[string]JointPose{
		"Body":     rot(25, 0, 0),
		"Head":     rot(-25, 0, 0),
		"RightLeg": rot(-50, 0, 0),
		"LeftLeg":  rot(-50, 0, 0),
		"RightArm": rot(-15, 0, 0),
		"LeftArm":  rot(-15, 0, 0),
	}},
	"waving": {Name: "waving", Joints: map[string]JointPose{
		"RightArm": rot(0, 0, 160),
		"Head":     rot(0, -10, 0),
	}},
	"sword_charge": {Name: "sword_charge", Joints: map[string]JointPose{
		"RightArm": rot(-90, 0, 0),
		"LeftArm":  rot(-20, 0, -10),
		"Body":     rot(0, -15, 0),
	}},
	"bow_draw": {Name: "bow_draw", Joints: map[string]JointPose{
		"RightArm": rot(-90, 0, 0),
		"LeftArm":  rot(-90, 0, 0),
		"Head":     rot(0, -5, 0),
	}},
}

// Get returns the named pose or ErrUnknownPose. The returned template must
// not be mutated.
func Get(name string) (Pose, error) {
	p, ok := library[name]
	if !ok {
		return Pose{}, fmt.Errorf("%w: %q", ErrUnknownPose, name)
	}
	return p, nil
}

// Names lists the known pose names, sorted.
func Names() []string {
	names := make([]string, 0, len(library))
	for n := range library {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
