package pose

import "strings"

// Resolve turns a user-facing pose selector into a structured pose. Plain
// names resolve directly; composite tags like "sword_charge_diamond" or
// "bow_draw" attach held-item geometry to the base stance. The item variant
// never changes the body transform, only the attached geometry.
func Resolve(selector string) (Pose, error) {
	if p, err := Get(selector); err == nil {
		return withDefaultItem(p), nil
	}

	// sword_charge_<material>
	if rest, ok := strings.CutPrefix(selector, "sword_charge_"); ok {
		for _, m := range ItemMaterials {
			if rest == m {
				p, err := Get("sword_charge")
				if err != nil {
					return Pose{}, err
				}
				p.Item = Sword(m)
				return p, nil
			}
		}
	}

	_, err := Get(selector) // canonical ErrUnknownPose
	return Pose{}, err
}

// withDefaultItem fills in the implied item for stances that always hold one.
func withDefaultItem(p Pose) Pose {
	if p.Item != nil {
		return p
	}
	switch p.Name {
	case "sword_charge":
		p.Item = Sword("iron")
	case "bow_draw":
		p.Item = Bow()
	}
	return p
}
