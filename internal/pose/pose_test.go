package pose

import (
	"errors"
	"sort"
	"testing"

	"mc-skin-statue/internal/mathutil"
)

func TestGetKnownPoses(t *testing.T) {
	for _, name := range Names() {
		p, err := Get(name)
		if err != nil {
			t.Errorf("Get(%q): %v", name, err)
		}
		if p.Name != name {
			t.Errorf("Get(%q).Name = %q", name, p.Name)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("builtin pose %q fails validation: %v", name, err)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("backflip"); !errors.Is(err, ErrUnknownPose) {
		t.Errorf("want ErrUnknownPose, got %v", err)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("empty pose library")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
}

func TestValidateAngleBounds(t *testing.T) {
	cases := []struct {
		angle float64
		ok    bool
	}{
		{-180, true},
		{180, true},
		{0, true},
		{180.5, false},
		{-181, false},
		{720, false},
	}
	for _, c := range cases {
		p := Pose{Name: "test", Joints: map[string]JointPose{
			"Head": {Rotation: mathutil.Vec3{c.angle, 0, 0}},
		}}
		err := p.Validate()
		if c.ok && err != nil {
			t.Errorf("angle %g: unexpected error %v", c.angle, err)
		}
		if !c.ok && !errors.Is(err, ErrInvalidPoseAngle) {
			t.Errorf("angle %g: want ErrInvalidPoseAngle, got %v", c.angle, err)
		}
	}
}

func TestResolvePlainName(t *testing.T) {
	p, err := Resolve("walking")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "walking" || p.Item != nil {
		t.Errorf("got %q item %v, want walking without item", p.Name, p.Item)
	}
}

func TestResolveSwordMaterial(t *testing.T) {
	p, err := Resolve("sword_charge_diamond")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "sword_charge" {
		t.Errorf("base stance: got %q", p.Name)
	}
	if p.Item == nil || p.Item.Name != "sword_diamond" {
		t.Fatalf("item: got %+v, want sword_diamond", p.Item)
	}
	if p.Item.Joint != "RightArm" {
		t.Errorf("item joint: got %q", p.Item.Joint)
	}
}

func TestResolveDefaultItems(t *testing.T) {
	p, err := Resolve("sword_charge")
	if err != nil {
		t.Fatal(err)
	}
	if p.Item == nil || p.Item.Name != "sword_iron" {
		t.Errorf("sword_charge default item: got %+v", p.Item)
	}

	p, err = Resolve("bow_draw")
	if err != nil {
		t.Fatal(err)
	}
	if p.Item == nil || p.Item.Name != "bow" {
		t.Errorf("bow_draw default item: got %+v", p.Item)
	}
}

func TestResolveUnknown(t *testing.T) {
	for _, sel := range []string{"sword_charge_emerald", "nope", ""} {
		if _, err := Resolve(sel); !errors.Is(err, ErrUnknownPose) {
			t.Errorf("Resolve(%q): want ErrUnknownPose, got %v", sel, err)
		}
	}
}

func TestSwordUnknownMaterialFallsBack(t *testing.T) {
	it := Sword("emerald")
	if it.Name != "sword_emerald" {
		t.Errorf("name: got %q", it.Name)
	}
	// Blade color falls back to iron.
	var blade *Box
	for i := range it.Boxes {
		if it.Boxes[i].Name == "blade" {
			blade = &it.Boxes[i]
		}
	}
	if blade == nil {
		t.Fatal("no blade box")
	}
	if blade.Color != itemColors["iron"] {
		t.Errorf("blade color: got %v, want iron fallback", blade.Color)
	}
}

func TestItemBoxesWellFormed(t *testing.T) {
	items := []*Item{Sword("iron"), Bow()}
	for _, it := range items {
		if len(it.Boxes) == 0 {
			t.Errorf("%s: no boxes", it.Name)
		}
		for _, b := range it.Boxes {
			for i := 0; i < 3; i++ {
				if b.Min[i] >= b.Max[i] {
					t.Errorf("%s/%s: degenerate axis %d (%g >= %g)", it.Name, b.Name, i, b.Min[i], b.Max[i])
				}
			}
			if b.Color[3] == 0 {
				t.Errorf("%s/%s: transparent color", it.Name, b.Name)
			}
		}
	}
}
