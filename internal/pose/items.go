package pose

import "mc-skin-statue/internal/mathutil"

// Box is an untextured colored cuboid in joint-local space, used for held
// item geometry. Min/Max are corners relative to the owning joint's pivot.
type Box struct {
	Name  string
	Min   mathutil.Vec3
	Max   mathutil.Vec3
	Color [4]uint8 // RGBA
}

// Item is held geometry attached to a joint; it inherits the joint's pose
// transform so a raised arm raises the item with it.
type Item struct {
	Name  string
	Joint string
	Boxes []Box
}

// itemColors are flat tint colors per item material.
var itemColors = map[string][4]uint8{
	"wood":      {141, 118, 77, 255},
	"stone":     {131, 131, 131, 255},
	"iron":      {200, 200, 200, 255},
	"gold":      {250, 235, 41, 255},
	"diamond":   {47, 222, 216, 255},
	"netherite": {66, 60, 63, 255},
	"stick":     {105, 78, 47, 255},
	"string":    {230, 230, 230, 255},
}

// ItemMaterials lists the recognized sword materials.
var ItemMaterials = []string{"wood", "stone", "iron", "gold", "diamond", "netherite"}

// Sword builds a sword held in the right hand. The grip point is the center
// of the hand cube at the bottom of the arm; the arm spans y [armWidth-12,
// armWidth] relative to the shoulder pivot, so the hand center sits near
// y = armWidth-10.
func Sword(material string) *Item {
	blade, ok := itemColors[material]
	if !ok {
		blade = itemColors["iron"]
	}
	handle := itemColors["stick"]

	// Hand-local y=0 is the grip; boxes extend forward out of the fist.
	const handY = -8.0
	box := func(name string, min, max mathutil.Vec3, c [4]uint8) Box {
		min[1] += handY
		max[1] += handY
		return Box{Name: name, Min: min, Max: max, Color: c}
	}

	return &Item{
		Name:  "sword_" + material,
		Joint: "RightArm",
		Boxes: []Box{
			box("handle", mathutil.Vec3{1.5, -2, 1.5}, mathutil.Vec3{2.5, 3, 2.5}, handle),
			box("guard", mathutil.Vec3{0.5, 3, 1.5}, mathutil.Vec3{3.5, 4, 2.5}, blade),
			box("blade", mathutil.Vec3{1.5, 4, 1.5}, mathutil.Vec3{2.5, 12, 2.5}, blade),
		},
	}
}

// Bow builds a bow held in the right hand: a curved stack of wooden segments
// with a string box spanning the tips.
func Bow() *Item {
	wood := itemColors["wood"]
	str := itemColors["string"]

	const handY = -8.0
	box := func(name string, min, max mathutil.Vec3, c [4]uint8) Box {
		min[1] += handY
		max[1] += handY
		return Box{Name: name, Min: min, Max: max, Color: c}
	}

	return &Item{
		Name:  "bow",
		Joint: "RightArm",
		Boxes: []Box{
			box("grip", mathutil.Vec3{1.5, 1, 1.5}, mathutil.Vec3{2.5, 3, 2.5}, wood),
			box("upper1", mathutil.Vec3{1.5, 3, 1.5}, mathutil.Vec3{2.5, 5, 2}, wood),
			box("upper2", mathutil.Vec3{1.5, 5, 1}, mathutil.Vec3{2.5, 7, 1.5}, wood),
			box("lower1", mathutil.Vec3{1.5, -1, 1.5}, mathutil.Vec3{2.5, 1, 2}, wood),
			box("lower2", mathutil.Vec3{1.5, -3, 1}, mathutil.Vec3{2.5, -1, 1.5}, wood),
			box("string", mathutil.Vec3{1.8, -3, 1}, mathutil.Vec3{2.2, 7, 1.2}, str),
		},
	}
}
