package palette

import "fmt"

// Builtin palettes with approximate average block colors. "mixed" is the
// concatenation of all three families.
var builtin = map[string][]Entry{
	"concrete": {
		{ID: "minecraft:white_concrete", RGB: [3]uint8{207, 213, 214}},
		{ID: "minecraft:orange_concrete", RGB: [3]uint8{224, 97, 1}},
		{ID: "minecraft:magenta_concrete", RGB: [3]uint8{169, 48, 159}},
		{ID: "minecraft:light_blue_concrete", RGB: [3]uint8{35, 137, 199}},
		{ID: "minecraft:yellow_concrete", RGB: [3]uint8{241, 175, 21}},
		{ID: "minecraft:lime_concrete", RGB: [3]uint8{94, 169, 24}},
		{ID: "minecraft:pink_concrete", RGB: [3]uint8{213, 101, 143}},
		{ID: "minecraft:gray_concrete", RGB: [3]uint8{54, 57, 61}},
		{ID: "minecraft:light_gray_concrete", RGB: [3]uint8{125, 125, 115}},
		{ID: "minecraft:cyan_concrete", RGB: [3]uint8{21, 119, 136}},
		{ID: "minecraft:purple_concrete", RGB: [3]uint8{100, 31, 156}},
		{ID: "minecraft:blue_concrete", RGB: [3]uint8{44, 46, 143}},
		{ID: "minecraft:brown_concrete", RGB: [3]uint8{96, 59, 31}},
		{ID: "minecraft:green_concrete", RGB: [3]uint8{73, 91, 36}},
		{ID: "minecraft:red_concrete", RGB: [3]uint8{142, 32, 32}},
		{ID: "minecraft:black_concrete", RGB: [3]uint8{8, 10, 15}},
	},
	"wool": {
		{ID: "minecraft:white_wool", RGB: [3]uint8{233, 236, 236}},
		{ID: "minecraft:orange_wool", RGB: [3]uint8{240, 118, 19}},
		{ID: "minecraft:magenta_wool", RGB: [3]uint8{189, 68, 179}},
		{ID: "minecraft:light_blue_wool", RGB: [3]uint8{58, 175, 217}},
		{ID: "minecraft:yellow_wool", RGB: [3]uint8{248, 197, 39}},
		{ID: "minecraft:lime_wool", RGB: [3]uint8{112, 185, 25}},
		{ID: "minecraft:pink_wool", RGB: [3]uint8{237, 141, 172}},
		{ID: "minecraft:gray_wool", RGB: [3]uint8{62, 68, 71}},
		{ID: "minecraft:light_gray_wool", RGB: [3]uint8{142, 142, 134}},
		{ID: "minecraft:cyan_wool", RGB: [3]uint8{21, 137, 145}},
		{ID: "minecraft:purple_wool", RGB: [3]uint8{121, 42, 172}},
		{ID: "minecraft:blue_wool", RGB: [3]uint8{53, 57, 157}},
		{ID: "minecraft:brown_wool", RGB: [3]uint8{114, 71, 40}},
		{ID: "minecraft:green_wool", RGB: [3]uint8{84, 109, 27}},
		{ID: "minecraft:red_wool", RGB: [3]uint8{160, 39, 34}},
		{ID: "minecraft:black_wool", RGB: [3]uint8{20, 21, 25}},
	},
	"terracotta": {
		{ID: "minecraft:terracotta", RGB: [3]uint8{152, 93, 67}},
		{ID: "minecraft:white_terracotta", RGB: [3]uint8{209, 177, 161}},
		{ID: "minecraft:orange_terracotta", RGB: [3]uint8{160, 83, 37}},
		{ID: "minecraft:magenta_terracotta", RGB: [3]uint8{149, 87, 108}},
		{ID: "minecraft:light_blue_terracotta", RGB: [3]uint8{112, 108, 138}},
		{ID: "minecraft:yellow_terracotta", RGB: [3]uint8{186, 133, 36}},
		{ID: "minecraft:lime_terracotta", RGB: [3]uint8{103, 117, 53}},
		{ID: "minecraft:pink_terracotta", RGB: [3]uint8{160, 77, 78}},
		{ID: "minecraft:gray_terracotta", RGB: [3]uint8{57, 41, 35}},
		{ID: "minecraft:light_gray_terracotta", RGB: [3]uint8{135, 107, 98}},
		{ID: "minecraft:cyan_terracotta", RGB: [3]uint8{87, 92, 92}},
		{ID: "minecraft:purple_terracotta", RGB: [3]uint8{118, 69, 86}},
		{ID: "minecraft:blue_terracotta", RGB: [3]uint8{74, 60, 91}},
		{ID: "minecraft:brown_terracotta", RGB: [3]uint8{77, 51, 36}},
		{ID: "minecraft:green_terracotta", RGB: [3]uint8{76, 82, 42}},
		{ID: "minecraft:red_terracotta", RGB: [3]uint8{142, 60, 46}},
		{ID: "minecraft:black_terracotta", RGB: [3]uint8{37, 22, 16}},
	},
}

// Builtin returns a named built-in palette: concrete, wool, terracotta, or
// mixed.
func Builtin(name string) (Palette, error) {
	if name == "mixed" {
		var entries []Entry
		for _, family := range []string{"concrete", "wool", "terracotta"} {
			entries = append(entries, builtin[family]...)
		}
		return Palette{Name: "mixed", Entries: entries}, nil
	}
	entries, ok := builtin[name]
	if !ok {
		return Palette{}, fmt.Errorf("palette: unknown builtin palette %q", name)
	}
	return Palette{Name: name, Entries: entries}, nil
}

// BuiltinNames lists the selectable built-in palette names.
func BuiltinNames() []string {
	return []string{"mixed", "concrete", "wool", "terracotta"}
}
