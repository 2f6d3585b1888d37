package character

// Palettes lists the palettes that have no editable sprites
var Palettes = []Descriptor{
	// Emerl's sprites are built from the other characters
	{Name: "Emerl", PaletteOffset: 0x47ab38},
	{Name: "Phi", PaletteOffset: 0x47ab78},
	{Name: "DustCloud", PaletteOffset: 0xbf2058},
	{Name: "SonicMine", PaletteOffset: 0xbf20d8},
	{Name: "TailsBlaster", PaletteOffset: 0xbf2098},
	{Name: "Shield", PaletteOffset: 0xbf2078},
}

// Characters lists every character with editable sprites
var Characters = []Descriptor{
	{
		Name:          "Sonic",
		PaletteOffset: 0x47afb8,
		SpriteOffset:  0x47afd8,
		Frames: []int{8, 4, 8, 4, 8, 4, 4, 4, 8, 4, 8, 8, 8, 8, 16, 12, 12, 8, 12, 8, 8, 16, 8, 12,
			8, 8, 4, 8, 4, 4, 8, 8, 4, 8, 4, 8, 4, 4},
	},
	{
		Name:          "Knuckles",
		PaletteOffset: 0x4cadd8,
		SpriteOffset:  0x4cadf8,
		Frames: []int{8, 4, 8, 4, 8, 4, 4, 4, 8, 4, 8, 8, 8, 12, 16, 12, 12, 8, 12, 8, 8, 8, 8, 8,
			12, 8, 8, 4, 8, 8, 12, 8, 4, 8, 4, 4, 8, 8, 4, 8, 4, 4, 8, 4, 4},
	},
	{
		Name:          "Tails",
		PaletteOffset: 0x5283f8,
		SpriteOffset:  0x528418,
		Frames: []int{8, 4, 8, 4, 8, 4, 4, 4, 8, 4, 8, 8, 8, 8, 28, 12, 12, 8, 8, 8, 8, 20, 8, 20,
			16, 8, 8, 4, 8, 8, 8, 8, 4, 8, 8, 4, 8, 8, 8, 8, 8, 4, 4},
	},
	{
		Name:          "Shadow",
		PaletteOffset: 0x58d818,
		SpriteOffset:  0x58d838,
		Frames: []int{8, 4, 28, 12, 8, 4, 4, 8, 8, 8, 4, 8, 8, 8, 12, 24, 16, 20, 8, 4, 8, 12, 12,
			8, 24, 8, 12, 8, 4, 8, 4, 4, 8, 8, 12, 4, 4, 4, 4, 4},
	},
	{
		Name:          "Rouge",
		PaletteOffset: 0x5f3e38,
		SpriteOffset:  0x5f3e58,
		Frames: []int{8, 4, 8, 4, 8, 4, 8, 4, 8, 4, 8, 12, 16, 12, 8, 8, 12, 8, 4, 12, 8, 4, 8, 4,
			4, 8, 8, 12, 4, 4, 4, 4, 4},
	},
	{
		Name:          "Amy",
		PaletteOffset: 0x636458,
		SpriteOffset:  0x636478,
		Frames: []int{8, 4, 8, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 8, 8, 16, 16, 8, 8, 12, 12, 8, 8, 8,
			12, 8, 4, 8, 8, 8, 8, 8, 4, 4, 8, 4, 4},
	},
	{
		Name:          "E-102",
		PaletteOffset: 0x681a78,
		SpriteOffset:  0x681a98,
		Frames: []int{8, 4, 8, 4, 4, 4, 4, 4, 4, 8, 4, 8, 8, 8, 12, 16, 12, 12, 8, 12, 8, 8, 16,
			12, 12, 16, 12, 12, 28, 4, 4, 20, 40, 4, 8, 4, 4, 4, 4, 8, 4, 4, 8, 4, 8, 4, 4},
	},
	{
		Name:          "Cream",
		PaletteOffset: 0x6f6a98,
		SpriteOffset:  0x6f6ab8,
		Frames: []int{8, 4, 20, 4, 4, 8, 8, 12, 8, 8, 8, 16, 8, 12, 8, 16, 12, 4, 16, 12, 4, 8, 4,
			4},
	},
	{
		Name:          "Chaos",
		PaletteOffset: 0x7336b8,
		SpriteOffset:  0x7336d8,
		Frames: []int{8, 4, 8, 8, 12, 4, 8, 8, 4, 8, 8, 12, 16, 16, 8, 8, 8, 8, 20, 8, 8, 12, 8, 4,
			8, 8, 8, 8, 8, 4, 4, 8, 4, 4},
	},
	{
		Name:          "Eggman",
		PaletteOffset: 0x7822d8,
		SpriteOffset:  0x7822f8,
		Frames:        []int{4, 4, 4, 4, 4},
	},
}
