package colour

// Named colours used by default themes and tests
// Ordered dark-to-light within each hue group
var (
	// --- Achromatic ---
	Black     = RGB{0, 0, 0}
	Obsidian  = RGB{20, 20, 30} // Blue-black
	DarkSlate = RGB{35, 36, 48} // Blue-gray near-black
	DarkGray  = RGB{60, 60, 60}
	SlateBlue = RGB{60, 80, 100}
	Gray      = RGB{120, 120, 120}
	Silver    = RGB{180, 180, 180}
	LightGray = RGB{200, 200, 200}
	White     = RGB{255, 255, 255}

	// --- Warm ---
	Red    = RGB{255, 0, 0}
	Coral  = RGB{255, 80, 80}
	Orange = RGB{255, 165, 0}
	Amber  = RGB{255, 180, 100}
	Yellow = RGB{255, 255, 0}

	// --- Cool ---
	Green     = RGB{0, 255, 0}
	LeafGreen = RGB{80, 200, 80}
	Teal      = RGB{0, 139, 139}
	SkyTeal   = RGB{100, 180, 200}
	Cyan      = RGB{0, 255, 255}
	SteelBlue = RGB{60, 100, 180}
	Blue      = RGB{0, 0, 255}
	Magenta   = RGB{255, 0, 255}
)
