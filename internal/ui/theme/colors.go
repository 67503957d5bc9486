package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Garden palette: dark soil surfaces, leaf and bloom accents.
var (
	BG            = rl.NewColor(0x16, 0x1B, 0x16, 255) // #161B16
	Panel         = rl.NewColor(0x1F, 0x26, 0x1E, 255) // #1F261E
	PanelRaised   = rl.NewColor(0x27, 0x30, 0x25, 255) // #273025
	Border        = rl.NewColor(0x36, 0x44, 0x33, 255) // #364433
	Divider       = rl.NewColor(0x2C, 0x37, 0x2A, 255)
	TextPrimary   = rl.NewColor(0xEC, 0xE9, 0xDC, 255) // #ECE9DC
	TextSecondary = rl.NewColor(0xB0, 0xB8, 0xA6, 255)
	TextMuted     = rl.NewColor(0x80, 0x8A, 0x7A, 255)
	AccentLeaf    = rl.NewColor(0x4F, 0xB0, 0x5C, 255) // #4FB05C
	AccentBloom   = rl.NewColor(0xE0, 0x7A, 0xA8, 255) // #E07AA8
	AccentWater   = rl.NewColor(0x4A, 0x9B, 0xD1, 255)
	WarningAmber  = rl.NewColor(0xD2, 0x9A, 0x38, 255) // #D29A38
	Danger        = rl.NewColor(0xC2, 0x4E, 0x3C, 255) // #C24E3C
	DisabledPanel = rl.NewColor(0x19, 0x1E, 0x18, 255)
	DisabledText  = TextMuted
)
