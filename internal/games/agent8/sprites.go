package agent8

import (
	"github.com/vovakirdan/agent8/internal/core"
	"github.com/vovakirdan/agent8/internal/engine"
)

// Sprite names.
const (
	SpriteFall    = "agent8_fall"
	SpriteClimb   = "agent8_climb"
	SpriteHalt    = "agent8_halt"
	SpriteHang    = "agent8_hang"
	SpriteFan     = "fan"
	SpriteDriver  = "driver"
	SpriteSpanner = "spanner"
	SpriteCoin    = "coin"
	SpriteStar    = "star"
	SpriteLaser   = "laser"
)

// Sprites returns the sprite sheet. Sizes are in display pixels and decide
// when an object counts as visible or leaving the display; the art is what
// a terminal shows.
func Sprites() *engine.SpriteSheet {
	return engine.NewSpriteSheet(
		engine.Sprite{
			Name: SpriteFall, W: 128, H: 128, Color: core.ColorBrightWhite,
			Frames: [][]string{
				{`\o/`, ` | `, `/ \`},
			},
		},
		engine.Sprite{
			Name: SpriteClimb, W: 128, H: 128, Color: core.ColorBrightWhite,
			Frames: [][]string{
				{`\o `, ` |\`, `/ \`},
				{` o `, `/|\`, `/ \`},
				{` o/`, `/| `, `/ \`},
				{` o `, `/|\`, `| |`},
			},
		},
		engine.Sprite{
			Name: SpriteHalt, W: 128, H: 128, Color: core.ColorBrightWhite,
			Frames: [][]string{
				{`\o/`, ` | `, `/ \`},
				{`_o_`, ` | `, `/ \`},
				{` o `, `-|-`, `/ \`},
				{` o `, `/|\`, `/ \`},
				{` o `, `/|\`, `| |`},
				{` o `, `/|\`, `/ \`},
			},
		},
		engine.Sprite{
			Name: SpriteHang, W: 128, H: 128, Color: core.ColorBrightWhite,
			Frames: [][]string{
				{` o `, `/|\`, `/ \`},
				{` o `, `/|\`, `| |`},
			},
		},
		engine.Sprite{
			Name: SpriteFan, W: 128, H: 128, Color: core.ColorCyan,
			Frames: [][]string{
				{`[-+-]`, `  |  `},
				{`[\|/]`, `  |  `},
				{`[-x-]`, `  |  `},
				{`[/|\]`, `  |  `},
			},
		},
		engine.Sprite{
			Name: SpriteDriver, W: 100, H: 40, Color: core.ColorBrightRed,
			Frames: [][]string{{`<==o`}},
		},
		engine.Sprite{
			Name: SpriteSpanner, W: 200, H: 80, Color: core.ColorOrange,
			Frames: [][]string{{`C=====O`}},
		},
		engine.Sprite{
			Name: SpriteCoin, W: 80, H: 80, Color: core.ColorBrightYellow,
			Frames: [][]string{{`($)`}},
		},
		engine.Sprite{
			Name: SpriteStar, W: 40, H: 40, Color: core.ColorYellow,
			Frames: [][]string{{`*`}},
		},
		engine.Sprite{
			Name: SpriteLaser, W: 64, H: 24, Color: core.ColorBrightGreen,
			Frames: [][]string{{`--=`}},
		},
	)
}
