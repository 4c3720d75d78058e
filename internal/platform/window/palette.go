package window

import (
	"image/color"
	"strings"

	"github.com/vovakirdan/agent8/internal/core"
)

// Glyph size of the ebitenutil debug font.
const (
	glyphW = 6
	glyphH = 16
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xdd, 0xdd, 0xdd, 0xff},
	core.ColorRed:           {0xcd, 0x31, 0x31, 0xff},
	core.ColorGreen:         {0x0d, 0xbc, 0x79, 0xff},
	core.ColorYellow:        {0xe5, 0xe5, 0x10, 0xff},
	core.ColorBlue:          {0x24, 0x72, 0xc8, 0xff},
	core.ColorMagenta:       {0xbc, 0x3f, 0xbc, 0xff},
	core.ColorCyan:          {0x11, 0xa8, 0xcd, 0xff},
	core.ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightRed:     {0xf1, 0x4c, 0x4c, 0xff},
	core.ColorBrightGreen:   {0x23, 0xd1, 0x8b, 0xff},
	core.ColorBrightYellow:  {0xf5, 0xf5, 0x43, 0xff},
	core.ColorBrightBlue:    {0x3b, 0x8e, 0xea, 0xff},
	core.ColorBrightMagenta: {0xd6, 0x70, 0xd6, 0xff},
	core.ColorBrightCyan:    {0x29, 0xb8, 0xdb, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	core.ColorGray:          {0x80, 0x80, 0x80, 0xff},
	core.ColorDarkGray:      {0x44, 0x44, 0x44, 0xff},
}

// rgba maps a game color to the window palette. Unknown colors draw white.
func rgba(c core.Color) color.RGBA {
	if rgb, ok := palette[c]; ok {
		return rgb
	}
	return palette[core.ColorBrightWhite]
}

// artSize returns the pixel size of an art block in the debug font.
func artSize(art []string) (w, h int) {
	cols := 0
	for _, l := range art {
		cols = max(cols, len([]rune(l)))
	}
	return cols * glyphW, len(art) * glyphH
}

// alignOffset is the x shift that places text of the given width at an
// anchor with the given alignment.
func alignOffset(width float64, align core.Align) float64 {
	switch align {
	case core.AlignCenter:
		return -width / 2
	case core.AlignRight:
		return -width
	default:
		return 0
	}
}

func artKey(art []string) string {
	return strings.Join(art, "\n")
}
