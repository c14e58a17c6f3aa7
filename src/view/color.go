package view

import (
	"github.com/logrusorgru/aurora"

	"lifepad/src/surface"
)

//xtermIndex maps the 18-bit color to the closest entry of the xterm 256 color cube
func xtermIndex(c surface.Rgb) uint8 {
	level := func(v uint8) int { return int(v) * 5 / 63 }
	return uint8(16 + 36*level(c.R) + 6*level(c.G) + level(c.B))
}

//padFiller returns the colored text for one pad
func padFiller(au aurora.Aurora, c surface.Rgb, text string) string {
	return au.BgIndex(xtermIndex(c), text).String()
}
