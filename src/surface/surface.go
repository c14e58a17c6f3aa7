// Package surface holds the value types the pad device speaks in: 18-bit
// colors, buttons with their press and release phases, and the sink contract
// used to paint a single pad.
package surface

import (
	"fmt"

	"lifepad/src/grid"
)

//Rgb is an 18-bit color, each channel is stored with 6 bits
type Rgb struct {
	R, G, B uint8
}

//the colors used by the apps
var (
	Black = Rgb{0, 0, 0}
	Green = NewRgb(0, 255, 0)
	Red   = NewRgb(255, 0, 0)
	Blue  = NewRgb(0, 0, 255)
	White = NewRgb(255, 255, 255)
)

//NewRgb creates the color from 8-bit channels, the values are mapped to the 6-bit range
func NewRgb(red uint8, green uint8, blue uint8) Rgb {
	return Rgb{to6Bit(red), to6Bit(green), to6Bit(blue)}
}

func to6Bit(v uint8) uint8 {
	return uint8(63 * uint16(v) / 255)
}

//RGBA implements color.Color
func (c Rgb) RGBA() (r, g, b, a uint32) {
	scale := func(v uint8) uint32 {
		return uint32(v) * 0xffff / 63
	}
	return scale(c.R), scale(c.G), scale(c.B), 0xffff
}

func (c Rgb) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

//PixelSink is anything able to paint a single element of the grid
//indices outside of [0, grid.Size) must be dropped by the sink
type PixelSink interface {
	SetElement(index int, c Rgb)
}

//Flusher is implemented by the sinks which want to know when a batch of SetElement calls is complete
type Flusher interface {
	Flush()
}

//SinkFunc adapts a function to the PixelSink interface
type SinkFunc func(index int, c Rgb)

func (f SinkFunc) SetElement(index int, c Rgb) { f(index, c) }

//InRange reports whether the index addresses an element of the grid
func InRange(index int) bool {
	return index >= 0 && index < grid.Size
}
