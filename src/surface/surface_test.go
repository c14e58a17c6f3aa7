package surface

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"lifepad/src/grid"
)

func TestNewRgb_ConvertsTo18Bit(t *testing.T) {
	c := NewRgb(255, 127, 63)
	assert.Equal(t, Rgb{63, 31, 15}, c)
	assert.Equal(t, Rgb{63, 63, 63}, White)
	assert.Equal(t, Rgb{0, 63, 0}, Green)
}

func TestRgb_RGBA(t *testing.T) {
	var c color.Color = Green
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)

	m := color.RGBAModel.Convert(White).(color.RGBA)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, m)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name                string
		event, index, value uint8
		expected            ButtonEvent
	}{
		{"pad release", 0, 55, 0, ButtonEvent{Pad(grid.New(5, 5)), Release()}},
		{"pad press", 0, 42, 100, ButtonEvent{Pad(grid.New(2, 4)), Press(100)}},
		{"setup release", 1, 0, 0, ButtonEvent{Setup(), Release()}},
		{"setup press", 1, 0, 127, ButtonEvent{Setup(), Press(127)}},
		{"pad index wraps", 0, 100, 0, ButtonEvent{Pad(grid.New(0, 0)), Release()}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Decode(tc.event, tc.index, tc.value))
		})
	}
}

func TestButtonEvent_String(t *testing.T) {
	assert.Equal(t, "pad(1,2)", Pad(grid.New(1, 2)).String())
	assert.Equal(t, "setup", Setup().String())
	assert.Equal(t, "press(9)", Press(9).String())
	assert.Equal(t, "release", Release().String())
}

func TestSinkFunc(t *testing.T) {
	var got []int
	var sink PixelSink = SinkFunc(func(index int, c Rgb) {
		got = append(got, index)
	})
	sink.SetElement(3, Red)
	sink.SetElement(7, Blue)
	assert.Equal(t, []int{3, 7}, got)
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(0))
	assert.True(t, InRange(99))
	assert.False(t, InRange(100))
	assert.False(t, InRange(-1))
}
