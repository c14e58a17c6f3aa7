package surface

import (
	"fmt"

	"lifepad/src/grid"
)

//ButtonKind tells the pads from the setup button
type ButtonKind uint8

const (
	PadButton ButtonKind = iota
	SetupButton
)

//Button is a pad of the grid or the setup button
type Button struct {
	Kind  ButtonKind
	Point grid.Point //valid for pads only
}

//Pad returns the button for the pad at point p
func Pad(p grid.Point) Button {
	return Button{Kind: PadButton, Point: p}
}

//Setup returns the setup button
func Setup() Button {
	return Button{Kind: SetupButton}
}

func (b Button) String() string {
	if b.Kind == SetupButton {
		return "setup"
	}
	return "pad" + b.Point.String()
}

//Phase is the button transition, a press carries the velocity
type Phase struct {
	Released bool
	Value    uint8 //press velocity
}

//Press returns the press phase with velocity v
func Press(v uint8) Phase {
	return Phase{Value: v}
}

//Release returns the release phase
func Release() Phase {
	return Phase{Released: true}
}

func (p Phase) String() string {
	if p.Released {
		return "release"
	}
	return fmt.Sprintf("press(%d)", p.Value)
}

//ButtonEvent is reported when a button is pressed or released
type ButtonEvent struct {
	Button Button
	Phase  Phase
}

//Decode converts the raw surface callback arguments to the button event
//event 1 is the setup button, everything else is a pad at index, zero value means release
func Decode(event uint8, index uint8, value uint8) ButtonEvent {
	ev := ButtonEvent{Button: Pad(grid.FromIndex(int(index))), Phase: Press(value)}
	if event == 1 {
		ev.Button = Setup()
	}
	if value == 0 {
		ev.Phase = Release()
	}
	return ev
}
