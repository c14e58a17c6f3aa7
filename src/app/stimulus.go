package app

import (
	"lifepad/src/grid"
	"lifepad/src/surface"
)

//Kind is the type of the stimulus
type Kind uint8

const (
	Init Kind = iota
	Timer
	CellInteraction
	ModeToggle
)

var kindNames = map[Kind]string{
	Init:            "init",
	Timer:           "timer",
	CellInteraction: "cell",
	ModeToggle:      "mode",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

//Stimulus is anything the device can report to the app
//Point is used by CellInteraction, Phase by CellInteraction and ModeToggle
type Stimulus struct {
	Kind  Kind
	Point grid.Point
	Phase surface.Phase
}

//InitEvent is delivered once the device is started
func InitEvent() Stimulus {
	return Stimulus{Kind: Init}
}

//TimerEvent is delivered on every raw timer tick
func TimerEvent() Stimulus {
	return Stimulus{Kind: Timer}
}

//CellEvent is delivered when the pad at p is pressed or released
func CellEvent(p grid.Point, phase surface.Phase) Stimulus {
	return Stimulus{Kind: CellInteraction, Point: p, Phase: phase}
}

//ModeEvent is delivered when the setup button is pressed or released
func ModeEvent(phase surface.Phase) Stimulus {
	return Stimulus{Kind: ModeToggle, Phase: phase}
}

//FromButtonEvent converts the surface button event to the stimulus
func FromButtonEvent(ev surface.ButtonEvent) Stimulus {
	if ev.Button.Kind == surface.SetupButton {
		return ModeEvent(ev.Phase)
	}
	return CellEvent(ev.Button.Point, ev.Phase)
}
