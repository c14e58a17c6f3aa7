//go:build !ebiten

package view

import (
	"context"
	"errors"

	"lifepad/src/app"
	"lifepad/src/surface"
)

//ErrWindowUnavailable is returned when the binary is built without the ebiten tag
var ErrWindowUnavailable = errors.New("window backend requires building with the 'ebiten' tag")

//Window is a placeholder that satisfies the API expected by the GUI build
type Window struct{}

//NewWindow always fails in the headless build
func NewWindow(int) (*Window, error) {
	return nil, ErrWindowUnavailable
}

//Register is a no-op placeholder
func (w *Window) Register(*app.State) {}

//SetElement is a no-op placeholder
func (w *Window) SetElement(int, surface.Rgb) {}

//Run always reports that the GUI build tag is missing
func (w *Window) Run(context.Context) error { return ErrWindowUnavailable }

//Close is a no-op placeholder
func (w *Window) Close() error { return nil }
