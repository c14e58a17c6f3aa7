//go:build ebiten

package view

import (
	"context"
	"errors"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifepad/src/app"
	"lifepad/src/grid"
	"lifepad/src/surface"
)

//Window shows the pads in a desktop window
type Window struct {
	s     *app.State
	scale int
	img   *ebiten.Image

	mu     sync.Mutex
	pixels []byte
	quit   bool
}

//NewWindow creates the window frontend, every pad is scale x scale pixels
func NewWindow(scale int) (*Window, error) {
	if scale <= 0 {
		scale = 32
	}
	return &Window{
		scale:  scale,
		pixels: make([]byte, grid.Size*4),
	}, nil
}

//Register attaches the app driven by this window
func (w *Window) Register(s *app.State) {
	w.s = s
}

//SetElement implements surface.PixelSink
func (w *Window) SetElement(index int, c surface.Rgb) {
	if !surface.InRange(index) {
		return
	}
	r, g, b, a := c.RGBA()
	w.mu.Lock()
	base := index * 4
	w.pixels[base+0] = uint8(r >> 8)
	w.pixels[base+1] = uint8(g >> 8)
	w.pixels[base+2] = uint8(b >> 8)
	w.pixels[base+3] = uint8(a >> 8)
	w.mu.Unlock()
}

//Run opens the window and blocks until it is closed or ctx is cancelled
func (w *Window) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		w.mu.Lock()
		w.quit = true
		w.mu.Unlock()
	}()
	ebiten.SetWindowTitle("lifepad")
	ebiten.SetWindowSize(grid.Width*w.scale, grid.Height*w.scale)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

//Close does nothing, ebiten releases the window when RunGame returns
func (w *Window) Close() error {
	return nil
}

//Update handles the input, the simulation itself is driven by the host clock
func (w *Window) Update() error {
	w.mu.Lock()
	quit := w.quit
	w.mu.Unlock()
	if quit || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.s.Handle(app.ModeEvent(surface.Press(127)))
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		w.s.Handle(app.ModeEvent(surface.Release()))
	}
	if p, ok := w.cursorPad(); ok {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			w.s.Handle(app.CellEvent(p, surface.Press(127)))
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			w.s.Handle(app.CellEvent(p, surface.Release()))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		w.s.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		w.s.Clear()
	}
	return nil
}

func (w *Window) cursorPad() (grid.Point, bool) {
	cx, cy := ebiten.CursorPosition()
	if cx < 0 || cy < 0 {
		return grid.Point{}, false
	}
	x, y := cx/w.scale, cy/w.scale
	if x < 0 || y < 0 || x >= grid.Width || y >= grid.Height {
		return grid.Point{}, false
	}
	return grid.New(x, y), true
}

//Draw renders the pads
func (w *Window) Draw(screen *ebiten.Image) {
	if w.img == nil {
		w.img = ebiten.NewImage(grid.Width, grid.Height)
	}
	w.mu.Lock()
	w.img.WritePixels(w.pixels)
	w.mu.Unlock()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.scale), float64(w.scale))
	screen.DrawImage(w.img, op)
}

//Layout returns the logical screen size
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return grid.Width * w.scale, grid.Height * w.scale
}
