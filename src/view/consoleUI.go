package view

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"lifepad/src/app"
	"lifepad/src/grid"
	"lifepad/src/surface"
	"lifepad/src/universe"
)

const (
	padsView  = "pads"
	padWidth  = 2 //terminal columns per pad
	padFill   = "  "
	leftWidth = 28
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI shows the pads in the terminal and turns the clicks and keys into the button events
type ConsoleUI struct {
	s  *app.State
	g  *gocui.Gui
	k  []keyBindings
	au aurora.Aurora

	mu     sync.Mutex
	frame  [grid.Size]surface.Rgb
	closed atomic.Bool //the main loop is gone, nobody reads the gui updates

	templates []universe.Template
	tmpl      int
	seed      int64
}

var (
	modeDescr = map[bool]string{
		false: aurora.Colorize("paused", aurora.BlueFg).String(),
		true:  aurora.Colorize("running", aurora.CyanFg).String(),
	}
)

//NewConsoleUI creates the terminal UI, the app must be registered before Run
//template is the initially selected seeding template
func NewConsoleUI(template string, seed int64) (*ConsoleUI, error) {
	t := ConsoleUI{
		au:        aurora.NewAurora(true),
		templates: universe.Templates(),
		seed:      seed,
	}
	for i, tmpl := range t.templates {
		if tmpl.Name == template {
			t.tmpl = i
		}
	}

	var err error
	t.g, err = gocui.NewGui(gocui.Output256)
	if err != nil {
		return nil, fmt.Errorf("terminal UI: %w", err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'s',
			"S",
			"Setup (run/pause)",
			t.cmdSetup,
			""},
		{'n',
			"N",
			"Next step",
			t.cmdNextStep,
			""},
		{'c',
			"C",
			"Clear",
			t.cmdClear,
			""},
		{'w',
			"W",
			"Settle with random",
			t.cmdSettleWithRandom,
			""},
		{'t',
			"T",
			"Settle next template",
			t.cmdSettleTemplate,
			""},
		{gocui.MouseLeft,
			"MOUSE",
			"Toggle the pad",
			t.cmdMouseClick,
			padsView},
	}
	t.g.SetManagerFunc(t.layout)

	if err := t.initKeyBindings(t.k); err != nil {
		t.g.Close()
		return nil, err
	}
	return &t, nil
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) error {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return fmt.Errorf("key binding %s: %w", kb.name, err)
		}
	}
	return nil
}

//Register attaches the app driven by this UI
func (t *ConsoleUI) Register(s *app.State) {
	t.s = s
}

//SetElement implements surface.PixelSink
func (t *ConsoleUI) SetElement(index int, c surface.Rgb) {
	if !surface.InRange(index) {
		return
	}
	t.mu.Lock()
	t.frame[index] = c
	t.mu.Unlock()
}

//Flush schedules the repaint, it is called from the app callbacks so it must not block
func (t *ConsoleUI) Flush() {
	if t.closed.Load() {
		return
	}
	t.g.Update(func(g *gocui.Gui) error {
		t.renderField(g)
		t.renderStatus(g)
		return nil
	})
}

//Run runs the UI main loop until the user quits or ctx is cancelled
func (t *ConsoleUI) Run(ctx context.Context) error {
	if t.s == nil {
		log.Panicln("console UI: no app registered")
	}
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			t.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
		case <-done:
		}
	}()
	err := t.g.MainLoop()
	t.closed.Store(true)
	if err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

//Close restores the terminal
func (t *ConsoleUI) Close() error {
	t.closed.Store(true)
	t.g.Close()
	return nil
}

func (t *ConsoleUI) renderField(g *gocui.Gui) {
	v, e := g.View(padsView)
	if e != nil {
		return
	}
	v.Clear()

	t.mu.Lock()
	frame := t.frame
	t.mu.Unlock()

	var b bytes.Buffer
	for y := 0; y < grid.Height; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < grid.Width; x++ {
			b.WriteString(padFiller(t.au, frame[grid.New(x, y).Index()], padFill))
		}
	}
	_, _ = fmt.Fprint(v, b.String())
}

func (t *ConsoleUI) renderStatus(g *gocui.Gui) {
	v, e := g.View("status")
	if e != nil {
		return
	}
	s := t.s.Status()
	v.Clear()
	_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.Generation))
	_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
	_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.StepTime.Round(time.Microsecond)))
	_, _ = fmt.Fprintln(v, t.renderProp("Dropped ticks", "%v", s.DroppedTicks))
	_, _ = fmt.Fprintln(v, t.renderProp("Stable", "%v", s.Stable))
	_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", modeDescr[s.Running]))
}

func (t *ConsoleUI) renderConfiguration(g *gocui.Gui) {
	v, e := g.View("configuration")
	if e != nil {
		return
	}
	c := t.s.Options()
	v.Clear()
	_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", grid.Width, grid.Height))
	_, _ = fmt.Fprintln(v, t.renderProp("Frame rate", "%v fps", c.FramesPerSecond))
	_, _ = fmt.Fprintln(v, t.renderProp("Timer", "%v Hz", c.TickRate))
	_, _ = fmt.Fprintln(v, t.renderProp("Ticks per frame", "%v", t.s.TicksPerFrame()))
	_, _ = fmt.Fprintln(v, t.renderProp("Template", "%v", t.templates[t.tmpl].Name))
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	minWindowHeight := grid.Height + 10

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView(padsView)
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "This is \"The Life\" on the pads"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
	}
	t.renderConfiguration(g)

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}
	t.renderStatus(g)

	if v, err := g.SetView(padsView, leftWidth+1, 3, leftWidth+2+grid.Width*padWidth, 4+grid.Height); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Pads"
		v.Frame = true
	}
	t.renderField(g)

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", pad)+text)
	}
	return
}

//padAt converts the cursor position inside the pads view to the grid point
func padAt(cx int, cy int) (grid.Point, bool) {
	x := cx / padWidth
	if cx < 0 || cy < 0 || x >= grid.Width || cy >= grid.Height {
		return grid.Point{}, false
	}
	return grid.New(x, cy), true
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdSetup(_ *gocui.View) error {
	t.s.Handle(app.ModeEvent(surface.Press(127)))
	t.s.Handle(app.ModeEvent(surface.Release()))
	t.renderStatus(t.g)
	return nil
}

func (t *ConsoleUI) cmdNextStep(_ *gocui.View) error {
	t.s.StepOnce()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.s.Clear()
	return nil
}

func (t *ConsoleUI) cmdSettleWithRandom(_ *gocui.View) error {
	t.seed++
	t.s.Randomize(t.seed)
	return nil
}

func (t *ConsoleUI) cmdSettleTemplate(_ *gocui.View) error {
	t.tmpl = (t.tmpl + 1) % len(t.templates)
	t.s.Clear()
	t.s.Settle(t.templates[t.tmpl])
	t.renderConfiguration(t.g)
	return nil
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	p, ok := padAt(cx+ox, cy+oy)
	if !ok {
		return nil
	}
	t.s.Handle(app.CellEvent(p, surface.Press(127)))
	t.s.Handle(app.CellEvent(p, surface.Release()))
	return nil
}
