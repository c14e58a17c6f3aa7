package view

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/logrusorgru/aurora"

	"lifepad/src/app"
	"lifepad/src/grid"
	"lifepad/src/surface"
)

//stepQueue is the count of generations buffered for the logger
const stepQueue = 16

//step is the status of the generation together with the pads painted for it
type step struct {
	st   app.Status
	pads [grid.Size]surface.Rgb
}

//ConsoleOut is the headless frontend, it logs the progress and optionally the pads
type ConsoleOut struct {
	s         *app.State
	l         *log.Logger
	au        aurora.Aurora
	steps     chan step
	maxSteps  int
	frames    bool
	startTime time.Time

	mu    sync.Mutex
	frame [grid.Size]surface.Rgb
	shown [grid.Size]surface.Rgb
}

//NewConsoleOut creates the headless frontend
//it stops after maxSteps generations have been reported, 0 means never
func NewConsoleOut(l *log.Logger, maxSteps int, colors bool, frames bool) *ConsoleOut {
	return &ConsoleOut{
		l:        l,
		au:       aurora.NewAurora(colors),
		steps:    make(chan step, stepQueue),
		maxSteps: maxSteps,
		frames:   frames,
	}
}

//SetElement implements surface.PixelSink
func (c *ConsoleOut) SetElement(index int, col surface.Rgb) {
	if !surface.InRange(index) {
		return
	}
	c.mu.Lock()
	c.frame[index] = col
	c.mu.Unlock()
}

//Flush publishes the painted frame
func (c *ConsoleOut) Flush() {
	c.mu.Lock()
	c.shown = c.frame
	c.mu.Unlock()
}

//Stepped implements app.StepObserver, the generation is dropped when the logger is behind
func (c *ConsoleOut) Stepped(st app.Status) {
	c.mu.Lock()
	stp := step{st: st, pads: c.shown}
	c.mu.Unlock()
	select {
	case c.steps <- stp:
	default:
	}
}

//Register attaches the app and prints its configuration
func (c *ConsoleOut) Register(s *app.State) {
	c.s = s
	o := s.Options()
	c.l.Println("Running configuration:")
	c.printHashData(map[string]interface{}{
		"Dimension":       grid.Width,
		"Frame rate":      o.FramesPerSecond,
		"Timer":           o.TickRate,
		"Ticks per frame": s.TicksPerFrame(),
		"Max iterations":  c.maxSteps,
	})
}

//Run reports the status updates until maxSteps is reached or ctx is cancelled
func (c *ConsoleOut) Run(ctx context.Context) error {
	c.startTime = time.Now()
	c.l.Println("Simulation started...")
	for {
		select {
		case <-ctx.Done():
			var st app.Status
			if c.s != nil {
				st = c.s.Status()
			}
			c.finish(st)
			return nil
		case stp := <-c.steps:
			if c.report(stp) {
				return nil
			}
		}
	}
}

//report logs the step, it returns true when the last step is reached
func (c *ConsoleOut) report(stp step) bool {
	st := stp.st
	if c.frames {
		c.printFrame(st.Generation, &stp.pads)
	}
	if c.maxSteps > 0 && st.Generation >= c.maxSteps {
		c.finish(st)
		return true
	}
	if st.Generation%10 == 0 {
		c.l.Printf("  Iterations done: %v\n", st.Generation)
	}
	return false
}

//Close does nothing, the logger belongs to the caller
func (c *ConsoleOut) Close() error {
	return nil
}

func (c *ConsoleOut) finish(st app.Status) {
	c.l.Println("Finished:")
	c.printHashData(map[string]interface{}{
		"Last iteration": st.Generation,
		"Total time":     time.Since(c.startTime).Round(time.Millisecond),
		"Live cells":     st.LiveCells,
		"Dropped ticks":  st.DroppedTicks,
		"Stable":         st.Stable,
	})
}

func (c *ConsoleOut) printFrame(generation int, frame *[grid.Size]surface.Rgb) {
	dead := surface.Black
	if c.s != nil {
		dead = c.s.Options().Dead
	}
	c.l.Printf("Generation %v:\n", generation)
	for y := 0; y < grid.Height; y++ {
		var b strings.Builder
		for x := 0; x < grid.Width; x++ {
			col := frame[grid.New(x, y).Index()]
			if col == dead {
				b.WriteString(". ")
				continue
			}
			b.WriteString(c.au.Index(xtermIndex(col), "# ").String())
		}
		c.l.Println(strings.TrimRight(b.String(), " "))
	}
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		c.l.Printf("  %s: %v\n", propName, d[propName])
	}
}
