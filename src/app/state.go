// Package app is the Game of Life application running on the pad grid.
// It serializes the timer driven simulation against the user input.
package app

import (
	"sync"
	"sync/atomic"
	"time"

	"lifepad/src/grid"
	"lifepad/src/surface"
	"lifepad/src/universe"
)

//Options represents the app's configurable options
type Options struct {
	FramesPerSecond int
	TickRate        int //raw timer frequency, Hz
	Density         float64
	Alive           surface.Rgb
	Dead            surface.Rgb
	StatusCh        chan<- Status //optional, receives the status after every step
}

//Status represents the status of the app at concrete moment
type Status struct {
	Generation   int
	Running      bool
	LiveCells    int
	StepTime     time.Duration
	Stable       bool //the last step changed nothing
	DroppedTicks uint64
}

//StepObserver is an optional extension of the pixel sink
//Stepped is called under the lock after every step, right after the new generation has been flushed,
//so the painted frame and st belong to the same generation
type StepObserver interface {
	Stepped(st Status)
}

//default options
const (
	DefFramesPerSecond = 10
	DefTickRate        = 1000
	DefDensity         = 0.3
)

var DefaultOptions = Options{
	FramesPerSecond: DefFramesPerSecond,
	TickRate:        DefTickRate,
	Density:         DefDensity,
	Alive:           surface.Green,
	Dead:            surface.Black,
}

//State is the app state shared between the timer and the input callbacks
//every mutation is made under the lock
type State struct {
	mu         sync.Mutex
	opts       Options
	running    bool
	life       universe.Universe
	divider    Divider
	sink       surface.PixelSink
	generation int
	liveCells  int
	stepTime   time.Duration
	stable     bool

	//the ticks dropped because the lock was busy, updated outside of the lock
	dropped atomic.Uint64
}

//New creates the app paused with all cells dead
func New(sink surface.PixelSink, o *Options) *State {
	if o == nil {
		o = &DefaultOptions
	}
	if sink == nil {
		sink = surface.SinkFunc(func(int, surface.Rgb) {})
	}
	s := &State{
		opts:    *o,
		sink:    sink,
		divider: NewDivider(o.TickRate, o.FramesPerSecond),
	}
	return s
}

//Options returns the app configuration
func (s *State) Options() Options {
	return s.opts
}

//TicksPerFrame returns the number of raw timer ticks per one simulation step
//it never changes after New so the lock is not needed
func (s *State) TicksPerFrame() int {
	return s.divider.ticksPerFrame
}

//Handle dispatches the stimulus to its handler
//pads and the setup button react on release only
func (s *State) Handle(st Stimulus) {
	switch st.Kind {
	case Init:
		s.OnInit()
	case Timer:
		s.OnTimerTick()
	case CellInteraction:
		if st.Phase.Released {
			s.OnCellToggle(st.Point)
		}
	case ModeToggle:
		if st.Phase.Released {
			s.OnModeToggle()
		}
	}
}

//OnInit resets the app to the initial state and repaints the grid
func (s *State) OnInit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.life.Clear()
	s.divider.Reset()
	s.generation = 0
	s.liveCells = 0
	s.stepTime = 0
	s.stable = false
	s.drawUniverse()
}

//OnTimerTick is called on every raw timer tick, it never blocks
//the tick is dropped when the state is locked by somebody else
func (s *State) OnTimerTick() {
	if !s.mu.TryLock() {
		s.dropped.Add(1)
		return
	}
	defer s.mu.Unlock()
	if !s.divider.Tick() || !s.running {
		return
	}
	s.step()
	s.drawUniverse()
	s.publish()
}

//OnCellToggle inverses the cell at p and repaints it
func (s *State) OnCellToggle(p grid.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.life.Toggle(p)
	if c == universe.Alive {
		s.liveCells++
	} else {
		s.liveCells--
	}
	s.drawCell(p)
	s.flush()
}

//OnModeToggle switches between running and paused
func (s *State) OnModeToggle() {
	s.mu.Lock()
	s.running = !s.running
	s.mu.Unlock()
}

//StepOnce does one simulation step regardless of the mode
func (s *State) StepOnce() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step()
	s.drawUniverse()
	s.publish()
}

//Clear kills all cells and resets the generation counter, the mode stays as is
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.life.Clear()
	s.generation = 0
	s.liveCells = 0
	s.drawUniverse()
}

//Settle populates the universe with the seeding template
func (s *State) Settle(t universe.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.life.SettleTemplate(t)
	s.liveCells = s.life.LiveCells()
	s.drawUniverse()
}

//Randomize replaces the current generation with random data
func (s *State) Randomize(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.life.Randomize(seed, s.opts.Density)
	s.liveCells = s.life.LiveCells()
	s.drawUniverse()
}

//Cell returns the cell state at p
func (s *State) Cell(p grid.Point) universe.Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.life.Get(p)
}

//Status returns current app status represented by Status struct
func (s *State) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status()
}

func (s *State) status() Status {
	return Status{
		Generation:   s.generation,
		Running:      s.running,
		LiveCells:    s.liveCells,
		StepTime:     s.stepTime,
		Stable:       s.stable,
		DroppedTicks: s.dropped.Load(),
	}
}

func (s *State) step() {
	start := time.Now()
	st := s.life.Step()
	s.generation++
	s.liveCells = st.Live
	s.stable = !st.Changed
	s.stepTime = time.Since(start)
}

//publish notifies the sink and writes the status to the status channel if the reader is ready
func (s *State) publish() {
	st := s.status()
	if o, ok := s.sink.(StepObserver); ok {
		o.Stepped(st)
	}
	if s.opts.StatusCh == nil {
		return
	}
	select {
	case s.opts.StatusCh <- st:
	default:
	}
}

//drawUniverse paints every cell of the universe
func (s *State) drawUniverse() {
	for p := range grid.Points() {
		s.drawCell(p)
	}
	s.flush()
}

func (s *State) drawCell(p grid.Point) {
	c := s.opts.Dead
	if s.life.Get(p) == universe.Alive {
		c = s.opts.Alive
	}
	s.sink.SetElement(p.Index(), c)
}

func (s *State) flush() {
	if f, ok := s.sink.(surface.Flusher); ok {
		f.Flush()
	}
}
