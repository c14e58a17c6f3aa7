package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	"golang.org/x/term"

	"lifepad/src/app"
	"lifepad/src/host"
	"lifepad/src/surface"
	"lifepad/src/universe"
	"lifepad/src/view"
)

//backend is the pixel sink and input source pair the app runs with
type backend interface {
	surface.PixelSink
	host.Frontend
	Register(s *app.State)
}

var backends = []string{"console", "log", "window"}

type EnvOptions struct {
	backend  string
	template string
	random   bool
	seed     int64
	maxSteps int
	period   time.Duration
	noColor  bool
	frames   bool
	scale    int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lifepad: ")

	eo, ao := initOptions()

	tmpl, err := universe.Lookup(eo.template)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	var b backend
	switch eo.backend {
	case "console":
		b, err = view.NewConsoleUI(tmpl.Name, eo.seed)
	case "log":
		colors := !eo.noColor && term.IsTerminal(int(os.Stdout.Fd()))
		b = view.NewConsoleOut(log.New(os.Stdout, "", 0), eo.maxSteps, colors, eo.frames)
	case "window":
		b, err = view.NewWindow(eo.scale)
	}
	if err != nil {
		log.Fatal(err)
	}

	s := app.New(b, ao)
	b.Register(s)
	s.OnInit()
	if eo.random {
		s.Randomize(eo.seed)
	} else {
		s.Settle(tmpl)
	}
	if eo.backend == "log" {
		//nobody presses the setup button in the headless mode
		s.Handle(app.ModeEvent(surface.Release()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := host.Run(ctx, host.NewClock(s, eo.period), b); err != nil {
		log.Fatal(err)
	}
}

func initOptions() (eo *EnvOptions, ao *app.Options) {

	o := app.DefaultOptions
	ao = &o
	eo = &EnvOptions{
		backend:  backends[0],
		template: "glider",
		seed:     time.Now().UnixNano(),
		maxSteps: 100,
		period:   host.DefTickPeriod,
		scale:    48,
	}
	flaggy.SetName("lifepad")
	flaggy.SetDescription("\"The Life\" game on the 10x10 pad grid")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&ao.FramesPerSecond, "f", "fps", "Simulation speed in frames per second")
	flaggy.Duration(&eo.period, "t", "tick", "Raw timer period, for example 1ms")
	flaggy.Int(&eo.maxSteps, "s", "maxSteps", "Stop the headless simulation after maxSteps")
	flaggy.String(&eo.template, "p", "template", "Seeding template ["+strings.Join(universe.TemplateNames(), "|")+"]")
	flaggy.Bool(&eo.random, "r", "random", "Settle with random data")
	flaggy.Int64(&eo.seed, "e", "seed", "Random seed")
	flaggy.String(&eo.backend, "b", "backend", "Backend to use ["+strings.Join(backends, "|")+"]")
	flaggy.Bool(&eo.noColor, "", "no-color", "Disable colors in the headless output")
	flaggy.Bool(&eo.frames, "", "frames", "Print the pads on every step in the headless output")
	flaggy.Int(&eo.scale, "", "scale", "Window pixels per pad")

	flaggy.Parse()

	known := false
	for _, b := range backends {
		known = known || b == eo.backend
	}
	if !known {
		flaggy.ShowHelpAndExit("unknown backend")
	}
	if eo.period <= 0 {
		flaggy.ShowHelpAndExit("tick period must be positive")
	}
	ao.TickRate = int(time.Second / eo.period)

	return
}
