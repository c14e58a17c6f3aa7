package universe

import (
	"errors"
	"fmt"
	"sort"

	"lifepad/src/grid"
)

//ErrUnknownTemplate is returned by Lookup when there is no template with the requested name
var ErrUnknownTemplate = errors.New("unknown template")

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [x,y] coordinates
}

var templates = map[string]Template{
	"glider": {
		"glider",
		"the smallest spaceship, crosses the torus diagonally",
		[][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	},
	"blinker": {
		"blinker",
		"period 2 oscillator",
		[][]int{{4, 5}, {5, 5}, {6, 5}},
	},
	"toad": {
		"toad",
		"period 2 oscillator",
		[][]int{{4, 4}, {5, 4}, {6, 4}, {3, 5}, {4, 5}, {5, 5}},
	},
	"beacon": {
		"beacon",
		"period 2 oscillator made of two blocks",
		[][]int{{2, 2}, {3, 2}, {2, 3}, {5, 4}, {4, 5}, {5, 5}},
	},
	"r-pentomino": {
		"r-pentomino",
		"methuselah, wraps around the small field quickly",
		[][]int{{5, 4}, {6, 4}, {4, 5}, {5, 5}, {5, 6}},
	},
}

//Points converts the template coordinates to the grid points
func (t Template) Points() []grid.Point {
	points := make([]grid.Point, 0, len(t.Coordinates))
	for _, c := range t.Coordinates {
		if len(c) != 2 {
			continue
		}
		points = append(points, grid.New(c[0], c[1]))
	}
	return points
}

//Templates returns all known templates sorted by name
func Templates() []Template {
	names := TemplateNames()
	tmpls := make([]Template, 0, len(names))
	for _, n := range names {
		tmpls = append(tmpls, templates[n])
	}
	return tmpls
}

//TemplateNames returns the sorted template names
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for k := range templates {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//Lookup returns the template by name
func Lookup(name string) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return t, nil
}

//SettleTemplate populates the universe with the seeding template
func (u *Universe) SettleTemplate(t Template) {
	u.Settle(t.Points()...)
}
