package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifepad/src/grid"
)

func TestLookup(t *testing.T) {
	tmpl, err := Lookup("glider")
	require.NoError(t, err)
	assert.Equal(t, "glider", tmpl.Name)
	assert.Len(t, tmpl.Points(), 5)

	_, err = Lookup("spaceship")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestTemplateNames(t *testing.T) {
	names := TemplateNames()
	assert.Equal(t, []string{"beacon", "blinker", "glider", "r-pentomino", "toad"}, names)
	for i, tmpl := range Templates() {
		assert.Equal(t, names[i], tmpl.Name)
	}
}

func TestTemplate_Points_SkipsMalformed(t *testing.T) {
	tmpl := Template{"bad", "", [][]int{{1}, {2, 2}, {1, 2, 3}}}
	assert.Equal(t, []grid.Point{grid.New(2, 2)}, tmpl.Points())
}

func TestTemplate_Oscillators(t *testing.T) {
	for _, name := range []string{"blinker", "toad", "beacon"} {
		t.Run(name, func(t *testing.T) {
			tmpl, err := Lookup(name)
			require.NoError(t, err)
			u := New()
			u.SettleTemplate(tmpl)
			initial := u.LiveCells()

			u.Step()
			u.Step()
			assert.Equal(t, initial, u.LiveCells())
			for _, p := range tmpl.Points() {
				assert.Equal(t, Alive, u.Get(p), "cell %v", p)
			}
		})
	}
}

func TestTemplate_GliderCrossesTorus(t *testing.T) {
	tmpl, err := Lookup("glider")
	require.NoError(t, err)
	u := New()
	u.SettleTemplate(tmpl)

	for i := 0; i < 4; i++ {
		u.Step()
	}
	require.Equal(t, 5, u.LiveCells())
	for _, p := range tmpl.Points() {
		assert.Equal(t, Alive, u.Get(p.Add(grid.New(1, 1))), "cell %v", p)
	}

	//40 generations move the glider once around the field
	for i := 0; i < 36; i++ {
		u.Step()
	}
	for _, p := range tmpl.Points() {
		assert.Equal(t, Alive, u.Get(p))
	}
	assert.Equal(t, 5, u.LiveCells())
}
