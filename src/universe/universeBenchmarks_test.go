package universe

import (
	"testing"

	"lifepad/src/grid"
)

var testTemplate = Template{"ts1", "", [][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}}}

func Benchmark_Step(b *testing.B) {
	u := New()
	u.SettleTemplate(testTemplate)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u.Step()
	}
}

func Benchmark_StepRandom(b *testing.B) {
	u := New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		u.Randomize(int64(i), 0.3)
		b.StartTimer()
		u.Step()
	}
}

func Benchmark_LiveNeighbours(b *testing.B) {
	u := New()
	u.SettleTemplate(testTemplate)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u.LiveNeighbours(grid.FromIndex(i % grid.Size))
	}
}
