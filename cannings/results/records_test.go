package results

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeTime(t *testing.T) {
	assert.Equal(t, 15, EncodeTime(true, 15))
	assert.Equal(t, -7, EncodeTime(false, 7))
	assert.Equal(t, 0, EncodeTime(false, 0))

	fix, gens := DecodeTime(15)
	assert.True(t, fix)
	assert.Equal(t, 15, gens)

	fix, gens = DecodeTime(-7)
	assert.False(t, fix)
	assert.Equal(t, 7, gens)

	// 0 can only come from an extinction at generation 0.
	fix, gens = DecodeTime(0)
	assert.False(t, fix)
	assert.Equal(t, 0, gens)
}

func TestFixationSetEstimators(t *testing.T) {
	// Reference data taken from the historical record files.
	extinctOnly := &FixationSet{Alpha: 1.1, SelectionCoeff: 0.1,
		Fixation: []int{-1, -1, -1, -5, -4, -1, -3, -1, -4, -2}}

	assert.Equal(t, 10, extinctOnly.Trials())
	assert.Equal(t, 0.0, extinctOnly.FixationProbability())
	assert.InDelta(t, 2.3, extinctOnly.MeanExtinctionTime(), 1e-12)
	assert.True(t, math.IsNaN(extinctOnly.MeanFixationTime()))

	mixed := &FixationSet{Fixation: []int{10, -2, 6, -4}}
	assert.Equal(t, 0.5, mixed.FixationProbability())
	assert.Equal(t, 8.0, mixed.MeanFixationTime())
	assert.Equal(t, 3.0, mixed.MeanExtinctionTime())

	empty := &FixationSet{}
	assert.True(t, math.IsNaN(empty.FixationProbability()))
	assert.True(t, math.IsNaN(empty.MeanFixationTime()))
	assert.True(t, math.IsNaN(empty.MeanExtinctionTime()))
}

func TestFixationSetTimeDispersion(t *testing.T) {
	mixed := &FixationSet{Fixation: []int{10, -2, 6, -4}}
	assert.InDelta(t, math.Sqrt(8), mixed.StdevFixationTime(), 1e-9)  // times {10, 6}
	assert.InDelta(t, math.Sqrt(2), mixed.StdevExtinctionTime(), 1e-9) // times {2, 4}

	extinctOnly := &FixationSet{
		Fixation: []int{-1, -1, -1, -5, -4, -1, -3, -1, -4, -2}}
	assert.InDelta(t, math.Sqrt(22.1/9), extinctOnly.StdevExtinctionTime(), 1e-9)
	assert.True(t, math.IsNaN(extinctOnly.StdevFixationTime()))

	// A single observation has no spread; none at all has no estimate.
	single := &FixationSet{Fixation: []int{7}}
	assert.Equal(t, 0.0, single.StdevFixationTime())
	assert.True(t, math.IsNaN((&FixationSet{}).StdevFixationTime()))
}

func TestFixationSetAdd(t *testing.T) {
	set := &FixationSet{Alpha: 2}
	set.Add(3, -1)
	set.Add(5)
	assert.Equal(t, []int{3, -1, 5}, set.Fixation)
}
