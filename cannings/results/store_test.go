package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHyperparameters() Hyperparameters {
	return Hyperparameters{Model: "cannings", PopulationSize: 100, P0: 0.1, Selection: "fecundity"}
}

func TestStoreAdd(t *testing.T) {
	store := NewStore(testHyperparameters())

	assert.False(t, store.Exists(1.1, 0.1))
	store.Add(1.1, 0.1, -1, 3)
	require.True(t, store.Exists(1.1, 0.1))
	assert.Equal(t, []int{-1, 3}, store.Set(1.1, 0.1).Fixation)

	// Adding to an existing cell extends it instead of creating a duplicate.
	store.Add(1.1, 0.1, 7)
	assert.Len(t, store.Sets, 1)
	assert.Equal(t, []int{-1, 3, 7}, store.Set(1.1, 0.1).Fixation)

	assert.Nil(t, store.Set(2, 0))
}

func TestStoreLookups(t *testing.T) {
	store := NewStore(testHyperparameters())
	store.Add(1.5, 0.1, -1)
	store.Add(1.1, 0.1, -2)
	store.Add(1.1, 0.5, 4)
	store.Add(2.0, 0.5, 9)

	assert.Equal(t, []float64{1.1, 1.5, 2.0}, store.Alphas())
	assert.Equal(t, []float64{0.1, 0.5}, store.SelectionCoeffs(1.1))
	assert.Equal(t, []float64{0.1}, store.SelectionCoeffs(1.5))
	assert.Empty(t, store.SelectionCoeffs(3))
}

func TestStoreMatches(t *testing.T) {
	store := NewStore(testHyperparameters())
	assert.True(t, store.Matches(testHyperparameters()))

	other := testHyperparameters()
	other.P0 = 0.2
	assert.False(t, store.Matches(other))
}
