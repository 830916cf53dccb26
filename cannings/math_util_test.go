package cannings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, Sum(nil))
	assert.Equal(t, 6.0, Sum([]float64{1, 2, 3}))
	assert.Equal(t, -1.5, Sum([]float64{1, -2.5}))
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, 2.3, Mean([]float64{1, 1, 1, 5, 4, 1, 3, 1, 4, 2}))
}

func TestStdev(t *testing.T) {
	assert.Equal(t, 0.0, Stdev(nil))
	assert.Equal(t, 0.0, Stdev([]float64{42}))
	// Sample standard deviation: sqrt(32/7).
	assert.InDelta(t, 2.138089935299395, Stdev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-12)
}
