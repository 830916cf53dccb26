package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeGoldenShape(t *testing.T) {
	store := NewStore(testHyperparameters())
	store.Add(1.1, 0.1, -1, 3)

	encoded, err := Encode(store)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"model":"cannings","population_size":100,"p0":0.1,"selection":"fecundity"},`+
			`[{"alpha":1.1,"selection_coefficient":0.1,"fixation":[-1,3]}]]`,
		string(encoded))
}

func TestEncodeEmptyStore(t *testing.T) {
	encoded, err := Encode(NewStore(testHyperparameters()))
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"model":"cannings","population_size":100,"p0":0.1,"selection":"fecundity"},[]]`,
		string(encoded))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	store := NewStore(testHyperparameters())
	store.Add(1.1, 0.1, -1, -1, 5)
	store.Add(1.5, 0.1, 12)

	encoded, err := Encode(store)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, store.Hyperparameters, decoded.Hyperparameters)
	assert.Equal(t, store.Sets, decoded.Sets)
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{name: "not json", data: "not json"},
		{name: "not an array", data: `{"model":"cannings"}`},
		{name: "too few elements", data: `[]`},
		{name: "too many elements", data: `[1, 2, 3]`},
		{name: "bad hyperparameters", data: `["nope", []]`},
		{name: "bad sets", data: `[{"model":"cannings"}, {"alpha":1}]`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Decode([]byte(c.data))
			assert.Error(t, err)
		})
	}
}
