package results

import (
	"encoding/json"
	"fmt"
)

// Encode serializes a store into the two-element JSON array exchanged with
// other tools: [hyperparameters, [sets...]].
func Encode(s *Store) ([]byte, error) {
	sets := s.Sets
	if sets == nil {
		sets = []*FixationSet{}
	}
	return json.Marshal([]interface{}{s.Hyperparameters, sets})
}

// Decode rebuilds a store from its encoded form.
func Decode(data []byte) (*Store, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed fixation record: %w", err)
	}
	if len(raw) != 2 {
		return nil, fmt.Errorf("malformed fixation record: expected 2 elements, got %d", len(raw))
	}

	var hyp Hyperparameters
	if err := json.Unmarshal(raw[0], &hyp); err != nil {
		return nil, fmt.Errorf("malformed hyperparameters: %w", err)
	}

	var sets []*FixationSet
	if err := json.Unmarshal(raw[1], &sets); err != nil {
		return nil, fmt.Errorf("malformed fixation sets: %w", err)
	}

	return &Store{Hyperparameters: hyp, Sets: sets}, nil
}
