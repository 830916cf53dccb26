package results

import "sort"

// Store accumulates fixation sets under one set of hyperparameters. It is the
// in-memory form of the exchanged record; persistence of the encoded bytes is
// the caller's job.
type Store struct {
	Hyperparameters Hyperparameters
	Sets            []*FixationSet
}

// NewStore creates an empty store for the given hyperparameters.
func NewStore(hyp Hyperparameters) *Store {
	return &Store{Hyperparameters: hyp}
}

// Matches reports whether the store was built for the given hyperparameters.
// Mixing data generated under different hyperparameters is the classic way to
// corrupt a record, so callers are expected to verify before merging.
func (s *Store) Matches(hyp Hyperparameters) bool {
	return s.Hyperparameters == hyp
}

// Set returns the fixation set for the given parameters, or nil when no
// trial has been recorded for them.
func (s *Store) Set(alpha, selectionCoeff float64) *FixationSet {
	for _, set := range s.Sets {
		if set.Alpha == alpha && set.SelectionCoeff == selectionCoeff {
			return set
		}
	}
	return nil
}

// Exists reports whether a fixation set with the given parameters is stored.
func (s *Store) Exists(alpha, selectionCoeff float64) bool {
	return s.Set(alpha, selectionCoeff) != nil
}

// Add records signed fixation times for one (alpha, selectionCoeff) cell,
// creating the set on first use.
func (s *Store) Add(alpha, selectionCoeff float64, times ...int) *FixationSet {
	set := s.Set(alpha, selectionCoeff)
	if set == nil {
		set = &FixationSet{Alpha: alpha, SelectionCoeff: selectionCoeff}
		s.Sets = append(s.Sets, set)
	}
	set.Add(times...)
	return set
}

// Alphas returns the sorted distinct values of alpha for which data are
// stored.
func (s *Store) Alphas() []float64 {
	seen := map[float64]bool{}
	var alphas []float64
	for _, set := range s.Sets {
		if !seen[set.Alpha] {
			seen[set.Alpha] = true
			alphas = append(alphas, set.Alpha)
		}
	}
	sort.Float64s(alphas)
	return alphas
}

// SelectionCoeffs returns the sorted distinct selection coefficients stored
// for the given alpha.
func (s *Store) SelectionCoeffs(alpha float64) []float64 {
	seen := map[float64]bool{}
	var coeffs []float64
	for _, set := range s.Sets {
		if set.Alpha == alpha && !seen[set.SelectionCoeff] {
			seen[set.SelectionCoeff] = true
			coeffs = append(coeffs, set.SelectionCoeff)
		}
	}
	sort.Float64s(coeffs)
	return coeffs
}
