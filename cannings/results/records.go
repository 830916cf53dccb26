// Package results accumulates Monte Carlo fixation outcomes keyed by model
// parameters and speaks the JSON record shape used to exchange them:
//
//	[ hyperparameters, [ set1, set2, ... ] ]
//
// where each set stores signed generation counts (positive = time to
// fixation, negative = negated time to extinction).
package results

import (
	"math"

	"github.com/MarieTemple-Boyer/Cannings/cannings"
)

// Hyperparameters identify one experiment: every fixation set stored together
// shares them.
type Hyperparameters struct {
	Model          string  `json:"model"`
	PopulationSize int     `json:"population_size"`
	P0             float64 `json:"p0"`
	Selection      string  `json:"selection"` // "fecundity" or "viability"
}

// EncodeTime folds a fixation outcome into the signed-generation convention.
func EncodeTime(fixation bool, generations int) int {
	if fixation {
		return generations
	}
	return -generations
}

// DecodeTime is the inverse of EncodeTime. A stored 0 is read back as an
// extinction at generation 0, the only outcome the original data files
// record with that value.
func DecodeTime(t int) (fixation bool, generations int) {
	if t > 0 {
		return true, t
	}
	return false, -t
}

// FixationSet gathers the signed fixation times observed for one
// (alpha, selection coefficient) cell of an experiment.
type FixationSet struct {
	Alpha          float64 `json:"alpha"`
	SelectionCoeff float64 `json:"selection_coefficient"`
	Fixation       []int   `json:"fixation"`
}

// Add appends signed fixation times to the set.
func (s *FixationSet) Add(times ...int) {
	s.Fixation = append(s.Fixation, times...)
}

// Trials returns the number of recorded trials.
func (s *FixationSet) Trials() int { return len(s.Fixation) }

// FixationProbability estimates the probability of fixation as the fraction
// of trials that ended in fixation. It is NaN when no trial is recorded.
func (s *FixationSet) FixationProbability() float64 {
	if len(s.Fixation) == 0 {
		return math.NaN()
	}
	nbFixation := 0
	for _, t := range s.Fixation {
		if t > 0 {
			nbFixation++
		}
	}
	return float64(nbFixation) / float64(len(s.Fixation))
}

// times returns the unsigned generation counts of the trials that ended in
// the given outcome.
func (s *FixationSet) times(fixation bool) []float64 {
	var times []float64
	for _, t := range s.Fixation {
		if outcome, generations := DecodeTime(t); outcome == fixation {
			times = append(times, float64(generations))
		}
	}
	return times
}

// MeanFixationTime returns the average time of the trials that ended in
// fixation, or NaN when none did.
func (s *FixationSet) MeanFixationTime() float64 {
	times := s.times(true)
	if len(times) == 0 {
		return math.NaN()
	}
	return cannings.Mean(times)
}

// MeanExtinctionTime returns the average time of the trials that ended in
// extinction, or NaN when none did.
func (s *FixationSet) MeanExtinctionTime() float64 {
	times := s.times(false)
	if len(times) == 0 {
		return math.NaN()
	}
	return cannings.Mean(times)
}

// StdevFixationTime returns the sample standard deviation of the fixation
// times, the dispersion companion of MeanFixationTime. It is NaN when no
// trial ended in fixation and 0 when only one did.
func (s *FixationSet) StdevFixationTime() float64 {
	times := s.times(true)
	if len(times) == 0 {
		return math.NaN()
	}
	return cannings.Stdev(times)
}

// StdevExtinctionTime is the extinction counterpart of StdevFixationTime.
func (s *FixationSet) StdevExtinctionTime() float64 {
	times := s.times(false)
	if len(times) == 0 {
		return math.NaN()
	}
	return cannings.Stdev(times)
}
