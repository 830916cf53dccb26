package results

import (
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/MarieTemple-Boyer/Cannings/cannings"
)

// Runner drives batches of Monte Carlo fixation trials and records the
// signed times into a store.
type Runner struct {
	Store *Store
	Log   *slog.Logger // nil means slog.Default()
	Rand  *rand.Rand   // nil means the shared cannings source
}

// BatchParams describe one batch of trials for a single
// (alpha, selection coefficient) cell of the store.
type BatchParams struct {
	Alpha          float64
	SelectionCoeff float64

	// InitialCount is the starting number of type-1 individuals; values
	// below 1 default to a single mutant, as in the original experiments.
	InitialCount int

	Trials           int
	CheckExpectation bool
}

func (r *Runner) logger() *slog.Logger {
	if r.Log == nil {
		return slog.Default()
	}
	return r.Log
}

// Generate runs params.Trials fixation trials under the store's
// hyperparameters and appends the signed times to the matching fixation set.
// It returns the batch run ID used in the logs.
func (r *Runner) Generate(params BatchParams) (string, error) {
	hyp := r.Store.Hyperparameters

	var sel cannings.Selection
	switch hyp.Selection {
	case "fecundity":
		sel = cannings.Selection{Fecundity: params.SelectionCoeff}
	case "viability":
		sel = cannings.Selection{Viability: params.SelectionCoeff}
	default:
		return "", &cannings.ValidationError{Argument: "selection", Value: hyp.Selection,
			Requirement: "one of 'fecundity' or 'viability'"}
	}

	law, err := r.law(params.Alpha)
	if err != nil {
		return "", err
	}

	initial := params.InitialCount
	if initial < 1 {
		initial = 1
	}

	model := &cannings.Model{Law: law, Rand: r.Rand}
	runID := uuid.NewString()
	log := r.logger().With(
		"run_id", runID,
		"alpha", params.Alpha,
		"selection_coefficient", params.SelectionCoeff,
	)
	log.Info("starting fixation batch",
		"trials", params.Trials,
		"pop_size", hyp.PopulationSize,
		"initial_count", initial,
	)

	times := make([]int, 0, params.Trials)
	nbFixation := 0
	for i := 0; i < params.Trials; i++ {
		res, err := model.Fixation(hyp.PopulationSize, initial, cannings.FixationOptions{
			Selection:        sel,
			CheckExpectation: params.CheckExpectation,
		})
		if err != nil {
			return "", err
		}
		if res.Fixation {
			nbFixation++
		}
		times = append(times, EncodeTime(res.Fixation, res.Generations))
	}

	set := r.Store.Add(params.Alpha, params.SelectionCoeff, times...)
	log.Info("fixation batch complete",
		"fixations", nbFixation,
		"estimated_probability", set.FixationProbability(),
		"fixation_time_stdev", set.StdevFixationTime(),
	)
	return runID, nil
}

// law builds the offspring law named by the store hyperparameters for the
// given alpha. The historical record files use the model name "cannings" for
// the Schweinsberg law.
func (r *Runner) law(alpha float64) (cannings.OffspringLaw, error) {
	hyp := r.Store.Hyperparameters
	switch hyp.Model {
	case "", "cannings", "schweinsberg":
		law, err := cannings.NewSchweinsberg(alpha, hyp.P0)
		if err != nil {
			return nil, err
		}
		return law, nil
	default:
		return nil, &cannings.ValidationError{Argument: "model", Value: hyp.Model,
			Requirement: "one of 'cannings' or 'schweinsberg'"}
	}
}
