package cannings

// FixationOptions gathers the optional knobs of a fixation run. The zero
// value is a neutral run without expectation check or shortage trace.
type FixationOptions struct {
	Selection Selection

	// CheckExpectation fails the run with an *ExpectationError before any
	// sampling if the law's expected offspring per individual is <= 1.
	// Disabling the check removes the guarantee, not the risk: with a
	// sub-critical law the run may take unboundedly long.
	CheckExpectation bool

	// CollectShortageTrace records every generation whose offspring pool had
	// to be completed with the Wright-Fisher fallback.
	CollectShortageTrace bool
}

// ShortageRecord marks one topped-up generation.
type ShortageRecord struct {
	Generation int // 1-based generation index
	Shortage   int // offspring generated with the Wright-Fisher fallback
}

// FixationResult is the outcome of a fixation run.
type FixationResult struct {
	// Fixation is true if all individuals carry type 1 at the end, false if
	// none does.
	Fixation bool

	// Generations is the time to fixation or extinction. It is 0 iff the
	// initial count was already absorbing.
	Generations int

	// ShortageTrace lists the topped-up generations in order, and is only
	// populated when FixationOptions.CollectShortageTrace is set.
	ShortageTrace []ShortageRecord
}

// Fixation iterates NextGeneration until the type-1 count is absorbed at 0
// (extinction) or popSize (fixation), starting from initialCount type-1
// individuals. An initial count already at a boundary returns immediately
// with Generations == 0 and no sampling at all.
//
// No maximum-iteration bound is imposed: a parameter set whose true offspring
// mean (selection included) is at most one can loop for an unbounded time.
// Callers wanting a deadline must wrap the invocation themselves.
func (m *Model) Fixation(popSize, initialCount int, opts FixationOptions) (FixationResult, error) {
	if popSize <= 0 {
		return FixationResult{}, &ValidationError{Argument: "pop_size", Value: popSize,
			Requirement: "0 < pop_size"}
	}
	if initialCount < 0 || initialCount > popSize {
		return FixationResult{}, &ValidationError{Argument: "initial_count", Value: initialCount,
			Requirement: "0 <= initial_count <= pop_size"}
	}
	if err := opts.Selection.validate(); err != nil {
		return FixationResult{}, err
	}
	if opts.CheckExpectation {
		if err := m.CheckExpectation(); err != nil {
			return FixationResult{}, err
		}
	}

	nbType1 := initialCount
	fixation := nbType1 == popSize
	extinction := nbType1 == 0
	generations := 0
	var trace []ShortageRecord

	for !fixation && !extinction {
		generations++

		// Arguments were validated above, expectation included if asked for.
		out, err := m.NextGeneration(nbType1, popSize, opts.Selection, false)
		if err != nil {
			return FixationResult{}, err
		}
		nbType1 = out.NewCount

		if opts.CollectShortageTrace && out.Shortage > 0 {
			trace = append(trace, ShortageRecord{Generation: generations, Shortage: out.Shortage})
		}

		fixation = nbType1 == popSize
		extinction = nbType1 == 0
	}

	return FixationResult{Fixation: fixation, Generations: generations, ShortageTrace: trace}, nil
}
