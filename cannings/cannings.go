package cannings

import (
	"math"

	"golang.org/x/exp/rand"
)

// Model ties an offspring law to a random stream. The zero Rand means the
// shared package source; callers that parallelize trials should give every
// goroutine its own Model with an independent generator (see NewRand).
type Model struct {
	Law  OffspringLaw
	Rand *rand.Rand
}

// NewModel creates a Cannings model using the shared package random source.
func NewModel(law OffspringLaw) *Model {
	return &Model{Law: law}
}

// GenerationOutcome is the result of one generation transition.
type GenerationOutcome struct {
	// NewCount is the number of type-1 individuals in the next generation,
	// always within [0, pop_size].
	NewCount int

	// Shortage is the number of offspring that had to be generated with the
	// Wright-Fisher fallback because the Cannings reproduction produced fewer
	// than pop_size offspring. It is 0 whenever the pool was large enough.
	Shortage int
}

func (m *Model) rng() *rand.Rand { return source(m.Rand) }

// GenerateOffspring returns the random total number of offspring of
// nbParents individuals under the model law.
func (m *Model) GenerateOffspring(nbParents int) int {
	return m.Law.SampleTotalOffspring(m.rng(), nbParents)
}

// CheckExpectation verifies that the expectation of the number of offspring
// per individual is greater than one, and returns an *ExpectationError
// otherwise. A sub-critical law is not a mathematical error, but the chain
// then drifts deterministically toward extinction and a fixation run may
// never look like anything else. A law with an unknown (NaN) expectation
// also fails the check: asking for the gate on a law that cannot answer is
// treated as a failed check, not a pass.
func (m *Model) CheckExpectation() error {
	avg := m.Law.ExpectedOffspring()
	if math.IsNaN(avg) || avg <= 1 {
		return &ExpectationError{Expectation: avg}
	}
	return nil
}

// NextGeneration computes the number of type-1 individuals after one
// generation, knowing that there are nbType1 of them among popSize
// individuals:
//
//  1. the type-1 parents produce round((1+Fecundity) * law sample) offspring,
//  2. the other parents produce an unboosted law sample,
//  3. if the pool reaches popSize, the survivors are drawn with a classic
//     hypergeometric draw (neutral viability) or a Wallenius weighted draw of
//     odds (1+Viability),
//  4. otherwise the missing offspring are generated with a Wright-Fisher
//     reproduction at the parental type-1 frequency, and the shortage is
//     reported in the outcome.
//
// With checkExpectation set, a sub-critical law fails with an
// *ExpectationError before any sampling.
func (m *Model) NextGeneration(nbType1, popSize int, sel Selection, checkExpectation bool) (GenerationOutcome, error) {
	if popSize <= 0 {
		return GenerationOutcome{}, &ValidationError{Argument: "pop_size", Value: popSize,
			Requirement: "0 < pop_size"}
	}
	if nbType1 < 0 || nbType1 > popSize {
		return GenerationOutcome{}, &ValidationError{Argument: "nb_type1", Value: nbType1,
			Requirement: "0 <= nb_type1 <= pop_size"}
	}
	if err := sel.validate(); err != nil {
		return GenerationOutcome{}, err
	}
	if checkExpectation {
		if err := m.CheckExpectation(); err != nil {
			return GenerationOutcome{}, err
		}
	}

	rng := m.rng()

	// math.Round rounds half away from zero; that is the documented policy
	// for the fecundity boost.
	offspringType1 := int(math.Round((1 + sel.Fecundity) * float64(m.Law.SampleTotalOffspring(rng, nbType1))))
	offspringOther := m.Law.SampleTotalOffspring(rng, popSize-nbType1)
	total := offspringType1 + offspringOther

	if total >= popSize {
		var survivors int
		if sel.Viability == 0 {
			survivors = hypergeometricDraw(rng, offspringType1, offspringOther, popSize)
		} else {
			survivors = walleniusDraw(rng, offspringType1, offspringOther, popSize, 1+sel.Viability)
		}
		return GenerationOutcome{NewCount: survivors}, nil
	}

	// There have not been enough offspring with the Cannings reproduction:
	// complete the generation with a Wright-Fisher reproduction so that there
	// are exactly popSize offspring.
	shortage := popSize - total
	additional := wrightFisherTopUp(rng, nbType1, popSize, shortage)
	return GenerationOutcome{NewCount: offspringType1 + additional, Shortage: shortage}, nil
}
