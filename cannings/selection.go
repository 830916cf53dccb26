package cannings

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Selection carries the selective advantages of the type-1 individuals for
// one generation. Zero values mean a neutral model. Both coefficients must be
// at least -1.
type Selection struct {
	// Fecundity multiplies the type-1 offspring count by (1 + Fecundity)
	// before the survivor draw. The product is rounded half away from zero.
	Fecundity float64

	// Viability gives each type-1 offspring a relative weight
	// (1 + Viability) in the survivor draw, making it a Wallenius
	// non-central hypergeometric draw instead of the classic one.
	Viability float64
}

func (s Selection) validate() error {
	if s.Fecundity < -1 {
		return &ValidationError{Argument: "selection_fecundity", Value: s.Fecundity,
			Requirement: "selection_fecundity >= -1"}
	}
	if s.Viability < -1 {
		return &ValidationError{Argument: "selection_viability", Value: s.Viability,
			Requirement: "selection_viability >= -1"}
	}
	return nil
}

// hypergeometricDraw samples the number of successes in a classic
// (exchangeable, unweighted) hypergeometric draw of draws items from an urn
// of successes + failures items, by sequential sampling without replacement.
// Requires successes + failures >= draws.
func hypergeometricDraw(u uniformSource, successes, failures, draws int) int {
	taken := 0
	remS, remF := successes, failures
	for i := 0; i < draws; i++ {
		if remS == 0 {
			break
		}
		if remF == 0 {
			taken += draws - i
			break
		}
		if u.Float64()*float64(remS+remF) < float64(remS) {
			taken++
			remS--
		} else {
			remF--
		}
	}
	return taken
}

// walleniusDraw samples the number of successes in a Wallenius non-central
// hypergeometric draw: items are drawn one by one without replacement, each
// remaining success having relative weight odds and each remaining failure
// weight 1. odds == 1 reduces to the classic draw.
func walleniusDraw(u uniformSource, successes, failures, draws int, odds float64) int {
	taken := 0
	remS, remF := successes, failures
	for i := 0; i < draws; i++ {
		if remS == 0 {
			break
		}
		if remF == 0 {
			taken += draws - i
			break
		}
		weighted := odds * float64(remS)
		if u.Float64()*(weighted+float64(remF)) < weighted {
			taken++
			remS--
		} else {
			remF--
		}
	}
	return taken
}

// wrightFisherTopUp returns the number of type-1 individuals among nbMissing
// offspring generated with a one-generation Wright-Fisher reproduction. Each
// of the nbMissing slots independently becomes type 1 with probability equal
// to the parental type-1 frequency, i.e. the result is
// Binomial(nbMissing, nbType1/popSize).
func wrightFisherTopUp(rng *rand.Rand, nbType1, popSize, nbMissing int) int {
	if nbMissing <= 0 || nbType1 == 0 {
		return 0
	}
	if nbType1 == popSize {
		return nbMissing
	}
	bin := distuv.Binomial{
		N:   float64(nbMissing),
		P:   float64(nbType1) / float64(popSize),
		Src: rng,
	}
	return int(bin.Rand())
}
