package cannings

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// OffspringLaw is the reproduction strategy of a Cannings model: it maps a
// number of parents to a random total offspring count. Implementations must
// be stateless apart from the random stream they are handed, and must return
// 0 for 0 parents without consuming any randomness. The same law is invoked
// twice per generation, once for each subpopulation.
type OffspringLaw interface {
	// SampleTotalOffspring returns the random total number of offspring of
	// nbParents individuals. A nil rng means the shared package source.
	SampleTotalOffspring(rng *rand.Rand, nbParents int) int

	// ExpectedOffspring returns the expected number of offspring per
	// individual. It may be math.Inf(1) for heavy-tailed laws.
	ExpectedOffspring() float64

	// Name identifies the law, e.g. in config files and stored records.
	Name() string
}

// --- Schweinsberg (power-law) offspring distribution ---

// SchweinsbergLaw is the offspring distribution that approximates a
// beta-coalescent of parameter Alpha (Schweinsberg, 2003):
//   - the probability that an individual has no offspring is P0,
//   - the probability that an individual has at least k offspring (k >= 1)
//     is (1-P0) / k^Alpha.
//
// Build it with NewSchweinsberg so the parameters are validated once.
type SchweinsbergLaw struct {
	Alpha float64
	P0    float64
}

// NewSchweinsberg constructs a power-law offspring distribution with
// parameters alpha and p0. It returns a *ParameterError if alpha <= 0 or p0
// is outside [0, 1].
func NewSchweinsberg(alpha, p0 float64) (SchweinsbergLaw, error) {
	if !(alpha > 0) {
		return SchweinsbergLaw{}, &ParameterError{Name: "alpha", Value: alpha, Requirement: "0 < alpha"}
	}
	if !(p0 >= 0 && p0 <= 1) {
		return SchweinsbergLaw{}, &ParameterError{Name: "p0", Value: p0, Requirement: "0 <= p0 <= 1"}
	}
	return SchweinsbergLaw{Alpha: alpha, P0: p0}, nil
}

// Name returns "schweinsberg".
func (l SchweinsbergLaw) Name() string { return "schweinsberg" }

// SampleTotalOffspring draws one offspring count per parent by inversion,
// floor(((1-P0)/u)^(1/Alpha)) for u uniform on (0,1), and returns the sum.
// If P0 == 1 no individual ever reproduces and the result is 0.
func (l SchweinsbergLaw) SampleTotalOffspring(rng *rand.Rand, nbParents int) int {
	if l.P0 == 1 || nbParents <= 0 {
		return 0
	}
	return schweinsbergTotal(source(rng), l.Alpha, l.P0, nbParents)
}

// schweinsbergTotal is the sampling core, split out so the inversion can be
// exercised with a deterministic uniform source.
func schweinsbergTotal(u uniformSource, alpha, p0 float64, nbParents int) int {
	total := 0
	for i := 0; i < nbParents; i++ {
		v := u.Float64()
		for v == 0 { // u must stay in (0,1) for the inversion
			v = u.Float64()
		}
		offspring := math.Floor(math.Pow((1-p0)/v, 1/alpha))
		if offspring > math.MaxInt32 {
			// Heavy tails with alpha < 1 can blow past any realistic
			// population size; clamp instead of overflowing the conversion.
			offspring = math.MaxInt32
		}
		total += int(offspring)
	}
	return total
}

// ExpectedOffspring returns (1-P0)*zeta(Alpha) when Alpha > 1 and +Inf
// otherwise (the mean diverges).
func (l SchweinsbergLaw) ExpectedOffspring() float64 {
	if l.Alpha > 1 {
		return (1 - l.P0) * mathext.Zeta(l.Alpha, 1)
	}
	return math.Inf(1)
}

// --- Poisson offspring distribution ---

// PoissonLaw is a Cannings model offspring distribution where each individual
// has Poisson(Lambda) offspring. When Lambda is greater than one but close to
// one this approximates a Wright-Fisher model.
type PoissonLaw struct {
	Lambda float64
}

// NewPoisson constructs a Poisson offspring distribution of rate lambda.
// It returns a *ParameterError if lambda <= 0.
func NewPoisson(lambda float64) (PoissonLaw, error) {
	if !(lambda > 0) {
		return PoissonLaw{}, &ParameterError{Name: "lambda", Value: lambda, Requirement: "0 < lambda"}
	}
	return PoissonLaw{Lambda: lambda}, nil
}

// Name returns "poisson".
func (l PoissonLaw) Name() string { return "poisson" }

// SampleTotalOffspring returns the sum of nbParents i.i.d. Poisson(Lambda)
// draws.
func (l PoissonLaw) SampleTotalOffspring(rng *rand.Rand, nbParents int) int {
	if nbParents <= 0 {
		return 0
	}
	dist := distuv.Poisson{Lambda: l.Lambda, Src: source(rng)}
	total := 0
	for i := 0; i < nbParents; i++ {
		total += int(dist.Rand())
	}
	return total
}

// ExpectedOffspring returns Lambda.
func (l PoissonLaw) ExpectedOffspring() float64 { return l.Lambda }

// --- Constant offspring distribution ---

// ConstantLaw gives every individual exactly PerParent offspring. It has no
// randomness at all, which makes it convenient for sanity checks and tests.
type ConstantLaw struct {
	PerParent int
}

// Name returns "constant".
func (l ConstantLaw) Name() string { return "constant" }

// SampleTotalOffspring returns nbParents * PerParent.
func (l ConstantLaw) SampleTotalOffspring(_ *rand.Rand, nbParents int) int {
	if nbParents <= 0 {
		return 0
	}
	return nbParents * l.PerParent
}

// ExpectedOffspring returns PerParent.
func (l ConstantLaw) ExpectedOffspring() float64 { return float64(l.PerParent) }

// --- User-supplied offspring distributions ---

// LawFunc adapts plain functions to the OffspringLaw interface, for offspring
// distributions that are not built in.
type LawFunc struct {
	LawName     string
	Sample      func(rng *rand.Rand, nbParents int) int
	Expectation func() float64 // optional; NaN when absent
}

// Name returns the user-chosen law name, or "custom" when unset.
func (f LawFunc) Name() string {
	if f.LawName == "" {
		return "custom"
	}
	return f.LawName
}

// SampleTotalOffspring delegates to the Sample closure. The 0-parents
// convention is enforced here so closures do not have to repeat it.
func (f LawFunc) SampleTotalOffspring(rng *rand.Rand, nbParents int) int {
	if nbParents <= 0 {
		return 0
	}
	return f.Sample(source(rng), nbParents)
}

// ExpectedOffspring delegates to the Expectation closure when present.
func (f LawFunc) ExpectedOffspring() float64 {
	if f.Expectation == nil {
		return math.NaN()
	}
	return f.Expectation()
}

// --- Law registry ---

// LawConstructor builds an offspring law from the [Cannings] section of a
// config file.
type LawConstructor func(cfg *CanningsConfig) (OffspringLaw, error)

// Laws maps law names to their constructors. User programs may register
// additional laws before loading configs.
var Laws = map[string]LawConstructor{
	"schweinsberg": func(cfg *CanningsConfig) (OffspringLaw, error) {
		law, err := NewSchweinsberg(cfg.Alpha, cfg.P0)
		if err != nil {
			return nil, err
		}
		return law, nil
	},
	"poisson": func(cfg *CanningsConfig) (OffspringLaw, error) {
		law, err := NewPoisson(cfg.Lambda)
		if err != nil {
			return nil, err
		}
		return law, nil
	},
	"constant": func(cfg *CanningsConfig) (OffspringLaw, error) {
		return ConstantLaw{PerParent: cfg.PerParent}, nil
	},
}

// GetLaw retrieves a law constructor by name and builds the law.
func GetLaw(name string, cfg *CanningsConfig) (OffspringLaw, error) {
	if ctor, ok := Laws[name]; ok {
		return ctor(cfg)
	}
	return nil, &ValidationError{Argument: "model", Value: name,
		Requirement: "one of 'schweinsberg', 'poisson' or 'constant'"}
}
