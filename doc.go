// Package cannings provides a Go implementation of discrete-generation
// Cannings population-genetics models with natural selection.
//
// A Cannings model describes a haploid population of fixed size N in which
// every individual independently produces a random number of offspring, and
// the N survivors that form the next generation are drawn among the whole
// offspring pool. Two offspring regimes are built in: the heavy-tailed
// power-law distribution of Schweinsberg (which approximates a
// beta-coalescent genealogy) and the Poisson distribution (which approximates
// a Wright-Fisher model when its mean is close to one).
//
// Natural selection can be added for the individuals of type 1: fecundity
// selection multiplies their offspring count by (1 + s), while viability
// selection biases the survivor draw with a Wallenius weighted hypergeometric
// distribution of odds (1 + s).
//
// This implementation is based on the Cannings Python package by
// Marie Temple-Boyer and on Schweinsberg (2003), "Coalescent processes
// obtained from supercritical Galton-Watson processes".
//
// Basic usage:
//
//	// Build an offspring law
//	law, err := cannings.NewSchweinsberg(1.5, 0.1)
//	if err != nil {
//		log.Fatalf("Error building law: %v", err)
//	}
//
//	// Create a model with a reproducible random stream
//	model := &cannings.Model{Law: law, Rand: cannings.NewRand(42)}
//
//	// Run one trial until fixation or extinction
//	res, err := model.Fixation(100, 10, cannings.FixationOptions{
//		Selection: cannings.Selection{Viability: 1},
//	})
//	if err != nil {
//		log.Fatalf("Error running fixation: %v", err)
//	}
//
//	if res.Fixation {
//		fmt.Printf("Type 1 fixed after %d generations\n", res.Generations)
//	}
package cannings
