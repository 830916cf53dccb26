package cannings

import "fmt"

// ParameterError reports an offspring-law parameter outside its admissible
// range. It is returned at construction time, before any sampling happens.
type ParameterError struct {
	Name        string  // parameter name, e.g. "alpha"
	Value       float64 // the offending value
	Requirement string  // the range it must respect, e.g. "0 < alpha"
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s=%v but it must respect %s", e.Name, e.Value, e.Requirement)
}

// ExpectationError reports a sub-critical offspring distribution: the
// expectation of the number of offspring per individual is not greater than
// one, so the Cannings reproduction is not well defined and the chain would
// collapse toward extinction. It is only raised when the caller opts in with
// a check-expectation flag.
type ExpectationError struct {
	Expectation float64
}

func (e *ExpectationError) Error() string {
	return fmt.Sprintf("the expectation of the number of offspring per individual is %v "+
		"but it should be greater than one: the Cannings reproduction is not well defined", e.Expectation)
}

// ValidationError reports a malformed call argument, such as an initial count
// outside [0, pop_size] or an unknown selection type.
type ValidationError struct {
	Argument    string
	Value       interface{}
	Requirement string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s was '%v' but it must respect %s", e.Argument, e.Value, e.Requirement)
}
