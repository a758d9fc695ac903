package search

import "fmt"

// TerminationPolicy determines whether a worker keeps searching a starting
// column after recording a solution for it.
type TerminationPolicy int

const (
	// Exhaustive explores every remaining alternative at every row even
	// after recording a solution, producing all solutions reachable from
	// every starting column in the worker's partition.
	Exhaustive TerminationPolicy = iota
	// FirstPerBranch stops searching the current starting column once a
	// solution is recorded for it, then proceeds to the worker's next
	// starting column. Trades completeness for a fast "does a solution
	// exist from this start" signal.
	FirstPerBranch
)

// String returns the policy name as used in configuration values.
func (p TerminationPolicy) String() string {
	switch p {
	case Exhaustive:
		return "exhaustive"
	case FirstPerBranch:
		return "first"
	default:
		return fmt.Sprintf("TerminationPolicy(%d)", int(p))
	}
}

// ParseTerminationPolicy converts a configuration value into a policy.
// Accepted values: "exhaustive", "all", "first", "first-per-branch".
func ParseTerminationPolicy(s string) (TerminationPolicy, error) {
	switch s {
	case "exhaustive", "all":
		return Exhaustive, nil
	case "first", "first-per-branch":
		return FirstPerBranch, nil
	default:
		return Exhaustive, fmt.Errorf("unknown termination policy %q", s)
	}
}
