// Package search implements the recursive backtracking exploration of the
// N-Queens state space. A Worker owns one partition of first-row starting
// columns and one Board; discovered solutions and explored-state counts flow
// into a shared Aggregator that also carries the cooperative stop flag.
package search
