// Package partition divides the first-row starting columns of an N-Queens
// search into contiguous, non-overlapping ranges, one per worker.
package partition

import (
	"fmt"
	"runtime"
)

// WorkerCountPolicy determines how many concurrent workers a run spawns.
type WorkerCountPolicy int

const (
	// Auto scales the worker count with available parallelism:
	// clamp(N / availableParallelism, 1, N).
	Auto WorkerCountPolicy = iota
	// Maximal spawns one worker per starting column (N workers).
	Maximal
)

// String returns the policy name as used in configuration values.
func (p WorkerCountPolicy) String() string {
	switch p {
	case Auto:
		return "auto"
	case Maximal:
		return "max"
	default:
		return fmt.Sprintf("WorkerCountPolicy(%d)", int(p))
	}
}

// ParseWorkerCountPolicy converts a configuration value into a policy.
// Accepted values: "auto", "max", "maximal", "all".
func ParseWorkerCountPolicy(s string) (WorkerCountPolicy, error) {
	switch s {
	case "auto":
		return Auto, nil
	case "max", "maximal", "all":
		return Maximal, nil
	default:
		return Auto, fmt.Errorf("unknown worker count policy %q", s)
	}
}

// Partition is a contiguous range [Lo, Hi) of starting-column indices owned
// exclusively by one worker for the duration of a run.
type Partition struct {
	// Lo is the first starting column in the range (inclusive).
	Lo int
	// Hi is the end of the range (exclusive).
	Hi int
}

// Len returns the number of starting columns in the partition.
func (p Partition) Len() int { return p.Hi - p.Lo }

// WorkerCount computes the number of workers for a board of size n under the
// given policy. parallelism is the number of processors available to the
// scheduler; values < 1 fall back to runtime.NumCPU(). The result is always
// in [1, n].
func WorkerCount(n int, policy WorkerCountPolicy, parallelism int) int {
	if n < 1 {
		return 0
	}
	if policy == Maximal {
		return n
	}
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}
	workers := n / parallelism
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	return workers
}

// Plan partitions the starting columns [0, n) into contiguous blocks of size
// ceil(n / workerCount), the last block truncated to fit. Blocks whose start
// index would reach n are not emitted, so every returned partition is
// non-empty and their union covers [0, n) exactly once.
//
// Plan is deterministic: identical (n, policy, parallelism) inputs always
// produce an identical partition set.
func Plan(n int, policy WorkerCountPolicy, parallelism int) []Partition {
	workers := WorkerCount(n, policy, parallelism)
	if workers == 0 {
		return nil
	}

	blockSize := (n + workers - 1) / workers
	partitions := make([]Partition, 0, workers)
	for lo := 0; lo < n; lo += blockSize {
		hi := lo + blockSize
		if hi > n {
			hi = n
		}
		partitions = append(partitions, Partition{Lo: lo, Hi: hi})
	}
	return partitions
}
