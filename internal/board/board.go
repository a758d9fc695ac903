// Package board implements the mutable chess-board state used by the
// backtracking search. A Board is owned by exactly one worker at a time and
// performs no synchronization of its own.
package board

import "strings"

// Empty is the sentinel column value for a row without a queen.
const Empty = -1

// Board represents an N×N board as a row→column mapping.
// board.Columns()[i] == j means a queen stands at row i, column j.
// During a depth-first descent the occupied rows always form a prefix.
type Board struct {
	size    int
	columns []int
}

// New creates an empty board of the given size. All rows start unoccupied.
func New(size int) *Board {
	columns := make([]int, size)
	for i := range columns {
		columns[i] = Empty
	}
	return &Board{size: size, columns: columns}
}

// Size returns the board dimension N.
func (b *Board) Size() int { return b.size }

// Column returns the column of the queen in the given row, or Empty.
func (b *Board) Column(row int) int { return b.columns[row] }

// IsSafe reports whether a queen placed at (row, col) would be attacked by
// any queen in rows [0, row). It checks the column and both diagonals.
// Cost is O(row).
func (b *Board) IsSafe(row, col int) bool {
	for i := 0; i < row; i++ {
		placed := b.columns[i]
		if placed == col {
			return false
		}
		if abs(placed-col) == abs(i-row) {
			return false
		}
	}
	return true
}

// Place puts a queen at (row, col). No validation is performed; the caller
// must have checked IsSafe first. Violating this is a programmer error.
func (b *Board) Place(row, col int) { b.columns[row] = col }

// Remove clears the queen from the given row during backtracking.
func (b *Board) Remove(row int) { b.columns[row] = Empty }

// IsComplete reports whether every row holds a queen.
func (b *Board) IsComplete() bool {
	for _, col := range b.columns {
		if col == Empty {
			return false
		}
	}
	return true
}

// Snapshot returns a defensive copy of the row→column mapping. It is safe to
// hand to callbacks that outlive the current descent.
func (b *Board) Snapshot() []int {
	snapshot := make([]int, len(b.columns))
	copy(snapshot, b.columns)
	return snapshot
}

// ToSolution freezes the current complete board into an immutable Solution.
func (b *Board) ToSolution() Solution {
	return Solution(b.Snapshot())
}

// Solution is an immutable ordered sequence of column indices, one per row,
// satisfying mutual non-attack. It is always a defensive copy of a Board
// snapshot taken at the moment all rows were filled.
type Solution []int

// IsValid reports whether the solution satisfies the N-Queens constraints:
// every row holds a valid column, no two rows share a column, and no two
// rows share a diagonal.
func (s Solution) IsValid() bool {
	n := len(s)
	for i := 0; i < n; i++ {
		if s[i] < 0 || s[i] >= n {
			return false
		}
		for j := i + 1; j < n; j++ {
			if s[i] == s[j] {
				return false
			}
			if abs(s[i]-s[j]) == j-i {
				return false
			}
		}
	}
	return true
}

// String renders the solution as rows of 'Q' and '.' characters separated by
// spaces, matching the conventional textual board display.
func (s Solution) String() string {
	var sb strings.Builder
	n := len(s)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if s[row] == col {
				sb.WriteByte('Q')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
