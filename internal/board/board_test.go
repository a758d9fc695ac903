package board

import "testing"

// TestNew verifies that a fresh board starts with every row unoccupied.
func TestNew(t *testing.T) {
	t.Parallel()
	b := New(4)

	if b.Size() != 4 {
		t.Errorf("Size() = %d, want 4", b.Size())
	}
	for row := 0; row < 4; row++ {
		if b.Column(row) != Empty {
			t.Errorf("Column(%d) = %d, want Empty", row, b.Column(row))
		}
	}
	if b.IsComplete() {
		t.Error("empty board reported as complete")
	}
}

// TestIsSafe verifies column and diagonal conflict detection against queens
// placed in earlier rows.
func TestIsSafe(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		placed [][2]int // (row, col) pairs placed before the check
		row    int
		col    int
		want   bool
	}{
		{name: "empty board is safe everywhere", row: 0, col: 3, want: true},
		{name: "same column", placed: [][2]int{{0, 2}}, row: 2, col: 2, want: false},
		{name: "main diagonal", placed: [][2]int{{0, 0}}, row: 3, col: 3, want: false},
		{name: "anti diagonal", placed: [][2]int{{0, 3}}, row: 2, col: 1, want: false},
		{name: "knight move is safe", placed: [][2]int{{0, 0}}, row: 1, col: 2, want: true},
		{name: "conflict in middle row", placed: [][2]int{{0, 1}, {1, 3}}, row: 2, col: 2, want: false},
		{name: "valid third placement", placed: [][2]int{{0, 1}, {1, 3}}, row: 2, col: 0, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := New(4)
			for _, p := range tt.placed {
				b.Place(p[0], p[1])
			}
			if got := b.IsSafe(tt.row, tt.col); got != tt.want {
				t.Errorf("IsSafe(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

// TestPlaceRemove verifies in-place mutation and backtracking semantics.
func TestPlaceRemove(t *testing.T) {
	t.Parallel()
	b := New(4)

	b.Place(0, 1)
	if b.Column(0) != 1 {
		t.Errorf("Column(0) = %d after Place, want 1", b.Column(0))
	}

	b.Remove(0)
	if b.Column(0) != Empty {
		t.Errorf("Column(0) = %d after Remove, want Empty", b.Column(0))
	}
}

// TestIsComplete verifies that completeness requires every row occupied.
func TestIsComplete(t *testing.T) {
	t.Parallel()
	b := New(4)
	placements := [][2]int{{0, 1}, {1, 3}, {2, 0}, {3, 2}}

	for i, p := range placements {
		if b.IsComplete() {
			t.Fatalf("board complete after %d placements", i)
		}
		b.Place(p[0], p[1])
	}
	if !b.IsComplete() {
		t.Error("board with all rows occupied reported as incomplete")
	}
}

// TestSnapshotIsDefensive verifies that mutating the board after taking a
// snapshot does not alter the snapshot.
func TestSnapshotIsDefensive(t *testing.T) {
	t.Parallel()
	b := New(4)
	b.Place(0, 1)

	snapshot := b.Snapshot()
	b.Place(0, 3)

	if snapshot[0] != 1 {
		t.Errorf("snapshot[0] = %d after board mutation, want 1", snapshot[0])
	}
}

// TestSolutionIsValid verifies the non-attack predicate on full solutions.
func TestSolutionIsValid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		solution Solution
		want     bool
	}{
		{name: "valid 4-queens", solution: Solution{1, 3, 0, 2}, want: true},
		{name: "other valid 4-queens", solution: Solution{2, 0, 3, 1}, want: true},
		{name: "column clash", solution: Solution{1, 1, 0, 2}, want: false},
		{name: "diagonal clash", solution: Solution{0, 1, 3, 2}, want: false},
		{name: "out of range column", solution: Solution{1, 3, 4, 2}, want: false},
		{name: "sentinel left behind", solution: Solution{1, 3, Empty, 2}, want: false},
		{name: "trivial 1-queens", solution: Solution{0}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.solution.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSolutionString verifies the textual Q/. rendering.
func TestSolutionString(t *testing.T) {
	t.Parallel()
	s := Solution{1, 3, 0, 2}
	want := ". Q . .\n" +
		". . . Q\n" +
		"Q . . .\n" +
		". . Q .\n"

	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
