package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/nqueens/internal/board"
)

// BoardModel renders the chessboard panel. During the search it shows the
// most recent partial placement from any worker; after completion it shows
// the selected solution.
type BoardModel struct {
	n      int
	cells  []int
	row    int
	worker int

	solutionIdx   int
	solutionCount int
	showSolution  bool

	width  int
	height int
}

// NewBoardModel creates a board panel for an n x n board.
func NewBoardModel(n int) BoardModel {
	cells := make([]int, n)
	for i := range cells {
		cells[i] = board.Empty
	}
	return BoardModel{n: n, cells: cells}
}

// SetSize updates dimensions.
func (b *BoardModel) SetSize(w, h int) {
	b.width = w
	b.height = h
}

// SetStep displays a partial placement reported by a worker.
func (b *BoardModel) SetStep(cells []int, row, worker int) {
	if len(cells) != b.n {
		return
	}
	copy(b.cells, cells)
	b.row = row
	b.worker = worker
	b.showSolution = false
}

// ShowSolution displays one finished solution out of the total.
func (b *BoardModel) ShowSolution(sol board.Solution, idx, total int) {
	if len(sol) != b.n {
		return
	}
	copy(b.cells, sol)
	b.solutionIdx = idx
	b.solutionCount = total
	b.showSolution = true
}

// Reset clears the board back to an empty state.
func (b *BoardModel) Reset() {
	for i := range b.cells {
		b.cells[i] = board.Empty
	}
	b.row = 0
	b.worker = 0
	b.showSolution = false
	b.solutionCount = 0
}

// View renders the board panel.
func (b BoardModel) View() string {
	var rows strings.Builder

	if b.showSolution {
		rows.WriteString(metricLabelStyle.Render(
			fmt.Sprintf(" Solution %d / %d", b.solutionIdx+1, b.solutionCount)))
	} else {
		rows.WriteString(metricLabelStyle.Render(
			fmt.Sprintf(" Worker %d exploring row %d", b.worker, b.row)))
	}
	rows.WriteString("\n\n")

	queen := queenStyle.Render("Q")
	empty := emptyCellStyle.Render("·")

	for r := 0; r < b.n; r++ {
		rows.WriteString("  ")
		for c := 0; c < b.n; c++ {
			if b.cells[r] == c {
				rows.WriteString(queen)
			} else {
				rows.WriteString(empty)
			}
			if c < b.n-1 {
				rows.WriteString(" ")
			}
		}
		if !b.showSolution && r == b.row {
			rows.WriteString(activeRowStyle.Render("  ◀"))
		}
		rows.WriteString("\n")
	}

	return panelStyle.
		Width(b.width - 2).
		Height(b.height - 2).
		Render(rows.String())
}
