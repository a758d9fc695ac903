package app

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/nqueens/internal/cli"
	apperrors "github.com/agbru/nqueens/internal/errors"
	"github.com/agbru/nqueens/internal/format"
	"github.com/agbru/nqueens/internal/orchestration"
	"github.com/agbru/nqueens/internal/partition"
	"github.com/agbru/nqueens/internal/search"
	"github.com/agbru/nqueens/internal/ui"
)

// demoSizes are the board sizes walked through by the demo.
var demoSizes = []int{4, 6, 8}

// runDemo walks through the solver's capabilities on a few board sizes:
// exhaustive counts, a worker-policy comparison, and the first-per-branch
// termination policy.
func (a *Application) runDemo(ctx context.Context, out io.Writer) int {
	engine := orchestration.NewEngine(a.Logger)

	fmt.Fprintf(out, "%sN-Queens solver demo%s\n", ui.ColorBold(), ui.ColorReset())

	// Section 1: exhaustive counts per board size, with boards for the
	// smallest one.
	for _, n := range demoSizes {
		result, err := engine.Solve(ctx, orchestration.Options{
			BoardSize:   n,
			Workers:     partition.Auto,
			Termination: search.Exhaustive,
		})
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "demo solve failed for n=%d: %v\n", n, err)
			return apperrors.ExitCodeForError(err)
		}

		fmt.Fprintf(out, "\n%d-queens: %s%d solutions%s in %s (%s states)\n",
			n,
			ui.ColorSuccess(), result.Stats.SolutionsFound, ui.ColorReset(),
			format.FormatExecutionDuration(result.Stats.Duration),
			format.FormatCount(result.Stats.StatesExplored))

		if n == demoSizes[0] {
			presenter := cli.CLIResultPresenter{ShowBoards: true}
			presenter.PresentSolutions(result, out)
		}
	}

	// Section 2: worker-policy comparison on the largest demo board.
	n := demoSizes[len(demoSizes)-1]
	fmt.Fprintf(out, "\n%sWorker policy comparison on %d-queens%s\n", ui.ColorBold(), n, ui.ColorReset())
	for _, policy := range []partition.WorkerCountPolicy{partition.Auto, partition.Maximal} {
		result, err := engine.Solve(ctx, orchestration.Options{
			BoardSize:   n,
			Workers:     policy,
			Termination: search.Exhaustive,
		})
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "demo solve failed for policy %s: %v\n", policy, err)
			return apperrors.ExitCodeForError(err)
		}
		fmt.Fprintf(out, "  %-8s %d workers, %s\n",
			policy.String()+":", result.Stats.WorkersUsed,
			format.FormatExecutionDuration(result.Stats.Duration))
	}

	// Section 3: first-per-branch termination.
	result, err := engine.Solve(ctx, orchestration.Options{
		BoardSize:   n,
		Workers:     partition.Maximal,
		Termination: search.FirstPerBranch,
	})
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "demo solve failed for first-per-branch: %v\n", err)
		return apperrors.ExitCodeForError(err)
	}
	fmt.Fprintf(out, "\nFirst-per-branch on %d-queens: %d solutions (one per starting column), %s states\n",
		n, result.Stats.SolutionsFound, format.FormatCount(result.Stats.StatesExplored))

	return apperrors.ExitSuccess
}
