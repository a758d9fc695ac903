// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayProgress], [DisplayQuietResult], [DisplayRunWithConfig].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteSolutionsToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/nqueens/internal/orchestration"
	"github.com/agbru/nqueens/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the solutions (empty for no file output).
	OutputFile string
	// Quiet mode suppresses everything except the solution count.
	Quiet bool
	// ShowBoards enables printing of solution boards to the terminal.
	ShowBoards bool
	// MaxBoards caps the number of boards printed to the terminal.
	MaxBoards int
}

// WriteSolutionsToFile writes a finished run to a file, header first and then
// every solution board. Unlike terminal output, file output is never capped.
//
// Parameters:
//   - result: The finished run to persist.
//   - config: Output configuration; no-op when OutputFile is empty.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteSolutionsToFile(result orchestration.Result, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	st := result.Stats

	// Write header
	fmt.Fprintf(file, "# N-Queens Search Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Run ID: %s\n", result.RunID)
	fmt.Fprintf(file, "# Board size: %d\n", st.BoardSize)
	fmt.Fprintf(file, "# Solutions: %d\n", st.SolutionsFound)
	fmt.Fprintf(file, "# States explored: %d\n", st.StatesExplored)
	fmt.Fprintf(file, "# Workers: %d\n", st.WorkersUsed)
	fmt.Fprintf(file, "# Duration: %s\n", st.Duration)
	if result.Stopped {
		fmt.Fprintf(file, "# Stopped early: results are a subset\n")
	}

	for i, sol := range result.Solutions {
		fmt.Fprintf(file, "\nSolution %d:\n%s", i+1, sol.String())
	}

	return nil
}

// FormatQuietResult formats a run for quiet mode output.
// Returns a single-line solution count suitable for scripting.
func FormatQuietResult(result orchestration.Result) string {
	return fmt.Sprintf("%d", result.Stats.SolutionsFound)
}

// DisplayQuietResult outputs a run in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, result orchestration.Result) {
	fmt.Fprintln(out, FormatQuietResult(result))
}

// DisplayRunWithConfig displays a finished run with the given output
// configuration. This is a unified function that handles all output modes.
//
// Parameters:
//   - out: The output writer.
//   - result: The finished run.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if file output fails.
func DisplayRunWithConfig(out io.Writer, result orchestration.Result, config OutputConfig) error {
	// Handle quiet mode
	if config.Quiet {
		DisplayQuietResult(out, result)
	} else {
		presenter := CLIResultPresenter{ShowBoards: config.ShowBoards, MaxBoards: config.MaxBoards}
		presenter.PresentStats(result, out)
		presenter.PresentSolutions(result, out)
	}

	// Save to file if requested
	if config.OutputFile != "" {
		if err := WriteSolutionsToFile(result, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Solutions saved to: %s%s%s\n",
				ui.ColorSuccess(), ui.ColorPrimary(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}
