package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version, overridden at build time via
// -ldflags "-X github.com/agbru/nqueens/internal/app.Version=v1.2.3".
var Version = "dev"

// HasVersionFlag reports whether the argument list requests the version.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" || arg == "-V" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version line.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "nqueens %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
