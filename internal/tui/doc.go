// Package tui implements the interactive dashboard mode. It renders a live
// board animation while workers search, a stats panel with runtime and system
// metrics, and solution navigation once the search completes.
//
// The package follows the bubbletea architecture: a root Model owns
// sub-models for each panel, bridge goroutines forward engine updates as
// messages, and all rendering happens in View.
package tui
