// Package orchestration coordinates the concurrent N-Queens search: it plans
// partitions, launches one worker goroutine per partition, and aggregates
// solutions and statistics. It decouples the search core from presentation
// via the StepReporter and ResultPresenter interfaces.
package orchestration
