// Package dispatch turns ready segment tasks into worker RPC activity.
// It defines the worker client contract consumed by the scheduler, the
// cancellable AsyncCall handle used for asynchronous submissions, the
// first-write-wins error slot shared across callback goroutines, and
// the Dispatcher that pushes resources and submits segment instances
// with deadline-derived per-call timeouts.
package dispatch
