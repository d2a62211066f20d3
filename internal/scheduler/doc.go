// Package scheduler orchestrates one query attempt over a plan
// graph: it seeds the ready queue with zero-dependency segments,
// dispatches ready tasks to workers through the dispatch package,
// advances the graph as completions arrive, and enforces the attempt
// deadline. Two strategies share the dependency-tracking engine: the
// sequential strategy runs strictly layer by layer, the pipelined
// strategy overlaps rounds under the ready queue's backpressure bound.
package scheduler
