// Package types defines the shared data model for the distributed
// query-segment scheduler: plan segments and their dependency graph,
// scheduling tasks and task instances, worker nodes, attempt states
// and the error kinds surfaced by a scheduling attempt.
package types
