package types

// SegmentID identifies a plan segment within one query plan.
type SegmentID uint64

// Segment is a node of a query's physical plan: a unit of work that
// becomes schedulable once every segment it depends on has succeeded.
// A Segment is immutable after the graph is built.
type Segment struct {
	// ID is the segment's identity within the plan.
	ID SegmentID

	// Dependencies lists the segments that must succeed before this
	// segment may be dispatched.
	Dependencies []SegmentID

	// Parallelism is the number of parallel instances to create.
	// Values below 1 are treated as 1.
	Parallelism int

	// HasTableScanOrValue marks segments that read a table or supply
	// literal input. It affects worker placement.
	HasTableScanOrValue bool

	// Payload is the opaque encoded segment shipped to workers.
	// The scheduler never inspects it.
	Payload []byte
}

// InstanceCount returns the effective number of parallel instances.
func (s *Segment) InstanceCount() int {
	if s.Parallelism < 1 {
		return 1
	}
	return s.Parallelism
}

// DependsOn reports whether the segment directly depends on id.
func (s *Segment) DependsOn(id SegmentID) bool {
	for _, dep := range s.Dependencies {
		if dep == id {
			return true
		}
	}
	return false
}
