package types

import "fmt"

// PlanGraph is the dependency graph of a query's plan segments.
// The final segment is the sink of the graph; its completion ends the
// query. A PlanGraph is built once and never mutated afterwards.
type PlanGraph struct {
	segments map[SegmentID]*Segment
	order    []SegmentID
	finalID  SegmentID
}

// NewPlanGraph builds a graph from segments. finalID must name the
// terminal segment. Segment order is preserved for deterministic
// enumeration.
func NewPlanGraph(segments []*Segment, finalID SegmentID) (*PlanGraph, error) {
	g := &PlanGraph{
		segments: make(map[SegmentID]*Segment, len(segments)),
		order:    make([]SegmentID, 0, len(segments)),
		finalID:  finalID,
	}
	for _, seg := range segments {
		if seg == nil {
			return nil, fmt.Errorf("segment cannot be nil")
		}
		if _, exists := g.segments[seg.ID]; exists {
			return nil, fmt.Errorf("duplicate segment id: %d", seg.ID)
		}
		g.segments[seg.ID] = seg
		g.order = append(g.order, seg.ID)
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// validate rejects unknown dependencies, a missing or depended-upon
// final segment, and cycles.
func (g *PlanGraph) validate() error {
	if _, ok := g.segments[g.finalID]; !ok {
		return fmt.Errorf("final segment %d not in graph", g.finalID)
	}
	for _, id := range g.order {
		for _, dep := range g.segments[id].Dependencies {
			if _, ok := g.segments[dep]; !ok {
				return fmt.Errorf("segment %d depends on unknown segment %d", id, dep)
			}
			if dep == id {
				return fmt.Errorf("segment %d depends on itself", id)
			}
		}
	}
	for _, id := range g.order {
		if g.segments[id].DependsOn(g.finalID) {
			return fmt.Errorf("final segment %d has dependent %d", g.finalID, id)
		}
	}
	return g.checkAcyclic()
}

// checkAcyclic runs Kahn's algorithm over the dependency edges.
func (g *PlanGraph) checkAcyclic() error {
	pending := make(map[SegmentID]int, len(g.segments))
	dependents := make(map[SegmentID][]SegmentID, len(g.segments))
	queue := make([]SegmentID, 0, len(g.segments))
	for _, id := range g.order {
		seg := g.segments[id]
		pending[id] = len(seg.Dependencies)
		for _, dep := range seg.Dependencies {
			dependents[dep] = append(dependents[dep], id)
		}
		if len(seg.Dependencies) == 0 {
			queue = append(queue, id)
		}
	}
	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dependent := range dependents[id] {
			pending[dependent]--
			if pending[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}
	if visited != len(g.segments) {
		return fmt.Errorf("plan graph contains a dependency cycle")
	}
	return nil
}

// Segment returns the segment with the given id, or nil.
func (g *PlanGraph) Segment(id SegmentID) *Segment {
	return g.segments[id]
}

// SegmentIDs enumerates all segment ids in insertion order.
func (g *PlanGraph) SegmentIDs() []SegmentID {
	ids := make([]SegmentID, len(g.order))
	copy(ids, g.order)
	return ids
}

// Dependencies returns the dependency ids of a segment.
func (g *PlanGraph) Dependencies(id SegmentID) []SegmentID {
	seg := g.segments[id]
	if seg == nil {
		return nil
	}
	return seg.Dependencies
}

// FinalSegmentID identifies the terminal segment of the graph.
func (g *PlanGraph) FinalSegmentID() SegmentID {
	return g.finalID
}

// Len returns the number of segments in the graph.
func (g *PlanGraph) Len() int {
	return len(g.segments)
}
