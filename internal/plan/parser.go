// Package plan parses query plan definitions from YAML into plan
// graphs the scheduler can execute.
package plan

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"distql/scheduler/pkg/types"
)

// File is the YAML representation of a query plan.
type File struct {
	QueryID      string          `yaml:"query_id"`
	FinalSegment types.SegmentID `yaml:"final_segment"`
	Segments     []SegmentSpec   `yaml:"segments"`
}

// SegmentSpec is one segment entry of a plan file.
type SegmentSpec struct {
	ID                  types.SegmentID   `yaml:"id"`
	Dependencies        []types.SegmentID `yaml:"dependencies,omitempty"`
	Parallelism         int               `yaml:"parallelism"`
	HasTableScanOrValue bool              `yaml:"has_table_scan_or_value"`
	Payload             string            `yaml:"payload,omitempty"`
}

// Parser parses plan files.
type Parser struct{}

// NewParser creates a plan parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses a plan definition from bytes and validates the graph.
func (p *Parser) Parse(data []byte) (*File, *types.PlanGraph, error) {
	var file File

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Strict mode: error on unknown fields

	if err := decoder.Decode(&file); err != nil {
		return nil, nil, fmt.Errorf("parsing plan: %w", err)
	}

	if file.QueryID == "" {
		return nil, nil, fmt.Errorf("plan has no query_id")
	}
	if len(file.Segments) == 0 {
		return nil, nil, fmt.Errorf("plan has no segments")
	}

	segments := make([]*types.Segment, len(file.Segments))
	for i, spec := range file.Segments {
		segments[i] = &types.Segment{
			ID:                  spec.ID,
			Dependencies:        spec.Dependencies,
			Parallelism:         spec.Parallelism,
			HasTableScanOrValue: spec.HasTableScanOrValue,
			Payload:             []byte(spec.Payload),
		}
	}

	graph, err := types.NewPlanGraph(segments, file.FinalSegment)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid plan: %w", err)
	}
	return &file, graph, nil
}

// ParseFile parses a plan definition from a file path.
func (p *Parser) ParseFile(path string) (*File, *types.PlanGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading plan file: %w", err)
	}
	return p.Parse(data)
}
