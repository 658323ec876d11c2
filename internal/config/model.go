package config

import (
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
)

// Tournament is the merged content of all loaded files. Nil fields were not
// set by any file.
type Tournament struct {
	Rounds      *int
	ShownRounds *int
	BoardLength *int
	Budget      *time.Duration
	Workers     *int
	// Strategies lists the requested participants; empty means all.
	Strategies []string
	// StrategyBlocks holds the per-strategy blocks, keyed by name.
	StrategyBlocks map[string]*Strategy
}

// Strategy is one `strategy` block.
type Strategy struct {
	Name string
	// Disqualified is nil unless the block sets `disqualified`.
	Disqualified *bool

	body    hcl.Body
	evalCtx *hcl.EvalContext
	source  string
}

// HasOptions reports whether the block sets anything besides
// `disqualified`.
func (s *Strategy) HasOptions() bool {
	if s.body == nil {
		return false
	}
	attrs, diags := s.body.JustAttributes()
	return diags.HasErrors() || len(attrs) > 0
}

// Decode decodes the block's options into target, a pointer to a struct
// with `hcl` tags. Attributes the struct does not declare are an error.
func (s *Strategy) Decode(target any) error {
	if s.body == nil {
		return nil
	}
	if diags := gohcl.DecodeBody(s.body, s.evalCtx, target); diags.HasErrors() {
		return fmt.Errorf("failed to decode options of strategy '%s' in %s: %w", s.Name, s.source, diags)
	}
	return nil
}
