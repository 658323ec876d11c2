package config

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of one configuration file.
type fileRoot struct {
	Tournament *tournamentBlock `hcl:"tournament,block"`
	Strategies []*strategyBlock `hcl:"strategy,block"`
}

// tournamentBlock is the `tournament` block. Pointer fields stay nil when
// the attribute is absent, so callers can tell "unset" from a zero value.
type tournamentBlock struct {
	Rounds      *int     `hcl:"rounds,optional"`
	ShownRounds *int     `hcl:"shown_rounds,optional"`
	BoardLength *int     `hcl:"board_length,optional"`
	Budget      *string  `hcl:"budget,optional"`
	Workers     *int     `hcl:"workers,optional"`
	Strategies  []string `hcl:"strategies,optional"`
}

// strategyBlock is a `strategy "name"` block.
type strategyBlock struct {
	Name         string   `hcl:"name,label"`
	Disqualified *bool    `hcl:"disqualified,optional"`
	Options      hcl.Body `hcl:",remain"`
}
