package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level block a league file may contain.
type fileRoot struct {
	Scoring *ScoringBlock `hcl:"scoring,block"`
	Units   *UnitsBlock   `hcl:"units,block"`
	Remain  hcl.Body      `hcl:",remain"`
}

// ScoringBlock is the raw `scoring` block. Attributes are kept as
// expressions so omitted ones can fall back to defaults.
type ScoringBlock struct {
	Win  hcl.Expression `hcl:"win,optional"`
	Tie  hcl.Expression `hcl:"tie,optional"`
	Loss hcl.Expression `hcl:"loss,optional"`
}

// UnitsBlock is the raw `units` block.
type UnitsBlock struct {
	Singular hcl.Expression `hcl:"singular,optional"`
	Plural   hcl.Expression `hcl:"plural,optional"`
}
