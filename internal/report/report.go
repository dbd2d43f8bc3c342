// Package report writes standings in one of the supported output formats.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/leaguerank/internal/league"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists every format Render accepts.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// IsSupported reports whether format can be rendered.
func IsSupported(format string) bool {
	return slices.Contains(Formats, format)
}

// document is the structured form of a report. Units are included so
// machine readers can reproduce the text rendering.
type document struct {
	Units     units             `json:"units" yaml:"units"`
	Standings league.Standings `json:"standings" yaml:"standings"`
}

type units struct {
	Singular string `json:"singular" yaml:"singular"`
	Plural   string `json:"plural" yaml:"plural"`
}

// Render writes standings to w. The text format is the plain ranking table;
// structured formats always emit a (possibly empty) standings list.
func Render(w io.Writer, format string, standings league.Standings, u league.Units) error {
	if standings == nil {
		standings = league.Standings{}
	}
	doc := document{Units: units{Singular: u.Singular, Plural: u.Plural}, Standings: standings}

	switch format {
	case FormatText:
		_, err := io.WriteString(w, standings.Format(u))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}
