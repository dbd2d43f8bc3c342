package selftest

import (
	"context"
	"embed"
	"fmt"
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/specialistvlad/leaguerank/internal/league"
	"github.com/specialistvlad/leaguerank/internal/pipeline"
)

//go:embed scenarios/*.txt
var scenarios embed.FS

// Cases returns the full built-in suite.
func Cases() []Case {
	var out []Case
	out = append(out, leagueCases()...)
	out = append(out, parseCases()...)
	out = append(out, modifierCases()...)
	out = append(out, updateCases()...)
	out = append(out, sortCases()...)
	out = append(out, formatCases()...)
	return out
}

func leagueCases() []Case {
	names := []struct{ title, file string }{
		{"example", "sample"},
		{"all-tied", "tied"},
		{"empty", "empty"},
		{"two-lead", "two-lead"},
	}

	out := make([]Case, 0, len(names))
	for _, n := range names {
		out = append(out, Case{
			Name: "Calc: " + n.title,
			Check: func(ctx context.Context) (string, string, error) {
				return runLeague(ctx, n.file)
			},
		})
	}
	return out
}

func runLeague(ctx context.Context, name string) (string, string, error) {
	in, err := scenarios.Open(path.Join("scenarios", name+"-input.txt"))
	if err != nil {
		return "", "", err
	}
	defer in.Close()

	expected, err := scenarios.ReadFile(path.Join("scenarios", name+"-output.txt"))
	if err != nil {
		return "", "", err
	}

	res, err := pipeline.Run(ctx, in, league.DefaultScoring)
	if err != nil {
		return "", "", err
	}
	// Expected files may have been saved with Windows line endings.
	return res.Standings().String(), strings.ReplaceAll(string(expected), "\r", ""), nil
}

func parseCases() []Case {
	tests := []struct{ title, side, name string }{
		{"real-team", "1. FFC Turbine Potsdam 4", "1. FFC Turbine Potsdam"},
		{"number-name", "1 2 3 4 Kids 'R Awesome 5", "1 2 3 4 Kids 'R Awesome"},
		{"spaceTASTIC", "    j ump ing jac ks     4", "    j ump ing jac ks    "},
		{"shortName", "a 1", "a"},
		{"empty", "", ""},
		{"negative", "Team -2negative- -1", "Team -2negative-"},
	}

	out := make([]Case, 0, len(tests))
	for _, tt := range tests {
		out = append(out, Case{
			Name: "Prepare: " + tt.title,
			Check: func(context.Context) (string, string, error) {
				return league.ParseSide(tt.side).Name, tt.name, nil
			},
		})
	}
	return out
}

func modifierCases() []Case {
	tests := []struct {
		title      string
		home, away league.Score
		want       [2]int
	}{
		{"Team 1 Win", league.NewScore(1), league.NewScore(0), [2]int{3, 0}},
		{"Team 2 Win", league.NewScore(0), league.NewScore(1), [2]int{0, 3}},
		{"Team Tied", league.NewScore(1), league.NewScore(1), [2]int{1, 1}},
		{"Team Tied 0", league.NewScore(0), league.NewScore(0), [2]int{1, 1}},
		{"negative", league.NewScore(0), league.NewScore(-1), [2]int{3, 0}},
		{"empty", league.Score{}, league.Score{}, [2]int{1, 1}},
	}

	out := make([]Case, 0, len(tests))
	for _, tt := range tests {
		out = append(out, Case{
			Name: "Modifier: " + tt.title,
			Check: func(context.Context) (string, string, error) {
				home, away := league.Modifiers(tt.home, tt.away)
				return fmt.Sprint([2]int{home, away}), fmt.Sprint(tt.want), nil
			},
		})
	}
	return out
}

func updateCases() []Case {
	tests := []struct {
		title    string
		team     string
		modifier int
		start    league.Table
		want     league.Table
		rejected bool
	}{
		{"Add3Modifier", "a", 3, league.Table{"a": 2, "b": 1, "c": 4}, league.Table{"a": 5, "b": 1, "c": 4}, false},
		{"Add3ModifierNew", "a", 3, league.Table{"b": 1, "c": 4}, league.Table{"a": 3, "b": 1, "c": 4}, false},
		{"Add0ModifierNew", "a", 0, league.Table{"b": 1, "c": 4}, league.Table{"a": 0, "b": 1, "c": 4}, false},
		{"AddModifierMiddle", "b", 3, league.Table{"a": 2, "b": 1, "c": 4}, league.Table{"a": 2, "b": 4, "c": 4}, false},
		{"NegativeModifier", "a", -3, league.Table{"a": 2, "b": 1}, league.Table{"a": 2, "b": 1}, true},
		{"empty", "", 0, league.Table{}, league.Table{}, true},
	}

	out := make([]Case, 0, len(tests))
	for _, tt := range tests {
		out = append(out, Case{
			Name: "Update: " + tt.title,
			Check: func(context.Context) (string, string, error) {
				table := maps.Clone(tt.start)
				err := table.Apply(tt.team, tt.modifier)
				if (err != nil) != tt.rejected {
					return "", "", fmt.Errorf("unexpected update result: %v", err)
				}
				return describeTable(table), describeTable(tt.want), nil
			},
		})
	}
	return out
}

func sortCases() []Case {
	tests := []struct {
		title   string
		entries []league.Entry
		want    []league.Entry
	}{
		{"reversedMap", []league.Entry{{Team: "a", Points: 0}, {Team: "b", Points: 1}, {Team: "c", Points: 2}}, []league.Entry{{Team: "c", Points: 2}, {Team: "b", Points: 1}, {Team: "a", Points: 0}}},
		{"jumbledMap", []league.Entry{{Team: "a", Points: 1}, {Team: "b", Points: 0}, {Team: "c", Points: 2}}, []league.Entry{{Team: "c", Points: 2}, {Team: "a", Points: 1}, {Team: "b", Points: 0}}},
		{"alphabetical", []league.Entry{{Team: "c", Points: 0}, {Team: "a", Points: 0}, {Team: "b", Points: 0}}, []league.Entry{{Team: "a", Points: 0}, {Team: "b", Points: 0}, {Team: "c", Points: 0}}},
		{"alphabeticalMixCaps", []league.Entry{{Team: "B", Points: 0}, {Team: "c", Points: 0}, {Team: "A", Points: 0}}, []league.Entry{{Team: "A", Points: 0}, {Team: "B", Points: 0}, {Team: "c", Points: 0}}},
		{"alphabeticalMixCapsNums", []league.Entry{{Team: "1", Points: 0}, {Team: "c", Points: 0}, {Team: "A", Points: 0}}, []league.Entry{{Team: "1", Points: 0}, {Team: "A", Points: 0}, {Team: "c", Points: 0}}},
		{"alphabeticalMixCapsSpecial", []league.Entry{{Team: "¥", Points: 0}, {Team: "c", Points: 0}, {Team: "A", Points: 0}}, []league.Entry{{Team: "A", Points: 0}, {Team: "c", Points: 0}, {Team: "¥", Points: 0}}},
		{"empty", nil, nil},
	}

	out := make([]Case, 0, len(tests))
	for _, tt := range tests {
		out = append(out, Case{
			Name: "Sort: " + tt.title,
			Check: func(context.Context) (string, string, error) {
				return fmt.Sprint(league.RankEntries(tt.entries).Entries()), fmt.Sprint(tt.want), nil
			},
		})
	}
	return out
}

func formatCases() []Case {
	tests := []struct {
		title   string
		entries []league.Entry
		want    string
	}{
		{"alreadySorted", []league.Entry{{Team: "a", Points: 3}, {Team: "b", Points: 2}, {Team: "c", Points: 0}}, "1. a, 3 pts\n2. b, 2 pts\n3. c, 0 pts\n"},
		{"allTied", []league.Entry{{Team: "a", Points: 0}, {Team: "b", Points: 0}, {Team: "c", Points: 0}}, "1. a, 0 pts\n1. b, 0 pts\n1. c, 0 pts\n"},
		{"unSortedTied", []league.Entry{{Team: "b", Points: 0}, {Team: "c", Points: 0}, {Team: "a", Points: 0}}, "1. a, 0 pts\n1. b, 0 pts\n1. c, 0 pts\n"},
		{"unSortedOneLead", []league.Entry{{Team: "b", Points: 0}, {Team: "c", Points: 0}, {Team: "a", Points: 3}}, "1. a, 3 pts\n2. b, 0 pts\n2. c, 0 pts\n"},
		{"tiedLead", []league.Entry{{Team: "b", Points: 3}, {Team: "c", Points: 0}, {Team: "a", Points: 3}}, "1. a, 3 pts\n1. b, 3 pts\n3. c, 0 pts\n"},
		{"empty", nil, ""},
	}

	out := make([]Case, 0, len(tests))
	for _, tt := range tests {
		out = append(out, Case{
			Name: "Format: " + tt.title,
			Check: func(context.Context) (string, string, error) {
				return league.RankEntries(tt.entries).String(), tt.want, nil
			},
		})
	}
	return out
}

// describeTable renders a table with sorted keys so two tables with the
// same contents always compare equal as strings.
func describeTable(t league.Table) string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, t[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
