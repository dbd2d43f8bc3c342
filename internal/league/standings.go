package league

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry is an unranked (team, points) pair.
type Entry struct {
	Team   string
	Points int
}

// Standing is one row of the final ranking.
type Standing struct {
	Rank   int    `json:"rank" yaml:"rank"`
	Team   string `json:"team" yaml:"team"`
	Points int    `json:"points" yaml:"points"`
}

// Standings is an ordered ranking. It is built once by Rank or RankEntries
// and never modified afterwards.
type Standings []Standing

// Units are the point suffixes used when rendering standings.
type Units struct {
	Singular string
	Plural   string
}

// DefaultUnits renders "1 pt" and "3 pts".
var DefaultUnits = Units{Singular: "pt", Plural: "pts"}

// Rank orders the table and assigns competition ranks.
func Rank(t Table) Standings {
	entries := make([]Entry, 0, len(t))
	for team, points := range t {
		entries = append(entries, Entry{Team: team, Points: points})
	}
	return RankEntries(entries)
}

// RankEntries sorts entries by points descending, then by case-folded name
// ascending, and assigns competition ranks: equal points share a rank and
// the next distinct value takes its 1-based position. The input slice is not
// modified.
func RankEntries(entries []Entry) Standings {
	type keyed struct {
		Entry
		key string
	}

	caser := cases.Lower(language.Und)
	sorted := make([]keyed, len(entries))
	for i, e := range entries {
		sorted[i] = keyed{Entry: e, key: caser.String(e.Team)}
	}

	slices.SortStableFunc(sorted, func(a, b keyed) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		if c := strings.Compare(a.key, b.key); c != 0 {
			return c
		}
		// Names equal apart from case: keep the output independent of map order.
		return strings.Compare(a.Team, b.Team)
	})

	out := make(Standings, len(sorted))
	for i, e := range sorted {
		rank := i + 1
		if i > 0 && e.Points == out[i-1].Points {
			rank = out[i-1].Rank
		}
		out[i] = Standing{Rank: rank, Team: e.Team, Points: e.Points}
	}
	return out
}

// Entries drops the ranks, returning the rows in their current order.
func (s Standings) Entries() []Entry {
	out := make([]Entry, len(s))
	for i, st := range s {
		out[i] = Entry{Team: st.Team, Points: st.Points}
	}
	return out
}

// Format renders one "<rank>. <team>, <points> <unit>" line per row. An
// empty ranking renders as the empty string.
func (s Standings) Format(u Units) string {
	var b strings.Builder
	for _, st := range s {
		unit := u.Plural
		if st.Points == 1 {
			unit = u.Singular
		}
		fmt.Fprintf(&b, "%d. %s, %d %s\n", st.Rank, st.Team, st.Points, unit)
	}
	return b.String()
}

// String renders the standings with DefaultUnits.
func (s Standings) String() string {
	return s.Format(DefaultUnits)
}
