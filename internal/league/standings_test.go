package league

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRankEntries_Order(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []Entry
		want    []Entry
	}{
		{"reversed", []Entry{{"a", 0}, {"b", 1}, {"c", 2}}, []Entry{{"c", 2}, {"b", 1}, {"a", 0}}},
		{"jumbled", []Entry{{"a", 1}, {"b", 0}, {"c", 2}}, []Entry{{"c", 2}, {"a", 1}, {"b", 0}}},
		{"alphabetical", []Entry{{"c", 0}, {"a", 0}, {"b", 0}}, []Entry{{"a", 0}, {"b", 0}, {"c", 0}}},
		{"mixed caps", []Entry{{"B", 0}, {"c", 0}, {"A", 0}}, []Entry{{"A", 0}, {"B", 0}, {"c", 0}}},
		{"mixed caps and digits", []Entry{{"1", 0}, {"c", 0}, {"A", 0}}, []Entry{{"1", 0}, {"A", 0}, {"c", 0}}},
		{"mixed caps and symbols", []Entry{{"¥", 0}, {"c", 0}, {"A", 0}}, []Entry{{"A", 0}, {"c", 0}, {"¥", 0}}},
		{"case only differs", []Entry{{"lions", 1}, {"Lions", 1}}, []Entry{{"Lions", 1}, {"lions", 1}}},
		{"empty", []Entry{}, []Entry{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RankEntries(tt.entries).Entries()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("RankEntries() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRankEntries_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	entries := []Entry{{"b", 0}, {"a", 3}}
	RankEntries(entries)
	assert.Equal(t, []Entry{{"b", 0}, {"a", 3}}, entries)
}

func TestStandings_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []Entry
		want    string
	}{
		{"already sorted", []Entry{{"a", 3}, {"b", 2}, {"c", 0}}, "1. a, 3 pts\n2. b, 2 pts\n3. c, 0 pts\n"},
		{"all tied", []Entry{{"a", 0}, {"b", 0}, {"c", 0}}, "1. a, 0 pts\n1. b, 0 pts\n1. c, 0 pts\n"},
		{"unsorted tied", []Entry{{"b", 0}, {"c", 0}, {"a", 0}}, "1. a, 0 pts\n1. b, 0 pts\n1. c, 0 pts\n"},
		{"unsorted one lead", []Entry{{"b", 0}, {"c", 0}, {"a", 3}}, "1. a, 3 pts\n2. b, 0 pts\n2. c, 0 pts\n"},
		{"tied lead", []Entry{{"b", 3}, {"c", 0}, {"a", 3}}, "1. a, 3 pts\n1. b, 3 pts\n3. c, 0 pts\n"},
		{"singular unit", []Entry{{"a", 1}, {"b", 1}}, "1. a, 1 pt\n1. b, 1 pt\n"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RankEntries(tt.entries).String())
		})
	}
}

func TestStandings_FormatCustomUnits(t *testing.T) {
	t.Parallel()

	got := RankEntries([]Entry{{"a", 1}, {"b", 2}}).Format(Units{Singular: "point", Plural: "points"})
	assert.Equal(t, "1. b, 2 points\n2. a, 1 point\n", got)
}

func TestRank_FromTable(t *testing.T) {
	t.Parallel()

	table := Table{"Tarantulas": 6, "Lions": 5, "FC Awesome": 1, "Snakes": 1, "Grouches": 0}
	want := Standings{
		{Rank: 1, Team: "Tarantulas", Points: 6},
		{Rank: 2, Team: "Lions", Points: 5},
		{Rank: 3, Team: "FC Awesome", Points: 1},
		{Rank: 3, Team: "Snakes", Points: 1},
		{Rank: 5, Team: "Grouches", Points: 0},
	}
	if diff := cmp.Diff(want, Rank(table)); diff != "" {
		t.Errorf("Rank() mismatch (-want +got):\n%s", diff)
	}
}

func TestRankEntries_Idempotent(t *testing.T) {
	t.Parallel()

	first := RankEntries([]Entry{{"x", 1}, {"B", 4}, {"a", 4}, {"c", 0}, {"d", 1}})
	second := RankEntries(first.Entries())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("re-ranking changed the standings (-first +second):\n%s", diff)
	}
}

func TestRankEntries_CompetitionRanks(t *testing.T) {
	t.Parallel()

	got := RankEntries([]Entry{{"a", 5}, {"b", 5}, {"c", 5}, {"d", 2}, {"e", 2}, {"f", 1}})
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		assert.LessOrEqual(t, prev.Rank, cur.Rank)
		if cur.Points == prev.Points {
			assert.Equal(t, prev.Rank, cur.Rank)
		} else {
			assert.Equal(t, i+1, cur.Rank, "rank after a tie jumps to the position")
		}
	}
	assert.Equal(t, []int{1, 1, 1, 4, 4, 6}, []int{got[0].Rank, got[1].Rank, got[2].Rank, got[3].Rank, got[4].Rank, got[5].Rank})
}
