package league

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeModifier is returned by Table.Apply for a negative award.
	ErrNegativeModifier = errors.New("negative modifier not allowed")
	// ErrEmptyName is returned by Table.Apply when the team has no name.
	ErrEmptyName = errors.New("team name is empty")
)

// Table maps a team name to its cumulative points. Names are matched
// exactly, case included.
type Table map[string]int

// NewTable returns an empty table.
func NewTable() Table {
	return make(Table)
}

// Apply adds modifier to the team's points, creating the entry if needed.
// Rejected updates leave the table untouched.
func (t Table) Apply(name string, modifier int) error {
	if modifier < 0 {
		return fmt.Errorf("%w: %q got %d", ErrNegativeModifier, name, modifier)
	}
	if name == "" {
		return ErrEmptyName
	}
	t[name] += modifier
	return nil
}

// Record scores a match and applies both awards, home side first. A
// rejection on one side does not prevent the other from being applied; all
// rejections are joined into the returned error.
func (t Table) Record(m Match, s Scoring) error {
	homePts, awayPts := s.Modifiers(m.Home.Score, m.Away.Score)
	return errors.Join(
		t.Apply(m.Home.Name, homePts),
		t.Apply(m.Away.Name, awayPts),
	)
}
