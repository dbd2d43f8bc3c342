package league

import "fmt"

// Scoring holds the points awarded for each match outcome.
type Scoring struct {
	Win  int
	Tie  int
	Loss int
}

// DefaultScoring is the usual league rule: three points for a win, one for a
// tie, none for a loss.
var DefaultScoring = Scoring{Win: 3, Tie: 1, Loss: 0}

// Validate rejects point values the table would refuse to apply.
func (s Scoring) Validate() error {
	if s.Win < 0 || s.Tie < 0 || s.Loss < 0 {
		return fmt.Errorf("scoring points must not be negative (win=%d tie=%d loss=%d)", s.Win, s.Tie, s.Loss)
	}
	return nil
}

// Modifiers returns the points earned by each side of a match. If either
// score is invalid the match counts as a tie.
func (s Scoring) Modifiers(home, away Score) (int, int) {
	if !home.Valid || !away.Valid {
		return s.Tie, s.Tie
	}

	switch {
	case home.Value > away.Value:
		return s.Win, s.Loss
	case home.Value < away.Value:
		return s.Loss, s.Win
	default:
		return s.Tie, s.Tie
	}
}

// Modifiers applies DefaultScoring.
func Modifiers(home, away Score) (int, int) {
	return DefaultScoring.Modifiers(home, away)
}
