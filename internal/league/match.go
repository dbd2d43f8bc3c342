package league

// Score is a parsed score token. Valid is false when the token was missing
// or was not an integer.
type Score struct {
	Value int
	Valid bool
}

// NewScore returns a valid score holding v.
func NewScore(v int) Score {
	return Score{Value: v, Valid: true}
}

// Side is one half of a match line: a team name and the goals it scored.
type Side struct {
	Name  string
	Score Score
}

// Match is a single parsed result line.
type Match struct {
	Home Side
	Away Side
}
