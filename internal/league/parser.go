package league

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	sideSeparator  = ", "
	tokenSeparator = " "
)

// ErrMalformedLine is wrapped by ParseLine when a line does not match
// "<Team1> <Score1>, <Team2> <Score2>". The returned Match is still usable.
var ErrMalformedLine = errors.New("malformed match line")

// ParseLine splits a result line into its two sides. Problems are reported
// through an error wrapping ErrMalformedLine, but a best-effort Match is
// always returned: a missing side parses as an empty one and an unparseable
// score is left invalid, which the scoring rules treat as a tie.
func ParseLine(line string) (Match, error) {
	parts := strings.Split(line, sideSeparator)

	var problems []string
	away := ""
	switch {
	case len(parts) < 2:
		problems = append(problems, "missing second team")
	case len(parts) > 2:
		problems = append(problems, fmt.Sprintf("%d extra segments ignored", len(parts)-2))
		fallthrough
	default:
		away = parts[1]
	}

	m := Match{Home: ParseSide(parts[0]), Away: ParseSide(away)}
	if !m.Home.Score.Valid {
		problems = append(problems, "first score is not a number")
	}
	if !m.Away.Score.Valid {
		problems = append(problems, "second score is not a number")
	}

	if len(problems) > 0 {
		return m, fmt.Errorf("%w: %s", ErrMalformedLine, strings.Join(problems, "; "))
	}
	return m, nil
}

// ParseSide separates the trailing score token from the team name.
//
// Tokens are split on a single space so runs of spaces yield empty tokens;
// rejoining them keeps the original spacing inside (and around) the name.
// A side with a single token has an empty name.
func ParseSide(side string) Side {
	tokens := strings.Split(side, tokenSeparator)
	last := len(tokens) - 1

	return Side{
		Name:  strings.Join(tokens[:last], tokenSeparator),
		Score: parseScore(tokens[last]),
	}
}

func parseScore(token string) Score {
	v, err := strconv.Atoi(token)
	if err != nil {
		return Score{}
	}
	return NewScore(v)
}
