// Package league holds the match-result domain: parsing result lines,
// awarding points per match outcome, accumulating a points table and turning
// it into competition-ranked standings.
//
// Everything in this package is pure and single-goroutine. Streaming and I/O
// live in the pipeline and linesource packages.
package league
