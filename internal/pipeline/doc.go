// Package pipeline folds a stream of match-result lines into a points
// table. Reading and folding overlap: a reader goroutine feeds lines through
// a channel while a single fold goroutine parses, scores and accumulates
// them in arrival order. Ranking only happens once the stream has ended.
package pipeline
