// meta/meta.go
package meta

// BoardSize defines the default board width and height.
const BoardSize = 8

// Goroutines defines the default number of root-parallel search workers.
const Goroutines = 1

// Iterations defines the default number of UCT iterations per move.
const Iterations = 1000

// Games defines the default number of games per match-up.
const Games = 10

// MaxTurns defines the number of plies after which a game is abandoned.
// A full game on the default board takes at most 60 placements plus passes.
const MaxTurns = 300

// Seed defines the default seed of an experiment.
const Seed = 1

// OutputDir defines where experiment records are written by default.
const OutputDir = "results"
