// meta/meta.go
package meta

// MAX_TURNS caps the number of plies a single game may last.
const MAX_TURNS = 300

// DEFAULT_MAX_PLIES is the search depth used when none is configured.
const DEFAULT_MAX_PLIES = 3

// DRAW_PLIES is the number of consecutive plies without a capture or a pawn
// move after which a game is drawn.
const DRAW_PLIES = 80
