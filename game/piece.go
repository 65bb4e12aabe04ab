package game

// Players are identified by the color of their pieces.
const (
	Red   = "r"
	Black = "b"
)

// Players lists both players in the order of their index.
var Players = []string{Red, Black}

// Opponent returns the other player.
func Opponent(player string) string {
	if player == Red {
		return Black
	}
	return Red
}

// PlayerIndex maps a player to 0 (red) or 1 (black), -1 if unknown.
func PlayerIndex(player string) int {
	switch player {
	case Red:
		return 0
	case Black:
		return 1
	default:
		return -1
	}
}

// Piece is the content of a single square.
type Piece uint8

const (
	Empty Piece = iota
	RedPawn
	RedKing
	BlackPawn
	BlackKing
)

// Player returns the owner of the piece, "" for an empty square.
func (p Piece) Player() string {
	switch p {
	case RedPawn, RedKing:
		return Red
	case BlackPawn, BlackKing:
		return Black
	default:
		return ""
	}
}

func (p Piece) IsKing() bool {
	return p == RedKing || p == BlackKing
}

// promote turns a pawn into its player's king.
func (p Piece) promote() Piece {
	switch p {
	case RedPawn:
		return RedKing
	case BlackPawn:
		return BlackKing
	default:
		return p
	}
}

// Rune is the character used to draw and parse the piece.
func (p Piece) Rune() rune {
	switch p {
	case RedPawn:
		return 'r'
	case RedKing:
		return 'R'
	case BlackPawn:
		return 'b'
	case BlackKing:
		return 'B'
	default:
		return '.'
	}
}

func pieceFromRune(r rune) (Piece, bool) {
	switch r {
	case '.', ' ', '_':
		return Empty, true
	case 'r':
		return RedPawn, true
	case 'R':
		return RedKing, true
	case 'b':
		return BlackPawn, true
	case 'B':
		return BlackKing, true
	default:
		return Empty, false
	}
}

// forward is the row direction a player's pawns move in.
func forward(player string) int {
	if player == Red {
		return -1
	}
	return 1
}

// kingRow is the row on which a player's pawns are promoted.
func kingRow(player string) int {
	if player == Red {
		return 0
	}
	return Size - 1
}
