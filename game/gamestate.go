package game

import (
	"fmt"
	"strings"

	"checkers/meta"
)

// Size is the number of rows and columns of the board.
const Size = 8

// Board represents a checkers position. It is a value type: Play copies the
// squares array, so a *Board handed out is never modified again.
type Board struct {
	squares [Size][Size]Piece
	next    string // player to move
	quiet   int    // plies since the last capture or pawn move
}

// NewBoard returns the standard opening position with red to move.
func NewBoard() *Board {
	b := &Board{next: Red}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !dark(r, c) {
				continue
			}
			switch {
			case r < 3:
				b.squares[r][c] = BlackPawn
			case r >= Size-3:
				b.squares[r][c] = RedPawn
			}
		}
	}
	return b
}

// ParseBoard builds a position from Size rows of text, top row first. Each row
// holds one character per square ('.' empty, r/b pawns, R/B kings); spaces are
// ignored so rows can be written spaced out.
func ParseBoard(rows []string, next string) (*Board, error) {
	if PlayerIndex(next) < 0 {
		return nil, fmt.Errorf("invalid player to move %q", next)
	}
	if len(rows) != Size {
		return nil, fmt.Errorf("expected %d rows, got %d", Size, len(rows))
	}
	b := &Board{next: next}
	for r, row := range rows {
		cells := []rune(strings.ReplaceAll(row, " ", ""))
		if len(cells) != Size {
			return nil, fmt.Errorf("row %d: expected %d squares, got %d", r, Size, len(cells))
		}
		for c, cell := range cells {
			piece, ok := pieceFromRune(cell)
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown piece %q", r, c, cell)
			}
			if piece != Empty && !dark(r, c) {
				return nil, fmt.Errorf("row %d col %d: piece on a light square", r, c)
			}
			b.squares[r][c] = piece
		}
	}
	return b, nil
}

func dark(row, col int) bool {
	return (row+col)%2 == 1
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// WithNext returns a copy of the board with player to move.
func (b *Board) WithNext(player string) *Board {
	c := b.Copy()
	c.next = player
	return c
}

// Next returns the player to move.
func (b *Board) Next() string {
	return b.next
}

// At returns the piece on a square.
func (b *Board) At(sq Square) Piece {
	return b.squares[sq.Row][sq.Col]
}

// Pawns counts the player's unpromoted pieces.
func (b *Board) Pawns(player string) int {
	return b.count(func(p Piece) bool { return p.Player() == player && !p.IsKing() })
}

// Kings counts the player's promoted pieces.
func (b *Board) Kings(player string) int {
	return b.count(func(p Piece) bool { return p.Player() == player && p.IsKing() })
}

// Pieces counts all of the player's pieces.
func (b *Board) Pieces(player string) int {
	return b.count(func(p Piece) bool { return p != Empty && p.Player() == player })
}

func (b *Board) count(match func(Piece) bool) int {
	n := 0
	for r := range b.squares {
		for _, p := range b.squares[r] {
			if match(p) {
				n++
			}
		}
	}
	return n
}

// Play applies a Move and returns the successor board. The opponent of the
// moving piece's owner is to move next.
func (b *Board) Play(action Action) State {
	m, ok := action.(Move)
	if !ok {
		panic("unexpected action type")
	}
	return b.apply(m)
}

func (b *Board) apply(m Move) *Board {
	from, to := m.From(), m.To()
	piece := b.At(from)
	if piece == Empty {
		panic(fmt.Sprintf("no piece on %s", from))
	}

	nb := *b
	nb.squares[from.Row][from.Col] = Empty
	for _, sq := range m.Captures {
		nb.squares[sq.Row][sq.Col] = Empty
	}
	moved := piece
	if !piece.IsKing() && to.Row == kingRow(piece.Player()) {
		moved = piece.promote()
	}
	nb.squares[to.Row][to.Col] = moved

	if m.IsCapture() || !piece.IsKing() {
		nb.quiet = 0
	} else {
		nb.quiet++
	}
	nb.next = Opponent(piece.Player())
	return &nb
}

// Terminal reports whether the game is over. A player without pieces, or
// without legal actions on their turn, loses. A long run of king moves with
// no capture is a draw.
func (b *Board) Terminal() (bool, string) {
	for _, player := range Players {
		if b.Pieces(player) == 0 {
			return true, Opponent(player)
		}
	}
	if len(b.Actions(b.next)) == 0 {
		return true, Opponent(b.next)
	}
	if b.quiet >= meta.DRAW_PLIES {
		return true, ""
	}
	return false, ""
}
