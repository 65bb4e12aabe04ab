package game

import (
	"fmt"
	"strings"
)

// Square addresses a board cell by row and column.
type Square struct {
	Row int
	Col int
}

func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

func (s Square) onBoard() bool {
	return s.Row >= 0 && s.Row < Size && s.Col >= 0 && s.Col < Size
}

func (s Square) offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// Move represents a single checkers move: the squares the piece visits,
// starting with its origin, and the squares of any pieces it jumps.
type Move struct {
	Path     []Square
	Captures []Square
}

func (m Move) From() Square {
	return m.Path[0]
}

func (m Move) To() Square {
	return m.Path[len(m.Path)-1]
}

func (m Move) IsCapture() bool {
	return len(m.Captures) > 0
}

// String renders a step as (r,c)->(r,c) and a jump sequence as (r,c)x(r,c)x...
func (m Move) String() string {
	sep := "->"
	if m.IsCapture() {
		sep = "x"
	}
	parts := make([]string, len(m.Path))
	for i, sq := range m.Path {
		parts[i] = sq.String()
	}
	return strings.Join(parts, sep)
}

// Equal reports whether both moves visit the same squares.
func (m Move) Equal(other Move) bool {
	if len(m.Path) != len(other.Path) {
		return false
	}
	for i := range m.Path {
		if m.Path[i] != other.Path[i] {
			return false
		}
	}
	return true
}
