package game

import (
	"fmt"
	"strings"
)

// String draws the board with row and column labels, followed by the player
// to move.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for c := 0; c < Size; c++ {
		fmt.Fprintf(&sb, " %d", c)
	}
	sb.WriteByte('\n')
	for r := 0; r < Size; r++ {
		fmt.Fprintf(&sb, "%d ", r)
		for c := 0; c < Size; c++ {
			sb.WriteByte(' ')
			sb.WriteRune(b.squares[r][c].Rune())
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "to move: %s", b.next)
	return sb.String()
}

// Rows returns the board in the text form accepted by ParseBoard.
func (b *Board) Rows() []string {
	rows := make([]string, Size)
	for r := 0; r < Size; r++ {
		cells := make([]rune, Size)
		for c := 0; c < Size; c++ {
			cells[c] = b.squares[r][c].Rune()
		}
		rows[r] = string(cells)
	}
	return rows
}
