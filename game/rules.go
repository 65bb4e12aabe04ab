package game

// captured marks a jumped piece until the jump sequence completes. It blocks
// landing and cannot be jumped a second time.
const captured Piece = 255

var kingDirections = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

func directions(p Piece) [][2]int {
	if p.IsKing() {
		return kingDirections
	}
	f := forward(p.Player())
	return [][2]int{{f, -1}, {f, 1}}
}

// Actions enumerates the player's legal moves, scanning squares row by row.
// Captures are forced: when any jump exists only complete jump sequences are
// returned.
func (b *Board) Actions(player string) []Action {
	var jumps, steps []Action
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			piece := b.squares[r][c]
			if piece == Empty || piece.Player() != player {
				continue
			}
			from := Square{Row: r, Col: c}
			for _, m := range b.jumpsFrom(from, piece) {
				jumps = append(jumps, m)
			}
			if len(jumps) > 0 {
				continue
			}
			for _, d := range directions(piece) {
				to := from.offset(d[0], d[1])
				if to.onBoard() && b.At(to) == Empty {
					steps = append(steps, Move{Path: []Square{from, to}})
				}
			}
		}
	}
	if len(jumps) > 0 {
		return jumps
	}
	return steps
}

func (b *Board) jumpsFrom(from Square, piece Piece) []Move {
	var moves []Move
	squares := b.squares
	squares[from.Row][from.Col] = Empty
	collectJumps(&squares, piece, []Square{from}, nil, &moves)
	return moves
}

// collectJumps extends a jump sequence depth first and records it once it
// cannot be extended. A pawn reaching its king row ends the sequence.
func collectJumps(squares *[Size][Size]Piece, piece Piece, path, captures []Square, out *[]Move) {
	at := path[len(path)-1]
	opponent := Opponent(piece.Player())
	extended := false
	for _, d := range directions(piece) {
		over := at.offset(d[0], d[1])
		land := at.offset(2*d[0], 2*d[1])
		if !land.onBoard() {
			continue
		}
		victim := squares[over.Row][over.Col]
		if victim == captured || victim.Player() != opponent || squares[land.Row][land.Col] != Empty {
			continue
		}
		extended = true
		nextPath := extend(path, land)
		nextCaptures := extend(captures, over)
		if !piece.IsKing() && land.Row == kingRow(piece.Player()) {
			*out = append(*out, Move{Path: nextPath, Captures: nextCaptures})
			continue
		}
		squares[over.Row][over.Col] = captured
		collectJumps(squares, piece, nextPath, nextCaptures, out)
		squares[over.Row][over.Col] = victim
	}
	if !extended && len(captures) > 0 {
		*out = append(*out, Move{Path: path, Captures: captures})
	}
}

func extend(squares []Square, sq Square) []Square {
	out := make([]Square, len(squares), len(squares)+1)
	copy(out, squares)
	return append(out, sq)
}
