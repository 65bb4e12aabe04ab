package game

// PieceCount scores material from MaxPlayer's perspective: the difference in
// pieces plus the difference in kings, so a king is worth two pawns. It is
// used both at terminal and at depth-cutoff states.
type PieceCount struct {
	MaxPlayer string
	MinPlayer string
}

func NewPieceCount(maxPlayer, minPlayer string) PieceCount {
	return PieceCount{MaxPlayer: maxPlayer, MinPlayer: minPlayer}
}

func (e PieceCount) Evaluate(s State) float64 {
	b := asBoard(s)
	score := b.Pieces(e.MaxPlayer) - b.Pieces(e.MinPlayer)
	score += b.Kings(e.MaxPlayer) - b.Kings(e.MinPlayer)
	return float64(score)
}

// Positional adds two small terms to PieceCount: how far pawns have advanced
// toward promotion, and how many pawns still guard their own back row. The
// weights stay well below one pawn so material always dominates.
type Positional struct {
	PieceCount
	AdvanceWeight float64
	GuardWeight   float64
}

func NewPositional(maxPlayer, minPlayer string) Positional {
	return Positional{
		PieceCount:    NewPieceCount(maxPlayer, minPlayer),
		AdvanceWeight: 0.05,
		GuardWeight:   0.1,
	}
}

func (e Positional) Evaluate(s State) float64 {
	b := asBoard(s)
	score := e.PieceCount.Evaluate(b)
	score += e.AdvanceWeight * float64(advancement(b, e.MaxPlayer)-advancement(b, e.MinPlayer))
	score += e.GuardWeight * float64(guards(b, e.MaxPlayer)-guards(b, e.MinPlayer))
	return score
}

// advancement sums the number of rows each pawn has moved from its back row.
func advancement(b *Board, player string) int {
	home := kingRow(Opponent(player))
	total := 0
	for r := 0; r < Size; r++ {
		for _, p := range b.squares[r] {
			if p.Player() == player && !p.IsKing() {
				total += abs(r - home)
			}
		}
	}
	return total
}

// guards counts pawns still on the player's own back row.
func guards(b *Board, player string) int {
	home := kingRow(Opponent(player))
	n := 0
	for _, p := range b.squares[home] {
		if p.Player() == player && !p.IsKing() {
			n++
		}
	}
	return n
}

func asBoard(s State) *Board {
	b, ok := s.(*Board)
	if !ok {
		panic("unexpected state type")
	}
	return b
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// NewEvaluator returns the evaluator registered under name, oriented toward
// maxPlayer.
func NewEvaluator(name, maxPlayer, minPlayer string) (Evaluator, bool) {
	switch name {
	case "", "piececount":
		return NewPieceCount(maxPlayer, minPlayer), true
	case "positional":
		return NewPositional(maxPlayer, minPlayer), true
	default:
		return nil, false
	}
}
