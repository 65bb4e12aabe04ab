package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPieceCount(t *testing.T) {
	t.Run("scoring a balanced opening", func(t *testing.T) {
		require.Zero(t, NewPieceCount(Red, Black).Evaluate(NewBoard()))
	})

	t.Run("counting kings twice", func(t *testing.T) {
		b, err := LibraryBoard("EndGame1")
		require.NoError(t, err)

		require.Equal(t, 1.0, NewPieceCount(Red, Black).Evaluate(b))
		require.Equal(t, -1.0, NewPieceCount(Black, Red).Evaluate(b), "Should be oriented toward the max player")
	})

	t.Run("panicking on foreign states", func(t *testing.T) {
		require.PanicsWithValue(t, "unexpected state type", func() {
			NewPieceCount(Red, Black).Evaluate(nil)
		})
	})
}

func TestPositional(t *testing.T) {
	t.Run("scoring a balanced opening", func(t *testing.T) {
		require.Zero(t, NewPositional(Red, Black).Evaluate(NewBoard()))
	})

	t.Run("rewarding advanced pawns", func(t *testing.T) {
		b, err := LibraryBoard("EndGame1")
		require.NoError(t, err)

		// material +1, black's pawn is two rows from home
		require.InDelta(t, 0.9, NewPositional(Red, Black).Evaluate(b), 1e-9)
		require.InDelta(t, -0.9, NewPositional(Black, Red).Evaluate(b), 1e-9)
	})
}

func TestNewEvaluator(t *testing.T) {
	t.Run("resolving names", func(t *testing.T) {
		e, ok := NewEvaluator("", Red, Black)
		require.True(t, ok)
		require.Equal(t, NewPieceCount(Red, Black), e)

		e, ok = NewEvaluator("positional", Black, Red)
		require.True(t, ok)
		require.Equal(t, NewPositional(Black, Red), e)

		_, ok = NewEvaluator("mobility", Red, Black)
		require.False(t, ok)
	})

	t.Run("adapting functions", func(t *testing.T) {
		var e Evaluator = EvaluatorFunc(func(State) float64 { return 2.5 })

		require.Equal(t, 2.5, e.Evaluate(NewBoard()))
	})
}
