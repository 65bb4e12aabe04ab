package metrics

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	t.Run("writing move records", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "unit")
		require.NoError(t, err)
		records := []MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:   1,
				Player: "r",
				Action: "(5,0)->(4,1)",
				SearchMetric: SearchMetric{
					MaxPlies:    3,
					Pruning:     true,
					Duration:    time.Millisecond,
					Nodes:       40,
					Evaluations: 25,
					Prunes:      6,
				},
			},
		}}

		require.NoError(t, w.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 2, "Should write a header and one row")
		require.Equal(t, []string{"1", "1", "r", "(5,0)->(4,1)", "3", "true", "1ms", "40", "25", "6"}, rows[1])
	})

	t.Run("writing game records", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "unit")
		require.NoError(t, err)
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		records := []GameRecord{{
			ID:     7,
			Agent1: 1,
			Agent2: 0,
			GameMetric: GameMetric{
				StartingPlayer: "b",
				Winner:         "r",
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     42,
			},
		}}

		require.NoError(t, w.WriteGameRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Equal(t, []string{"7", "1", "0", "b", "r", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "42"}, rows[1])
	})

	t.Run("writing agent configs", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "unit")
		require.NoError(t, err)

		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 2, Strategy: "alphabeta", MaxPlies: 4, Evaluator: "piececount"}}))

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, []string{"2", "alphabeta", "4", "piececount", "0"}, rows[1])
	})
}

func TestCollector(t *testing.T) {
	t.Run("counting search work", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, true)
		c.AddNode()
		c.AddNode()
		c.AddEvaluation()
		c.AddPrune()

		got := c.Complete()

		require.Equal(t, 4, got.MaxPlies)
		require.True(t, got.Pruning)
		require.Equal(t, 2, got.Nodes)
		require.Equal(t, 1, got.Evaluations)
		require.Equal(t, 1, got.Prunes)
	})

	t.Run("starting from zero", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, false)
		c.AddNode()
		c.Start(2, true)

		require.Zero(t, c.Complete().Nodes)
	})
}

var errDiskFull = errors.New("disk full")

// flakyFile buffers writes and fails on Close, like a file whose final flush
// to disk does not succeed.
type flakyFile struct {
	bytes.Buffer
	closed bool
}

func (f *flakyFile) Close() error {
	f.closed = true
	return errDiskFull
}

func TestEncode(t *testing.T) {
	t.Run("reporting a failed close of a csv file", func(t *testing.T) {
		f := &flakyFile{}

		err := encodeCSV(f, []string{"id"}, [][]string{{"1"}})

		require.ErrorIs(t, err, errDiskFull)
		require.True(t, f.closed)
		require.Equal(t, "id\n1\n", f.String(), "Should write everything before closing")
	})

	t.Run("reporting a failed close of a json file", func(t *testing.T) {
		f := &flakyFile{}

		err := encodeJSON(f, Setup{Name: "depth"})

		require.ErrorIs(t, err, errDiskFull)
		require.Contains(t, f.String(), `"name": "depth"`)
	})

	t.Run("writing the setup file", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "unit")
		require.NoError(t, err)

		require.NoError(t, w.WriteSetup(Setup{Name: "unit", NumGames: 2}))

		data, err := os.ReadFile(filepath.Join(w.Dir(), "setup.json"))
		require.NoError(t, err)
		require.Contains(t, string(data), `"numGames": 2`)
	})
}
