package searcher

import (
	"checkers/game"

	"golang.org/x/exp/rand"
)

// mockAction selects the child with the same index.
type mockAction struct {
	id int
}

// recorder is shared by every node of a mock tree.
type recorder struct {
	expanded  []*mockState // nodes whose actions were requested
	players   []string     // player passed with each request
	evaluated []*mockState
}

// mockState is a node of an explicit game tree. Leaves are terminal and carry
// the value the mock evaluator returns.
type mockState struct {
	value    float64
	terminal bool
	depth    int
	children []*mockState
	rec      *recorder
}

func (m *mockState) Actions(player string) []game.Action {
	m.rec.expanded = append(m.rec.expanded, m)
	m.rec.players = append(m.rec.players, player)
	actions := make([]game.Action, len(m.children))
	for i := range m.children {
		actions[i] = mockAction{id: i}
	}
	return actions
}

func (m *mockState) Play(action game.Action) game.State {
	return m.children[action.(mockAction).id]
}

func (m *mockState) Terminal() (bool, string) {
	return m.terminal, ""
}

func leaf(value float64) *mockState {
	return &mockState{value: value, terminal: true}
}

func node(children ...*mockState) *mockState {
	return &mockState{children: children}
}

// tree wires a recorder and depths into every node under root.
func tree(root *mockState) (*mockState, *recorder) {
	rec := &recorder{}
	var walk func(n *mockState, depth int)
	walk = func(n *mockState, depth int) {
		n.rec = rec
		n.depth = depth
		for _, c := range n.children {
			walk(c, depth+1)
		}
	}
	walk(root, 0)
	return root, rec
}

// mockEvaluator returns leaf values and records each evaluated node.
func mockEvaluator() game.Evaluator {
	return game.EvaluatorFunc(func(s game.State) float64 {
		m := s.(*mockState)
		m.rec.evaluated = append(m.rec.evaluated, m)
		return m.value
	})
}

// randomTree builds a tree of the given depth with 1 to 4 children per node
// and small integer leaf values, so ties are common.
func randomTree(r *rand.Rand, depth int) *mockState {
	if depth == 0 {
		return leaf(float64(r.Intn(21) - 10))
	}
	children := make([]*mockState, 1+r.Intn(4))
	for i := range children {
		children[i] = randomTree(r, depth-1)
	}
	return node(children...)
}
