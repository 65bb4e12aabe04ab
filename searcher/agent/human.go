package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"checkers/experiments/metrics"
	"checkers/game"
)

type humanAgent struct {
	player string
	in     *bufio.Scanner
	out    io.Writer
}

// NewHumanAgent returns an agent that prints the position and the numbered
// legal actions to out and reads the chosen number from in, one line per
// choice. Agents reading the same input must share the scanner.
func NewHumanAgent(player string, in *bufio.Scanner, out io.Writer) Agent {
	return &humanAgent{player: player, in: in, out: out}
}

func (a *humanAgent) FindMove(state game.State) (game.Action, metrics.SearchMetric) {
	actions := state.Actions(a.player)
	if len(actions) == 0 {
		return nil, metrics.SearchMetric{}
	}

	fmt.Fprintf(a.out, "%v\n", state)
	for i, action := range actions {
		fmt.Fprintf(a.out, "%2d: %v\n", i+1, action)
	}
	for {
		fmt.Fprintf(a.out, "%s to move [1-%d]: ", a.player, len(actions))
		if !a.in.Scan() {
			// Input closed, nothing more can be chosen
			return nil, metrics.SearchMetric{}
		}
		choice, err := strconv.Atoi(strings.TrimSpace(a.in.Text()))
		if err != nil || choice < 1 || choice > len(actions) {
			fmt.Fprintf(a.out, "invalid choice %q\n", a.in.Text())
			continue
		}
		return actions[choice-1], metrics.SearchMetric{}
	}
}
