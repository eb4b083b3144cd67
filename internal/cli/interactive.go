package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nabilervatra/minipokersolver/internal/card"
	"github.com/nabilervatra/minipokersolver/internal/holdem"
	"github.com/nabilervatra/minipokersolver/internal/randutil"
)

// RunInteractive plays one hand with the controlled player's actions read
// as integer indices from in, everyone else acting uniformly at random.
// It returns a non-zero-exit-worthy error on an illegal selection, an
// unresolved terminal, or the 200-action loop guard.
func RunInteractive(cfg Config, in io.Reader, out io.Writer, logger *log.Logger) error {
	rng := randutil.New(cfg.Seed)
	s := holdem.NewHand(rng, cfg.StartingStack, cfg.SmallBlind, cfg.BigBlind)
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, render(titleStyle, " Heads-Up Hold'em "))
	fmt.Fprintln(out)

	for i := 0; i < loopGuardLimit; i++ {
		if s.Street == holdem.Terminal {
			return printResult(s, out)
		}

		printState(s, out)
		actions := holdem.LegalActions(s)

		var action holdem.Action
		if s.ToAct == cfg.ControlledPlayer {
			idx, err := readActionIndex(scanner, out, len(actions))
			if err != nil {
				logger.Error("failed to read action", "error", err)
				return err
			}
			action = actions[idx]
		} else {
			action = holdem.RandomLegalAction(s, rng)
			fmt.Fprintln(out, render(infoStyle, fmt.Sprintf("P%d acts: %s(%d)", action.Player, action.Type, action.Amount)))
		}

		if !holdem.ApplyAction(s, action) {
			fmt.Fprintln(out, render(errorStyle, "illegal action selected"))
			return fmt.Errorf("illegal action: player %d %s(%d)", action.Player, action.Type, action.Amount)
		}
	}

	fmt.Fprintln(out, render(errorStyle, "loop guard triggered"))
	return ErrLoopGuard
}

func readActionIndex(scanner *bufio.Scanner, out io.Writer, n int) (int, error) {
	fmt.Fprint(out, render(actionsStyle, fmt.Sprintf("Choose action [0-%d]: ", n-1)))
	if !scanner.Scan() {
		return 0, fmt.Errorf("no input available")
	}
	idx, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, fmt.Errorf("malformed action index: %w", err)
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("action index %d out of range [0,%d)", idx, n)
	}
	return idx, nil
}

func printState(s *holdem.State, out io.Writer) {
	fmt.Fprintln(out, render(handInfoStyle, fmt.Sprintf(
		"%s | pot=%d | to_act=P%d | stacks=%v | board=%s",
		s.Street, s.Pot, s.ToAct, s.Stacks, formatBoard(s.Board))))

	for p := 0; p < 2; p++ {
		cat := card.CategorizeHole(s.HoleCards[p][0], s.HoleCards[p][1])
		fmt.Fprintln(out, render(infoStyle, fmt.Sprintf(
			"  P%d hole: %s %s (%s)", p, s.HoleCards[p][0], s.HoleCards[p][1], cat)))
	}

	for i, a := range holdem.LegalActions(s) {
		fmt.Fprintf(out, "  [%d] %s(%d)\n", i, a.Type, a.Amount)
	}
}

func formatBoard(board []card.Card) string {
	if len(board) == 0 {
		return "-"
	}
	parts := make([]string, len(board))
	for i, c := range board {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func printResult(s *holdem.State, out io.Writer) error {
	result := holdem.TerminalPayoff(s)
	if !result.IsTerminal {
		return fmt.Errorf("unresolved terminal state")
	}
	fmt.Fprintln(out, render(successStyle, fmt.Sprintf(
		"Hand over: reason=%s winner=%d chip_delta=%v", result.Reason, result.Winner, result.ChipDelta)))
	fmt.Fprintln(out, render(infoStyle, holdem.FormatHistory(s)))
	return nil
}
