package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/log"

	"github.com/nabilervatra/minipokersolver/internal/card"
	"github.com/nabilervatra/minipokersolver/internal/holdem"
	"github.com/nabilervatra/minipokersolver/internal/randutil"
)

const simulatedHands = 10

// RunSimulate plays simulatedHands hands under a uniform random policy for
// both players, printing each hand's outcome and a final fold/showdown
// tally. A progress bar renders after each hand; it is drawn directly
// rather than through a running tea.Program, since the simulation itself
// is unattended and has nothing to wait on.
func RunSimulate(cfg Config, out io.Writer, logger *log.Logger) error {
	rng := randutil.New(cfg.Seed)
	bar := progress.New(progress.WithDefaultGradient())

	var folds, showdowns int
	buckets := make(map[card.HoleCategory]int)
	for hand := 0; hand < simulatedHands; hand++ {
		s := holdem.NewHand(rng, cfg.StartingStack, cfg.SmallBlind, cfg.BigBlind)
		for p := 0; p < 2; p++ {
			buckets[card.CategorizeHole(s.HoleCards[p][0], s.HoleCards[p][1])]++
		}

		actionCount := 0
		for s.Street != holdem.Terminal {
			if actionCount >= loopGuardLimit {
				fmt.Fprintln(out, render(errorStyle, fmt.Sprintf("hand %d: loop guard triggered", hand)))
				return ErrLoopGuard
			}
			a := holdem.RandomLegalAction(s, rng)
			if !holdem.ApplyAction(s, a) {
				logger.Error("simulated illegal action", "hand", hand, "action", a)
				return fmt.Errorf("simulation produced an illegal action on hand %d", hand)
			}
			actionCount++
		}

		result := holdem.TerminalPayoff(s)
		if !result.IsTerminal {
			return fmt.Errorf("hand %d ended without a resolved terminal", hand)
		}
		if result.Reason == "fold" {
			folds++
		} else {
			showdowns++
		}

		fmt.Fprintln(out, render(handInfoStyle, fmt.Sprintf(
			"hand %d: reason=%s winner=%d chip_delta=%v", hand, result.Reason, result.Winner, result.ChipDelta)))
		fmt.Fprintln(out, render(infoStyle, holdem.FormatHistory(s)))
		fmt.Fprintln(out, bar.ViewAs(float64(hand+1)/float64(simulatedHands)))
	}

	fmt.Fprintln(out, render(successStyle, fmt.Sprintf("folds=%d showdowns=%d", folds, showdowns)))
	fmt.Fprintln(out, render(infoStyle, formatBuckets(buckets)))
	return nil
}

func formatBuckets(buckets map[card.HoleCategory]int) string {
	order := []card.HoleCategory{
		card.CategoryPremium, card.CategoryStrong, card.CategoryMedium,
		card.CategoryWeak, card.CategoryTrash,
	}
	parts := make([]string, 0, len(order))
	for _, cat := range order {
		if n, ok := buckets[cat]; ok {
			parts = append(parts, fmt.Sprintf("%s=%d", cat, n))
		}
	}
	return "starting hands: " + strings.Join(parts, " ")
}
