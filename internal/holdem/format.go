package holdem

import (
	"fmt"
	"strings"
)

// FormatHistory renders a hand's action history as a single line, e.g.
// "preflop: P0 Call(5), P1 Check | flop: P0 Bet(10), P1 Fold". It is a
// display helper with no effect on engine semantics.
func FormatHistory(s *State) string {
	if len(s.History) == 0 {
		return ""
	}

	var b strings.Builder
	cur := s.History[0].Street
	fmt.Fprintf(&b, "%s: ", cur)

	for i, a := range s.History {
		if a.Street != cur {
			cur = a.Street
			fmt.Fprintf(&b, " | %s: ", cur)
		} else if i > 0 {
			b.WriteString(", ")
		}
		if a.Amount != 0 {
			fmt.Fprintf(&b, "P%d %s(%d)", a.Player, a.Type, a.Amount)
		} else {
			fmt.Fprintf(&b, "P%d %s", a.Player, a.Type)
		}
	}
	return b.String()
}
