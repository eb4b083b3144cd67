package holdem

import "github.com/nabilervatra/minipokersolver/internal/card"

// TerminalPayoff settles a hand that has reached Terminal: a fold awards
// the pot to the player who didn't fold; a showdown compares the best
// 5-of-7 score for each player and splits the pot, odd chip to player 0,
// on a tie. ChipDelta is net of what each player put in this hand. It
// returns the zero TerminalResult if the hand has not yet finished.
func TerminalPayoff(s *State) TerminalResult {
	if s.Street != Terminal {
		return TerminalResult{}
	}

	var payout [2]int
	result := TerminalResult{IsTerminal: true}

	if s.Folded[0] != s.Folded[1] {
		winner := 0
		if s.Folded[0] {
			winner = 1
		}
		result.Winner = winner
		result.Reason = "fold"
		payout[winner] = s.Pot
	} else {
		var board [5]card.Card
		copy(board[:], s.Board)
		score0 := card.Evaluate7(s.HoleCards[0], board)
		score1 := card.Evaluate7(s.HoleCards[1], board)
		result.Reason = "showdown"

		switch {
		case score0 > score1:
			result.Winner = 0
			payout[0] = s.Pot
		case score1 > score0:
			result.Winner = 1
			payout[1] = s.Pot
		default:
			result.Winner = -1
			half := s.Pot / 2
			payout[0] = half + s.Pot%2
			payout[1] = half
		}
	}

	result.ChipDelta[0] = payout[0] - s.CommittedTotal[0]
	result.ChipDelta[1] = payout[1] - s.CommittedTotal[1]
	return result
}
