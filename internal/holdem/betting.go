package holdem

import "github.com/nabilervatra/minipokersolver/internal/bettingcore"

// bettingcoreLegalCandidates asks the shared betting algebra for player p's
// candidates using the hand engine's fixed sizing: pot-fraction {0.5, 1,
// 2}, raises always permitted, all-in always offered.
func bettingcoreLegalCandidates(s *State, p int) []bettingcore.Candidate {
	return bettingcore.LegalCandidates(
		s.Pot,
		s.Stacks[p],
		s.CurrentBet,
		s.CommittedThisRound[p],
		s.LastBetSize,
		defaultSizes,
		true,
		true,
	)
}
