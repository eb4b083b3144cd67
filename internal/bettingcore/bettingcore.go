// Package bettingcore holds the betting algebra shared by the card-bearing
// hand engine (internal/holdem) and the cards-free tree abstraction
// (internal/abstraction): given the handful of integers that describe a
// betting round, compute the set of legal action candidates. Everything
// here is a pure function over plain ints — no card state, no history, no
// closure bookkeeping — so both faces can reuse it with their own,
// deliberately separate, state types.
package bettingcore

import (
	"math"
	"sort"
)

// ActionType is the kind of action a Candidate represents.
type ActionType int

const (
	Fold ActionType = iota
	Check
	Call
	Bet
	Raise
)

// String renders the action type the way it is serialised over JSON.
func (t ActionType) String() string {
	switch t {
	case Fold:
		return "Fold"
	case Check:
		return "Check"
	case Call:
		return "Call"
	case Bet:
		return "Bet"
	case Raise:
		return "Raise"
	default:
		return "Unknown"
	}
}

// Candidate is a legal action candidate: a type plus the chip amount that
// type's Action.amount field takes on (see spec.md §3 for amount
// semantics per type).
type Candidate struct {
	Type   ActionType
	Amount int
}

// MinRaiseTo returns the smallest legal raise-to target.
func MinRaiseTo(currentBet, lastBetSize int) int {
	return currentBet + max(1, lastBetSize)
}

// LegalCandidates computes the legal action candidates for the player to
// act. sizes holds the pot fractions to offer when betting/raising — a
// fixed set for the hand engine, an abstraction-supplied set for the tree
// builder. allowAllIn controls whether an all-in Bet/Raise is appended;
// the hand engine always passes true, the abstraction passes its
// configured flag. raisesAllowed gates whether any Bet/Raise is offered
// at all — the hand engine always passes true, the abstraction passes
// false once its per-street raise cap is reached.
func LegalCandidates(pot, stack, currentBet, committedThisRound, lastBetSize int, sizes []float64, allowAllIn, raisesAllowed bool) []Candidate {
	call := max(0, currentBet-committedThisRound)
	minRaiseTo := MinRaiseTo(currentBet, lastBetSize)

	var out []Candidate
	if call > 0 {
		out = append(out, Candidate{Fold, 0})
		out = append(out, Candidate{Call, min(call, stack)})

		if stack > call && raisesAllowed {
			for _, x := range sizes {
				target := max(minRaiseTo, currentBet+int(math.Floor(float64(pot)*x)))
				needed := target - committedThisRound
				if call < needed && needed < stack {
					out = append(out, Candidate{Raise, needed})
				}
			}
			if allowAllIn {
				out = append(out, Candidate{Raise, stack})
			}
		}
		return dedupSorted(out)
	}

	out = append(out, Candidate{Check, 0})
	if stack > 0 && raisesAllowed {
		for _, x := range sizes {
			amount := max(1, int(math.Floor(float64(pot)*x)))
			if amount < stack {
				out = append(out, Candidate{Bet, amount})
			}
		}
		if allowAllIn {
			out = append(out, Candidate{Bet, stack})
		}
	}
	return dedupSorted(out)
}

func dedupSorted(cands []Candidate) []Candidate {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Type != cands[j].Type {
			return cands[i].Type < cands[j].Type
		}
		return cands[i].Amount < cands[j].Amount
	})
	out := cands[:0]
	for i, c := range cands {
		if i > 0 && c == cands[i-1] {
			continue
		}
		out = append(out, c)
	}
	return out
}
