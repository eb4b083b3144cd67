// Package cli drives a single heads-up hand or a batch of simulated hands
// against the hand engine from a terminal: mode 0 is an interactive
// integer-prompt loop, mode 1 is an unattended simulation of 10 hands.
package cli

import "fmt"

// Config selects a run mode and the hand parameters it plays with.
type Config struct {
	Mode             int
	ControlledPlayer int
	Seed             int64
	StartingStack    int
	SmallBlind       int
	BigBlind         int
}

// loopGuardLimit is the 200-action infinite-loop guard: if a hand hasn't
// reached Terminal within this many applied actions,
// something in the engine is broken, not the caller.
const loopGuardLimit = 200

// ErrLoopGuard is returned when a hand exceeds loopGuardLimit applied
// actions without reaching Terminal.
var ErrLoopGuard = fmt.Errorf("hand exceeded %d actions without reaching terminal", loopGuardLimit)
