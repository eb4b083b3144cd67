package card

import "math/rand/v2"

// Draw returns a single card not yet present in used, marking it used.
// It rejection-samples over the 52-card space rather than maintaining a
// shuffled deck, so hole cards and board cards can be dealt from the same
// used-card bitmap regardless of dealing order.
func Draw(rng *rand.Rand, used *UsedSet) Card {
	for {
		c := Card(rng.IntN(52))
		if !used.Has(c) {
			used.Mark(c)
			return c
		}
	}
}

// DrawN draws n distinct cards via repeated rejection sampling.
func DrawN(rng *rand.Rand, used *UsedSet, n int) []Card {
	out := make([]Card, n)
	for i := range out {
		out[i] = Draw(rng, used)
	}
	return out
}
