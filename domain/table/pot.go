package table

// CurrentPot returns the pot currently being contested (the last element of
// Pots) plus every bet still in front of an occupied, in-round seat.
func CurrentPot(s Snapshot) int64 {
	var pot int64
	if len(s.Pots) > 0 {
		pot = s.Pots[len(s.Pots)-1]
	}
	for _, seat := range s.Seats {
		if seat.Occupied && seat.InRound {
			pot += seat.Bet
		}
	}
	return pot
}

// MainPot returns pots[0], or 0 when the snapshot carries no pot at all.
func MainPot(s Snapshot) int64 {
	if len(s.Pots) == 0 {
		return 0
	}
	return s.Pots[0]
}

// SidePots returns the side pots in insertion order. The slice aliases the
// snapshot and must not be modified.
func SidePots(s Snapshot) []int64 {
	if len(s.Pots) < 2 {
		return nil
	}
	return s.Pots[1:]
}
