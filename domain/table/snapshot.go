package table

// Seated reports whether the viewer owns a seat at this table.
func (s Snapshot) Seated() bool {
	return s.MySeat != NoSeat && s.MySeat >= 0 && s.MySeat < MaxSeats
}

// Viewer returns the viewer's own seat. ok is false when unseated.
func (s Snapshot) Viewer() (seat Seat, ok bool) {
	if !s.Seated() {
		return Seat{}, false
	}
	return s.Seats[s.MySeat], true
}

// IsViewerActing reports whether the protocol currently expects the viewer to act.
func (s Snapshot) IsViewerActing() bool {
	return s.Seated() && s.CurrentActor == s.MySeat
}

// GreatestBet returns the largest bet committed this round by an occupied,
// in-round seat, never less than floor. greater is true only when some seat is
// strictly above floor, so a seat matching floor exactly does not count.
func (s Snapshot) GreatestBet(floor int64) (greatest int64, greater bool) {
	greatest = floor
	for _, seat := range s.Seats {
		if seat.Occupied && seat.InRound && seat.Bet > greatest {
			greatest = seat.Bet
		}
	}
	return greatest, greatest > floor
}

// ActiveSeats counts the occupied seats still holding a hand.
func (s Snapshot) ActiveSeats() int {
	n := 0
	for _, seat := range s.Seats {
		if seat.Occupied && seat.InRound {
			n++
		}
	}
	return n
}
