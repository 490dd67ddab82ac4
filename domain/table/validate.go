package table

import "fmt"

// Validate checks the invariants every consumer of a snapshot relies on.
// The returned error wraps ErrInvalidSnapshot.
func (s Snapshot) Validate() error {
	if !s.Phase.Valid() {
		return fmt.Errorf("%w: unknown phase %q", ErrInvalidSnapshot, s.Phase)
	}
	if len(s.Pots) == 0 {
		return fmt.Errorf("%w: no pots", ErrInvalidSnapshot)
	}
	for i, p := range s.Pots {
		if p < 0 {
			return fmt.Errorf("%w: pot %d is negative (%d)", ErrInvalidSnapshot, i, p)
		}
	}
	if s.MinimumBet < 0 {
		return fmt.Errorf("%w: negative minimum bet %d", ErrInvalidSnapshot, s.MinimumBet)
	}

	refs := []struct {
		name string
		seat int
	}{
		{"dealer", s.Dealer},
		{"small blind", s.SmallBlind},
		{"big blind", s.BigBlind},
		{"current actor", s.CurrentActor},
		{"last bet", s.LastBet},
		{"my seat", s.MySeat},
	}
	for _, r := range refs {
		if r.seat != NoSeat && (r.seat < 0 || r.seat >= MaxSeats) {
			return fmt.Errorf("%w: %s seat %d out of range", ErrInvalidSnapshot, r.name, r.seat)
		}
	}

	for i, seat := range s.Seats {
		if seat.Bet < 0 || seat.Stake < 0 {
			return fmt.Errorf("%w: seat %d has negative bet or stake (%d/%d)", ErrInvalidSnapshot, i, seat.Bet, seat.Stake)
		}
		if !seat.Action.Valid() {
			return fmt.Errorf("%w: seat %d has unknown action %q", ErrInvalidSnapshot, i, seat.Action)
		}
	}

	if s.Phase.Active() && s.CurrentActor != NoSeat {
		cur := s.Seats[s.CurrentActor]
		if !cur.Occupied || !cur.InRound {
			return fmt.Errorf("%w: current actor seat %d is not an occupied in-round seat", ErrInvalidSnapshot, s.CurrentActor)
		}
	}

	if s.MySeat != NoSeat && !s.Seats[s.MySeat].Occupied {
		return fmt.Errorf("%w: my seat %d is not occupied", ErrInvalidSnapshot, s.MySeat)
	}
	return nil
}
