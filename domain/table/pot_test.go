package table

import "testing"

func TestCurrentPot(t *testing.T) {
	s := Snapshot{Pots: []int64{50, 10}, MySeat: NoSeat}
	s.Seats[2] = Seat{Occupied: true, InRound: true, Bet: 5, Stake: 100}
	s.Seats[6] = Seat{Occupied: true, InRound: true, Bet: 5, Stake: 100}
	if got := CurrentPot(s); got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}
}

func TestCurrentPotIgnoresFoldedAndEmptySeats(t *testing.T) {
	s := Snapshot{Pots: []int64{30}}
	s.Seats[0] = Seat{Occupied: true, InRound: true, Bet: 10}
	s.Seats[1] = Seat{Occupied: true, InRound: false, Bet: 40} // folded
	s.Seats[2] = Seat{Occupied: false, InRound: true, Bet: 99} // stale entry
	if got := CurrentPot(s); got != 40 {
		t.Fatalf("expected 40, got %d", got)
	}
}

func TestCurrentPotEmptyPots(t *testing.T) {
	var s Snapshot
	if got := CurrentPot(s); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestCurrentPotMonotonic(t *testing.T) {
	s := Snapshot{Pots: []int64{100, 25}}
	s.Seats[1] = Seat{Occupied: true, InRound: true, Bet: 0, Stake: 500}
	s.Seats[4] = Seat{Occupied: true, InRound: true, Bet: 10, Stake: 500}
	s.Seats[8] = Seat{Occupied: true, InRound: false, Bet: 10, Stake: 500}
	for _, idx := range []int{1, 4} {
		prev := CurrentPot(s)
		probe := s
		for bet := probe.Seats[idx].Bet; bet <= 200; bet += 7 {
			probe.Seats[idx].Bet = bet
			got := CurrentPot(probe)
			if got < prev {
				t.Fatalf("seat %d bet %d: pot decreased from %d to %d", idx, bet, prev, got)
			}
			prev = got
		}
	}
}

func TestMainAndSidePots(t *testing.T) {
	s := Snapshot{Pots: []int64{80, 30, 12}}
	if got := MainPot(s); got != 80 {
		t.Errorf("expected main pot 80, got %d", got)
	}
	side := SidePots(s)
	if len(side) != 2 || side[0] != 30 || side[1] != 12 {
		t.Errorf("unexpected side pots %v", side)
	}
	if SidePots(Snapshot{Pots: []int64{5}}) != nil {
		t.Errorf("expected no side pots")
	}
	if MainPot(Snapshot{}) != 0 {
		t.Errorf("expected empty main pot")
	}
}
