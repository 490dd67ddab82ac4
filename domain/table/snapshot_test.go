package table

import "testing"

func TestGreatestBetStrict(t *testing.T) {
	s := validSnapshot()
	greatest, greater := s.GreatestBet(0)
	if greatest != 20 || !greater {
		t.Fatalf("expected (20, true), got (%d, %v)", greatest, greater)
	}
	greatest, greater = s.GreatestBet(20)
	if greatest != 20 || greater {
		t.Fatalf("a matching bet must not count as ahead: got (%d, %v)", greatest, greater)
	}
	s.Seats[2].InRound = false
	greatest, _ = s.GreatestBet(0)
	if greatest != 10 {
		t.Fatalf("folded seats must be ignored, got %d", greatest)
	}
}

func TestViewer(t *testing.T) {
	s := validSnapshot()
	seat, ok := s.Viewer()
	if !ok || seat.ClientID != 13 {
		t.Fatalf("expected viewer seat 3, got %+v %v", seat, ok)
	}
	if !s.IsViewerActing() {
		t.Errorf("viewer is the current actor")
	}
	s.MySeat = NoSeat
	if _, ok := s.Viewer(); ok {
		t.Errorf("unseated viewer must not resolve a seat")
	}
	if s.IsViewerActing() {
		t.Errorf("unseated viewer cannot act")
	}
}

func TestActiveSeats(t *testing.T) {
	s := validSnapshot()
	if got := s.ActiveSeats(); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}
