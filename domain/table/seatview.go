package table

// DefaultAnchor is the display slot the viewer occupies in centered view.
//
//	    8   9   0
//	 7             1
//	 6             2
//	    5   4   3
const DefaultAnchor = 4

// SeatView maps absolute seats to display slots. The zero value is the
// identity mapping.
type SeatView struct {
	Centered bool
	Anchor   int
}

// CenteredView returns a SeatView that keeps the viewer at DefaultAnchor.
func CenteredView() SeatView {
	return SeatView{Centered: true, Anchor: DefaultAnchor}
}

// ToView maps an absolute seat to its display slot for a table of n seats.
// It is the identity when the viewer is unseated or centering is disabled.
func (v SeatView) ToView(viewer, seat, n int) int {
	if !v.rotates(viewer, n) {
		return seat
	}
	return mod(seat-viewer+v.anchor(n), n)
}

// FromView is the inverse of ToView.
func (v SeatView) FromView(viewer, display, n int) int {
	if !v.rotates(viewer, n) {
		return display
	}
	return mod(display+viewer-v.anchor(n), n)
}

func (v SeatView) rotates(viewer, n int) bool {
	return v.Centered && viewer != NoSeat && n > 0
}

func (v SeatView) anchor(n int) int {
	return mod(v.Anchor, n)
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
