package action

import (
	"fmt"

	"github.com/luca-patrignani/poker-client/domain/table"
)

// Bounds is the range of the bet/raise target, both ends inclusive.
// Adjustable is false when the stake cannot meet the minimum bet, in which
// case Min == Max and the only possible target is all-in.
type Bounds struct {
	Min        int64
	Max        int64
	Adjustable bool
}

// Contains reports whether amount is a legal bet/raise target.
func (b Bounds) Contains(amount int64) bool {
	return amount >= b.Min && amount <= b.Max
}

// QuickRaise is a bet/raise shortcut sized as a fraction of the current pot.
type QuickRaise struct {
	Label   string
	Amount  int64
	Enabled bool
}

var quickRaiseFractions = []struct {
	label    string
	num, den int64
}{
	{"1/4 pot", 1, 4},
	{"1/2 pot", 1, 2},
	{"3/4 pot", 3, 4},
	{"pot", 1, 1},
}

// Evaluation is everything the action controls need from one snapshot.
type Evaluation struct {
	State State

	// GreatestBet is the largest bet this round among in-round seats,
	// never below the viewer's own bet.
	GreatestBet int64
	// Behind is true when some seat bet strictly more than the viewer.
	Behind     bool
	CallAmount int64
	Pot        int64

	// Filled when State is Actionable.
	Bounds         Bounds
	AllIn          AllInCause
	ShowCheckCall  bool
	ShowAmount     bool
	CheckCallLabel string
	BetRaiseLabel  string
	QuickRaises    []QuickRaise

	// Filled when State is PreActionable.
	PreFoldLabel string
	PreCallLabel string
}

// Evaluate computes the action state of the viewer for s.
func Evaluate(s table.Snapshot) Evaluation {
	seat, ok := s.Viewer()
	if !ok {
		return Evaluation{State: NoAction}
	}
	if seat.Sitout {
		return Evaluation{State: SitoutPending}
	}
	if !seat.InRound || !s.Phase.Active() {
		return Evaluation{State: NoAction}
	}
	if s.Phase == table.PhaseAskShow {
		if s.IsViewerActing() {
			return Evaluation{State: PostActionable}
		}
		return Evaluation{State: NoAction}
	}
	if seat.Stake == 0 {
		return Evaluation{State: NoAction}
	}

	greatest, behind := s.GreatestBet(seat.Bet)
	e := Evaluation{
		GreatestBet: greatest,
		Behind:      behind,
		CallAmount:  greatest - seat.Bet,
		Pot:         table.CurrentPot(s),
	}

	switch {
	case s.IsViewerActing():
		e.State = Actionable
		fillActionable(&e, s, seat)
	case !behind && s.LastBet == s.MySeat:
		// Approximation: the last aggressor has nothing left to do this
		// round unless somebody raised. Multi-way all-ins are not detected.
		return Evaluation{State: NoAction}
	default:
		e.State = PreActionable
		fillPreActionable(&e, seat)
	}
	return e
}

func fillActionable(e *Evaluation, s table.Snapshot, seat table.Seat) {
	allIn := seat.Stake + seat.Bet

	e.Bounds = Bounds{Min: s.MinimumBet, Max: allIn, Adjustable: true}
	if s.MinimumBet > seat.Stake {
		e.Bounds.Min = allIn
		e.Bounds.Adjustable = false
	}

	if e.Behind {
		e.CheckCallLabel = fmt.Sprintf("call %d", e.CallAmount)
		e.BetRaiseLabel = "raise"
	} else {
		e.CheckCallLabel = "check"
		e.BetRaiseLabel = "bet"
	}

	switch {
	case e.GreatestBet >= allIn:
		e.AllIn = AllInCovered
	case s.MinimumBet >= allIn:
		e.AllIn = AllInMinimumBet
		e.ShowCheckCall = true
	default:
		e.ShowCheckCall = true
		e.ShowAmount = true
	}
	if e.AllIn != AllInNone {
		e.BetRaiseLabel = fmt.Sprintf("allin %d", seat.Stake)
	}

	e.QuickRaises = quickRaises(e.Pot, s.MinimumBet)
}

func fillPreActionable(e *Evaluation, seat table.Seat) {
	if !e.Behind {
		e.PreFoldLabel = "check/fold"
		e.PreCallLabel = "check"
		return
	}
	e.PreFoldLabel = "fold"
	if e.GreatestBet >= seat.Stake+seat.Bet {
		e.PreCallLabel = fmt.Sprintf("allin %d", seat.Stake)
	} else {
		e.PreCallLabel = fmt.Sprintf("call %d", e.CallAmount)
	}
}

// quickRaises sizes the pot shortcuts. A fraction is enabled when it is
// strictly above the minimum bet; the full pot only needs to reach it.
func quickRaises(pot, minimum int64) []QuickRaise {
	out := make([]QuickRaise, 0, len(quickRaiseFractions))
	for _, f := range quickRaiseFractions {
		enabled := pot*f.num > minimum*f.den
		if f.num == f.den {
			enabled = pot >= minimum
		}
		out = append(out, QuickRaise{
			Label:   f.label,
			Amount:  pot * f.num / f.den,
			Enabled: enabled,
		})
	}
	return out
}
