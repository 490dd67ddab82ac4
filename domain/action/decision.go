package action

import (
	"fmt"

	"github.com/luca-patrignani/poker-client/domain/table"
)

// Decision is an action the viewer, or one of its armed preferences, chose.
// Amount is the bet/raise target and is ignored for other actions.
type Decision struct {
	Action table.ActionTag
	Amount int64
}

func (d Decision) String() string {
	if d.Action.HasAmount() {
		return fmt.Sprintf("%s %d", d.Action, d.Amount)
	}
	return string(d.Action)
}

func FoldDecision() Decision   { return Decision{Action: table.ActionFold} }
func ShowDecision() Decision   { return Decision{Action: table.ActionShow} }
func MuckDecision() Decision   { return Decision{Action: table.ActionMuck} }
func SitoutDecision() Decision { return Decision{Action: table.ActionSitout} }
func BackDecision() Decision   { return Decision{Action: table.ActionBack} }

// CheckCallDecision checks when the viewer is not behind, calls otherwise,
// and goes all-in when the call would take the whole stake.
func CheckCallDecision(s table.Snapshot) (Decision, error) {
	seat, ok := s.Viewer()
	if !ok {
		return Decision{}, fmt.Errorf("check/call: %w: viewer is not seated", ErrNotActionable)
	}
	greatest, behind := s.GreatestBet(seat.Bet)
	switch {
	case !behind:
		return Decision{Action: table.ActionCheck}, nil
	case greatest-seat.Bet >= seat.Stake:
		return Decision{Action: table.ActionAllIn, Amount: seat.Stake + seat.Bet}, nil
	default:
		return Decision{Action: table.ActionCall}, nil
	}
}

// BetRaiseDecision bets or raises to amount. When the viewer can only go
// all-in the amount is ignored and an all-in decision is returned.
func BetRaiseDecision(s table.Snapshot, amount int64) (Decision, error) {
	e := Evaluate(s)
	if e.State != Actionable {
		return Decision{}, fmt.Errorf("bet/raise: %w: state is %s", ErrNotActionable, e.State)
	}
	if e.AllIn != AllInNone {
		return Decision{Action: table.ActionAllIn, Amount: e.Bounds.Max}, nil
	}
	if !e.Bounds.Contains(amount) {
		return Decision{}, fmt.Errorf("bet/raise %d: %w [%d, %d]", amount, ErrAmountOutOfBounds, e.Bounds.Min, e.Bounds.Max)
	}
	if amount == e.Bounds.Max {
		return Decision{Action: table.ActionAllIn, Amount: amount}, nil
	}
	if e.Behind {
		return Decision{Action: table.ActionRaise, Amount: amount}, nil
	}
	return Decision{Action: table.ActionBet, Amount: amount}, nil
}

// AllInDecision puts the whole stake in.
func AllInDecision(s table.Snapshot) (Decision, error) {
	e := Evaluate(s)
	if e.State != Actionable {
		return Decision{}, fmt.Errorf("allin: %w: state is %s", ErrNotActionable, e.State)
	}
	return Decision{Action: table.ActionAllIn, Amount: e.Bounds.Max}, nil
}

// QuickRaiseDecision bets or raises to the i-th pot shortcut.
func QuickRaiseDecision(s table.Snapshot, i int) (Decision, error) {
	e := Evaluate(s)
	if e.State != Actionable {
		return Decision{}, fmt.Errorf("quick raise: %w: state is %s", ErrNotActionable, e.State)
	}
	if i < 0 || i >= len(e.QuickRaises) || !e.QuickRaises[i].Enabled {
		return Decision{}, fmt.Errorf("quick raise %d: %w", i, ErrNotActionable)
	}
	return BetRaiseDecision(s, min(e.QuickRaises[i].Amount, e.Bounds.Max))
}
