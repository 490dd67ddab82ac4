package action

import "github.com/luca-patrignani/poker-client/domain/table"

// Preferences are the auto-actions armed by the viewer on one table view.
type Preferences struct {
	FoldCheck bool
	CheckCall bool
	// Threshold is the greatest bet seen when CheckCall was armed.
	Threshold int64
}

// Armed reports whether any preference is armed.
func (p Preferences) Armed() bool {
	return p.FoldCheck || p.CheckCall
}

// Controller owns the auto-action preferences of a single table view. It is
// not safe for concurrent use.
type Controller struct {
	prefs Preferences
}

func (c *Controller) Preferences() Preferences {
	return c.prefs
}

func (c *Controller) ArmFoldCheck() {
	c.prefs.FoldCheck = true
}

// ArmCheckCall arms auto check/call up to the greatest bet of s.
func (c *Controller) ArmCheckCall(s table.Snapshot) {
	c.prefs.CheckCall = true
	c.prefs.Threshold, _ = s.GreatestBet(0)
}

func (c *Controller) DisarmFoldCheck() {
	c.prefs.FoldCheck = false
}

func (c *Controller) DisarmCheckCall() {
	c.prefs.CheckCall = false
	c.prefs.Threshold = 0
}

func (c *Controller) Reset() {
	c.prefs = Preferences{}
}

// Resolve matches the armed preferences against s. It returns at most one
// decision, and disarms whatever fired or can no longer be satisfied.
func (c *Controller) Resolve(s table.Snapshot) (Decision, bool) {
	seat, ok := s.Viewer()
	if !ok || s.Phase != table.PhaseBetting {
		return Decision{}, false
	}
	greatest, _ := s.GreatestBet(0)

	if !s.IsViewerActing() {
		if c.prefs.CheckCall && greatest > c.prefs.Threshold {
			c.DisarmCheckCall()
		}
		return Decision{}, false
	}

	if c.prefs.FoldCheck {
		c.DisarmFoldCheck()
		if _, behind := s.GreatestBet(seat.Bet); behind {
			return FoldDecision(), true
		}
		return Decision{Action: table.ActionCheck}, true
	}

	if c.prefs.CheckCall && c.prefs.Threshold >= greatest {
		d, err := CheckCallDecision(s)
		if err != nil {
			return Decision{}, false
		}
		c.DisarmCheckCall()
		return d, true
	}
	return Decision{}, false
}
