package action

// State is the action panel the viewer is offered.
type State string

const (
	// NoAction: nothing to decide, or no data for the table.
	NoAction State = "NoAction"
	// PreActionable: another seat is acting, the viewer may pre-commit.
	PreActionable State = "PreActionable"
	// PostActionable: showdown, the viewer chooses to show or muck.
	PostActionable State = "PostActionable"
	// SitoutPending: the viewer sits out and may come back.
	SitoutPending State = "SitoutPending"
	// Actionable: the viewer is the current actor.
	Actionable State = "Actionable"
)

// States lists every State in declaration order.
var States = []State{NoAction, PreActionable, PostActionable, SitoutPending, Actionable}

func (s State) Valid() bool {
	for _, known := range States {
		if s == known {
			return true
		}
	}
	return false
}

// AllInCause tells why the viewer can only go all-in. The zero value means
// the bet is not forced.
type AllInCause string

const (
	AllInNone AllInCause = ""
	// AllInCovered: the greatest bet already covers the viewer's stake.
	AllInCovered AllInCause = "covered"
	// AllInMinimumBet: the minimum bet is at least the viewer's stake.
	AllInMinimumBet AllInCause = "minimum_bet"
)
