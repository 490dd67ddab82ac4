package table

const (
	// MaxSeats is the fixed capacity of every table.
	MaxSeats = 10

	// NoSeat marks an unseated viewer or an unset seat reference.
	NoSeat = -1
)

// Phase is the table state announced by the server.
type Phase string

const (
	PhaseGameStart   Phase = "GameStart"
	PhaseElectDealer Phase = "ElectDealer"
	PhaseNewRound    Phase = "NewRound"
	PhaseBlinds      Phase = "Blinds"
	PhaseBetting     Phase = "Betting"
	PhaseAskShow     Phase = "AskShow"
	PhaseAllFolded   Phase = "AllFolded"
	PhaseShowdown    Phase = "Showdown"
	PhaseEndRound    Phase = "EndRound"
)

var phases = []Phase{
	PhaseGameStart,
	PhaseElectDealer,
	PhaseNewRound,
	PhaseBlinds,
	PhaseBetting,
	PhaseAskShow,
	PhaseAllFolded,
	PhaseShowdown,
	PhaseEndRound,
}

// Valid reports whether p is one of the known phases.
func (p Phase) Valid() bool {
	for _, known := range phases {
		if p == known {
			return true
		}
	}
	return false
}

// Active reports whether seats may still act in this phase.
func (p Phase) Active() bool {
	return p == PhaseBlinds || p == PhaseBetting || p == PhaseAskShow
}

// Wagering reports whether chips may still be committed in this phase.
func (p Phase) Wagering() bool {
	return p == PhaseBlinds || p == PhaseBetting
}

// BettingRound is the street of the current deal.
type BettingRound string

const (
	Preflop BettingRound = "preflop"
	Flop    BettingRound = "flop"
	Turn    BettingRound = "turn"
	River   BettingRound = "river"
)

// ActionTag is the last action of a seat, and the verb of an outbound request.
type ActionTag string

const (
	ActionNone   ActionTag = "none"
	ActionCheck  ActionTag = "check"
	ActionFold   ActionTag = "fold"
	ActionCall   ActionTag = "call"
	ActionBet    ActionTag = "bet"
	ActionRaise  ActionTag = "raise"
	ActionAllIn  ActionTag = "allin"
	ActionShow   ActionTag = "show"
	ActionMuck   ActionTag = "muck"
	ActionSitout ActionTag = "sitout"
	ActionBack   ActionTag = "back"
)

// Valid reports whether a is a known action tag. The empty tag is accepted
// and means ActionNone.
func (a ActionTag) Valid() bool {
	switch a {
	case "", ActionNone, ActionCheck, ActionFold, ActionCall, ActionBet, ActionRaise,
		ActionAllIn, ActionShow, ActionMuck, ActionSitout, ActionBack:
		return true
	}
	return false
}

// HasAmount reports whether requests carrying this action need an amount.
func (a ActionTag) HasAmount() bool {
	return a == ActionBet || a == ActionRaise || a == ActionAllIn
}

// Seat is the state of one slot of the table.
type Seat struct {
	Occupied bool      `json:"occupied"`
	InRound  bool      `json:"in_round"`
	Sitout   bool      `json:"sitout"`
	Action   ActionTag `json:"action,omitempty"`
	Bet      int64     `json:"bet"`   // committed in the current betting round
	Stake    int64     `json:"stake"` // chips still behind
	ClientID int       `json:"client_id"`
}

// Snapshot is one authoritative state of a table.
type Snapshot struct {
	GameID       int          `json:"gid"`
	TableID      int          `json:"tid"`
	Phase        Phase        `json:"state"`
	BettingRound BettingRound `json:"betting_round"`

	Dealer       int `json:"s_dealer"`
	SmallBlind   int `json:"s_sb"`
	BigBlind     int `json:"s_bb"`
	CurrentActor int `json:"s_cur"`
	LastBet      int `json:"s_lastbet"` // last aggressor

	MinimumBet int64   `json:"minimum_bet"`
	Pots       []int64 `json:"pots"` // pots[0] is the main pot

	MySeat int            `json:"my_seat"`
	Seats  [MaxSeats]Seat `json:"seats"`

	// Card codes are forwarded opaquely ("Ah", "Td", ...).
	CommunityCards []string `json:"community_cards,omitempty"`
	HoleCards      []string `json:"hole_cards,omitempty"`
}
