package application

import (
	"fmt"
	"log/slog"

	"github.com/luca-patrignani/poker-client/domain/action"
	"github.com/luca-patrignani/poker-client/domain/table"
)

// Result is what one reconciliation pass hands to the renderer.
type Result struct {
	Evaluation action.Evaluation
	// Fired is the request an armed preference produced, if any.
	Fired *action.Request
	// NewHand is set on the first snapshot of a new deal.
	NewHand bool
	Pot     int64
}

// TableView reconciles the snapshots of one table with the viewer's
// auto-action preferences. It is owned by a single goroutine.
type TableView struct {
	gameID  int
	tableID int
	settings

	auto  action.Controller
	snap  table.Snapshot
	ready bool
	// seat the armed preferences were set for
	prefSeat int
	last     Result
}

func NewTableView(gameID, tableID int, opts ...Option) *TableView {
	return &TableView{
		gameID:   gameID,
		tableID:  tableID,
		settings: applyOptions(opts),
		prefSeat: table.NoSeat,
		last:     Result{Evaluation: action.Evaluation{State: action.NoAction}},
	}
}

// Reconcile runs one pass over s. prev is the phase of the previously
// accepted snapshot of this table. An invalid snapshot leaves the view
// untouched and the last result is returned with the error.
func (v *TableView) Reconcile(s table.Snapshot, prev table.Phase) (Result, error) {
	if err := s.Validate(); err != nil {
		v.logger.Warn("snapshot rejected", "gid", v.gameID, "tid", v.tableID, "error", err)
		return v.last, fmt.Errorf("reconcile table %d/%d: %w", v.gameID, v.tableID, err)
	}
	if s.GameID != v.gameID || s.TableID != v.tableID {
		err := fmt.Errorf("%w: snapshot for table %d/%d", table.ErrInvalidSnapshot, s.GameID, s.TableID)
		v.logger.Warn("snapshot rejected", "gid", v.gameID, "tid", v.tableID, "error", err)
		return v.last, fmt.Errorf("reconcile table %d/%d: %w", v.gameID, v.tableID, err)
	}

	v.snap = s
	v.ready = true
	v.resetStalePreferences(s)

	res := Result{
		Evaluation: action.Evaluate(s),
		NewHand:    s.Phase == table.PhaseNewRound && prev != table.PhaseNewRound,
		Pot:        table.CurrentPot(s),
	}
	if d, ok := v.auto.Resolve(s); ok {
		if req := v.emit(d); req != nil {
			v.logger.Info("auto-action fired", "gid", v.gameID, "action", d.String())
			res.Fired = req
			res.Evaluation = action.Evaluation{State: action.NoAction, Pot: res.Pot}
		}
	}
	v.last = res
	return res, nil
}

func (v *TableView) resetStalePreferences(s table.Snapshot) {
	if s.MySeat != v.prefSeat {
		v.auto.Reset()
		v.prefSeat = s.MySeat
		return
	}
	seat, ok := s.Viewer()
	if !ok || !seat.InRound || !s.Phase.Wagering() {
		v.auto.Reset()
	}
}

// emit dispatches d against the latest snapshot. Nothing is emitted when the
// viewer is no longer seated.
func (v *TableView) emit(d action.Decision) *action.Request {
	if !v.seated() {
		v.logger.Debug("stale action dropped", "gid", v.gameID, "action", d.String())
		return nil
	}
	req := v.dispatcher.Dispatch(v.gameID, d)
	v.auto.Reset()
	v.last.Evaluation = action.Evaluation{State: action.NoAction, Pot: v.last.Pot}
	return &req
}

func (v *TableView) GameID() int  { return v.gameID }
func (v *TableView) TableID() int { return v.tableID }

// Snapshot returns the last accepted snapshot.
func (v *TableView) Snapshot() (table.Snapshot, bool) {
	return v.snap, v.ready
}

// Result returns the outcome of the last pass, updated by user actions.
func (v *TableView) Result() Result {
	return v.last
}

func (v *TableView) Evaluation() action.Evaluation {
	return v.last.Evaluation
}

func (v *TableView) Preferences() action.Preferences {
	return v.auto.Preferences()
}

// The user actions below return a nil request when the viewer is no longer
// seated, and ErrNotActionable when the action panel does not offer them.

func (v *TableView) Fold() (*action.Request, error) {
	if !v.seated() {
		return nil, nil
	}
	if err := v.expect(action.Actionable, "fold"); err != nil {
		return nil, err
	}
	return v.emit(action.FoldDecision()), nil
}

func (v *TableView) CheckCall() (*action.Request, error) {
	if !v.seated() {
		return nil, nil
	}
	if err := v.expect(action.Actionable, "check/call"); err != nil {
		return nil, err
	}
	d, err := action.CheckCallDecision(v.snap)
	if err != nil {
		return nil, err
	}
	return v.emit(d), nil
}

func (v *TableView) BetRaise(amount int64) (*action.Request, error) {
	if !v.seated() {
		return nil, nil
	}
	if err := v.expect(action.Actionable, "bet/raise"); err != nil {
		return nil, err
	}
	d, err := action.BetRaiseDecision(v.snap, amount)
	if err != nil {
		return nil, err
	}
	return v.emit(d), nil
}

// QuickRaise bets or raises to the i-th pot shortcut of the evaluation.
func (v *TableView) QuickRaise(i int) (*action.Request, error) {
	if !v.seated() {
		return nil, nil
	}
	if err := v.expect(action.Actionable, "quick raise"); err != nil {
		return nil, err
	}
	d, err := action.QuickRaiseDecision(v.snap, i)
	if err != nil {
		return nil, err
	}
	return v.emit(d), nil
}

func (v *TableView) AllIn() (*action.Request, error) {
	if !v.seated() {
		return nil, nil
	}
	if err := v.expect(action.Actionable, "allin"); err != nil {
		return nil, err
	}
	d, err := action.AllInDecision(v.snap)
	if err != nil {
		return nil, err
	}
	return v.emit(d), nil
}

func (v *TableView) Show() (*action.Request, error) {
	if !v.seated() {
		return nil, nil
	}
	if err := v.expect(action.PostActionable, "show"); err != nil {
		return nil, err
	}
	return v.emit(action.ShowDecision()), nil
}

func (v *TableView) Muck() (*action.Request, error) {
	if !v.seated() {
		return nil, nil
	}
	if err := v.expect(action.PostActionable, "muck"); err != nil {
		return nil, err
	}
	return v.emit(action.MuckDecision()), nil
}

// SitOut asks to sit out and shows the sit-out panel until the server
// confirms.
func (v *TableView) SitOut() (*action.Request, error) {
	if !v.seated() {
		return nil, nil
	}
	if v.last.Evaluation.State == action.SitoutPending {
		return nil, fmt.Errorf("sitout: %w: state is %s", action.ErrNotActionable, action.SitoutPending)
	}
	req := v.emit(action.SitoutDecision())
	if req != nil {
		v.last.Evaluation = action.Evaluation{State: action.SitoutPending, Pot: v.last.Pot}
	}
	return req, nil
}

// Back asks to come back and evaluates the current snapshot as if the
// viewer were already playing again.
func (v *TableView) Back() (*action.Request, error) {
	if !v.seated() {
		return nil, nil
	}
	if err := v.expect(action.SitoutPending, "back"); err != nil {
		return nil, err
	}
	req := v.emit(action.BackDecision())
	s := v.snap
	s.Seats[s.MySeat].Sitout = false
	v.last.Evaluation = action.Evaluate(s)
	return req, nil
}

func (v *TableView) expect(state action.State, verb string) error {
	if got := v.last.Evaluation.State; got != state {
		return fmt.Errorf("%s: %w: state is %s", verb, action.ErrNotActionable, got)
	}
	return nil
}

// ArmFoldCheck arms or disarms auto fold/check.
func (v *TableView) ArmFoldCheck(on bool) {
	if on {
		v.auto.ArmFoldCheck()
		return
	}
	v.auto.DisarmFoldCheck()
}

// ArmCheckCall arms auto check/call up to the greatest bet of the last
// snapshot, or disarms it.
func (v *TableView) ArmCheckCall(on bool) {
	if on {
		v.auto.ArmCheckCall(v.snap)
		return
	}
	v.auto.DisarmCheckCall()
}

// MapSeat returns the display slot of an absolute seat.
func (v *TableView) MapSeat(seat int) int {
	return v.seatView.ToView(v.viewer(), seat, table.MaxSeats)
}

// UnmapSeat returns the absolute seat drawn at a display slot.
func (v *TableView) UnmapSeat(display int) int {
	return v.seatView.FromView(v.viewer(), display, table.MaxSeats)
}

func (v *TableView) seated() bool {
	return v.ready && v.snap.Seated()
}

func (v *TableView) viewer() int {
	if !v.ready {
		return table.NoSeat
	}
	return v.snap.MySeat
}

func (v *TableView) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("gid", v.gameID),
		slog.Int("tid", v.tableID),
		slog.String("state", string(v.last.Evaluation.State)),
	)
}
