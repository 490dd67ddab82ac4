package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/poker-client/application"
	"github.com/luca-patrignani/poker-client/domain/action"
	"github.com/luca-patrignani/poker-client/domain/table"
)

const seatsPerRow = table.MaxSeats / 2

// renderTable draws the seats in display order, the board and the action
// panel of the viewer.
func renderTable(v *application.TableView, res application.Result, logger *slog.Logger) (string, error) {
	s, ok := v.Snapshot()
	if !ok {
		return "", nil
	}
	rows := [][]pterm.Panel{nil, nil}
	for display := 0; display < table.MaxSeats; display++ {
		abs := v.UnmapSeat(display)
		row := display / seatsPerRow
		rows[row] = append(rows[row], pterm.Panel{Data: seatInfo(s, abs)})
	}

	rows = append(rows, []pterm.Panel{{Data: boardInfo(s, res.Pot, logger)}, {Data: actionInfo(res)}})
	return pterm.DefaultPanel.WithPanels(rows).Srender()
}

func seatInfo(s table.Snapshot, abs int) string {
	seat := s.Seats[abs]
	pbox := pterm.DefaultBox.WithHorizontalPadding(1)
	title := fmt.Sprintf("Seat %d", abs+1)
	if !seat.Occupied {
		return pbox.WithTitle(pterm.FgDarkGray.Sprint(title)).WithTitleTopLeft().Sprint(pterm.FgDarkGray.Sprint("empty"))
	}
	if abs == s.MySeat {
		title = pterm.LightCyan(title + " (you)")
	}

	var markers []string
	if abs == s.Dealer {
		markers = append(markers, "D")
	}
	if abs == s.SmallBlind {
		markers = append(markers, "SB")
	}
	if abs == s.BigBlind {
		markers = append(markers, "BB")
	}
	status := pterm.LightGreen("Active")
	switch {
	case seat.Sitout:
		status = pterm.Yellow("Sitting out")
	case !seat.InRound:
		status = pterm.LightRed("Folded")
	case seat.Stake == 0:
		status = pterm.LightMagenta("All-in")
	}
	if abs == s.CurrentActor && s.Phase.Active() {
		status = pterm.BgGreen.Sprint(" to act ")
	}
	return pbox.WithTitle(title).WithTitleTopLeft().Sprintf("%s %s\nBet: %d\nStake: %d\n%s",
		status, strings.Join(markers, " "), seat.Bet, seat.Stake, lastAction(seat))
}

func lastAction(seat table.Seat) string {
	if seat.Action == "" || seat.Action == table.ActionNone {
		return ""
	}
	return string(seat.Action)
}

// boardInfo leaves out the hand description when the card codes cannot be
// read.
func boardInfo(s table.Snapshot, pot int64, logger *slog.Logger) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	board := strings.Join(s.CommunityCards, " - ")
	if board == "" {
		board = "no cards"
	}
	text := pterm.Sprintfln("%s | %s", board, s.BettingRound)
	if label := potsLabel(s); label != "" {
		text += pterm.Sprintfln("%s", label)
	}
	text += pterm.Sprintfln("Current pot: %d", pot)

	hand, err := describeHand(s.HoleCards, s.CommunityCards)
	if err != nil {
		logger.Warn("cannot describe hand", "gid", s.GameID, "tid", s.TableID, "error", err)
	} else if hand != "" {
		text += pterm.Sprintfln("Your hand: %s", pterm.LightCyan(hand))
	}
	return pbox.WithTitle(pterm.LightYellow("|" + string(s.Phase) + "|")).WithTitleTopCenter().Sprint(text)
}

// potsLabel lists the settled pots, or nothing while the main pot is empty.
func potsLabel(s table.Snapshot) string {
	mainPot := table.MainPot(s)
	if mainPot <= 0 {
		return ""
	}
	label := fmt.Sprintf("Main pot: %d", mainPot)
	for i, side := range table.SidePots(s) {
		label += fmt.Sprintf("  Side pot %d: %d", i+1, side)
	}
	return label
}

func actionInfo(res application.Result) string {
	e := res.Evaluation
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var lines []string
	switch e.State {
	case action.Actionable:
		lines = append(lines, "fold")
		if e.ShowCheckCall {
			lines = append(lines, e.CheckCallLabel)
		}
		if e.ShowAmount {
			lines = append(lines, fmt.Sprintf("%s [%d, %d]", e.BetRaiseLabel, e.Bounds.Min, e.Bounds.Max))
			var quick []string
			for _, q := range e.QuickRaises {
				if q.Enabled {
					quick = append(quick, fmt.Sprintf("%s=%d", q.Label, q.Amount))
				}
			}
			if len(quick) > 0 {
				lines = append(lines, strings.Join(quick, " "))
			}
		} else {
			lines = append(lines, e.BetRaiseLabel)
		}
	case action.PreActionable:
		lines = append(lines, "[ ] "+e.PreFoldLabel, "[ ] "+e.PreCallLabel)
	case action.PostActionable:
		lines = append(lines, "show", "muck")
	case action.SitoutPending:
		lines = append(lines, "back")
	}
	if res.Fired != nil {
		lines = append(lines, pterm.LightGreen(fmt.Sprintf("sent %s", requestString(*res.Fired))))
	}
	return pbox.WithTitle(pterm.LightYellow("|" + string(e.State) + "|")).WithTitleTopCenter().Sprint(strings.Join(lines, "\n"))
}

func requestString(r action.Request) string {
	if r.Action.HasAmount() {
		return fmt.Sprintf("%s %d", r.Action, r.Amount)
	}
	return string(r.Action)
}
