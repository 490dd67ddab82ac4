package application

import (
	"log/slog"

	"github.com/luca-patrignani/poker-client/domain/action"
	"github.com/luca-patrignani/poker-client/domain/table"
)

type settings struct {
	seatView   table.SeatView
	dispatcher action.Dispatcher
	logger     *slog.Logger
}

func defaultSettings() settings {
	return settings{
		seatView:   table.CenteredView(),
		dispatcher: action.NewDispatcher(),
		logger:     slog.Default(),
	}
}

// Option configures a Client or a TableView.
type Option func(settings) settings

func applyOptions(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		s = opt(s)
	}
	return s
}

func WithSeatView(v table.SeatView) Option {
	return func(s settings) settings {
		s.seatView = v
		return s
	}
}

func WithDispatcher(d action.Dispatcher) Option {
	return func(s settings) settings {
		s.dispatcher = d
		return s
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s settings) settings {
		if l != nil {
			s.logger = l
		}
		return s
	}
}
