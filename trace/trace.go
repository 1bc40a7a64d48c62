package trace

import (
	"io"
	"os"

	"dispatch/types"

	"github.com/rs/zerolog"
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

// Recorder writes one structured line per host event and command. It is
// the machine-readable record of a run; diagnostics go through glog.
type Recorder struct {
	log zerolog.Logger
}

func New(w io.Writer, runID string) *Recorder {
	zerolog.TimeFieldFormat = timeFormat
	return &Recorder{
		log: zerolog.New(w).With().Timestamp().Str("run", runID).Logger(),
	}
}

// NewConsole writes human-readable lines to stdout.
func NewConsole(runID string) *Recorder {
	return New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: timeFormat}, runID)
}

func Nop() *Recorder {
	return &Recorder{log: zerolog.Nop()}
}

func (r *Recorder) CarEvent(step, car int, ev types.CarEvent) {
	e := r.log.Info().
		Str("type", "event").
		Int("step", step).
		Int("car", car).
		Str("event", ev.Kind.String())
	if ev.Kind != types.EV_Idle {
		e = e.Int("floor", ev.Floor)
	}
	if ev.Direction != types.DIR_None {
		e = e.Str("direction", ev.Direction.String())
	}
	e.Msg("car event")
}

func (r *Recorder) HallCall(step, floor int, dir types.Direction) {
	r.log.Info().
		Str("type", "event").
		Int("step", step).
		Int("floor", floor).
		Str("direction", dir.String()).
		Msg("hall button pressed")
}

func (r *Recorder) Command(step, car, floor int) {
	r.log.Info().
		Str("type", "command").
		Int("step", step).
		Int("car", car).
		Int("floor", floor).
		Msg("destination set")
}

func (r *Recorder) Lamps(step, car int, lamps types.Indicators) {
	r.log.Debug().
		Str("type", "lamps").
		Int("step", step).
		Int("car", car).
		Bool("up", lamps.Up).
		Bool("down", lamps.Down).
		Msg("indicators changed")
}

func (r *Recorder) Arrival(step, car, floor, dropped int) {
	r.log.Debug().
		Str("type", "arrival").
		Int("step", step).
		Int("car", car).
		Int("floor", floor).
		Int("dropped", dropped).
		Msg("riders dropped")
}
