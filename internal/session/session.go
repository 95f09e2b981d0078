package session

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"PolicySimulator/internal/collector"
	"PolicySimulator/internal/engine"
	"PolicySimulator/internal/model"
	"PolicySimulator/internal/presenter"
	"PolicySimulator/internal/recorder"
	"PolicySimulator/internal/reference"
)

// Controller drives session attempts until one survives every simulated year.
type Controller struct {
	Ref       *reference.Data
	Engine    *engine.Engine
	Collector *collector.Collector
	Presenter *presenter.Presenter
	Recorder  recorder.Recorder

	log   zerolog.Logger
	newID func() string

	state     model.SessionState
	sessionID string
	attempt   int
	gdp       float64
	year      int
	turns     []model.TurnResult
}

// NewController creates a Controller. A nil recorder selects the noop recorder.
func NewController(ref *reference.Data, col *collector.Collector, pres *presenter.Presenter, rec recorder.Recorder, log zerolog.Logger) *Controller {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Controller{
		Ref:       ref,
		Engine:    engine.New(ref),
		Collector: col,
		Presenter: pres,
		Recorder:  rec,
		log:       log.With().Str("component", "session").Logger(),
		newID:     uuid.NewString,
	}
}

// State returns the current controller state.
func (c *Controller) State() model.SessionState { return c.state }

// GDP returns the running GDP of the current attempt.
func (c *Controller) GDP() float64 { return c.gdp }

// Attempts returns how many attempts have been started.
func (c *Controller) Attempts() int { return c.attempt }

// Run plays attempts until one completes, prints the final summary and
// returns it. An attempt that breaches the security floor is discarded and
// play restarts from the first year. Input errors end the run.
func (c *Controller) Run() (*model.Summary, error) {
	for {
		c.start()
		done, err := c.playAttempt()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}

	summary := &model.Summary{
		FinalGDP: c.gdp,
		MaxGDP:   c.Ref.MaxGDP(),
		Gap:      c.Ref.MaxGDP() - c.gdp,
		Attempts: c.attempt,
		Turns:    append([]model.TurnResult(nil), c.turns...),
	}
	c.Presenter.Final(summary)
	c.log.Info().
		Float64("final_gdp", summary.FinalGDP).
		Float64("gap", summary.Gap).
		Int("attempts", summary.Attempts).
		Msg("simulation complete")
	return summary, nil
}

func (c *Controller) start() {
	c.attempt++
	c.sessionID = c.newID()
	c.gdp = c.Ref.InitialGDP()
	c.year = 0
	c.turns = nil
	c.transition(model.StateRunning)
	c.Presenter.SessionStart(c.Ref.Params().StartYear, c.gdp)
}

func (c *Controller) playAttempt() (bool, error) {
	params := c.Ref.Params()
	for c.year < params.YearsSimulated {
		calendarYear := params.StartYear + c.year + 1
		c.Presenter.YearPrompt(calendarYear)

		alloc, err := c.Collector.Collect()
		if err != nil {
			return false, fmt.Errorf("collect allocation for %d: %w", calendarYear, err)
		}

		res, err := c.Engine.Evaluate(c.gdp, alloc, c.year)
		if err != nil {
			return false, fmt.Errorf("evaluate %d: %w", calendarYear, err)
		}
		c.recordTurn(&res)

		if res.GDPAfter == 0 {
			c.Presenter.Invasion()
			c.recordAttempt(model.StateFailedRestart)
			c.transition(model.StateFailedRestart)
			return false, nil
		}

		c.gdp = res.GDPAfter
		c.year++
		c.turns = append(c.turns, res)
		c.Presenter.TurnResult(res)
	}

	c.transition(model.StateComplete)
	c.recordAttempt(model.StateComplete)
	return true, nil
}

func (c *Controller) transition(next model.SessionState) {
	c.log.Debug().
		Str("session_id", c.sessionID).
		Int("attempt", c.attempt).
		Str("from", string(c.state)).
		Str("to", string(next)).
		Msg("state transition")
	c.state = next
}

func (c *Controller) recordTurn(res *model.TurnResult) {
	if err := c.Recorder.RecordTurn(&recorder.TurnEvent{
		SessionID: c.sessionID,
		Attempt:   c.attempt,
		Result:    res,
	}); err != nil {
		c.log.Error().Err(err).Msg("record turn")
	}
}

func (c *Controller) recordAttempt(outcome model.SessionState) {
	if err := c.Recorder.RecordAttempt(&recorder.AttemptEvent{
		SessionID:   c.sessionID,
		Attempt:     c.attempt,
		Region:      c.Ref.Region(),
		Outcome:     outcome,
		TurnsPlayed: len(c.turns),
		FinalGDP:    c.gdp,
	}); err != nil {
		c.log.Error().Err(err).Msg("record attempt")
	}
}
