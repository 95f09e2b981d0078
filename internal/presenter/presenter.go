package presenter

import (
	"fmt"
	"io"

	"PolicySimulator/internal/model"
)

// Presenter writes the game transcript.
type Presenter struct {
	Out     io.Writer
	Praiser Praiser
}

// New creates a Presenter. A nil praiser selects a RandomPraiser.
func New(out io.Writer, praiser Praiser) *Presenter {
	if praiser == nil {
		praiser = NewRandomPraiser()
	}
	return &Presenter{Out: out, Praiser: praiser}
}

func (p *Presenter) println(s string) {
	fmt.Fprintln(p.Out, s)
}

// Divider prints the section divider.
func (p *Presenter) Divider() { p.println(Divider) }

// Instructions prints the welcome text between dividers.
func (p *Presenter) Instructions(region string, params model.Params) {
	p.println("\n")
	p.Divider()
	p.println(FormatInstructions(region, params))
	p.Divider()
}

// SessionStart prints the starting GDP of a new attempt.
func (p *Presenter) SessionStart(startYear int, gdp float64) {
	p.println(FormatStart(startYear, gdp))
	p.Divider()
}

// YearPrompt asks for the allocation of the given calendar year.
func (p *Presenter) YearPrompt(year int) { p.println(FormatYearPrompt(year)) }

// TurnResult prints the outcome of a successful turn.
func (p *Presenter) TurnResult(res model.TurnResult) {
	p.println("\n")
	p.println(FormatTurnResult(p.Praiser.Praise(), res))
}

// Invasion prints the failure message that precedes a restart.
func (p *Presenter) Invasion() {
	p.println("\n\n" + FormatInvasion())
	p.Divider()
}

// Final prints the end-of-game summary.
func (p *Presenter) Final(s *model.Summary) {
	p.Divider()
	p.println(FormatFinal(s) + "\n\n")
}
