package model

// SessionState is the state of the session controller.
type SessionState string

const (
	StateRunning       SessionState = "RUNNING"
	StateFailedRestart SessionState = "FAILED_RESTART"
	StateComplete      SessionState = "COMPLETE"
)

// TurnResult is the outcome of one simulated year.
type TurnResult struct {
	YearIndex  int
	Year       int
	Allocation Allocation
	Reference  Reference
	MatchScore float64
	GDPBefore  float64
	Delta      float64
	GDPAfter   float64
	Invaded    bool // security floor breached; GDPAfter is the zero sentinel
}

// Summary is produced when a session completes.
type Summary struct {
	FinalGDP float64
	MaxGDP   float64
	Gap      float64 // MaxGDP - FinalGDP, negative when the correction overshoots
	Attempts int
	Turns    []TurnResult
}
