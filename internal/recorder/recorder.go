package recorder

import "PolicySimulator/internal/model"

// TurnEvent records one scored turn of a session attempt.
type TurnEvent struct {
	SessionID string
	Attempt   int
	Result    *model.TurnResult
}

// AttemptEvent records how a session attempt ended.
type AttemptEvent struct {
	SessionID   string
	Attempt     int
	Region      string
	Outcome     model.SessionState // FAILED_RESTART or COMPLETE
	TurnsPlayed int
	FinalGDP    float64
}

// Recorder journals turns and attempts for later analysis. The simulator
// never reads the journal back.
type Recorder interface {
	RecordTurn(evt *TurnEvent) error
	RecordAttempt(evt *AttemptEvent) error
	Close() error
}
