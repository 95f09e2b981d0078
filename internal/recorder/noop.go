package recorder

// NoopRecorder is used when no journal path is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordTurn(_ *TurnEvent) error       { return nil }
func (n *NoopRecorder) RecordAttempt(_ *AttemptEvent) error { return nil }
func (n *NoopRecorder) Close() error                        { return nil }
