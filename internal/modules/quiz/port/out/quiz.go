package out

import "context"

// Outcome is what the progress tracker reports back after an answer.
type Outcome struct {
	NewlyUnlocked []int
	Granted       []string
	Completed     bool
}

type ProgressPort interface {
	AvailableLetterIDs(ctx context.Context) ([]int, error)
	RecordAnswer(ctx context.Context, letterID, score int) (Outcome, error)
	RecordStudyTime(ctx context.Context, minutes int) error
}
