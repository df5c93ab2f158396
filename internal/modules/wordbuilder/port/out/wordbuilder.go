package out

import "context"

// CompletionPort records a finished word with the progress tracker.
type CompletionPort interface {
	WordCompleted(ctx context.Context, wordID int) ([]string, error)
}
