package out

import (
	"context"

	progressin "hangul/internal/modules/progress/port/in"
	wordbuilderout "hangul/internal/modules/wordbuilder/port/out"
)

type ProgressCompletionAdapter struct {
	progress progressin.Usecase
}

func NewProgressCompletionAdapter(progress progressin.Usecase) wordbuilderout.CompletionPort {
	return &ProgressCompletionAdapter{progress: progress}
}

// WordCompleted marks the word completed and returns the names of any achievements it granted.
func (a *ProgressCompletionAdapter) WordCompleted(ctx context.Context, wordID int) ([]string, error) {
	change, err := a.progress.MarkWordCompleted(ctx, wordID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(change.Granted))
	for _, g := range change.Granted {
		names = append(names, g.Name)
	}
	return names, nil
}
