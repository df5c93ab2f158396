package out

import (
	"context"

	"hangul/internal/modules/progress/domain"
)

// SnapshotStore persists the whole learner snapshot. Load returns
// apperrors.ErrNotFound when nothing has been saved yet.
type SnapshotStore interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Save(ctx context.Context, snapshot domain.Snapshot) error
}

type ReportWriter interface {
	Write(ctx context.Context, report domain.Report) (string, error)
}
