package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	alphabetout "hangul/internal/modules/alphabet/adapter/out"
	alphabetservice "hangul/internal/modules/alphabet/service"
	progressout "hangul/internal/modules/progress/adapter/out"
	progressservice "hangul/internal/modules/progress/service"
	progressusecase "hangul/internal/modules/progress/usecase"
	quizadapterin "hangul/internal/modules/quiz/adapter/in"
	quizout "hangul/internal/modules/quiz/adapter/out"
	"hangul/internal/modules/quiz/domain"
	"hangul/internal/modules/quiz/dto"
	"hangul/internal/modules/quiz/service"
	"hangul/internal/modules/quiz/usecase"
	apperrors "hangul/internal/platform/errors"
	"hangul/internal/platform/id"
	"hangul/internal/platform/random"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func TestPracticeRunUpdatesProgress(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	catalogSvc, err := alphabetservice.NewCatalogService(ctx, alphabetout.NewEmbeddedCatalogSource())
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	clk := &fakeClock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	progressSvc := progressservice.NewProgressService(ctx, clk, progressout.NewMemorySnapshotStore(), catalogSvc.Catalog(), nil)
	progress := progressusecase.NewInteractor(progressSvc, nil, "learner")
	quizSvc := service.NewQuizService(domain.NewGenerator(random.Seeded(5)), catalogSvc.Catalog(), quizout.NewProgressAdapter(progress), clk, id.UUID{}, nil)
	handler := quizadapterin.NewCLIHandler(usecase.NewInteractor(quizSvc))

	kinds, err := handler.Kinds(ctx)
	if err != nil || len(kinds) != 5 || kinds[4].Name != "Sound Association" {
		t.Fatalf("unexpected kinds %+v (%v)", kinds, err)
	}
	if _, err := handler.StartRun(ctx, "dictation"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid kind, got %v", err)
	}

	run, err := handler.StartRun(ctx, "letter-matching")
	if err != nil {
		t.Fatalf("start run: %v", err)
	}
	if run.ID == "" || run.KindName != "Letter Matching" || run.Question.Letter == nil {
		t.Fatalf("unexpected run %+v", run)
	}
	var last dto.AnswerOutput
	for !run.Last || run.State != string(domain.StateShowingResult) {
		if run.State == string(domain.StateAwaitingAnswer) {
			idx := 0
			for i, opt := range run.Question.Options {
				if opt == run.Question.CorrectAnswer {
					idx = i
				}
			}
			last, err = handler.Answer(ctx, run.Question.Options, quizadapterin.OptionLabel(idx))
			if err != nil {
				t.Fatalf("answer: %v", err)
			}
			run = last.Run
			continue
		}
		if run, err = handler.Next(ctx); err != nil {
			t.Fatalf("next: %v", err)
		}
	}
	if !last.Correct || run.Points != 120 {
		t.Fatalf("expected 120 points, got %d", run.Points)
	}
	clk.now = clk.now.Add(3 * time.Minute)
	if run, err = handler.Next(ctx); err != nil || run.State != string(domain.StateIdle) {
		t.Fatalf("expected finished run, got %+v (%v)", run, err)
	}

	snapshot, err := progress.GetProgress(ctx)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if snapshot.Stats.TotalQuestions != 10 || snapshot.Stats.CorrectAnswers != 10 {
		t.Fatalf("expected 10/10 recorded answers, got %+v", snapshot.Stats)
	}
	if snapshot.Stats.StudyTimeMinutes != 3 || len(snapshot.CompletedLetters) == 0 {
		t.Fatalf("expected study time and completions, got %+v", snapshot)
	}
}

func TestAskPinsLetter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	catalogSvc, err := alphabetservice.NewCatalogService(ctx, alphabetout.NewEmbeddedCatalogSource())
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	clk := &fakeClock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	progressSvc := progressservice.NewProgressService(ctx, clk, progressout.NewMemorySnapshotStore(), catalogSvc.Catalog(), nil)
	progress := progressusecase.NewInteractor(progressSvc, nil, "learner")
	quizSvc := service.NewQuizService(domain.NewGenerator(random.Seeded(5)), catalogSvc.Catalog(), quizout.NewProgressAdapter(progress), clk, id.UUID{}, nil)
	handler := quizadapterin.NewCLIHandler(usecase.NewInteractor(quizSvc))

	q, err := handler.Ask(ctx, "sound-to-letter", 17)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if q.Letter == nil || q.Letter.ID != 17 || q.CorrectAnswer != q.Letter.Glyph {
		t.Fatalf("expected pinned glyph question, got %+v", q)
	}
	if got := quizadapterin.ResolveOption(q.Options, "1"); got != q.Options[0] {
		t.Fatalf("expected numeric option resolution, got %q", got)
	}
}
