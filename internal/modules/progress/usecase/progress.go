package usecase

import (
	"context"
	"fmt"

	"hangul/internal/modules/progress/domain"
	"hangul/internal/modules/progress/dto"
	progressin "hangul/internal/modules/progress/port/in"
	progressout "hangul/internal/modules/progress/port/out"
	"hangul/internal/modules/progress/service"
)

type Interactor struct {
	svc     *service.ProgressService
	reports progressout.ReportWriter
	profile string
}

func NewInteractor(svc *service.ProgressService, reports progressout.ReportWriter, profile string) progressin.Usecase {
	return &Interactor{svc: svc, reports: reports, profile: profile}
}

func (i *Interactor) UpdateScore(ctx context.Context, input dto.ScoreInput) (dto.ChangeOutput, error) {
	return i.change(i.svc.UpdateScore(ctx, input.LetterID, input.Score))
}

func (i *Interactor) MarkLetterCompleted(ctx context.Context, letterID int) (dto.ChangeOutput, error) {
	return i.change(i.svc.MarkLetterCompleted(ctx, letterID))
}

func (i *Interactor) MarkWordCompleted(ctx context.Context, wordID int) (dto.ChangeOutput, error) {
	return i.change(i.svc.MarkWordCompleted(ctx, wordID))
}

func (i *Interactor) IncrementStreak(ctx context.Context) (dto.ChangeOutput, error) {
	return i.change(i.svc.IncrementStreak(ctx))
}

func (i *Interactor) ResetStreak(ctx context.Context) (dto.ChangeOutput, error) {
	return i.change(i.svc.ResetStreak(ctx))
}

func (i *Interactor) AddAchievement(ctx context.Context, achievementID string) (dto.ChangeOutput, error) {
	return i.change(i.svc.AddAchievement(ctx, achievementID))
}

func (i *Interactor) RecordStudyTime(ctx context.Context, minutes int) (dto.ChangeOutput, error) {
	return i.change(i.svc.RecordStudyTime(ctx, minutes))
}

func (i *Interactor) ResetAll(ctx context.Context) (dto.ProgressOutput, error) {
	i.svc.ResetAll(ctx)
	return i.progress(i.svc.Snapshot()), nil
}

func (i *Interactor) GetProgress(_ context.Context) (dto.ProgressOutput, error) {
	return i.progress(i.svc.Snapshot()), nil
}

func (i *Interactor) LetterStatus(_ context.Context, letterID int) (dto.LetterStatusOutput, error) {
	snap := i.svc.Snapshot()
	return dto.LetterStatusOutput{
		LetterID:  letterID,
		Unlocked:  snap.IsUnlocked(letterID),
		Completed: snap.IsCompleted(letterID),
		BestScore: snap.BestScore(letterID),
	}, nil
}

func (i *Interactor) AvailableLetterIDs(_ context.Context) ([]int, error) {
	letters := i.svc.AvailableLetters()
	ids := make([]int, 0, len(letters))
	for _, l := range letters {
		ids = append(ids, l.ID)
	}
	return ids, nil
}

func (i *Interactor) Metrics(_ context.Context) (dto.MetricsOutput, error) {
	m := i.svc.Metrics()
	return dto.MetricsOutput{
		TotalLetters:       m.TotalLetters,
		UnlockedLetters:    m.UnlockedLetters,
		CompletedLetters:   m.CompletedLetters,
		LockedLetters:      m.LockedLetters,
		CompletedWords:     m.CompletedWords,
		TotalScore:         m.TotalScore,
		AverageScore:       m.AverageScore,
		UnlockProgress:     m.UnlockProgress,
		CompletionProgress: m.CompletionProgress,
		CurrentLevel:       m.CurrentLevel,
		Streak:             m.Streak,
		BestStreak:         m.BestStreak,
	}, nil
}

func (i *Interactor) Achievements(_ context.Context) ([]dto.AchievementOutput, error) {
	statuses := domain.AchievementStatuses(i.svc.Snapshot())
	out := make([]dto.AchievementOutput, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, toAchievementOutput(st))
	}
	return out, nil
}

func (i *Interactor) Recommendations(_ context.Context) ([]dto.RecommendationOutput, error) {
	recs := i.svc.Recommendations()
	out := make([]dto.RecommendationOutput, 0, len(recs))
	for _, r := range recs {
		out = append(out, dto.RecommendationOutput{Icon: r.Icon, Title: r.Title, Description: r.Description, Reason: r.Reason})
	}
	return out, nil
}

func (i *Interactor) ExportReport(ctx context.Context) (dto.ReportOutput, error) {
	if i.reports == nil {
		return dto.ReportOutput{}, fmt.Errorf("report writer is not configured")
	}
	path, err := i.reports.Write(ctx, i.svc.Report(i.profile))
	if err != nil {
		return dto.ReportOutput{}, err
	}
	return dto.ReportOutput{Path: path}, nil
}

func (i *Interactor) change(change domain.Change, err error) (dto.ChangeOutput, error) {
	if err != nil {
		return dto.ChangeOutput{}, err
	}
	out := dto.ChangeOutput{
		Progress:      i.progress(change.Snapshot),
		NewlyUnlocked: change.NewlyUnlocked,
		Completed:     change.Completed,
	}
	for _, g := range change.Granted {
		a, _ := domain.FindAchievement(g.ID)
		out.Granted = append(out.Granted, toAchievementOutput(domain.AchievementStatus{Achievement: a, Unlocked: true, UnlockedAt: g.UnlockedAt}))
	}
	return out, nil
}

func (i *Interactor) progress(snap domain.Snapshot) dto.ProgressOutput {
	out := dto.ProgressOutput{
		CompletedLetters: snap.CompletedLetters,
		UnlockedLetters:  snap.UnlockedLetters,
		Scores:           snap.Scores,
		CompletedWords:   snap.CompletedWords,
		TotalScore:       snap.TotalScore,
		Streak:           snap.StreakCount,
		BestStreak:       snap.BestStreak,
		LastPracticeAt:   snap.LastPracticeAt,
		Stats: dto.StatsOutput{
			TotalQuestions:   snap.ExerciseStats.TotalQuestions,
			CorrectAnswers:   snap.ExerciseStats.CorrectAnswers,
			TotalScore:       snap.ExerciseStats.TotalScore,
			AverageScore:     snap.ExerciseStats.AverageScore,
			StudyTimeMinutes: snap.ExerciseStats.StudyTimeMinutes,
		},
		Degraded: i.svc.Degraded(),
	}
	for _, u := range snap.Achievements {
		a, _ := domain.FindAchievement(u.ID)
		out.Achievements = append(out.Achievements, toAchievementOutput(domain.AchievementStatus{Achievement: a, Unlocked: true, UnlockedAt: u.UnlockedAt}))
	}
	return out
}

func toAchievementOutput(st domain.AchievementStatus) dto.AchievementOutput {
	return dto.AchievementOutput{
		ID:          st.ID,
		Name:        st.Name,
		Description: st.Description,
		Icon:        st.Icon,
		Reward:      st.Reward,
		Unlocked:    st.Unlocked,
		UnlockedAt:  st.UnlockedAt,
	}
}
