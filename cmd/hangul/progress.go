package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"hangul/internal/bootstrap"
	progressdto "hangul/internal/modules/progress/dto"
	apperrors "hangul/internal/platform/errors"
)

func newProgressCmd(dataDir *string) *cobra.Command {
	progress := &cobra.Command{Use: "progress", Short: "Learner progress commands"}

	progress.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show metrics, statistics and recommendations",
		RunE: withApp(dataDir, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			ctx := context.Background()
			p, err := app.ProgressCLI.GetProgress(ctx)
			if err != nil {
				return err
			}
			m, err := app.ProgressCLI.Metrics(ctx)
			if err != nil {
				return err
			}
			recs, err := app.ProgressCLI.Recommendations(ctx)
			if err != nil {
				return err
			}
			printProgress(cmd.OutOrStdout(), p, m, recs)
			return nil
		}),
	})

	progress.AddCommand(&cobra.Command{
		Use:   "score <letter> <score>",
		Short: "Record a practice score (0-100) for a letter",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(dataDir, func(cmd *cobra.Command, args []string, app *bootstrap.App) error {
			ctx := context.Background()
			l, err := app.AlphabetCLI.GetLetter(ctx, args[0])
			if err != nil {
				return err
			}
			score, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: score %q", apperrors.ErrInvalidInput, args[1])
			}
			change, err := app.ProgressCLI.UpdateScore(ctx, l.ID, score)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s scored %d (best %d)\n", l.Glyph, score, change.Progress.Scores[l.ID])
			printChange(ctx, cmd.OutOrStdout(), app, change)
			return nil
		}),
	})

	progress.AddCommand(&cobra.Command{
		Use:   "complete <letter>",
		Short: "Mark an unlocked letter as completed",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(dataDir, func(cmd *cobra.Command, args []string, app *bootstrap.App) error {
			ctx := context.Background()
			l, err := app.AlphabetCLI.GetLetter(ctx, args[0])
			if err != nil {
				return err
			}
			change, err := app.ProgressCLI.MarkLetterCompleted(ctx, l.ID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s completed\n", l.Glyph)
			printChange(ctx, cmd.OutOrStdout(), app, change)
			return nil
		}),
	})

	var resetStreak bool
	streakCmd := &cobra.Command{
		Use:   "streak",
		Short: "Check in for today; extends the streak once per day",
		RunE: withApp(dataDir, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			ctx := context.Background()
			var change progressdto.ChangeOutput
			var err error
			if resetStreak {
				change, err = app.ProgressCLI.ResetStreak(ctx)
			} else {
				change, err = app.ProgressCLI.IncrementStreak(ctx)
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "streak: %d day(s), best %d\n", change.Progress.Streak, change.Progress.BestStreak)
			printChange(ctx, cmd.OutOrStdout(), app, change)
			return nil
		}),
	}
	streakCmd.Flags().BoolVar(&resetStreak, "reset", false, "reset the streak to zero")

	var grant string
	achievementsCmd := &cobra.Command{
		Use:   "achievements",
		Short: "List achievements",
		RunE: withApp(dataDir, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			ctx := context.Background()
			if grant != "" {
				change, err := app.ProgressCLI.AddAchievement(ctx, grant)
				if err != nil {
					return err
				}
				printChange(ctx, cmd.OutOrStdout(), app, change)
			}
			items, err := app.ProgressCLI.Achievements(ctx)
			if err != nil {
				return err
			}
			for _, a := range items {
				mark := "locked  "
				if a.Unlocked {
					mark = "unlocked"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %-16s %s (reward: %s)\n", a.Icon, mark, a.Name, a.Description, a.Reward)
			}
			return nil
		}),
	}
	achievementsCmd.Flags().StringVar(&grant, "grant", "", "grant an achievement by id")

	var confirm bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress",
		RunE: withApp(dataDir, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			if !confirm {
				return fmt.Errorf("%w: pass --yes to erase all progress", apperrors.ErrInvalidInput)
			}
			p, err := app.ProgressCLI.ResetAll(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "progress reset, %d letters unlocked\n", len(p.UnlockedLetters))
			return nil
		}),
	}
	resetCmd.Flags().BoolVar(&confirm, "yes", false, "confirm the reset")

	progress.AddCommand(streakCmd, achievementsCmd, resetCmd)

	progress.AddCommand(&cobra.Command{
		Use:   "export",
		Short: "Write the progress report note",
		RunE: withApp(dataDir, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			out, err := app.ProgressCLI.ExportReport(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", out.Path)
			return nil
		}),
	})
	return progress
}

func printProgress(w io.Writer, p progressdto.ProgressOutput, m progressdto.MetricsOutput, recs []progressdto.RecommendationOutput) {
	if p.Degraded {
		_, _ = fmt.Fprintln(w, "warning: progress storage unavailable, changes are kept for this session only")
	}
	_, _ = fmt.Fprintf(w, "level %d\n", m.CurrentLevel)
	_, _ = fmt.Fprintf(w, "letters mastered:  %d/%d (%d%%)\n", m.CompletedLetters, m.TotalLetters, m.CompletionProgress)
	_, _ = fmt.Fprintf(w, "letters unlocked:  %d/%d (%d%%)\n", m.UnlockedLetters, m.TotalLetters, m.UnlockProgress)
	_, _ = fmt.Fprintf(w, "words built:       %d\n", m.CompletedWords)
	_, _ = fmt.Fprintf(w, "total points:      %d\n", m.TotalScore)
	_, _ = fmt.Fprintf(w, "average score:     %d%%\n", m.AverageScore)
	_, _ = fmt.Fprintf(w, "streak:            %d day(s), best %d\n", m.Streak, m.BestStreak)
	s := p.Stats
	accuracy := 0
	if s.TotalQuestions > 0 {
		accuracy = s.CorrectAnswers * 100 / s.TotalQuestions
	}
	_, _ = fmt.Fprintf(w, "questions:         %d answered, %d correct (%d%%)\n", s.TotalQuestions, s.CorrectAnswers, accuracy)
	_, _ = fmt.Fprintf(w, "study time:        %d min\n", s.StudyTimeMinutes)
	if len(recs) > 0 {
		_, _ = fmt.Fprintln(w, "\nrecommended:")
		for _, r := range recs {
			_, _ = fmt.Fprintf(w, "  %s %s: %s\n     %s\n", r.Icon, r.Title, r.Description, r.Reason)
		}
	}
}

// printChange reports the side effects of a progress mutation.
func printChange(ctx context.Context, w io.Writer, app *bootstrap.App, change progressdto.ChangeOutput) {
	if change.Completed {
		_, _ = fmt.Fprintln(w, "letter completed!")
	}
	for _, id := range change.NewlyUnlocked {
		l, err := app.AlphabetCLI.GetLetter(ctx, strconv.Itoa(id))
		if err != nil {
			continue
		}
		_, _ = fmt.Fprintf(w, "unlocked %s (%s)\n", l.Glyph, l.Name)
	}
	for _, a := range change.Granted {
		_, _ = fmt.Fprintf(w, "achievement unlocked: %s %s\n", a.Icon, a.Name)
	}
	if change.Progress.Degraded {
		_, _ = fmt.Fprintln(w, "warning: progress storage unavailable, changes are kept for this session only")
	}
}
