package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"hangul/internal/bootstrap"
	quizcli "hangul/internal/modules/quiz/adapter/in"
	quizdto "hangul/internal/modules/quiz/dto"
	apperrors "hangul/internal/platform/errors"
)

func newQuizCmd(dataDir *string) *cobra.Command {
	quiz := &cobra.Command{Use: "quiz", Short: "Practice exercises"}

	quiz.AddCommand(&cobra.Command{
		Use:   "kinds",
		Short: "List exercise kinds",
		RunE: withApp(dataDir, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			kinds, err := app.QuizCLI.Kinds(context.Background())
			if err != nil {
				return err
			}
			for _, k := range kinds {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-18s %-18s %s\n", k.Kind, k.Name, k.Description)
			}
			return nil
		}),
	})

	var kind, letter string
	var reveal bool
	askCmd := &cobra.Command{
		Use:   "ask",
		Short: "Generate a single question",
		RunE: withApp(dataDir, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			ctx := context.Background()
			letterID := 0
			if letter != "" {
				l, err := app.AlphabetCLI.GetLetter(ctx, letter)
				if err != nil {
					return err
				}
				letterID = l.ID
			}
			q, err := app.QuizCLI.Ask(ctx, kind, letterID)
			if err != nil {
				return err
			}
			printQuestion(cmd.OutOrStdout(), q)
			if reveal && !q.Placeholder {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "answer: %s\n", q.CorrectAnswer)
			}
			return nil
		}),
	}
	askCmd.Flags().StringVar(&kind, "kind", "multiple-choice", "exercise kind, see 'quiz kinds'")
	askCmd.Flags().StringVar(&letter, "letter", "", "focus letter (id, glyph or name)")
	askCmd.Flags().BoolVar(&reveal, "reveal", false, "print the correct answer")

	var runKind string
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Play a ten-question practice run",
		RunE: withApp(dataDir, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			return runQuiz(cmd.InOrStdin(), cmd.OutOrStdout(), app, runKind)
		}),
	}
	runCmd.Flags().StringVar(&runKind, "kind", "multiple-choice", "exercise kind, see 'quiz kinds'")

	quiz.AddCommand(askCmd, runCmd)
	return quiz
}

func printQuestion(w io.Writer, q quizdto.QuestionOutput) {
	_, _ = fmt.Fprintln(w, q.Prompt)
	if q.Placeholder {
		_, _ = fmt.Fprintln(w, "You need at least 2 unlocked letters to practice.")
		return
	}
	if q.Letter != nil && q.Kind != "sound-to-letter" && q.Kind != "word-association" {
		_, _ = fmt.Fprintf(w, "  %s  (%s, level %d)\n", q.Letter.Glyph, q.Letter.Category, q.Letter.Difficulty)
	}
	for i, opt := range q.Options {
		_, _ = fmt.Fprintf(w, "  %s) %s\n", quizcli.OptionLabel(i), opt)
	}
}

// runQuiz plays a practice run on a line-oriented terminal. An empty line or
// "quit" abandons the run.
func runQuiz(in io.Reader, out io.Writer, app *bootstrap.App, kind string) error {
	ctx := context.Background()
	run, err := app.QuizCLI.StartRun(ctx, kind)
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(in)
	points := 0
	for {
		_, _ = fmt.Fprintf(out, "\n%s  question %d/%d  score %d\n", run.KindName, run.QuestionNumber, run.TotalQuestions, run.Points)
		printQuestion(out, run.Question)
		if run.Question.Placeholder {
			return app.QuizCLI.Abandon(ctx)
		}

		var answer quizdto.AnswerOutput
		for {
			_, _ = fmt.Fprint(out, "answer> ")
			if !scanner.Scan() {
				_ = app.QuizCLI.Abandon(ctx)
				return scanner.Err()
			}
			raw := strings.TrimSpace(scanner.Text())
			if raw == "" || strings.EqualFold(raw, "quit") {
				_, _ = fmt.Fprintln(out, "run abandoned")
				return app.QuizCLI.Abandon(ctx)
			}
			answer, err = app.QuizCLI.Answer(ctx, run.Question.Options, raw)
			if errors.Is(err, apperrors.ErrInvalidInput) {
				continue
			}
			if err != nil {
				return err
			}
			break
		}

		_, _ = fmt.Fprintln(out, answer.Feedback)
		if answer.Awarded > 0 {
			_, _ = fmt.Fprintf(out, "+%d points\n", answer.Awarded)
		}
		if l := run.Question.Letter; l != nil {
			_, _ = fmt.Fprintf(out, "%s (%s): %s, %s\n", l.Name, l.Glyph, l.Romanization, l.EnglishComparison)
		}
		for _, g := range answer.Granted {
			_, _ = fmt.Fprintf(out, "achievement unlocked: %s\n", g)
		}
		if len(answer.NewlyUnlocked) > 0 {
			_, _ = fmt.Fprintf(out, "%d new letter(s) unlocked\n", len(answer.NewlyUnlocked))
		}
		points = answer.Run.Points

		last := answer.Run.Last
		run, err = app.QuizCLI.Next(ctx)
		if err != nil {
			return err
		}
		if last {
			_, _ = fmt.Fprintf(out, "\nrun finished: %d points\n", points)
			return nil
		}
	}
}
