package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"hangul/internal/bootstrap"
	alphabetdto "hangul/internal/modules/alphabet/dto"
)

func newLettersCmd(dataDir *string) *cobra.Command {
	letters := &cobra.Command{Use: "letters", Short: "Browse the alphabet"}

	var category string
	var level int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List letters with their unlock status",
		RunE: withApp(dataDir, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			ctx := context.Background()
			items, err := app.AlphabetCLI.ListLetters(ctx, category, level)
			if err != nil {
				return err
			}
			for _, l := range items {
				st, err := app.ProgressCLI.LetterStatus(ctx, l.ID)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s  %-10s %-6s %-9s level %d  %s\n",
					l.ID, l.Glyph, l.Name, l.Romanization, l.Category, l.Difficulty, statusLabel(st.Unlocked, st.Completed, st.BestScore))
			}
			return nil
		}),
	}
	listCmd.Flags().StringVar(&category, "category", "", "consonant|vowel")
	listCmd.Flags().IntVar(&level, "level", 0, "difficulty level 1-4")

	showCmd := &cobra.Command{
		Use:   "show <id|glyph|name>",
		Short: "Show one letter in detail",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(dataDir, func(cmd *cobra.Command, args []string, app *bootstrap.App) error {
			ctx := context.Background()
			l, err := app.AlphabetCLI.GetLetter(ctx, args[0])
			if err != nil {
				return err
			}
			st, err := app.ProgressCLI.LetterStatus(ctx, l.ID)
			if err != nil {
				return err
			}
			printLetter(cmd.OutOrStdout(), l)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "status:        %s\n", statusLabel(st.Unlocked, st.Completed, st.BestScore))
			return nil
		}),
	}

	letters.AddCommand(listCmd, showCmd)
	return letters
}

func statusLabel(unlocked, completed bool, best int) string {
	switch {
	case completed:
		return fmt.Sprintf("completed (best %d%%)", best)
	case unlocked && best > 0:
		return fmt.Sprintf("unlocked (best %d%%)", best)
	case unlocked:
		return "unlocked"
	default:
		return "locked"
	}
}

func printLetter(w io.Writer, l alphabetdto.LetterOutput) {
	_, _ = fmt.Fprintf(w, "%s  %s (#%d)\n", l.Glyph, l.Name, l.ID)
	_, _ = fmt.Fprintf(w, "romanization:  %s\n", l.Romanization)
	_, _ = fmt.Fprintf(w, "sound:         %s\n", l.EnglishSound)
	_, _ = fmt.Fprintf(w, "pronunciation: %s\n", l.EnglishComparison)
	_, _ = fmt.Fprintf(w, "category:      %s, level %d\n", l.Category, l.Difficulty)
	if l.Position != "" {
		_, _ = fmt.Fprintf(w, "position:      %s\n", l.Position)
	}
	if l.VisualAid != "" {
		_, _ = fmt.Fprintf(w, "visual aid:    %s\n", l.VisualAid)
	}
	if len(l.ExampleWords) > 0 {
		_, _ = fmt.Fprintf(w, "sounds like:   %s\n", strings.Join(l.ExampleWords, ", "))
	}
	for _, cw := range l.CommonWords {
		_, _ = fmt.Fprintf(w, "  %s  %s\n", cw.Word, cw.Gloss)
	}
}
