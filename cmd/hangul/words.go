package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hangul/internal/bootstrap"
	wordbuilderdto "hangul/internal/modules/wordbuilder/dto"
	apperrors "hangul/internal/platform/errors"
)

func newWordsCmd(dataDir *string) *cobra.Command {
	words := &cobra.Command{Use: "words", Short: "Example words and the word builder"}

	words.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List example words",
		RunE: withApp(dataDir, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			ctx := context.Background()
			items, err := app.AlphabetCLI.ListWords(ctx)
			if err != nil {
				return err
			}
			progress, err := app.ProgressCLI.GetProgress(ctx)
			if err != nil {
				return err
			}
			done := map[int]bool{}
			for _, id := range progress.CompletedWords {
				done[id] = true
			}
			for _, w := range items {
				mark := " "
				if done[w.ID] {
					mark = "✓"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %d  %s  %-10s %s\n", mark, w.ID, w.Korean, w.Romanization, w.English)
			}
			return nil
		}),
	})

	words.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a word and its syllable breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(dataDir, func(cmd *cobra.Command, args []string, app *bootstrap.App) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: word id %q", apperrors.ErrInvalidInput, args[0])
			}
			w, err := app.AlphabetCLI.GetWord(context.Background(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s  %s  %s\n", w.Korean, w.Romanization, w.English)
			for _, s := range w.Syllables {
				_, _ = fmt.Fprintf(out, "  %s = %s + %s", s.Text, s.Initial, s.Vowel)
				if s.Final != "" {
					_, _ = fmt.Fprintf(out, " + %s", s.Final)
				}
				_, _ = fmt.Fprintf(out, "  (%s)\n", s.Structure)
			}
			return nil
		}),
	})

	words.AddCommand(&cobra.Command{
		Use:   "build <id>",
		Short: "Build a word interactively from its letters",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(dataDir, func(cmd *cobra.Command, args []string, app *bootstrap.App) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: word id %q", apperrors.ErrInvalidInput, args[0])
			}
			return runWordBuilder(cmd.InOrStdin(), cmd.OutOrStdout(), app, id)
		}),
	})
	return words
}

const wordBuilderHelp = `commands:
  <letter>     select a consonant or toggle a vowel (stages 1-2)
  <syllable>   place a built syllable in the next slot (stage 3)
  build        build a syllable from the selection
  clear        clear the selection
  remove <n>   empty slot n
  next         go to the next stage
  check        check the assembled word
  hint         show a hint
  reset        start the word over
  say          hear the word
  quit         leave the builder`

func runWordBuilder(in io.Reader, out io.Writer, app *bootstrap.App, wordID int) error {
	ctx := context.Background()
	session, err := app.WordsCLI.Start(ctx, wordID)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Building %s (%s), %q\n%s\n\n", session.Korean, session.Romanization, session.English, wordBuilderHelp)
	printSession(out, session)

	scanner := bufio.NewScanner(in)
	for {
		_, _ = fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		verb, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		var next wordbuilderdto.SessionOutput
		switch strings.ToLower(verb) {
		case "quit", "q", "exit":
			return nil
		case "help", "?":
			_, _ = fmt.Fprintln(out, wordBuilderHelp)
			continue
		case "hint":
			hint, err := app.WordsCLI.Hint(ctx)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out, "hint: "+hint)
			continue
		case "say":
			if _, err := app.SpeechCLI.Speak(ctx, "word", strconv.Itoa(wordID)); err != nil {
				_, _ = fmt.Fprintf(out, "audio unavailable: %v\n", err)
			}
			continue
		case "build":
			res, err := app.WordsCLI.Build(ctx)
			if err != nil {
				reportBuilderErr(out, err)
				continue
			}
			_, _ = fmt.Fprintf(out, "built %s\n", res.Syllable.Text)
			next = res.Session
		case "clear":
			next, err = app.WordsCLI.ClearSelection(ctx)
		case "remove":
			slot, convErr := strconv.Atoi(arg)
			if convErr != nil {
				_, _ = fmt.Fprintln(out, "usage: remove <slot>")
				continue
			}
			next, err = app.WordsCLI.Remove(ctx, slot)
		case "next":
			next, err = app.WordsCLI.Advance(ctx)
		case "reset":
			next, err = app.WordsCLI.Reset(ctx)
		case "check":
			res, err := app.WordsCLI.Complete(ctx)
			if err != nil {
				reportBuilderErr(out, err)
				continue
			}
			_, _ = fmt.Fprintf(out, "Excellent! You built %s (%s), which means %q.\n", res.Session.Korean, res.Session.Romanization, res.Session.English)
			for _, g := range res.Granted {
				_, _ = fmt.Fprintf(out, "achievement unlocked: %s\n", g)
			}
			return nil
		default:
			current, curErr := app.WordsCLI.Current(ctx)
			if curErr != nil {
				return curErr
			}
			if current.Stage == 3 {
				next, err = app.WordsCLI.Place(ctx, line)
			} else {
				next, err = app.WordsCLI.Select(ctx, line)
			}
		}
		if err != nil {
			reportBuilderErr(out, err)
			continue
		}
		printSession(out, next)
	}
}

func reportBuilderErr(out io.Writer, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStageIncomplete), errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrInvalidInput):
		_, _ = fmt.Fprintf(out, "not yet: %v\n", err)
	default:
		_, _ = fmt.Fprintf(out, "error: %v\n", err)
	}
}

func printSession(out io.Writer, s wordbuilderdto.SessionOutput) {
	_, _ = fmt.Fprintf(out, "[stage %d: %s]\n", s.Stage, s.StageName)
	switch s.Stage {
	case 1:
		_, _ = fmt.Fprintf(out, "  consonants: %s\n", jamoLine(s.RequiredConsonants))
		_, _ = fmt.Fprintf(out, "  vowels:     %s\n", jamoLine(s.RequiredVowels))
	case 2:
		_, _ = fmt.Fprintf(out, "  letters:    %s %s\n", jamoLine(s.RequiredConsonants), jamoLine(s.RequiredVowels))
		_, _ = fmt.Fprintf(out, "  selected:   %s %s\n", jamoLine(s.SelectedConsonants), jamoLine(s.SelectedVowels))
		_, _ = fmt.Fprintf(out, "  built:      %s\n", syllableLine(s.Built))
	case 3:
		_, _ = fmt.Fprintf(out, "  syllables:  %s\n", syllableLine(s.Built))
		_, _ = fmt.Fprintf(out, "  word:       %s\n", slotLine(s.Assembled, s.Slots))
	}
	if s.StageComplete {
		_, _ = fmt.Fprintln(out, "  stage complete")
	}
}

func jamoLine(items []wordbuilderdto.JamoOutput) string {
	if len(items) == 0 {
		return "-"
	}
	glyphs := make([]string, 0, len(items))
	for _, j := range items {
		glyphs = append(glyphs, j.Glyph)
	}
	return strings.Join(glyphs, " ")
}

func syllableLine(items []wordbuilderdto.SyllableOutput) string {
	if len(items) == 0 {
		return "-"
	}
	texts := make([]string, 0, len(items))
	for _, s := range items {
		texts = append(texts, s.Text)
	}
	return strings.Join(texts, " ")
}

func slotLine(assembled []wordbuilderdto.SyllableOutput, slots int) string {
	parts := make([]string, slots)
	for i := range parts {
		parts[i] = "_"
		if i < len(assembled) && assembled[i].Text != "" {
			parts[i] = assembled[i].Text
		}
	}
	return strings.Join(parts, " ")
}
