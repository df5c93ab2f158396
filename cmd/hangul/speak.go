package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hangul/internal/bootstrap"
)

func newSpeakCmd(dataDir *string) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "speak <ref>",
		Short: "Pronounce a letter, syllable or word",
		Long:  "Target letter (default) and guide take a letter id, glyph or name; syllable takes the text to say; word takes an example word id.",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(dataDir, func(cmd *cobra.Command, args []string, app *bootstrap.App) error {
			out, err := app.SpeechCLI.Speak(context.Background(), target, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "said %q (%s)\n", out.Text, out.Language)
			return nil
		}),
	}
	cmd.Flags().StringVar(&target, "as", "letter", "letter|guide|syllable|word")
	return cmd
}
