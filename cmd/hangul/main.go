package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"hangul/internal/bootstrap"
	"hangul/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "hangul",
		Short:         "Learn the Korean alphabet in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", defaultDataDir(), "directory holding progress, reports and config.yaml")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newLettersCmd(&dataDir))
	root.AddCommand(newWordsCmd(&dataDir))
	root.AddCommand(newProgressCmd(&dataDir))
	root.AddCommand(newQuizCmd(&dataDir))
	root.AddCommand(newSpeakCmd(&dataDir))
	return root
}

func defaultDataDir() string {
	if dir := os.Getenv("HANGUL_DATA"); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "hangul")
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

// withApp builds the application for one command run and closes it afterwards.
func withApp(dataDir *string, fn func(cmd *cobra.Command, args []string, app *bootstrap.App) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := loadApp(*dataDir)
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()
		return fn(cmd, args, app)
	}
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the hangul terminal UI",
		RunE: withApp(dataDir, func(_ *cobra.Command, _ []string, app *bootstrap.App) error {
			return bootstrap.RunTUI(app)
		}),
	}
}
