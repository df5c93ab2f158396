package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	alphabetinadapter "hangul/internal/modules/alphabet/adapter/in"
	alphabetoutadapter "hangul/internal/modules/alphabet/adapter/out"
	alphabetservice "hangul/internal/modules/alphabet/service"
	alphabetusecase "hangul/internal/modules/alphabet/usecase"
	progressinadapter "hangul/internal/modules/progress/adapter/in"
	progressoutadapter "hangul/internal/modules/progress/adapter/out"
	progressout "hangul/internal/modules/progress/port/out"
	progressservice "hangul/internal/modules/progress/service"
	progressusecase "hangul/internal/modules/progress/usecase"
	quizinadapter "hangul/internal/modules/quiz/adapter/in"
	quizoutadapter "hangul/internal/modules/quiz/adapter/out"
	quizdomain "hangul/internal/modules/quiz/domain"
	quizservice "hangul/internal/modules/quiz/service"
	quizusecase "hangul/internal/modules/quiz/usecase"
	speechinadapter "hangul/internal/modules/speech/adapter/in"
	speechoutadapter "hangul/internal/modules/speech/adapter/out"
	speechout "hangul/internal/modules/speech/port/out"
	speechservice "hangul/internal/modules/speech/service"
	speechusecase "hangul/internal/modules/speech/usecase"
	wordbuilderinadapter "hangul/internal/modules/wordbuilder/adapter/in"
	wordbuilderoutadapter "hangul/internal/modules/wordbuilder/adapter/out"
	wordbuilderservice "hangul/internal/modules/wordbuilder/service"
	wordbuilderusecase "hangul/internal/modules/wordbuilder/usecase"
	"hangul/internal/platform/clock"
	"hangul/internal/platform/config"
	"hangul/internal/platform/id"
	"hangul/internal/platform/logger"
	"hangul/internal/platform/random"
	uiapp "hangul/internal/ui/app"
)

type App struct {
	Config      config.Config
	Log         *logger.Logger
	AlphabetCLI alphabetinadapter.CLIHandler
	ProgressCLI progressinadapter.CLIHandler
	QuizCLI     quizinadapter.CLIHandler
	WordsCLI    wordbuilderinadapter.CLIHandler
	SpeechCLI   speechinadapter.CLIHandler

	closers []io.Closer
}

func New(cfg config.Config) (*App, error) {
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	ctx := context.Background()
	clk := clock.SystemClock{}
	ids := id.UUID{}

	catalogSvc, err := alphabetservice.NewCatalogService(ctx, alphabetoutadapter.NewEmbeddedCatalogSource())
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	catalog := catalogSvc.Catalog()
	alphabetUC := alphabetusecase.NewInteractor(catalogSvc)

	app := &App{Config: cfg, Log: log}
	store := app.snapshotStore(cfg, log)
	progressSvc := progressservice.NewProgressService(ctx, clk, store, catalog, log.With("module", "progress"))
	progressUC := progressusecase.NewInteractor(progressSvc, progressoutadapter.NewMarkdownReportWriter(cfg.ReportDir), cfg.Profile)

	quizUC := quizusecase.NewInteractor(quizservice.NewQuizService(
		quizdomain.NewGenerator(random.New()),
		catalog,
		quizoutadapter.NewProgressAdapter(progressUC),
		clk,
		ids,
		log.With("module", "quiz"),
	))

	wordsUC := wordbuilderusecase.NewInteractor(wordbuilderservice.NewWordBuilderService(
		catalog,
		wordbuilderoutadapter.NewProgressCompletionAdapter(progressUC),
		ids,
		log.With("module", "wordbuilder"),
	))

	speechUC := speechusecase.NewInteractor(
		speechservice.NewSpeechService(synthesizer(cfg.Speech, log), speechservice.Voices{
			Korean:   cfg.Speech.Voice,
			Fallback: cfg.Speech.FallbackVoice,
			English:  cfg.Speech.EnglishVoice,
		}, log.With("module", "speech")),
		speechoutadapter.NewCatalogTextSource(alphabetUC),
	)

	app.AlphabetCLI = alphabetinadapter.NewCLIHandler(alphabetUC)
	app.ProgressCLI = progressinadapter.NewCLIHandler(progressUC)
	app.QuizCLI = quizinadapter.NewCLIHandler(quizUC)
	app.WordsCLI = wordbuilderinadapter.NewCLIHandler(wordsUC)
	app.SpeechCLI = speechinadapter.NewCLIHandler(speechUC)
	return app, nil
}

// snapshotStore opens the configured store. A SQLite database that cannot be
// opened falls back to an in-memory store so the session still works.
func (a *App) snapshotStore(cfg config.Config, log *logger.Logger) progressout.SnapshotStore {
	switch cfg.Storage {
	case config.StorageMemory:
		return progressoutadapter.NewMemorySnapshotStore()
	case config.StorageFile:
		return progressoutadapter.NewFileSnapshotStore(cfg.SnapshotPath)
	}
	store, err := progressoutadapter.NewSQLiteSnapshotStore(cfg.DBPath)
	if err != nil {
		log.Warn("progress database unavailable, keeping progress in memory", "path", cfg.DBPath, "error", err)
		return progressoutadapter.NewMemorySnapshotStore()
	}
	if c, ok := store.(io.Closer); ok {
		a.closers = append(a.closers, c)
	}
	return store
}

func synthesizer(cfg config.Speech, log *logger.Logger) speechout.Synthesizer {
	if !cfg.Enabled {
		return speechoutadapter.NewDisabledSynthesizer()
	}
	log.Debug("speech synthesizer configured", "command", cfg.Command, "voice", cfg.Voice)
	return speechoutadapter.NewCommandSynthesizer(cfg.Command)
}

// Close releases the progress database and flushes the logger.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	if a.Log != nil {
		a.Log.Sync()
	}
	return errors.Join(errs...)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.Config.Profile, app.AlphabetCLI, app.ProgressCLI, app.QuizCLI, app.WordsCLI, app.SpeechCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	_ = app.SpeechCLI.Stop(context.Background())
	return err
}
