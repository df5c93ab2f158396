package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	alphabetdto "hangul/internal/modules/alphabet/dto"
	progressdto "hangul/internal/modules/progress/dto"
	quizdto "hangul/internal/modules/quiz/dto"
	speechdto "hangul/internal/modules/speech/dto"
	wordbuilderdto "hangul/internal/modules/wordbuilder/dto"
	"hangul/internal/ui/components"
	lettersview "hangul/internal/ui/views/letters"
)

type fakeAlphabet struct{}

func (fakeAlphabet) ListLetters(context.Context, string, int) ([]alphabetdto.LetterOutput, error) {
	return []alphabetdto.LetterOutput{{ID: 1, Glyph: "ㄱ", Name: "giyeok", Category: "consonant", Difficulty: 1}}, nil
}
func (fakeAlphabet) ListWords(context.Context) ([]alphabetdto.WordOutput, error) { return nil, nil }

type fakeProgress struct {
	resets  int
	exports int
}

func (f *fakeProgress) GetProgress(context.Context) (progressdto.ProgressOutput, error) {
	return progressdto.ProgressOutput{}, nil
}
func (f *fakeProgress) LetterStatus(_ context.Context, id int) (progressdto.LetterStatusOutput, error) {
	return progressdto.LetterStatusOutput{LetterID: id, Unlocked: true}, nil
}
func (f *fakeProgress) Metrics(context.Context) (progressdto.MetricsOutput, error) {
	return progressdto.MetricsOutput{}, nil
}
func (f *fakeProgress) Achievements(context.Context) ([]progressdto.AchievementOutput, error) {
	return nil, nil
}
func (f *fakeProgress) Recommendations(context.Context) ([]progressdto.RecommendationOutput, error) {
	return nil, nil
}
func (f *fakeProgress) IncrementStreak(context.Context) (progressdto.ChangeOutput, error) {
	return progressdto.ChangeOutput{Progress: progressdto.ProgressOutput{Streak: 3}}, nil
}
func (f *fakeProgress) ResetAll(context.Context) (progressdto.ProgressOutput, error) {
	f.resets++
	return progressdto.ProgressOutput{}, nil
}
func (f *fakeProgress) ExportReport(context.Context) (progressdto.ReportOutput, error) {
	f.exports++
	return progressdto.ReportOutput{Path: "/tmp/report.md"}, nil
}

type fakeQuiz struct{}

func (fakeQuiz) Kinds(context.Context) ([]quizdto.KindOutput, error) { return nil, nil }
func (fakeQuiz) StartRun(context.Context, string) (quizdto.RunOutput, error) {
	return quizdto.RunOutput{}, nil
}
func (fakeQuiz) Answer(context.Context, []string, string) (quizdto.AnswerOutput, error) {
	return quizdto.AnswerOutput{}, nil
}
func (fakeQuiz) Next(context.Context) (quizdto.RunOutput, error) { return quizdto.RunOutput{}, nil }
func (fakeQuiz) Abandon(context.Context) error                   { return nil }

type fakeWords struct{}

func (fakeWords) Start(context.Context, int) (wordbuilderdto.SessionOutput, error) {
	return wordbuilderdto.SessionOutput{}, nil
}
func (fakeWords) Select(context.Context, string) (wordbuilderdto.SessionOutput, error) {
	return wordbuilderdto.SessionOutput{}, nil
}
func (fakeWords) ClearSelection(context.Context) (wordbuilderdto.SessionOutput, error) {
	return wordbuilderdto.SessionOutput{}, nil
}
func (fakeWords) Build(context.Context) (wordbuilderdto.BuildOutput, error) {
	return wordbuilderdto.BuildOutput{}, nil
}
func (fakeWords) Place(context.Context, string) (wordbuilderdto.SessionOutput, error) {
	return wordbuilderdto.SessionOutput{}, nil
}
func (fakeWords) Remove(context.Context, int) (wordbuilderdto.SessionOutput, error) {
	return wordbuilderdto.SessionOutput{}, nil
}
func (fakeWords) Advance(context.Context) (wordbuilderdto.SessionOutput, error) {
	return wordbuilderdto.SessionOutput{}, nil
}
func (fakeWords) Reset(context.Context) (wordbuilderdto.SessionOutput, error) {
	return wordbuilderdto.SessionOutput{}, nil
}
func (fakeWords) Complete(context.Context) (wordbuilderdto.CompletionOutput, error) {
	return wordbuilderdto.CompletionOutput{}, nil
}

type fakeSpeech struct{ calls int }

func (f *fakeSpeech) SpeakAsync(_ context.Context, _, ref string, done func(error)) (speechdto.SpeakOutput, error) {
	f.calls++
	done(nil)
	return speechdto.SpeakOutput{Text: ref, Language: "ko"}, nil
}

func newTestModel(t *testing.T) (Model, *fakeProgress, *fakeSpeech) {
	t.Helper()
	progress := &fakeProgress{}
	speech := &fakeSpeech{}
	m := NewModel("default", fakeAlphabet{}, progress, fakeQuiz{}, fakeWords{}, speech)
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30}), progress, speech
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("expected app.Model, got %T", next)
	}
	return out
}

func TestTabKeysCycleThroughViews(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t)
	for i := 0; i < int(tabCount); i++ {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if m.activeTab != tabLetters {
		t.Fatalf("expected tab to wrap to letters, got %d", m.activeTab)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.activeTab != tabProgress {
		t.Fatalf("expected shift+tab to reach progress, got %d", m.activeTab)
	}
}

func TestResetPaletteCommandNeedsConfirmation(t *testing.T) {
	t.Parallel()

	m, progress, _ := newTestModel(t)
	next, cmd := m.executePalette("progress:reset")
	m = next.(Model)
	if cmd != nil {
		t.Fatalf("expected no command without confirmation")
	}
	if !strings.Contains(m.status, "confirm") {
		t.Fatalf("expected confirmation hint, got %q", m.status)
	}

	_, cmd = m.executePalette("progress:reset confirm")
	if cmd == nil {
		t.Fatalf("expected reset command")
	}
	if msg, ok := cmd().(resetMsg); !ok || msg.err != nil {
		t.Fatalf("expected successful resetMsg, got %#v", msg)
	}
	if progress.resets != 1 {
		t.Fatalf("expected one reset, got %d", progress.resets)
	}
}

func TestExportPaletteCommandReportsPath(t *testing.T) {
	t.Parallel()

	m, progress, _ := newTestModel(t)
	_, cmd := m.executePalette("progress:export")
	m = update(t, m, cmd())
	if progress.exports != 1 {
		t.Fatalf("expected one export, got %d", progress.exports)
	}
	if m.status != "report written to /tmp/report.md" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestUnknownPaletteCommand(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t)
	next, _ := m.executePalette("graph:open")
	if got := next.(Model).status; got != "unknown command: graph:open" {
		t.Fatalf("unexpected status %q", got)
	}
}

func TestSpeechResultsFromCancelledUtterancesAreIgnored(t *testing.T) {
	t.Parallel()

	m, _, speech := newTestModel(t)
	m = update(t, m, components.SpeakMsg{Target: "letter", Ref: "ㄱ"})
	m = update(t, m, components.SpeakMsg{Target: "letter", Ref: "ㄴ"})

	m = update(t, m, spokenMsg{seq: 1, err: errors.New("cancelled")})
	if m.status != "ready" {
		t.Fatalf("expected stale result to be ignored, got %q", m.status)
	}
	m = update(t, m, spokenMsg{seq: 2, err: errors.New("espeak missing")})
	if m.status != "speech: espeak missing" {
		t.Fatalf("unexpected status %q", m.status)
	}

	cmd := m.speakCmd(3, "letter", "ㄷ")
	if msg, ok := cmd().(speakingMsg); !ok || msg.text != "ㄷ" {
		t.Fatalf("expected speakingMsg for ㄷ, got %#v", msg)
	}
	if speech.calls != 1 {
		t.Fatalf("expected one synth call, got %d", speech.calls)
	}
}

func TestLoadedMessagesReachTheirViewFromAnyTab(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t)
	m.activeTab = tabProgress
	rows := []lettersview.Row{{
		Letter: alphabetdto.LetterOutput{ID: 1, Glyph: "ㄱ", Category: "consonant"},
		Status: progressdto.LetterStatusOutput{LetterID: 1, Unlocked: true},
	}}
	m = update(t, m, lettersview.LettersLoadedMsg{Rows: rows})
	if id, ok := m.lettersView.SelectedLetterID(); !ok || id != 1 {
		t.Fatalf("expected letters view to select ㄱ, got %d %v", id, ok)
	}
}
