package practice

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	quizdto "hangul/internal/modules/quiz/dto"
	"hangul/internal/ui/components"
	"hangul/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type PracticePort interface {
	Kinds(ctx context.Context) ([]quizdto.KindOutput, error)
	StartRun(ctx context.Context, kind string) (quizdto.RunOutput, error)
	Answer(ctx context.Context, options []string, raw string) (quizdto.AnswerOutput, error)
	Next(ctx context.Context) (quizdto.RunOutput, error)
	Abandon(ctx context.Context) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type KindsLoadedMsg struct {
	Kinds []quizdto.KindOutput
	Err   error
}

type RunStartedMsg struct {
	Run quizdto.RunOutput
	Err error
}

type AnsweredMsg struct {
	Answer quizdto.AnswerOutput
	Err    error
}

type AdvancedMsg struct {
	Run      quizdto.RunOutput
	Finished bool
	Err      error
}

// ─── list item ───────────────────────────────────────────────────────────────

type kindItem struct{ kind quizdto.KindOutput }

func (i kindItem) Title() string       { return i.kind.Name }
func (i kindItem) Description() string { return i.kind.Description }
func (i kindItem) FilterValue() string { return i.kind.Name }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    PracticePort
	kinds   list.Model
	run     quizdto.RunOutput
	running bool
	cursor  int
	result  *quizdto.AnswerOutput
	summary string
	width   int
	height  int
}

func New(port PracticePort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Practice Exercises"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	return Model{port: port, kinds: l, cursor: -1}
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		kinds, err := m.port.Kinds(context.Background())
		return KindsLoadedMsg{Kinds: kinds, Err: err}
	}
}

// Running reports whether a practice run is on screen.
func (m Model) Running() bool { return m.running }

// StartRun begins a ten-question run of the given kind.
func (m Model) StartRun(kind string) tea.Cmd {
	return func() tea.Msg {
		run, err := m.port.StartRun(context.Background(), kind)
		return RunStartedMsg{Run: run, Err: err}
	}
}

// Abandon drops the current run and returns to the exercise list.
func (m *Model) Abandon() tea.Cmd {
	if !m.running {
		return nil
	}
	m.running = false
	m.result = nil
	port := m.port
	return func() tea.Msg {
		_ = port.Abandon(context.Background())
		return components.StatusMsg{Text: "practice run abandoned"}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.kinds.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case KindsLoadedMsg:
		if msg.Err != nil {
			m.kinds.Title = "Practice: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Kinds))
		for i, k := range msg.Kinds {
			items[i] = kindItem{kind: k}
		}
		return m, m.kinds.SetItems(items)

	case RunStartedMsg:
		if msg.Err != nil {
			return m, components.Status("practice: " + msg.Err.Error())
		}
		m.run, m.running, m.result, m.cursor, m.summary = msg.Run, true, nil, -1, ""
		return m, components.Status("practice: " + msg.Run.KindName)

	case AnsweredMsg:
		if msg.Err != nil {
			return m, components.Status("practice: " + msg.Err.Error())
		}
		m.result = &msg.Answer
		m.run = msg.Answer.Run
		return m, tea.Batch(components.ProgressChanged, components.Status(answerStatus(msg.Answer)))

	case AdvancedMsg:
		if msg.Err != nil {
			return m, components.Status("practice: " + msg.Err.Error())
		}
		m.result, m.cursor = nil, -1
		if msg.Finished {
			m.running = false
			return m, tea.Batch(components.ProgressChanged, components.Status(m.summary))
		}
		m.run = msg.Run
		return m, nil

	case tea.KeyMsg:
		if !m.running {
			if msg.String() == "enter" {
				if item, ok := m.kinds.SelectedItem().(kindItem); ok {
					return m, m.StartRun(item.kind.Kind)
				}
			}
			var cmd tea.Cmd
			m.kinds, cmd = m.kinds.Update(msg)
			return m, cmd
		}
		return m.handleRunKey(msg)
	}
	return m, nil
}

func (m Model) handleRunKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	q := m.run.Question
	key := msg.String()
	switch key {
	case "esc":
		cmd := m.Abandon()
		return m, cmd
	case "p":
		if q.Letter != nil {
			return m, components.Speak("letter", fmt.Sprint(q.Letter.ID))
		}
		return m, nil
	case "up", "left", "k", "h":
		if m.result == nil && len(q.Options) > 0 {
			m.cursor = (max(m.cursor, 0) + len(q.Options) - 1) % len(q.Options)
		}
		return m, nil
	case "down", "right", "j", "l":
		if m.result == nil && len(q.Options) > 0 {
			m.cursor = (m.cursor + 1) % len(q.Options)
		}
		return m, nil
	case "enter", " ":
		if q.Placeholder {
			cmd := m.Abandon()
			return m, cmd
		}
		if m.result != nil {
			cmd := m.nextCmd()
			return m, cmd
		}
		if m.cursor < 0 {
			return m, nil
		}
		return m, m.answerCmd(q.Options, q.Options[m.cursor])
	}
	if m.result == nil && len(key) == 1 {
		idx := optionIndex(key)
		if idx >= 0 && idx < len(q.Options) {
			m.cursor = idx
		}
	}
	return m, nil
}

func optionIndex(key string) int {
	c := strings.ToLower(key)[0]
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a')
	case c >= '1' && c <= '9':
		return int(c - '1')
	}
	return -1
}

func (m Model) answerCmd(options []string, choice string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Answer(context.Background(), options, choice)
		return AnsweredMsg{Answer: out, Err: err}
	}
}

func (m *Model) nextCmd() tea.Cmd {
	last := m.run.Last
	if last {
		m.summary = fmt.Sprintf("Exercise finished: %d/%d correct, %d points", m.run.Correct, m.run.TotalQuestions, m.run.Points)
	}
	port := m.port
	return func() tea.Msg {
		run, err := port.Next(context.Background())
		return AdvancedMsg{Run: run, Finished: last, Err: err}
	}
}

func answerStatus(a quizdto.AnswerOutput) string {
	parts := []string{a.Feedback}
	if a.Awarded > 0 {
		parts = append(parts, fmt.Sprintf("+%d", a.Awarded))
	}
	if n := len(a.NewlyUnlocked); n > 0 {
		parts = append(parts, fmt.Sprintf("%d new letter(s) unlocked", n))
	}
	for _, g := range a.Granted {
		parts = append(parts, "🏆 "+g)
	}
	return strings.Join(parts, "  ")
}

func (m Model) View() string {
	if !m.running {
		body := m.kinds.View()
		if m.summary != "" {
			body = theme.Good.Render(m.summary) + "\n\n" + body
		}
		return lipgloss.NewStyle().Width(m.width).Height(m.height).Render(body)
	}

	r := m.run
	q := r.Question
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(r.KindName))
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("   Question %d/%d   Score: %d", r.QuestionNumber, r.TotalQuestions, r.Points)) + "\n\n")
	sb.WriteString(q.Prompt + "\n\n")

	if q.Placeholder {
		sb.WriteString(theme.Warn.Render("📚 You need at least 2 unlocked letters to practice.") + "\n")
		sb.WriteString(theme.Muted.Render("Complete some letters first!  enter: back"))
		return theme.Pane.Width(m.width - 2).Render(sb.String())
	}
	if q.Letter != nil && q.Kind != "sound-to-letter" && q.Kind != "word-association" {
		sb.WriteString(theme.Glyph.Render(q.Letter.Glyph) + "  " +
			theme.Muted.Render(q.Letter.Category) + "  " +
			theme.Level(q.Letter.Difficulty).Render(fmt.Sprintf("Level %d", q.Letter.Difficulty)) + "\n\n")
	}

	for i, opt := range q.Options {
		style := theme.Option
		switch {
		case m.result != nil && opt == m.result.CorrectAnswer:
			style = theme.OptionCorrect
		case m.result != nil && i == m.cursor:
			style = theme.OptionWrong
		case i == m.cursor:
			style = theme.OptionSelected
		}
		sb.WriteString(style.Render(fmt.Sprintf("%c  %s", 'A'+i, opt)) + "\n")
	}

	if m.result != nil {
		sb.WriteString("\n")
		if m.result.Correct {
			sb.WriteString(theme.Good.Render(m.result.Feedback))
		} else {
			sb.WriteString(theme.Bad.Render(m.result.Feedback))
		}
		if l := q.Letter; l != nil {
			sb.WriteString("\n\n" + theme.Title.Render(fmt.Sprintf("%s (%s)", l.Name, l.Glyph)) + "\n")
			sb.WriteString(theme.Muted.Render("Romanization: ") + l.Romanization + "\n")
			sb.WriteString(theme.Muted.Render("Pronunciation: ") + l.EnglishComparison + "\n")
		}
		next := "Next Question"
		if r.Last {
			next = "Finish Exercise"
		}
		sb.WriteString("\n" + theme.Muted.Render("enter: "+next+"  p: pronounce  esc: quit run"))
	} else {
		sb.WriteString("\n" + theme.Muted.Render("a-d or ↑/↓: choose  enter: Check Answer  p: pronounce  esc: quit run"))
	}
	return theme.Pane.Width(m.width - 2).Render(sb.String())
}
