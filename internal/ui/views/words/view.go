package words

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	alphabetdto "hangul/internal/modules/alphabet/dto"
	wordbuilderdto "hangul/internal/modules/wordbuilder/dto"
	"hangul/internal/ui/components"
	"hangul/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type WordsPort interface {
	ListWords(ctx context.Context) ([]alphabetdto.WordOutput, error)
	CompletedWords(ctx context.Context) ([]int, error)
	Start(ctx context.Context, wordID int) (wordbuilderdto.SessionOutput, error)
	Select(ctx context.Context, glyph string) (wordbuilderdto.SessionOutput, error)
	ClearSelection(ctx context.Context) (wordbuilderdto.SessionOutput, error)
	Build(ctx context.Context) (wordbuilderdto.BuildOutput, error)
	Place(ctx context.Context, text string) (wordbuilderdto.SessionOutput, error)
	Remove(ctx context.Context, slot int) (wordbuilderdto.SessionOutput, error)
	Advance(ctx context.Context) (wordbuilderdto.SessionOutput, error)
	Reset(ctx context.Context) (wordbuilderdto.SessionOutput, error)
	Complete(ctx context.Context) (wordbuilderdto.CompletionOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type WordsLoadedMsg struct {
	Words     []alphabetdto.WordOutput
	Completed []int
	Err       error
}

// SessionMsg carries the builder state after an action. Err is reported in
// the status bar and the previous state stays on screen.
type SessionMsg struct {
	Session wordbuilderdto.SessionOutput
	Note    string
	Err     error
}

type CompletedMsg struct {
	Out wordbuilderdto.CompletionOutput
	Err error
}

// ─── list item ───────────────────────────────────────────────────────────────

type wordItem struct {
	word alphabetdto.WordOutput
	done bool
}

func (i wordItem) Title() string {
	if i.done {
		return i.word.Korean + "  ✓"
	}
	return i.word.Korean
}
func (i wordItem) Description() string { return i.word.Romanization + " · " + i.word.English }
func (i wordItem) FilterValue() string { return i.word.Romanization + " " + i.word.English }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     WordsPort
	list     list.Model
	session  wordbuilderdto.SessionOutput
	active   bool
	cursor   int
	showHint bool
	done     bool
	width    int
	height   int
}

func New(port WordsPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Word Builder"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	return Model{port: port, list: l}
}

func (m Model) Init() tea.Cmd {
	return m.Refresh()
}

// Refresh reloads the word list and completion marks.
func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		words, err := m.port.ListWords(ctx)
		if err != nil {
			return WordsLoadedMsg{Err: err}
		}
		done, err := m.port.CompletedWords(ctx)
		return WordsLoadedMsg{Words: words, Completed: done, Err: err}
	}
}

// Active reports whether a word is being built.
func (m Model) Active() bool { return m.active }

// StartWord opens the builder on a word.
func (m Model) StartWord(id int) tea.Cmd {
	return m.sessionCmd("", func(ctx context.Context) (wordbuilderdto.SessionOutput, error) {
		return m.port.Start(ctx, id)
	})
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case WordsLoadedMsg:
		if msg.Err != nil {
			m.list.Title = "Word Builder: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Words))
		for i, w := range msg.Words {
			items[i] = wordItem{word: w, done: slices.Contains(msg.Completed, w.ID)}
		}
		return m, m.list.SetItems(items)

	case components.ProgressChangedMsg:
		return m, m.Refresh()

	case SessionMsg:
		if msg.Err != nil {
			return m, components.Status(msg.Err.Error())
		}
		if !m.active || msg.Session.Stage != m.session.Stage {
			m.cursor = 0
		}
		m.session, m.active, m.done = msg.Session, true, msg.Session.Completed
		m.cursor = min(m.cursor, max(len(m.pool())-1, 0))
		if msg.Note != "" {
			return m, components.Status(msg.Note)
		}
		return m, nil

	case CompletedMsg:
		if msg.Err != nil {
			return m, components.Status(msg.Err.Error())
		}
		m.session, m.done = msg.Out.Session, true
		note := fmt.Sprintf("Excellent! You built %s (%s), which means %q.", msg.Out.Session.Korean, msg.Out.Session.Romanization, msg.Out.Session.English)
		for _, g := range msg.Out.Granted {
			note += "  🏆 " + g
		}
		return m, tea.Batch(components.Status(note), components.ProgressChanged)

	case tea.KeyMsg:
		if !m.active {
			if msg.String() == "enter" {
				if item, ok := m.list.SelectedItem().(wordItem); ok {
					return m, m.StartWord(item.word.ID)
				}
			}
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
		return m.handleSessionKey(msg)
	}
	return m, nil
}

func (m Model) handleSessionKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	pool := m.pool()
	switch msg.String() {
	case "esc":
		m.active, m.showHint = false, false
		return m, nil
	case "left":
		if len(pool) > 0 {
			m.cursor = (m.cursor + len(pool) - 1) % len(pool)
		}
	case "right":
		if len(pool) > 0 {
			m.cursor = (m.cursor + 1) % len(pool)
		}
	case "h":
		m.showHint = !m.showHint
	case "s":
		return m, components.Speak("word", fmt.Sprint(m.session.WordID))
	case "enter", " ":
		if m.cursor >= len(pool) {
			return m, nil
		}
		choice := pool[m.cursor]
		if m.session.Stage == 3 {
			return m, m.sessionCmd("", func(ctx context.Context) (wordbuilderdto.SessionOutput, error) {
				return m.port.Place(ctx, choice)
			})
		}
		return m, m.sessionCmd("", func(ctx context.Context) (wordbuilderdto.SessionOutput, error) {
			return m.port.Select(ctx, choice)
		})
	case "b":
		return m, m.buildCmd()
	case "backspace":
		if m.session.Stage == 3 {
			slot := len(m.session.Assembled)
			return m, m.sessionCmd("", func(ctx context.Context) (wordbuilderdto.SessionOutput, error) {
				return m.port.Remove(ctx, slot)
			})
		}
		return m, m.sessionCmd("", m.port.ClearSelection)
	case "n":
		return m, m.sessionCmd("", m.port.Advance)
	case "r":
		return m, m.sessionCmd("word reset", m.port.Reset)
	case "c":
		port := m.port
		return m, func() tea.Msg {
			out, err := port.Complete(context.Background())
			return CompletedMsg{Out: out, Err: err}
		}
	}
	return m, nil
}

// pool is what the cursor moves over: the word's letters in the first two
// stages and the built syllables in the last.
func (m Model) pool() []string {
	s := m.session
	var out []string
	if s.Stage == 3 {
		for _, syl := range s.Built {
			out = append(out, syl.Text)
		}
		return out
	}
	for _, j := range s.RequiredConsonants {
		out = append(out, j.Glyph)
	}
	for _, j := range s.RequiredVowels {
		out = append(out, j.Glyph)
	}
	return out
}

func (m Model) sessionCmd(note string, fn func(ctx context.Context) (wordbuilderdto.SessionOutput, error)) tea.Cmd {
	return func() tea.Msg {
		s, err := fn(context.Background())
		return SessionMsg{Session: s, Note: note, Err: err}
	}
}

func (m Model) buildCmd() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		out, err := port.Build(context.Background())
		if err != nil {
			return SessionMsg{Err: err}
		}
		return SessionMsg{Session: out.Session, Note: "built " + out.Syllable.Text}
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if !m.active {
		return lipgloss.NewStyle().Width(m.width).Height(m.height).Render(m.list.View())
	}
	s := m.session
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Build: "+s.English) + theme.Muted.Render("  ("+s.Romanization+")") + "\n")
	sb.WriteString(renderStages(s.Stage) + "\n\n")

	pool := m.pool()
	selected := map[string]bool{}
	for _, j := range append(append([]wordbuilderdto.JamoOutput{}, s.SelectedConsonants...), s.SelectedVowels...) {
		selected[j.Glyph] = true
	}
	cells := make([]string, len(pool))
	for i, g := range pool {
		style := theme.Option
		switch {
		case i == m.cursor:
			style = theme.OptionSelected
		case s.Stage != 3 && selected[g]:
			style = theme.OptionCorrect
		}
		cells[i] = style.Render(g)
	}
	label := "Letters in this word"
	if s.Stage == 3 {
		label = "Your syllables"
	}
	sb.WriteString(theme.Muted.Render(label) + "\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n\n")

	switch s.Stage {
	case 1:
		sb.WriteString(theme.Muted.Render("Collected: ") + jamo(s.SelectedConsonants) + " " + jamo(s.SelectedVowels) + "\n")
	case 2:
		sb.WriteString(theme.Muted.Render("Selection: ") + jamo(s.SelectedConsonants) + " " + jamo(s.SelectedVowels) + "\n")
		sb.WriteString(theme.Muted.Render("Built:     ") + syllables(s.Built) + "\n")
	case 3:
		slots := make([]string, s.Slots)
		for i := range slots {
			if i < len(s.Assembled) {
				slots[i] = theme.SlotFilled.Render(s.Assembled[i].Text)
			} else {
				slots[i] = theme.Slot.Render(" ")
			}
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, slots...) + "\n")
	}

	if s.StageComplete && !m.done {
		sb.WriteString("\n" + theme.Good.Render("Stage complete!"))
	}
	if m.done {
		sb.WriteString("\n" + theme.Good.Render(fmt.Sprintf("🎉 %s (%s) means %q", s.Korean, s.Romanization, s.English)))
	}
	if m.showHint {
		sb.WriteString("\n" + theme.Warn.Render("💡 "+s.Hint))
	}
	sb.WriteString("\n\n" + theme.Muted.Render(keyHelp(s.Stage)))
	return theme.Pane.Width(m.width - 2).Render(sb.String())
}

func renderStages(current int) string {
	names := []string{"1 Jamo", "2 Syllables", "3 Word"}
	parts := make([]string, len(names))
	for i, n := range names {
		switch {
		case i+1 == current:
			parts[i] = theme.Hot.Render(n)
		case i+1 < current:
			parts[i] = theme.Good.Render(n)
		default:
			parts[i] = theme.Muted.Render(n)
		}
	}
	return strings.Join(parts, theme.Muted.Render(" › "))
}

func keyHelp(stage int) string {
	switch stage {
	case 1:
		return "←/→ move  enter: pick  backspace: clear  n: next stage  h: hint  s: say  esc: back"
	case 2:
		return "←/→ move  enter: pick  b: build  backspace: clear  n: next stage  h: hint  esc: back"
	default:
		return "←/→ move  enter: place  backspace: remove last  c: check  r: reset  h: hint  s: say  esc: back"
	}
}

func jamo(items []wordbuilderdto.JamoOutput) string {
	glyphs := make([]string, 0, len(items))
	for _, j := range items {
		glyphs = append(glyphs, j.Glyph)
	}
	if len(glyphs) == 0 {
		return theme.Muted.Render("-")
	}
	return strings.Join(glyphs, " ")
}

func syllables(items []wordbuilderdto.SyllableOutput) string {
	texts := make([]string, 0, len(items))
	for _, s := range items {
		texts = append(texts, s.Text)
	}
	if len(texts) == 0 {
		return theme.Muted.Render("-")
	}
	return strings.Join(texts, " ")
}
