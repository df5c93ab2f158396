package app

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	alphabetdto "hangul/internal/modules/alphabet/dto"
	progressdto "hangul/internal/modules/progress/dto"
	quizdto "hangul/internal/modules/quiz/dto"
	speechdto "hangul/internal/modules/speech/dto"
	wordbuilderdto "hangul/internal/modules/wordbuilder/dto"
	"hangul/internal/ui/components"
	"hangul/internal/ui/theme"
	lettersview "hangul/internal/ui/views/letters"
	practiceview "hangul/internal/ui/views/practice"
	progressview "hangul/internal/ui/views/progress"
	wordsview "hangul/internal/ui/views/words"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type alphabetPort interface {
	ListLetters(ctx context.Context, category string, level int) ([]alphabetdto.LetterOutput, error)
	ListWords(ctx context.Context) ([]alphabetdto.WordOutput, error)
}

type progressPort interface {
	GetProgress(ctx context.Context) (progressdto.ProgressOutput, error)
	LetterStatus(ctx context.Context, letterID int) (progressdto.LetterStatusOutput, error)
	Metrics(ctx context.Context) (progressdto.MetricsOutput, error)
	Achievements(ctx context.Context) ([]progressdto.AchievementOutput, error)
	Recommendations(ctx context.Context) ([]progressdto.RecommendationOutput, error)
	IncrementStreak(ctx context.Context) (progressdto.ChangeOutput, error)
	ResetAll(ctx context.Context) (progressdto.ProgressOutput, error)
	ExportReport(ctx context.Context) (progressdto.ReportOutput, error)
}

type quizPort interface {
	Kinds(ctx context.Context) ([]quizdto.KindOutput, error)
	StartRun(ctx context.Context, kind string) (quizdto.RunOutput, error)
	Answer(ctx context.Context, options []string, raw string) (quizdto.AnswerOutput, error)
	Next(ctx context.Context) (quizdto.RunOutput, error)
	Abandon(ctx context.Context) error
}

type wordsPort interface {
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

type speechPort interface {
	SpeakAsync(ctx context.Context, target, ref string, done func(error)) (speechdto.SpeakOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabLetters tabID = iota
	tabPractice
	tabWords
	tabProgress
	tabCount
)

var tabLabels = [tabCount]string{
	"Letters", "Practice", "Words", "Progress",
}

// ─── async messages ───────────────────────────────────────────────────────────

type speakingMsg struct {
	seq  int
	text string
	done <-chan error
}

type spokenMsg struct {
	seq int
	err error
}

type streakMsg struct {
	out progressdto.ChangeOutput
	err error
}

type resetMsg struct{ err error }

type exportedMsg struct {
	out progressdto.ReportOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Enter   key.Binding
	Speak   key.Binding
	Filter  key.Binding
	Back    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start / check")),
		Speak:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pronounce")),
		Filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "letter filter")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave exercise")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Enter, k.Back},
		{k.Speak, k.Filter},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, speech playback,
// the global help overlay, and the command palette. Business logic sits
// behind the ports and rendering is left to the sub-views.
type Model struct {
	profile string

	// ports used at this orchestration level only
	progress progressPort
	speech   speechPort

	// sub-views (one per tab)
	lettersView  lettersview.Model
	practiceView practiceview.Model
	wordsView    wordsview.Model
	progressView progressview.Model

	// global UI state
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	speakSeq  int
	speaking  string
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	profile string,
	alphabet alphabetPort,
	progress progressPort,
	quiz quizPort,
	words wordsPort,
	speech speechPort,
) Model {
	return Model{
		profile:      profile,
		progress:     progress,
		speech:       speech,
		lettersView:  lettersview.New(lettersPortBridge{a: alphabet, p: progress}),
		practiceView: practiceview.New(quiz),
		wordsView:    wordsview.New(wordsPortBridge{a: alphabet, p: progress, w: words}),
		progressView: progressview.New(progressPortBridge{a: alphabet, p: progress}),
		activeTab:    tabLetters,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.lettersView.Init(),
		m.practiceView.Init(),
		m.wordsView.Init(),
		m.progressView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, cmd
		}
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case components.StatusMsg:
		m.status = msg.Text
		return m, nil

	case components.SpeakMsg:
		m.speakSeq++
		return m, m.speakCmd(m.speakSeq, msg.Target, msg.Ref)

	case speakingMsg:
		if msg.seq != m.speakSeq {
			return m, nil
		}
		m.speaking = msg.text
		return m, waitSpoken(msg.seq, msg.done)

	case spokenMsg:
		// a newer utterance cancelled this one
		if msg.seq != m.speakSeq {
			return m, nil
		}
		m.speaking = ""
		if msg.err != nil {
			m.status = "speech: " + msg.err.Error()
		}
		return m, nil

	case components.ProgressChangedMsg:
		return m, m.broadcast(msg)

	case streakMsg:
		if msg.err != nil {
			m.status = "streak: " + msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("🔥 %d day streak", msg.out.Progress.Streak)
		for _, a := range msg.out.Granted {
			m.status += "  🏆 " + a.Name
		}
		return m, components.ProgressChanged

	case resetMsg:
		if msg.err != nil {
			m.status = "reset: " + msg.err.Error()
			return m, nil
		}
		m.status = "progress reset to the starter letters"
		return m, components.ProgressChanged

	case exportedMsg:
		if msg.err != nil {
			m.status = "export: " + msg.err.Error()
		} else {
			m.status = "report written to " + msg.out.Path
		}
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Exercises and the letter search own the keyboard.
		if m.subViewBusy() {
			break
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		}
	}

	cmds = append(cmds, m.route(msg))
	return m, tea.Batch(cmds...)
}

// route delivers a message to the view that owns it. Loaded messages go to
// their view whichever tab is showing; everything else goes to the active tab.
func (m *Model) route(msg tea.Msg) tea.Cmd {
	target := m.activeTab
	switch msg.(type) {
	case lettersview.LettersLoadedMsg, spinner.TickMsg:
		target = tabLetters
	case practiceview.KindsLoadedMsg, practiceview.RunStartedMsg, practiceview.AnsweredMsg, practiceview.AdvancedMsg:
		target = tabPractice
	case wordsview.WordsLoadedMsg, wordsview.SessionMsg, wordsview.CompletedMsg:
		target = tabWords
	case progressview.LoadedMsg:
		target = tabProgress
	}

	var cmd tea.Cmd
	switch target {
	case tabLetters:
		m.lettersView, cmd = m.lettersView.Update(msg)
	case tabPractice:
		m.practiceView, cmd = m.practiceView.Update(msg)
	case tabWords:
		m.wordsView, cmd = m.wordsView.Update(msg)
	case tabProgress:
		m.progressView, cmd = m.progressView.Update(msg)
	}
	return cmd
}

func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds [tabCount]tea.Cmd
	m.lettersView, cmds[tabLetters] = m.lettersView.Update(msg)
	m.practiceView, cmds[tabPractice] = m.practiceView.Update(msg)
	m.wordsView, cmds[tabWords] = m.wordsView.Update(msg)
	m.progressView, cmds[tabProgress] = m.progressView.Update(msg)
	return tea.Batch(cmds[:]...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabLetters:
		return m.lettersView.View()
	case tabPractice:
		return m.practiceView.View()
	case tabWords:
		return m.wordsView.View()
	case tabProgress:
		return m.progressView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := lipgloss.NewStyle().Foreground(theme.Peach).Bold(true).Render("한글") + "  " + strings.Join(parts, sep)
	if m.profile != "" && m.profile != "default" {
		bar += theme.Muted.Render("   profile: " + m.profile)
	}
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.speaking != "" {
		left = theme.Hot.Render("🔊 "+m.speaking) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "quiz:start":
		if len(parts) < 2 {
			m.status = "usage: quiz:start <kind>"
			return m, nil
		}
		m.activeTab = tabPractice
		return m, m.practiceView.StartRun(parts[1])

	case "quiz:abandon":
		cmd := m.practiceView.Abandon()
		if cmd == nil {
			m.status = "no practice run in progress"
		}
		return m, cmd

	case "word:start":
		if len(parts) < 2 {
			m.status = "usage: word:start <id>"
			return m, nil
		}
		id, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "invalid word id"
			return m, nil
		}
		m.activeTab = tabWords
		return m, m.wordsView.StartWord(id)

	case "speak":
		if len(parts) < 3 {
			m.status = "usage: speak <letter|guide|syllable|word> <ref>"
			return m, nil
		}
		return m, components.Speak(parts[1], strings.Join(parts[2:], " "))

	case "letters:filter":
		if len(parts) < 2 || !lettersview.ValidFilter(parts[1]) {
			m.status = "usage: letters:filter <available|all|locked|consonants|vowels>"
			return m, nil
		}
		m.activeTab = tabLetters
		return m, m.lettersView.SetFilter(parts[1])

	case "progress:streak":
		return m, m.streakCmd()

	case "progress:export":
		return m, m.exportCmd()

	case "progress:reset":
		if len(parts) < 2 || parts[1] != "confirm" {
			m.status = "this erases all progress, run progress:reset confirm"
			return m, nil
		}
		if cmd := m.practiceView.Abandon(); cmd != nil {
			return m, tea.Batch(cmd, m.resetCmd())
		}
		return m, m.resetCmd()
	}

	m.status = "unknown command: " + parts[0]
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewBusy reports whether the active tab is running an exercise or has
// its search filter open, in which case global key bindings must yield.
func (m Model) subViewBusy() bool {
	switch m.activeTab {
	case tabLetters:
		return m.lettersView.Filtering()
	case tabPractice:
		return m.practiceView.Running()
	case tabWords:
		return m.wordsView.Active()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.lettersView, _ = m.lettersView.Update(sz)
	m.practiceView, _ = m.practiceView.Update(sz)
	m.wordsView, _ = m.wordsView.Update(sz)
	m.progressView, _ = m.progressView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) speakCmd(seq int, target, ref string) tea.Cmd {
	speech := m.speech
	return func() tea.Msg {
		done := make(chan error, 1)
		out, err := speech.SpeakAsync(context.Background(), target, ref, func(err error) { done <- err })
		if err != nil {
			return spokenMsg{seq: seq, err: err}
		}
		return speakingMsg{seq: seq, text: out.Text, done: done}
	}
}

func waitSpoken(seq int, done <-chan error) tea.Cmd {
	return func() tea.Msg {
		return spokenMsg{seq: seq, err: <-done}
	}
}

func (m Model) streakCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.progress.IncrementStreak(context.Background())
		return streakMsg{out: out, err: err}
	}
}

func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := m.progress.ResetAll(context.Background())
		return resetMsg{err: err}
	}
}

func (m Model) exportCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.progress.ExportReport(context.Background())
		return exportedMsg{out: out, err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows the broad ports to the minimal interface needed by a
// specific sub-view, keeping view packages free of knowledge about the wider
// application.

type lettersPortBridge struct {
	a alphabetPort
	p progressPort
}

func (b lettersPortBridge) ListLetters(ctx context.Context, category string, level int) ([]alphabetdto.LetterOutput, error) {
	return b.a.ListLetters(ctx, category, level)
}
func (b lettersPortBridge) LetterStatus(ctx context.Context, letterID int) (progressdto.LetterStatusOutput, error) {
	return b.p.LetterStatus(ctx, letterID)
}

type wordsPortBridge struct {
	a alphabetPort
	p progressPort
	w wordsPort
}

func (b wordsPortBridge) ListWords(ctx context.Context) ([]alphabetdto.WordOutput, error) {
	return b.a.ListWords(ctx)
}
func (b wordsPortBridge) CompletedWords(ctx context.Context) ([]int, error) {
	p, err := b.p.GetProgress(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(p.CompletedWords), nil
}
func (b wordsPortBridge) Start(ctx context.Context, wordID int) (wordbuilderdto.SessionOutput, error) {
	return b.w.Start(ctx, wordID)
}
func (b wordsPortBridge) Select(ctx context.Context, glyph string) (wordbuilderdto.SessionOutput, error) {
	return b.w.Select(ctx, glyph)
}
func (b wordsPortBridge) ClearSelection(ctx context.Context) (wordbuilderdto.SessionOutput, error) {
	return b.w.ClearSelection(ctx)
}
func (b wordsPortBridge) Build(ctx context.Context) (wordbuilderdto.BuildOutput, error) {
	return b.w.Build(ctx)
}
func (b wordsPortBridge) Place(ctx context.Context, text string) (wordbuilderdto.SessionOutput, error) {
	return b.w.Place(ctx, text)
}
func (b wordsPortBridge) Remove(ctx context.Context, slot int) (wordbuilderdto.SessionOutput, error) {
	return b.w.Remove(ctx, slot)
}
func (b wordsPortBridge) Advance(ctx context.Context) (wordbuilderdto.SessionOutput, error) {
	return b.w.Advance(ctx)
}
func (b wordsPortBridge) Reset(ctx context.Context) (wordbuilderdto.SessionOutput, error) {
	return b.w.Reset(ctx)
}
func (b wordsPortBridge) Complete(ctx context.Context) (wordbuilderdto.CompletionOutput, error) {
	return b.w.Complete(ctx)
}

type progressPortBridge struct {
	a alphabetPort
	p progressPort
}

func (b progressPortBridge) GetProgress(ctx context.Context) (progressdto.ProgressOutput, error) {
	return b.p.GetProgress(ctx)
}
func (b progressPortBridge) Metrics(ctx context.Context) (progressdto.MetricsOutput, error) {
	return b.p.Metrics(ctx)
}
func (b progressPortBridge) Achievements(ctx context.Context) ([]progressdto.AchievementOutput, error) {
	return b.p.Achievements(ctx)
}
func (b progressPortBridge) Recommendations(ctx context.Context) ([]progressdto.RecommendationOutput, error) {
	return b.p.Recommendations(ctx)
}
func (b progressPortBridge) ListLetters(ctx context.Context, category string, level int) ([]alphabetdto.LetterOutput, error) {
	return b.a.ListLetters(ctx, category, level)
}
