package letters

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	alphabetdto "hangul/internal/modules/alphabet/dto"
	progressdto "hangul/internal/modules/progress/dto"
	"hangul/internal/ui/components"
	"hangul/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type LettersPort interface {
	ListLetters(ctx context.Context, category string, level int) ([]alphabetdto.LetterOutput, error)
	LetterStatus(ctx context.Context, letterID int) (progressdto.LetterStatusOutput, error)
}

// ─── filters ─────────────────────────────────────────────────────────────────

const (
	FilterAvailable  = "available"
	FilterAll        = "all"
	FilterLocked     = "locked"
	FilterConsonants = "consonants"
	FilterVowels     = "vowels"
)

var filters = []string{FilterAvailable, FilterAll, FilterLocked, FilterConsonants, FilterVowels}

// ValidFilter reports whether name is one of the letter filters.
func ValidFilter(name string) bool {
	for _, f := range filters {
		if f == name {
			return true
		}
	}
	return false
}

// ─── messages ────────────────────────────────────────────────────────────────

type LettersLoadedMsg struct {
	Rows []Row
	Err  error
}

// Row is a letter together with the learner's status for it.
type Row struct {
	Letter alphabetdto.LetterOutput
	Status progressdto.LetterStatusOutput
}

// ─── list item ───────────────────────────────────────────────────────────────

type letterItem struct{ row Row }

func (i letterItem) Title() string {
	l := i.row.Letter
	if !i.row.Status.Unlocked {
		return theme.Locked.Render(l.Glyph + "  " + l.Name + "  🔒")
	}
	mark := ""
	if i.row.Status.Completed {
		mark = "  ✓"
	}
	return l.Glyph + "  " + l.Name + mark
}

func (i letterItem) Description() string {
	l := i.row.Letter
	desc := fmt.Sprintf("%s · %s · level %d", l.Romanization, l.Category, l.Difficulty)
	if i.row.Status.BestScore > 0 {
		desc += fmt.Sprintf(" · best %d%%", i.row.Status.BestScore)
	}
	return desc
}

func (i letterItem) FilterValue() string {
	return i.row.Letter.Name + " " + i.row.Letter.Glyph + " " + i.row.Letter.Romanization
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    LettersPort
	filter  string
	rows    []Row
	list    list.Model
	detail  viewport.Model
	spinner spinner.Model
	loading bool
	err     error
	width   int
	height  int
}

func New(port LettersPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	m := Model{port: port, filter: FilterAvailable, list: l, detail: vp, spinner: sp, loading: true}
	m.list.Title = m.title()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Refresh(), m.spinner.Tick)
}

// Refresh reloads letters and their statuses.
func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		letters, err := m.port.ListLetters(ctx, "", 0)
		if err != nil {
			return LettersLoadedMsg{Err: err}
		}
		rows := make([]Row, 0, len(letters))
		for _, l := range letters {
			st, err := m.port.LetterStatus(ctx, l.ID)
			if err != nil {
				return LettersLoadedMsg{Err: err}
			}
			rows = append(rows, Row{Letter: l, Status: st})
		}
		return LettersLoadedMsg{Rows: rows}
	}
}

// SetFilter switches the visible subset of letters.
func (m *Model) SetFilter(name string) tea.Cmd {
	if !ValidFilter(name) {
		return nil
	}
	m.filter = name
	m.list.Title = m.title()
	return m.applyFilter()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LettersLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err != nil {
			m.list.Title = "Letters: " + msg.Err.Error()
			return m, nil
		}
		m.rows = msg.Rows
		cmds = append(cmds, m.applyFilter())

	case components.ProgressChangedMsg:
		cmds = append(cmds, m.Refresh())

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch msg.String() {
		case "f":
			next := filters[0]
			for i, f := range filters {
				if f == m.filter {
					next = filters[(i+1)%len(filters)]
				}
			}
			cmds = append(cmds, m.SetFilter(next))
			return m, tea.Batch(cmds...)
		case "p", "g":
			if row, ok := m.selected(); ok {
				if !row.Status.Unlocked {
					return m, components.Status("complete earlier levels to unlock " + row.Letter.Glyph)
				}
				target := "letter"
				if msg.String() == "g" {
					target = "guide"
				}
				return m, components.Speak(target, fmt.Sprint(row.Letter.ID))
			}
		}
	}

	if !m.loading {
		prev := m.list.Index()
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prev {
			m.renderDetail()
		}
		var vCmd tea.Cmd
		m.detail, vCmd = m.detail.Update(msg)
		cmds = append(cmds, vCmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.spinner.View()+" Loading letters…")
	}
	listW := m.width * 4 / 10
	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(m.width - listW - 2).
		Height(m.height - 2).
		Render(m.detail.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Filtering reports whether the list's search filter is active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// SelectedLetterID is the id of the highlighted letter, if any.
func (m Model) SelectedLetterID() (int, bool) {
	row, ok := m.selected()
	return row.Letter.ID, ok
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) title() string {
	return "Letters · " + m.filter
}

func (m Model) selected() (Row, bool) {
	if item, ok := m.list.SelectedItem().(letterItem); ok {
		return item.row, true
	}
	return Row{}, false
}

func (m *Model) applyFilter() tea.Cmd {
	items := make([]list.Item, 0, len(m.rows))
	for _, r := range m.rows {
		if keep(m.filter, r) {
			items = append(items, letterItem{row: r})
		}
	}
	cmd := m.list.SetItems(items)
	m.renderDetail()
	return cmd
}

func keep(filter string, r Row) bool {
	switch filter {
	case FilterAvailable:
		return r.Status.Unlocked
	case FilterLocked:
		return !r.Status.Unlocked
	case FilterConsonants:
		return r.Letter.Category == "consonant"
	case FilterVowels:
		return r.Letter.Category == "vowel"
	}
	return true
}

func (m *Model) resize() {
	listW := m.width * 4 / 10
	m.list.SetSize(listW, m.height)
	m.detail.Width = m.width - listW - 4
	m.detail.Height = m.height - 4
	m.renderDetail()
}

func (m *Model) renderDetail() {
	m.detail.SetContent(renderLetter(m.selected()))
}

func renderLetter(r Row, ok bool) string {
	if !ok {
		return theme.Muted.Render("No letters match this filter")
	}
	l := r.Letter
	var sb strings.Builder
	if !r.Status.Unlocked {
		sb.WriteString(theme.Locked.Render(l.Glyph+"  "+l.Name) + "\n\n")
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("🔒 Locked. Complete the level %d letters to unlock it.", l.Difficulty-1)))
		return sb.String()
	}
	sb.WriteString(theme.Glyph.Render(l.Glyph) + "  " + theme.Title.Render(l.Name) + "  " + theme.Level(l.Difficulty).Render(fmt.Sprintf("Level %d", l.Difficulty)) + "\n\n")
	sb.WriteString(theme.Muted.Render("romanization:  ") + l.Romanization + "\n")
	sb.WriteString(theme.Muted.Render("sound:         ") + l.EnglishSound + "\n")
	sb.WriteString(theme.Muted.Render("pronunciation: ") + l.EnglishComparison + "\n")
	sb.WriteString(theme.Muted.Render("category:      ") + l.Category + "\n")
	if l.Position != "" {
		sb.WriteString(theme.Muted.Render("position:      ") + l.Position + "\n")
	}
	if l.VisualAid != "" {
		sb.WriteString(theme.Muted.Render("visual aid:    ") + l.VisualAid + "\n")
	}
	if len(l.ExampleWords) > 0 {
		sb.WriteString(theme.Muted.Render("sounds like:   ") + strings.Join(l.ExampleWords, ", ") + "\n")
	}
	if len(l.CommonWords) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Common words") + "\n")
		for _, cw := range l.CommonWords {
			sb.WriteString(fmt.Sprintf("  %s  %s\n", cw.Word, theme.Muted.Render(cw.Gloss)))
		}
	}
	sb.WriteString("\n")
	switch {
	case r.Status.Completed:
		sb.WriteString(theme.Good.Render(fmt.Sprintf("✓ completed, best %d%%", r.Status.BestScore)))
	case r.Status.BestScore > 0:
		sb.WriteString(theme.Warn.Render(fmt.Sprintf("best %d%%, score 80 or more to complete", r.Status.BestScore)))
	default:
		sb.WriteString(theme.Warn.Render("needs practice"))
	}
	sb.WriteString("\n\n" + theme.Muted.Render("p: pronounce  g: pronunciation guide  f: filter  /: search"))
	return sb.String()
}
