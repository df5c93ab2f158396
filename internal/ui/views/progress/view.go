package progress

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	alphabetdto "hangul/internal/modules/alphabet/dto"
	progressdto "hangul/internal/modules/progress/dto"
	"hangul/internal/ui/components"
	"hangul/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ProgressPort interface {
	GetProgress(ctx context.Context) (progressdto.ProgressOutput, error)
	Metrics(ctx context.Context) (progressdto.MetricsOutput, error)
	Achievements(ctx context.Context) ([]progressdto.AchievementOutput, error)
	Recommendations(ctx context.Context) ([]progressdto.RecommendationOutput, error)
	ListLetters(ctx context.Context, category string, level int) ([]alphabetdto.LetterOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// Overview is everything the progress tab renders.
type Overview struct {
	Progress        progressdto.ProgressOutput
	Metrics         progressdto.MetricsOutput
	Achievements    []progressdto.AchievementOutput
	Recommendations []progressdto.RecommendationOutput
	LevelLetters    []alphabetdto.LetterOutput
}

type LoadedMsg struct {
	Overview Overview
	Err      error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     ProgressPort
	overview Overview
	body     viewport.Model
	loaded   bool
	width    int
	height   int
}

func New(port ProgressPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)
	return Model{port: port, body: vp}
}

func (m Model) Init() tea.Cmd {
	return m.Refresh()
}

func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		ov, err := load(context.Background(), m.port)
		return LoadedMsg{Overview: ov, Err: err}
	}
}

func load(ctx context.Context, port ProgressPort) (Overview, error) {
	var ov Overview
	var err error
	if ov.Progress, err = port.GetProgress(ctx); err != nil {
		return ov, err
	}
	if ov.Metrics, err = port.Metrics(ctx); err != nil {
		return ov, err
	}
	if ov.Achievements, err = port.Achievements(ctx); err != nil {
		return ov, err
	}
	if ov.Recommendations, err = port.Recommendations(ctx); err != nil {
		return ov, err
	}
	level, err := port.ListLetters(ctx, "", ov.Metrics.CurrentLevel)
	if err != nil {
		return ov, err
	}
	for _, l := range level {
		if slices.Contains(ov.Progress.UnlockedLetters, l.ID) {
			ov.LevelLetters = append(ov.LevelLetters, l)
		}
	}
	return ov, nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = msg.Width
		m.body.Height = msg.Height
		m.body.SetContent(m.render())
		return m, nil

	case LoadedMsg:
		if msg.Err != nil {
			return m, components.Status("progress: " + msg.Err.Error())
		}
		m.overview, m.loaded = msg.Overview, true
		m.body.SetContent(m.render())
		return m, nil

	case components.ProgressChangedMsg:
		return m, m.Refresh()

	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.Refresh()
		}
	}
	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.loaded {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, theme.Muted.Render("Loading progress…"))
	}
	return m.body.View()
}

// ─── rendering ───────────────────────────────────────────────────────────────

func (m Model) render() string {
	ov := m.overview
	p, mt := ov.Progress, ov.Metrics
	var sb strings.Builder

	sb.WriteString(theme.Title.Render("Your Progress") + "\n")
	if p.Degraded {
		sb.WriteString(theme.Bad.Render("Progress storage is unavailable. Changes last for this session only.") + "\n")
	}
	sb.WriteString("\n")

	cards := []string{
		card("📚 Letters Mastered", fmt.Sprintf("%d/%d", mt.CompletedLetters, mt.TotalLetters)),
		card("⭐ Total Points", fmt.Sprint(mt.TotalScore)),
		card("🔥 Day Streak", fmt.Sprint(mt.Streak)),
		card("📊 Average Score", fmt.Sprintf("%d%%", mt.AverageScore)),
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n\n")

	sb.WriteString(theme.Muted.Render("Current level:    ") + theme.Level(mt.CurrentLevel).Render(fmt.Sprintf("Level %d", mt.CurrentLevel)) + "\n")
	sb.WriteString(theme.Muted.Render("Unlocked letters: ") + fmt.Sprintf("%d/%d  ", mt.UnlockedLetters, mt.TotalLetters) + bar(mt.UnlockProgress, 20) + "\n")
	sb.WriteString(theme.Muted.Render("Mastery:          ") + fmt.Sprintf("%d%%  ", mt.CompletionProgress) + bar(mt.CompletionProgress, 20) + "\n")
	sb.WriteString(theme.Muted.Render("Words built:      ") + fmt.Sprint(mt.CompletedWords) + "\n")
	sb.WriteString(theme.Muted.Render("Study time:       ") + fmt.Sprintf("%dmin", p.Stats.StudyTimeMinutes) + "\n\n")

	s := p.Stats
	accuracy := 0
	if s.TotalQuestions > 0 {
		accuracy = s.CorrectAnswers * 100 / s.TotalQuestions
	}
	sb.WriteString(theme.Title.Render("Exercise Statistics") + "\n")
	sb.WriteString(fmt.Sprintf("Questions answered %d · correct %d · accuracy %d%% · best streak %d days\n\n", s.TotalQuestions, s.CorrectAnswers, accuracy, mt.BestStreak))

	sb.WriteString(theme.Title.Render(fmt.Sprintf("Level %d Letters", mt.CurrentLevel)) + "\n")
	for _, l := range ov.LevelLetters {
		if slices.Contains(p.CompletedLetters, l.ID) {
			sb.WriteString(fmt.Sprintf("  %s %-10s %s\n", l.Glyph, l.Name, theme.Good.Render(fmt.Sprintf("✓ %d%%", p.Scores[l.ID]))))
		} else {
			sb.WriteString(fmt.Sprintf("  %s %-10s %s\n", l.Glyph, l.Name, theme.Warn.Render("Needs Practice")))
		}
	}
	if mt.CurrentLevel < 4 {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("Average more than 70%% across the Level %d letters to unlock Level %d.", mt.CurrentLevel, mt.CurrentLevel+1)) + "\n")
	}

	if len(ov.Recommendations) > 0 {
		sb.WriteString("\n" + theme.Title.Render("🎓 Recommended Exercises") + "\n")
		for _, r := range ov.Recommendations {
			sb.WriteString(fmt.Sprintf("  %s %s: %s\n", r.Icon, theme.Hot.Render(r.Title), r.Description))
			sb.WriteString(theme.Muted.Render("     Why: "+r.Reason) + "\n")
		}
	}

	unlocked := 0
	for _, a := range ov.Achievements {
		if a.Unlocked {
			unlocked++
		}
	}
	sb.WriteString("\n" + theme.Title.Render("Achievements") + theme.Muted.Render(fmt.Sprintf("  %d of %d unlocked", unlocked, len(ov.Achievements))) + "\n")
	shownLocked := 0
	for _, a := range ov.Achievements {
		switch {
		case a.Unlocked:
			sb.WriteString(fmt.Sprintf("  %s %s  %s  %s\n", a.Icon, theme.Good.Render(a.Name), a.Description, theme.Muted.Render(a.UnlockedAt.Local().Format("2006-01-02"))))
		case shownLocked < 3:
			shownLocked++
			sb.WriteString(theme.Locked.Render(fmt.Sprintf("  🔒 %s  %s  (reward: %s)", a.Name, a.Description, a.Reward)) + "\n")
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("r: refresh  ↑/↓: scroll  :progress:export writes the report note"))
	return sb.String()
}

func card(label, value string) string {
	return theme.Pane.Width(22).Render(theme.Hot.Render(value) + "\n" + theme.Muted.Render(label))
}

func bar(percent, width int) string {
	filled := min(max(percent, 0), 100) * width / 100
	return lipgloss.NewStyle().Foreground(theme.Green).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Surface1).Render(strings.Repeat("░", width-filled))
}
