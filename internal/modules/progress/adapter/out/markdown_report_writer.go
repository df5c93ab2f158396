package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hangul/internal/modules/progress/domain"
	progressout "hangul/internal/modules/progress/port/out"
	"hangul/internal/platform/markdown"
	"hangul/internal/platform/slug"
)

var reportBlock = markdown.Block{
	Start: "<!-- hangul:progress:start -->",
	End:   "<!-- hangul:progress:end -->",
}

// MarkdownReportWriter renders the progress report into a note. Text outside
// the generated block and unknown frontmatter keys are preserved.
type MarkdownReportWriter struct {
	dir string
}

func NewMarkdownReportWriter(dir string) progressout.ReportWriter {
	return &MarkdownReportWriter{dir: dir}
}

func (w *MarkdownReportWriter) Write(_ context.Context, report domain.Report) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(w.dir, slug.Make(report.Profile)+".md")

	meta := map[string]any{}
	body := "# Hangul progress\n"
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		meta, body, err = markdown.SplitFrontmatter(string(existing))
		if err != nil {
			return "", err
		}
	case !os.IsNotExist(err):
		return "", fmt.Errorf("read report: %w", err)
	}

	m := report.Metrics
	meta = markdown.MergeFrontmatter(meta, map[string]any{
		"type":             "hangul-progress",
		"profile":          report.Profile,
		"generated_at":     report.GeneratedAt.Format(time.RFC3339),
		"level":            m.CurrentLevel,
		"unlocked_letters": m.UnlockedLetters,
		"completed":        m.CompletedLetters,
		"total_score":      m.TotalScore,
		"average_score":    m.AverageScore,
		"streak":           m.Streak,
	})
	content, err := markdown.RenderFrontmatter(meta, reportBlock.Replace(body, renderReport(report)))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func renderReport(r domain.Report) string {
	b := strings.Builder{}
	m := r.Metrics
	fmt.Fprintf(&b, "## Overview\n\n")
	fmt.Fprintf(&b, "- Level: %d\n", m.CurrentLevel)
	fmt.Fprintf(&b, "- Unlocked: %d/%d (%d%%)\n", m.UnlockedLetters, m.TotalLetters, m.UnlockProgress)
	fmt.Fprintf(&b, "- Completed: %d/%d (%d%%)\n", m.CompletedLetters, m.TotalLetters, m.CompletionProgress)
	fmt.Fprintf(&b, "- Words built: %d\n", m.CompletedWords)
	fmt.Fprintf(&b, "- Streak: %d day(s), best %d\n", m.Streak, m.BestStreak)
	fmt.Fprintf(&b, "- Questions: %d answered, %d correct, average %d\n", r.Stats.TotalQuestions, r.Stats.CorrectAnswers, r.Stats.AverageScore)
	fmt.Fprintf(&b, "- Study time: %d min\n", r.Stats.StudyTimeMinutes)

	b.WriteString("\n## Letters\n\n| Letter | Name | Level | Best | Status |\n|---|---|---|---|---|\n")
	for _, l := range r.Letters {
		status := "locked"
		switch {
		case l.Completed:
			status = "completed"
		case l.Unlocked:
			status = "unlocked"
		}
		fmt.Fprintf(&b, "| %s | %s | %d | %d | %s |\n", l.Glyph, l.Name, l.Level, l.BestScore, status)
	}

	b.WriteString("\n## Achievements\n\n")
	for _, a := range r.Achievements {
		mark := "[ ]"
		suffix := ""
		if a.Unlocked {
			mark = "[x]"
			suffix = " (" + a.UnlockedAt.Format(time.DateOnly) + ")"
		}
		fmt.Fprintf(&b, "- %s %s %s: %s%s\n", mark, a.Icon, a.Name, a.Description, suffix)
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("\n## Next steps\n\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&b, "- %s **%s**: %s. %s\n", rec.Icon, rec.Title, rec.Description, rec.Reason)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
