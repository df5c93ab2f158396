package out_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	progressout "hangul/internal/modules/progress/adapter/out"
	"hangul/internal/modules/progress/domain"
)

func TestMarkdownReportWriterKeepsUserNotes(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writer := progressout.NewMarkdownReportWriter(dir)
	snap := sampleSnapshot()
	report := domain.Report{
		Profile:      "Min-jun Kim",
		GeneratedAt:  time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		Metrics:      domain.Metrics{TotalLetters: 24, UnlockedLetters: 10, CompletedLetters: 1, CurrentLevel: 1},
		Stats:        snap.ExerciseStats,
		Letters:      []domain.LetterProgress{{ID: 1, Glyph: "ㄱ", Name: "Kiyeok", Level: 1, BestScore: 90, Unlocked: true, Completed: true}},
		Achievements: domain.AchievementStatuses(snap),
	}
	path, err := writer.Write(context.Background(), report)
	if err != nil {
		t.Fatalf("write report: %v", err)
	}
	if !strings.HasSuffix(path, "min-jun-kim.md") {
		t.Fatalf("unexpected report path %s", path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	note := string(raw) + "\nMy own notes about ㄹ.\n"
	note = strings.Replace(note, "type: hangul-progress", "type: hangul-progress\ntags: korean", 1)
	if err := os.WriteFile(path, []byte(note), 0o644); err != nil {
		t.Fatalf("edit report: %v", err)
	}

	report.Metrics.CompletedLetters = 2
	if _, err := writer.Write(context.Background(), report); err != nil {
		t.Fatalf("rewrite report: %v", err)
	}
	raw, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	content := string(raw)
	for _, want := range []string{"My own notes about ㄹ.", "tags: korean", "completed: 2", "| ㄱ | Kiyeok | 1 | 90 | completed |", "[x] 🎯 First Steps"} {
		if !strings.Contains(content, want) {
			t.Fatalf("report missing %q:\n%s", want, content)
		}
	}
	if strings.Count(content, "<!-- hangul:progress:start -->") != 1 {
		t.Fatalf("managed block duplicated:\n%s", content)
	}
}
