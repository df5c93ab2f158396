package domain

import "time"

// RecordScore applies one answered question for a letter. It does not
// recompute unlocks or achievements; call Derive afterwards.
func (s *Snapshot) RecordScore(letterID, score int, now time.Time) {
	if prev, ok := s.Scores[letterID]; !ok || score > prev {
		s.Scores[letterID] = score
	}

	stats := &s.ExerciseStats
	stats.TotalQuestions++
	if score >= CorrectThreshold {
		stats.CorrectAnswers++
	}
	stats.TotalScore += score
	stats.AverageScore = roundDiv(stats.TotalScore, stats.TotalQuestions)

	if score >= MaxScore {
		s.Milestones.PerfectScores++
	}
	if score >= CompletionThreshold {
		s.MarkCompleted(letterID, now)
	}
	s.RecordPractice(now)
	s.TotalScore += score
}

// MarkCompleted adds the letter to the completed set and counts it toward the daily milestone.
func (s *Snapshot) MarkCompleted(letterID int, now time.Time) bool {
	var added bool
	s.CompletedLetters, added = insertSorted(s.CompletedLetters, letterID)
	if !added {
		return false
	}
	m := &s.Milestones
	m.LettersCompleted++
	day := now.Format(time.DateOnly)
	if m.Day != day {
		m.Day = day
		m.CompletedToday = 0
	}
	m.CompletedToday++
	m.BestDay = max(m.BestDay, m.CompletedToday)
	return true
}

func (s *Snapshot) MarkWordCompleted(wordID int) bool {
	var added bool
	s.CompletedWords, added = insertSorted(s.CompletedWords, wordID)
	if added {
		s.Milestones.WordsCompleted++
	}
	return added
}

func (s *Snapshot) AddStudyTime(minutes int) {
	s.ExerciseStats.StudyTimeMinutes += minutes
}

// Grant appends an achievement unless it is already present.
func (s *Snapshot) Grant(a UnlockedAchievement) bool {
	if s.HasAchievement(a.ID) {
		return false
	}
	s.Achievements = append(s.Achievements, a)
	return true
}

// Derive recomputes unlocked letters and appends newly qualifying
// achievements, returning the ones granted by this call.
func (s *Snapshot) Derive(tiers Tiers, now time.Time) []UnlockedAchievement {
	s.UnlockedLetters = ComputeUnlocks(s.Scores, s.UnlockedLetters, tiers)
	granted := CheckAchievements(*s, now)
	s.Achievements = append(s.Achievements, granted...)
	return granted
}
