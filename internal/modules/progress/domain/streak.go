package domain

import (
	"time"

	"hangul/internal/platform/clock"
)

// RecordPractice advances the day streak: same day keeps it, the next day
// extends it, a longer gap restarts it at one.
func (s *Snapshot) RecordPractice(now time.Time) {
	switch {
	case s.LastPracticeAt == nil:
		s.StreakCount = 1
	default:
		gap := clock.DaysBetween(*s.LastPracticeAt, now)
		switch {
		case gap < 0:
			return
		case gap == 0:
			if s.StreakCount == 0 {
				s.StreakCount = 1
			}
		case gap == 1:
			s.StreakCount++
		default:
			s.StreakCount = 1
		}
	}
	s.BestStreak = max(s.BestStreak, s.StreakCount)
	at := now
	s.LastPracticeAt = &at
}

// EffectiveStreak evaluates the stored streak against now. A streak whose
// last practice is older than yesterday has lapsed.
func (s Snapshot) EffectiveStreak(now time.Time) int {
	if s.LastPracticeAt == nil {
		return s.StreakCount
	}
	if clock.DaysBetween(*s.LastPracticeAt, now) > 1 {
		return 0
	}
	return s.StreakCount
}

// IncrementStreak checks in for now's day. It extends the effective streak
// by one; a second check-in on the same day keeps it unchanged.
func (s *Snapshot) IncrementStreak(now time.Time) {
	if s.LastPracticeAt != nil && s.StreakCount > 0 && clock.DaysBetween(*s.LastPracticeAt, now) == 0 {
		return
	}
	s.StreakCount = s.EffectiveStreak(now) + 1
	s.BestStreak = max(s.BestStreak, s.StreakCount)
	at := now
	s.LastPracticeAt = &at
}

func (s *Snapshot) ResetStreak() {
	s.StreakCount = 0
}
