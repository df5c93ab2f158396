package domain

import (
	"fmt"
	"time"

	apperrors "hangul/internal/platform/errors"
)

const QuestionsPerRun = 10

type RunState string

const (
	StateIdle           RunState = "idle"
	StateAwaitingAnswer RunState = "awaiting-answer"
	StateShowingResult  RunState = "showing-result"
)

// PointsFor is the award for a correct answer to the n-th question of a run.
func PointsFor(questionNumber int) int {
	return max(10, 20-2*questionNumber)
}

type AnswerResult struct {
	Correct       bool
	Selected      string
	CorrectAnswer string
	Awarded       int
	LetterID      int
}

func (r AnswerResult) Feedback() string {
	if r.Correct {
		return "Correct! Well done!"
	}
	return fmt.Sprintf("Incorrect. The correct answer is %q.", r.CorrectAnswer)
}

// Run is one ten-question practice session. The zero value is idle.
type Run struct {
	ID             string
	Kind           Kind
	State          RunState
	QuestionNumber int
	Points         int
	Correct        int
	Question       Question
	Selected       string
	StartedAt      time.Time
}

func (r Run) Active() bool {
	return r.State == StateAwaitingAnswer || r.State == StateShowingResult
}

// Last reports whether the current question is the final one of the run.
func (r Run) Last() bool {
	return r.QuestionNumber >= QuestionsPerRun
}

func (r *Run) Start(id string, kind Kind, first Question, now time.Time) {
	*r = Run{
		ID:             id,
		Kind:           kind,
		State:          StateAwaitingAnswer,
		QuestionNumber: 1,
		Question:       first,
		StartedAt:      now,
	}
}

func (r *Run) Check(answer string) (AnswerResult, error) {
	if r.State != StateAwaitingAnswer {
		return AnswerResult{}, fmt.Errorf("%w: no question awaiting an answer", apperrors.ErrNoActiveSession)
	}
	if r.Question.IsPlaceholder() {
		return AnswerResult{}, fmt.Errorf("%w: not enough unlocked letters to practice", apperrors.ErrInsufficientData)
	}
	if answer == "" {
		return AnswerResult{}, fmt.Errorf("%w: empty answer", apperrors.ErrInvalidInput)
	}

	res := AnswerResult{
		Correct:       r.Question.Check(answer),
		Selected:      answer,
		CorrectAnswer: r.Question.CorrectAnswer,
		LetterID:      r.Question.LetterID,
	}
	if res.Correct {
		res.Awarded = PointsFor(r.QuestionNumber)
		r.Points += res.Awarded
		r.Correct++
	}
	r.Selected = answer
	r.State = StateShowingResult
	return res, nil
}

// Advance moves to the next question. Callers check Last first and Finish
// instead when the run is over.
func (r *Run) Advance(next Question) error {
	if r.State != StateShowingResult {
		return fmt.Errorf("%w: answer the current question first", apperrors.ErrNoActiveSession)
	}
	if r.Last() {
		return fmt.Errorf("%w: run already at question %d", apperrors.ErrInvalidInput, QuestionsPerRun)
	}
	r.QuestionNumber++
	r.Question = next
	r.Selected = ""
	r.State = StateAwaitingAnswer
	return nil
}

// Finish returns the run to idle and reports the time spent on it.
func (r *Run) Finish(now time.Time) time.Duration {
	elapsed := max(now.Sub(r.StartedAt), 0)
	*r = Run{State: StateIdle}
	return elapsed
}
