package dto

import "time"

type KindOutput struct {
	Kind        string
	Name        string
	Description string
}

type AskInput struct {
	Kind     string
	LetterID int
}

type LetterHint struct {
	ID                int
	Name              string
	Glyph             string
	Romanization      string
	EnglishComparison string
	Category          string
	Difficulty        int
}

type QuestionOutput struct {
	Kind          string
	Prompt        string
	CorrectAnswer string
	Options       []string
	Word          string
	Placeholder   bool
	Letter        *LetterHint
}

type RunOutput struct {
	ID             string
	Kind           string
	KindName       string
	State          string
	QuestionNumber int
	TotalQuestions int
	Points         int
	Correct        int
	Last           bool
	Question       QuestionOutput
	StartedAt      time.Time
}

type AnswerOutput struct {
	Correct       bool
	Feedback      string
	CorrectAnswer string
	Awarded       int
	Run           RunOutput
	NewlyUnlocked []int
	Granted       []string
}
