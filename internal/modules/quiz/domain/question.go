package domain

const placeholderPrompt = "Complete more letters to unlock practice exercises!"

type Question struct {
	Kind          Kind
	Prompt        string
	CorrectAnswer string
	Options       []string
	LetterID      int
	Word          string
}

func Placeholder() Question {
	return Question{Kind: KindInsufficientLetters, Prompt: placeholderPrompt, Options: []string{}}
}

func (q Question) IsPlaceholder() bool {
	return q.Kind == KindInsufficientLetters
}

func (q Question) Check(answer string) bool {
	return !q.IsPlaceholder() && answer == q.CorrectAnswer
}
