package in

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"hangul/internal/modules/quiz/dto"
	quizin "hangul/internal/modules/quiz/port/in"
)

type CLIHandler struct {
	usecase quizin.Usecase
}

func NewCLIHandler(usecase quizin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Kinds(ctx context.Context) ([]dto.KindOutput, error) {
	return h.usecase.Kinds(ctx)
}

func (h CLIHandler) Ask(ctx context.Context, kind string, letterID int) (dto.QuestionOutput, error) {
	return h.usecase.Ask(ctx, dto.AskInput{Kind: kind, LetterID: letterID})
}

func (h CLIHandler) StartRun(ctx context.Context, kind string) (dto.RunOutput, error) {
	return h.usecase.StartRun(ctx, kind)
}

// Answer accepts either the option text, its 1-based number or its letter (A-D).
func (h CLIHandler) Answer(ctx context.Context, options []string, raw string) (dto.AnswerOutput, error) {
	return h.usecase.Answer(ctx, ResolveOption(options, raw))
}

func (h CLIHandler) Next(ctx context.Context) (dto.RunOutput, error) {
	return h.usecase.Next(ctx)
}

func (h CLIHandler) CurrentRun(ctx context.Context) (dto.RunOutput, error) {
	return h.usecase.CurrentRun(ctx)
}

func (h CLIHandler) Abandon(ctx context.Context) error {
	return h.usecase.Abandon(ctx)
}

// OptionLabel is the A, B, C... label shown next to an option.
func OptionLabel(index int) string {
	return fmt.Sprintf("%c", 'A'+index)
}

func ResolveOption(options []string, raw string) string {
	raw = strings.TrimSpace(raw)
	for _, opt := range options {
		if opt == raw {
			return raw
		}
	}
	if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(options) {
		return options[n-1]
	}
	if len(raw) == 1 {
		idx := int(strings.ToUpper(raw)[0] - 'A')
		if idx >= 0 && idx < len(options) {
			return options[idx]
		}
	}
	return raw
}
