package usecase

import (
	"context"

	"hangul/internal/modules/quiz/domain"
	"hangul/internal/modules/quiz/dto"
	quizin "hangul/internal/modules/quiz/port/in"
	"hangul/internal/modules/quiz/service"
)

type Interactor struct {
	svc *service.QuizService
}

func NewInteractor(svc *service.QuizService) quizin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Kinds(_ context.Context) ([]dto.KindOutput, error) {
	infos := domain.Kinds()
	out := make([]dto.KindOutput, 0, len(infos))
	for _, info := range infos {
		out = append(out, dto.KindOutput{Kind: string(info.Kind), Name: info.Name, Description: info.Description})
	}
	return out, nil
}

func (i *Interactor) Ask(ctx context.Context, input dto.AskInput) (dto.QuestionOutput, error) {
	kind, err := domain.ParseKind(input.Kind)
	if err != nil {
		return dto.QuestionOutput{}, err
	}
	q, err := i.svc.Generate(ctx, kind, input.LetterID)
	if err != nil {
		return dto.QuestionOutput{}, err
	}
	return i.toQuestionOutput(q), nil
}

func (i *Interactor) StartRun(ctx context.Context, kind string) (dto.RunOutput, error) {
	k, err := domain.ParseKind(kind)
	if err != nil {
		return dto.RunOutput{}, err
	}
	run, err := i.svc.Start(ctx, k)
	if err != nil {
		return dto.RunOutput{}, err
	}
	return i.toRunOutput(run), nil
}

func (i *Interactor) Answer(ctx context.Context, answer string) (dto.AnswerOutput, error) {
	res, err := i.svc.Answer(ctx, answer)
	if err != nil {
		return dto.AnswerOutput{}, err
	}
	return dto.AnswerOutput{
		Correct:       res.Result.Correct,
		Feedback:      res.Result.Feedback(),
		CorrectAnswer: res.Result.CorrectAnswer,
		Awarded:       res.Result.Awarded,
		Run:           i.toRunOutput(res.Run),
		NewlyUnlocked: res.Outcome.NewlyUnlocked,
		Granted:       res.Outcome.Granted,
	}, nil
}

func (i *Interactor) Next(ctx context.Context) (dto.RunOutput, error) {
	run, err := i.svc.Next(ctx)
	if err != nil {
		return dto.RunOutput{}, err
	}
	return i.toRunOutput(run), nil
}

func (i *Interactor) CurrentRun(_ context.Context) (dto.RunOutput, error) {
	run, err := i.svc.Current()
	if err != nil {
		return dto.RunOutput{}, err
	}
	return i.toRunOutput(run), nil
}

func (i *Interactor) Abandon(_ context.Context) error {
	i.svc.Abandon()
	return nil
}

func (i *Interactor) toQuestionOutput(q domain.Question) dto.QuestionOutput {
	out := dto.QuestionOutput{
		Kind:          string(q.Kind),
		Prompt:        q.Prompt,
		CorrectAnswer: q.CorrectAnswer,
		Options:       append([]string{}, q.Options...),
		Word:          q.Word,
		Placeholder:   q.IsPlaceholder(),
	}
	if l, ok := i.svc.Letter(q.LetterID); ok {
		out.Letter = &dto.LetterHint{
			ID:                l.ID,
			Name:              l.Name,
			Glyph:             l.Glyph,
			Romanization:      l.Romanization,
			EnglishComparison: l.EnglishComparison,
			Category:          string(l.Category),
			Difficulty:        l.Difficulty,
		}
	}
	return out
}

func (i *Interactor) toRunOutput(run domain.Run) dto.RunOutput {
	out := dto.RunOutput{
		ID:             run.ID,
		Kind:           string(run.Kind),
		State:          string(run.State),
		QuestionNumber: run.QuestionNumber,
		TotalQuestions: domain.QuestionsPerRun,
		Points:         run.Points,
		Correct:        run.Correct,
		StartedAt:      run.StartedAt,
	}
	if run.Active() {
		out.Last = run.Last()
		out.Question = i.toQuestionOutput(run.Question)
		for _, info := range domain.Kinds() {
			if info.Kind == run.Kind {
				out.KindName = info.Name
			}
		}
	}
	return out
}
