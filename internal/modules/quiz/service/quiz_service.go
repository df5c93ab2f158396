package service

import (
	"context"
	"fmt"
	"sync"

	alphabetdomain "hangul/internal/modules/alphabet/domain"
	"hangul/internal/modules/quiz/domain"
	quizout "hangul/internal/modules/quiz/port/out"
	"hangul/internal/platform/clock"
	apperrors "hangul/internal/platform/errors"
	"hangul/internal/platform/id"
	"hangul/internal/platform/logger"
)

const (
	correctScore   = 100
	incorrectScore = 0
)

// Answer is the checked result plus whatever the progress tracker unlocked.
type Answer struct {
	Result  domain.AnswerResult
	Run     domain.Run
	Outcome quizout.Outcome
}

type QuizService struct {
	mu       sync.Mutex
	gen      *domain.Generator
	catalog  *alphabetdomain.Catalog
	progress quizout.ProgressPort
	clock    clock.Clock
	idGen    id.Generator
	log      *logger.Logger
	run      domain.Run
}

func NewQuizService(gen *domain.Generator, catalog *alphabetdomain.Catalog, progress quizout.ProgressPort, clk clock.Clock, idGen id.Generator, log *logger.Logger) *QuizService {
	return &QuizService{
		gen:      gen,
		catalog:  catalog,
		progress: progress,
		clock:    clk,
		idGen:    idGen,
		log:      logger.OrNop(log),
		run:      domain.Run{State: domain.StateIdle},
	}
}

func (s *QuizService) available(ctx context.Context) ([]alphabetdomain.Letter, error) {
	ids, err := s.progress.AvailableLetterIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load unlocked letters: %w", err)
	}
	return s.catalog.Subset(ids), nil
}

// Generate builds a standalone question outside any run.
func (s *QuizService) Generate(ctx context.Context, kind domain.Kind, pinnedID int) (domain.Question, error) {
	letters, err := s.available(ctx)
	if err != nil {
		return domain.Question{}, err
	}
	return s.gen.Generate(kind, letters, pinnedID)
}

func (s *QuizService) Start(ctx context.Context, kind domain.Kind) (domain.Run, error) {
	q, err := s.Generate(ctx, kind, 0)
	if err != nil {
		return domain.Run{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run.Active() {
		s.log.Info("practice run replaced", "run_id", s.run.ID, "question", s.run.QuestionNumber)
	}
	s.run.Start(s.idGen.New(), kind, q, s.clock.Now())
	s.log.Debug("practice run started", "run_id", s.run.ID, "kind", kind)
	return s.run, nil
}

// Answer checks the current question and records the letter score: 100 for
// a correct answer, 0 otherwise. A progress failure is logged and the run
// continues.
func (s *QuizService) Answer(ctx context.Context, answer string) (Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.run.Check(answer)
	if err != nil {
		return Answer{}, err
	}
	score := incorrectScore
	if res.Correct {
		score = correctScore
	}
	outcome, err := s.progress.RecordAnswer(ctx, res.LetterID, score)
	if err != nil {
		s.log.Warn("answer not recorded", "run_id", s.run.ID, "letter_id", res.LetterID, "error", err)
	}
	return Answer{Result: res, Run: s.run, Outcome: outcome}, nil
}

// Next advances the run, or finishes it after the last question and records
// the elapsed study minutes. The returned run is idle once finished.
func (s *QuizService) Next(ctx context.Context) (domain.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run.State != domain.StateShowingResult {
		return domain.Run{}, fmt.Errorf("%w: answer the current question first", apperrors.ErrNoActiveSession)
	}
	if s.run.Last() {
		s.finish(ctx)
		return s.run, nil
	}
	letters, err := s.available(ctx)
	if err != nil {
		return domain.Run{}, err
	}
	q, err := s.gen.Generate(s.run.Kind, letters, 0)
	if err != nil {
		return domain.Run{}, err
	}
	if err := s.run.Advance(q); err != nil {
		return domain.Run{}, err
	}
	return s.run, nil
}

func (s *QuizService) finish(ctx context.Context) {
	runID, points := s.run.ID, s.run.Points
	elapsed := s.run.Finish(s.clock.Now())
	minutes := int(elapsed.Minutes())
	if minutes > 0 {
		if err := s.progress.RecordStudyTime(ctx, minutes); err != nil {
			s.log.Warn("study time not recorded", "run_id", runID, "minutes", minutes, "error", err)
		}
	}
	s.log.Info("practice run finished", "run_id", runID, "points", points, "minutes", minutes)
}

func (s *QuizService) Current() (domain.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.run.Active() {
		return domain.Run{}, apperrors.ErrNoActiveSession
	}
	return s.run, nil
}

// Abandon drops the active run without recording study time.
func (s *QuizService) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.run = domain.Run{State: domain.StateIdle}
}

// Letter resolves the focus letter of a question for explanations.
func (s *QuizService) Letter(id int) (alphabetdomain.Letter, bool) {
	return s.catalog.Letter(id)
}
