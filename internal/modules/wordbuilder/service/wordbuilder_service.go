package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	alphabetdomain "hangul/internal/modules/alphabet/domain"
	"hangul/internal/modules/wordbuilder/domain"
	wordbuilderout "hangul/internal/modules/wordbuilder/port/out"
	apperrors "hangul/internal/platform/errors"
	"hangul/internal/platform/id"
	"hangul/internal/platform/logger"
)

// Completion is the result of checking the assembled word.
type Completion struct {
	View     domain.View
	Recorded bool
	Granted  []string
}

type WordBuilderService struct {
	mu         sync.Mutex
	catalog    *alphabetdomain.Catalog
	completion wordbuilderout.CompletionPort
	idGen      id.Generator
	log        *logger.Logger
	session    *domain.Session
}

func NewWordBuilderService(catalog *alphabetdomain.Catalog, completion wordbuilderout.CompletionPort, idGen id.Generator, log *logger.Logger) *WordBuilderService {
	return &WordBuilderService{catalog: catalog, completion: completion, idGen: idGen, log: logger.OrNop(log)}
}

func (s *WordBuilderService) Start(_ context.Context, wordID int) (domain.View, error) {
	word, ok := s.catalog.Word(wordID)
	if !ok {
		return domain.View{}, fmt.Errorf("%w: word %d", apperrors.ErrNotFound, wordID)
	}
	session, err := domain.NewSession(s.idGen.New(), word, s.catalog)
	if err != nil {
		s.log.Warn("word session not started", "word_id", wordID, "error", err)
		return domain.View{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	s.log.Debug("word session started", "session_id", session.ID(), "word", word.Korean)
	return session.View(), nil
}

func (s *WordBuilderService) Current() (domain.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return domain.View{}, apperrors.ErrNoActiveSession
	}
	return s.session.View(), nil
}

// withSession runs fn on the active session and returns its state afterwards.
// Lookup failures are logged and leave the session as it was.
func (s *WordBuilderService) withSession(op string, fn func(*domain.Session) error) (domain.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return domain.View{}, apperrors.ErrNoActiveSession
	}
	if err := fn(s.session); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.log.Info("word builder lookup failed", "op", op, "session_id", s.session.ID(), "stage", s.session.Stage().String(), "error", err)
		}
		return s.session.View(), err
	}
	return s.session.View(), nil
}

// Select picks a letter by glyph: consonants are appended, vowels toggled.
func (s *WordBuilderService) Select(_ context.Context, glyph string) (domain.View, error) {
	return s.withSession("select", func(sess *domain.Session) error {
		l, ok := s.catalog.LetterByGlyph(glyph)
		if !ok {
			return fmt.Errorf("%w: letter %q", apperrors.ErrNotFound, glyph)
		}
		if l.IsVowel() {
			return sess.ToggleVowel(glyph)
		}
		return sess.SelectConsonant(glyph)
	})
}

func (s *WordBuilderService) ClearSelection(_ context.Context) (domain.View, error) {
	return s.withSession("clear", func(sess *domain.Session) error {
		sess.ClearSelection()
		return nil
	})
}

func (s *WordBuilderService) Build(_ context.Context) (domain.Syllable, domain.View, error) {
	var built domain.Syllable
	view, err := s.withSession("build", func(sess *domain.Session) error {
		syl, err := sess.BuildSyllable()
		built = syl
		return err
	})
	return built, view, err
}

func (s *WordBuilderService) Place(_ context.Context, text string) (domain.View, error) {
	return s.withSession("place", func(sess *domain.Session) error {
		return sess.PlaceSyllable(text)
	})
}

func (s *WordBuilderService) Remove(_ context.Context, index int) (domain.View, error) {
	return s.withSession("remove", func(sess *domain.Session) error {
		return sess.RemoveSyllable(index)
	})
}

func (s *WordBuilderService) Advance(_ context.Context) (domain.View, error) {
	return s.withSession("advance", func(sess *domain.Session) error {
		return sess.Advance()
	})
}

func (s *WordBuilderService) Reset(_ context.Context) (domain.View, error) {
	return s.withSession("reset", func(sess *domain.Session) error {
		sess.Reset()
		return nil
	})
}

func (s *WordBuilderService) Hint(_ context.Context) (string, error) {
	view, err := s.Current()
	if err != nil {
		return "", err
	}
	return view.Hint, nil
}

// Complete checks the assembled word and records it with the progress
// tracker the first time it is correct.
func (s *WordBuilderService) Complete(ctx context.Context) (Completion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return Completion{}, apperrors.ErrNoActiveSession
	}
	first, err := s.session.Complete()
	out := Completion{View: s.session.View()}
	if err != nil {
		return out, err
	}
	if !first || s.completion == nil {
		return out, nil
	}
	granted, err := s.completion.WordCompleted(ctx, s.session.Word().ID)
	if err != nil {
		s.log.Warn("word completion not recorded", "session_id", s.session.ID(), "word_id", s.session.Word().ID, "error", err)
		return out, nil
	}
	out.Recorded = true
	out.Granted = granted
	s.log.Info("word completed", "session_id", s.session.ID(), "word", s.session.Word().Korean)
	return out, nil
}
