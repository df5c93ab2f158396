package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"hangul/internal/modules/speech/domain"
	speechout "hangul/internal/modules/speech/port/out"
	apperrors "hangul/internal/platform/errors"
	"hangul/internal/platform/logger"
)

type Voices struct {
	Korean   string
	Fallback string
	English  string
}

// SpeechService plays one utterance at a time. Starting a new one cancels
// whatever is still playing.
type SpeechService struct {
	mu     sync.Mutex
	synth  speechout.Synthesizer
	voices Voices
	log    *logger.Logger
	cancel context.CancelFunc
}

func NewSpeechService(synth speechout.Synthesizer, voices Voices, log *logger.Logger) *SpeechService {
	return &SpeechService{synth: synth, voices: voices, log: logger.OrNop(log)}
}

func (s *SpeechService) begin(ctx context.Context) (context.Context, context.CancelFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	return ctx, cancel
}

// Speak blocks until the utterance is spoken. A Korean utterance that fails
// with the primary voice is retried once with the fallback voice.
func (s *SpeechService) Speak(ctx context.Context, u domain.Utterance) error {
	ctx, cancel := s.begin(ctx)
	defer cancel()

	voice := s.voices.Korean
	if u.Lang == domain.English {
		voice = s.voices.English
	}
	err := s.synth.Speak(ctx, u, voice)
	if err == nil || errors.Is(err, apperrors.ErrSpeechUnavailable) || ctx.Err() != nil {
		return s.report(u, err)
	}
	if u.Lang == domain.Korean && s.voices.Fallback != "" && s.voices.Fallback != voice {
		s.log.Warn("speech voice failed, retrying", "voice", voice, "fallback", s.voices.Fallback, "error", err)
		err = s.synth.Speak(ctx, u, s.voices.Fallback)
	}
	return s.report(u, err)
}

func (s *SpeechService) report(u domain.Utterance, err error) error {
	if err != nil {
		s.log.Debug("speech failed", "utterance", u.String(), "error", err)
		if errors.Is(err, apperrors.ErrSpeechUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %v", apperrors.ErrSpeechUnavailable, err)
	}
	return nil
}

// SpeakAsync speaks in the background and calls done, if set, with the result.
func (s *SpeechService) SpeakAsync(ctx context.Context, u domain.Utterance, done func(error)) {
	go func() {
		err := s.Speak(ctx, u)
		if done != nil {
			done(err)
		}
	}()
}

// Stop cancels the utterance in progress, if any.
func (s *SpeechService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
