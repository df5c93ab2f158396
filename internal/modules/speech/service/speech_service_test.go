package service_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"hangul/internal/modules/speech/domain"
	"hangul/internal/modules/speech/service"
	apperrors "hangul/internal/platform/errors"
)

type fakeSynth struct {
	mu     sync.Mutex
	voices []string
	fail   map[string]error
}

func (f *fakeSynth) Speak(_ context.Context, _ domain.Utterance, voice string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.voices = append(f.voices, voice)
	return f.fail[voice]
}

var voices = service.Voices{Korean: "ko", Fallback: "ko-KR", English: "en-us"}

func TestSpeakFallsBackToSecondVoice(t *testing.T) {
	t.Parallel()
	synth := &fakeSynth{fail: map[string]error{"ko": errors.New("voice missing")}}
	svc := service.NewSpeechService(synth, voices, nil)

	u, _ := domain.SyllableSound("가")
	if err := svc.Speak(context.Background(), u); err != nil {
		t.Fatalf("expected fallback voice to succeed, got %v", err)
	}
	if !slices.Equal(synth.voices, []string{"ko", "ko-KR"}) {
		t.Fatalf("expected ko then ko-KR, got %v", synth.voices)
	}
}

func TestSpeakEnglishUsesEnglishVoiceOnly(t *testing.T) {
	t.Parallel()
	synth := &fakeSynth{fail: map[string]error{"en-us": errors.New("boom")}}
	svc := service.NewSpeechService(synth, voices, nil)

	u := domain.Utterance{Text: "g/k", Lang: domain.English, Rate: 0.9}
	if err := svc.Speak(context.Background(), u); !errors.Is(err, apperrors.ErrSpeechUnavailable) {
		t.Fatalf("expected speech unavailable, got %v", err)
	}
	if !slices.Equal(synth.voices, []string{"en-us"}) {
		t.Fatalf("expected single english attempt, got %v", synth.voices)
	}
}

func TestUnavailableSynthesizerIsNotRetried(t *testing.T) {
	t.Parallel()
	synth := &fakeSynth{fail: map[string]error{"ko": apperrors.ErrSpeechUnavailable}}
	svc := service.NewSpeechService(synth, voices, nil)

	u, _ := domain.SyllableSound("다")
	if err := svc.Speak(context.Background(), u); !errors.Is(err, apperrors.ErrSpeechUnavailable) {
		t.Fatalf("expected speech unavailable, got %v", err)
	}
	if len(synth.voices) != 1 {
		t.Fatalf("expected one attempt, got %v", synth.voices)
	}
}

func TestSpeakAsyncReportsCompletion(t *testing.T) {
	t.Parallel()
	svc := service.NewSpeechService(&fakeSynth{}, voices, nil)
	done := make(chan error, 1)
	u, _ := domain.SyllableSound("사")
	svc.SpeakAsync(context.Background(), u, func(err error) { done <- err })

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("speech did not complete")
	}
	svc.Stop()
}
