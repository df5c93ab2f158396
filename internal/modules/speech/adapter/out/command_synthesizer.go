package out

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"hangul/internal/modules/speech/domain"
	speechout "hangul/internal/modules/speech/port/out"
	apperrors "hangul/internal/platform/errors"
)

const (
	baseWordsPerMinute = 175
	basePitch          = 50
	baseAmplitude      = 100
)

// CommandSynthesizer drives an espeak-compatible command line synthesizer.
type CommandSynthesizer struct {
	command string
}

func NewCommandSynthesizer(command string) speechout.Synthesizer {
	return &CommandSynthesizer{command: command}
}

func (s *CommandSynthesizer) Speak(ctx context.Context, u domain.Utterance, voice string) error {
	path, err := exec.LookPath(s.command)
	if err != nil {
		return fmt.Errorf("%w: %s not found", apperrors.ErrSpeechUnavailable, s.command)
	}
	if err := exec.CommandContext(ctx, path, Args(u, voice)...).Run(); err != nil {
		return fmt.Errorf("speak %s with voice %s: %w", u, voice, err)
	}
	return nil
}

// Args maps an utterance to espeak flags: voice, speed, pitch and amplitude.
func Args(u domain.Utterance, voice string) []string {
	args := []string{}
	if voice != "" {
		args = append(args, "-v", voice)
	}
	args = append(args,
		"-s", strconv.Itoa(scale(baseWordsPerMinute, u.Rate)),
		"-p", strconv.Itoa(min(scale(basePitch, u.Pitch), 99)),
		"-a", strconv.Itoa(min(scale(baseAmplitude, u.Volume), 200)),
		u.Text,
	)
	return args
}

func scale(base int, factor float64) int {
	if factor <= 0 {
		factor = 1
	}
	return int(float64(base)*factor + 0.5)
}

type DisabledSynthesizer struct{}

func NewDisabledSynthesizer() speechout.Synthesizer {
	return DisabledSynthesizer{}
}

func (DisabledSynthesizer) Speak(context.Context, domain.Utterance, string) error {
	return fmt.Errorf("%w: speech is disabled", apperrors.ErrSpeechUnavailable)
}
