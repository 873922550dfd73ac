package espeak

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/vehicle-assistant-cli/internal/ports"
)

// Fallback speaks through primary and switches to fallback only when the
// primary synthesizer is not installed.
type Fallback struct {
	primary  ports.Speaker
	fallback ports.Speaker
}

var _ ports.Speaker = (*Fallback)(nil)

var (
	errNilPrimarySpeaker  = errors.New("primary speaker is nil")
	errNilFallbackSpeaker = errors.New("fallback speaker is nil")
)

func NewFallback(primary, fallback ports.Speaker) (*Fallback, error) {
	if primary == nil {
		return nil, errNilPrimarySpeaker
	}
	if fallback == nil {
		return nil, errNilFallbackSpeaker
	}

	return &Fallback{primary: primary, fallback: fallback}, nil
}

// NewDefault prefers espeak-ng and falls back to the legacy espeak binary.
func NewDefault(voice string, rate int) *Fallback {
	return &Fallback{
		primary:  NewSpeaker(DefaultCommand, voice, rate),
		fallback: NewSpeaker("espeak", voice, rate),
	}
}

func (f *Fallback) Speak(ctx context.Context, text string) error {
	err := f.primary.Speak(ctx, text)
	if err == nil || !errors.Is(err, ErrUnavailable) {
		return err
	}

	fallbackErr := f.fallback.Speak(ctx, text)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary speaker failed: %w; fallback speaker failed: %w", err, fallbackErr)
}
