// Package espeak speaks text through an espeak-compatible command line synthesizer.
package espeak

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bnema/vehicle-assistant-cli/internal/ports"
)

var ErrUnavailable = errors.New("speech command unavailable")

const (
	DefaultCommand = "espeak-ng"
	DefaultVoice   = "es"
	DefaultRate    = 160
)

type runFunc func(ctx context.Context, command string, args ...string) (stderr string, err error)

type Speaker struct {
	command string
	voice   string
	rate    int
	run     runFunc
}

var _ ports.Speaker = (*Speaker)(nil)

// NewSpeaker falls back to the package defaults for empty or non-positive values.
func NewSpeaker(command, voice string, rate int) *Speaker {
	if strings.TrimSpace(command) == "" {
		command = DefaultCommand
	}
	if strings.TrimSpace(voice) == "" {
		voice = DefaultVoice
	}
	if rate <= 0 {
		rate = DefaultRate
	}

	return &Speaker{command: command, voice: voice, rate: rate, run: runSpeechCommand}
}

func (s *Speaker) Speak(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	stderr, err := s.run(ctx, s.command, "-v", s.voice, "-s", strconv.Itoa(s.rate), "--", text)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return formatError(s.command, err, stderr)
	}

	return nil
}

func runSpeechCommand(ctx context.Context, command string, args ...string) (string, error) {
	path, err := exec.LookPath(command)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrUnavailable, command)
		}
		return "", fmt.Errorf("locate %s command: %w", command, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	return strings.TrimSpace(stderr.String()), err
}

func formatError(command string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("%s speak: %w", command, err)
	}

	return fmt.Errorf("%s speak: %w: %s", command, err, stderr)
}
