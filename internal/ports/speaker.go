package ports

import "context"

// Speaker synthesizes speech. Speak blocks until the utterance ends and must
// stop as soon as ctx is cancelled.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

type NopSpeaker struct{}

func (NopSpeaker) Speak(ctx context.Context, _ string) error {
	return ctx.Err()
}
