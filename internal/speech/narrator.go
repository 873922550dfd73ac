package speech

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/bnema/vehicle-assistant-cli/internal/ports"
)

// Narrator speaks one answer at a time. A new Say cancels the utterance in
// flight; there is no queue.
type Narrator struct {
	speaker ports.Speaker
	logger  *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	closed bool
	wg     sync.WaitGroup
}

func NewNarrator(speaker ports.Speaker, logger *zap.Logger) *Narrator {
	if speaker == nil {
		speaker = ports.NopSpeaker{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Narrator{speaker: speaker, logger: logger}
}

// Say returns immediately. Speaker errors are logged, never returned.
func (n *Narrator) Say(text string) {
	clean := StripForSpeech(text)
	if clean == "" {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	if n.cancel != nil {
		n.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	prev := n.done
	done := make(chan struct{})
	n.cancel = cancel
	n.done = done

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		defer close(done)
		defer cancel()

		if prev != nil {
			<-prev
		}
		if ctx.Err() != nil {
			return
		}
		if err := n.speaker.Speak(ctx, clean); err != nil && !errors.Is(err, context.Canceled) {
			n.logger.Warn("speak answer", zap.Error(err))
		}
	}()
}

// Stop cancels the utterance in flight, if any.
func (n *Narrator) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.cancel != nil {
		n.cancel()
	}
}

// Wait blocks until every started utterance has finished.
func (n *Narrator) Wait() {
	n.wg.Wait()
}

// Close stops speaking, waits for the speaker to return and rejects further Say calls.
func (n *Narrator) Close() {
	n.mu.Lock()
	n.closed = true
	if n.cancel != nil {
		n.cancel()
	}
	n.mu.Unlock()

	n.wg.Wait()
}
