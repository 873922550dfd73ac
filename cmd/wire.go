package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	statusadapter "github.com/bnema/vehicle-assistant-cli/internal/adapters/render/status"
	sqliterepo "github.com/bnema/vehicle-assistant-cli/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/vehicle-assistant-cli/internal/adapters/repo/toml"
	"github.com/bnema/vehicle-assistant-cli/internal/adapters/speech/espeak"
	"github.com/bnema/vehicle-assistant-cli/internal/adapters/state"
	"github.com/bnema/vehicle-assistant-cli/internal/application"
	"github.com/bnema/vehicle-assistant-cli/internal/catalog"
	"github.com/bnema/vehicle-assistant-cli/internal/config"
	"github.com/bnema/vehicle-assistant-cli/internal/logging"
	"github.com/bnema/vehicle-assistant-cli/internal/ports"
	"github.com/bnema/vehicle-assistant-cli/internal/speech"
)

const defaultStaleAfter = 7 * 24 * time.Hour

type app struct {
	cfg            config.Config
	logger         *zap.Logger
	blobs          ports.BlobStore
	state          *state.Store
	catalog        *catalog.Catalog
	statusRenderer func([]application.Digest, statusadapter.RenderOptions) (string, error)
	speaker        ports.Speaker
	now            func() time.Time
	closers        []func() error
}

func wireApp() (*app, error) {
	cfg, v, err := config.Load(config.Options{})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate configuration: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	a := &app{
		cfg:            cfg,
		logger:         logger,
		catalog:        catalog.New(catalog.Default()),
		statusRenderer: statusadapter.Render,
		speaker:        ports.NopSpeaker{},
		now:            time.Now,
	}
	a.closers = append(a.closers, func() error {
		_ = logger.Sync()
		return nil
	})

	blobs, err := openBlobStore(cfg, v)
	if err != nil {
		return nil, err
	}
	a.blobs = blobs
	if closer, ok := blobs.(interface{ Close() error }); ok {
		a.closers = append(a.closers, closer.Close)
	}

	a.state = state.New(blobs, ports.SystemClock{}, logger.Named("state"))

	switch {
	case !cfg.Speech.Enabled:
	case cfg.Speech.Command == espeak.DefaultCommand:
		a.speaker = espeak.NewDefault(cfg.Speech.Voice, cfg.Speech.Rate)
	default:
		a.speaker = espeak.NewSpeaker(cfg.Speech.Command, cfg.Speech.Voice, cfg.Speech.Rate)
	}

	return a, nil
}

func openBlobStore(cfg config.Config, v *viper.Viper) (ports.BlobStore, error) {
	switch cfg.Store.Driver {
	case config.DriverSQL:
		store, err := sqliterepo.Open(context.Background(), cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("wire sqlite store: %w", err)
		}
		return store, nil
	default:
		store, err := tomlrepo.NewStore(v)
		if err != nil {
			return nil, fmt.Errorf("wire toml store: %w", err)
		}
		return store, nil
	}
}

// assistant builds an assistant reading the app state as seen from clock and
// loads its first snapshot. A failed load is logged by the assistant and
// leaves the snapshot empty.
func (a *app) assistant(ctx context.Context, clock ports.Clock) *application.Assistant {
	assistant := a.newAssistant(clock)
	_ = assistant.Refresh(ctx)

	return assistant
}

func (a *app) newAssistant(clock ports.Clock) *application.Assistant {
	return application.New(application.Deps{
		States:   a.state,
		Journals: a.state,
		Actions:  a.state,
		Catalog:  a.catalog,
		Clock:    clock,
		Logger:   a.logger.Named("assistant"),
	})
}

func (a *app) recorder() *application.Recorder {
	return application.NewRecorder(a.state, ports.SystemClock{}, a.logger.Named("recorder"))
}

// narrator returns nil when speech is disabled.
func (a *app) narrator() *speech.Narrator {
	if !a.cfg.Speech.Enabled {
		return nil
	}

	return speech.NewNarrator(a.speaker, a.logger.Named("speech"))
}

func (a *app) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil

	return firstErr
}
