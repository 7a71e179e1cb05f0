package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/five82/stockdeck/internal/catalog"
	"github.com/five82/stockdeck/internal/config"
	"github.com/five82/stockdeck/internal/logging"
	"github.com/five82/stockdeck/internal/prefs"
	"github.com/five82/stockdeck/internal/state"
	"github.com/five82/stockdeck/internal/ui"
)

// Options configure the stockdeck application.
type Options struct {
	ConfigPath  string
	FixturePath string // overrides fixture_path from the config file
	PrefsPath   string // empty uses default ~/.config/stockdeck/prefs.toml
}

// Run boots the stockdeck TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Config{
		Path:    cfg.LogFile,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Session: uuid.NewString(),
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer log.Close()

	store, err := loadStore(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		return err
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	log.Info().
		Str("theme", userPrefs.Theme).
		Str("start_page", userPrefs.StartPage).
		Msg("starting ui")

	err = ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Logger:    log.Component("ui"),
		LogPath:   cfg.LogFile,
		ThemeName: userPrefs.Theme,
		StartPage: userPrefs.StartPage,
		PrefsPath: opts.PrefsPath,
	})
	if err != nil {
		log.Error().Err(err).Msg("ui exited with error")
		return err
	}
	log.Info().Msg("stockdeck exited")
	return nil
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg.WithFixture(opts.FixturePath), nil
}

// loadStore reads the fixture, logs every validation issue and captures the
// result as the immutable seed.
func loadStore(cfg config.Config, log *logging.Logger) (*state.Store, error) {
	fixture, err := catalog.Load(cfg.FixturePath)
	if err != nil {
		return nil, fmt.Errorf("load fixture: %w", err)
	}

	store := state.New(fixture, cfg.FixturePath)
	snap := store.Snapshot()
	log.Info().
		Str("source", snap.SourceLabel()).
		Int("stores", len(snap.Stores)).
		Int("products", len(snap.Products)).
		Int("conflicts", len(snap.Conflicts)).
		Msg("fixture loaded")

	catalogLog := log.Component("catalog")
	for _, issue := range catalog.Validate(fixture) {
		catalogLog.Warn().
			Str("kind", string(issue.Kind)).
			Str("subject", issue.Subject).
			Msg(issue.Detail)
	}
	return store, nil
}
