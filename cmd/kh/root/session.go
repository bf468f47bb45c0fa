package root

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"

	"kittyhaven/internal/config"
	"kittyhaven/internal/engine"
	"kittyhaven/internal/storage"
	"kittyhaven/internal/tui"
	"kittyhaven/internal/ui"
)

func loadConfig() (config.Config, error) {
	path, err := config.ResolvePath(configFlag)
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(path)
}

func openDB(ctx context.Context, cfg config.Config) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath(dbFlag, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

// newService opens the household with the given hooks. Logs go to logOut.
func newService(ctx context.Context, hooks tui.Hooks, logOut io.Writer) (*engine.Service, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	db, cleanup, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.Level()}))
	svc, err := engine.New(ctx, engine.Options{
		Store:     storage.NewKVRepo(db),
		Notifier:  hooks.Notifier,
		Confirmer: hooks.Confirmer,
		Renderer:  hooks.Renderer,
		Logger:    logger,
		Config:    cfg,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}

func openService(ctx context.Context, out io.Writer, confirm engine.Confirmer) (*engine.Service, func(), error) {
	return newService(ctx, tui.Hooks{Notifier: ui.Toaster{W: out}, Confirmer: confirm}, os.Stderr)
}

// choice answers the shop dialog with a fixed option. A negative index dismisses it.
type choice int

func (c choice) Confirm(_, _ string, options []string) (int, bool) {
	if c < 0 || int(c) >= len(options) {
		return 0, false
	}
	return int(c), true
}
