package bootstrap

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	sleepinadapter "sleeptrack/internal/modules/sleep/adapter/in"
	sleepoutadapter "sleeptrack/internal/modules/sleep/adapter/out"
	sleepservice "sleeptrack/internal/modules/sleep/service"
	sleepusecase "sleeptrack/internal/modules/sleep/usecase"
	"sleeptrack/internal/platform/clock"
	"sleeptrack/internal/platform/config"
	"sleeptrack/internal/platform/id"
	"sleeptrack/internal/platform/kv"
	"sleeptrack/internal/platform/logging"
	uiapp "sleeptrack/internal/ui/app"
)

type App struct {
	SleepCLI     sleepinadapter.CLIHandler
	SleepTUI     sleepinadapter.TUIHandler
	HistoryLimit int

	closers []io.Closer
}

func New(cfg config.Config) (*App, error) {
	logger, logFile, err := logging.OpenFile(cfg.LogPath, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("open logger: %w", err)
	}

	db, err := kv.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("open storage: %w", err)
	}

	sleepUC := sleepusecase.NewInteractor(
		sleepservice.NewTrackingService(clock.System(), id.UUIDv7{}),
		sleepoutadapter.NewKVHistoryStore(db, logger),
		logger,
	)
	logger.Debug("sleeptrack started", "db", cfg.DBPath, "history_limit", cfg.HistoryLimit)

	return &App{
		SleepCLI:     sleepinadapter.NewCLIHandler(sleepUC),
		SleepTUI:     sleepinadapter.NewTUIHandler(sleepUC),
		HistoryLimit: cfg.HistoryLimit,
		closers:      []io.Closer{db, logFile},
	}, nil
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.SleepTUI, app.HistoryLimit)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
