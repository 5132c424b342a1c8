package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	drawinadapter "numdraw/internal/modules/draw/adapter/in"
	drawoutadapter "numdraw/internal/modules/draw/adapter/out"
	drawdto "numdraw/internal/modules/draw/dto"
	drawout "numdraw/internal/modules/draw/port/out"
	drawservice "numdraw/internal/modules/draw/service"
	drawusecase "numdraw/internal/modules/draw/usecase"
	"numdraw/internal/platform/clock"
	"numdraw/internal/platform/config"
	"numdraw/internal/platform/id"
	"numdraw/internal/platform/logging"
	uiapp "numdraw/internal/ui/app"
	"numdraw/internal/ui/components"
)

// Options carries the process-level collaborators the draw module is
// wired to.
type Options struct {
	Sink     drawout.Sink
	Stdout   io.Writer
	Terminal io.Writer
	Log      logrus.FieldLogger
}

type App struct {
	DrawCLI drawinadapter.CLIHandler
	closers []io.Closer
}

func New(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	app := &App{}

	var store drawout.DrawnStore
	switch cfg.Store {
	case config.StoreSQLite:
		sqliteStore, err := drawoutadapter.NewSQLiteStore(ctx)
		if err != nil {
			return nil, fmt.Errorf("new sqlite store: %w", err)
		}
		app.closers = append(app.closers, sqliteStore)
		store = sqliteStore
	default:
		store = drawoutadapter.NewMemoryStore()
	}

	batchIDs, err := id.NewSnowflake(1)
	if err != nil {
		return nil, err
	}

	sink := opts.Sink
	if sink == nil {
		sink = drawoutadapter.NopSink{}
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	terminal := opts.Terminal
	if terminal == nil {
		terminal = os.Stderr
	}
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	svc := drawservice.NewDrawService(clock.SystemClock{}, drawoutadapter.NewMathRandom(cfg.Seed), store, cfg.MaxResample)
	uc := drawusecase.NewInteractor(svc, sink, map[string]drawout.Delivery{
		drawdto.TargetFile:      drawoutadapter.NewFileDelivery(cfg.ExportDir),
		drawdto.TargetClipboard: drawoutadapter.NewClipboardDelivery(terminal),
		drawdto.TargetStdout:    drawoutadapter.NewWriterDelivery(stdout, drawdto.TargetStdout),
	}, id.UUID{}, batchIDs, log)

	app.DrawCLI = drawinadapter.NewCLIHandler(uc)
	return app, nil
}

func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func RunTUI(ctx context.Context, cfg config.Config) error {
	log, logCloser, err := logging.Open(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	tray := components.NewTray(time.Now, drawinadapter.Placeholder)
	app, err := New(ctx, cfg, Options{Sink: tray, Terminal: os.Stderr, Log: log})
	if err != nil {
		return err
	}
	defer app.Close()

	model := uiapp.NewModel(app.DrawCLI, tray)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	return err
}
