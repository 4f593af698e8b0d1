package tui

import (
	"context"
	"os"

	"github.com/kedare/basket/internal/logger"
	"github.com/kedare/basket/internal/shopping"
	"github.com/kedare/basket/internal/theme"
	"github.com/rivo/tview"
)

// Config holds the TUI configuration
type Config struct {
	Collection *shopping.Collection
	Preference *theme.Preference
}

// App is the main TUI application
type App struct {
	*tview.Application
	config *Config
	screen *MainScreen
	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates a new TUI application. Cancelling ctx stops it.
func NewApp(ctx context.Context, config *Config) *App {
	ctx, cancel := context.WithCancel(ctx)

	tviewApp := tview.NewApplication()
	tviewApp.EnableMouse(true)

	app := &App{
		Application: tviewApp,
		config:      config,
		ctx:         ctx,
		cancel:      cancel,
	}

	app.screen = NewMainScreen(tviewApp, config.Collection, config.Preference,
		WithDispatch(func(fn func()) { tviewApp.QueueUpdateDraw(fn) }),
		WithQuit(app.Stop),
	)

	return app
}

// Screen returns the main screen
func (a *App) Screen() *MainScreen {
	return a.screen
}

// Run starts the event loop and blocks until the user quits. Pending theme
// writes are flushed before it returns.
func (a *App) Run() error {
	defer a.cancel()

	a.screen.Start(a.ctx)
	a.SetRoot(a.screen.Primitive(), true).SetFocus(a.screen.Focus())

	go func() {
		<-a.ctx.Done()
		a.Stop()
	}()

	err := a.Application.Run()
	a.config.Preference.Wait()

	return err
}

// Run starts the TUI with logging and stray output suppressed
func Run(ctx context.Context, config *Config) error {
	// Disable logging to prevent log output from corrupting the TUI
	logger.Log.Disable()
	defer logger.Log.Restore()

	outputRedir := newOutputRedirector()
	defer outputRedir.Restore()

	return NewApp(ctx, config).Run()
}

// outputRedirector manages stdout/stderr redirection for TUI mode
type outputRedirector struct {
	origStdout *os.File
	origStderr *os.File
	devNull    *os.File
}

// newOutputRedirector creates a new output redirector and redirects stdout/stderr to /dev/null
func newOutputRedirector() *outputRedirector {
	r := &outputRedirector{
		origStdout: os.Stdout,
		origStderr: os.Stderr,
	}

	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return r
	}
	r.devNull = devNull

	os.Stdout = devNull
	os.Stderr = devNull

	return r
}

// Restore restores the original stdout/stderr
func (r *outputRedirector) Restore() {
	if r.origStdout != nil {
		os.Stdout = r.origStdout
	}
	if r.origStderr != nil {
		os.Stderr = r.origStderr
	}
	if r.devNull != nil {
		_ = r.devNull.Close()
	}
}
