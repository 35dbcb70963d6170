package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/legible/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/legible/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/legible/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/legible/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/legible/internal/adapters/driving/tui/views/bench"
	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/core/ports/driving"
)

// App runs one benchmark and renders its progress.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is cancelled when the user quits or the run ends.
	ctx    context.Context
	cancel context.CancelFunc

	config domain.BenchmarkConfig

	styles    *styles.Styles
	keymap    *keymap.KeyMap
	benchView *bench.View
	statusBar *status.Bar

	// updates carries progress from the benchmark goroutine to the program.
	updates chan tea.Msg

	result    *domain.BenchmarkResult
	err       error
	done      bool
	cancelled bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a benchmark app for cfg.
func NewApp(ports *Ports, cfg domain.BenchmarkConfig) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	ctx, cancel := context.WithCancel(context.Background())

	return &App{
		ports:     ports,
		ctx:       ctx,
		cancel:    cancel,
		config:    cfg,
		styles:    s,
		keymap:    km,
		benchView: bench.NewView(s, cfg),
		statusBar: status.NewBar(s, km),
		updates:   make(chan tea.Msg),
	}, nil
}

// WithContext derives the run context from ctx.
func (a *App) WithContext(ctx context.Context) *App {
	a.cancel()
	a.ctx, a.cancel = context.WithCancel(ctx)
	return a
}

// Init implements tea.Model.
// It starts the benchmark and the progress listener.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("legible - bench"),
		a.startBenchmark(),
		a.waitForProgress(),
	)
}

// startBenchmark runs the benchmark and reports its outcome as BenchDone.
func (a *App) startBenchmark() tea.Cmd {
	ctx, service, cfg, updates := a.ctx, a.ports.Benchmark, a.config, a.updates
	return func() tea.Msg {
		result, err := service.Run(ctx, cfg, func(p domain.BenchmarkProgress) {
			select {
			case updates <- messages.BenchProgress{Progress: p}:
			case <-ctx.Done():
			}
		})
		return messages.BenchDone{Result: result, Err: err}
	}
}

// waitForProgress delivers the next progress message.
func (a *App) waitForProgress() tea.Cmd {
	ctx, updates := a.ctx, a.updates
	return func() tea.Msg {
		select {
		case msg := <-updates:
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.statusBar.SetWidth(msg.Width)
		a.benchView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keymap.Quit):
			if !a.done {
				a.cancelled = true
				a.statusBar.SetState(status.StateCancelled)
			}
			a.cancel()
			return a, tea.Quit
		case key.Matches(msg, a.keymap.Help):
			a.statusBar.ToggleHelp()
		case key.Matches(msg, a.keymap.Details):
			a.benchView.ToggleTable()
		}
		return a, nil

	case messages.BenchProgress:
		if a.done {
			return a, nil
		}
		a.benchView.Update(msg)
		a.statusBar.SetStep(msg.Progress.Step, msg.Progress.Steps)
		return a, a.waitForProgress()

	case messages.BenchDone:
		a.finish(msg)
		return a, tea.Quit
	}

	return a, nil
}

// finish records the outcome and stops the listener.
func (a *App) finish(msg messages.BenchDone) {
	a.done = true
	a.result = msg.Result
	a.err = msg.Err
	a.cancel()

	switch {
	case errors.Is(msg.Err, context.Canceled):
		a.cancelled = true
		a.statusBar.SetState(status.StateCancelled)
	case msg.Err != nil:
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
	default:
		steps := a.config.Steps
		a.statusBar.SetStep(steps, steps)
		a.statusBar.SetState(status.StateDone)
		// The final step may still be in flight on the listener.
		if msg.Result != nil {
			for i := len(a.benchView.Rows()); i < len(msg.Result.Rows); i++ {
				a.benchView.Update(messages.BenchProgress{Progress: domain.BenchmarkProgress{
					Step:  i + 1,
					Steps: len(msg.Result.Rows),
					Row:   msg.Result.Rows[i],
				}})
			}
		}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	return a.benchView.View() + "\n\n" + a.statusBar.View() + "\n"
}

// Run starts the program and blocks until the benchmark ends or the user quits.
func (a *App) Run(opts ...tea.ProgramOption) (*domain.BenchmarkResult, error) {
	p := tea.NewProgram(a, opts...)
	_, err := p.Run()
	a.cancel()
	if err != nil {
		return nil, fmt.Errorf("run tui: %w", err)
	}
	if a.cancelled {
		return nil, context.Canceled
	}
	return a.result, a.err
}

// RunBenchmark shows the progress view while service runs cfg.
func RunBenchmark(
	ctx context.Context, service driving.BenchmarkService, cfg domain.BenchmarkConfig, opts ...tea.ProgramOption,
) (*domain.BenchmarkResult, error) {
	app, err := NewApp(NewPorts(service), cfg)
	if err != nil {
		return nil, err
	}
	return app.WithContext(ctx).Run(opts...)
}

// Result returns the benchmark result once the run has finished.
func (a *App) Result() *domain.BenchmarkResult {
	return a.result
}

// Err returns the error the benchmark ended with.
func (a *App) Err() error {
	return a.err
}

// Done reports whether the benchmark has returned.
func (a *App) Done() bool {
	return a.done
}

// Cancelled reports whether the run was stopped before it finished.
func (a *App) Cancelled() bool {
	return a.cancelled
}
