package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	blocklistinadapter "timeaify/internal/modules/blocklist/adapter/in"
	blocklistoutadapter "timeaify/internal/modules/blocklist/adapter/out"
	blocklistservice "timeaify/internal/modules/blocklist/service"
	blocklistusecase "timeaify/internal/modules/blocklist/usecase"
	focusinadapter "timeaify/internal/modules/focus/adapter/in"
	focusoutadapter "timeaify/internal/modules/focus/adapter/out"
	"timeaify/internal/modules/focus/domain"
	focusin "timeaify/internal/modules/focus/port/in"
	focusservice "timeaify/internal/modules/focus/service"
	focususecase "timeaify/internal/modules/focus/usecase"
	onboardinginadapter "timeaify/internal/modules/onboarding/adapter/in"
	onboardingoutadapter "timeaify/internal/modules/onboarding/adapter/out"
	onboardingusecase "timeaify/internal/modules/onboarding/usecase"
	"timeaify/internal/platform/clock"
	"timeaify/internal/platform/config"
	"timeaify/internal/platform/id"
	"timeaify/internal/platform/logging"
	"timeaify/internal/platform/metrics"
	"timeaify/internal/platform/notify"
	uiapp "timeaify/internal/ui/app"
	"timeaify/internal/ui/components"
)

type App struct {
	Config   config.Config
	Logger   *zap.Logger
	Registry *prom.Registry
	Toasts   *components.Toasts

	Focus         focusin.Usecase
	FocusTUI      focusinadapter.TUIHandler
	BlockListCLI  blocklistinadapter.CLIHandler
	OnboardingCLI onboardinginadapter.CLIHandler

	closers []io.Closer
}

// New wires every module for cfg. Extra notifiers receive the same
// notifications as the TUI toasts, the log, and the metrics recorder.
func New(cfg config.Config, extra ...notify.Notifier) (*App, error) {
	clk := clock.SystemClock{}
	logger := logging.NewOrNop(cfg.LogLevel, cfg.LogPath)

	registry := prom.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	recorder := metrics.NewRecorder(registry)

	toasts := components.NewToasts()
	notifier := notify.Fanout{toasts, notify.NewLogNotifier(logger), recorder}
	notifier = append(notifier, extra...)

	blocklistUC := blocklistusecase.NewInteractor(
		blocklistservice.NewBlockListService(blocklistoutadapter.NewMemoryStore(), notifier),
	)
	seeded, err := blocklistUC.Seed(context.Background(), cfg.BlockList)
	if err != nil {
		return nil, fmt.Errorf("seed block list: %w", err)
	}
	if len(seeded.Rejected) > 0 {
		logger.Warn("ignored blank block list entries", zap.Int("count", len(seeded.Rejected)))
	}

	ctrl := focusservice.NewController(clk, id.UUID{}, notifier, recorder, domain.NewSessionClock(cfg.TickInterval))
	if err := ctrl.SetDuration(cfg.Duration); err != nil {
		return nil, fmt.Errorf("configured duration: %w", err)
	}
	focusUC := focususecase.NewInteractor(ctrl, blocklistUC, focusoutadapter.NewMarkdownExporter(cfg.ExportDir, clk))

	flags, err := onboardingoutadapter.NewSQLiteFlagStore(cfg.DBPath, clk)
	if err != nil {
		return nil, fmt.Errorf("new flag store: %w", err)
	}
	app := &App{
		Config:        cfg,
		Logger:        logger,
		Registry:      registry,
		Toasts:        toasts,
		Focus:         focusUC,
		FocusTUI:      focusinadapter.NewTUIHandler(focusUC),
		BlockListCLI:  blocklistinadapter.NewCLIHandler(blocklistUC),
		OnboardingCLI: onboardinginadapter.NewCLIHandler(onboardingusecase.NewInteractor(flags, cfg.ToggleKey)),
	}
	if closer, ok := flags.(io.Closer); ok {
		app.closers = append(app.closers, closer)
	}

	logger.Info("timeaify ready",
		zap.String("data_dir", cfg.DataDir),
		zap.Int("duration_minutes", cfg.Duration),
		zap.String("toggle_key", cfg.ToggleKey),
		zap.Int("blocked_items", len(seeded.Added)),
	)
	return app, nil
}

// ServeMetrics exposes the registry until ctx is cancelled. It does nothing
// unless a metrics address is configured.
func (a *App) ServeMetrics(ctx context.Context) {
	if a.Config.MetricsAddr == "" {
		return
	}
	go func() {
		if err := metrics.Serve(ctx, a.Config.MetricsAddr, a.Registry); err != nil {
			a.Logger.Error("metrics server stopped", zap.Error(err))
		}
	}()
}

// Runner hosts a headless session that writes progress to out.
func (a *App) Runner(out io.Writer) focusinadapter.Runner {
	return focusinadapter.NewRunner(a.Focus, out, nil)
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	_ = a.Logger.Sync()
	return errors.Join(errs...)
}

func RunTUI(ctx context.Context, app *App) error {
	trigger := components.NewTrigger(app.Config.ToggleKey, app.FocusTUI)
	trigger.Attach()
	defer trigger.Detach()

	model := uiapp.NewModel(app.FocusTUI, app.BlockListCLI, app.OnboardingCLI, trigger, app.Toasts, app.Config.ToggleKey)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
