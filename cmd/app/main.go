package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/focusclock/internal/config"
	"github.com/akyairhashvil/focusclock/internal/database"
	"github.com/akyairhashvil/focusclock/internal/notify"
	"github.com/akyairhashvil/focusclock/internal/presets"
	"github.com/akyairhashvil/focusclock/internal/settings"
	"github.com/akyairhashvil/focusclock/internal/timer"
	"github.com/akyairhashvil/focusclock/internal/tui"
	"github.com/akyairhashvil/focusclock/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNoTerminal = errors.New("the timer needs an interactive terminal; use a subcommand for scripting")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	dataDir    string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Focus and break interval timer",
		Long: `focusclock runs focus and break sessions in the terminal. A running
session survives restarts: it keeps counting while the app is closed.`,
		Version:       tui.VersionLabel(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimer(cmd.Context(), opts)
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/focusclock/config.yaml)")
	flags.StringVar(&opts.dataDir, "data-dir", "", "directory holding the database and log")
	flags.BoolVar(&opts.debug, "debug", false, "write debug output to the log")

	cmd.AddCommand(newPresetsCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newSessionCmd(opts))
	return cmd
}

func (o *rootOptions) resolvedConfigPath() string {
	if o.configPath != "" {
		return util.ExpandHome(o.configPath)
	}
	return filepath.Join(util.ConfigDir(config.AppName), config.ConfigFile)
}

// load reads the config file and prepares the data directory. The --data-dir
// flag wins over the file.
func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.Load(o.resolvedConfigPath(), util.DataDir(config.AppName))
	if err != nil {
		return nil, err
	}
	return o.prepare(cfg)
}

// defaults is load without reading the config file.
func (o *rootOptions) defaults() (*config.Config, error) {
	return o.prepare(config.DefaultConfig(util.DataDir(config.AppName)))
}

func (o *rootOptions) prepare(cfg *config.Config) (*config.Config, error) {
	if o.dataDir != "" {
		cfg.DataDir = util.ExpandHome(o.dataDir)
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	util.SetDebug(o.debug)
	return cfg, nil
}

type app struct {
	db        *database.Database
	presets   *presets.Store
	settings  *settings.Store
	snapshots *timer.SnapshotStore
}

func openApp(ctx context.Context, cfg *config.Config) (*app, error) {
	db, err := database.Open(ctx, cfg.DBPath())
	if err != nil {
		return nil, err
	}
	return &app{
		db:        db,
		presets:   presets.NewStore(db),
		settings:  settings.NewStore(db),
		snapshots: timer.NewSnapshotStore(db),
	}, nil
}

func (a *app) Close() {
	util.LogError("close database", a.db.Close())
}

// withApp opens the stores for a one-shot subcommand.
func withApp(ctx context.Context, opts *rootOptions, fn func(*app) error) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	a, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	a.presets.Load(ctx)
	return fn(a)
}

func runTimer(ctx context.Context, opts *rootOptions) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	logFile, err := tea.LogToFile(cfg.LogPath(), config.AppName)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	if !tui.SetTheme(cfg.Theme) {
		log.Printf("unknown theme %q, using default", cfg.Theme)
	}

	a, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	scheduler := notify.NewScheduler(nil)
	prefs := a.settings.Load(ctx)
	engine := timer.New(prefs.DefaultCustomDuration(), prefs.DefaultCustomIsBreak, scheduler, notify.NewTerminal(os.Stderr))

	model := tui.NewModel(ctx, tui.Deps{
		Engine:       engine,
		Presets:      a.presets,
		Settings:     a.settings,
		Snapshots:    a.snapshots,
		BreakSeconds: cfg.BreakSeconds(),
		TickInterval: cfg.TickInterval,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	scheduler.SetHandler(func(alert notify.Alert) {
		p.Send(tui.AlertMsg(alert))
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run timer: %w", err)
	}
	return nil
}
