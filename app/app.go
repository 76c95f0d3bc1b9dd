package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mandelsoft/vfs/pkg/memoryfs"

	"go.hackfix.me/envbridge/app/config"
	actx "go.hackfix.me/envbridge/app/context"
	"go.hackfix.me/envbridge/bridge"
	"go.hackfix.me/envbridge/cli"
	"go.hackfix.me/envbridge/env"
	"go.hackfix.me/envbridge/logcat"
)

// App is the application.
type App struct {
	name string
	ctx  *actx.Context
	cli  *cli.CLI
	// the logging level is set via the CLI, if the app was initialized with the
	// WithLogger option.
	logLevel *slog.LevelVar
}

// New initializes a new application.
func New(name, configFilePath string, opts ...Option) (*App, error) {
	defaultCtx := &actx.Context{
		Ctx:     context.Background(),
		FS:      memoryfs.New(),
		Env:     env.NewMemory(nil),
		Logger:  slog.Default(),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Version: actx.GetVersion(),
	}
	app := &App{name: name, ctx: defaultCtx}

	for _, opt := range opts {
		opt(app)
	}

	if app.ctx.RuntimeEnv == nil {
		app.ctx.RuntimeEnv = app.ctx.Env
	}

	ver := fmt.Sprintf("%s %s", app.name, app.ctx.Version.String())
	var err error
	app.cli, err = cli.New(configFilePath, ver)
	if err != nil {
		return nil, err
	}

	return app, nil
}

// Run initializes the application environment and starts execution of the
// application.
func (app *App) Run(args []string) error {
	if err := app.cli.Parse(args); err != nil {
		return err
	}

	if app.logLevel != nil {
		app.logLevel.Set(app.cli.Log.Level)
		slog.SetLogLoggerLevel(app.cli.Log.Level)
	}

	cfg := config.NewConfig(app.ctx.FS, app.cli.ConfigFile)
	if err := cfg.Load(); err != nil {
		return err
	}
	cfg.SetDefaults()
	app.ctx.Config = cfg

	if app.cli.Log.Logcat {
		lcOpts := &logcat.Options{Write: logcat.PlatformWriter(app.ctx.Stderr)}
		if app.logLevel != nil {
			lcOpts.Level = app.logLevel
		}
		app.ctx.Logger = slog.New(logcat.NewHandler(cfg.Log.Tag.V, lcOpts))
	}

	b, err := bridge.New(app.ctx.Env, bridge.WithLogger(app.ctx.Logger))
	if err != nil {
		return fmt.Errorf("failed creating the environment bridge: %w", err)
	}

	return app.cli.Execute(app.ctx, b)
}
