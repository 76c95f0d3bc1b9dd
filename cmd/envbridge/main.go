package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/adrg/xdg"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"go.hackfix.me/envbridge/app"
	aerrors "go.hackfix.me/envbridge/app/errors"
	"go.hackfix.me/envbridge/env"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	a, err := app.New("envbridge",
		filepath.Join(xdg.ConfigHome, "envbridge", "config.json"),
		app.WithContext(ctx),
		app.WithEnv(env.Native{}),
		app.WithRuntimeEnv(env.OS{}),
		app.WithFDs(
			os.Stdin,
			colorable.NewColorable(os.Stdout),
			colorable.NewColorable(os.Stderr),
		),
		app.WithFS(osfs.New()),
		app.WithLogger(
			isatty.IsTerminal(os.Stdout.Fd()),
			isatty.IsTerminal(os.Stderr.Fd()),
		),
	)
	if err != nil {
		cancel()
		aerrors.Errorf(err)
		os.Exit(1)
	}

	err = a.Run(os.Args[1:])
	cancel()
	if err != nil {
		aerrors.Errorf(err)
		os.Exit(1)
	}
}
