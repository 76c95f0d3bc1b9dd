package cli

import (
	actx "go.hackfix.me/envbridge/app/context"
	aerrors "go.hackfix.me/envbridge/app/errors"
	"go.hackfix.me/envbridge/bridge"
)

// Diagnose logs the diagnostic report, and renders it as a table on stdout.
type Diagnose struct{}

// Run the diagnose command.
func (c *Diagnose) Run(appCtx *actx.Context, b *bridge.Bridge) error {
	b.PrintDiagnostics()

	if err := renderReport(b.Diagnose(), appCtx.Stdout); err != nil {
		return aerrors.NewRuntimeError("failed rendering table", err, "")
	}

	return nil
}
