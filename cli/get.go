package cli

import (
	"errors"
	"fmt"

	actx "go.hackfix.me/envbridge/app/context"
	aerrors "go.hackfix.me/envbridge/app/errors"
	"go.hackfix.me/envbridge/bridge"
)

// Get prints the value of an environment variable.
type Get struct {
	Name string `arg:"" help:"Variable name."`
}

// Run the get command.
func (c *Get) Run(appCtx *actx.Context, b *bridge.Bridge) error {
	val, err := b.Get(c.Name)
	if err != nil {
		if errors.Is(err, bridge.ErrNotFound) {
			return aerrors.NewRuntimeError(fmt.Sprintf("environment variable '%s' is not set", c.Name), nil, "")
		}
		return aerrors.NewRuntimeError("failed reading environment variable", err, "")
	}

	if _, err = fmt.Fprintln(appCtx.Stdout, val); err != nil {
		return aerrors.NewRuntimeError("failed writing to stdout", err, "")
	}

	return nil
}
