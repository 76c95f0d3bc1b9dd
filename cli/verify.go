package cli

import (
	"fmt"

	actx "go.hackfix.me/envbridge/app/context"
	aerrors "go.hackfix.me/envbridge/app/errors"
	"go.hackfix.me/envbridge/bridge"
)

// Verify checks whether ADSP_LIBRARY_PATH is set.
type Verify struct {
	Comprehensive bool `help:"Compare the Go runtime environment with the native one, and print a summary."`
}

// Run the verify command.
func (c *Verify) Run(appCtx *actx.Context, b *bridge.Bridge) error {
	if !c.Comprehensive {
		if !b.VerifyKnownPathVariable() {
			return aerrors.NewRuntimeError(fmt.Sprintf("%s is not set", bridge.KnownPathVariable), nil, "")
		}
		return nil
	}

	h, err := newADSPHelper(appCtx, b, "", "")
	if err != nil {
		return err
	}

	v := h.Verify(appCtx.RuntimeEnv)
	if _, err = fmt.Fprintln(appCtx.Stdout, v); err != nil {
		return aerrors.NewRuntimeError("failed writing to stdout", err, "")
	}

	if !v.FullyVerified() {
		return aerrors.NewRuntimeError(fmt.Sprintf("%s is not fully verified", bridge.KnownPathVariable), nil, "")
	}

	return nil
}
