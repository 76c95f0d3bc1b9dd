package cli

import (
	"fmt"
	"os"
	"os/exec"

	actx "go.hackfix.me/envbridge/app/context"
	aerrors "go.hackfix.me/envbridge/app/errors"
	"go.hackfix.me/envbridge/bridge"
)

// Set sets an environment variable. Since the change is only visible to this
// process and its children, an optional command can be given, which is run
// with the new value.
type Set struct {
	Name    string   `arg:"" help:"Variable name."`
	Value   string   `arg:"" help:"Variable value. An existing value is replaced."`
	Command []string `arg:"" optional:"" help:"Command to run with the variable set, given after '--'."`
}

// Run the set command.
func (c *Set) Run(appCtx *actx.Context, b *bridge.Bridge) error {
	if err := b.Set(c.Name, c.Value); err != nil {
		return aerrors.NewRuntimeError(
			fmt.Sprintf("failed setting environment variable '%s'", c.Name), err,
			"Variable names must be non-empty, and can't contain '=' or NUL characters.",
		)
	}

	if len(c.Command) == 0 {
		return nil
	}

	//nolint:gosec // Running a user-provided command is the point.
	cmd := exec.CommandContext(appCtx.Ctx, c.Command[0], c.Command[1:]...)
	// The configured environment may not be the process one, so pass the
	// value explicitly. Later entries take precedence.
	cmd.Env = append(os.Environ(), fmt.Sprintf("%s=%s", c.Name, c.Value))
	cmd.Stdin = appCtx.Stdin
	cmd.Stdout = appCtx.Stdout
	cmd.Stderr = appCtx.Stderr

	appCtx.Logger.Debug("running command", "command", c.Command)
	if err := cmd.Run(); err != nil {
		return aerrors.NewRuntimeError(fmt.Sprintf("failed running command '%s'", c.Command[0]), err, "")
	}

	return nil
}
