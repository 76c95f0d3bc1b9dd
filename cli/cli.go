package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	actx "go.hackfix.me/envbridge/app/context"
	"go.hackfix.me/envbridge/bridge"
)

// CLI is the command line interface of envbridge.
type CLI struct {
	Get      Get      `kong:"cmd,help='Print the value of an environment variable.'"`
	Set      Set      `kong:"cmd,help='Set an environment variable, and optionally run a command with it.'"`
	Verify   Verify   `kong:"cmd,help='Verify that ADSP_LIBRARY_PATH is set.'"`
	Diagnose Diagnose `kong:"cmd,help='Print environment variables relevant to native library loading.'"`
	ADSP     ADSP     `kong:"cmd,name='adsp',help='Manage ADSP_LIBRARY_PATH.'"`

	Log struct {
		Level  slog.Level `enum:"DEBUG,INFO,WARN,ERROR" default:"INFO" help:"Set the app logging level."`
		Logcat bool       `help:"Write logs to the Android system log instead of stderr."`
	} `embed:"" prefix:"log-"`
	ConfigFile string           `kong:"default='${configFile}',help='Path to the envbridge configuration file.'"`
	Version    kong.VersionFlag `kong:"help='Output version and exit.'"`

	kong *kong.Kong
	kctx *kong.Context
}

// New initializes the command-line interface.
func New(configFilePath, version string) (*CLI, error) {
	c := &CLI{}
	kparser, err := kong.New(c,
		kong.Name("envbridge"),
		kong.Description("Inspect and modify the process environment seen by native libraries."),
		kong.UsageOnError(),
		kong.DefaultEnvars("ENVBRIDGE"),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			Summary:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"configFile": configFilePath,
			"version":    version,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed creating the Kong parser: %w", err)
	}

	c.kong = kparser

	return c, nil
}

// Execute starts the command execution. Parse must be called before this method.
func (c *CLI) Execute(appCtx *actx.Context, b *bridge.Bridge) error {
	if c.kctx == nil {
		panic("the CLI wasn't initialized properly")
	}
	c.kong.Stdout = appCtx.Stdout
	c.kong.Stderr = appCtx.Stderr

	//nolint:wrapcheck // This is fine.
	return c.kctx.Run(appCtx, b)
}

// Parse the given command line arguments. This method must be called before
// Execute.
func (c *CLI) Parse(args []string) error {
	kctx, err := c.kong.Parse(args)
	if err != nil {
		return fmt.Errorf("failed parsing CLI arguments: %w", err)
	}
	c.kctx = kctx

	return nil
}

// Command returns the full path of the executed command.
func (c *CLI) Command() string {
	if c.kctx == nil {
		panic("the CLI wasn't initialized properly")
	}
	cmdPath := []string{}
	for _, p := range c.kctx.Path {
		if p.Command != nil {
			cmdPath = append(cmdPath, p.Command.Name)
		}
	}

	return strings.Join(cmdPath, " ")
}
