package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"

	"go.hackfix.me/envbridge/adsp"
	actx "go.hackfix.me/envbridge/app/context"
	aerrors "go.hackfix.me/envbridge/app/errors"
	"go.hackfix.me/envbridge/bridge"
)

// ADSP manages ADSP_LIBRARY_PATH.
type ADSP struct {
	FilesDir         string `help:"Directory the library path is persisted to. Overrides the configuration file."`
	ExternalFilesDir string `help:"Additional directory a copy of the persisted path is written to. Requires a files directory. Overrides the configuration file."`

	Set struct {
		Dir string `arg:"" help:"Native library directory."`
	} `kong:"cmd,help='Set ADSP_LIBRARY_PATH, and persist it if a files directory is configured.'"`
	Get struct{} `kong:"cmd,help='Print ADSP_LIBRARY_PATH, falling back to the persisted value.'"`
}

// Run the adsp command.
func (c *ADSP) Run(kctx *kong.Context, appCtx *actx.Context, b *bridge.Bridge) error {
	h, err := newADSPHelper(appCtx, b, c.FilesDir, c.ExternalFilesDir)
	if err != nil {
		return err
	}

	// e.g. "adsp set <dir>"
	switch strings.Fields(kctx.Command())[1] {
	case "get":
		path := h.LibraryPath()
		if !path.Valid {
			return aerrors.NewRuntimeError(fmt.Sprintf("%s is not set", bridge.KnownPathVariable), nil, "")
		}
		if _, err = fmt.Fprintln(appCtx.Stdout, path.V); err != nil {
			return aerrors.NewRuntimeError("failed writing to stdout", err, "")
		}
	case "set":
		if err = h.SetLibraryPath(c.Set.Dir); err != nil {
			return aerrors.NewRuntimeError(fmt.Sprintf("failed setting %s", bridge.KnownPathVariable), err, "")
		}
	}

	return nil
}

// newADSPHelper creates an adsp.Helper, persisting to filesDir and
// extFilesDir if they're set, or to the configured directories otherwise.
func newADSPHelper(appCtx *actx.Context, b *bridge.Bridge, filesDir, extFilesDir string) (*adsp.Helper, error) {
	if cfg := appCtx.Config; cfg != nil {
		if filesDir == "" && cfg.ADSP.FilesDir.Valid {
			filesDir = cfg.ADSP.FilesDir.V
		}
		if extFilesDir == "" && cfg.ADSP.ExternalFilesDir.Valid {
			extFilesDir = cfg.ADSP.ExternalFilesDir.V
		}
	}

	opts := []adsp.Option{adsp.WithLogger(appCtx.Logger)}
	if filesDir != "" {
		opts = append(opts, adsp.WithFilesDir(appCtx.FS, filesDir))
	}
	if extFilesDir != "" {
		opts = append(opts, adsp.WithExternalFilesDir(extFilesDir))
	}

	h, err := adsp.NewHelper(b, opts...)
	if err != nil {
		return nil, aerrors.NewRuntimeError("failed creating the ADSP helper", err, "")
	}

	return h, nil
}
