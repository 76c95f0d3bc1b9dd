package config

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/mandelsoft/vfs/pkg/vfs"
)

// DefaultLogTag is the tag log lines are written under when none is configured.
const DefaultLogTag = "NativeHelper"

// Config represents the application configuration, backed by a filesystem for
// persistence.
type Config struct {
	Log  Log
	ADSP ADSP

	fs   vfs.FileSystem
	path string
}

// NewConfig creates a new Config instance with the specified filesystem
// and configuration file path.
func NewConfig(fs vfs.FileSystem, path string) *Config {
	return &Config{fs: fs, path: path}
}

// Load reads and parses the configuration file from the filesystem.
// If the file doesn't exist, it initializes with an empty configuration.
func (c *Config) Load() error {
	configJSON, err := vfs.ReadFile(c.fs, c.path)
	if err != nil && !vfs.IsErrNotExist(err) {
		return fmt.Errorf("failed reading configuration file: %w", err)
	}

	// Ensure that unmarshalling JSON doesn't fail if the file doesn't exist, or
	// only holds whitespace.
	if len(bytes.TrimSpace(configJSON)) == 0 {
		configJSON = []byte("{}")
	}

	if err = json.Unmarshal(configJSON, c); err != nil {
		return fmt.Errorf("failed parsing configuration file: %w", err)
	}

	return nil
}

// Path returns the filesystem path where the configuration is stored.
func (c *Config) Path() string {
	return c.path
}

// Save writes the current configuration to the filesystem as JSON.
func (c *Config) Save() error {
	if err := c.fs.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed creating configuration directory: %w", err)
	}
	configJSON, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed serializing configuration data: %w", err)
	}
	if err = vfs.WriteFile(c.fs, c.path, configJSON, 0o644); err != nil {
		return fmt.Errorf("failed writing configuration file: %w", err)
	}

	return nil
}

// Log defines logging options.
type Log struct {
	// Tag is the tag every log line is written under. On Android this is the
	// logcat tag.
	Tag sql.Null[string] `json:"tag"`
}

// ADSP defines options of the ADSP library path helper.
type ADSP struct {
	// FilesDir is the directory the resolved ADSP_LIBRARY_PATH value is
	// persisted to, so that native code can read it back. If unset, the value
	// is only stored in the process environment.
	FilesDir sql.Null[string] `json:"files_dir"`
	// ExternalFilesDir is an additional directory a copy of the value is
	// written to, e.g. the application's directory on shared storage.
	ExternalFilesDir sql.Null[string] `json:"external_files_dir"`
}

type cfgWrapper struct {
	Log  logCfgWrapper  `json:"log"`
	ADSP adspCfgWrapper `json:"adsp"`
}
type logCfgWrapper struct {
	Tag string `json:"tag,omitempty"`
}
type adspCfgWrapper struct {
	FilesDir         string `json:"files_dir,omitempty"`
	ExternalFilesDir string `json:"external_files_dir,omitempty"`
}

// MarshalJSON implements custom JSON marshaling to convert sql.Null values
// to their underlying types, omitting invalid/null fields from the output.
func (c Config) MarshalJSON() ([]byte, error) {
	w := cfgWrapper{}

	if c.Log.Tag.Valid {
		w.Log.Tag = c.Log.Tag.V
	}
	if c.ADSP.FilesDir.Valid {
		w.ADSP.FilesDir = c.ADSP.FilesDir.V
	}
	if c.ADSP.ExternalFilesDir.Valid {
		w.ADSP.ExternalFilesDir = c.ADSP.ExternalFilesDir.V
	}

	//nolint:wrapcheck // This is fine.
	return json.Marshal(w)
}

// UnmarshalJSON implements custom JSON unmarshaling to convert plain values
// into sql.Null types.
func (c *Config) UnmarshalJSON(data []byte) error {
	var w cfgWrapper
	if err := json.Unmarshal(data, &w); err != nil {
		//nolint:wrapcheck // This is fine.
		return err
	}

	if w.Log.Tag != "" {
		c.Log.Tag = sql.Null[string]{V: w.Log.Tag, Valid: true}
	}
	if w.ADSP.FilesDir != "" {
		if !filepath.IsAbs(w.ADSP.FilesDir) {
			return fmt.Errorf("ADSP files directory must be an absolute path: '%s'", w.ADSP.FilesDir)
		}
		c.ADSP.FilesDir = sql.Null[string]{V: filepath.Clean(w.ADSP.FilesDir), Valid: true}
	}
	if w.ADSP.ExternalFilesDir != "" {
		if !filepath.IsAbs(w.ADSP.ExternalFilesDir) {
			return fmt.Errorf("ADSP external files directory must be an absolute path: '%s'", w.ADSP.ExternalFilesDir)
		}
		c.ADSP.ExternalFilesDir = sql.Null[string]{V: filepath.Clean(w.ADSP.ExternalFilesDir), Valid: true}
	}

	return nil
}

// SetDefaults sets default configuration values if they weren't set already.
func (c *Config) SetDefaults() {
	if !c.Log.Tag.Valid {
		c.Log.Tag = sql.Null[string]{V: DefaultLogTag, Valid: true}
	}
}
