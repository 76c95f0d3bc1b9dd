package adsp_test

import (
	"database/sql"
	"errors"
	"log/slog"
	"testing"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.hackfix.me/envbridge/adsp"
	aerrors "go.hackfix.me/envbridge/app/errors"
	"go.hackfix.me/envbridge/bridge"
	"go.hackfix.me/envbridge/env"
)

const libDir = "/data/app/com.edgeai.chatappv2/lib/arm64"

func newTestHelper(t *testing.T, fs vfs.FileSystem, extraOpts ...adsp.Option) (*adsp.Helper, *env.Memory) {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	menv := env.NewMemory(nil)
	b, err := bridge.New(menv, bridge.WithLogger(logger))
	require.NoError(t, err)

	opts := []adsp.Option{adsp.WithLogger(logger)}
	if fs != nil {
		opts = append(opts, adsp.WithFilesDir(fs, "/data/files"))
	}
	opts = append(opts, extraOpts...)
	h, err := adsp.NewHelper(b, opts...)
	require.NoError(t, err)

	return h, menv
}

func TestNewHelper(t *testing.T) {
	t.Parallel()

	h, err := adsp.NewHelper(nil)
	assert.ErrorContains(t, err, "bridge is required")
	assert.Nil(t, h)

	b, err := bridge.New(env.NewMemory(nil))
	require.NoError(t, err)

	h, err = adsp.NewHelper(b, adsp.WithFilesDir(memoryfs.New(), "files"))
	assert.ErrorContains(t, err, "files directory must be an absolute path")
	assert.Nil(t, h)

	var serr *aerrors.StructuredError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, map[string]any{"dir": "files"}, serr.Metadata())

	h, err = adsp.NewHelper(b, adsp.WithFilesDir(nil, "/files"))
	assert.ErrorContains(t, err, "filesystem is required")
	assert.Nil(t, h)

	h, err = adsp.NewHelper(b, adsp.WithLogger(nil))
	assert.ErrorContains(t, err, "logger is required")
	assert.Nil(t, h)

	h, err = adsp.NewHelper(b, adsp.WithExternalFilesDir("/sdcard/files"))
	assert.ErrorContains(t, err, "external files directory requires a files directory")
	assert.Nil(t, h)

	h, err = adsp.NewHelper(b,
		adsp.WithFilesDir(memoryfs.New(), "/data/files"),
		adsp.WithExternalFilesDir("sdcard"))
	assert.ErrorContains(t, err, "external files directory must be an absolute path")
	assert.Nil(t, h)
}

func TestSetLibraryPath(t *testing.T) {
	t.Parallel()

	t.Run("ok/with_files_dir", func(t *testing.T) {
		t.Parallel()

		fs := memoryfs.New()
		h, menv := newTestHelper(t, fs)

		require.NoError(t, h.SetLibraryPath(libDir))

		val, ok := menv.Lookup(bridge.KnownPathVariable)
		assert.True(t, ok)
		assert.Equal(t, libDir, val)

		data, err := vfs.ReadFile(fs, "/data/files/"+adsp.PathFileName)
		require.NoError(t, err)
		assert.Equal(t, libDir, string(data))
	})

	t.Run("ok/with_external_files_dir", func(t *testing.T) {
		t.Parallel()

		fs := memoryfs.New()
		h, _ := newTestHelper(t, fs, adsp.WithExternalFilesDir("/sdcard/Android/data/files"))

		require.NoError(t, h.SetLibraryPath(libDir))

		for _, dir := range []string{"/data/files", "/sdcard/Android/data/files"} {
			data, err := vfs.ReadFile(fs, dir+"/"+adsp.PathFileName)
			require.NoError(t, err)
			assert.Equal(t, libDir, string(data))
		}
	})

	t.Run("ok/without_files_dir", func(t *testing.T) {
		t.Parallel()

		h, menv := newTestHelper(t, nil)
		require.NoError(t, h.SetLibraryPath(libDir))

		val, ok := menv.Lookup(bridge.KnownPathVariable)
		assert.True(t, ok)
		assert.Equal(t, libDir, val)
	})

	t.Run("err/empty_dir", func(t *testing.T) {
		t.Parallel()

		h, menv := newTestHelper(t, nil)
		err := h.SetLibraryPath("")
		assert.ErrorContains(t, err, "native library directory is required")
		assert.Equal(t, 0, menv.Len())
	})

	t.Run("err/invalid_value", func(t *testing.T) {
		t.Parallel()

		h, menv := newTestHelper(t, nil)
		err := h.SetLibraryPath("/data\x00/lib")
		assert.ErrorIs(t, err, bridge.ErrPrimitive)
		assert.Equal(t, 0, menv.Len())
	})

	t.Run("err/invalid_value_persisted", func(t *testing.T) {
		t.Parallel()

		fs := memoryfs.New()
		h, menv := newTestHelper(t, fs)
		err := h.SetLibraryPath("/data\x00/lib")
		assert.ErrorIs(t, err, bridge.ErrPrimitive)
		assert.Equal(t, 0, menv.Len())

		data, err := vfs.ReadFile(fs, "/data/files/"+adsp.PathFileName)
		require.NoError(t, err)
		assert.Equal(t, "/data\x00/lib", string(data))
	})
}

func TestLibraryPath(t *testing.T) {
	t.Parallel()

	t.Run("ok/from_env", func(t *testing.T) {
		t.Parallel()

		h, menv := newTestHelper(t, memoryfs.New())
		require.NoError(t, menv.Set(bridge.KnownPathVariable, libDir))
		assert.Equal(t, sql.Null[string]{V: libDir, Valid: true}, h.LibraryPath())
	})

	t.Run("ok/fallback_to_file", func(t *testing.T) {
		t.Parallel()

		fs := memoryfs.New()
		require.NoError(t, fs.MkdirAll("/data/files", 0o755))
		require.NoError(t, vfs.WriteFile(fs, "/data/files/"+adsp.PathFileName, []byte(libDir+"\n"), 0o644))

		h, _ := newTestHelper(t, fs)
		assert.Equal(t, sql.Null[string]{V: libDir, Valid: true}, h.LibraryPath())
	})

	t.Run("ok/empty_env_fallback_to_file", func(t *testing.T) {
		t.Parallel()

		fs := memoryfs.New()
		require.NoError(t, fs.MkdirAll("/data/files", 0o755))
		require.NoError(t, vfs.WriteFile(fs, "/data/files/"+adsp.PathFileName, []byte(libDir), 0o644))

		h, menv := newTestHelper(t, fs)
		require.NoError(t, menv.Set(bridge.KnownPathVariable, ""))
		assert.Equal(t, sql.Null[string]{V: libDir, Valid: true}, h.LibraryPath())
	})

	t.Run("ok/absent", func(t *testing.T) {
		t.Parallel()

		h, _ := newTestHelper(t, memoryfs.New())
		assert.False(t, h.LibraryPath().Valid)

		h, _ = newTestHelper(t, nil)
		assert.False(t, h.LibraryPath().Valid)
	})
}

func TestVerify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		runtimeEnv map[string]string
		nativeSet  bool
		expVerif   adsp.Verification
		expFull    bool
		expString  []string
	}{
		{
			name:       "ok/both",
			runtimeEnv: map[string]string{bridge.KnownPathVariable: libDir},
			nativeSet:  true,
			expVerif: adsp.Verification{
				FromRuntime: true, FromNative: true,
				Path: sql.Null[string]{V: libDir, Valid: true},
			},
			expFull:   true,
			expString: []string{"Runtime side: set", "Native side: set", "Path: " + libDir},
		},
		{
			name:      "ok/native_only",
			nativeSet: true,
			expVerif:  adsp.Verification{FromNative: true},
			expString: []string{"Runtime side: not set", "Native side: set", "Path: null"},
		},
		{
			name:       "ok/runtime_only",
			runtimeEnv: map[string]string{bridge.KnownPathVariable: libDir},
			expVerif: adsp.Verification{
				FromRuntime: true,
				Path:        sql.Null[string]{V: libDir, Valid: true},
			},
			expString: []string{"Runtime side: set", "Native side: not set"},
		},
		{
			name:      "ok/neither",
			expString: []string{"Runtime side: not set", "Native side: not set", "Path: null"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, menv := newTestHelper(t, nil)
			if tt.nativeSet {
				require.NoError(t, menv.Set(bridge.KnownPathVariable, libDir))
			}

			v := h.Verify(env.NewMemory(tt.runtimeEnv))
			assert.Equal(t, tt.expVerif, v)
			assert.Equal(t, tt.expFull, v.FullyVerified())
			for _, s := range tt.expString {
				assert.Contains(t, v.String(), s)
			}
		})
	}
}
