package fileutil_test

import (
	"errors"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/gocred/internal/fileutil"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("out", 0o750))

	require.NoError(t, fileutil.WriteFile(fs, "out/data.bin", []byte("payload")))

	got, err := afero.ReadFile(fs, "out/data.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)

	info, err := fs.Stat("out/data.bin")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	size, err := fileutil.Size(fs, "out/data.bin")
	require.NoError(t, err)
	assert.EqualValues(t, 7, size)

	entries, err := afero.ReadDir(fs, "out")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestWriteFileOverwrites(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	require.NoError(t, fileutil.WriteFile(fs, "data.bin", []byte("first")))
	require.NoError(t, fileutil.WriteFile(fs, "data.bin", []byte("second")))

	got, err := afero.ReadFile(fs, "data.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

// failingRename lets temp file creation succeed and the final rename fail.
type failingRename struct {
	afero.Fs
}

func (failingRename) Rename(string, string) error {
	return errors.New("rename refused")
}

func TestWriteFileCleansUpOnError(t *testing.T) {
	t.Parallel()

	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("out", 0o750))

	err := fileutil.WriteFile(failingRename{mem}, "out/data.bin", []byte("payload"))
	require.Error(t, err)

	entries, err := afero.ReadDir(mem, "out")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteFileReadOnly(t *testing.T) {
	t.Parallel()

	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	require.Error(t, fileutil.WriteFile(fs, "data.bin", []byte("payload")))
}
