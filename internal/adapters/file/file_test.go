package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageTemp(t *testing.T) {
	tests := []struct {
		name     string
		content  []byte
		wantSize int64
	}{
		{
			name:     "success",
			content:  []byte("test\n"),
			wantSize: 5,
		},
		{
			name:     "empty file",
			content:  []byte(""),
			wantSize: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()

			path, err := StageTemp(dir, tc.content)
			require.NoError(t, err)

			assert.Equal(t, dir, filepath.Dir(path))

			stat, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSize, stat.Size())
		})
	}
}

func TestPromoteReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	final := filepath.Join(dir, "out.png")
	require.NoError(t, os.WriteFile(final, []byte("old"), 0o644))

	tmp, err := StageTemp(dir, []byte("new"))
	require.NoError(t, err)

	require.NoError(t, Promote(tmp, final))

	content, err := os.ReadFile(final)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), content)

	_, err = os.Stat(tmp)
	assert.True(t, os.IsNotExist(err))
}

func TestPromoteFailsOnMissingTemp(t *testing.T) {
	dir := t.TempDir()

	err := Promote(filepath.Join(dir, "missing.tmp"), filepath.Join(dir, "out.png"))

	require.Error(t, err)
}

func TestDiscard(t *testing.T) {
	dir := t.TempDir()

	path, err := StageTemp(dir, []byte("test"))
	require.NoError(t, err)

	Discard(path)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
