package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanFileContent(t *testing.T) {
	got, err := CleanFileContent([]byte("\xEF\xBB\xBFsunset\n beach\u2019s\n"), "summer.txt")
	require.NoError(t, err)
	assert.Equal(t, "sunset\n beach\u2019s\n", got)
}

func TestCleanFileContent_KeepsValidCharacters(t *testing.T) {
	in := "sun\u00a0set\nrock\u2013n\u2013roll\n\u201cquoted\u201d\n"
	got, err := CleanFileContent([]byte(in), "music.txt")
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestCleanFileContent_InvalidUTF8(t *testing.T) {
	got, err := CleanFileContent([]byte("caf\xe9\n"), "food.txt")
	require.NoError(t, err)
	assert.Equal(t, "caf\uFFFD\n", got)
}

func TestIsLikelyBinary(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "text.txt")
	bin := filepath.Join(dir, "bin.txt")
	require.NoError(t, os.WriteFile(text, []byte("sunset\n"), 0o644))
	require.NoError(t, os.WriteFile(bin, []byte{'a', 0, 'b'}, 0o644))
	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))

	got, err := IsLikelyBinary(text)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = IsLikelyBinary(bin)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = IsLikelyBinary(empty)
	require.NoError(t, err)
	assert.False(t, got)

	_, err = IsLikelyBinary(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
