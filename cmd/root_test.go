package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hashtagset/internal/catalog"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"nature.txt": "sunset\nsunset\n@wildlife\n",
		"travel.txt": "sunset\nadventure\n",
		"test.txt":   "fixture\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPostCommand(t *testing.T) {
	dir := writeDataDir(t)

	out, err := run(t, "post", "--data-dir", dir, "nature", "travel")
	require.NoError(t, err)
	line := strings.TrimSuffix(out, "\n")
	assert.ElementsMatch(t, []string{"#sunset", "@wildlife", "#adventure"}, strings.Fields(line))
	assert.True(t, strings.HasSuffix(line, " "))
}

func TestPostCommand_MaxAndSeed(t *testing.T) {
	dir := writeDataDir(t)

	first, err := run(t, "post", "--data-dir", dir, "-c", "nature,travel", "--max", "2", "--seed", "9")
	require.NoError(t, err)
	second, err := run(t, "post", "--data-dir", dir, "-c", "nature,travel", "--max", "2", "--seed", "9")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.LessOrEqual(t, len(strings.Fields(first)), 2)
}

func TestPostCommand_JSON(t *testing.T) {
	dir := writeDataDir(t)

	out, err := run(t, "post", "--data-dir", dir, "--json", "nature")
	require.NoError(t, err)
	var post catalog.Post
	require.NoError(t, json.Unmarshal([]byte(out), &post))
	assert.ElementsMatch(t, []string{"#sunset", "@wildlife"}, post.Hashtags)
}

func TestPostCommand_Errors(t *testing.T) {
	dir := writeDataDir(t)

	_, err := run(t, "post", "--data-dir", dir, "nature", "nope")
	assert.ErrorIs(t, err, catalog.ErrCategoryNotFound)

	_, err = run(t, "post", "--data-dir", dir)
	assert.Error(t, err)

	_, err = run(t, "post", "--data-dir", filepath.Join(dir, "missing"), "nature")
	assert.ErrorIs(t, err, catalog.ErrInvalidDirectory)
}

func TestCategoriesCommand(t *testing.T) {
	dir := writeDataDir(t)

	out, err := run(t, "categories", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "nature")
	assert.Contains(t, out, "travel")
	assert.NotContains(t, out, "test.txt")
	assert.Contains(t, out, "Displayed 2 categories.")
}

func TestShowCommand_ReservedCategory(t *testing.T) {
	dir := writeDataDir(t)

	out, err := run(t, "show", "--data-dir", dir, "test")
	require.NoError(t, err)
	assert.Equal(t, "#fixture\n", out)

	out, err = run(t, "show", "--data-dir", dir, "nature")
	require.NoError(t, err)
	assert.Equal(t, "#sunset\n@wildlife\n", out)
}

func TestDoctorCommand(t *testing.T) {
	dir := writeDataDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.txt"), []byte("\n"), 0o644))

	out, err := run(t, "doctor", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "nature: 2 hashtags")
	assert.Contains(t, out, "empty: no hashtags")
	assert.Contains(t, out, "Checked 4 categories: 0 failed")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bin.txt"), []byte{'a', 0, 'b'}, 0o644))
	out, err = run(t, "doctor", "--data-dir", dir)
	assert.Error(t, err)
	assert.Contains(t, out, "bin: looks like a binary file")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "hashtagset dev\n", out)
}
