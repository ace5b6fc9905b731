package clix

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("post", pflag.ContinueOnError)
	flags.String("categories", "", "")
	flags.Int("max", 30, "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList(" a, ,b ,"))
	assert.Nil(t, SplitList(""))
}

func TestParseCategories(t *testing.T) {
	flags := newFlags(t, "--categories", "travel, food")
	got, err := ParseCategories(flags, []string{"nature", "city,beach"})
	require.NoError(t, err)
	assert.Equal(t, []string{"nature", "city", "beach", "travel", "food"}, got)

	_, err = ParseCategories(newFlags(t), nil)
	assert.Error(t, err)
}

func TestParseMaxCount(t *testing.T) {
	n, err := ParseMaxCount(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = ParseMaxCount(newFlags(t, "--max", "5"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = ParseMaxCount(newFlags(t, "--max", "0"))
	assert.Error(t, err)
}
