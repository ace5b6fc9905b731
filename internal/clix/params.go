package clix

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// SplitList splits a comma-separated value, trimming space and dropping
// empty entries.
func SplitList(raw string) []string {
	var items []string
	for _, t := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(t)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// ParseCategories merges positional arguments with the --categories flag,
// keeping the order they were given in.
func ParseCategories(flags *pflag.FlagSet, args []string) ([]string, error) {
	var categories []string
	for _, a := range args {
		categories = append(categories, SplitList(a)...)
	}
	if raw, err := flags.GetString("categories"); err == nil && raw != "" {
		categories = append(categories, SplitList(raw)...)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("at least one category is required")
	}
	return categories, nil
}

// ParseMaxCount returns the --max flag, or 0 (catalog default) when unset.
func ParseMaxCount(flags *pflag.FlagSet) (int, error) {
	f := flags.Lookup("max")
	if f == nil || !f.Changed {
		return 0, nil
	}
	limit, err := flags.GetInt("max")
	if err != nil {
		return 0, err
	}
	if limit <= 0 {
		return 0, fmt.Errorf("--max must be positive, got %d", limit)
	}
	return limit, nil
}
