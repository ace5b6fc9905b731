package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [category]",
	Short: "Print the hashtags of one category",
	Long: `Prints the normalized, de-duplicated hashtags of a category, one per line.
The reserved fixture category can be shown even though it is not listed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := strings.TrimSpace(args[0])

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		hashtags, err := appInstance.Catalog.HashtagsForCategory(category)
		if err != nil {
			return fmt.Errorf("failed to load category %q: %w", category, err)
		}

		out := cmd.OutOrStdout()
		for _, tag := range hashtags {
			fmt.Fprintln(out, tag)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
