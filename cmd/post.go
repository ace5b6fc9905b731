package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"hashtagset/internal/clix"
)

var postJSON bool

// postCmd represents the post command
var postCmd = &cobra.Command{
	Use:   "post [category...]",
	Short: "Build a hashtag string for a post",
	Long: `Blends the hashtags of the given categories, picks up to --max of them at
random and prints them as one space-separated line ready to paste.

Categories may be given as arguments, comma-separated, or with --categories.`,
	Example: `  hashtagset post nature travel
  hashtagset post --categories nature,travel --max 10 --seed 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := clix.ParseCategories(cmd.Flags(), args)
		if err != nil {
			return err
		}
		maxCount, err := clix.ParseMaxCount(cmd.Flags())
		if err != nil {
			return err
		}

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		appInstance.Logger.Debugf("Building post: categories=%v, max=%d", categories, maxCount)

		post, err := appInstance.Catalog.BuildPost(categories, maxCount)
		if err != nil {
			return fmt.Errorf("failed to build post: %w", err)
		}

		out := cmd.OutOrStdout()
		if postJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(post)
		}
		fmt.Fprintln(out, post.String)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(postCmd)

	postCmd.Flags().StringP("categories", "c", "", "Comma-separated list of categories to blend")
	postCmd.Flags().IntP("max", "m", 30, "Maximum number of hashtags (overrides max_hashtags)")
	postCmd.Flags().Int64("seed", 0, "Seed for the shuffle, for repeatable output (overrides seed)")
	postCmd.Flags().BoolVar(&postJSON, "json", false, "Print the selection as JSON")
}
