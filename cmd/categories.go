package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// categoriesCmd represents the categories command
var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"list"},
	Short:   "List available hashtag categories",
	Long: `Displays every category found in the data directory together with the
number of distinct hashtags it holds. The reserved fixture category is hidden.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get app from context: %w", err)
		}

		out := cmd.OutOrStdout()
		categories := appInstance.Catalog.Categories()
		if len(categories) == 0 {
			fmt.Fprintf(out, "No categories found in %s.\n", appInstance.Catalog.DataDir())
			return nil
		}

		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Category", "Hashtags", "File"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, name := range categories {
			count := color.RedString("unreadable")
			if hashtags, err := appInstance.Catalog.HashtagsForCategory(name); err == nil {
				count = strconv.Itoa(len(hashtags))
			} else {
				appInstance.Logger.WithError(err).WithField("category", name).Warn("cannot count hashtags")
			}
			table.Append([]string{name, count, appInstance.Catalog.CategoryPath(name)})
		}
		table.Render()
		fmt.Fprintf(out, "Displayed %d categories.\n", len(categories))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
