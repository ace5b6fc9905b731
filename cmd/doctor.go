package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hashtagset/internal/util"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the data directory and every category file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}

		out := cmd.OutOrStdout()
		cat := appInstance.Catalog
		fmt.Fprintf(out, "Data directory: %s\n", cat.DataDir())

		var failed int
		names := cat.Categories()
		if reserved := cat.ReservedName(); reserved != "" {
			if _, err := os.Stat(cat.CategoryPath(reserved)); err == nil {
				names = append(names, reserved)
			}
		}
		for _, name := range names {
			path := cat.CategoryPath(name)
			if binary, err := util.IsLikelyBinary(path); err == nil && binary {
				failed++
				fmt.Fprintf(out, "  - %s %s: looks like a binary file\n", color.RedString("ERROR"), name)
				continue
			}
			hashtags, err := cat.HashtagsForCategory(name)
			if err != nil {
				failed++
				fmt.Fprintf(out, "  - %s %s: %v\n", color.RedString("ERROR"), name, err)
				continue
			}
			if len(hashtags) == 0 {
				fmt.Fprintf(out, "  - %s %s: no hashtags\n", color.YellowString("WARN"), name)
				continue
			}
			fmt.Fprintf(out, "  - %s %s: %d hashtags\n", color.GreenString("OK"), name, len(hashtags))
		}

		fmt.Fprintf(out, "\nChecked %d categories: %d failed\n", len(names), failed)
		if failed > 0 {
			return errors.New("some category files could not be read")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
