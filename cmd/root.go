package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hashtagset/internal/app"
	"hashtagset/internal/config"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

var (
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "hashtagset",
	Short: "Build hashtag strings for social-media posts",
	Long: `hashtagset picks hashtags from curated category files (one <category>.txt
per category, one hashtag per line), samples up to the platform limit and prints
a ready-to-paste string.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is given, print help.
		cmd.Help()
	},
	// PersistentPreRunE runs before any subcommand's RunE
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.LoadConfig(configFile, cmd.Flags())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		appInstance, err := app.NewApp(cfg, app.Options{LogOutput: cmd.ErrOrStderr(), Verbose: verbose})
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(context.WithValue(ctx, appKey, appInstance))
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Define a custom type for the context key to avoid collisions.
type contextKey string

const appKey contextKey = "app"

// GetAppFromContext retrieves the app instance stored by PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "hashtagset %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default ./config.yaml or ~/.config/hashtagset/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "Directory holding <category>.txt files (overrides data_dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd)
}
