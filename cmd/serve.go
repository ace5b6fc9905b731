package cmd

import (
	"fmt"
	"net"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"hashtagset/internal/apihandlers"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run hashtagset as an HTTP API server",
	Long: `Starts an HTTP server exposing the catalog via a small JSON API:

  GET /api/v1/categories
  GET /api/v1/categories/:name
  GET /api/v1/post?categories=a,b&max=N
  GET /health`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		if !verbose {
			gin.SetMode(gin.ReleaseMode)
		}
		router := apihandlers.NewRouter(apihandlers.NewAPIHandler(appInstance))

		listenAddr := net.JoinHostPort(appInstance.Config.Server.Addr, appInstance.Config.Server.Port)
		appInstance.Logger.Infof("Starting hashtagset API server on http://%s", listenAddr)

		// router.Run blocks unless an error occurs
		if err := router.Run(listenAddr); err != nil {
			appInstance.Logger.WithError(err).Error("Failed to run API server")
			return fmt.Errorf("failed to run API server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "localhost", "Address to listen on (e.g., '0.0.0.0' for all interfaces)")
	serveCmd.Flags().String("port", "8080", "Port to listen on")
}
