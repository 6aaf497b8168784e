/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ssargent/contamprj/pkg/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the prjtool REST API server over the record archive.

Examples:
  prjtool serve
  prjtool serve --port 9000 --bind 0.0.0.0 --api-key mysecretkey`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := settingsFrom(cmd)
		cfg := s.config

		if f := cmd.Flags().Lookup("port"); f.Changed {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}
		if f := cmd.Flags().Lookup("bind"); f.Changed {
			cfg.Bind, _ = cmd.Flags().GetString("bind")
		}
		if f := cmd.Flags().Lookup("api-key"); f.Changed {
			cfg.Security.APIKey, _ = cmd.Flags().GetString("api-key")
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		archive, err := openArchive(cmd)
		if err != nil {
			return err
		}
		defer archive.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return container.GetServerStarter()(ctx, archive, api.ServerConfig{
			Addr:    cfg.Addr(),
			APIKey:  cfg.Security.APIKey,
			Lenient: cfg.Decode.Lenient,
		}, s.logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind")
	serveCmd.Flags().String("api-key", "", "Require this X-API-Key on API requests")
}
