/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ssargent/contamprj/pkg/config"
	"github.com/ssargent/contamprj/pkg/di"
)

var container *di.Container

// SetContainer injects the dependency container used by the commands
func SetContainer(c *di.Container) {
	container = c
}

type settingsKey struct{}

// settings is what PersistentPreRunE resolves for every command
type settings struct {
	config     *config.Config
	configPath string
	logger     *slog.Logger
}

func settingsFrom(cmd *cobra.Command) *settings {
	s, _ := cmd.Context().Value(settingsKey{}).(*settings)
	return s
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "prjtool",
	Short: "prjtool - CONTAM project file records",
	Long: `prjtool reads, checks and rewrites the record sections of CONTAM
PRJ project files, and archives decoded records for the REST API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		cfg := config.DefaultConfig()
		if config.ConfigExists(configPath) {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		if f := cmd.Flags().Lookup("data-dir"); f != nil && f.Changed {
			cfg.DataDir = f.Value.String()
		}
		if f := cmd.Flags().Lookup("lenient"); f != nil && f.Changed {
			cfg.Decode.Lenient, _ = cmd.Flags().GetBool("lenient")
		}
		if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
			cfg.Logging.Level = f.Value.String()
		}

		level, err := cfg.Logging.SlogLevel()
		if err != nil {
			return err
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(context.WithValue(ctx, settingsKey{}, &settings{
			config:     cfg,
			configPath: configPath,
			logger:     logger,
		}))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default ~/.config/prjtool/config.yaml)")
	rootCmd.PersistentFlags().StringP("data-dir", "d", "./data", "Data directory for the archive")
	rootCmd.PersistentFlags().Bool("lenient", false, "Keep going past malformed numeric fields")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

func openArchive(cmd *cobra.Command) (di.Archive, error) {
	s := settingsFrom(cmd)
	if container == nil {
		return nil, fmt.Errorf("dependency container not initialized")
	}
	if err := os.MkdirAll(s.config.DataDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return container.GetArchiveOpener()(s.config.DataDir, decodeOptions(s))
}
