/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/contamprj/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a default prjtool configuration.

Examples:
  prjtool init
  prjtool init --config ./prjtool.yaml --data-dir ./archive --with-api-key`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := settingsFrom(cmd)
		withAPIKey, _ := cmd.Flags().GetBool("with-api-key")
		force, _ := cmd.Flags().GetBool("force")

		if config.ConfigExists(s.configPath) && !force {
			cmd.Printf("Config already exists at %s. Use --force to overwrite.\n", s.configPath)
			return nil
		}

		cfg, err := config.BootstrapConfig(s.configPath, s.config.DataDir, withAPIKey)
		if err != nil {
			return err
		}
		cfg.Decode = s.config.Decode
		if err := config.SaveConfig(cfg, s.configPath); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		cmd.Printf("Config written to %s\n", s.configPath)
		cmd.Printf("Data directory: %s\n", cfg.DataDir)
		if cfg.Security.APIKey != "" {
			cmd.Printf("API key: %s\n", cfg.Security.APIKey)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("with-api-key", false, "Generate an API key for the REST API")
	initCmd.Flags().Bool("force", false, "Overwrite an existing config")
}
