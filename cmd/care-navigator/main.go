// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the care-navigator server.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/care-navigator/internal/config"
	"github.com/pdiddy/care-navigator/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the care-navigator server.
var rootCmd = &cobra.Command{
	Use:   "care-navigator",
	Short: "Health-support web service for cancer patients and their families",
	Long: `care-navigator serves a health-support API: a hospital locator,
biomedical literature lookup, a clinical trial finder, per-session
scratch-lists (medications, journal, appointments), a symptom triage
table, and fixed-context question answering.

Every outbound provider endpoint is configuration; point the pipelines
at equivalent providers through care-navigator.yaml or environment
variables prefixed CARE_NAVIGATOR.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./care-navigator.yaml or ~/.config/care-navigator/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("care-navigator")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "care-navigator"))
		}
	}

	viper.SetEnvPrefix("CARE_NAVIGATOR")
	viper.AutomaticEnv()
	config.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
