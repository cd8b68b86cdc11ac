package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/piwi3910/BarCut/internal/model"
	"github.com/piwi3910/BarCut/internal/project"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage default settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, path, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = project.DefaultConfigPath()
		}
		if _, err := os.Stat(path); err == nil && !configInitForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := project.SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting. Keys: std-length, trim, kerf, max-time-ms,
tuning, min-offcut, inventory.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig()
		if err != nil {
			return err
		}
		if err := setConfigValue(&cfg, args[0], args[1]); err != nil {
			return err
		}
		if err := project.SaveAppConfig(path, cfg); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
}

func setConfigValue(cfg *model.AppConfig, key, value string) error {
	if key == "inventory" {
		cfg.InventoryPath = value
		return nil
	}

	switch key {
	case "tuning":
		n, err := strconv.Atoi(value)
		if err != nil || n != model.ClampTuningLevel(n) {
			return fmt.Errorf("tuning must be 0, 1 or 2")
		}
		cfg.DefaultTuningLevel = n
		return nil
	case "max-time-ms":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n < 0 || n > model.MaxTimeLimit.Milliseconds() {
			return fmt.Errorf("max-time-ms must be between 0 and %d", model.MaxTimeLimit.Milliseconds())
		}
		cfg.DefaultMaxTimeMs = n
		return nil
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("invalid value %q for %s", value, key)
	}
	switch key {
	case "std-length":
		cfg.DefaultStdLength = v
	case "trim":
		cfg.DefaultTrimSize = v
	case "kerf":
		cfg.DefaultSawKerf = v
	case "min-offcut":
		cfg.MinOffcutLength = v
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
