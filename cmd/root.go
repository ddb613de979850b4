// Package cmd implements the command-line interface for storesync.
// It provides the root command and subcommands for running catalog
// syncs and managing store configuration.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cmdcategories "github.com/jonesrussell/storesync/cmd/categories"
	cmdscheduler "github.com/jonesrussell/storesync/cmd/scheduler"
	cmdstores "github.com/jonesrussell/storesync/cmd/stores"
	cmdsync "github.com/jonesrussell/storesync/cmd/sync"
	"github.com/jonesrussell/storesync/internal/config"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// Debug enables debug mode for all commands
	Debug bool

	// rootCmd represents the root command for the storesync CLI.
	rootCmd = &cobra.Command{
		Use:   "storesync",
		Short: "Harvest product catalogs from e-commerce storefronts",
		Long: `storesync scrapes product catalogs from independently hosted
storefronts and normalizes them into a shared relational schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command
func Execute() error {
	// Load .env file early so environment variables are available
	_ = godotenv.Load()

	// Parse flags early to get debug flag before creating logger
	_ = rootCmd.ParseFlags(os.Args[1:])

	// Initialize configuration
	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	// Execute the root command with a fresh context
	return rootCmd.ExecuteContext(context.Background())
}

// init initializes the root command and its subcommands.
func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml or ./config/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug mode")

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("storesync version %s\n", "1.0.0")
		},
	})

	// Add subcommands
	rootCmd.AddCommand(cmdsync.Command())
	rootCmd.AddCommand(cmdcategories.Command())
	rootCmd.AddCommand(cmdstores.Command())
	rootCmd.AddCommand(cmdscheduler.Command())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	// Set config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	// Enable automatic environment variable reading BEFORE setting defaults
	// so environment variables take precedence over defaults
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults (only used if environment variables or config file don't provide values)
	setDefaults()

	// Read config file
	// Config file is optional: values can come from file, environment, or defaults
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Config file not found: %v (using defaults and environment variables)\n", err)
	}

	// Bind command-line flags to Viper
	if err := viper.BindPFlag("app.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("failed to bind debug flag: %w", err)
	}

	// Map environment variables to config keys
	if err := bindEnvVars(); err != nil {
		return err
	}

	setupDevelopmentLogging()

	return nil
}

// bindEnvVars binds well-known environment variables to config keys.
func bindEnvVars() error {
	bindings := map[string][]string{
		"app.environment":   {"APP_ENV"},
		"app.debug":         {"APP_DEBUG"},
		"logger.level":      {"LOG_LEVEL"},
		"logger.encoding":   {"LOG_FORMAT"},
		"database.host":     {"DB_HOST"},
		"database.port":     {"DB_PORT"},
		"database.user":     {"DB_USER"},
		"database.password": {"DB_PASSWORD"},
		"database.name":     {"DB_NAME"},
		"database.sslmode":  {"DB_SSLMODE"},
	}

	for key, envs := range bindings {
		args := append([]string{key}, envs...)
		if err := viper.BindEnv(args...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	return nil
}

// setupDevelopmentLogging configures development logging settings based on environment and debug flag.
func setupDevelopmentLogging() {
	debugFlag := Debug || viper.GetBool("app.debug")
	isDev := viper.GetString("app.environment") == "development"

	if debugFlag {
		viper.Set("logger.level", "debug")
	}

	if isDev {
		viper.Set("logger.development", true)
		viper.Set("logger.encoding", "console")
	}

	Debug = debugFlag
}

// setDefaults sets default configuration values
func setDefaults() {
	// App defaults - production safe
	viper.SetDefault("app", map[string]any{
		"name":        "storesync",
		"environment": "production",
		"debug":       false,
	})

	// Logger defaults - production safe
	viper.SetDefault("logger", map[string]any{
		"level":       "info",
		"development": false,
		"encoding":    "json",
	})

	// Database defaults
	viper.SetDefault("database", map[string]any{
		"host":    "127.0.0.1",
		"port":    "5432",
		"user":    "storesync",
		"name":    "storesync",
		"sslmode": "disable",
	})

	// Scrape defaults
	viper.SetDefault("scrape", map[string]any{
		"request_timeout": config.DefaultRequestTimeout.String(),
		"request_delay":   config.DefaultRequestDelay.String(),
		"user_agent":      config.DefaultUserAgent,
	})

	// Sync defaults
	viper.SetDefault("sync", map[string]any{
		"max_concurrency":    config.DefaultMaxConcurrency,
		"refresh_categories": false,
		"deactivate_missing": false,
		"order_by":           config.DefaultOrderBy,
	})

	// Schedule defaults
	viper.SetDefault("schedule", map[string]any{
		"cron": config.DefaultCron,
	})
}
