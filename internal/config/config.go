// Package config provides configuration management for storesync.
// It exposes typed accessors over values loaded from the YAML config
// file and environment variables via Viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jonesrussell/storesync/internal/logger"
)

// Interface defines the interface for configuration management.
type Interface interface {
	// GetAppConfig returns the application configuration.
	GetAppConfig() *AppConfig
	// GetLoggerConfig returns the logger configuration.
	GetLoggerConfig() *logger.Config
	// GetDatabaseConfig returns the database configuration.
	GetDatabaseConfig() *DatabaseConfig
	// GetScrapeConfig returns the scrape configuration.
	GetScrapeConfig() *ScrapeConfig
	// GetSyncConfig returns the sync configuration.
	GetSyncConfig() *SyncConfig
	// GetScheduleConfig returns the schedule configuration.
	GetScheduleConfig() *ScheduleConfig
	// Validate validates the configuration.
	Validate() error
}

// Ensure Config implements Interface
var _ Interface = (*Config)(nil)

// Config represents the application configuration.
type Config struct {
	App      *AppConfig      `yaml:"app"`
	Logger   *logger.Config  `yaml:"logger"`
	Database *DatabaseConfig `yaml:"database"`
	Scrape   *ScrapeConfig   `yaml:"scrape"`
	Sync     *SyncConfig     `yaml:"sync"`
	Schedule *ScheduleConfig `yaml:"schedule"`
}

// New builds a Config from the global Viper state. Defaults must have
// been registered before calling (see cmd.Execute).
func New() (*Config, error) {
	cfg := &Config{
		App: &AppConfig{
			Name:        viper.GetString("app.name"),
			Environment: viper.GetString("app.environment"),
			Debug:       viper.GetBool("app.debug"),
		},
		Logger: &logger.Config{
			Level:       logger.Level(viper.GetString("logger.level")),
			Development: viper.GetBool("logger.development"),
			Encoding:    viper.GetString("logger.encoding"),
		},
		Database: &DatabaseConfig{
			Host:     viper.GetString("database.host"),
			Port:     viper.GetString("database.port"),
			User:     viper.GetString("database.user"),
			Password: viper.GetString("database.password"),
			DBName:   viper.GetString("database.name"),
			SSLMode:  viper.GetString("database.sslmode"),
		},
		Scrape: &ScrapeConfig{
			RequestTimeout: viper.GetDuration("scrape.request_timeout"),
			RequestDelay:   viper.GetDuration("scrape.request_delay"),
			UserAgent:      viper.GetString("scrape.user_agent"),
		},
		Sync: &SyncConfig{
			MaxConcurrency:    viper.GetInt("sync.max_concurrency"),
			RefreshCategories: viper.GetBool("sync.refresh_categories"),
			DeactivateMissing: viper.GetBool("sync.deactivate_missing"),
			OrderBy:           viper.GetString("sync.order_by"),
		},
		Schedule: &ScheduleConfig{
			Cron: viper.GetString("schedule.cron"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetAppConfig returns the application configuration.
func (c *Config) GetAppConfig() *AppConfig { return c.App }

// GetLoggerConfig returns the logger configuration.
func (c *Config) GetLoggerConfig() *logger.Config { return c.Logger }

// GetDatabaseConfig returns the database configuration.
func (c *Config) GetDatabaseConfig() *DatabaseConfig { return c.Database }

// GetScrapeConfig returns the scrape configuration.
func (c *Config) GetScrapeConfig() *ScrapeConfig { return c.Scrape }

// GetSyncConfig returns the sync configuration.
func (c *Config) GetSyncConfig() *SyncConfig { return c.Sync }

// GetScheduleConfig returns the schedule configuration.
func (c *Config) GetScheduleConfig() *ScheduleConfig { return c.Schedule }

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Scrape.Validate(); err != nil {
		return fmt.Errorf("scrape: %w", err)
	}
	if err := c.Sync.Validate(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	if err := c.Schedule.Validate(); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	return nil
}
