package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setViperDefaults seeds the global Viper state the way cmd.Execute
// does before building a Config. Tests share that global, so none of
// them run in parallel.
func setViperDefaults(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("app.name", "storesync")
	viper.Set("app.environment", "test")
	viper.Set("database.host", "localhost")
	viper.Set("database.port", "5432")
	viper.Set("database.user", "storesync")
	viper.Set("database.name", "storesync")
	viper.Set("database.sslmode", "disable")
	viper.Set("logger.level", "info")
	viper.Set("scrape.request_timeout", "30s")
	viper.Set("scrape.request_delay", "500ms")
	viper.Set("scrape.user_agent", DefaultUserAgent)
	viper.Set("sync.max_concurrency", DefaultMaxConcurrency)
	viper.Set("sync.order_by", DefaultOrderBy)
	viper.Set("schedule.cron", DefaultCron)
}

func TestNew(t *testing.T) {
	setViperDefaults(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "storesync", cfg.GetAppConfig().Name)
	assert.Equal(t, "localhost", cfg.GetDatabaseConfig().Host)
	assert.Equal(t, 30*time.Second, cfg.GetScrapeConfig().RequestTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.GetScrapeConfig().RequestDelay)
	assert.Equal(t, DefaultMaxConcurrency, cfg.GetSyncConfig().MaxConcurrency)
	assert.Equal(t, "new", cfg.GetSyncConfig().OrderBy)
	assert.Equal(t, DefaultCron, cfg.GetScheduleConfig().Cron)
	assert.False(t, cfg.GetSyncConfig().RefreshCategories)
	assert.False(t, cfg.GetSyncConfig().DeactivateMissing)
}

func TestNew_InvalidDatabase(t *testing.T) {
	setViperDefaults(t)
	viper.Set("database.host", "")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database")
}

func TestNew_InvalidConcurrency(t *testing.T) {
	setViperDefaults(t)
	viper.Set("sync.max_concurrency", 0)

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync")
}

func TestDatabaseConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := &DatabaseConfig{Host: "localhost", DBName: "storesync"}
	require.NoError(t, cfg.Validate())

	require.Error(t, (&DatabaseConfig{DBName: "storesync"}).Validate())
	require.Error(t, (&DatabaseConfig{Host: "localhost"}).Validate())
}

func TestScrapeConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := &ScrapeConfig{RequestTimeout: time.Second}
	require.NoError(t, cfg.Validate())

	require.Error(t, (&ScrapeConfig{}).Validate())
	require.Error(t, (&ScrapeConfig{RequestTimeout: time.Second, RequestDelay: -time.Second}).Validate())
}

func TestScheduleConfig_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, (&ScheduleConfig{Cron: DefaultCron}).Validate())
	require.Error(t, (&ScheduleConfig{}).Validate())
}
