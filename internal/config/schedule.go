package config

import "errors"

// DefaultCron runs a full sync every six hours.
const DefaultCron = "0 */6 * * *"

// ScheduleConfig holds settings for the cron scheduler.
type ScheduleConfig struct {
	// Cron is the schedule expression for periodic syncs.
	Cron string `yaml:"cron"`
}

// Validate validates the schedule configuration.
func (c *ScheduleConfig) Validate() error {
	if c.Cron == "" {
		return errors.New("cron expression is required")
	}
	return nil
}
