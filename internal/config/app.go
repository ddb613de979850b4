package config

// AppConfig holds application-level settings.
type AppConfig struct {
	// Name is the application name used in logs and tables.
	Name string `yaml:"name"`
	// Environment is the deployment environment (development, production).
	Environment string `yaml:"environment"`
	// Debug enables debug mode.
	Debug bool `yaml:"debug"`
}
