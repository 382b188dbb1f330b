// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mailguard-live/mailguard-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
}

// DatabaseConfig holds PostgreSQL database connection details. An empty Host
// selects the in-memory message store instead of Postgres.
type DatabaseConfig struct {
	Host     string `mapstructure:"HOST" yaml:"host"`
	Port     int    `mapstructure:"PORT" yaml:"port"`
	User     string `mapstructure:"USER" yaml:"user"`
	Password string `mapstructure:"PASSWORD" yaml:"password"`
	Name     string `mapstructure:"NAME" yaml:"name"`
	SSLMode  string `mapstructure:"SSL_MODE" yaml:"ssl_mode"`
}

// Configured reports whether a Postgres database has been configured.
func (c *DatabaseConfig) Configured() bool {
	return c.Host != ""
}

// URL returns a postgres:// connection URL suitable for pgxpool and golang-migrate.
func (c *DatabaseConfig) URL() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.Name,
		sslmode,
	)
}

// MailConfig holds the SMTP transport settings for the feedback relay.
// An empty Host disables the relay entirely: every send call succeeds
// trivially without making network contact.
type MailConfig struct {
	Host   string `mapstructure:"HOST" yaml:"host"`
	Port   int    `mapstructure:"PORT" yaml:"port"`
	Secure bool   `mapstructure:"SECURE" yaml:"secure"`
	User   string `mapstructure:"USER" yaml:"user"`
	Pass   string `mapstructure:"PASS" yaml:"pass"`
	To     string `mapstructure:"TO" yaml:"to"`
	From   string `mapstructure:"FROM" yaml:"from"`
}

// Enabled reports whether an SMTP host has been configured.
func (c *MailConfig) Enabled() bool {
	return c.Host != ""
}

// Config aggregates all application configuration sections.
type Config struct {
	Server   ServerConfig   `mapstructure:"SERVER" yaml:"server"`
	Database DatabaseConfig `mapstructure:"DATABASE" yaml:"database"`
	Mail     MailConfig     `mapstructure:"MAIL" yaml:"mail"`
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// sets default values, binds environment variables to config struct fields,
// unmarshals the configuration, and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("DATABASE.HOST", "")
	v.SetDefault("DATABASE.PORT", 5432)
	v.SetDefault("DATABASE.USER", "postgres")
	v.SetDefault("DATABASE.PASSWORD", "")
	v.SetDefault("DATABASE.NAME", "mailguard")
	v.SetDefault("DATABASE.SSL_MODE", "disable")
	v.SetDefault("MAIL.HOST", "")
	v.SetDefault("MAIL.PORT", 587)
	v.SetDefault("MAIL.SECURE", false)
	v.SetDefault("MAIL.USER", "")
	v.SetDefault("MAIL.PASS", "")
	v.SetDefault("MAIL.TO", "info@mailguard.live")
	v.SetDefault("MAIL.FROM", "info@mailguard.live")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		// Server config
		{"SERVER.ENVIRONMENT", "ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		// Database config
		{"DATABASE.HOST", "DB_HOST"},
		{"DATABASE.PORT", "DB_PORT"},
		{"DATABASE.USER", "DB_USER"},
		{"DATABASE.PASSWORD", "DB_PASSWORD"},
		{"DATABASE.NAME", "DB_NAME"},
		{"DATABASE.SSL_MODE", "DB_SSL_MODE"},
		// Mail relay config
		{"MAIL.HOST", "MAIL_HOST"},
		{"MAIL.PORT", "MAIL_PORT"},
		{"MAIL.SECURE", "MAIL_SECURE"},
		{"MAIL.USER", "MAIL_USER"},
		{"MAIL.PASS", "MAIL_PASS"},
		{"MAIL.TO", "MAIL_TO"},
		{"MAIL.FROM", "MAIL_FROM"},
	}
	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"database_configured", cfg.Database.Configured(),
		"mail_relay_enabled", cfg.Mail.Enabled(),
	)

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	switch cfg.Server.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("invalid environment: %s", cfg.Server.Environment)
	}
	if cfg.Mail.Enabled() && (cfg.Mail.Port <= 0 || cfg.Mail.Port > 65535) {
		return fmt.Errorf("invalid mail port: %d", cfg.Mail.Port)
	}
	return nil
}
