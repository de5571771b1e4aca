package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/abjp/driver-payroll/consts"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Payroll  PayrollConfig
	Cron     CronConfig
}

// DatabaseConfig holds the gorm connection settings.
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Name     string
	Password string
	Path     string
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Port      string
	UploadDir string `mapstructure:"upload_dir"`
}

// PayrollConfig holds the advance calculation parameters.
type PayrollConfig struct {
	AdvancePercent float64 `mapstructure:"advance_percent"`
	FlatFee        float64 `mapstructure:"flat_fee"`
}

// CronConfig holds scheduler settings.
type CronConfig struct {
	FormCheckIntervalSec int `mapstructure:"form_check_interval_sec"`
	BackupHour           int `mapstructure:"backup_hour"`
	Workers              int
}

// DSN builds the gorm open arguments for the configured driver.
func (d DatabaseConfig) DSN() (dialect, args string) {
	if d.Driver == "sqlite3" {
		return "sqlite3", d.Path
	}
	return "postgres", fmt.Sprintf(
		"host=%s port=%s user=%s dbname=%s sslmode=disable password=%s",
		d.Host, d.Port, d.User, d.Name, d.Password)
}

// Load reads configuration from file and env. Env var overrides use prefix PAYROLL_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "payroll")
	v.SetDefault("database.name", "payroll")
	v.SetDefault("database.password", "")
	v.SetDefault("database.path", "payroll.db")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.upload_dir", "uploads")
	v.SetDefault("payroll.advance_percent", 0.60)
	v.SetDefault("payroll.flat_fee", 0.35)
	v.SetDefault("cron.form_check_interval_sec", consts.DefaultFormCheckIntervalSec)
	v.SetDefault("cron.backup_hour", consts.DefaultBackupHour)
	v.SetDefault("cron.workers", consts.DefaultWorkerNumber)

	v.SetConfigType("toml")
	v.SetConfigName("payroll")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/driver-payroll")

	v.SetEnvPrefix("PAYROLL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
