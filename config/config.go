package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// DefaultTokenSecret is the fallback signing secret used when no secret is
// configured. It lets the API boot in local environments and is a known
// security gap: production deployments must override both token secrets or
// every credential the API issues is trivially forgeable.
const DefaultTokenSecret = "secret-key"

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"server"`
	Database struct {
		Host           string `mapstructure:"host"`
		Port           string `mapstructure:"port"`
		User           string `mapstructure:"user"`
		Password       string `mapstructure:"password"`
		Name           string `mapstructure:"name"`
		MigrationsPath string `mapstructure:"migrations_path"`
	} `mapstructure:"database"`
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	JWT struct {
		AccessSecret     string `mapstructure:"access_secret"`
		RefreshSecret    string `mapstructure:"refresh_secret"`
		AccessTTLMinutes int    `mapstructure:"access_ttl_minutes"`
		RefreshTTLDays   int    `mapstructure:"refresh_ttl_days"`
	} `mapstructure:"jwt"`
	AWS struct {
		Region          string `mapstructure:"region"`
		Bucket          string `mapstructure:"bucket"`
		AccessKeyID     string `mapstructure:"access_key_id"`
		SecretAccessKey string `mapstructure:"secret_access_key"`
	} `mapstructure:"aws"`
}

// AccessTTL returns the configured access-token lifetime.
func (c *Config) AccessTTL() time.Duration {
	return time.Duration(c.JWT.AccessTTLMinutes) * time.Minute
}

// RefreshTTL returns the configured refresh-token lifetime.
func (c *Config) RefreshTTL() time.Duration {
	return time.Duration(c.JWT.RefreshTTLDays) * 24 * time.Hour
}

// IsProduction reports whether the server runs with production settings.
// Cookie security attributes depend on this.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.AutomaticEnv()

	// Weak fallback secrets, see DefaultTokenSecret. The access and refresh
	// secrets must stay distinct even in the fallback case.
	viper.SetDefault("jwt.access_secret", DefaultTokenSecret)
	viper.SetDefault("jwt.refresh_secret", DefaultTokenSecret+"-refresh")
	viper.SetDefault("jwt.access_ttl_minutes", 30)
	viper.SetDefault("jwt.refresh_ttl_days", 14)
	viper.SetDefault("server.port", "4000")
	viper.SetDefault("server.env", "development")
	viper.SetDefault("database.migrations_path", "db/migrations")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
