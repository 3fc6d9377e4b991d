package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration for the pokedex service.
type Config struct {
	Service   ServiceConfig   `mapstructure:"service"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	PokeAPI   PokeAPIConfig   `mapstructure:"pokeapi"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServiceConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// LoadConfig reads the YAML config file (CONFIG_PATH or ./configs/pokedex.yaml)
// and applies POKEDEX_-prefixed environment overrides.
func LoadConfig() (*Config, error) {
	v := viper.New()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/pokedex.yaml"
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("POKEDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service.name", "pokedex")
	v.SetDefault("service.environment", "development")

	v.SetDefault("server.http.host", "0.0.0.0")
	v.SetDefault("server.http.port", 8000)

	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.conn_max_idle_time", "5m")

	v.SetDefault("jwt.access_token_ttl", "24h")
	v.SetDefault("jwt.refresh_token_ttl", "168h")

	v.SetDefault("pokeapi.base_url", "https://pokeapi.co/api/v2")
	v.SetDefault("pokeapi.timeout", "5s")

	v.SetDefault("rate_limit.register.max", 5)
	v.SetDefault("rate_limit.register.window", "1h")
	v.SetDefault("rate_limit.login.max", 10)
	v.SetDefault("rate_limit.login.window", "1m")
	v.SetDefault("rate_limit.pokedex.max", 100)
	v.SetDefault("rate_limit.pokedex.window", "1m")
	v.SetDefault("rate_limit.search.max", 30)
	v.SetDefault("rate_limit.search.window", "1m")
	v.SetDefault("rate_limit.detail.max", 30)
	v.SetDefault("rate_limit.detail.window", "1m")
	v.SetDefault("rate_limit.card.max", 10)
	v.SetDefault("rate_limit.card.window", "1m")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")
}
