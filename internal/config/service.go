package config

import "time"

type JWTConfig struct {
	Secret          string        `mapstructure:"secret"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`
}

type PokeAPIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RateLimitConfig holds one limit per endpoint category.
type RateLimitConfig struct {
	Register LimitConfig `mapstructure:"register"`
	Login    LimitConfig `mapstructure:"login"`
	Pokedex  LimitConfig `mapstructure:"pokedex"`
	Search   LimitConfig `mapstructure:"search"`
	Detail   LimitConfig `mapstructure:"detail"`
	Card     LimitConfig `mapstructure:"card"`
}

type LimitConfig struct {
	Max    int           `mapstructure:"max"`
	Window time.Duration `mapstructure:"window"`
}
