// Package config loads runtime settings for the CLI and server from
// the environment and an optional .env file. Scheduling constants live
// in the scheduler package, not here.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env  string
	Port int
	Log  LogConfig
	Data DataConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type DataConfig struct {
	// Dir is where the server stores uploaded input files.
	Dir string
	// Delimiter separates CSV columns in all input files.
	Delimiter string
	// Branches is the enumerated branch set of the institution.
	Branches []string
}

// Load reads TIMETABLE_* environment variables, falling back to a
// local .env file and built-in defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("timetable")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", EnvDevelopment)
	v.SetDefault("port", 3001)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("data.dir", "./data")
	v.SetDefault("data.delimiter", ",")
	v.SetDefault("data.branches", "cse,ece,aids")

	cfg := &Config{
		Env:  v.GetString("env"),
		Port: v.GetInt("port"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Data: DataConfig{
			Dir:       v.GetString("data.dir"),
			Delimiter: v.GetString("data.delimiter"),
			Branches:  splitList(v.GetString("data.branches")),
		},
	}
	return cfg, nil
}

// DelimiterRune returns the configured CSV delimiter, defaulting to a
// comma on bad input.
func (c *Config) DelimiterRune() rune {
	if c.Data.Delimiter == "" {
		return ','
	}
	return []rune(c.Data.Delimiter)[0]
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}
