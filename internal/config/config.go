// Package config loads the daemon configuration from the environment,
// optionally layered over a YAML file.
package config

import "github.com/ilyakaznacheev/cleanenv"

// Config holds all atelier-stored settings.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host string `yaml:"host" env:"ATELIER_HOST" env-default:"0.0.0.0"`
	Port int    `yaml:"port" env:"ATELIER_PORT" env-default:"7090"`
}

// DBConfig holds sqlite settings.
type DBConfig struct {
	Path string `yaml:"path" env:"ATELIER_DB" env-default:"./atelier.db"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"ATELIER_LOG_LEVEL" env-default:"info"`
}

// Load reads the configuration. When path is empty only the environment
// is consulted.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
