package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pitchbook/internal/schedule"
)

type Config struct {
	Server struct {
		Listen         string  `yaml:"listen"`
		RateLimitRPS   float64 `yaml:"rate_limit_rps"`
		RateLimitBurst int     `yaml:"rate_limit_burst"`
	} `yaml:"server"`

	Storage struct {
		Backend    string `yaml:"backend"` // file, sqlite, redis or memory
		Path       string `yaml:"path"`
		SQLitePath string `yaml:"sqlite_path"`
		Redis      struct {
			Address  string `yaml:"address"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"storage"`

	Schedule struct {
		OpenHour  int `yaml:"open_hour"`
		CloseHour int `yaml:"close_hour"`
		Courts    int `yaml:"courts"`
		DaysAhead int `yaml:"days_ahead"`
	} `yaml:"schedule"`

	Monitoring struct {
		HealthCheckPort   int  `yaml:"health_check_port"`
		PrometheusEnabled bool `yaml:"prometheus_enabled"`
		PrometheusPort    int  `yaml:"prometheus_port"`
	} `yaml:"monitoring"`
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = "configs/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Support ${ENV_VAR} placeholders in YAML config.
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	switch cfg.Storage.Backend {
	case "file":
		if err = os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
			return nil, err
		}
	case "sqlite":
		if err = os.MkdirAll(filepath.Dir(cfg.Storage.SQLitePath), 0o755); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = "127.0.0.1:8080"
	}
	if c.Server.RateLimitRPS <= 0 {
		c.Server.RateLimitRPS = 5
	}
	if c.Server.RateLimitBurst <= 0 {
		c.Server.RateLimitBurst = 10
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = "file"
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "data/bookings.json"
	}
	if c.Storage.SQLitePath == "" {
		c.Storage.SQLitePath = "data/pitchbook.db"
	}
	if c.Schedule.OpenHour == 0 {
		c.Schedule.OpenHour = schedule.DefaultWindow.OpenHour
	}
	if c.Schedule.CloseHour == 0 {
		c.Schedule.CloseHour = schedule.DefaultWindow.CloseHour
	}
	if c.Schedule.Courts <= 0 {
		c.Schedule.Courts = 3
	}
	if c.Schedule.DaysAhead <= 0 {
		c.Schedule.DaysAhead = 14
	}
	if c.Monitoring.HealthCheckPort == 0 {
		c.Monitoring.HealthCheckPort = 8090
	}
}

// Window returns the configured daily schedule window.
func (c *Config) Window() schedule.Window {
	return schedule.Window{OpenHour: c.Schedule.OpenHour, CloseHour: c.Schedule.CloseHour}
}
