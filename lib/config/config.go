// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/avtokassa/avtokassa/lib/seat"
)

// Config is the static configuration of the booking widget. It is read
// once at startup and never mutated afterwards; the route and layout a
// running process shows are fixed for its lifetime.
type Config struct {
	// Route describes the fixed bus route being sold.
	Route RouteConfig `yaml:"route"`

	// Layout describes the physical seat arrangement of the bus.
	Layout seat.Layout `yaml:"layout"`

	// Paths configures file locations.
	Paths PathsConfig `yaml:"paths"`
}

// RouteConfig is the read-only route information shown in the header
// and on generated tickets.
type RouteConfig struct {
	// From and To are the origin and destination display names.
	From string `yaml:"from"`
	To   string `yaml:"to"`

	// DepartureTime is the daily departure in 24-hour "HH:MM" form.
	DepartureTime string `yaml:"departure_time"`

	// Price is the ticket price in so'm.
	Price int `yaml:"price"`
}

// PathsConfig configures file locations.
type PathsConfig struct {
	// StateFile is where the seat collection is persisted. The parent
	// directory is created on first save if missing.
	StateFile string `yaml:"state_file"`
}

// Default returns the built-in configuration: the Toshkent to Navoiy
// evening route on a forty-seat coach (ten rows, two seats each side
// of the aisle), with state stored under the user's state directory.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Route: RouteConfig{
			From:          "Toshkent",
			To:            "Navoiy",
			DepartureTime: "21:00",
			Price:         120000,
		},
		Layout: seat.Layout{
			Rows:       10,
			Letters:    "ABCD",
			AisleAfter: 2,
		},
		Paths: PathsConfig{
			StateFile: filepath.Join(homeDir, ".local", "state", "avtokassa", "seats.json"),
		},
	}
}

// Load loads configuration from the file named by the AVTOKASSA_CONFIG
// environment variable, or returns Default() when the variable is
// unset. There is no other discovery: either the variable (or the
// --config flag via LoadFile) names a file, or the defaults apply.
func Load() (*Config, error) {
	configPath := os.Getenv("AVTOKASSA_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merging it
// over Default(). Fields absent from the file keep their defaults.
// ${HOME} and ${VAR:-default} patterns in the state-file path are
// expanded after loading; no environment variable overrides any other
// config value.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg.Paths.StateFile = expandVars(cfg.Paths.StateFile, map[string]string{
		"HOME": os.Getenv("HOME"),
	})

	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Route.From == "" {
		errs = append(errs, errors.New("route.from is required"))
	}
	if c.Route.To == "" {
		errs = append(errs, errors.New("route.to is required"))
	}
	if c.Route.DepartureTime != "" {
		if _, err := time.Parse("15:04", c.Route.DepartureTime); err != nil {
			errs = append(errs, fmt.Errorf("route.departure_time must be 24-hour HH:MM, got %q", c.Route.DepartureTime))
		}
	}
	if c.Route.Price <= 0 {
		errs = append(errs, fmt.Errorf("route.price must be positive, got %d", c.Route.Price))
	}

	if err := c.Layout.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("layout: %w", err))
	}

	if c.Paths.StateFile == "" {
		errs = append(errs, errors.New("paths.state_file is required"))
	}

	return errors.Join(errs...)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}
