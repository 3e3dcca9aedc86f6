package main

import (
	"errors"
	"fmt"

	"github.com/creasty/defaults"
	"github.com/davejbax/memalign/internal/verify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var errUnknownFormat = errors.New("unknown output format")

type config struct {
	Format       string `mapstructure:"format" default:"text"`
	FailuresOnly bool   `mapstructure:"failures_only"`

	Check verify.Config `mapstructure:"check"`
}

// loadConfig returns the defaults overlaid with the file at path. An empty
// path means defaults only.
func loadConfig(path string) (*config, error) {
	config := &config{}

	if err := defaults.Set(config); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}

	if path == "" {
		return config, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from '%s': %w", path, err)
	}

	// Allow lists such as types to be given as "int8,uint8"
	hook := viper.DecodeHook(mapstructure.StringToSliceHookFunc(","))

	if err := v.Unmarshal(config, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}

func (c *config) validate() error {
	if c.Format != formatText && c.Format != formatJSON {
		return fmt.Errorf("%w: '%s'", errUnknownFormat, c.Format)
	}

	if err := c.Check.Validate(); err != nil {
		return fmt.Errorf("invalid check config: %w", err)
	}

	return nil
}
