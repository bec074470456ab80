package main

import (
	"github.com/spf13/viper"
	"github.com/zeebo/errs"
)

// Error is the class of mafdump errors.
var Error = errs.Class("mafdump")

// Output formats
const (
	FormatSummary = "summary"
	FormatMAF     = "maf"
	FormatJSON    = "json"
	FormatSpew    = "spew"
)

// Config holds the resolved flag, environment and config file settings.
type Config struct {
	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"log-level"`
	Comments bool   `mapstructure:"comments"`
}

func loadConfig(v *viper.Viper) (conf Config, err error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)

		err = v.ReadInConfig()
		if err != nil {
			return conf, Error.Wrap(err)
		}
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return conf, Error.Wrap(err)
	}

	switch conf.Format {
	case FormatSummary, FormatMAF, FormatJSON, FormatSpew:
	default:
		return conf, Error.New("unknown format: %q", conf.Format)
	}

	return conf, nil
}
