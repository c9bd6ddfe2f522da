package config

import (
	"io"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

type Config struct {
	LogLevel string        `mapstructure:"log_level"`
	Archive  ArchiveConfig `mapstructure:"archive"`
	Check    CheckConfig   `mapstructure:"check"`
}

type ArchiveConfig struct {
	VerifyReads  bool `mapstructure:"verify_reads"`
	ListPageSize int  `mapstructure:"list_page_size"`
}

type CheckConfig struct {
	Workers int `mapstructure:"workers"`
}

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	return config, nil
}
