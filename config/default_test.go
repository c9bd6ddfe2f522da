package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateDefaultConfigFile(t *testing.T) {
	generatedCfg := GenerateDefaultConfigFile()
	cfg, err := ReadConfig(bytes.NewReader(generatedCfg))
	require.NoError(t, err)
	require.EqualValues(t, DefaultConfig, *cfg)
}

func TestReadConfigOverrides(t *testing.T) {
	in := strings.NewReader(`
log_level = "debug"

[check]
workers = 16
`)
	cfg, err := ReadConfig(in)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 16, cfg.Check.Workers)
}

func TestReadConfigRejectsGarbage(t *testing.T) {
	_, err := ReadConfig(strings.NewReader("log_level = ["))
	require.Error(t, err)
}
