package config

import (
	"bytes"
	"io"
	"os"
	"path"
	"text/template"

	"github.com/BitcoinHQ/ethereum/log"

	"github.com/pkg/errors"
)

var DefaultConfig = Config{
	LogLevel: log.LevelInfo.String(),
	Archive: ArchiveConfig{
		VerifyReads:  true,
		ListPageSize: 50,
	},
	Check: CheckConfig{
		Workers: 4,
	},
}

const defaultConfigTemplateText = `# rlpdump Config File

# Sets the log level. Can be one of the following values:
# - error
# - warn
# - info
# - debug
log_level = "{{.LogLevel}}"

# Configures the local record archive.
[archive]
  # Sets how many records the list command prints per page.
  list_page_size = {{.Archive.ListPageSize}}
  # Re-hashes records as they are read and rejects any whose digest no
  # longer matches their key. Guards against on-disk corruption at the
  # cost of a hash per read.
  verify_reads = {{.Archive.VerifyReads}}

# Configures the check command.
[check]
  # Sets how many files are validated concurrently.
  workers = {{.Check.Workers}}
`

var defaultConfigTemplate *template.Template

func GenerateDefaultConfigFile() []byte {
	buf := new(bytes.Buffer)
	if err := defaultConfigTemplate.Execute(buf, DefaultConfig); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func ReadConfigFile(homeDir string) (*Config, error) {
	f, err := os.OpenFile(path.Join(homeDir, "config.toml"), os.O_RDONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "error opening config file for reading")
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}
	return cfg, nil
}

func WriteDefaultConfigFile(homeDir string) error {
	f, err := os.OpenFile(path.Join(homeDir, "config.toml"), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(err, "error opening config file for writing")
	}
	defer f.Close()
	rd := bytes.NewReader(GenerateDefaultConfigFile())
	if _, err := io.Copy(f, rd); err != nil {
		return errors.Wrap(err, "error writing config file")
	}
	return nil
}

func init() {
	tmpl := template.New("defaultConfig")
	t, err := tmpl.Parse(defaultConfigTemplateText)
	if err != nil {
		panic(err)
	}
	defaultConfigTemplate = t
}
