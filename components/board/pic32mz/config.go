package pic32mz

import (
	"fmt"

	"github.com/a8m/envsubst"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/yosuke-furukawa/json5/encoding/json5"

	"github.com/majenkotech/gpio-pic32/components/board/pic32mz/sfr"
	"github.com/majenkotech/gpio-pic32/logging"
)

// A Config describes how to reach the PPS registers of a board.
type Config struct {
	// BaseAddress is the physical address of the 4 KiB page holding the PPS registers.
	// Zero selects sfr.DefaultBaseAddress.
	BaseAddress uint64 `json:"base_address,omitempty"`
	// DryRun logs register writes instead of performing them.
	DryRun   bool   `json:"dry_run,omitempty"`
	LogLevel string `json:"log_level,omitempty"`
	// LogFile, if set, receives a copy of every log line, register writes included at debug level.
	LogFile string `json:"log_file,omitempty"`
}

// Base returns the configured base address, or the default one.
func (conf *Config) Base() uint64 {
	if conf.BaseAddress == 0 {
		return sfr.DefaultBaseAddress
	}
	return conf.BaseAddress
}

// Validate ensures all parts of the config are valid.
func (conf *Config) Validate(path string) ([]string, error) {
	if conf.BaseAddress%sfr.WindowSize != 0 {
		return nil, errors.Errorf("%s: base_address %#x is not aligned to %d bytes",
			fieldPath(path, "base_address"), conf.BaseAddress, sfr.WindowSize)
	}
	if conf.LogLevel != "" {
		if _, err := logging.LevelFromString(conf.LogLevel); err != nil {
			return nil, errors.Wrap(err, fieldPath(path, "log_level"))
		}
	}
	return nil, nil
}

// Level returns the configured log level, INFO if none is set.
func (conf *Config) Level() logging.Level {
	if conf.LogLevel == "" {
		return logging.INFO
	}
	level, err := logging.LevelFromString(conf.LogLevel)
	if err != nil {
		return logging.INFO
	}
	return level
}

func fieldPath(path, field string) string {
	if path == "" {
		return field
	}
	return fmt.Sprintf("%s.%s", path, field)
}

// ReadConfig reads a config from the given file. Environment variables referenced in the file
// are expanded first, and numbers may be written as strings such as "0x1f801000".
func ReadConfig(filePath string) (*Config, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return FromJSON(buf)
}

// FromJSON decodes and validates a config document. The document is JSON5, so it may carry
// comments and trailing commas.
func FromJSON(buf []byte) (*Config, error) {
	var attributes map[string]interface{}
	if err := json5.Unmarshal(buf, &attributes); err != nil {
		return nil, errors.Wrap(err, "cannot parse config")
	}

	var conf Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &conf,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, errors.Wrap(err, "cannot decode config")
	}
	if _, err := conf.Validate(""); err != nil {
		return nil, err
	}
	return &conf, nil
}
