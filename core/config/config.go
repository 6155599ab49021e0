package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte

	// ErrEventLogDisabled is returned when opening the event log with no path
	// configured or no configuration directory.
	ErrEventLogDisabled = errors.New("event log disabled")
)

const (
	ConfigurationName = "config.yaml"
)

// Output formats for parsed trees.
const (
	FormatRepr   = "repr"
	FormatTree   = "tree"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatSource = "source"
)

// Color modes.
const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

type Configuration struct {
	configFs afero.Fs
	// Directory the configuration was loaded from, empty if it's in memory.
	configurationDir string

	Prompt       string `json:"prompt" validate:"required"`
	OutputFormat string `json:"output_format" validate:"oneof=repr tree json yaml source"`
	Color        string `json:"color" validate:"oneof=always auto never"`
	HistoryFile  string `json:"history_file"`
	EventLog     string `json:"event_log"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	return c.configFs
}

// eventLogEnabled is false when no path is set or the configuration isn't
// backed by a filesystem.
func (c *Configuration) eventLogEnabled() bool {
	return c.EventLog != "" && c.configFs != nil
}

// OpenEventLog opens the event log in an append only state.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	if !c.eventLogEnabled() {
		return nil, ErrEventLogDisabled
	}
	return c.fs().OpenFile(c.EventLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadEventLog opens the event log for reading.
func (c *Configuration) ReadEventLog() (afero.File, error) {
	if !c.eventLogEnabled() {
		return nil, ErrEventLogDisabled
	}
	return c.fs().OpenFile(c.EventLog, os.O_RDONLY, 0600)
}

// HistoryPath returns the path of the playground history file on the host, or
// an empty string if history is disabled or the configuration isn't backed by
// a directory.
func (c *Configuration) HistoryPath() string {
	if c.HistoryFile == "" || c.configurationDir == "" {
		return ""
	}
	return filepath.Join(c.configurationDir, c.HistoryFile)
}

func parse(data []byte) (*Configuration, error) {
	var out Configuration
	if err := yaml.UnmarshalStrict(data, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// DefaultConfiguration returns the built-in configuration. It can't open any
// files.
func DefaultConfiguration() *Configuration {
	out, err := parse(defaultConfigData)
	if err != nil {
		panic(err)
	}
	return out
}
