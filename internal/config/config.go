// Package config loads generator settings from an optional YAML file and
// command line flags.
package config

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSourceDir = "icons/svg"
	DefaultOutputDir = "icons"
	DefaultPackage   = "icons"
	DefaultRuntime   = "lucide-gen/lucide"
	DefaultExtension = ".svg"
	DefaultIndex     = "index.go"
	DefaultHeader    = 201
	DefaultFooter    = 7
)

// Config holds every generator setting. Zero values are filled by
// ApplyDefaults.
type Config struct {
	SourceDir string   `yaml:"source"`
	OutputDir string   `yaml:"output"`
	Package   string   `yaml:"package"`
	Runtime   string   `yaml:"runtime"`
	Extension string   `yaml:"extension"`
	Index     string   `yaml:"index"`
	Sentinel  string   `yaml:"sentinel,omitempty"`
	Catalog   string   `yaml:"catalog,omitempty"`
	Header    *int     `yaml:"header,omitempty"`
	Footer    *int     `yaml:"footer,omitempty"`
	Reserved  []string `yaml:"reserved,omitempty"`
	Jobs      int      `yaml:"jobs,omitempty"`
	Force     bool     `yaml:"force,omitempty"`
	Watch     bool     `yaml:"watch,omitempty"`
	LogFormat string   `yaml:"logFormat,omitempty"`
	LogLevel  string   `yaml:"logLevel,omitempty"`
}

// Load reads path. A missing file is not an error when optional is true.
func Load(path string, optional bool) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return cfg, nil
}

// ApplyDefaults fills every unset field.
func (c *Config) ApplyDefaults() {
	if c.SourceDir == "" {
		c.SourceDir = DefaultSourceDir
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Package == "" {
		c.Package = DefaultPackage
	}
	if c.Runtime == "" {
		c.Runtime = DefaultRuntime
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if c.Index == "" {
		c.Index = DefaultIndex
	}
	if c.Sentinel == "" {
		c.Sentinel = c.Index
	}
	if c.Header == nil {
		c.Header = intPtr(DefaultHeader)
	}
	if c.Footer == nil {
		c.Footer = intPtr(DefaultFooter)
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.SourceDir == "":
		return errors.New("source directory is empty")
	case c.OutputDir == "":
		return errors.New("output directory is empty")
	case !token.IsIdentifier(c.Package) || c.Package == "_":
		return fmt.Errorf("package %q is not a valid package name", c.Package)
	case c.Package == "lucide":
		return errors.New(`package name "lucide" clashes with the runtime import`)
	case c.Runtime == "":
		return errors.New("runtime import path is empty")
	case !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2:
		return fmt.Errorf("extension %q must start with a dot", c.Extension)
	case !strings.HasSuffix(c.Index, ".go"):
		return fmt.Errorf("index file %q must end in .go", c.Index)
	case c.Header == nil || *c.Header < len("<svg>"):
		return fmt.Errorf("header length %s is too short for an <svg> start tag", lengthString(c.Header))
	case c.Footer == nil || *c.Footer < len("</svg>"):
		return fmt.Errorf("footer length %s is too short for </svg>", lengthString(c.Footer))
	case c.Jobs < 0:
		return fmt.Errorf("jobs %d is negative", c.Jobs)
	}
	return nil
}

func intPtr(v int) *int { return &v }

func lengthString(v *int) string {
	if v == nil {
		return "unset"
	}
	return strconv.Itoa(*v)
}
