package domain

import (
	"strconv"
	"strings"
	"time"
)

// MinReadyTimeout is the shortest readiness wait the host accepts.
const MinReadyTimeout = 30 * time.Second

// LogFormat selects the log rendering.
type LogFormat string

const (
	// LogFormatAuto picks pretty output on a terminal and JSON otherwise.
	LogFormatAuto LogFormat = ""
	// LogFormatPretty renders human-readable lines.
	LogFormatPretty LogFormat = "pretty"
	// LogFormatJSON renders one JSON object per line.
	LogFormatJSON LogFormat = "json"
)

// HostConfig is the resolved runtime configuration of the host.
type HostConfig struct {
	Environment Environment
	Strategy    DeliveryStrategy

	ServerPort   uint16
	LogFormat    LogFormat
	MetricsAddr  string
	ReadyTimeout time.Duration

	// AssetsSafeMethodsOnly restricts the asset middleware to GET and HEAD.
	AssetsSafeMethodsOnly bool
}

// ParsePort parses a decimal port in 1..65535, falling back to def.
func ParsePort(raw string, def uint16) uint16 {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 16)
	if err != nil || n == 0 {
		return def
	}
	return uint16(n)
}

// ClampReadyTimeout raises timeouts below MinReadyTimeout.
func ClampReadyTimeout(d time.Duration) time.Duration {
	if d < MinReadyTimeout {
		return MinReadyTimeout
	}
	return d
}

// Manifest describes how the embedded frontend is run.
// It is written next to the embedded artifacts by the build.
type Manifest struct {
	// Name is the project name used for the temp layout.
	Name string `yaml:"name"`
	// ClientDir is the frontend source directory, relative to the working directory.
	ClientDir string `yaml:"client_dir"`
	// DevCommand starts the frontend development server.
	DevCommand []string `yaml:"dev_command"`
	// Runtime runs the script bundle.
	Runtime string `yaml:"runtime"`
}

// DefaultManifest returns the manifest used when fields are left empty.
func DefaultManifest() Manifest {
	return Manifest{
		Name:       "frame",
		ClientDir:  "apps/client",
		DevCommand: []string{"bun", "run", "dev"},
		Runtime:    "bun",
	}
}

// WithDefaults fills empty fields from DefaultManifest.
func (m Manifest) WithDefaults() Manifest {
	def := DefaultManifest()
	if m.Name == "" {
		m.Name = def.Name
	}
	if m.ClientDir == "" {
		m.ClientDir = def.ClientDir
	}
	if len(m.DevCommand) == 0 {
		m.DevCommand = def.DevCommand
	}
	if m.Runtime == "" {
		m.Runtime = def.Runtime
	}
	return m
}
