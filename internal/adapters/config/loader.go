// Package config resolves the host configuration from the environment and an optional .env file.
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
	"go.trai.ch/frame/internal/build"
	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/frame/internal/core/ports"
	"go.trai.ch/zerr"
)

// DotEnvFile is the optional file read from the working directory.
const DotEnvFile = ".env"

const (
	keyPort             = "PORT"
	keyLogFormat        = "LOG_FORMAT"
	keyMetricsAddr      = "METRICS_ADDR"
	keyReadyTimeout     = "FRONTEND_READY_TIMEOUT"
	keyAssetsSafeMethod = "ASSETS_SAFE_METHODS_ONLY"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader.
type Loader struct {
	release  bool
	compiled bool
	lookup   func(string) (string, bool)
	setenv   func(key, value string) error
}

// Option configures a Loader.
type Option func(*Loader)

// WithBuildFlags overrides the compile-time flags.
func WithBuildFlags(release, compiled bool) Option {
	return func(l *Loader) {
		l.release = release
		l.compiled = compiled
	}
}

// WithEnv replaces the process environment used to export .env entries.
func WithEnv(lookup func(string) (string, bool), setenv func(key, value string) error) Option {
	return func(l *Loader) {
		l.lookup = lookup
		l.setenv = setenv
	}
}

// NewLoader creates a loader bound to the flags the binary was compiled with.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		release:  build.Release,
		compiled: build.CompiledFrontend,
		lookup:   os.LookupEnv,
		setenv:   os.Setenv,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves the configuration. Entries from dir/.env are exported to the
// process environment unless already set, so the frontend child inherits them.
func (l *Loader) Load(dir string) (*domain.HostConfig, error) {
	v := viper.New()
	v.SetConfigType("env")
	v.SetDefault(keyReadyTimeout, domain.MinReadyTimeout.String())

	path := filepath.Join(dir, DotEnvFile)
	//nolint:gosec // G304: path is the fixed .env name inside the working directory
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigLoadFailed.Error()), "path", path)
	default:
		if err := l.export(data); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigLoadFailed.Error()), "path", path)
		}
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigLoadFailed.Error()), "path", path)
		}
	}

	v.AutomaticEnv()

	env := domain.Classify(l.release)
	return &domain.HostConfig{
		Environment:           env,
		Strategy:              domain.SelectStrategy(env, l.compiled),
		ServerPort:            domain.ParsePort(v.GetString(keyPort), domain.DefaultServerPort),
		LogFormat:             domain.LogFormat(strings.ToLower(strings.TrimSpace(v.GetString(keyLogFormat)))),
		MetricsAddr:           strings.TrimSpace(v.GetString(keyMetricsAddr)),
		ReadyTimeout:          domain.ClampReadyTimeout(v.GetDuration(keyReadyTimeout)),
		AssetsSafeMethodsOnly: v.GetBool(keyAssetsSafeMethod),
	}, nil
}

func (l *Loader) export(data []byte) error {
	entries, err := gotenv.StrictParse(bytes.NewReader(data))
	if err != nil {
		return err
	}
	for key, value := range entries {
		if _, set := l.lookup(key); set {
			continue
		}
		if err := l.setenv(key, value); err != nil {
			return zerr.With(err, "key", key)
		}
	}
	return nil
}
