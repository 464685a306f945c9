// Package embedded serves the frontend artifacts compiled into the binary.
package embedded

import (
	"io/fs"
	"path"
	"runtime"
	"strings"

	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/frame/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// placeholder keeps otherwise empty embed directories in version control.
const placeholder = ".gitkeep"

var _ ports.ArtifactStore = (*Store)(nil)

// Store implements ports.ArtifactStore over embedded file systems.
type Store struct {
	assets   map[string]domain.Asset
	dist     fs.FS
	manifest domain.Manifest
	goos     string
}

// New creates a Store over the artifacts embedded in this binary.
func New() (*Store, error) {
	static, err := fs.Sub(staticFS, staticRoot)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open embedded static assets")
	}
	dist, err := fs.Sub(distFS, distRoot)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open embedded frontend artifacts")
	}
	return NewStore(static, dist, manifestYAML, runtime.GOOS)
}

// NewStore indexes the static asset tree once and parses the manifest.
func NewStore(static, dist fs.FS, manifest []byte, goos string) (*Store, error) {
	var m domain.Manifest
	if err := yaml.Unmarshal(manifest, &m); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestInvalid.Error())
	}

	assets := make(map[string]domain.Asset)
	err := fs.WalkDir(static, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() == placeholder {
			return nil
		}
		data, err := fs.ReadFile(static, p)
		if err != nil {
			return err
		}
		assets[p] = domain.Asset{Bytes: data, MediaType: domain.MediaType(p)}
		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to index embedded static assets")
	}

	return &Store{
		assets:   assets,
		dist:     dist,
		manifest: m.WithDefaults(),
		goos:     goos,
	}, nil
}

// Asset looks up a static asset by its path relative to the asset root.
func (s *Store) Asset(p string) (domain.Asset, bool) {
	a, ok := s.assets[p]
	return a, ok
}

// Len returns the number of indexed static assets.
func (s *Store) Len() int {
	return len(s.assets)
}

// ExecutableImage returns the compiled frontend for the current OS.
func (s *Store) ExecutableImage() (domain.Artifact, error) {
	a := domain.Artifact{
		Kind:       domain.ArtifactNativeExecutable,
		TargetOS:   s.goos,
		FileSuffix: executableSuffix(s.goos),
	}
	data, err := s.read(a.FileName())
	if err != nil {
		return domain.Artifact{}, err
	}
	a.Bytes = data
	return a, nil
}

// ScriptBundle returns the frontend bundle run by the manifest's runtime.
func (s *Store) ScriptBundle() (domain.Artifact, error) {
	a := domain.Artifact{
		Kind:        domain.ArtifactScript,
		Interpreter: s.manifest.Runtime,
	}
	data, err := s.read(a.FileName())
	if err != nil {
		return domain.Artifact{}, err
	}
	a.Bytes = data
	return a, nil
}

// Manifest describes how the frontend is launched.
func (s *Store) Manifest() domain.Manifest {
	return s.manifest
}

func (s *Store) read(name string) ([]byte, error) {
	data, err := fs.ReadFile(s.dist, path.Clean(name))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactMissing.Error()), "artifact", name)
	}
	return data, nil
}

func executableSuffix(goos string) string {
	if strings.EqualFold(goos, "windows") {
		return ".exe"
	}
	return ""
}
