package frontend_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/frame/internal/adapters/frontend"
	"go.trai.ch/frame/internal/core/domain"
)

func TestMaterialize_Executable(t *testing.T) {
	layout := domain.NewTempLayout(t.TempDir(), "frame")
	artifact := domain.Artifact{Kind: domain.ArtifactNativeExecutable, Bytes: []byte("binary"), TargetOS: runtime.GOOS}

	path, err := frontend.Materialize(layout, artifact)
	require.NoError(t, err)

	assert.Equal(t, layout.PathFor(artifact), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "binary", string(data))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(domain.ExecutablePerm), info.Mode().Perm())
	}
}

func TestMaterialize_ReplacesPreviousExtraction(t *testing.T) {
	layout := domain.NewTempLayout(t.TempDir(), "frame")

	_, err := frontend.Materialize(layout, domain.Artifact{Kind: domain.ArtifactScript, Bytes: []byte("old")})
	require.NoError(t, err)
	path, err := frontend.Materialize(layout, domain.Artifact{Kind: domain.ArtifactScript, Bytes: []byte("new")})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(layout.Dir(), domain.BundleFileName), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	entries, err := os.ReadDir(layout.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestMaterialize_Failure(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "frame")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o600))

	layout := domain.NewTempLayout(root, "frame")
	_, err := frontend.Materialize(layout, domain.Artifact{Kind: domain.ArtifactScript, Bytes: []byte("x")})

	assert.ErrorContains(t, err, domain.ErrArtifactExtractionFailed.Error())
}

func TestChildEnvironment(t *testing.T) {
	base := []string{"PATH=/usr/bin", "PORT=9999", "NODE_ENV=development", "HOME=/home/frame"}

	env := frontend.ChildEnvironment(base, 41234)

	assert.Equal(t, []string{
		"PATH=/usr/bin",
		"HOME=/home/frame",
		"PORT=41234",
		"HOST=127.0.0.1",
		"NODE_ENV=production",
	}, env)
}
