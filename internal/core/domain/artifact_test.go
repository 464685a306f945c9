package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/frame/internal/core/domain"
)

func TestMediaType(t *testing.T) {
	tests := map[string]string{
		"index.html":              "text/html; charset=utf-8",
		"app/style.css":           "text/css",
		"_app/immutable/entry.js": "application/javascript",
		"manifest.json":           "application/json",
		"logo.svg":                "image/svg+xml",
		"logo.png":                "image/png",
		"photo.jpg":               "image/jpeg",
		"photo.jpeg":              "image/jpeg",
		"anim.gif":                "image/gif",
		"favicon.ico":             "image/x-icon",
		"fonts/inter.woff":        "font/woff",
		"fonts/inter.woff2":       "font/woff2",
		"PHOTO.JPG":               "image/jpeg",
		"robots.txt":              "application/octet-stream",
		"noext":                   "application/octet-stream",
	}

	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, want, domain.MediaType(path))
		})
	}
}

func TestArtifact_FileName(t *testing.T) {
	assert.Equal(t, "client", domain.Artifact{Kind: domain.ArtifactNativeExecutable}.FileName())
	assert.Equal(t, "client.exe", domain.Artifact{Kind: domain.ArtifactNativeExecutable, FileSuffix: ".exe"}.FileName())
	assert.Equal(t, "bundle.js", domain.Artifact{Kind: domain.ArtifactScript, Interpreter: "bun"}.FileName())
}

func TestTempLayout_Deterministic(t *testing.T) {
	a := domain.NewTempLayout("/tmp", "frame")
	b := domain.NewTempLayout("/tmp", "frame")

	assert.Equal(t, a, b)
	assert.Equal(t, filepath.Join("/tmp", "frame"), a.Dir())
	assert.Equal(t,
		filepath.Join("/tmp", "frame", "bundle.js"),
		a.PathFor(domain.Artifact{Kind: domain.ArtifactScript}),
	)
	assert.Equal(t,
		filepath.Join("/tmp", "frame", "client"),
		a.PathFor(domain.Artifact{Kind: domain.ArtifactNativeExecutable}),
	)
}
