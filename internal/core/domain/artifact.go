package domain

import (
	"path"
	"strings"
)

// ArtifactKind discriminates the embedded frontend artifacts.
type ArtifactKind int

const (
	// ArtifactNativeExecutable is a platform-specific frontend executable.
	ArtifactNativeExecutable ArtifactKind = iota
	// ArtifactScript is a script bundle run by a host runtime.
	ArtifactScript
)

const (
	// ExecutableBaseName is the file name of the extracted executable, before the OS suffix.
	ExecutableBaseName = "client"
	// BundleFileName is the file name of the extracted script bundle.
	BundleFileName = "bundle.js"
)

// Artifact is an immutable frontend blob embedded at build time.
type Artifact struct {
	Kind ArtifactKind
	// Bytes is the embedded content. It must not be modified.
	Bytes []byte
	// TargetOS is the GOOS the executable was built for. Only set for native executables.
	TargetOS string
	// FileSuffix is appended to ExecutableBaseName, e.g. ".exe".
	FileSuffix string
	// Interpreter is the host runtime that runs a script artifact.
	Interpreter string
}

// FileName returns the name the artifact is extracted under.
func (a Artifact) FileName() string {
	if a.Kind == ArtifactScript {
		return BundleFileName
	}
	return ExecutableBaseName + a.FileSuffix
}

// Asset is a static file served directly by the host.
type Asset struct {
	Bytes     []byte
	MediaType string
}

const defaultMediaType = "application/octet-stream"

var mediaTypes = map[string]string{
	".html":  "text/html; charset=utf-8",
	".css":   "text/css",
	".js":    "application/javascript",
	".json":  "application/json",
	".svg":   "image/svg+xml",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".ico":   "image/x-icon",
	".woff":  "font/woff",
	".woff2": "font/woff2",
}

// MediaType derives the content type of an asset from its file suffix.
func MediaType(p string) string {
	if mt, ok := mediaTypes[strings.ToLower(path.Ext(p))]; ok {
		return mt
	}
	return defaultMediaType
}
