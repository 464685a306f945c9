package embedded

import "embed"

// The frontend build populates static/ with the prerendered client assets and
// dist/ with the artifact the release strategy launches. Which dist file is
// embedded depends on the build tags, so a release build without its
// artifact fails to compile.

//go:embed all:static
var staticFS embed.FS

//go:embed manifest.yaml
var manifestYAML []byte

const (
	staticRoot = "static"
	distRoot   = "dist"
)
