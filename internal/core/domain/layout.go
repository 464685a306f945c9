package domain

import "path/filepath"

const (
	// DefaultServerPort is used when PORT is absent or invalid.
	DefaultServerPort uint16 = 3030

	// DevServerPort is the fixed port of the frontend development server.
	DevServerPort uint16 = 5173

	// LoopbackHost is the only interface the host and the frontend bind to.
	LoopbackHost = "127.0.0.1"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// ExecutablePerm is the permission of extracted artifacts (rwxr-xr-x).
	ExecutablePerm = 0o755
)

// TempLayout is the on-disk layout artifacts are extracted into.
// The same project name and temp root always produce the same paths.
type TempLayout struct {
	root string
}

// NewTempLayout returns the layout under <tempDir>/<projectName>.
func NewTempLayout(tempDir, projectName string) TempLayout {
	return TempLayout{root: filepath.Join(tempDir, projectName)}
}

// Dir returns the per-project directory.
func (l TempLayout) Dir() string {
	return l.root
}

// PathFor returns where the artifact is extracted.
func (l TempLayout) PathFor(a Artifact) string {
	return filepath.Join(l.root, a.FileName())
}
