package ports

import "go.trai.ch/frame/internal/core/domain"

// ArtifactStore gives read-only access to the artifacts embedded at build time.
//
//go:generate mockgen -source=artifact_store.go -destination=mocks/mock_artifact_store.go -package=mocks
type ArtifactStore interface {
	// Asset looks up a static asset by its path relative to the asset root.
	Asset(path string) (domain.Asset, bool)
	// ExecutableImage returns the native frontend executable for the current OS.
	ExecutableImage() (domain.Artifact, error)
	// ScriptBundle returns the frontend script bundle.
	ScriptBundle() (domain.Artifact, error)
	// Manifest describes how the frontend is launched.
	Manifest() domain.Manifest
}
