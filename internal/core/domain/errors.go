package domain

import "go.trai.ch/zerr"

var (
	// ErrClientDirectoryMissing is returned when the frontend source directory does not exist in dev mode.
	ErrClientDirectoryMissing = zerr.New("client directory not found")

	// ErrChildSpawnFailed is returned when the frontend process cannot be started.
	ErrChildSpawnFailed = zerr.New("failed to spawn frontend process")

	// ErrArtifactExtractionFailed is returned when an embedded artifact cannot be written to disk.
	ErrArtifactExtractionFailed = zerr.New("failed to extract frontend artifact")

	// ErrArtifactMissing is returned when the artifact required by the delivery strategy was not embedded.
	ErrArtifactMissing = zerr.New("frontend artifact not embedded")

	// ErrFrontendNotReady is returned when the frontend does not become ready within the timeout.
	ErrFrontendNotReady = zerr.New("frontend did not become ready")

	// ErrFrontendAlreadyStarted is returned when Start is called on a supervisor that already ran a frontend.
	ErrFrontendAlreadyStarted = zerr.New("frontend already started")

	// ErrFrontendExited is returned when the frontend process exits while the host still needs it.
	ErrFrontendExited = zerr.New("frontend process exited")

	// ErrListenerBindFailed is returned when the server cannot bind its listening address.
	ErrListenerBindFailed = zerr.New("failed to bind listener")

	// ErrServeTerminated is returned when the server stops serving because of an error.
	ErrServeTerminated = zerr.New("server terminated")

	// ErrLogStreamError is reported when reading a frontend output stream fails.
	ErrLogStreamError = zerr.New("frontend log stream failed")

	// ErrChildKillFailed is reported when the frontend process cannot be terminated.
	ErrChildKillFailed = zerr.New("failed to kill frontend process")

	// ErrPortAllocationFailed is returned when no loopback port can be reserved for the frontend.
	ErrPortAllocationFailed = zerr.New("failed to allocate frontend port")

	// ErrManifestInvalid is returned when the embedded manifest cannot be parsed.
	ErrManifestInvalid = zerr.New("invalid embedded manifest")

	// ErrConfigLoadFailed is returned when the .env file exists but cannot be read.
	ErrConfigLoadFailed = zerr.New("failed to load configuration")

	// ErrWatcherFailed is returned when the source watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to watch frontend sources")

	// ErrMetricsServeFailed is returned when the metrics listener stops with an error.
	ErrMetricsServeFailed = zerr.New("metrics server terminated")

	// ErrInvalidExcludeRule is returned when an exclude rule cannot be parsed.
	ErrInvalidExcludeRule = zerr.New("invalid exclude rule")
)
