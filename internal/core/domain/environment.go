package domain

// Environment classifies the running build.
type Environment int

const (
	// Development is selected for builds without the release tag.
	Development Environment = iota
	// Production is selected for release builds.
	Production
)

// String returns the lowercase name of the environment.
func (e Environment) String() string {
	switch e {
	case Development:
		return "development"
	case Production:
		return "production"
	default:
		return "unknown"
	}
}

// DeliveryStrategy describes how the frontend process is produced.
type DeliveryStrategy int

const (
	// DevServer runs the frontend's development server from its source directory.
	DevServer DeliveryStrategy = iota
	// NativeBinary extracts an embedded executable and runs it.
	NativeBinary
	// HostedScript extracts an embedded script bundle and runs it under a host runtime.
	HostedScript
)

// String returns the name of the strategy.
func (s DeliveryStrategy) String() string {
	switch s {
	case DevServer:
		return "dev-server"
	case NativeBinary:
		return "native-binary"
	case HostedScript:
		return "hosted-script"
	default:
		return "unknown"
	}
}

// UsesEmbeddedAssets reports whether requests are checked against the static asset tree.
func (s DeliveryStrategy) UsesEmbeddedAssets() bool {
	return s != DevServer
}

// LogTarget is the log target attached to lines read from the frontend child.
func (s DeliveryStrategy) LogTarget() string {
	if s == DevServer {
		return "dev-frontend"
	}
	return "frontend"
}

// Classify maps the compile-time release flag to an Environment.
func Classify(release bool) Environment {
	if release {
		return Production
	}
	return Development
}

// SelectStrategy picks the delivery strategy for an environment.
func SelectStrategy(env Environment, compiledFrontend bool) DeliveryStrategy {
	switch {
	case env == Development:
		return DevServer
	case compiledFrontend:
		return NativeBinary
	default:
		return HostedScript
	}
}
