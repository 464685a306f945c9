package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs a message with optional key-value attributes.
	Info(msg string, attrs ...any)
	// Warn logs a warning with optional key-value attributes.
	Warn(msg string, attrs ...any)
	// Error logs an error, including its cause chain.
	Error(err error)
	// With returns a logger that adds attrs to every entry.
	With(attrs ...any) Logger
}
