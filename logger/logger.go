package logger

// Logger provides a standardized logging interface for the SendPost Go client.
// It defines methods for different log levels (Debug, Info, Warn, Error) to enable
// consistent logging throughout the client library. This interface allows users
// to plug in their preferred logging implementation (e.g., glog, logrus, zap, standard log)
// or use the provided Noop logger to disable logging entirely.
//
// The logger is used throughout the client for:
// - API request/response debugging
// - Workflow step failures (status code and response body)
// - Retry attempt tracking
//
// Usage Example:
//
//	// Using with a custom logger implementation
//	client := sendpost_go.NewClient(accountKey, subAccountKey, sendpost_go.WithLogger(myLogger))
//
//	// Using log/slog
//	client := sendpost_go.NewClient(accountKey, subAccountKey, sendpost_go.WithLogger(logger.NewSlog(slog.Default())))
//
//	// Disable logging entirely
//	client := sendpost_go.NewClient(accountKey, subAccountKey, sendpost_go.WithLogger(&logger.Noop{}))
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
