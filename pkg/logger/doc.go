// Package logger provides a context-aware wrapper around Go's slog package
// with functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// New creates a *slog.Logger configured by Option functions. These options
// select the output format (text or json), the minimum level, static
// attributes applied to every record, and ContextExtractor callbacks that
// inject attributes pulled from a context value (for example a run id) every
// time a record is handled.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format and wraps it with LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks before delegating to the underlying handler.
//
// Helper constructors in attr.go (RecordID, Confidence, Issues, ...) keep
// attribute naming consistent between the scoring engine and the CLI.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "medverify"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//
//	log.InfoContext(ctx, "record validated",
//	    logger.RecordID(rec.ID()),
//	    logger.Confidence(res.Confidence),
//	)
//
// # Error Handling
//
// Error produces an attribute only when the supplied error is non-nil, so
// callers can write log.Info("done", logger.Error(err)) without a nil check.
package logger
