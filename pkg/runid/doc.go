// Package runid tags one CLI invocation with a correlation identifier.
//
// A run ID is a UUIDv4 string generated when a command starts. It is stored in
// the command context and injected into every log record through
// LoggerExtractor, so all lines written by one invocation can be grouped.
//
//	ctx := runid.WithContext(context.Background(), runid.New())
//	log := logger.New(logger.WithContextExtractors(runid.LoggerExtractor()))
//	log.InfoContext(ctx, "tables loaded") // ... run_id=3f1c...
package runid
