// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors
// for telemetry identifiers, and transparent injection of values stored in
// context.Context.
//
// The single factory, New, creates a *slog.Logger configured by Option
// functions: output format (text or json), minimum level (static or via a
// slog.LevelVar for runtime toggling), default attributes, and
// ContextExtractor callbacks that pull attributes out of the context on
// every Handle call.
//
// Helper constructors in attr.go (Error, VisitID, VisitorID, EventID,
// EventName) keep attribute naming consistent across the agent and the
// collector.
//
//	log := logger.New(
//	    logger.WithDevelopment("collector"),
//	)
//	log.InfoContext(ctx, "visit started", logger.VisitID(id))
package logger
