// Package logger builds *slog.Logger values for the service and provides
// attribute helpers so the same keys are used everywhere.
//
// New takes functional options. FromConfig reads the env-driven Config
// (APP_ENV, APP_NAME, LOG_LEVEL, LOG_FORMAT); WithEnvironment picks text at
// debug for development and JSON at info for staging and production.
// ContextExtractor callbacks add request scoped values, such as the request
// id, to every record logged with a context.
//
//	log := logger.New(
//		logger.FromConfig(cfg),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "field changed",
//		logger.SessionID(id),
//		logger.Path("emails.0.email"),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
