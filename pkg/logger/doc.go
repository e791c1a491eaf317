// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers so log keys stay consistent across packages.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "almare"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.ErrorContext(ctx, "delivery failed", logger.Form("contact"), logger.Error(err))
//
// Records pass through a handler that runs every
// ContextExtractor against the record's context before handing it on.
package logger
