// Package logging builds the bridge's log/slog logger.
//
// New returns a *slog.Logger writing JSON (default) or text at the
// configured level. Records logged with a context carry the request ID
// stored by WithRequestID, so handlers can call slog.InfoContext(ctx, ...)
// without repeating it.
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "json"})
//	if err != nil {
//	    return err
//	}
//	slog.SetDefault(logger)
//
//	ctx = logging.WithRequestID(ctx, "3f1c...")
//	slog.InfoContext(ctx, "stream started", "model", model)
package logging
