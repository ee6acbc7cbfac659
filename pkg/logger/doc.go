// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers that keep key names consistent across the
// validator and the HTTP binder.
//
//	log := logger.New(
//	    logger.WithConfig(logger.Config{Level: "debug", Format: "text"}),
//	    logger.WithContextValue("request_id", middleware.RequestIDKey),
//	)
//	log.Info("params rejected", logger.Validator("user"), logger.Field("email"))
//
// Error and RequestID return an empty Attr for nil or empty input, so they can
// be passed unconditionally.
package logger
