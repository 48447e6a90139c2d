// Package logger builds configured log/slog loggers: JSON or text output,
// level selection and static attributes, with environment presets for
// development and production.
//
//	log := logger.New(logger.WithDevelopment("shopkit"))
//	log.Info("cart fetched", slog.Int("lines", 3))
package logger
