// Package logger builds the process-wide slog logger.
package logger
