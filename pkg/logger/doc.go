// Package logger builds configured *slog.Logger instances through functional
// options and provides attribute constructors that keep log field naming
// consistent across the codebase.
//
// # Usage
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//		logger.WithOutput(os.Stderr),
//		logger.WithService("rentvehicle"),
//	)
//	logger.SetAsDefault(log)
//
// Defaults are production safe: JSON output at info level. The CLI entry
// point switches to text format on stderr so log records never interleave
// with menu output on stdout.
package logger
