// Package logging builds the slog loggers used by mkt.
//
// A command run gets one logger from [Build]: a colored line-per-record
// handler (or JSON) on stderr at the level implied by -v/-q, optionally
// mirrored as JSON into a --log-file. The logger travels in the command
// context:
//
//	ctx = logging.NewContext(ctx, logging.Build(logging.Options{Verbosity: 2}))
//	logging.FromContext(ctx).Debug("loading manifest", "path", path)
//
// Tests use [ForTest], which routes output through t.Log.
package logging
