// Package logging configures log/slog for the shotgun CLI.
//
// Records go to stderr as colored text on a terminal, or as JSON with
// --log-format json. A --log-file adds a JSON copy of every record:
//
//	logger := logging.New(logging.Options{
//		Level:  logging.LevelFromVerbosity(verbosity),
//		Format: logging.FormatText,
//		File:   f,
//	})
//
// Both renderings mask attributes that look like credentials, so access
// tokens, app passwords and webhook tokens never reach a log line.
//
// Commands hand the logger down through the context; adapters pick it up
// with [FromContext] and tag their lines with the platform key.
package logging
