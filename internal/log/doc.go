// Package log provides secure logging functionality with automatic
// sanitization of credential material, built on top of the standard
// slog package.
//
// credaudit handles plaintext passwords as a matter of course, so the
// logging layer is the one place where a careless attribute could leak
// a secret into a terminal scrollback or a shared log file. The
// SecureHandler makes that structurally impossible:
//   - Attribute keys that name credential material (password, secret,
//     token, ...) are always masked
//   - String values matching known secret formats are masked regardless
//     of their key
//
// Even in verbose mode, sensitive values are masked.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Debug("classified entry",
//	    "site", entry.Site,
//	    "password", entry.Password, // logged as "***REDACTED***"
//	)
package log
