// Package logging provides the application-wide zap logger.
//
// Logging is silent by default so it never corrupts the interactive
// screen; set CASTDEX_LOG_LEVEL (debug, info, warn, error) to enable
// output on stderr.
package logging
