package hoard

import "github.com/rs/zerolog"

// logger is the package logger. It is a no-op unless the embedding
// application opts in through SetLogger.
var logger = zerolog.Nop()

// SetLogger routes the engine's debug and warning output through the given
// logger. The engine only ever logs; it never fails because of logging.
func SetLogger(l zerolog.Logger) { logger = l }
