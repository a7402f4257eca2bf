package conv

import (
	logpkg "github.com/echa/log"
)

// log is disabled until UseLogger is called
var log logpkg.Logger = logpkg.Log

func init() {
	DisableLog()
}

// DisableLog disables package log output
func DisableLog() {
	log = logpkg.Disabled
}

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger logpkg.Logger) {
	log = logger
}
