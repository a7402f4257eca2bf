package main

import (
	"os"

	"github.com/echa/config"
	logpkg "github.com/echa/log"
	"github.com/viant/schemaconv/conv"
)

var (
	log     = logpkg.NewLogger("MAIN") // main program
	convLog = logpkg.NewLogger("CONV") // value conversion
)

func init() {
	conv.UseLogger(convLog)
}

func initLogging() {
	cfg := logpkg.NewConfig()
	cfg.Level = logpkg.ParseLevel(config.GetString("logging.level"))
	cfg.Flags = logpkg.ParseFlags(config.GetString("logging.flags"))
	cfg.Backend = config.GetString("logging.backend")
	cfg.Filename = config.GetString("logging.filename")
	cfg.FileMode = os.FileMode(config.GetInt("logging.filemode"))
	logpkg.Init(cfg)

	log = logpkg.NewLogger("MAIN")
	convLog = logpkg.NewLogger("CONV")
	conv.UseLogger(convLog)

	switch {
	case vdebug:
		log.SetLevel(logpkg.LevelDebug)
		convLog.SetLevel(logpkg.LevelDebug)
	case verbose:
		log.SetLevel(logpkg.LevelInfo)
		convLog.SetLevel(logpkg.LevelInfo)
	}
}
