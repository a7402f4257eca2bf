package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/echa/config"
	"github.com/viant/schemaconv/conv"
)

const (
	appName   = "schemaconv"
	envprefix = "SCHEMACONV"

	// patternSeparator separates patterns in a single config value, commas are valid pattern text
	patternSeparator = "|"
)

var (
	flags   = flag.NewFlagSet(appName, flag.ContinueOnError)
	errExit = errors.New("exit")

	verbose     bool
	vdebug      bool
	configFile  string
	catalogFile string
	schemaName  string
	jsonInput   bool
	nullToken   string
)

func init() {
	flags.Usage = func() {}
	flags.BoolVar(&verbose, "v", false, "be verbose")
	flags.BoolVar(&vdebug, "vv", false, "debug mode")
	flags.StringVar(&configFile, "c", "config.json", "read config from `file`")
	flags.StringVar(&configFile, "config", "config.json", "read config from `file`")
	flags.StringVar(&catalogFile, "catalog", "schemas.yaml", "read schema catalog from `file`")
	flags.StringVar(&schemaName, "schema", "", "catalog schema `name` used for conversion")
	flags.BoolVar(&jsonInput, "json", false, "treat each input line as a JSON document")
	flags.StringVar(&nullToken, "null", `\N`, "text input `token` representing null")

	config.SetDefault("conv.location", "UTC")
	config.SetDefault("conv.scale_ttl", conv.DefaultScaleTTL)
	config.SetDefault("conv.date_patterns", strings.Join(conv.DefaultDatePatterns, patternSeparator))
	config.SetDefault("conv.time_patterns", strings.Join(conv.DefaultTimePatterns, patternSeparator))
	config.SetDefault("conv.timestamp_patterns", strings.Join(conv.DefaultTimestampPatterns, patternSeparator))

	config.SetDefault("logging.backend", "stderr")
	config.SetDefault("logging.flags", "date,time,micro,utc")
	config.SetDefault("logging.level", "warn")
}

func parseFlags(args []string) error {
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			fmt.Printf("Usage: %s [flags] < input\n", appName)
			fmt.Println("\nFlags")
			flags.PrintDefaults()
			return errExit
		}
		return err
	}
	if schemaName == "" {
		return errors.New("missing -schema")
	}
	return loadConfig()
}

func loadConfig() error {
	config.SetEnvPrefix(envprefix)
	if configFile != "" {
		config.SetConfigName(configFile)
	}
	realconf := config.ConfigName()
	if _, err := os.Stat(realconf); err == nil {
		if err := config.ReadConfigFile(); err != nil {
			return fmt.Errorf("reading config file %q: %v", realconf, err)
		}
		log.Debugf("Using config file %s", realconf)
	} else {
		log.Debugf("Missing config file, using default values.")
	}
	return nil
}

func splitPatterns(value string) []string {
	var ret []string
	for _, pattern := range strings.Split(value, patternSeparator) {
		if pattern = strings.TrimSpace(pattern); pattern != "" {
			ret = append(ret, pattern)
		}
	}
	return ret
}

// registryOptions maps conv.* settings to registry options
func registryOptions() ([]conv.Option, error) {
	loc, err := time.LoadLocation(config.GetString("conv.location"))
	if err != nil {
		return nil, fmt.Errorf("invalid conv.location: %w", err)
	}
	return []conv.Option{
		conv.WithLocation(loc),
		conv.WithScaleTTL(config.GetDuration("conv.scale_ttl")),
		conv.WithDatePatterns(splitPatterns(config.GetString("conv.date_patterns"))...),
		conv.WithTimePatterns(splitPatterns(config.GetString("conv.time_patterns"))...),
		conv.WithTimestampPatterns(splitPatterns(config.GetString("conv.timestamp_patterns"))...),
	}, nil
}
