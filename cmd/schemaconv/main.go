// Command schemaconv converts values read from stdin, one per line, with a schema from a YAML catalog.
package main

import (
	"fmt"
	"os"

	"github.com/viant/schemaconv/conv"
)

func main() {
	if err := run(); err != nil {
		if err != errExit {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func run() error {
	if err := parseFlags(os.Args[1:]); err != nil {
		return err
	}
	initLogging()

	catalog, err := loadCatalog(catalogFile)
	if err != nil {
		return err
	}
	aSchema, err := catalog.Lookup(schemaName)
	if err != nil {
		return err
	}
	opts, err := registryOptions()
	if err != nil {
		return err
	}
	registry, err := conv.New(opts...)
	if err != nil {
		return err
	}
	converter := &converter{registry: registry, schema: aSchema, json: jsonInput, null: nullToken}
	stats, err := converter.Run(os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	log.Infof("Converted %d value(s), %d failed", stats.Converted, stats.Failed)
	if stats.Failed > 0 {
		return errExit
	}
	return nil
}
