package main

import (
	"flag"
	"os"

	"github.com/louisbranch/tfc.fitness/internal/platform/config"
	"github.com/louisbranch/tfc.fitness/internal/tools/catalogsnapshot"
)

func main() {
	cfg, err := catalogsnapshot.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := catalogsnapshot.Run(cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
