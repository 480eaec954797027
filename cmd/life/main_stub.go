//go:build !ebiten

package main

import (
	"flag"
	"log"
	"os"

	"lifesim/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	configFile := flag.String("config", "", "optional JSON config file (overrides flags)")
	flag.Parse()

	if *configFile != "" {
		if err := cfg.LoadFile(*configFile); err != nil {
			log.Fatal(err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if err := app.RunHeadless(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
