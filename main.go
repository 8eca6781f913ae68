package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ataxx/engine"
)

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	depth := flag.Int("depth", 0, "override the AI search depth")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = engine.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("bad configuration")
		}
	}
	if *depth > 0 {
		cfg.Search.Depth = *depth
	}

	e := engine.New(cfg, os.Stdin, os.Stdout, engine.NewConsoleReporter(os.Stdout))
	e.Run()
}
