package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/hexmutator/internal/coordinator"
	"github.com/danmuck/hexmutator/internal/logging"
	"github.com/danmuck/hexmutator/internal/oracle"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "mutatorctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("mutatorctl", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a TOML config file")
	target := fs.String("target", "", "fuzzing target, overrides fuzzing_target")
	dryRun := fs.Bool("dry-run", false, "use the echo oracle instead of the model endpoint")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logging.ConfigureRuntime()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *target != "" {
		cfg.Target = *target
	}
	if *dryRun {
		cfg.Oracle.Provider = oracle.ProviderEcho
	}

	orc, err := oracle.New(cfg.Oracle)
	if err != nil {
		return err
	}
	svc, err := coordinator.NewService(cfg, orc)
	if err != nil {
		return err
	}
	log.Info().
		Str("target", cfg.Target).
		Str("oracle", string(cfg.Oracle.Provider)).
		Bool("dry_run", *dryRun).
		Msg("mutatorctl starting")
	return svc.Run()
}
