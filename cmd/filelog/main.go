package main

import (
	"fmt"
	"log"

	"github.com/tnicklin/filelog/config"
	"github.com/tnicklin/filelog/logger"
)

func main() {
	params, err := build()
	if err != nil {
		log.Fatal(err)
	}

	if err = run(params); err != nil {
		log.Fatal(err)
	}
}

func build() (runParams, error) {
	cfg, err := config.LoadWithDefaults("config/config.yaml", "config/local.yaml")
	if err != nil {
		return runParams{}, fmt.Errorf("load config: %w", err)
	}

	appLogger, err := logger.Init(cfg.Logger)
	if err != nil {
		return runParams{}, fmt.Errorf("initialize logger: %w", err)
	}

	return runParams{
		Config: cfg,
		Logger: appLogger,
	}, nil
}

type runParams struct {
	Config *config.AppConfig
	Logger *logger.FileLogger
}

// run writes the start-up record and closes the log file.
func run(p runParams) error {
	defer p.Logger.Close()

	logger.Get("").Info("Custom Log initialization complete.")
	fmt.Println(p.Logger.Path())

	return nil
}
