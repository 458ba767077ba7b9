package main

import (
	"os"

	"github.com/amm-ar03/Point-of-Sale-System/internal/app"
	config "github.com/amm-ar03/Point-of-Sale-System/internal/cfg"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/logger"
)

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	if err := app.Run(cfg, log); err != nil {
		log.Errorf(err, "application failed")
		os.Exit(1)
	}
}
