package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/vskvj3/listlab/internal/demo"
	"github.com/vskvj3/listlab/internal/utils"
)

func main() {
	configPtr := flag.String("config", "", "Path to the config file (default $LISTLAB_CONFIG or ~/.listlab/listlab.yaml)")
	verifyPtr := flag.Bool("verify", false, "Check doubly linked list invariants after every step")
	debugPtr := flag.Bool("debug", false, "Print debug messages to the console")
	flag.Parse()

	envErr := godotenv.Load()

	// Load configurations
	configPath := *configPtr
	if configPath == "" {
		var err error
		configPath, err = utils.DefaultConfigPath()
		if err != nil {
			utils.NewLoggerTo(os.Stderr, false).Error("Error resolving config path: " + err.Error())
			os.Exit(1)
		}
	}
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		utils.NewLoggerTo(os.Stderr, false).Error("Error loading configuration: " + err.Error())
		os.Exit(1)
	}

	logger := utils.NewLogger(config.LogFile, config.Debug || *debugPtr)
	if envErr != nil {
		logger.Debug("No .env file loaded: " + envErr.Error())
	}
	logger.Info("Loaded configurations from " + configPath)

	if err := demo.Run(demo.NewLogReporter(logger), config.VerifyInvariants || *verifyPtr); err != nil {
		logger.Error("Demo aborted: " + err.Error())
		os.Exit(1)
	}
	logger.Info("Demo finished")
}
