// Package config reads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	LogLevel         string
	ServerRunAddress string
	LocalDBPath      string
	DatabaseURI      string
	SimulationMode   bool
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	LogLevel = os.Getenv("LOG_LEVEL")
	if LogLevel == "" {
		LogLevel = "info"
	}

	ServerRunAddress = os.Getenv("SERVER_RUN_ADDRESS")
	if ServerRunAddress == "" {
		ServerRunAddress = "0.0.0.0:8080"
	}

	LocalDBPath = os.Getenv("LOCAL_DB_PATH")
	if LocalDBPath == "" {
		LocalDBPath = "chainquest.db"
	}

	DatabaseURI = os.Getenv("DATABASE_URI")

	// Simulation mode runs the game entirely against the local store and
	// never dials the remote database. It defaults to on when no remote is
	// configured.
	simEnv := os.Getenv("SIMULATION_MODE")
	if simEnv == "" {
		SimulationMode = DatabaseURI == ""
	} else {
		parsed, err := strconv.ParseBool(simEnv)
		if err != nil {
			log.Printf("invalid SIMULATION_MODE %q, defaulting to true", simEnv)
			parsed = true
		}
		SimulationMode = parsed
	}
}
