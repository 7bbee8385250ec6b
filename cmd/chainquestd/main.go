package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/chainquest/chainquest-go/internal/api"
	"github.com/chainquest/chainquest-go/internal/config"
	"github.com/chainquest/chainquest-go/internal/engine"
	"github.com/chainquest/chainquest-go/internal/game"
	"github.com/chainquest/chainquest-go/internal/mint"
	"github.com/chainquest/chainquest-go/internal/pkg/logger"
	"github.com/chainquest/chainquest-go/internal/store"
)

func main() {
	l, err := logger.CreateLogger(config.LogLevel)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer l.Sync()

	local, err := store.NewSQLiteStore(config.LocalDBPath)
	if err != nil {
		l.Fatal("failed to open local store", zap.Error(err))
	}
	if err := local.Migrate(); err != nil {
		l.Fatal("failed to migrate local store", zap.Error(err))
	}

	// The remote store is optional: simulation mode, a missing DATABASE_URI,
	// or an unreachable database all degrade to pure local-first play.
	var remote store.Remote
	if !config.SimulationMode && config.DatabaseURI != "" {
		pg, err := store.NewPostgreSQL(config.DatabaseURI, l)
		if err != nil {
			l.Warn("remote store unavailable, continuing local-only", zap.Error(err))
		} else {
			remote = pg
		}
	}

	players := store.NewLocalFirst(local, remote, l)
	defer players.Close()

	resolver := game.NewResolver(engine.NewRandSource())
	server := api.NewServer(players, resolver, mint.Simulated{}, l)

	l.Info("starting server",
		zap.String("address", config.ServerRunAddress),
		zap.Bool("simulation", remote == nil))

	if err := http.ListenAndServe(config.ServerRunAddress, server.Routes()); err != nil {
		l.Fatal("server stopped", zap.Error(err))
	}
}
