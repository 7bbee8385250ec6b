// Package api exposes the game engine over HTTP. Handlers translate UI
// actions into engine calls: load the player, run the operation, persist the
// updated state, and return the structured result.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/chainquest/chainquest-go/internal/game"
	"github.com/chainquest/chainquest-go/internal/mint"
	"github.com/chainquest/chainquest-go/internal/pkg/logger"
	"github.com/chainquest/chainquest-go/internal/store"
)

// Server handles HTTP requests.
type Server struct {
	store     store.PlayerStateStore
	resolver  *game.Resolver
	minter    mint.Minter
	log       *logger.Logger
	startTime time.Time
}

// NewServer creates a new API server.
func NewServer(st store.PlayerStateStore, resolver *game.Resolver, minter mint.Minter, log *logger.Logger) *Server {
	return &Server{
		store:     st,
		resolver:  resolver,
		minter:    minter,
		log:       log,
		startTime: time.Now(),
	}
}

// Routes sets up the HTTP routes with proper middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.log.WithLogging())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/players/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetPlayer)
			r.Post("/attack", s.handleAttack)
			r.Post("/travel", s.handleTravel)
			r.Post("/skills/{skillId}/upgrade", s.handleUpgradeSkill)
			r.Post("/items/{itemId}/upgrade", s.handleUpgradeItem)
			r.Post("/items/{itemId}/mint", s.handleMintItem)
			r.Post("/characters/{idx}/upgrade", s.handleUpgradeCharacter)
			r.Post("/quests/{questId}/claim", s.handleClaimQuest)
		})
		r.Get("/areas", s.handleListAreas)
	})

	return r
}

// writeJSON writes a JSON response with proper headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}

// handleListAreas returns the area catalog.
func (s *Server) handleListAreas(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, game.ListAreas())
}
