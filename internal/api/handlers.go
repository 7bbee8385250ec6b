package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chainquest/chainquest-go/internal/game"
	"github.com/chainquest/chainquest-go/internal/store"
)

// attackRequest is the body of an attack action.
type attackRequest struct {
	MonsterID string `json:"monsterId"`
}

// travelRequest is the body of a travel action.
type travelRequest struct {
	Area string `json:"area"`
}

// loadPlayer fetches the player for the request, writing an error response
// and returning nil when that fails.
func (s *Server) loadPlayer(w http.ResponseWriter, r *http.Request) *game.PlayerState {
	id := chi.URLParam(r, "id")
	if id == "" {
		s.writeError(w, http.StatusBadRequest, ErrTypeValidation, "player id is required")
		return nil
	}

	p, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.log.Error("player load failed", zap.String("player", id), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, ErrTypeInternal, "failed to load player")
		return nil
	}
	return p
}

// persist writes the updated player back, reporting conflicts and failures.
// It returns false when the response has already been written.
func (s *Server) persist(w http.ResponseWriter, r *http.Request, p *game.PlayerState) bool {
	if err := s.store.Put(r.Context(), p); err != nil {
		if errors.Is(err, store.ErrStaleRevision) {
			s.writeError(w, http.StatusConflict, ErrTypeConflict, "player state changed concurrently")
			return false
		}
		s.log.Error("player save failed", zap.String("player", p.ID), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, ErrTypeInternal, "failed to save player")
		return false
	}
	return true
}

// handleGetPlayer returns the player's current state with quests refreshed
// and the daily batch regenerated if it expired.
func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	p := s.loadPlayer(w, r)
	if p == nil {
		return
	}

	game.RefreshQuests(p)
	s.resolver.EnsureDailyQuests(p)

	if !s.persist(w, r, p) {
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

// handleAttack resolves one attack against a monster.
func (s *Server) handleAttack(w http.ResponseWriter, r *http.Request) {
	var req attackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MonsterID == "" {
		s.writeError(w, http.StatusBadRequest, ErrTypeValidation, "monsterId is required")
		return
	}

	p := s.loadPlayer(w, r)
	if p == nil {
		return
	}

	s.resolver.EnsureDailyQuests(p)
	result := s.resolver.ResolveAttack(p, req.MonsterID)

	// A missing monster is a reported no-op, not a mutation: skip the write.
	if result.Outcome == game.OutcomeNotFound {
		s.writeJSON(w, http.StatusOK, result)
		return
	}

	game.RefreshQuests(p)
	if !s.persist(w, r, p) {
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// handleTravel moves the player to another area.
func (s *Server) handleTravel(w http.ResponseWriter, r *http.Request) {
	var req travelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Area == "" {
		s.writeError(w, http.StatusBadRequest, ErrTypeValidation, "area is required")
		return
	}

	p := s.loadPlayer(w, r)
	if p == nil {
		return
	}

	s.resolver.EnsureDailyQuests(p)
	result := s.resolver.TravelTo(p, req.Area)

	if !result.Outcome.Success() {
		s.writeJSON(w, http.StatusOK, result)
		return
	}

	game.RefreshQuests(p)
	if !s.persist(w, r, p) {
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// handleUpgradeSkill levels up a skill.
func (s *Server) handleUpgradeSkill(w http.ResponseWriter, r *http.Request) {
	p := s.loadPlayer(w, r)
	if p == nil {
		return
	}

	result := game.UpgradeSkill(p, chi.URLParam(r, "skillId"))

	if !result.Outcome.Success() {
		s.writeJSON(w, http.StatusOK, result)
		return
	}
	if !s.persist(w, r, p) {
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// handleUpgradeItem attempts an item enhancement. Failed rolls still consume
// coins, so both outcomes persist.
func (s *Server) handleUpgradeItem(w http.ResponseWriter, r *http.Request) {
	p := s.loadPlayer(w, r)
	if p == nil {
		return
	}

	s.resolver.EnsureDailyQuests(p)
	result := s.resolver.UpgradeItem(p, chi.URLParam(r, "itemId"))

	switch result.Outcome {
	case game.OutcomeOK, game.OutcomeUpgradeFailed:
		game.RefreshQuests(p)
		if !s.persist(w, r, p) {
			return
		}
	}
	s.writeJSON(w, http.StatusOK, result)
}

// mintResponse reports a minted item.
type mintResponse struct {
	Outcome game.Outcome `json:"outcome"`
	ItemID  string       `json:"itemId"`
	TokenID string       `json:"tokenId,omitempty"`
	TxHash  string       `json:"txHash,omitempty"`
}

// handleMintItem sends an item to the minting collaborator and records the
// receipt on the item.
func (s *Server) handleMintItem(w http.ResponseWriter, r *http.Request) {
	p := s.loadPlayer(w, r)
	if p == nil {
		return
	}

	itemID := chi.URLParam(r, "itemId")
	item := p.FindItem(itemID)
	if item == nil {
		s.writeJSON(w, http.StatusOK, mintResponse{Outcome: game.OutcomeNotFound, ItemID: itemID})
		return
	}
	if item.TokenID != "" {
		s.writeJSON(w, http.StatusOK, mintResponse{
			Outcome: game.OutcomeCapReached,
			ItemID:  itemID,
			TokenID: item.TokenID,
			TxHash:  item.TxHash,
		})
		return
	}

	receipt, err := s.minter.Mint(r.Context(), p.ID, *item)
	if err != nil {
		s.log.Error("mint failed", zap.String("player", p.ID), zap.String("item", itemID), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, ErrTypeInternal, "minting failed")
		return
	}

	item.TokenID = receipt.TokenID
	item.TxHash = receipt.TxHash

	if !s.persist(w, r, p) {
		return
	}
	s.writeJSON(w, http.StatusOK, mintResponse{
		Outcome: game.OutcomeOK,
		ItemID:  itemID,
		TokenID: receipt.TokenID,
		TxHash:  receipt.TxHash,
	})
}

// handleUpgradeCharacter levels up one of the player's characters.
func (s *Server) handleUpgradeCharacter(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(chi.URLParam(r, "idx"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, ErrTypeValidation, "character index must be an integer")
		return
	}

	p := s.loadPlayer(w, r)
	if p == nil {
		return
	}

	result := game.UpgradeCharacter(p, idx)

	if !result.Outcome.Success() {
		s.writeJSON(w, http.StatusOK, result)
		return
	}
	if !s.persist(w, r, p) {
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// handleClaimQuest grants a completed main quest's reward.
func (s *Server) handleClaimQuest(w http.ResponseWriter, r *http.Request) {
	p := s.loadPlayer(w, r)
	if p == nil {
		return
	}

	result := game.ClaimQuestReward(p, chi.URLParam(r, "questId"))

	if !result.Outcome.Success() {
		s.writeJSON(w, http.StatusOK, result)
		return
	}
	if !s.persist(w, r, p) {
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}
