package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/chainquest/chainquest-go/internal/engine"
)

// dailyBatchSize is how many daily quests a regeneration produces.
const dailyBatchSize = 3

// RefreshQuests recomputes every main quest's progress from the player's
// absolute counters. Main quest progress is derived, never incremented, so a
// refresh is always safe to repeat.
func RefreshQuests(p *PlayerState) {
	upgrades := 0
	for _, it := range p.Inventory {
		upgrades += it.UpgradeLevel
	}

	for i := range p.Quests {
		q := &p.Quests[i]
		if q.Completed {
			q.Progress = q.Target
			continue
		}

		var counter int
		switch q.Type {
		case QuestMonster:
			counter = p.MonstersDefeated
		case QuestItem:
			counter = p.Stats.ItemsFound
		case QuestUpgrade:
			counter = upgrades
		case QuestArea:
			if p.CurrentArea == q.Area {
				counter = q.Target
			} else {
				counter = q.Progress
			}
		}

		if counter > q.Target {
			counter = q.Target
		}
		q.Progress = counter
	}
}

// ClaimResult reports the outcome of claiming a main quest reward.
type ClaimResult struct {
	Outcome Outcome       `json:"outcome"`
	QuestID string        `json:"questId"`
	Reward  QuestReward   `json:"reward,omitempty"`
	LevelUp LevelUpResult `json:"levelUp"`
}

// ClaimQuestReward grants a completed main quest's reward. Completion is
// terminal: a claimed quest can never be claimed again.
func ClaimQuestReward(p *PlayerState, questID string) ClaimResult {
	RefreshQuests(p)

	for i := range p.Quests {
		q := &p.Quests[i]
		if q.ID != questID {
			continue
		}
		if q.Completed {
			return ClaimResult{Outcome: OutcomeCapReached, QuestID: questID}
		}
		if q.Progress < q.Target {
			return ClaimResult{Outcome: OutcomeNotReady, QuestID: questID}
		}

		q.Completed = true
		p.Coins += q.Reward.Coins
		p.Stats.CoinsEarned += q.Reward.Coins
		p.Experience += q.Reward.Experience

		return ClaimResult{
			Outcome: OutcomeOK,
			QuestID: questID,
			Reward:  q.Reward,
			LevelUp: CheckLevelUp(p),
		}
	}

	return ClaimResult{Outcome: OutcomeNotFound, QuestID: questID}
}

// EnsureDailyQuests regenerates the daily batch when the player has none or
// any entry has expired. It reports whether a new batch was generated; a
// second call within the same day leaves the batch untouched.
func (r *Resolver) EnsureDailyQuests(p *PlayerState) bool {
	now := r.now()

	regenerate := len(p.DailyQuests) == 0
	for _, dq := range p.DailyQuests {
		if dq.ExpiresAt.Before(now) {
			regenerate = true
			break
		}
	}
	if !regenerate {
		return false
	}

	expiry := nextMidnight(now)
	batch := make([]DailyQuest, 0, dailyBatchSize)
	used := make(map[string]bool, dailyBatchSize)

	weights := make([]float64, len(dailyTemplates))
	for i, t := range dailyTemplates {
		weights[i] = t.Weight
	}

	for len(batch) < dailyBatchSize && len(batch) < len(dailyTemplates) {
		idx := engine.WeightedIndex(r.rng, weights)
		if idx < 0 {
			break
		}
		t := dailyTemplates[idx]
		if used[t.Name] {
			continue
		}
		used[t.Name] = true
		weights[idx] = 0

		batch = append(batch, DailyQuest{
			ID:        uuid.New().String(),
			Type:      t.Type,
			Name:      t.Name,
			Target:    t.Target,
			Reward:    t.Reward,
			ExpiresAt: expiry,
		})
	}

	p.DailyQuests = batch
	return true
}

// RecordDailyProgress increments progress on every active, incomplete daily
// quest matching the action. A quest reaching its target is completed and
// rewarded immediately; there is no separate claim step for dailies. The
// completed quests are returned.
func RecordDailyProgress(p *PlayerState, action DailyQuestType, count int, now time.Time) []DailyQuest {
	if count <= 0 {
		return nil
	}

	var completed []DailyQuest
	for i := range p.DailyQuests {
		dq := &p.DailyQuests[i]
		if dq.Completed || dq.Type != action || dq.ExpiresAt.Before(now) {
			continue
		}

		dq.Progress += count
		if dq.Progress >= dq.Target {
			dq.Progress = dq.Target
			dq.Completed = true
			p.Coins += dq.Reward.Coins
			p.Stats.CoinsEarned += dq.Reward.Coins
			p.Experience += dq.Reward.Experience
			completed = append(completed, *dq)
		}
	}
	return completed
}

// TravelResult reports the outcome of moving to another area.
type TravelResult struct {
	Outcome     Outcome  `json:"outcome"`
	Area        string   `json:"area"`
	MinLevel    int      `json:"minLevel,omitempty"`
	DailiesDone []string `json:"dailiesDone,omitempty"`
}

// TravelTo moves the player to another area, enforcing the area's level
// gate. Arriving in a new area counts toward visit dailies and resets the
// combo target.
func (r *Resolver) TravelTo(p *PlayerState, areaID string) TravelResult {
	area, ok := AreaByID(areaID)
	if !ok {
		return TravelResult{Outcome: OutcomeNotFound, Area: areaID}
	}
	if p.Level < area.MinLevel {
		return TravelResult{Outcome: OutcomeAreaLocked, Area: areaID, MinLevel: area.MinLevel}
	}
	if p.CurrentArea == areaID {
		return TravelResult{Outcome: OutcomeOK, Area: areaID}
	}

	p.CurrentArea = areaID
	p.LastMonsterID = ""
	p.TargetHP = 0
	p.Combo = 0

	result := TravelResult{Outcome: OutcomeOK, Area: areaID}
	for _, done := range RecordDailyProgress(p, DailyVisit, 1, r.now()) {
		result.DailiesDone = append(result.DailiesDone, done.ID)
	}
	CheckLevelUp(p)

	return result
}

// nextMidnight returns the local midnight following t.
func nextMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location())
}
