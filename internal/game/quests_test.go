package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshQuestsRecomputesFromCounters(t *testing.T) {
	p := NewPlayer("0xabc")
	p.MonstersDefeated = 5
	p.Stats.ItemsFound = 12

	RefreshQuests(p)

	first := findQuest(t, p, "first-blood")
	assert.Equal(t, 5, first.Progress)

	collector := findQuest(t, p, "collector")
	assert.Equal(t, 10, collector.Progress, "progress is capped at target")

	// Refresh is derived, not incremental: repeating it changes nothing.
	RefreshQuests(p)
	assert.Equal(t, 5, findQuest(t, p, "first-blood").Progress)
}

func TestRefreshQuestsUpgradeCounter(t *testing.T) {
	p := NewPlayer("0xabc")
	p.Inventory = []InventoryItem{
		{ID: "a", UpgradeLevel: 3, Rarity: RarityRare},
		{ID: "b", UpgradeLevel: 2, Rarity: RarityCommon},
	}

	RefreshQuests(p)

	assert.Equal(t, 5, findQuest(t, p, "blacksmith-friend").Progress)
}

func TestClaimQuestReward(t *testing.T) {
	p := NewPlayer("0xabc")
	p.MonstersDefeated = 10

	result := ClaimQuestReward(p, "first-blood")

	require.Equal(t, OutcomeOK, result.Outcome)
	assert.Equal(t, int64(100+100), p.Coins)
	assert.Equal(t, 50, p.Experience)
	assert.True(t, findQuest(t, p, "first-blood").Completed)

	// Completion is terminal.
	again := ClaimQuestReward(p, "first-blood")
	assert.Equal(t, OutcomeCapReached, again.Outcome)
	assert.Equal(t, int64(200), p.Coins)
}

func TestClaimQuestRewardNotReady(t *testing.T) {
	p := NewPlayer("0xabc")
	p.MonstersDefeated = 3

	result := ClaimQuestReward(p, "first-blood")

	assert.Equal(t, OutcomeNotReady, result.Outcome)
	assert.Equal(t, int64(100), p.Coins)
}

func TestClaimQuestRewardNotFound(t *testing.T) {
	p := NewPlayer("0xabc")

	assert.Equal(t, OutcomeNotFound, ClaimQuestReward(p, "no-such-quest").Outcome)
}

func TestClaimQuestRewardTriggersLevelUp(t *testing.T) {
	p := NewPlayer("0xabc")
	p.MonstersDefeated = 10
	p.Experience = 60 // quest xp 50 pushes past 100

	result := ClaimQuestReward(p, "first-blood")

	require.Equal(t, OutcomeOK, result.Outcome)
	assert.True(t, result.LevelUp.Leveled)
	assert.Equal(t, 2, p.Level)
	assert.Less(t, p.Experience, p.ExperienceRequired)
}

func TestAreaQuestCompletesOnTravel(t *testing.T) {
	r := newTestResolver()
	p := NewPlayer("0xabc")
	p.Level = 5

	travel := r.TravelTo(p, "darkwood")
	require.Equal(t, OutcomeOK, travel.Outcome)

	RefreshQuests(p)
	assert.Equal(t, 1, findQuest(t, p, "into-the-dark").Progress)
}

func TestTravelAreaLocked(t *testing.T) {
	r := newTestResolver()
	p := NewPlayer("0xabc")

	result := r.TravelTo(p, "void-citadel")

	assert.Equal(t, OutcomeAreaLocked, result.Outcome)
	assert.Equal(t, 25, result.MinLevel)
	assert.Equal(t, StartingArea, p.CurrentArea)
}

func TestTravelResetsComboTarget(t *testing.T) {
	r := NewResolver(constSource{0.99}, WithClock(fixedClock(testTime)))
	p := NewPlayer("0xabc")
	p.Level = 5

	r.ResolveAttack(p, "slime")
	require.NotZero(t, p.Combo)

	result := r.TravelTo(p, "darkwood")

	require.Equal(t, OutcomeOK, result.Outcome)
	assert.Zero(t, p.Combo)
	assert.Empty(t, p.LastMonsterID)
	assert.Zero(t, p.TargetHP)
}

func TestEnsureDailyQuestsGeneratesBatch(t *testing.T) {
	r := newTestResolver(0.0)
	p := NewPlayer("0xabc")

	generated := r.EnsureDailyQuests(p)

	require.True(t, generated)
	require.Len(t, p.DailyQuests, dailyBatchSize)

	names := map[string]bool{}
	for _, dq := range p.DailyQuests {
		assert.False(t, names[dq.Name], "no duplicate template within a batch")
		names[dq.Name] = true
		assert.NotEmpty(t, dq.ID)
		assert.Zero(t, dq.Progress)
		assert.False(t, dq.Completed)
		assert.Equal(t, nextMidnight(testTime), dq.ExpiresAt)
	}
}

func TestEnsureDailyQuestsStableWithinDay(t *testing.T) {
	r := newTestResolver(0.0)
	p := NewPlayer("0xabc")

	require.True(t, r.EnsureDailyQuests(p))
	before := append([]DailyQuest(nil), p.DailyQuests...)

	assert.False(t, r.EnsureDailyQuests(p), "second call within the day must not regenerate")
	assert.Equal(t, before, p.DailyQuests)
}

func TestEnsureDailyQuestsRegeneratesOnExpiry(t *testing.T) {
	r := newTestResolver(0.0)
	p := NewPlayer("0xabc")

	p.DailyQuests = []DailyQuest{
		{ID: "old-1", Type: DailyKill, Name: "Cull the Horde", Progress: 15, Target: 20, ExpiresAt: testTime.Add(-time.Hour)},
		{ID: "old-2", Type: DailyCollect, Name: "Scavenger", Progress: 1, Target: 3, ExpiresAt: testTime.Add(time.Hour)},
	}

	require.True(t, r.EnsureDailyQuests(p), "one expired entry regenerates the whole batch")
	require.Len(t, p.DailyQuests, dailyBatchSize)
	for _, dq := range p.DailyQuests {
		assert.NotEqual(t, "old-1", dq.ID)
		assert.NotEqual(t, "old-2", dq.ID)
		assert.Zero(t, dq.Progress, "unfinished progress on the expired batch is discarded")
	}
}

func TestRecordDailyProgress(t *testing.T) {
	p := NewPlayer("0xabc")
	p.DailyQuests = []DailyQuest{
		{ID: "k", Type: DailyKill, Target: 3, Reward: QuestReward{Coins: 150, Experience: 80}, ExpiresAt: testTime.Add(time.Hour)},
		{ID: "c", Type: DailyCollect, Target: 2, Reward: QuestReward{Coins: 200}, ExpiresAt: testTime.Add(time.Hour)},
	}

	completed := RecordDailyProgress(p, DailyKill, 2, testTime)
	assert.Empty(t, completed)
	assert.Equal(t, 2, p.DailyQuests[0].Progress)
	assert.Zero(t, p.DailyQuests[1].Progress, "non-matching quests untouched")

	// Overshooting the target caps progress and auto-grants the reward.
	completed = RecordDailyProgress(p, DailyKill, 5, testTime)
	require.Len(t, completed, 1)
	assert.Equal(t, 3, p.DailyQuests[0].Progress)
	assert.True(t, p.DailyQuests[0].Completed)
	assert.Equal(t, int64(250), p.Coins)
	assert.Equal(t, 80, p.Experience)

	// Completed quests never progress or pay again.
	completed = RecordDailyProgress(p, DailyKill, 1, testTime)
	assert.Empty(t, completed)
	assert.Equal(t, int64(250), p.Coins)
}

func TestRecordDailyProgressSkipsExpired(t *testing.T) {
	p := NewPlayer("0xabc")
	p.DailyQuests = []DailyQuest{
		{ID: "k", Type: DailyKill, Target: 3, ExpiresAt: testTime.Add(-time.Minute)},
	}

	assert.Empty(t, RecordDailyProgress(p, DailyKill, 1, testTime))
	assert.Zero(t, p.DailyQuests[0].Progress)
}

func TestNextMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	at := time.Date(2025, 6, 15, 23, 50, 0, 0, loc)

	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, loc), nextMidnight(at))

	// Month rollover.
	end := time.Date(2025, 6, 30, 1, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, loc), nextMidnight(end))
}

func findQuest(t *testing.T, p *PlayerState, id string) *Quest {
	t.Helper()
	for i := range p.Quests {
		if p.Quests[i].ID == id {
			return &p.Quests[i]
		}
	}
	t.Fatalf("quest %s not found", id)
	return nil
}
