package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLevelUpNoPending(t *testing.T) {
	p := NewPlayer("0xabc")
	p.Experience = 99

	result := CheckLevelUp(p)

	assert.False(t, result.Leveled)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 99, p.Experience)
}

func TestCheckLevelUpMultiLevelJump(t *testing.T) {
	p := NewPlayer("0xabc")
	p.Experience = 700

	result := CheckLevelUp(p)

	// 700 xp: level 1->2 (cost 100), 2->3 (cost 200), 3->4 (cost 300),
	// leaving 100 against a 400 requirement.
	require.True(t, result.Leveled)
	assert.Equal(t, 3, result.Levels)
	assert.Equal(t, 4, result.NewLevel)
	assert.Equal(t, 4, p.Level)
	assert.Equal(t, 100, p.Experience)
	assert.Equal(t, 400, p.ExperienceRequired)

	// +2 damage per level, level*25 coins per level.
	assert.Equal(t, 5+6, p.Damage)
	assert.Equal(t, int64(50+75+100), result.CoinsAwarded)
	assert.Equal(t, int64(100+50+75+100), p.Coins)
}

func TestCheckLevelUpIdempotent(t *testing.T) {
	p := NewPlayer("0xabc")
	p.Experience = 150

	first := CheckLevelUp(p)
	require.True(t, first.Leveled)

	before := *p
	second := CheckLevelUp(p)

	assert.False(t, second.Leveled)
	assert.Equal(t, before.Level, p.Level)
	assert.Equal(t, before.Experience, p.Experience)
	assert.Equal(t, before.Coins, p.Coins)
	assert.Less(t, p.Experience, p.ExperienceRequired)
}

func TestUpgradeCharacter(t *testing.T) {
	p := NewPlayer("0xabc")
	p.Coins = 500

	result := UpgradeCharacter(p, 0)

	require.Equal(t, OutcomeOK, result.Outcome)
	assert.Equal(t, 2, p.Characters[0].Level)
	assert.Equal(t, 8, p.Characters[0].Damage)
	assert.Equal(t, 4, p.Characters[0].Defense)
	assert.Equal(t, 200, p.Characters[0].ExperienceRequired)
	assert.Equal(t, int64(400), p.Coins)
}

func TestUpgradeCharacterInsufficientFunds(t *testing.T) {
	p := NewPlayer("0xabc")
	p.Coins = 50

	result := UpgradeCharacter(p, 0)

	assert.Equal(t, OutcomeInsufficientFunds, result.Outcome)
	assert.Equal(t, 1, p.Characters[0].Level)
	assert.Equal(t, int64(50), p.Coins)
}

func TestUpgradeCharacterNotFound(t *testing.T) {
	p := NewPlayer("0xabc")

	assert.Equal(t, OutcomeNotFound, UpgradeCharacter(p, 5).Outcome)
	assert.Equal(t, OutcomeNotFound, UpgradeCharacter(p, -1).Outcome)
}
