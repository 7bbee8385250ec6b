// Package game implements the progression and battle-resolution rules:
// attack resolution, level-ups, skills, quests, and item upgrades. All
// operations take a PlayerState, mutate it, and return a structured result;
// the caller is responsible for persisting the updated state.
package game

import (
	"fmt"
	"time"
)

// Rarity is the ordered item tier governing power, upgrade ceiling, and drop
// weight.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// rarityCaps maps each rarity to its maximum upgrade level.
var rarityCaps = map[Rarity]int{
	RarityCommon:    5,
	RarityUncommon:  8,
	RarityRare:      10,
	RarityEpic:      15,
	RarityLegendary: 20,
}

// Valid reports whether r is a known rarity tier.
func (r Rarity) Valid() bool {
	_, ok := rarityCaps[r]
	return ok
}

// UpgradeCap returns the maximum upgrade level for items of this rarity.
func (r Rarity) UpgradeCap() int {
	return rarityCaps[r]
}

// ParseRarity converts a string into a Rarity, rejecting unknown values.
func ParseRarity(s string) (Rarity, error) {
	r := Rarity(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown rarity %q", s)
	}
	return r, nil
}

// ItemType classifies inventory items.
type ItemType string

const (
	ItemWeapon     ItemType = "weapon"
	ItemArmor      ItemType = "armor"
	ItemAccessory  ItemType = "accessory"
	ItemConsumable ItemType = "consumable"
)

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	switch t {
	case ItemWeapon, ItemArmor, ItemAccessory, ItemConsumable:
		return true
	}
	return false
}

// SkillTarget names the stat dimension a skill modifies.
type SkillTarget string

const (
	TargetDamage     SkillTarget = "damage"
	TargetCritChance SkillTarget = "critChance"
	TargetDropRate   SkillTarget = "dropRate"
	TargetExperience SkillTarget = "experience"
	TargetCoins      SkillTarget = "coins"
	TargetDefense    SkillTarget = "defense"
)

// Valid reports whether t is a known skill target.
func (t SkillTarget) Valid() bool {
	switch t {
	case TargetDamage, TargetCritChance, TargetDropRate, TargetExperience, TargetCoins, TargetDefense:
		return true
	}
	return false
}

// QuestType classifies the counter a main quest tracks.
type QuestType string

const (
	QuestMonster QuestType = "monster"
	QuestItem    QuestType = "item"
	QuestUpgrade QuestType = "upgrade"
	QuestArea    QuestType = "area"
)

// Valid reports whether t is a known quest type.
func (t QuestType) Valid() bool {
	switch t {
	case QuestMonster, QuestItem, QuestUpgrade, QuestArea:
		return true
	}
	return false
}

// DailyQuestType names the player action a daily quest counts.
type DailyQuestType string

const (
	DailyKill    DailyQuestType = "kill"
	DailyCollect DailyQuestType = "collect"
	DailyUpgrade DailyQuestType = "upgrade"
	DailyVisit   DailyQuestType = "visit"
)

// Valid reports whether t is a known daily quest type.
func (t DailyQuestType) Valid() bool {
	switch t {
	case DailyKill, DailyCollect, DailyUpgrade, DailyVisit:
		return true
	}
	return false
}

// Stats aggregates lifetime battle numbers for a player.
type Stats struct {
	TotalDamage  int64 `json:"totalDamage"`
	CriticalHits int   `json:"criticalHits"`
	LongestCombo int   `json:"longestCombo"`
	ItemsFound   int   `json:"itemsFound"`
	CoinsEarned  int64 `json:"coinsEarned"`
}

// Character is one of possibly several player-owned units.
type Character struct {
	Name               string `json:"name"`
	Level              int    `json:"level"`
	Damage             int    `json:"damage"`
	Defense            int    `json:"defense"`
	Experience         int    `json:"experience"`
	ExperienceRequired int    `json:"experienceRequired"`
}

// Skill is an upgradeable passive modifier with its own cost curve.
type Skill struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Target        SkillTarget `json:"target"`
	ValuePerLevel float64     `json:"valuePerLevel"`
	Level         int         `json:"level"`
	MaxLevel      int         `json:"maxLevel"`
	BaseCost      int64       `json:"baseCost"`
}

// Bonus returns the skill's current effect magnitude.
func (s Skill) Bonus() float64 {
	return s.ValuePerLevel * float64(s.Level)
}

// UpgradeCost returns the coin cost of the next level.
func (s Skill) UpgradeCost() int64 {
	return s.BaseCost * int64(s.Level+1)
}

// InventoryItem is a player-owned item instance. TokenID and TxHash are set
// externally once the item has been minted on-chain.
type InventoryItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         ItemType `json:"type"`
	Rarity       Rarity   `json:"rarity"`
	Power        int      `json:"power"`
	Price        int64    `json:"price,omitempty"`
	Area         string   `json:"area,omitempty"`
	DropRate     float64  `json:"dropRate"`
	UpgradeLevel int      `json:"upgradeLevel,omitempty"`
	TokenID      string   `json:"tokenId,omitempty"`
	TxHash       string   `json:"txHash,omitempty"`
}

// Monster is an immutable catalog entry, not part of player state.
type Monster struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Area       string  `json:"area"`
	HP         int     `json:"hp"`
	MaxHP      int     `json:"maxHp"`
	Reward     int64   `json:"reward"`
	Experience int     `json:"experience"`
	Resistance int     `json:"resistance"`
	DropChance float64 `json:"dropChance"`
	Boss       bool    `json:"boss"`
}

// Area is a named game region gating monsters and items by player level.
type Area struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MinLevel int    `json:"minLevel"`
}

// QuestReward is the payout for completing a quest.
type QuestReward struct {
	Coins      int64 `json:"coins"`
	Experience int   `json:"experience"`
}

// Quest is a persistent main quest. Progress is recomputed from absolute
// player counters on refresh; Completed marks a claimed, terminal quest.
type Quest struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Type      QuestType   `json:"type"`
	Progress  int         `json:"progress"`
	Target    int         `json:"target"`
	Completed bool        `json:"completed"`
	Reward    QuestReward `json:"reward"`
	Area      string      `json:"area,omitempty"`
}

// DailyQuest is a time-boxed objective regenerated each day. Rewards are
// granted automatically the moment progress reaches target.
type DailyQuest struct {
	ID        string         `json:"id"`
	Type      DailyQuestType `json:"type"`
	Name      string         `json:"name"`
	Progress  int            `json:"progress"`
	Target    int            `json:"target"`
	Completed bool           `json:"completed"`
	Reward    QuestReward    `json:"reward"`
	ExpiresAt time.Time      `json:"expiresAt"`
}

// BattleLogEntry is an append-only audit record of a single attack.
type BattleLogEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	MonsterID   string    `json:"monsterId"`
	MonsterName string    `json:"monsterName"`
	Damage      int       `json:"damage"`
	Critical    bool      `json:"critical"`
	Combo       int       `json:"combo"`
	Reward      int64     `json:"reward"`
	Experience  int       `json:"experience"`
	ItemDropped string    `json:"itemDropped,omitempty"`
	Area        string    `json:"area"`
	PlayerLevel int       `json:"playerLevel"`
}

const (
	// maxBattleLog caps the battle history, most-recent-first.
	maxBattleLog = 100

	// maxInventory caps the number of items a player can carry.
	maxInventory = 200
)

// PlayerState is the aggregate root owning every nested collection. Revision
// is a store concern: it increases monotonically with each persisted write
// and lets the store reject stale snapshots.
type PlayerState struct {
	ID                 string           `json:"id"`
	Coins              int64            `json:"coins"`
	Damage             int              `json:"damage"`
	Level              int              `json:"level"`
	Experience         int              `json:"experience"`
	ExperienceRequired int              `json:"experienceRequired"`
	CurrentArea        string           `json:"currentArea"`
	MonstersDefeated   int              `json:"monstersDefeated"`
	Combo              int              `json:"combo"`
	LastMonsterID      string           `json:"lastMonsterId,omitempty"`
	TargetHP           int              `json:"targetHp,omitempty"`
	Characters         []Character      `json:"characters"`
	Inventory          []InventoryItem  `json:"inventory"`
	Skills             []Skill          `json:"skills"`
	Quests             []Quest          `json:"quests"`
	DailyQuests        []DailyQuest     `json:"dailyQuests"`
	BattleLog          []BattleLogEntry `json:"battleLog"`
	Stats              Stats            `json:"stats"`
	Revision           int64            `json:"revision"`
}

// appendBattleLog prepends an entry and trims the history to its cap.
func (p *PlayerState) appendBattleLog(e BattleLogEntry) {
	p.BattleLog = append([]BattleLogEntry{e}, p.BattleLog...)
	if len(p.BattleLog) > maxBattleLog {
		p.BattleLog = p.BattleLog[:maxBattleLog]
	}
}

// FindSkill returns a pointer to the skill with the given id, or nil.
func (p *PlayerState) FindSkill(id string) *Skill {
	for i := range p.Skills {
		if p.Skills[i].ID == id {
			return &p.Skills[i]
		}
	}
	return nil
}

// FindItem returns a pointer to the inventory item with the given id, or nil.
func (p *PlayerState) FindItem(id string) *InventoryItem {
	for i := range p.Inventory {
		if p.Inventory[i].ID == id {
			return &p.Inventory[i]
		}
	}
	return nil
}

// Outcome is the discriminated result code shared by every engine operation.
// Rule failures (not enough coins, cap reached, a failed upgrade roll) are
// outcomes, not errors.
type Outcome string

const (
	OutcomeOK                Outcome = "ok"
	OutcomeNotFound          Outcome = "not_found"
	OutcomeInsufficientFunds Outcome = "insufficient_funds"
	OutcomeMaxLevel          Outcome = "max_level"
	OutcomeCapReached        Outcome = "cap_reached"
	OutcomeUpgradeFailed     Outcome = "upgrade_failed"
	OutcomeInventoryFull     Outcome = "inventory_full"
	OutcomeNotReady          Outcome = "not_ready"
	OutcomeAreaLocked        Outcome = "area_locked"
)

// Success reports whether the outcome represents a completed operation.
func (o Outcome) Success() bool {
	return o == OutcomeOK
}
