package game

// Static game content: areas, monsters, item drop tables, starter skills,
// and quest templates. Catalog data is immutable; player-owned copies are
// cloned out of it.

var areas = []Area{
	{ID: "meadow", Name: "Sunlit Meadow", MinLevel: 1},
	{ID: "darkwood", Name: "Darkwood Forest", MinLevel: 5},
	{ID: "ember-caves", Name: "Ember Caves", MinLevel: 12},
	{ID: "void-citadel", Name: "Void Citadel", MinLevel: 25},
}

// StartingArea is where new players begin.
const StartingArea = "meadow"

var monsters = []Monster{
	{ID: "slime", Name: "Green Slime", Area: "meadow", HP: 10, MaxHP: 10, Reward: 5, Experience: 8, Resistance: 0, DropChance: 0.15},
	{ID: "boar", Name: "Wild Boar", Area: "meadow", HP: 18, MaxHP: 18, Reward: 9, Experience: 14, Resistance: 1, DropChance: 0.18},
	{ID: "meadow-king", Name: "Meadow King", Area: "meadow", HP: 60, MaxHP: 60, Reward: 40, Experience: 60, Resistance: 2, DropChance: 0.45, Boss: true},
	{ID: "wolf", Name: "Shadow Wolf", Area: "darkwood", HP: 35, MaxHP: 35, Reward: 18, Experience: 26, Resistance: 2, DropChance: 0.20},
	{ID: "treant", Name: "Rotten Treant", Area: "darkwood", HP: 55, MaxHP: 55, Reward: 28, Experience: 40, Resistance: 4, DropChance: 0.22},
	{ID: "darkwood-horror", Name: "Darkwood Horror", Area: "darkwood", HP: 160, MaxHP: 160, Reward: 120, Experience: 170, Resistance: 6, DropChance: 0.50, Boss: true},
	{ID: "magma-imp", Name: "Magma Imp", Area: "ember-caves", HP: 90, MaxHP: 90, Reward: 55, Experience: 75, Resistance: 8, DropChance: 0.24},
	{ID: "basalt-golem", Name: "Basalt Golem", Area: "ember-caves", HP: 150, MaxHP: 150, Reward: 85, Experience: 120, Resistance: 14, DropChance: 0.26},
	{ID: "cinder-tyrant", Name: "Cinder Tyrant", Area: "ember-caves", HP: 420, MaxHP: 420, Reward: 320, Experience: 450, Resistance: 18, DropChance: 0.55, Boss: true},
	{ID: "void-stalker", Name: "Void Stalker", Area: "void-citadel", HP: 260, MaxHP: 260, Reward: 170, Experience: 230, Resistance: 22, DropChance: 0.28},
	{ID: "null-sentinel", Name: "Null Sentinel", Area: "void-citadel", HP: 400, MaxHP: 400, Reward: 260, Experience: 360, Resistance: 30, DropChance: 0.30},
	{ID: "entropy-lord", Name: "Entropy Lord", Area: "void-citadel", HP: 1200, MaxHP: 1200, Reward: 1100, Experience: 1500, Resistance: 40, DropChance: 0.60, Boss: true},
}

// itemTemplates is the drop table: one candidate pool per area, weighted by
// each entry's DropRate.
var itemTemplates = []InventoryItem{
	{Name: "Rusty Sword", Type: ItemWeapon, Rarity: RarityCommon, Power: 4, Price: 20, Area: "meadow", DropRate: 0.50},
	{Name: "Leather Vest", Type: ItemArmor, Rarity: RarityCommon, Power: 3, Price: 15, Area: "meadow", DropRate: 0.35},
	{Name: "Lucky Clover", Type: ItemAccessory, Rarity: RarityUncommon, Power: 6, Price: 60, Area: "meadow", DropRate: 0.12},
	{Name: "Meadow Crown", Type: ItemAccessory, Rarity: RarityRare, Power: 14, Price: 220, Area: "meadow", DropRate: 0.03},
	{Name: "Hunter's Bow", Type: ItemWeapon, Rarity: RarityUncommon, Power: 11, Price: 90, Area: "darkwood", DropRate: 0.40},
	{Name: "Barkhide Shield", Type: ItemArmor, Rarity: RarityUncommon, Power: 9, Price: 75, Area: "darkwood", DropRate: 0.35},
	{Name: "Moonlit Blade", Type: ItemWeapon, Rarity: RarityRare, Power: 22, Price: 340, Area: "darkwood", DropRate: 0.18},
	{Name: "Heart of the Forest", Type: ItemAccessory, Rarity: RarityEpic, Power: 45, Price: 1200, Area: "darkwood", DropRate: 0.07},
	{Name: "Obsidian Edge", Type: ItemWeapon, Rarity: RarityRare, Power: 38, Price: 650, Area: "ember-caves", DropRate: 0.45},
	{Name: "Molten Plate", Type: ItemArmor, Rarity: RarityRare, Power: 30, Price: 520, Area: "ember-caves", DropRate: 0.35},
	{Name: "Phoenix Talon", Type: ItemWeapon, Rarity: RarityEpic, Power: 70, Price: 2100, Area: "ember-caves", DropRate: 0.15},
	{Name: "Everburn Ember", Type: ItemAccessory, Rarity: RarityLegendary, Power: 150, Price: 9000, Area: "ember-caves", DropRate: 0.05},
	{Name: "Riftpiercer", Type: ItemWeapon, Rarity: RarityEpic, Power: 110, Price: 4200, Area: "void-citadel", DropRate: 0.50},
	{Name: "Aegis of Nothing", Type: ItemArmor, Rarity: RarityEpic, Power: 95, Price: 3800, Area: "void-citadel", DropRate: 0.30},
	{Name: "Singularity Core", Type: ItemAccessory, Rarity: RarityLegendary, Power: 240, Price: 18000, Area: "void-citadel", DropRate: 0.20},
}

var starterSkills = []Skill{
	{ID: "power-strike", Name: "Power Strike", Description: "Raises base attack damage.", Target: TargetDamage, ValuePerLevel: 2, MaxLevel: 20, BaseCost: 50},
	{ID: "keen-eye", Name: "Keen Eye", Description: "Raises critical hit chance.", Target: TargetCritChance, ValuePerLevel: 0.01, MaxLevel: 15, BaseCost: 80},
	{ID: "treasure-hunter", Name: "Treasure Hunter", Description: "Raises item drop rate.", Target: TargetDropRate, ValuePerLevel: 0.02, MaxLevel: 10, BaseCost: 100},
	{ID: "fast-learner", Name: "Fast Learner", Description: "Raises experience gained.", Target: TargetExperience, ValuePerLevel: 0.05, MaxLevel: 10, BaseCost: 120},
	{ID: "gold-rush", Name: "Gold Rush", Description: "Raises coins earned.", Target: TargetCoins, ValuePerLevel: 0.05, MaxLevel: 10, BaseCost: 120},
	{ID: "iron-skin", Name: "Iron Skin", Description: "Raises character defense.", Target: TargetDefense, ValuePerLevel: 1, MaxLevel: 15, BaseCost: 70},
}

var mainQuestTemplates = []Quest{
	{ID: "first-blood", Name: "First Blood", Type: QuestMonster, Target: 10, Reward: QuestReward{Coins: 100, Experience: 50}},
	{ID: "monster-hunter", Name: "Monster Hunter", Type: QuestMonster, Target: 100, Reward: QuestReward{Coins: 800, Experience: 400}},
	{ID: "monster-slayer", Name: "Monster Slayer", Type: QuestMonster, Target: 1000, Reward: QuestReward{Coins: 6000, Experience: 3500}},
	{ID: "collector", Name: "Collector", Type: QuestItem, Target: 10, Reward: QuestReward{Coins: 300, Experience: 150}},
	{ID: "hoarder", Name: "Hoarder", Type: QuestItem, Target: 50, Reward: QuestReward{Coins: 2000, Experience: 1000}},
	{ID: "blacksmith-friend", Name: "Friend of the Forge", Type: QuestUpgrade, Target: 15, Reward: QuestReward{Coins: 1200, Experience: 600}},
	{ID: "into-the-dark", Name: "Into the Dark", Type: QuestArea, Target: 1, Area: "darkwood", Reward: QuestReward{Coins: 250, Experience: 120}},
	{ID: "heart-of-fire", Name: "Heart of Fire", Type: QuestArea, Target: 1, Area: "ember-caves", Reward: QuestReward{Coins: 900, Experience: 500}},
}

// dailyTemplate is the generation blueprint for a daily quest.
type dailyTemplate struct {
	Type   DailyQuestType
	Name   string
	Target int
	Reward QuestReward
	Weight float64
}

var dailyTemplates = []dailyTemplate{
	{Type: DailyKill, Name: "Cull the Horde", Target: 20, Reward: QuestReward{Coins: 150, Experience: 80}, Weight: 4},
	{Type: DailyKill, Name: "Relentless", Target: 50, Reward: QuestReward{Coins: 400, Experience: 220}, Weight: 2},
	{Type: DailyCollect, Name: "Scavenger", Target: 3, Reward: QuestReward{Coins: 200, Experience: 100}, Weight: 3},
	{Type: DailyUpgrade, Name: "Sharpen Your Tools", Target: 2, Reward: QuestReward{Coins: 250, Experience: 120}, Weight: 2},
	{Type: DailyVisit, Name: "Wanderlust", Target: 1, Reward: QuestReward{Coins: 100, Experience: 60}, Weight: 1},
}

// MonsterByID looks up a monster in the catalog.
func MonsterByID(id string) (Monster, bool) {
	for _, m := range monsters {
		if m.ID == id {
			return m, true
		}
	}
	return Monster{}, false
}

// MonstersInArea returns the catalog entries for an area.
func MonstersInArea(area string) []Monster {
	var out []Monster
	for _, m := range monsters {
		if m.Area == area {
			out = append(out, m)
		}
	}
	return out
}

// AreaByID looks up an area in the catalog.
func AreaByID(id string) (Area, bool) {
	for _, a := range areas {
		if a.ID == id {
			return a, true
		}
	}
	return Area{}, false
}

// ListAreas returns every catalog area.
func ListAreas() []Area {
	out := make([]Area, len(areas))
	copy(out, areas)
	return out
}

// ItemsForArea returns the drop-table candidates for an area.
func ItemsForArea(area string) []InventoryItem {
	var out []InventoryItem
	for _, it := range itemTemplates {
		if it.Area == area {
			out = append(out, it)
		}
	}
	return out
}

// StarterSkills returns a fresh copy of the skill set new players begin with.
func StarterSkills() []Skill {
	out := make([]Skill, len(starterSkills))
	copy(out, starterSkills)
	return out
}

// MainQuests returns a fresh copy of the main quest set.
func MainQuests() []Quest {
	out := make([]Quest, len(mainQuestTemplates))
	copy(out, mainQuestTemplates)
	return out
}

// NewPlayer builds the bootstrap state for a wallet address: level 1, base
// damage 5, starter skills, and the main quest set.
func NewPlayer(id string) *PlayerState {
	return &PlayerState{
		ID:                 id,
		Coins:              100,
		Damage:             5,
		Level:              1,
		Experience:         0,
		ExperienceRequired: 100,
		CurrentArea:        StartingArea,
		Characters: []Character{
			{Name: "Adventurer", Level: 1, Damage: 5, Defense: 2, Experience: 0, ExperienceRequired: 100},
		},
		Inventory:   []InventoryItem{},
		Skills:      StarterSkills(),
		Quests:      MainQuests(),
		DailyQuests: []DailyQuest{},
		BattleLog:   []BattleLogEntry{},
	}
}
