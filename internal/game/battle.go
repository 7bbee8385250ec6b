package game

import (
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chainquest/chainquest-go/internal/engine"
)

const (
	// critBase and critPerLevel build the pre-bonus critical chance.
	critBase     = 0.10
	critPerLevel = 0.01
	critCap      = 0.50

	// comboStep is the damage bonus per combo stack, capped at comboCap.
	comboStep = 0.05
	comboCap  = 0.50

	// critXPBonus is the extra experience multiplier on a critical kill.
	critXPBonus = 0.20

	// critDropBonus is the extra drop chance on a critical kill.
	critDropBonus = 0.10

	// maxDropChance keeps a drop from ever being a certainty.
	maxDropChance = 0.95
)

// AttackResult is the structured outcome of one attack resolution.
type AttackResult struct {
	Outcome       Outcome        `json:"outcome"`
	MonsterID     string         `json:"monsterId"`
	MonsterName   string         `json:"monsterName,omitempty"`
	Damage        int            `json:"damage"`
	Critical      bool           `json:"critical"`
	Combo         int            `json:"combo"`
	Defeated      bool           `json:"defeated"`
	MonsterHPLeft int            `json:"monsterHpLeft"`
	Reward        int64          `json:"reward"`
	Experience    int            `json:"experience"`
	ItemDropped   *InventoryItem `json:"itemDropped,omitempty"`
	InventoryFull bool           `json:"inventoryFull,omitempty"`
	LevelUp       LevelUpResult  `json:"levelUp"`
	DailiesDone   []string       `json:"dailiesDone,omitempty"`
}

// ResolveAttack resolves a single attack against a monster in the player's
// current area and mutates p accordingly. An unknown monster, or one outside
// the current area, yields a not_found no-op result with p untouched.
//
// Draw order from the random source is fixed and relied on by tests:
// damage jitter, crit roll, then (on a kill) drop roll and item pick.
func (r *Resolver) ResolveAttack(p *PlayerState, monsterID string) AttackResult {
	monster, ok := MonsterByID(monsterID)
	if !ok || monster.Area != p.CurrentArea {
		return AttackResult{Outcome: OutcomeNotFound, MonsterID: monsterID}
	}

	bonuses := SkillBonuses(p)

	// Combo tracks consecutive attacks on the same target. Switching targets
	// resets the streak and the target's remaining health; a kill does not
	// reset the streak (carries forward to the next monster's multipliers).
	sameTarget := p.LastMonsterID == "" || p.LastMonsterID == monsterID
	if sameTarget {
		p.Combo++
	} else {
		p.Combo = 1
	}
	if !sameTarget || p.TargetHP <= 0 {
		p.TargetHP = monster.MaxHP
	}
	p.LastMonsterID = monsterID

	dmg := float64(p.Damage) + bonuses[TargetDamage] + float64(engine.IntN(r.rng, 3))

	critChance := math.Min(critBase+float64(p.Level)*critPerLevel+bonuses[TargetCritChance], critCap)
	critical := engine.Chance(r.rng, critChance)
	if critical {
		dmg *= 2
	}

	comboMult := 1 + math.Min(float64(p.Combo)*comboStep, comboCap)
	dmg *= comboMult

	effective := int(math.Floor(dmg)) - monster.Resistance
	if effective < 1 {
		effective = 1
	}

	p.TargetHP -= effective
	defeated := p.TargetHP <= 0

	p.Stats.TotalDamage += int64(effective)
	if critical {
		p.Stats.CriticalHits++
	}
	if p.Combo > p.Stats.LongestCombo {
		p.Stats.LongestCombo = p.Combo
	}

	result := AttackResult{
		Outcome:     OutcomeOK,
		MonsterID:   monster.ID,
		MonsterName: monster.Name,
		Damage:      effective,
		Critical:    critical,
		Combo:       p.Combo,
		Defeated:    defeated,
	}

	entry := BattleLogEntry{
		Timestamp:   r.now(),
		MonsterID:   monster.ID,
		MonsterName: monster.Name,
		Damage:      effective,
		Critical:    critical,
		Combo:       p.Combo,
		Area:        monster.Area,
		PlayerLevel: p.Level,
	}

	if defeated {
		p.TargetHP = 0

		reward := mulFloor(monster.Reward, 1+bonuses[TargetCoins])
		xpMult := 1 + bonuses[TargetExperience]
		if critical {
			xpMult += critXPBonus
		}
		xp := int(mulFloor(int64(monster.Experience), xpMult))

		p.Coins += reward
		p.Stats.CoinsEarned += reward
		p.Experience += xp
		p.MonstersDefeated++

		result.Reward = reward
		result.Experience = xp
		entry.Reward = reward
		entry.Experience = xp

		r.rollLoot(p, monster, critical, bonuses[TargetDropRate], &result, &entry)

		for _, done := range RecordDailyProgress(p, DailyKill, 1, r.now()) {
			result.DailiesDone = append(result.DailiesDone, done.ID)
		}
		if result.ItemDropped != nil {
			for _, done := range RecordDailyProgress(p, DailyCollect, 1, r.now()) {
				result.DailiesDone = append(result.DailiesDone, done.ID)
			}
		}
	}

	result.MonsterHPLeft = p.TargetHP
	p.appendBattleLog(entry)

	result.LevelUp = CheckLevelUp(p)
	return result
}

// rollLoot performs the post-kill drop roll and, on success, clones a
// weighted pick from the area's drop table into the inventory.
func (r *Resolver) rollLoot(p *PlayerState, monster Monster, critical bool, dropBonus float64, result *AttackResult, entry *BattleLogEntry) {
	chance := monster.DropChance + dropBonus
	if critical {
		chance += critDropBonus
	}
	chance = math.Min(chance, maxDropChance)

	if !engine.Chance(r.rng, chance) {
		return
	}

	candidates := ItemsForArea(monster.Area)
	if len(candidates) == 0 {
		return
	}

	weights := make([]float64, len(candidates))
	for i, c := range candidates {
		weights[i] = c.DropRate
	}
	idx := engine.WeightedIndex(r.rng, weights)
	if idx < 0 {
		return
	}

	if len(p.Inventory) >= maxInventory {
		result.InventoryFull = true
		return
	}

	item := candidates[idx]
	item.ID = uuid.New().String()
	item.UpgradeLevel = 0

	p.Inventory = append(p.Inventory, item)
	p.Stats.ItemsFound++

	dropped := item
	result.ItemDropped = &dropped
	entry.ItemDropped = item.Name
}

// mulFloor multiplies an integer amount by a float multiplier using exact
// decimal arithmetic and floors the product.
func mulFloor(amount int64, mult float64) int64 {
	return decimal.NewFromInt(amount).Mul(decimal.NewFromFloat(mult)).Floor().IntPart()
}
