package game

// LevelUpResult reports the outcome of a level-up evaluation.
type LevelUpResult struct {
	Leveled      bool  `json:"leveled"`
	Levels       int   `json:"levels,omitempty"`
	NewLevel     int   `json:"newLevel,omitempty"`
	CoinsAwarded int64 `json:"coinsAwarded,omitempty"`
}

// CheckLevelUp settles any pending level-ups. Remainder experience carries
// forward, so one large grant can produce several levels in a single call.
// Calling it again immediately after a no-op result changes nothing.
func CheckLevelUp(p *PlayerState) LevelUpResult {
	var result LevelUpResult

	for p.Experience >= p.ExperienceRequired {
		p.Experience -= p.ExperienceRequired
		p.Level++
		p.ExperienceRequired = p.Level * 100
		p.Damage += 2

		reward := int64(p.Level) * 25
		p.Coins += reward

		result.Leveled = true
		result.Levels++
		result.CoinsAwarded += reward
	}

	if result.Leveled {
		result.NewLevel = p.Level
	}
	return result
}

// CharacterUpgradeResult reports the outcome of a character upgrade.
type CharacterUpgradeResult struct {
	Outcome        Outcome `json:"outcome"`
	Index          int     `json:"index"`
	NewLevel       int     `json:"newLevel,omitempty"`
	Cost           int64   `json:"cost,omitempty"`
	CoinsRemaining int64   `json:"coinsRemaining"`
}

// UpgradeCharacter spends coins to level one of the player's units, raising
// its damage and defense and recomputing its experience requirement.
func UpgradeCharacter(p *PlayerState, idx int) CharacterUpgradeResult {
	if idx < 0 || idx >= len(p.Characters) {
		return CharacterUpgradeResult{Outcome: OutcomeNotFound, Index: idx, CoinsRemaining: p.Coins}
	}

	c := &p.Characters[idx]
	cost := int64(c.Level) * 100
	if p.Coins < cost {
		return CharacterUpgradeResult{Outcome: OutcomeInsufficientFunds, Index: idx, Cost: cost, CoinsRemaining: p.Coins}
	}

	p.Coins -= cost
	c.Level++
	c.Damage += 3
	c.Defense += 2
	c.ExperienceRequired = c.Level * 100

	return CharacterUpgradeResult{
		Outcome:        OutcomeOK,
		Index:          idx,
		NewLevel:       c.Level,
		Cost:           cost,
		CoinsRemaining: p.Coins,
	}
}
