package game

// SkillBonuses sums valuePerLevel × level across all skills per target
// dimension. The damage bonus is applied at resolution time on top of the
// player's base damage, even though damage skills also bump base damage when
// upgraded. That asymmetry is deliberate and load-bearing: battle damage must
// not change shape if the pre-aggregation is ever normalized away.
func SkillBonuses(p *PlayerState) map[SkillTarget]float64 {
	bonuses := make(map[SkillTarget]float64, 6)
	for _, s := range p.Skills {
		if s.Level == 0 {
			continue
		}
		bonuses[s.Target] += s.Bonus()
	}
	return bonuses
}

// SkillUpgradeResult reports the outcome of a skill upgrade attempt.
type SkillUpgradeResult struct {
	Outcome        Outcome `json:"outcome"`
	SkillID        string  `json:"skillId"`
	NewLevel       int     `json:"newLevel,omitempty"`
	Cost           int64   `json:"cost,omitempty"`
	CoinsRemaining int64   `json:"coinsRemaining"`
}

// UpgradeSkill levels a skill up by one, deducting its cost. Damage-target
// skills immediately raise the player's base damage; every other target is
// summed on demand at resolution time.
func UpgradeSkill(p *PlayerState, skillID string) SkillUpgradeResult {
	skill := p.FindSkill(skillID)
	if skill == nil {
		return SkillUpgradeResult{Outcome: OutcomeNotFound, SkillID: skillID, CoinsRemaining: p.Coins}
	}
	if skill.Level >= skill.MaxLevel {
		return SkillUpgradeResult{Outcome: OutcomeMaxLevel, SkillID: skillID, CoinsRemaining: p.Coins}
	}

	cost := skill.UpgradeCost()
	if p.Coins < cost {
		return SkillUpgradeResult{Outcome: OutcomeInsufficientFunds, SkillID: skillID, Cost: cost, CoinsRemaining: p.Coins}
	}

	p.Coins -= cost
	skill.Level++

	if skill.Target == TargetDamage {
		p.Damage += int(skill.ValuePerLevel)
	}

	return SkillUpgradeResult{
		Outcome:        OutcomeOK,
		SkillID:        skillID,
		NewLevel:       skill.Level,
		Cost:           cost,
		CoinsRemaining: p.Coins,
	}
}
