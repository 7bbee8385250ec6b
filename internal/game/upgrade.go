package game

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/chainquest/chainquest-go/internal/engine"
)

const (
	// upgradeCostStep raises the coin cost by 50% of base price per level.
	upgradeCostStep = 0.5

	// upgradeBaseOdds decays by upgradeOddsDecay per level, bounded below by
	// upgradeMinOdds.
	upgradeBaseOdds  = 0.95
	upgradeOddsDecay = 0.05
	upgradeMinOdds   = 0.10

	// upgradePowerGain is the fractional power increase on success.
	upgradePowerGain = 0.20
)

// rarityOddsAdjust shifts the success odds by rarity: cheap items enhance
// easily, legendaries resist.
var rarityOddsAdjust = map[Rarity]float64{
	RarityCommon:    0.10,
	RarityUncommon:  0.05,
	RarityRare:      0,
	RarityEpic:      -0.05,
	RarityLegendary: -0.10,
}

// upgradeSuffix matches a trailing " +N" enhancement marker on item names.
var upgradeSuffix = regexp.MustCompile(`\s\+\d+$`)

// ItemUpgradeResult reports the outcome of an enhancement attempt. A failed
// roll is an expected outcome, not an error: the cost is consumed either way.
type ItemUpgradeResult struct {
	Outcome        Outcome  `json:"outcome"`
	ItemID         string   `json:"itemId"`
	Cost           int64    `json:"cost,omitempty"`
	NewLevel       int      `json:"newLevel,omitempty"`
	NewPower       int      `json:"newPower,omitempty"`
	NewName        string   `json:"newName,omitempty"`
	CoinsLost      int64    `json:"coinsLost,omitempty"`
	CoinsRemaining int64    `json:"coinsRemaining"`
	DailiesDone    []string `json:"dailiesDone,omitempty"`
}

// UpgradeItem attempts a probabilistic in-place enhancement of an inventory
// item. The coin cost is deducted before the roll and is not refunded on
// failure.
func (r *Resolver) UpgradeItem(p *PlayerState, itemID string) ItemUpgradeResult {
	item := p.FindItem(itemID)
	if item == nil {
		return ItemUpgradeResult{Outcome: OutcomeNotFound, ItemID: itemID, CoinsRemaining: p.Coins}
	}

	if item.UpgradeLevel >= item.Rarity.UpgradeCap() {
		return ItemUpgradeResult{Outcome: OutcomeCapReached, ItemID: itemID, CoinsRemaining: p.Coins}
	}

	cost := upgradeCost(item.Price, item.UpgradeLevel)
	if p.Coins < cost {
		return ItemUpgradeResult{Outcome: OutcomeInsufficientFunds, ItemID: itemID, Cost: cost, CoinsRemaining: p.Coins}
	}

	p.Coins -= cost

	odds := upgradeBaseOdds - float64(item.UpgradeLevel)*upgradeOddsDecay + rarityOddsAdjust[item.Rarity]
	if odds < upgradeMinOdds {
		odds = upgradeMinOdds
	}
	if odds > 1 {
		odds = 1
	}

	if !engine.Chance(r.rng, odds) {
		return ItemUpgradeResult{
			Outcome:        OutcomeUpgradeFailed,
			ItemID:         itemID,
			Cost:           cost,
			CoinsLost:      cost,
			CoinsRemaining: p.Coins,
		}
	}

	item.UpgradeLevel++
	item.Power += int(mulFloor(int64(item.Power), upgradePowerGain))
	item.Name = upgradedName(item.Name, item.UpgradeLevel)

	result := ItemUpgradeResult{
		Outcome:        OutcomeOK,
		ItemID:         itemID,
		Cost:           cost,
		NewLevel:       item.UpgradeLevel,
		NewPower:       item.Power,
		NewName:        item.Name,
		CoinsRemaining: p.Coins,
	}
	for _, done := range RecordDailyProgress(p, DailyUpgrade, 1, r.now()) {
		result.DailiesDone = append(result.DailiesDone, done.ID)
	}
	CheckLevelUp(p)
	result.CoinsRemaining = p.Coins
	return result
}

// upgradeCost is floor(basePrice × (1 + upgradeLevel × 0.5)).
func upgradeCost(basePrice int64, upgradeLevel int) int64 {
	mult := decimal.NewFromInt(1).Add(
		decimal.NewFromInt(int64(upgradeLevel)).Mul(decimal.NewFromFloat(upgradeCostStep)))
	return decimal.NewFromInt(basePrice).Mul(mult).Floor().IntPart()
}

// upgradedName replaces any existing " +N" suffix with the new level.
func upgradedName(name string, level int) string {
	base := upgradeSuffix.ReplaceAllString(name, "")
	return fmt.Sprintf("%s +%d", base, level)
}
