// Package mint is the seam to the on-chain minting collaborator. The engine
// hands an inventory item over and records the returned token id and
// transaction hash; it never validates or awaits blockchain finality.
package mint

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/chainquest/chainquest-go/internal/game"
)

// Receipt identifies a minted item on-chain.
type Receipt struct {
	TokenID string `json:"tokenId"`
	TxHash  string `json:"txHash"`
}

// Minter turns an inventory item into an on-chain token.
type Minter interface {
	Mint(ctx context.Context, playerID string, item game.InventoryItem) (Receipt, error)
}

// Simulated is the local stand-in used when no wallet bridge is wired. It
// derives a stable-looking token id and transaction hash without touching a
// chain.
type Simulated struct{}

// Mint produces a simulated receipt.
func (Simulated) Mint(_ context.Context, playerID string, item game.InventoryItem) (Receipt, error) {
	tokenID := uuid.New().String()
	digest := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%s", playerID, item.ID, tokenID)))

	return Receipt{
		TokenID: tokenID,
		TxHash:  "0x" + hex.EncodeToString(digest[:]),
	}, nil
}
