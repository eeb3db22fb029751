package content

// UnlockType enumerates how a gear item becomes available.
type UnlockType string

const (
	UnlockDefault       UnlockType = "default"
	UnlockNexusComplete UnlockType = "nexus_complete"
	UnlockLevelPass     UnlockType = "level_pass"
)

// Rarity tiers for gear items.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

// UnlockCondition gates a gear item on a quest or training-level completion.
type UnlockCondition struct {
	Type  UnlockType `json:"type"`
	Value string     `json:"value,omitempty"`
}

// Met reports whether the condition is satisfied given the set of completed
// quest/level identifiers. Default items are always available; the other two
// condition types both key on a completion identifier.
func (c UnlockCondition) Met(completed func(id string) bool) bool {
	switch c.Type {
	case UnlockDefault:
		return true
	case UnlockNexusComplete, UnlockLevelPass:
		return completed != nil && completed(c.Value)
	default:
		return false
	}
}

// GearItem is one cosmetic unlockable.
type GearItem struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Rarity  Rarity          `json:"rarity,omitempty"`
	Unlock  UnlockCondition `json:"unlock_condition"`
	XPCost  int             `json:"xp_cost,omitempty"`
	AssetID string          `json:"asset_id,omitempty"`
	Asset   string          `json:"asset"`
}

// GearSlot names a gear category.
type GearSlot string

const (
	SlotArmor  GearSlot = "ARMOR"
	SlotWeapon GearSlot = "WEAPON"
	SlotPower  GearSlot = "POWER"
	SlotGadget GearSlot = "GADGET"
)

// GearCatalog groups gear items by slot.
type GearCatalog map[GearSlot][]GearItem

// Slot returns the items in a slot, nil when absent.
func (g GearCatalog) Slot(slot GearSlot) []GearItem {
	return g[slot]
}

// Available filters a slot by unlock condition.
func (g GearCatalog) Available(slot GearSlot, completed func(id string) bool) []GearItem {
	var out []GearItem
	for _, item := range g[slot] {
		if item.Unlock.Met(completed) {
			out = append(out, item)
		}
	}
	return out
}
