package content

func defaultGear() GearCatalog {
	return GearCatalog{
		SlotArmor:  defaultArmor(),
		SlotWeapon: defaultWeapons(),
		SlotPower:  defaultPowers(),
		SlotGadget: defaultGadgets(),
	}
}

func defaultArmor() []GearItem {
	starters := []GearItem{
		{ID: "A-ARM0", Name: "Basic Prompting Tunic"},
		{ID: "C-ARM0", Name: "Grey Grid Tunic"},
		{ID: "B-ARM0", Name: "Flowing Scarf/Vest"},
		{ID: "S-ARM0", Name: "Digital Utility Suit"},
		{ID: "V-ARM0", Name: "Reinforced Shin Guards"},
		{ID: "W-ARM0", Name: "Translucent Vest"},
		{ID: "R-ARM0", Name: "Utility Belt/Pouches"},
		{ID: "O-ARM0", Name: "Hooded Cloak"},
	}
	out := make([]GearItem, 0, len(starters)+11)
	for _, s := range starters {
		s.Rarity = RarityCommon
		s.Unlock = UnlockCondition{Type: UnlockDefault}
		s.Asset = asset(s.ID)
		out = append(out, s)
	}

	out = append(out,
		GearItem{ID: "A002", Name: "Bias-Free Vest", Rarity: RarityUncommon,
			Unlock: UnlockCondition{Type: UnlockNexusComplete, Value: "S01-Q50"}, XPCost: 800, Asset: asset("A002")},
		GearItem{ID: "A003", Name: "Syntax Weave Cloak", Rarity: RarityRare,
			Unlock: UnlockCondition{Type: UnlockNexusComplete, Value: "S02-Q50"}, XPCost: 1500, Asset: asset("A003")},
		GearItem{ID: "A004", Name: "Ethical Firewall Plate", Rarity: RarityEpic,
			Unlock: UnlockCondition{Type: UnlockNexusComplete, Value: "S03-Q50"}, XPCost: 3500, Asset: asset("A004")},
	)

	legendaries := []GearItem{
		{ID: "A-ARM4", Name: "Architects Exoskeleton"},
		{ID: "C-ARM4", Name: "The Master Template Suit"},
		{ID: "B-ARM4", Name: "Legendary Muse Robes"},
		{ID: "S-ARM4", Name: "Master Engineer Plating"},
		{ID: "V-ARM4", Name: "The Failsafe Exo-Suit"},
		{ID: "W-ARM4", Name: "The Masterful Cipher Suit"},
		{ID: "R-ARM4", Name: "The Knowledge Weaver Suit"},
		{ID: "O-ARM4", Name: "The Uncorrupted Data Robe"},
	}
	for _, l := range legendaries {
		l.Rarity = RarityLegendary
		l.Unlock = UnlockCondition{Type: UnlockNexusComplete, Value: "S04-Q50"}
		l.XPCost = 7500
		l.Asset = asset(l.ID)
		out = append(out, l)
	}
	return out
}

// weaponLine builds one archetype's five-tier weapon progression. Tiers share
// unlock rules and costs; only names and asset keys vary per archetype.
func weaponLine(prefix, assetKey string, names [5]string) []GearItem {
	tiers := []struct {
		rarity Rarity
		unlock UnlockCondition
		xpCost int
	}{
		{RarityCommon, UnlockCondition{Type: UnlockDefault}, 0},
		{RarityUncommon, UnlockCondition{Type: UnlockLevelPass, Value: "S01-T10"}, 500},
		{RarityRare, UnlockCondition{Type: UnlockLevelPass, Value: "S02-T10"}, 1200},
		{RarityEpic, UnlockCondition{Type: UnlockNexusComplete, Value: "S03-Q50"}, 3000},
		{RarityLegendary, UnlockCondition{Type: UnlockNexusComplete, Value: "S04-Q50"}, 7500},
	}

	out := make([]GearItem, 0, 5)
	for i, tier := range tiers {
		aid := "W-" + assetKey + "-T" + string(rune('0'+i))
		out = append(out, GearItem{
			ID:      prefix + "-W0" + string(rune('0'+i)),
			Name:    names[i],
			Rarity:  tier.rarity,
			Unlock:  tier.unlock,
			XPCost:  tier.xpCost,
			AssetID: aid,
			Asset:   asset(aid),
		})
	}
	return out
}

func defaultWeapons() []GearItem {
	var out []GearItem
	out = append(out, weaponLine("A", "ANAL", [5]string{
		"Standard Data Scanner", "Clarity Lens", "Constraint Matrix Pistol", "Truthseeker Repeater", "Singularity Projector"})...)
	out = append(out, weaponLine("C", "ARCH", [5]string{
		"Base Holo-Ruler", "Boundary Scepter", "Blueprint Pistol", "Role-Define Hammer", "Nexus Foundation Drill"})...)
	out = append(out, weaponLine("B", "BARD", [5]string{
		"Holo-Lyre", "Clarity Cadenza Bow", "Apostrophe Blade", "Persona Scepter", "The Narrative Harp"})...)
	out = append(out, weaponLine("S", "SCRIP", [5]string{
		"Data Cable Whip", "Clean Code Pistol", "Version Spanner Rifle", "Persona Shell Shotgun", "Quantum Compiler Cannon"})...)
	out = append(out, weaponLine("V", "VAL", [5]string{
		"Logic Baton", "Explicit Request Shotgun", "Exception Catcher Shield", "Sanity Check Repeater", "Robustness Barrier Generator"})...)
	out = append(out, weaponLine("W", "WHISP", [5]string{
		"Economy Sidearm", "Concise Blaster", "Optimization Rifle", "The Concise Cannon", "The Elegant Algorithm"})...)
	out = append(out, weaponLine("R", "RES", [5]string{
		"Fragment Collector", "Data Scanner Mk II", "Schema Projector", "Persona Archive Gun", "The Encyclopedia Cannon"})...)
	out = append(out, weaponLine("O", "ORA", [5]string{
		"Pattern Seeker", "Example Pointer", "Context Stabilizer", "Holographic Template Emitter", "The Uncorrupted Database Scepter"})...)
	return out
}

func defaultPowers() []GearItem {
	return []GearItem{
		{ID: "P001", Name: "Precision Eyepiece", Rarity: RarityCommon,
			Unlock: UnlockCondition{Type: UnlockDefault}, Asset: asset("P001")},
		{ID: "P002", Name: "Unambiguity Filter", Rarity: RarityUncommon,
			Unlock: UnlockCondition{Type: UnlockNexusComplete, Value: "S01-Q50"}, XPCost: 1000, Asset: asset("P002")},
		{ID: "P003", Name: "Logic Grid Goggles", Rarity: RarityRare,
			Unlock: UnlockCondition{Type: UnlockNexusComplete, Value: "S02-Q50"}, XPCost: 2500, Asset: asset("P003")},
		{ID: "P004", Name: "Persona-Parsing Headset", Rarity: RarityEpic,
			Unlock: UnlockCondition{Type: UnlockNexusComplete, Value: "S03-Q50"}, XPCost: 5000, Asset: asset("P004")},
		{ID: "P005", Name: "Foundational Principle Core", Rarity: RarityLegendary,
			Unlock: UnlockCondition{Type: UnlockNexusComplete, Value: "S04-Q50"}, XPCost: 10000, Asset: asset("P005")},
	}
}

func defaultGadgets() []GearItem {
	gadgets := []struct {
		id      string
		name    string
		assetID string
	}{
		{"A-GAD0", "Precision Eyepiece", "GAD-ANAL-T0"},
		{"C-GAD0", "Neon-Blue Pauldrons", "GAD-ARCH-T0"},
		{"B-GAD0", "Echoing Microphone", "GAD-BARD-T0"},
		{"S-GAD0", "Syntax Gloves", "GAD-SCRIP-T0"},
		{"V-GAD0", "Pass/Fail Sentinel", "GAD-VAL-T0"},
		{"W-GAD0", "Digital Counter Watch", "GAD-WHISP-T0"},
		{"R-GAD0", "Blinking Antenna Backpack", "GAD-RES-T0"},
		{"O-GAD0", "Holographic Data Points", "GAD-ORA-T0"},
	}

	out := make([]GearItem, 0, len(gadgets))
	for _, g := range gadgets {
		out = append(out, GearItem{
			ID:      g.id,
			Name:    g.name,
			Rarity:  RarityCommon,
			Unlock:  UnlockCondition{Type: UnlockDefault},
			AssetID: g.assetID,
			Asset:   asset(g.assetID),
		})
	}
	return out
}
