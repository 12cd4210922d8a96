package catalog

import (
	"fmt"

	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
)

// Classes returns the character classes with their full 20-level progressions
func Classes() []*dnd5e.Class {
	return []*dnd5e.Class{
		barbarian(),
		bard(),
		fighter(),
		monk(),
		rogue(),
		wizard(),
	}
}

func barbarian() *dnd5e.Class {
	return &dnd5e.Class{
		Name:         "barbarian",
		Description:  "A fierce warrior of primitive background who can enter a battle rage.",
		HitDice:      "1d12",
		SavingThrows: []string{"strength", "constitution"},
		SkillChoice: dnd5e.SkillChoice{
			Choose: 2,
			From:   []string{"Animal Handling", "Athletics", "Intimidation", "Nature", "Perception", "Survival"},
		},
		ArmorTraining:  []string{"light", "medium", "shields"},
		WeaponTraining: []string{"simple", "martial"},
		StartingEquipment: []dnd5e.EquipmentOptionSet{
			{
				Description: "a greataxe or a greatsword",
				Options:     []dnd5e.EquipmentOption{items(one("Greataxe")), items(one("Greatsword"))},
			},
			{
				Description: "two handaxes or a quarterstaff",
				Options:     []dnd5e.EquipmentOption{items(n("Handaxe", 2)), items(one("Quarterstaff"))},
			},
			{
				Description: "an explorer's pack and four javelins",
				Options:     []dnd5e.EquipmentOption{items(one("Explorer's Pack"), n("Javelin", 4))},
			},
		},
		Progression: []dnd5e.ProgressionEntry{
			entry(1, features("Rage", "Unarmored Defense"), rageScaling(2, 2)),
			entry(2, features("Reckless Attack", "Danger Sense"), rageScaling(2, 2)),
			entry(3, features("Primal Path"), rageScaling(3, 2)),
			entry(4, features(asi), rageScaling(3, 2)),
			entry(5, features("Extra Attack", "Fast Movement"), rageScaling(3, 2)),
			entry(6, features("Path Feature"), rageScaling(4, 2)),
			entry(7, features("Feral Instinct"), rageScaling(4, 2)),
			entry(8, features(asi), rageScaling(4, 2)),
			entry(9, features("Brutal Critical"), rageScaling(4, 3)),
			entry(10, features("Path Feature"), rageScaling(4, 3)),
			entry(11, features("Relentless Rage"), rageScaling(4, 3)),
			entry(12, features(asi), rageScaling(5, 3)),
			entry(13, features("Brutal Critical"), rageScaling(5, 3)),
			entry(14, features("Path Feature"), rageScaling(5, 3)),
			entry(15, features("Persistent Rage"), rageScaling(5, 3)),
			entry(16, features(asi), rageScaling(5, 4)),
			entry(17, features("Brutal Critical"), rageScaling(6, 4)),
			entry(18, features("Indomitable Might"), rageScaling(6, 4)),
			entry(19, features(asi), rageScaling(6, 4)),
			entry(20, features("Primal Champion"), dnd5e.Scaling{
				"rages":      dnd5e.Text("unlimited"),
				"rageDamage": dnd5e.Int(4),
			}),
		},
	}
}

func bard() *dnd5e.Class {
	return &dnd5e.Class{
		Name:         "bard",
		Description:  "An inspiring magician whose power echoes the music of creation.",
		HitDice:      "1d8",
		SavingThrows: []string{"dexterity", "charisma"},
		SkillChoice: dnd5e.SkillChoice{
			Choose: 3,
			From: []string{
				"Acrobatics", "Animal Handling", "Arcana", "Athletics", "Deception", "History",
				"Insight", "Intimidation", "Investigation", "Medicine", "Nature", "Perception",
				"Performance", "Persuasion", "Religion", "Sleight of Hand", "Stealth", "Survival",
			},
		},
		ArmorTraining:  []string{"light"},
		WeaponTraining: []string{"simple", "hand crossbows", "longswords", "rapiers", "shortswords"},
		StartingEquipment: []dnd5e.EquipmentOptionSet{
			{
				Description: "a rapier, a longsword, or a dagger",
				Options:     []dnd5e.EquipmentOption{items(one("Rapier")), items(one("Longsword")), items(one("Dagger"))},
			},
			{
				Description: "a diplomat's pack or an entertainer's pack",
				Options:     []dnd5e.EquipmentOption{items(one("Diplomat's Pack")), items(one("Entertainer's Pack"))},
			},
			{
				Description: "a lute",
				Options:     []dnd5e.EquipmentOption{items(one("Lute"))},
			},
			{
				Description: "leather armor and a dagger",
				Options:     []dnd5e.EquipmentOption{items(one("Leather Armor"), one("Dagger"))},
			},
		},
		Progression: []dnd5e.ProgressionEntry{
			entry(1, features("Spellcasting", "Bardic Inspiration"), bardScaling(1, "1d6", 2, 4)),
			entry(2, features("Jack of All Trades", "Song of Rest"), bardScaling(2, "1d6", 2, 5)),
			entry(3, features("Bard College", "Expertise"), bardScaling(3, "1d6", 2, 6)),
			entry(4, features(asi), bardScaling(4, "1d6", 3, 7)),
			entry(5, features("Font of Inspiration"), bardScaling(5, "1d8", 3, 8)),
			entry(6, features("Countercharm", "College Feature"), bardScaling(6, "1d8", 3, 9)),
			entry(7, nil, bardScaling(7, "1d8", 3, 10)),
			entry(8, features(asi), bardScaling(8, "1d8", 3, 11)),
			entry(9, nil, bardScaling(9, "1d8", 3, 12)),
			entry(10, features("Magical Secrets", "Expertise"), bardScaling(10, "1d10", 4, 14)),
			entry(11, nil, bardScaling(11, "1d10", 4, 15)),
			entry(12, features(asi), bardScaling(12, "1d10", 4, 15)),
			entry(13, nil, bardScaling(13, "1d10", 4, 16)),
			entry(14, features("Magical Secrets", "College Feature"), bardScaling(14, "1d10", 4, 18)),
			entry(15, nil, bardScaling(15, "1d12", 4, 19)),
			entry(16, features(asi), bardScaling(16, "1d12", 4, 19)),
			entry(17, nil, bardScaling(17, "1d12", 4, 20)),
			entry(18, features("Magical Secrets"), bardScaling(18, "1d12", 4, 22)),
			entry(19, features(asi), bardScaling(19, "1d12", 4, 22)),
			entry(20, features("Superior Inspiration"), bardScaling(20, "1d12", 4, 22)),
		},
	}
}

func fighter() *dnd5e.Class {
	return &dnd5e.Class{
		Name:         "fighter",
		Description:  "A master of martial combat, skilled with a variety of weapons and armor.",
		HitDice:      "1d10",
		SavingThrows: []string{"strength", "constitution"},
		SkillChoice: dnd5e.SkillChoice{
			Choose: 2,
			From:   []string{"Acrobatics", "Animal Handling", "Athletics", "History", "Insight", "Intimidation", "Perception", "Survival"},
		},
		ArmorTraining:  []string{"light", "medium", "heavy", "shields"},
		WeaponTraining: []string{"simple", "martial"},
		StartingEquipment: []dnd5e.EquipmentOptionSet{
			{
				Description: "chain mail, or leather armor with a longbow and 20 arrows",
				Options: []dnd5e.EquipmentOption{
					items(one("Chain Mail")),
					items(one("Leather Armor"), one("Longbow"), n("Arrow", 20)),
				},
			},
			{
				Description: "a longsword and a shield, or a greatsword",
				Options:     []dnd5e.EquipmentOption{items(one("Longsword"), one("Shield")), items(one("Greatsword"))},
			},
			{
				Description: "a light crossbow and 20 bolts, or two handaxes",
				Options:     []dnd5e.EquipmentOption{items(one("Light Crossbow"), n("Crossbow Bolt", 20)), items(n("Handaxe", 2))},
			},
			{
				Description: "a dungeoneer's pack or an explorer's pack",
				Options:     []dnd5e.EquipmentOption{items(one("Dungeoneer's Pack")), items(one("Explorer's Pack"))},
			},
		},
		Progression: []dnd5e.ProgressionEntry{
			entry(1, features("Fighting Style", "Second Wind"), nil),
			entry(2, features("Action Surge"), fighterScaling(1, 0)),
			entry(3, features("Martial Archetype"), fighterScaling(1, 0)),
			entry(4, features(asi), fighterScaling(1, 0)),
			entry(5, features("Extra Attack"), fighterScaling(1, 0)),
			entry(6, features(asi), fighterScaling(1, 0)),
			entry(7, features("Archetype Feature"), fighterScaling(1, 0)),
			entry(8, features(asi), fighterScaling(1, 0)),
			entry(9, features("Indomitable"), fighterScaling(1, 1)),
			entry(10, features("Archetype Feature"), fighterScaling(1, 1)),
			entry(11, features("Extra Attack"), fighterScaling(1, 1)),
			entry(12, features(asi), fighterScaling(1, 1)),
			entry(13, features("Indomitable"), fighterScaling(1, 2)),
			entry(14, features(asi), fighterScaling(1, 2)),
			entry(15, features("Archetype Feature"), fighterScaling(1, 2)),
			entry(16, features(asi), fighterScaling(1, 2)),
			entry(17, features("Action Surge", "Indomitable"), fighterScaling(2, 3)),
			entry(18, features("Archetype Feature"), fighterScaling(2, 3)),
			entry(19, features(asi), fighterScaling(2, 3)),
			entry(20, features("Extra Attack"), fighterScaling(2, 3)),
		},
	}
}

func monk() *dnd5e.Class {
	return &dnd5e.Class{
		Name:         "monk",
		Description:  "A master of martial arts, harnessing the power of the body in pursuit of physical and spiritual perfection.",
		HitDice:      "1d8",
		SavingThrows: []string{"strength", "dexterity"},
		SkillChoice: dnd5e.SkillChoice{
			Choose: 2,
			From:   []string{"Acrobatics", "Athletics", "History", "Insight", "Religion", "Stealth"},
		},
		WeaponTraining: []string{"simple", "shortswords"},
		StartingEquipment: []dnd5e.EquipmentOptionSet{
			{
				Description: "a shortsword or a quarterstaff",
				Options:     []dnd5e.EquipmentOption{items(one("Shortsword")), items(one("Quarterstaff"))},
			},
			{
				Description: "a dungeoneer's pack or an explorer's pack",
				Options:     []dnd5e.EquipmentOption{items(one("Dungeoneer's Pack")), items(one("Explorer's Pack"))},
			},
			{
				Description: "10 darts",
				Options:     []dnd5e.EquipmentOption{items(n("Dart", 10))},
			},
		},
		Progression: []dnd5e.ProgressionEntry{
			entry(1, features("Unarmored Defense", "Martial Arts"), monkScaling("1d4", 0, 0)),
			entry(2, features("Ki", "Unarmored Movement"), monkScaling("1d4", 2, 10)),
			entry(3, features("Monastic Tradition", "Deflect Missiles"), monkScaling("1d4", 3, 10)),
			entry(4, features(asi, "Slow Fall"), monkScaling("1d4", 4, 10)),
			entry(5, features("Extra Attack", "Stunning Strike"), monkScaling("1d6", 5, 10)),
			entry(6, features("Ki-Empowered Strikes", "Tradition Feature"), monkScaling("1d6", 6, 15)),
			entry(7, features("Evasion", "Stillness of Mind"), monkScaling("1d6", 7, 15)),
			entry(8, features(asi), monkScaling("1d6", 8, 15)),
			entry(9, features("Unarmored Movement"), monkScaling("1d6", 9, 15)),
			entry(10, features("Purity of Body"), monkScaling("1d6", 10, 20)),
			entry(11, features("Tradition Feature"), monkScaling("1d8", 11, 20)),
			entry(12, features(asi), monkScaling("1d8", 12, 20)),
			entry(13, features("Tongue of the Sun and Moon"), monkScaling("1d8", 13, 20)),
			entry(14, features("Diamond Soul"), monkScaling("1d8", 14, 25)),
			entry(15, features("Timeless Body"), monkScaling("1d8", 15, 25)),
			entry(16, features(asi), monkScaling("1d8", 16, 25)),
			entry(17, features("Tradition Feature"), monkScaling("1d10", 17, 25)),
			entry(18, features("Empty Body"), monkScaling("1d10", 18, 30)),
			entry(19, features(asi), monkScaling("1d10", 19, 30)),
			entry(20, features("Perfect Self"), monkScaling("1d10", 20, 30)),
		},
	}
}

func rogue() *dnd5e.Class {
	return &dnd5e.Class{
		Name:         "rogue",
		Description:  "A scoundrel who uses stealth and trickery to overcome obstacles and enemies.",
		HitDice:      "1d8",
		SavingThrows: []string{"dexterity", "intelligence"},
		SkillChoice: dnd5e.SkillChoice{
			Choose: 4,
			From: []string{
				"Acrobatics", "Athletics", "Deception", "Insight", "Intimidation", "Investigation",
				"Perception", "Performance", "Persuasion", "Sleight of Hand", "Stealth",
			},
		},
		ArmorTraining:  []string{"light"},
		WeaponTraining: []string{"simple", "hand crossbows", "longswords", "rapiers", "shortswords"},
		StartingEquipment: []dnd5e.EquipmentOptionSet{
			{
				Description: "a rapier or a shortsword",
				Options:     []dnd5e.EquipmentOption{items(one("Rapier")), items(one("Shortsword"))},
			},
			{
				Description: "a shortbow and quiver of 20 arrows, or a shortsword",
				Options:     []dnd5e.EquipmentOption{items(one("Shortbow"), n("Arrow", 20)), items(one("Shortsword"))},
			},
			{
				Description: "a burglar's pack, a dungeoneer's pack, or an explorer's pack",
				Options: []dnd5e.EquipmentOption{
					items(one("Burglar's Pack")),
					items(one("Dungeoneer's Pack")),
					items(one("Explorer's Pack")),
				},
			},
			{
				Description: "leather armor, two daggers, and thieves' tools",
				Options:     []dnd5e.EquipmentOption{items(one("Leather Armor"), n("Dagger", 2), one("Thieves' Tools"))},
			},
		},
		Progression: []dnd5e.ProgressionEntry{
			entry(1, features("Expertise", "Sneak Attack", "Thieves' Cant"), sneakAttack(1)),
			entry(2, features("Cunning Action"), sneakAttack(2)),
			entry(3, features("Roguish Archetype"), sneakAttack(3)),
			entry(4, features(asi), sneakAttack(4)),
			entry(5, features("Uncanny Dodge"), sneakAttack(5)),
			entry(6, features("Expertise"), sneakAttack(6)),
			entry(7, features("Evasion"), sneakAttack(7)),
			entry(8, features(asi), sneakAttack(8)),
			entry(9, features("Archetype Feature"), sneakAttack(9)),
			entry(10, features(asi), sneakAttack(10)),
			entry(11, features("Reliable Talent"), sneakAttack(11)),
			entry(12, features(asi), sneakAttack(12)),
			entry(13, features("Archetype Feature"), sneakAttack(13)),
			entry(14, features("Blindsense"), sneakAttack(14)),
			entry(15, features("Slippery Mind"), sneakAttack(15)),
			entry(16, features(asi), sneakAttack(16)),
			entry(17, features("Archetype Feature"), sneakAttack(17)),
			entry(18, features("Elusive"), sneakAttack(18)),
			entry(19, features(asi), sneakAttack(19)),
			entry(20, features("Stroke of Luck"), sneakAttack(20)),
		},
	}
}

func wizard() *dnd5e.Class {
	return &dnd5e.Class{
		Name:         "wizard",
		Description:  "A scholarly magic-user capable of manipulating the structures of reality.",
		HitDice:      "1d6",
		SavingThrows: []string{"intelligence", "wisdom"},
		SkillChoice: dnd5e.SkillChoice{
			Choose: 2,
			From:   []string{"Arcana", "History", "Insight", "Investigation", "Medicine", "Religion"},
		},
		WeaponTraining: []string{"daggers", "darts", "slings", "quarterstaffs", "light crossbows"},
		StartingEquipment: []dnd5e.EquipmentOptionSet{
			{
				Description: "a quarterstaff or a dagger",
				Options:     []dnd5e.EquipmentOption{items(one("Quarterstaff")), items(one("Dagger"))},
			},
			{
				Description: "a component pouch or an arcane focus",
				Options:     []dnd5e.EquipmentOption{items(one("Component Pouch")), items(one("Arcane Focus"))},
			},
			{
				Description: "a scholar's pack or an explorer's pack",
				Options:     []dnd5e.EquipmentOption{items(one("Scholar's Pack")), items(one("Explorer's Pack"))},
			},
			{
				Description: "a spellbook",
				Options:     []dnd5e.EquipmentOption{items(one("Spellbook"))},
			},
		},
		Progression: []dnd5e.ProgressionEntry{
			entry(1, features("Spellcasting", "Arcane Recovery"), wizardScaling(1, 3)),
			entry(2, features("Arcane Tradition"), wizardScaling(2, 3)),
			entry(3, nil, wizardScaling(3, 3)),
			entry(4, features(asi), wizardScaling(4, 4)),
			entry(5, nil, wizardScaling(5, 4)),
			entry(6, features("Tradition Feature"), wizardScaling(6, 4)),
			entry(7, nil, wizardScaling(7, 4)),
			entry(8, features(asi), wizardScaling(8, 4)),
			entry(9, nil, wizardScaling(9, 4)),
			entry(10, features("Tradition Feature"), wizardScaling(10, 5)),
			entry(11, nil, wizardScaling(11, 5)),
			entry(12, features(asi), wizardScaling(12, 5)),
			entry(13, nil, wizardScaling(13, 5)),
			entry(14, features("Tradition Feature"), wizardScaling(14, 5)),
			entry(15, nil, wizardScaling(15, 5)),
			entry(16, features(asi), wizardScaling(16, 5)),
			entry(17, nil, wizardScaling(17, 5)),
			entry(18, features("Spell Mastery"), wizardScaling(18, 5)),
			entry(19, features(asi), wizardScaling(19, 5)),
			entry(20, features("Signature Spells"), wizardScaling(20, 5)),
		},
	}
}

const asi = "Ability Score Improvement"

// fullCasterSlots is the spell slot table shared by bards and wizards, indexed by class level
var fullCasterSlots = [21]map[int]int{
	1:  {1: 2},
	2:  {1: 3},
	3:  {1: 4, 2: 2},
	4:  {1: 4, 2: 3},
	5:  {1: 4, 2: 3, 3: 2},
	6:  {1: 4, 2: 3, 3: 3},
	7:  {1: 4, 2: 3, 3: 3, 4: 1},
	8:  {1: 4, 2: 3, 3: 3, 4: 2},
	9:  {1: 4, 2: 3, 3: 3, 4: 3, 5: 1},
	10: {1: 4, 2: 3, 3: 3, 4: 3, 5: 2},
	11: {1: 4, 2: 3, 3: 3, 4: 3, 5: 2, 6: 1},
	12: {1: 4, 2: 3, 3: 3, 4: 3, 5: 2, 6: 1},
	13: {1: 4, 2: 3, 3: 3, 4: 3, 5: 2, 6: 1, 7: 1},
	14: {1: 4, 2: 3, 3: 3, 4: 3, 5: 2, 6: 1, 7: 1},
	15: {1: 4, 2: 3, 3: 3, 4: 3, 5: 2, 6: 1, 7: 1, 8: 1},
	16: {1: 4, 2: 3, 3: 3, 4: 3, 5: 2, 6: 1, 7: 1, 8: 1},
	17: {1: 4, 2: 3, 3: 3, 4: 3, 5: 2, 6: 1, 7: 1, 8: 1, 9: 1},
	18: {1: 4, 2: 3, 3: 3, 4: 3, 5: 3, 6: 1, 7: 1, 8: 1, 9: 1},
	19: {1: 4, 2: 3, 3: 3, 4: 3, 5: 3, 6: 2, 7: 1, 8: 1, 9: 1},
	20: {1: 4, 2: 3, 3: 3, 4: 3, 5: 3, 6: 2, 7: 2, 8: 1, 9: 1},
}

func entry(level int, names []string, scaling dnd5e.Scaling) dnd5e.ProgressionEntry {
	return dnd5e.ProgressionEntry{
		Level:            level,
		ProficiencyBonus: 2 + (level-1)/4,
		Features:         names,
		Scaling:          scaling,
	}
}

func features(names ...string) []string {
	return names
}

func rageScaling(rages, damage int) dnd5e.Scaling {
	return dnd5e.Scaling{
		"rages":      dnd5e.Int(rages),
		"rageDamage": dnd5e.Int(damage),
	}
}

func bardScaling(level int, inspiration string, cantrips, known int) dnd5e.Scaling {
	return dnd5e.Scaling{
		"bardicInspiration": dnd5e.Text(inspiration),
		"cantripsKnown":     dnd5e.Int(cantrips),
		"spellsKnown":       dnd5e.Int(known),
		"spellSlots":        dnd5e.Table(fullCasterSlots[level]),
	}
}

func wizardScaling(level int, cantrips int) dnd5e.Scaling {
	return dnd5e.Scaling{
		"cantripsKnown": dnd5e.Int(cantrips),
		"spellSlots":    dnd5e.Table(fullCasterSlots[level]),
	}
}

func fighterScaling(surges, indomitable int) dnd5e.Scaling {
	scaling := dnd5e.Scaling{"actionSurges": dnd5e.Int(surges)}
	if indomitable > 0 {
		scaling["indomitableUses"] = dnd5e.Int(indomitable)
	}
	return scaling
}

func monkScaling(martialArts string, ki, movement int) dnd5e.Scaling {
	scaling := dnd5e.Scaling{"martialArts": dnd5e.Text(martialArts)}
	if ki > 0 {
		scaling["kiPoints"] = dnd5e.Int(ki)
	}
	if movement > 0 {
		scaling["unarmoredMovement"] = dnd5e.Int(movement)
	}
	return scaling
}

func sneakAttack(level int) dnd5e.Scaling {
	return dnd5e.Scaling{
		"sneakAttack": dnd5e.Text(fmt.Sprintf("%dd6", (level+1)/2)),
	}
}

func items(quantities ...dnd5e.EquipmentQuantity) dnd5e.EquipmentOption {
	return dnd5e.EquipmentOption{Items: quantities}
}

func one(name string) dnd5e.EquipmentQuantity {
	return n(name, 1)
}

func n(name string, quantity int) dnd5e.EquipmentQuantity {
	return dnd5e.EquipmentQuantity{Name: name, Quantity: quantity}
}
