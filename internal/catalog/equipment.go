package catalog

import (
	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
)

const (
	cp = 1
	sp = 10
	gp = 100
)

// Equipment returns weapons, armor, packs, tools and adventuring gear
func Equipment() []*dnd5e.Equipment {
	return []*dnd5e.Equipment{
		// weapons
		weapon("Greataxe", 30*gp, 7, "1d12", "slashing", "heavy", "two-handed"),
		weapon("Greatsword", 50*gp, 6, "2d6", "slashing", "heavy", "two-handed"),
		weapon("Handaxe", 5*gp, 2, "1d6", "slashing", "light", "thrown"),
		weapon("Javelin", 5*sp, 2, "1d6", "piercing", "thrown"),
		weapon("Longsword", 15*gp, 3, "1d8", "slashing", "versatile"),
		weapon("Rapier", 25*gp, 2, "1d8", "piercing", "finesse"),
		weapon("Shortsword", 10*gp, 2, "1d6", "piercing", "finesse", "light"),
		weapon("Dagger", 2*gp, 1, "1d4", "piercing", "finesse", "light", "thrown"),
		weapon("Quarterstaff", 2*sp, 4, "1d6", "bludgeoning", "versatile"),
		weapon("Dart", 5*cp, 0.25, "1d4", "piercing", "finesse", "thrown"),
		weapon("Shortbow", 25*gp, 2, "1d6", "piercing", "ammunition", "two-handed"),
		weapon("Longbow", 50*gp, 2, "1d8", "piercing", "ammunition", "heavy", "two-handed"),
		weapon("Light Crossbow", 25*gp, 5, "1d8", "piercing", "ammunition", "loading", "two-handed"),

		// armor
		{Name: "Leather Armor", Category: dnd5e.CategoryArmor, PriceCP: 10 * gp, Weight: 10, ArmorClass: 11},
		{
			Name: "Scale Mail", Category: dnd5e.CategoryArmor, PriceCP: 50 * gp, Weight: 45, ArmorClass: 14,
			AttributeModifiers: map[string]int{"dexterity": 2},
			Properties:         []string{"stealth disadvantage"},
		},
		{
			Name: "Chain Mail", Category: dnd5e.CategoryArmor, PriceCP: 75 * gp, Weight: 55, ArmorClass: 16,
			AttributeModifiers: map[string]int{"dexterity": 0},
			Properties:         []string{"stealth disadvantage", "strength 13"},
		},
		{Name: "Shield", Category: dnd5e.CategoryArmor, PriceCP: 10 * gp, Weight: 6, ArmorClass: 2},

		// ammunition and gear
		gear("Arrow", 5*cp, 0.05),
		gear("Crossbow Bolt", 5*cp, 0.075),
		gear("Spellbook", 50*gp, 3),
		gear("Component Pouch", 25*gp, 2),
		gear("Arcane Focus", 10*gp, 1),
		gear("Holy Symbol", 5*gp, 1),
		gear("Prayer Book", 25*gp, 5),
		gear("Incense", 1*cp, 0),
		gear("Vestments", 1*gp, 4),
		gear("Common Clothes", 5*sp, 3),
		gear("Fine Clothes", 15*gp, 6),
		gear("Costume", 5*gp, 4),
		gear("Belt Pouch", 5*sp, 1),
		gear("Signet Ring", 5*gp, 0),
		gear("Ink Bottle", 10*gp, 0),
		gear("Quill", 2*cp, 0),
		gear("Insignia of Rank", 0, 0),
		gear("Deck of Cards", 5*sp, 0),
		gear("Crowbar", 2*gp, 5),

		// packs
		pack("Explorer's Pack", 10*gp, 59),
		pack("Entertainer's Pack", 40*gp, 38),
		pack("Dungeoneer's Pack", 12*gp, 61.5),
		pack("Burglar's Pack", 16*gp, 44.5),
		pack("Scholar's Pack", 40*gp, 10),
		pack("Diplomat's Pack", 39*gp, 36),

		// tools
		tool("Lute", 35*gp, 2),
		tool("Thieves' Tools", 25*gp, 1),
	}
}

func weapon(name string, price int, weight float64, dice, damageType string, properties ...string) *dnd5e.Equipment {
	return &dnd5e.Equipment{
		Name:       name,
		Category:   dnd5e.CategoryWeapon,
		PriceCP:    price,
		Weight:     weight,
		Damage:     &dnd5e.Damage{Dice: dice, Type: damageType},
		Properties: properties,
	}
}

func gear(name string, price int, weight float64) *dnd5e.Equipment {
	return &dnd5e.Equipment{Name: name, Category: dnd5e.CategoryGear, PriceCP: price, Weight: weight}
}

func pack(name string, price int, weight float64) *dnd5e.Equipment {
	return &dnd5e.Equipment{Name: name, Category: dnd5e.CategoryPack, PriceCP: price, Weight: weight}
}

func tool(name string, price int, weight float64) *dnd5e.Equipment {
	return &dnd5e.Equipment{Name: name, Category: dnd5e.CategoryTool, PriceCP: price, Weight: weight}
}
