package catalog

import (
	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
)

// Attributes returns the racial traits
func Attributes() []*dnd5e.Attribute {
	return []*dnd5e.Attribute{
		{
			Name:        "Darkvision",
			Description: "You can see in dim light within 60 feet as if it were bright light, and in darkness as if it were dim light.",
		},
		{
			Name:        "Dwarven Resilience",
			Description: "You have advantage on saving throws against poison, and you have resistance against poison damage.",
		},
		{
			Name:        "Dwarven Combat Training",
			Description: "You have proficiency with the battleaxe, handaxe, light hammer, and warhammer.",
		},
		{
			Name:        "Stonecunning",
			Description: "Whenever you make a History check related to the origin of stonework, you add double your proficiency bonus.",
		},
		{
			Name:        "Dwarven Toughness",
			Description: "Your hit point maximum increases by 1, and it increases by 1 every time you gain a level.",
		},
		{
			Name:        "Keen Senses",
			Description: "You have proficiency in the Perception skill.",
		},
		{
			Name:        "Fey Ancestry",
			Description: "You have advantage on saving throws against being charmed, and magic can't put you to sleep.",
		},
		{
			Name:        "Trance",
			Description: "Elves meditate deeply for 4 hours a day instead of sleeping.",
		},
		{
			Name:        "Lucky",
			Description: "When you roll a 1 on an attack roll, ability check, or saving throw, you can reroll the die.",
		},
		{
			Name:        "Brave",
			Description: "You have advantage on saving throws against being frightened.",
		},
		{
			Name:        "Halfling Nimbleness",
			Description: "You can move through the space of any creature that is of a size larger than yours.",
		},
		{
			Name:        "Draconic Ancestry",
			Description: "You have draconic ancestry. Choose one type of dragon; it determines your breath weapon and damage resistance.",
		},
		{
			Name:        "Breath Weapon",
			Description: "You can use your action to exhale destructive energy determined by your draconic ancestry.",
		},
		{
			Name:        "Gnome Cunning",
			Description: "You have advantage on all Intelligence, Wisdom, and Charisma saving throws against magic.",
		},
		{
			Name:        "Skill Versatility",
			Description: "You gain proficiency in two skills of your choice.",
		},
		{
			Name:        "Menacing",
			Description: "You gain proficiency in the Intimidation skill.",
		},
		{
			Name:        "Relentless Endurance",
			Description: "When you are reduced to 0 hit points but not killed outright, you can drop to 1 hit point instead.",
		},
		{
			Name:        "Savage Attacks",
			Description: "When you score a critical hit with a melee weapon attack, you can roll one of the weapon's damage dice one additional time.",
		},
		{
			Name:        "Hellish Resistance",
			Description: "You have resistance to fire damage.",
		},
		{
			Name:        "Infernal Legacy",
			Description: "You know the thaumaturgy cantrip, and gain hellish rebuke at 3rd level and darkness at 5th level.",
		},
		{
			Name:           "Human Versatility",
			Description:    "Your ability scores each increase by 1.",
			AbilityBonuses: map[string]int{"strength": 1, "dexterity": 1, "constitution": 1, "intelligence": 1, "wisdom": 1, "charisma": 1},
		},
	}
}
