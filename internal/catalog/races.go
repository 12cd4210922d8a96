package catalog

import (
	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
)

// Races returns the playable races. Attributes are named in AttributeNames;
// snapshots are embedded when the race is seeded.
func Races() []*dnd5e.Race {
	return []*dnd5e.Race{
		{
			Name:           "dwarf",
			Description:    "Bold and hardy, dwarves are known as skilled warriors, miners, and workers of stone and metal.",
			Size:           "Medium",
			Speed:          25,
			AbilityBonuses: map[string]int{"constitution": 2},
			AttributeNames: []string{"Darkvision", "Dwarven Resilience", "Dwarven Combat Training", "Stonecunning"},
		},
		{
			Name:           "elf",
			Description:    "Elves are a magical people of otherworldly grace, living in the world but not entirely part of it.",
			Size:           "Medium",
			Speed:          30,
			AbilityBonuses: map[string]int{"dexterity": 2},
			AttributeNames: []string{"Darkvision", "Keen Senses", "Fey Ancestry", "Trance"},
		},
		{
			Name:           "halfling",
			Description:    "The diminutive halflings survive in a world full of larger creatures by avoiding notice.",
			Size:           "Small",
			Speed:          25,
			AbilityBonuses: map[string]int{"dexterity": 2},
			AttributeNames: []string{"Lucky", "Brave", "Halfling Nimbleness"},
		},
		{
			Name:           "human",
			Description:    "Humans are the most adaptable and ambitious people among the common races.",
			Size:           "Medium",
			Speed:          30,
			AbilityBonuses: map[string]int{"strength": 1, "dexterity": 1, "constitution": 1, "intelligence": 1, "wisdom": 1, "charisma": 1},
			AttributeNames: []string{"Human Versatility"},
		},
		{
			Name:           "dragonborn",
			Description:    "Dragonborn look very much like dragons standing erect in humanoid form.",
			Size:           "Medium",
			Speed:          30,
			AbilityBonuses: map[string]int{"strength": 2, "charisma": 1},
			AttributeNames: []string{"Draconic Ancestry", "Breath Weapon"},
		},
		{
			Name:           "gnome",
			Description:    "A gnome's energy and enthusiasm for living shines through every inch of their tiny body.",
			Size:           "Small",
			Speed:          25,
			AbilityBonuses: map[string]int{"intelligence": 2},
			AttributeNames: []string{"Darkvision", "Gnome Cunning"},
		},
		{
			Name:           "half-elf",
			Description:    "Half-elves combine what some say are the best qualities of their elf and human parents.",
			Size:           "Medium",
			Speed:          30,
			AbilityBonuses: map[string]int{"charisma": 2},
			AttributeNames: []string{"Darkvision", "Fey Ancestry", "Skill Versatility"},
		},
		{
			Name:           "half-orc",
			Description:    "Half-orcs' grayish pigmentation, sloping foreheads, and prominent teeth make their orcish heritage plain.",
			Size:           "Medium",
			Speed:          30,
			AbilityBonuses: map[string]int{"strength": 2, "constitution": 1},
			AttributeNames: []string{"Darkvision", "Menacing", "Relentless Endurance", "Savage Attacks"},
		},
		{
			Name:           "tiefling",
			Description:    "To be greeted with stares and whispers is the lot of tieflings, whose infernal heritage is plain to see.",
			Size:           "Medium",
			Speed:          30,
			AbilityBonuses: map[string]int{"intelligence": 1, "charisma": 2},
			AttributeNames: []string{"Darkvision", "Hellish Resistance", "Infernal Legacy"},
		},
	}
}

// Subraces returns the subraces, each naming its parent race
func Subraces() []*dnd5e.Subrace {
	return []*dnd5e.Subrace{
		{
			Name:           "Hill Dwarf",
			Description:    "As a hill dwarf, you have keen senses, deep intuition, and remarkable resilience.",
			RaceName:       "dwarf",
			AbilityBonuses: map[string]int{"wisdom": 1},
		},
		{
			Name:           "Mountain Dwarf",
			Description:    "As a mountain dwarf, you're strong and hardy, accustomed to a difficult life in rugged terrain.",
			RaceName:       "dwarf",
			AbilityBonuses: map[string]int{"strength": 2},
		},
		{
			Name:           "High Elf",
			Description:    "As a high elf, you have a keen mind and a mastery of at least the basics of magic.",
			RaceName:       "elf",
			AbilityBonuses: map[string]int{"intelligence": 1},
		},
		{
			Name:           "Wood Elf",
			Description:    "As a wood elf, you have keen senses and intuition, and your fleet feet carry you quickly through your native forests.",
			RaceName:       "elf",
			AbilityBonuses: map[string]int{"wisdom": 1},
		},
		{
			Name:           "Dark Elf",
			Description:    "Descended from an earlier subrace of dark-skinned elves, the drow were banished from the surface world.",
			RaceName:       "elf",
			AbilityBonuses: map[string]int{"charisma": 1},
			Spells: []dnd5e.LeveledSpell{
				{Level: 1, Spell: "Dancing Lights"},
				{Level: 3, Spell: "Faerie Fire"},
				{Level: 5, Spell: "Darkness"},
			},
		},
		{
			Name:           "Lightfoot Halfling",
			Description:    "As a lightfoot halfling, you can easily hide from notice, even using other people as cover.",
			RaceName:       "halfling",
			AbilityBonuses: map[string]int{"charisma": 1},
		},
		{
			Name:           "Stout Halfling",
			Description:    "As a stout halfling, you're hardier than average and have some resistance to poison.",
			RaceName:       "halfling",
			AbilityBonuses: map[string]int{"constitution": 1},
		},
		{
			Name:           "Forest Gnome",
			Description:    "As a forest gnome, you have a natural knack for illusion and inherent quickness and stealth.",
			RaceName:       "gnome",
			AbilityBonuses: map[string]int{"dexterity": 1},
			Spells: []dnd5e.LeveledSpell{
				{Level: 1, Spell: "Minor Illusion"},
			},
		},
		{
			Name:           "Rock Gnome",
			Description:    "As a rock gnome, you have a natural inventiveness and hardiness beyond that of other gnomes.",
			RaceName:       "gnome",
			AbilityBonuses: map[string]int{"constitution": 1},
		},
	}
}
