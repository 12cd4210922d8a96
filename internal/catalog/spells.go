package catalog

import (
	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
)

const (
	action      = "1 action"
	bonusAction = "1 bonus action"
	reaction    = "1 reaction"
)

// Spells returns the spell list
func Spells() []*dnd5e.Spell {
	return []*dnd5e.Spell{
		// cantrips
		{
			Name: "Fire Bolt", Level: 0, School: "Evocation", CastingTime: action,
			RangeFeet: 120, AttackType: "ranged", Damage: "1d10",
			Description: "You hurl a mote of fire at a creature or object within range.",
			Classes:     []string{"wizard"},
		},
		{
			Name: "Minor Illusion", Level: 0, School: "Illusion", CastingTime: action,
			RangeFeet: 30, DurationRounds: 10,
			Description: "You create a sound or an image of an object within range that lasts for the duration.",
			Classes:     []string{"bard", "wizard"},
		},
		{
			Name: "Dancing Lights", Level: 0, School: "Evocation", CastingTime: action,
			RangeFeet: 120, DurationRounds: 10, Concentration: true,
			Description: "You create up to four torch-sized lights within range.",
			Classes:     []string{"bard", "wizard"},
		},
		{
			Name: "Vicious Mockery", Level: 0, School: "Enchantment", CastingTime: action,
			RangeFeet: 60, SaveAttribute: "wisdom", Damage: "1d4",
			Description: "You unleash a string of insults laced with subtle enchantments at a creature you can see.",
			Classes:     []string{"bard"},
		},
		{
			Name: "Prestidigitation", Level: 0, School: "Transmutation", CastingTime: action,
			RangeFeet: 10, DurationRounds: 600,
			Description: "This spell is a minor magical trick that novice spellcasters use for practice.",
			Classes:     []string{"bard", "wizard"},
		},

		// 1st level
		{
			Name: "Magic Missile", Level: 1, School: "Evocation", CastingTime: action,
			RangeFeet: 120, Damage: "3d4",
			Description: "You create three glowing darts of magical force that each hit a creature of your choice.",
			Classes:     []string{"wizard"},
		},
		{
			Name: "Shield", Level: 1, School: "Abjuration", CastingTime: reaction,
			DurationRounds: 1,
			Description:    "An invisible barrier of magical force appears and protects you, granting +5 to AC.",
			Classes:        []string{"wizard"},
		},
		{
			Name: "Faerie Fire", Level: 1, School: "Evocation", CastingTime: action,
			RangeFeet: 60, DurationRounds: 10, Concentration: true, SaveAttribute: "dexterity",
			Description: "Each object in a 20-foot cube within range is outlined in blue, green, or violet light.",
			Classes:     []string{"bard"},
		},
		{
			Name: "Healing Word", Level: 1, School: "Evocation", CastingTime: bonusAction, RangeFeet: 60,
			Description: "A creature of your choice that you can see within range regains hit points.",
			Classes:     []string{"bard"},
		},
		{
			Name: "Cure Wounds", Level: 1, School: "Evocation", CastingTime: action,
			Description: "A creature you touch regains a number of hit points equal to 1d8 + your spellcasting ability modifier.",
			Classes:     []string{"bard"},
		},
		{
			Name: "Sleep", Level: 1, School: "Enchantment", CastingTime: action,
			RangeFeet: 90, DurationRounds: 10, Damage: "5d8",
			Description: "This spell sends creatures into a magical slumber.",
			Classes:     []string{"bard", "wizard"},
		},
		{
			Name: "Thunderwave", Level: 1, School: "Evocation", CastingTime: action,
			SaveAttribute: "constitution", Damage: "2d8",
			Description: "A wave of thunderous force sweeps out from you.",
			Classes:     []string{"bard", "wizard"},
		},
		{
			Name: "Detect Magic", Level: 1, School: "Divination", CastingTime: action,
			DurationRounds: 100, Concentration: true, Ritual: true,
			Description: "For the duration, you sense the presence of magic within 30 feet of you.",
			Classes:     []string{"bard", "wizard"},
		},

		// 2nd level
		{
			Name: "Darkness", Level: 2, School: "Evocation", CastingTime: action,
			RangeFeet: 60, DurationRounds: 100, Concentration: true,
			Description: "Magical darkness spreads from a point you choose within range to fill a 15-foot-radius sphere.",
			Classes:     []string{"wizard"},
		},
		{
			Name: "Misty Step", Level: 2, School: "Conjuration", CastingTime: bonusAction,
			Description: "Briefly surrounded by silvery mist, you teleport up to 30 feet to an unoccupied space that you can see.",
			Classes:     []string{"wizard"},
		},
		{
			Name: "Hold Person", Level: 2, School: "Enchantment", CastingTime: action,
			RangeFeet: 60, DurationRounds: 10, Concentration: true, SaveAttribute: "wisdom",
			Description: "Choose a humanoid that you can see within range. The target must succeed on a saving throw or be paralyzed.",
			Classes:     []string{"bard", "wizard"},
		},
		{
			Name: "Invisibility", Level: 2, School: "Illusion", CastingTime: action,
			DurationRounds: 600, Concentration: true,
			Description: "A creature you touch becomes invisible until the spell ends.",
			Classes:     []string{"bard", "wizard"},
		},

		// 3rd level and above
		{
			Name: "Fireball", Level: 3, School: "Evocation", CastingTime: action,
			RangeFeet: 150, SaveAttribute: "dexterity", Damage: "8d6",
			Description: "A bright streak flashes from your pointing finger to a point you choose and blossoms into an explosion of flame.",
			Classes:     []string{"wizard"},
		},
		{
			Name: "Counterspell", Level: 3, School: "Abjuration", CastingTime: reaction, RangeFeet: 60,
			Description: "You attempt to interrupt a creature in the process of casting a spell.",
			Classes:     []string{"wizard"},
		},
		{
			Name: "Dimension Door", Level: 4, School: "Conjuration", CastingTime: action, RangeFeet: 500,
			Description: "You teleport yourself from your current location to any other spot within range.",
			Classes:     []string{"bard", "wizard"},
		},
		{
			Name: "Cone of Cold", Level: 5, School: "Evocation", CastingTime: action,
			SaveAttribute: "constitution", Damage: "8d8",
			Description: "A blast of cold air erupts from your hands.",
			Classes:     []string{"wizard"},
		},
	}
}
