package catalog

import (
	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
)

// Subclasses returns the subclasses, each naming its parent class
func Subclasses() []*dnd5e.Subclass {
	return []*dnd5e.Subclass{
		// barbarian primal paths
		{Name: "Berserker", ClassName: "barbarian", Description: "For some barbarians, rage is a means to an end, and that end is violence."},
		{Name: "Totem Warrior", ClassName: "barbarian", Description: "A spiritual journey that accepts a spirit animal as guide, protector, and inspiration."},
		{Name: "Ancestral Guardian", ClassName: "barbarian", Description: "Barbarians who revere their ancestors and call on them to protect their allies."},
		{Name: "Storm Herald", ClassName: "barbarian", Description: "Barbarians who channel the fury of nature into a storm that surrounds them."},
		{Name: "Zealot", ClassName: "barbarian", Description: "Barbarians whose rage is fueled by the divine."},
		{Name: "Beast", ClassName: "barbarian", Description: "Barbarians whose rage unleashes the bestial power within them."},
		{Name: "Wild Magic", ClassName: "barbarian", Description: "Barbarians whose rage is touched by wild, unpredictable magic."},
		{Name: "Battlerager", ClassName: "barbarian", Description: "Dwarven warriors who fight encased in spiked armor."},

		// bard colleges
		{Name: "College of Lore", ClassName: "bard", Description: "Bards who collect bits of knowledge from scholarly tomes and peasant tales alike."},
		{Name: "College of Valor", ClassName: "bard", Description: "Daring skalds whose tales keep alive the memory of great heroes."},
		{Name: "College of Glamour", ClassName: "bard", Description: "Bards who mastered their craft in the vibrant realm of the Feywild."},
		{Name: "College of Swords", ClassName: "bard", Description: "Blades who entertain through daring feats of weapon prowess."},
		{Name: "College of Whispers", ClassName: "bard", Description: "Bards who use their gifts to sow fear and ferret out secrets."},

		// fighter archetypes
		{Name: "Champion", ClassName: "fighter", Description: "Fighters who focus on raw physical power honed to deadly perfection."},
		{Name: "Battle Master", ClassName: "fighter", Description: "Fighters who employ martial techniques passed down through generations."},
		{Name: "Eldritch Knight", ClassName: "fighter", Description: "Fighters who combine martial mastery with careful study of magic."},

		// monk traditions
		{Name: "Way of the Open Hand", ClassName: "monk", Description: "Monks who are the ultimate masters of martial arts combat."},
		{Name: "Way of Shadow", ClassName: "monk", Description: "Monks who follow a tradition that values stealth and subterfuge."},
		{Name: "Way of the Four Elements", ClassName: "monk", Description: "Monks who harness the elements by focusing their ki."},

		// rogue archetypes
		{Name: "Thief", ClassName: "rogue", Description: "Rogues who hone their skills in the larcenous arts."},
		{Name: "Assassin", ClassName: "rogue", Description: "Rogues who focus on the grim art of death."},
		{Name: "Arcane Trickster", ClassName: "rogue", Description: "Rogues who enhance their stealth and agility with magic."},

		// wizard schools
		{Name: "School of Abjuration", ClassName: "wizard", Description: "Wizards who emphasize magic that blocks, banishes, or protects."},
		{Name: "School of Conjuration", ClassName: "wizard", Description: "Wizards who favor spells that produce objects and creatures out of thin air."},
		{Name: "School of Divination", ClassName: "wizard", Description: "Wizards who strive to part the veils of space, time, and consciousness."},
		{Name: "School of Enchantment", ClassName: "wizard", Description: "Wizards who have honed their ability to magically entrance and beguile."},
		{Name: "School of Evocation", ClassName: "wizard", Description: "Wizards who create powerful elemental effects."},
		{Name: "School of Illusion", ClassName: "wizard", Description: "Wizards who focus on magic that dazzles the senses and befuddles the mind."},
		{Name: "School of Necromancy", ClassName: "wizard", Description: "Wizards who explore the cosmic forces of life, death, and undeath."},
		{Name: "School of Transmutation", ClassName: "wizard", Description: "Wizards who study spells that modify energy and matter."},
	}
}
