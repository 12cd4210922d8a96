package catalog

import (
	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
)

// Features returns the class features. Each feature's class map holds the
// first level at which a class progression lists it.
func Features() []*dnd5e.Feature {
	firstLevels := make(map[string]map[string]int)
	for _, class := range Classes() {
		for _, entry := range class.Progression {
			for _, name := range entry.Features {
				levels, ok := firstLevels[name]
				if !ok {
					levels = make(map[string]int)
					firstLevels[name] = levels
				}
				if current, seen := levels[class.Name]; !seen || entry.Level < current {
					levels[class.Name] = entry.Level
				}
			}
		}
	}

	out := make([]*dnd5e.Feature, 0, len(featureText))
	for _, f := range featureText {
		classes := firstLevels[f.name]
		if classes == nil {
			classes = map[string]int{}
		}
		out = append(out, &dnd5e.Feature{
			Name:        f.name,
			Description: f.description,
			Classes:     classes,
		})
	}
	return out
}

var featureText = []struct {
	name        string
	description string
}{
	// shared
	{asi, "Increase one ability score by 2, or two ability scores by 1. You can't increase an ability score above 20."},
	{"Extra Attack", "You can attack more than once whenever you take the Attack action on your turn."},
	{"Unarmored Defense", "While you are not wearing any armor, your Armor Class includes an additional ability modifier."},
	{"Spellcasting", "You have learned to cast spells and can prepare or know a number of them."},
	{"Expertise", "Choose two of your skill proficiencies. Your proficiency bonus is doubled for any ability check you make that uses either."},
	{"Evasion", "When subjected to an effect that allows a Dexterity saving throw for half damage, you take no damage on a success."},
	{"Archetype Feature", "You gain a feature granted by your archetype."},
	{"Tradition Feature", "You gain a feature granted by your tradition."},

	// barbarian
	{"Rage", "In battle, you fight with primal ferocity, gaining bonus damage and resistance to physical damage."},
	{"Reckless Attack", "You can throw aside all concern for defense to attack with fierce desperation."},
	{"Danger Sense", "You have advantage on Dexterity saving throws against effects that you can see."},
	{"Primal Path", "You choose a path that shapes the nature of your rage."},
	{"Fast Movement", "Your speed increases by 10 feet while you aren't wearing heavy armor."},
	{"Path Feature", "You gain a feature granted by your primal path."},
	{"Feral Instinct", "You have advantage on initiative rolls and can act normally on a surprised turn if you rage."},
	{"Brutal Critical", "You can roll additional weapon damage dice when determining the extra damage for a critical hit."},
	{"Relentless Rage", "Your rage can keep you fighting despite grievous wounds."},
	{"Persistent Rage", "Your rage ends early only if you fall unconscious or choose to end it."},
	{"Indomitable Might", "If your total for a Strength check is less than your Strength score, you can use that score in place of the total."},
	{"Primal Champion", "Your Strength and Constitution scores increase by 4, and their maximum is now 24."},

	// bard
	{"Bardic Inspiration", "You can inspire others through stirring words or music, granting them a Bardic Inspiration die."},
	{"Jack of All Trades", "You can add half your proficiency bonus to any ability check that doesn't already include it."},
	{"Song of Rest", "You can use soothing music or oration to help revitalize your wounded allies during a short rest."},
	{"Bard College", "You delve into the advanced techniques of a bard college of your choice."},
	{"Font of Inspiration", "You regain all of your expended uses of Bardic Inspiration when you finish a short or long rest."},
	{"Countercharm", "You can use musical notes or words of power to disrupt mind-influencing effects."},
	{"College Feature", "You gain a feature granted by your bard college."},
	{"Magical Secrets", "You learn two spells of your choice from any class."},
	{"Superior Inspiration", "When you roll initiative and have no uses of Bardic Inspiration left, you regain one use."},

	// fighter
	{"Fighting Style", "You adopt a particular style of fighting as your specialty."},
	{"Second Wind", "You can use a bonus action to regain hit points equal to 1d10 + your fighter level."},
	{"Action Surge", "You can push yourself beyond your normal limits and take one additional action."},
	{"Martial Archetype", "You choose an archetype that you strive to emulate in your combat styles and techniques."},
	{"Indomitable", "You can reroll a saving throw that you fail."},

	// monk
	{"Martial Arts", "You gain mastery of combat styles that use unarmed strikes and monk weapons."},
	{"Ki", "You can harness the mystic energy of ki, represented by a number of ki points."},
	{"Unarmored Movement", "Your speed increases while you are not wearing armor or wielding a shield."},
	{"Monastic Tradition", "You commit yourself to a monastic tradition."},
	{"Deflect Missiles", "You can use your reaction to deflect or catch the missile when you are hit by a ranged weapon attack."},
	{"Slow Fall", "You can use your reaction when you fall to reduce any falling damage you take."},
	{"Stunning Strike", "You can interfere with the flow of ki in an opponent's body to stun them."},
	{"Ki-Empowered Strikes", "Your unarmed strikes count as magical for the purpose of overcoming resistance and immunity."},
	{"Stillness of Mind", "You can use your action to end one effect on yourself that is causing you to be charmed or frightened."},
	{"Purity of Body", "Your mastery of the ki flowing through you makes you immune to disease and poison."},
	{"Tongue of the Sun and Moon", "You understand all spoken languages, and any creature that can understand a language can understand you."},
	{"Diamond Soul", "You gain proficiency in all saving throws."},
	{"Timeless Body", "You no longer suffer the frailty of old age, and you can't be aged magically."},
	{"Empty Body", "You can spend ki points to become invisible and resistant to all damage but force damage."},
	{"Perfect Self", "When you roll for initiative and have no ki points remaining, you regain 4 ki points."},

	// rogue
	{"Sneak Attack", "You know how to strike subtly and exploit a foe's distraction for extra damage."},
	{"Thieves' Cant", "You know thieves' cant, a secret mix of dialect, jargon, and code."},
	{"Cunning Action", "You can take a bonus action on each of your turns to Dash, Disengage, or Hide."},
	{"Roguish Archetype", "You choose an archetype that you emulate in the exercise of your rogue abilities."},
	{"Uncanny Dodge", "When an attacker that you can see hits you with an attack, you can halve the attack's damage."},
	{"Reliable Talent", "Whenever you make an ability check that lets you add your proficiency bonus, you can treat a d20 roll of 9 or lower as a 10."},
	{"Blindsense", "If you are able to hear, you are aware of the location of any hidden or invisible creature within 10 feet of you."},
	{"Slippery Mind", "You gain proficiency in Wisdom saving throws."},
	{"Elusive", "No attack roll has advantage against you while you aren't incapacitated."},
	{"Stroke of Luck", "You can turn a miss into a hit, or treat a failed ability check as a 20."},

	// wizard
	{"Arcane Recovery", "Once per day when you finish a short rest, you can recover some expended spell slots."},
	{"Arcane Tradition", "You choose an arcane tradition, shaping your practice of magic through one of the schools."},
	{"Spell Mastery", "You can cast a chosen 1st-level and 2nd-level spell at their lowest level without expending a spell slot."},
	{"Signature Spells", "You gain mastery over two powerful 3rd-level spells and can cast them with little effort."},
}
