package catalog

import (
	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
)

// Alignments returns the nine alignments
func Alignments() []*dnd5e.Alignment {
	return []*dnd5e.Alignment{
		{Name: "Lawful Good", Abbreviation: "LG", Description: "Creatures that can be counted on to do the right thing as expected by society."},
		{Name: "Neutral Good", Abbreviation: "NG", Description: "Folk who do the best they can to help others according to their needs."},
		{Name: "Chaotic Good", Abbreviation: "CG", Description: "Creatures that act as their conscience directs, with little regard for what others expect."},
		{Name: "Lawful Neutral", Abbreviation: "LN", Description: "Individuals who act in accordance with law, tradition, or personal codes."},
		{Name: "Neutral", Abbreviation: "N", Description: "Those who prefer to steer clear of moral questions and don't take sides."},
		{Name: "Chaotic Neutral", Abbreviation: "CN", Description: "Creatures that follow their whims, holding their personal freedom above all else."},
		{Name: "Lawful Evil", Abbreviation: "LE", Description: "Creatures that methodically take what they want, within the limits of a code."},
		{Name: "Neutral Evil", Abbreviation: "NE", Description: "Those who do whatever they can get away with, without compassion or qualms."},
		{Name: "Chaotic Evil", Abbreviation: "CE", Description: "Creatures that act with arbitrary violence, spurred by their greed, hatred, or bloodlust."},
	}
}

// Backgrounds returns the character backgrounds. Equipment is referenced by name.
func Backgrounds() []*dnd5e.Background {
	return []*dnd5e.Background{
		{
			Name:               "Acolyte",
			Description:        "You have spent your life in the service of a temple to a specific god or pantheon of gods.",
			SkillProficiencies: []string{"Insight", "Religion"},
			Languages:          2,
			Equipment:          []string{"Holy Symbol", "Prayer Book", "Incense", "Vestments", "Common Clothes", "Belt Pouch"},
		},
		{
			Name:               "Criminal",
			Description:        "You are an experienced criminal with a history of breaking the law.",
			SkillProficiencies: []string{"Deception", "Stealth"},
			ToolProficiencies:  []string{"gaming set", "thieves' tools"},
			Equipment:          []string{"Crowbar", "Common Clothes", "Belt Pouch"},
		},
		{
			Name:               "Entertainer",
			Description:        "You thrive in front of an audience and know how to entrance them.",
			SkillProficiencies: []string{"Acrobatics", "Performance"},
			ToolProficiencies:  []string{"disguise kit", "musical instrument"},
			Equipment:          []string{"Lute", "Costume", "Belt Pouch"},
		},
		{
			Name:               "Noble",
			Description:        "You understand wealth, power, and privilege.",
			SkillProficiencies: []string{"History", "Persuasion"},
			ToolProficiencies:  []string{"gaming set"},
			Languages:          1,
			Equipment:          []string{"Fine Clothes", "Signet Ring", "Belt Pouch"},
		},
		{
			Name:               "Sage",
			Description:        "You spent years learning the lore of the multiverse.",
			SkillProficiencies: []string{"Arcana", "History"},
			Languages:          2,
			Equipment:          []string{"Ink Bottle", "Quill", "Common Clothes", "Belt Pouch"},
		},
		{
			Name:               "Soldier",
			Description:        "War has been your life for as long as you care to remember.",
			SkillProficiencies: []string{"Athletics", "Intimidation"},
			ToolProficiencies:  []string{"gaming set", "vehicles (land)"},
			Equipment:          []string{"Insignia of Rank", "Deck of Cards", "Common Clothes", "Belt Pouch"},
		},
	}
}
