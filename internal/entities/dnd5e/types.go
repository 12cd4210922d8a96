package dnd5e

import (
	"strconv"
)

// Attribute is a named racial trait, optionally granting ability bonuses
type Attribute struct {
	ID             string         `json:"id" yaml:"id,omitempty"`
	Name           string         `json:"name" yaml:"name"`
	Description    string         `json:"description" yaml:"description"`
	AbilityBonuses map[string]int `json:"ability_bonuses,omitempty" yaml:"ability_bonuses,omitempty"`
}

// Race is a playable race. Attributes holds snapshots of the Attribute
// records named in AttributeNames, taken at seed time.
type Race struct {
	ID             string         `json:"id" yaml:"id,omitempty"`
	Name           string         `json:"name" yaml:"name"`
	Description    string         `json:"description" yaml:"description"`
	Size           string         `json:"size" yaml:"size"`
	Speed          int            `json:"speed" yaml:"speed"`
	AbilityBonuses map[string]int `json:"ability_bonuses,omitempty" yaml:"ability_bonuses,omitempty"`
	AttributeNames []string       `json:"attribute_names,omitempty" yaml:"attribute_names,omitempty"`
	Attributes     []Attribute    `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// LeveledSpell grants a spell at a character level
type LeveledSpell struct {
	Level int    `json:"level" yaml:"level"`
	Spell string `json:"spell" yaml:"spell"`
}

// Subrace refines a Race. RaceID is assigned during seeding.
type Subrace struct {
	ID             string         `json:"id" yaml:"id,omitempty"`
	Name           string         `json:"name" yaml:"name"`
	Description    string         `json:"description" yaml:"description"`
	RaceID         string         `json:"race_id" yaml:"race_id,omitempty"`
	RaceName       string         `json:"race_name" yaml:"race_name"`
	AbilityBonuses map[string]int `json:"ability_bonuses,omitempty" yaml:"ability_bonuses,omitempty"`
	Spells         []LeveledSpell `json:"spells,omitempty" yaml:"spells,omitempty"`
}

// SkillChoice lets a class pick Choose skills from From
type SkillChoice struct {
	Choose int      `json:"choose" yaml:"choose"`
	From   []string `json:"from" yaml:"from"`
}

// EquipmentQuantity references an equipment record by name
type EquipmentQuantity struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// EquipmentOption is one pick within an EquipmentOptionSet
type EquipmentOption struct {
	Items []EquipmentQuantity `json:"items" yaml:"items"`
}

// EquipmentOptionSet is a starting-equipment choice; exactly one option is taken
type EquipmentOptionSet struct {
	Description string            `json:"description" yaml:"description"`
	Options     []EquipmentOption `json:"options" yaml:"options"`
}

// ProgressionEntry describes what a class gains at one level
type ProgressionEntry struct {
	Level            int      `json:"level" yaml:"level"`
	ProficiencyBonus int      `json:"proficiency_bonus" yaml:"proficiency_bonus"`
	Features         []string `json:"features,omitempty" yaml:"features,omitempty"`
	Scaling          Scaling  `json:"scaling,omitempty" yaml:"scaling,omitempty"`
}

// Class is a character class with its full level progression embedded
type Class struct {
	ID                string               `json:"id" yaml:"id,omitempty"`
	Name              string               `json:"name" yaml:"name"`
	Description       string               `json:"description" yaml:"description"`
	HitDice           string               `json:"hit_dice" yaml:"hit_dice"`
	SavingThrows      []string             `json:"saving_throws" yaml:"saving_throws"`
	SkillChoice       SkillChoice          `json:"skill_choice" yaml:"skill_choice"`
	ArmorTraining     []string             `json:"armor_training,omitempty" yaml:"armor_training,omitempty"`
	WeaponTraining    []string             `json:"weapon_training,omitempty" yaml:"weapon_training,omitempty"`
	StartingEquipment []EquipmentOptionSet `json:"starting_equipment,omitempty" yaml:"starting_equipment,omitempty"`
	Progression       []ProgressionEntry   `json:"progression" yaml:"progression"`
}

// Level returns the progression entry for level, if present
func (c *Class) Level(level int) (ProgressionEntry, bool) {
	for _, entry := range c.Progression {
		if entry.Level == level {
			return entry, true
		}
	}
	return ProgressionEntry{}, false
}

// Subclass specializes a Class. ClassID is assigned during seeding.
type Subclass struct {
	ID          string `json:"id" yaml:"id,omitempty"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	ClassID     string `json:"class_id" yaml:"class_id,omitempty"`
	ClassName   string `json:"class_name" yaml:"class_name"`
}

// Feature is a class feature. Classes maps class name to the level it is gained.
type Feature struct {
	ID          string         `json:"id" yaml:"id,omitempty"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Classes     map[string]int `json:"classes" yaml:"classes"`
}

// Alignment is one of the nine alignments
type Alignment struct {
	ID           string `json:"id" yaml:"id,omitempty"`
	Name         string `json:"name" yaml:"name"`
	Abbreviation string `json:"abbreviation" yaml:"abbreviation"`
	Description  string `json:"description" yaml:"description"`
}

// Background is a character background
type Background struct {
	ID                 string   `json:"id" yaml:"id,omitempty"`
	Name               string   `json:"name" yaml:"name"`
	Description        string   `json:"description" yaml:"description"`
	SkillProficiencies []string `json:"skill_proficiencies" yaml:"skill_proficiencies"`
	ToolProficiencies  []string `json:"tool_proficiencies,omitempty" yaml:"tool_proficiencies,omitempty"`
	Languages          int      `json:"languages,omitempty" yaml:"languages,omitempty"`
	Equipment          []string `json:"equipment,omitempty" yaml:"equipment,omitempty"`
}

// Spell is a spell. Level 0 is a cantrip, RangeFeet 0 is self or touch and
// DurationRounds 0 is instantaneous.
type Spell struct {
	ID             string   `json:"id" yaml:"id,omitempty"`
	Name           string   `json:"name" yaml:"name"`
	Description    string   `json:"description" yaml:"description"`
	Level          int      `json:"level" yaml:"level"`
	School         string   `json:"school" yaml:"school"`
	CastingTime    string   `json:"casting_time" yaml:"casting_time"`
	RangeFeet      int      `json:"range_feet" yaml:"range_feet"`
	DurationRounds int      `json:"duration_rounds" yaml:"duration_rounds"`
	Concentration  bool     `json:"concentration,omitempty" yaml:"concentration,omitempty"`
	Ritual         bool     `json:"ritual,omitempty" yaml:"ritual,omitempty"`
	AttackType     string   `json:"attack_type,omitempty" yaml:"attack_type,omitempty"`
	SaveAttribute  string   `json:"save_attribute,omitempty" yaml:"save_attribute,omitempty"`
	Damage         string   `json:"damage,omitempty" yaml:"damage,omitempty"`
	Classes        []string `json:"classes" yaml:"classes"`
}

// Damage is a weapon's damage roll
type Damage struct {
	Dice string `json:"dice" yaml:"dice"`
	Type string `json:"type" yaml:"type"`
}

// Equipment is an item. PriceCP is the price in copper pieces. For armor,
// AttributeModifiers caps the ability modifier added to the armor class.
type Equipment struct {
	ID                 string         `json:"id" yaml:"id,omitempty"`
	Name               string         `json:"name" yaml:"name"`
	Category           string         `json:"category" yaml:"category"`
	PriceCP            int            `json:"price_cp" yaml:"price_cp"`
	Weight             float64        `json:"weight" yaml:"weight"`
	Damage             *Damage        `json:"damage,omitempty" yaml:"damage,omitempty"`
	ArmorClass         int            `json:"armor_class,omitempty" yaml:"armor_class,omitempty"`
	AttributeModifiers map[string]int `json:"attribute_modifiers,omitempty" yaml:"attribute_modifiers,omitempty"`
	Properties         []string       `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Equipment categories
const (
	CategoryWeapon = "weapon"
	CategoryArmor  = "armor"
	CategoryGear   = "adventuring-gear"
	CategoryPack   = "pack"
	CategoryTool   = "tool"
)

func (a *Attribute) GetID() string   { return a.ID }
func (a *Attribute) GetType() string { return string(KindAttribute) }
func (a *Attribute) GetName() string { return a.Name }
func (a *Attribute) SetID(id string) { a.ID = id }
func (a *Attribute) IndexFields() map[string]string {
	return map[string]string{FieldName: a.Name}
}

func (r *Race) GetID() string   { return r.ID }
func (r *Race) GetType() string { return string(KindRace) }
func (r *Race) GetName() string { return r.Name }
func (r *Race) SetID(id string) { r.ID = id }
func (r *Race) IndexFields() map[string]string {
	return map[string]string{FieldName: r.Name}
}

func (s *Subrace) GetID() string   { return s.ID }
func (s *Subrace) GetType() string { return string(KindSubrace) }
func (s *Subrace) GetName() string { return s.Name }
func (s *Subrace) SetID(id string) { s.ID = id }
func (s *Subrace) IndexFields() map[string]string {
	return map[string]string{FieldName: s.Name, FieldRaceID: s.RaceID}
}

func (c *Class) GetID() string   { return c.ID }
func (c *Class) GetType() string { return string(KindClass) }
func (c *Class) GetName() string { return c.Name }
func (c *Class) SetID(id string) { c.ID = id }
func (c *Class) IndexFields() map[string]string {
	return map[string]string{FieldName: c.Name}
}

func (s *Subclass) GetID() string   { return s.ID }
func (s *Subclass) GetType() string { return string(KindSubclass) }
func (s *Subclass) GetName() string { return s.Name }
func (s *Subclass) SetID(id string) { s.ID = id }
func (s *Subclass) IndexFields() map[string]string {
	return map[string]string{FieldName: s.Name, FieldClassID: s.ClassID}
}

func (f *Feature) GetID() string   { return f.ID }
func (f *Feature) GetType() string { return string(KindFeature) }
func (f *Feature) GetName() string { return f.Name }
func (f *Feature) SetID(id string) { f.ID = id }
func (f *Feature) IndexFields() map[string]string {
	return map[string]string{FieldName: f.Name}
}

func (a *Alignment) GetID() string   { return a.ID }
func (a *Alignment) GetType() string { return string(KindAlignment) }
func (a *Alignment) GetName() string { return a.Name }
func (a *Alignment) SetID(id string) { a.ID = id }
func (a *Alignment) IndexFields() map[string]string {
	return map[string]string{FieldName: a.Name}
}

func (b *Background) GetID() string   { return b.ID }
func (b *Background) GetType() string { return string(KindBackground) }
func (b *Background) GetName() string { return b.Name }
func (b *Background) SetID(id string) { b.ID = id }
func (b *Background) IndexFields() map[string]string {
	return map[string]string{FieldName: b.Name}
}

func (s *Spell) GetID() string   { return s.ID }
func (s *Spell) GetType() string { return string(KindSpell) }
func (s *Spell) GetName() string { return s.Name }
func (s *Spell) SetID(id string) { s.ID = id }
func (s *Spell) IndexFields() map[string]string {
	return map[string]string{
		FieldName:   s.Name,
		FieldLevel:  strconv.Itoa(s.Level),
		FieldSchool: s.School,
	}
}

func (e *Equipment) GetID() string   { return e.ID }
func (e *Equipment) GetType() string { return string(KindEquipment) }
func (e *Equipment) GetName() string { return e.Name }
func (e *Equipment) SetID(id string) { e.ID = id }
func (e *Equipment) IndexFields() map[string]string {
	return map[string]string{FieldName: e.Name, FieldCategory: e.Category}
}

// Compile-time checks that every record satisfies Record
var (
	_ Record = (*Attribute)(nil)
	_ Record = (*Race)(nil)
	_ Record = (*Subrace)(nil)
	_ Record = (*Class)(nil)
	_ Record = (*Subclass)(nil)
	_ Record = (*Feature)(nil)
	_ Record = (*Alignment)(nil)
	_ Record = (*Background)(nil)
	_ Record = (*Spell)(nil)
	_ Record = (*Equipment)(nil)
)
