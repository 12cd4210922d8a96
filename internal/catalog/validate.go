package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
)

// MaxLevel is the highest character level a progression may describe
const MaxLevel = 20

var diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)$`)

// Validate checks the canonical catalog
func Validate() error {
	return Load().Validate()
}

// Validate checks the set for problems seeding would otherwise store silently:
// duplicate names, malformed progressions, dangling name references and bad
// dice expressions. Every problem is reported in one InvalidArgument error.
func (s *Set) Validate() error {
	vb := errors.NewValidationBuilder()

	names := make(map[dnd5e.Kind]map[string]bool, len(dnd5e.Kinds()))
	for _, kind := range dnd5e.Kinds() {
		names[kind] = make(map[string]bool)
		for _, record := range s.Records(kind) {
			field := fmt.Sprintf("%s.%s", kind, record.GetName())
			if strings.TrimSpace(record.GetName()) == "" {
				vb.RequiredField(fmt.Sprintf("%s.name", kind))
				continue
			}
			if names[kind][record.GetName()] {
				vb.Field(field, "duplicate name")
			}
			names[kind][record.GetName()] = true
		}
	}

	for _, race := range s.Races {
		for _, attr := range race.AttributeNames {
			if !names[dnd5e.KindAttribute][attr] {
				vb.Fieldf(fieldFor(race), "unknown attribute %q", attr)
			}
		}
	}

	for _, class := range s.Classes {
		s.validateClass(class, names, vb)
	}

	for _, subclass := range s.Subclasses {
		if !names[dnd5e.KindClass][subclass.ClassName] {
			vb.Fieldf(fieldFor(subclass), "unknown class %q", subclass.ClassName)
		}
	}

	for _, feature := range s.Features {
		if len(feature.Classes) == 0 {
			vb.Field(fieldFor(feature), "not granted by any class")
		}
		for className, level := range feature.Classes {
			if !names[dnd5e.KindClass][className] {
				vb.Fieldf(fieldFor(feature), "unknown class %q", className)
			}
			errors.ValidateRange(fieldFor(feature), level, 1, MaxLevel, vb)
		}
	}

	for _, background := range s.Backgrounds {
		for _, item := range background.Equipment {
			if !names[dnd5e.KindEquipment][item] {
				vb.Fieldf(fieldFor(background), "unknown equipment %q", item)
			}
		}
	}

	for _, subrace := range s.Subraces {
		if !names[dnd5e.KindRace][subrace.RaceName] {
			vb.Fieldf(fieldFor(subrace), "unknown race %q", subrace.RaceName)
		}
		for _, spell := range subrace.Spells {
			if !names[dnd5e.KindSpell][spell.Spell] {
				vb.Fieldf(fieldFor(subrace), "unknown spell %q", spell.Spell)
			}
		}
	}

	for _, spell := range s.Spells {
		errors.ValidateRange(fieldFor(spell)+".level", spell.Level, 0, 9, vb)
		if spell.Damage != "" {
			if err := validateDice(spell.Damage); err != nil {
				vb.InvalidField(fieldFor(spell)+".damage", err.Error())
			}
		}
		for _, className := range spell.Classes {
			if !names[dnd5e.KindClass][className] {
				vb.Fieldf(fieldFor(spell), "unknown class %q", className)
			}
		}
	}

	for _, item := range s.Equipment {
		if item.Damage != nil {
			if err := validateDice(item.Damage.Dice); err != nil {
				vb.InvalidField(fieldFor(item)+".damage", err.Error())
			}
		}
	}

	return vb.Build()
}

func (s *Set) validateClass(class *dnd5e.Class, names map[dnd5e.Kind]map[string]bool, vb *errors.ValidationBuilder) {
	field := fieldFor(class)

	if err := validateDice(class.HitDice); err != nil {
		vb.InvalidField(field+".hit_dice", err.Error())
	}

	if len(class.Progression) == 0 {
		vb.Field(field+".progression", "is empty")
	}

	levels := make(map[int]bool, len(class.Progression))
	for _, entry := range class.Progression {
		levelField := fmt.Sprintf("%s.progression.%d", field, entry.Level)
		if entry.Level < 1 || entry.Level > MaxLevel {
			vb.Fieldf(levelField, "level must be between 1 and %d", MaxLevel)
		}
		if levels[entry.Level] {
			vb.Field(levelField, "duplicate level")
		}
		levels[entry.Level] = true

		for _, feature := range entry.Features {
			if !names[dnd5e.KindFeature][feature] {
				vb.Fieldf(levelField, "unknown feature %q", feature)
			}
		}

		for _, key := range entry.Scaling.Keys() {
			if entry.Scaling[key].Kind() == dnd5e.ScalingUnset {
				vb.Field(levelField+".scaling."+key, "has no value")
				continue
			}
			text, err := entry.Scaling.Text(key)
			if err != nil || !diceNotationRegex.MatchString(text) {
				continue
			}
			if err := validateDice(text); err != nil {
				vb.InvalidField(levelField+".scaling."+key, err.Error())
			}
		}
	}

	for _, set := range class.StartingEquipment {
		for _, option := range set.Options {
			for _, item := range option.Items {
				if !names[dnd5e.KindEquipment][item.Name] {
					vb.Fieldf(field+".starting_equipment", "unknown equipment %q", item.Name)
				}
			}
		}
	}
}

// validateDice checks an XdY expression by building the roll with rpg-toolkit
func validateDice(notation string) error {
	matches := diceNotationRegex.FindStringSubmatch(strings.ToLower(notation))
	if len(matches) != 3 {
		return errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY)", notation)
	}

	count, err := strconv.Atoi(matches[1])
	if err != nil {
		return errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}
	size, err := strconv.Atoi(matches[2])
	if err != nil {
		return errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}

	if count <= 0 || size <= 0 {
		return errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}

	if _, err := dice.NewRoll(count, size); err != nil {
		return errors.Wrapf(err, "invalid dice notation: %s", notation)
	}
	return nil
}

func fieldFor(record dnd5e.Record) string {
	return fmt.Sprintf("%s.%s", record.GetType(), record.GetName())
}
