// Package catalog builds the canonical D&D 5e reference dataset held in memory
// before it is seeded into the document store.
//
// Every builder returns a fresh slice on each call. Cross-record references
// (class names, equipment names, spell names, attribute names) are by name
// because store identifiers do not exist until seeding assigns them.
package catalog

import (
	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
)

// Set is one complete copy of the catalog
type Set struct {
	Attributes  []*dnd5e.Attribute
	Races       []*dnd5e.Race
	Classes     []*dnd5e.Class
	Subclasses  []*dnd5e.Subclass
	Alignments  []*dnd5e.Alignment
	Backgrounds []*dnd5e.Background
	Features    []*dnd5e.Feature
	Subraces    []*dnd5e.Subrace
	Spells      []*dnd5e.Spell
	Equipment   []*dnd5e.Equipment
}

// Load builds every kind
func Load() *Set {
	return &Set{
		Attributes:  Attributes(),
		Races:       Races(),
		Classes:     Classes(),
		Subclasses:  Subclasses(),
		Alignments:  Alignments(),
		Backgrounds: Backgrounds(),
		Features:    Features(),
		Subraces:    Subraces(),
		Spells:      Spells(),
		Equipment:   Equipment(),
	}
}

// Records returns the set's records of kind as the Record interface
func (s *Set) Records(kind dnd5e.Kind) []dnd5e.Record {
	switch kind {
	case dnd5e.KindAttribute:
		return toRecords(s.Attributes)
	case dnd5e.KindRace:
		return toRecords(s.Races)
	case dnd5e.KindClass:
		return toRecords(s.Classes)
	case dnd5e.KindSubclass:
		return toRecords(s.Subclasses)
	case dnd5e.KindAlignment:
		return toRecords(s.Alignments)
	case dnd5e.KindBackground:
		return toRecords(s.Backgrounds)
	case dnd5e.KindFeature:
		return toRecords(s.Features)
	case dnd5e.KindSubrace:
		return toRecords(s.Subraces)
	case dnd5e.KindSpell:
		return toRecords(s.Spells)
	case dnd5e.KindEquipment:
		return toRecords(s.Equipment)
	default:
		return nil
	}
}

// Counts returns the number of records per kind
func (s *Set) Counts() map[dnd5e.Kind]int {
	counts := make(map[dnd5e.Kind]int, len(dnd5e.Kinds()))
	for _, kind := range dnd5e.Kinds() {
		counts[kind] = len(s.Records(kind))
	}
	return counts
}

func toRecords[T dnd5e.Record](in []T) []dnd5e.Record {
	out := make([]dnd5e.Record, len(in))
	for i, r := range in {
		out[i] = r
	}
	return out
}
