// Package dnd5e holds the D&D 5e reference records stored by the library.
package dnd5e

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Kind names a record collection in the document store
type Kind string

// Record kinds
const (
	KindAttribute  Kind = "attribute"
	KindRace       Kind = "race"
	KindSubrace    Kind = "subrace"
	KindClass      Kind = "class"
	KindSubclass   Kind = "subclass"
	KindFeature    Kind = "feature"
	KindAlignment  Kind = "alignment"
	KindBackground Kind = "background"
	KindSpell      Kind = "spell"
	KindEquipment  Kind = "equipment"
)

// Indexed document fields
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldRaceID   = "race_id"
	FieldClassID  = "class_id"
	FieldLevel    = "level"
	FieldCategory = "category"
	FieldSchool   = "school"
)

func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is a known kind
func (k Kind) Valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// Kinds returns every record kind in seed order
func Kinds() []Kind {
	return []Kind{
		KindAttribute,
		KindRace,
		KindClass,
		KindSubclass,
		KindAlignment,
		KindBackground,
		KindFeature,
		KindSubrace,
		KindSpell,
		KindEquipment,
	}
}

// Record is implemented by every stored catalog record.
// GetType returns the record's Kind as a string.
type Record interface {
	core.Entity
	GetName() string
	SetID(id string)
	// IndexFields returns the document fields the store indexes for equality lookups
	IndexFields() map[string]string
}
