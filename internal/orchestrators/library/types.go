package library

import (
	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
)

// ClassDetails is a class with every subclass that references it
type ClassDetails struct {
	Class      *dnd5e.Class      `json:"class"`
	Subclasses []*dnd5e.Subclass `json:"subclasses"`
}

// RaceDetails is a race with every subrace that references it
type RaceDetails struct {
	Race     *dnd5e.Race      `json:"race"`
	Subraces []*dnd5e.Subrace `json:"subraces"`
}

// GetClassDetailsInput defines the request for one class view
type GetClassDetailsInput struct {
	// NameOrID is tried as a name first, then as an id
	NameOrID string
}

// GetClassDetailsOutput defines the response for one class view
type GetClassDetailsOutput struct {
	Details *ClassDetails
}

// ListClassDetailsInput defines the request for every class view
type ListClassDetailsInput struct{}

// ListClassDetailsOutput defines the response for every class view
type ListClassDetailsOutput struct {
	Details []*ClassDetails
}

// GetRaceDetailsInput defines the request for one race view
type GetRaceDetailsInput struct {
	NameOrID string
}

// GetRaceDetailsOutput defines the response for one race view
type GetRaceDetailsOutput struct {
	Details *RaceDetails
}

// ListRaceDetailsInput defines the request for every race view
type ListRaceDetailsInput struct{}

// ListRaceDetailsOutput defines the response for every race view
type ListRaceDetailsOutput struct {
	Details []*RaceDetails
}

// ListAttributesInput defines the request for listing attributes
type ListAttributesInput struct{}

// ListAttributesOutput defines the response for listing attributes
type ListAttributesOutput struct {
	Attributes []*dnd5e.Attribute
}

// ListAlignmentsInput defines the request for listing alignments
type ListAlignmentsInput struct{}

// ListAlignmentsOutput defines the response for listing alignments
type ListAlignmentsOutput struct {
	Alignments []*dnd5e.Alignment
}

// ListBackgroundsInput defines the request for listing backgrounds
type ListBackgroundsInput struct{}

// ListBackgroundsOutput defines the response for listing backgrounds
type ListBackgroundsOutput struct {
	Backgrounds []*dnd5e.Background
}

// ListFeaturesInput defines the request for listing features
type ListFeaturesInput struct {
	// ClassName limits the list to one class (name or id) and orders it by
	// the level the class gains each feature
	ClassName string
}

// ListFeaturesOutput defines the response for listing features
type ListFeaturesOutput struct {
	Features []*dnd5e.Feature
}

// GetSpellInput defines the request for one spell
type GetSpellInput struct {
	Name string
}

// GetSpellOutput defines the response for one spell
type GetSpellOutput struct {
	Spell *dnd5e.Spell
}

// ListSpellsInput defines the request for listing spells
type ListSpellsInput struct {
	Level     *int
	ClassName string
}

// ListSpellsOutput defines the response for listing spells
type ListSpellsOutput struct {
	Spells []*dnd5e.Spell
}

// ListEquipmentInput defines the request for listing equipment
type ListEquipmentInput struct {
	Category string
}

// ListEquipmentOutput defines the response for listing equipment
type ListEquipmentOutput struct {
	Equipment []*dnd5e.Equipment
}

// GetEquipmentInput defines the request for one piece of equipment
type GetEquipmentInput struct {
	Name string
}

// GetEquipmentOutput defines the response for one piece of equipment
type GetEquipmentOutput struct {
	Equipment *dnd5e.Equipment
}
