// Package builders provides test data builders for catalog records
package builders

import (
	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
)

// ClassBuilder provides a fluent interface for building test Class records
type ClassBuilder struct {
	class *dnd5e.Class
}

// NewClassBuilder creates a class with a d8 hit die and no progression
func NewClassBuilder(name string) *ClassBuilder {
	return &ClassBuilder{
		class: &dnd5e.Class{
			Name:        name,
			HitDice:     "1d8",
			Progression: []dnd5e.ProgressionEntry{},
		},
	}
}

// WithID sets the stored id
func (b *ClassBuilder) WithID(id string) *ClassBuilder {
	b.class.ID = id
	return b
}

// WithHitDice sets the hit die notation
func (b *ClassBuilder) WithHitDice(notation string) *ClassBuilder {
	b.class.HitDice = notation
	return b
}

// WithLevel appends a progression entry; proficiency follows the 5e table
func (b *ClassBuilder) WithLevel(level int, scaling dnd5e.Scaling, features ...string) *ClassBuilder {
	b.class.Progression = append(b.class.Progression, dnd5e.ProgressionEntry{
		Level:            level,
		ProficiencyBonus: 2 + (level-1)/4,
		Features:         features,
		Scaling:          scaling,
	})
	return b
}

// Build returns the class
func (b *ClassBuilder) Build() *dnd5e.Class {
	return b.class
}

// RaceBuilder provides a fluent interface for building test Race records
type RaceBuilder struct {
	race *dnd5e.Race
}

// NewRaceBuilder creates a medium race with 30ft speed
func NewRaceBuilder(name string) *RaceBuilder {
	return &RaceBuilder{
		race: &dnd5e.Race{
			Name:  name,
			Size:  "Medium",
			Speed: 30,
		},
	}
}

// WithID sets the stored id
func (b *RaceBuilder) WithID(id string) *RaceBuilder {
	b.race.ID = id
	return b
}

// WithSize sets the size category
func (b *RaceBuilder) WithSize(size string) *RaceBuilder {
	b.race.Size = size
	return b
}

// WithSpeed sets the walking speed in feet
func (b *RaceBuilder) WithSpeed(speed int) *RaceBuilder {
	b.race.Speed = speed
	return b
}

// WithBonus adds an ability score bonus
func (b *RaceBuilder) WithBonus(ability string, bonus int) *RaceBuilder {
	if b.race.AbilityBonuses == nil {
		b.race.AbilityBonuses = make(map[string]int)
	}
	b.race.AbilityBonuses[ability] = bonus
	return b
}

// Build returns the race
func (b *RaceBuilder) Build() *dnd5e.Race {
	return b.race
}

// Subclass builds a subclass of className, linked to classID when it is set
func Subclass(name, className, classID string) *dnd5e.Subclass {
	return &dnd5e.Subclass{Name: name, ClassName: className, ClassID: classID}
}

// Subrace builds a subrace of raceName, linked to raceID when it is set
func Subrace(name, raceName, raceID string) *dnd5e.Subrace {
	return &dnd5e.Subrace{Name: name, RaceName: raceName, RaceID: raceID}
}
