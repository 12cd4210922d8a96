package seed

import (
	"github.com/laasilva/dracolich-library-api-sub000/internal/catalog"
	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
)

// stage builds one kind's batch, resolving references to kinds seeded earlier
type stage struct {
	name  string
	kind  dnd5e.Kind
	build func(set *catalog.Set, res *Resolver) ([]dnd5e.Record, error)
}

// stages are in dependency order: a stage may only resolve kinds above it
var stages = []stage{
	{name: "attributes", kind: dnd5e.KindAttribute, build: plain(dnd5e.KindAttribute)},
	{name: "races", kind: dnd5e.KindRace, build: buildRaces},
	{name: "classes", kind: dnd5e.KindClass, build: plain(dnd5e.KindClass)},
	{name: "subclasses", kind: dnd5e.KindSubclass, build: buildSubclasses},
	{name: "alignments", kind: dnd5e.KindAlignment, build: plain(dnd5e.KindAlignment)},
	{name: "backgrounds", kind: dnd5e.KindBackground, build: plain(dnd5e.KindBackground)},
	{name: "features", kind: dnd5e.KindFeature, build: buildFeatures},
	{name: "subraces", kind: dnd5e.KindSubrace, build: buildSubraces},
	{name: "spells", kind: dnd5e.KindSpell, build: plain(dnd5e.KindSpell)},
	{name: "equipment", kind: dnd5e.KindEquipment, build: plain(dnd5e.KindEquipment)},
}

// StageNames returns the stage names in run order
func StageNames() []string {
	names := make([]string, len(stages))
	for i, st := range stages {
		names[i] = st.name
	}
	return names
}

func plain(kind dnd5e.Kind) func(*catalog.Set, *Resolver) ([]dnd5e.Record, error) {
	return func(set *catalog.Set, _ *Resolver) ([]dnd5e.Record, error) {
		return set.Records(kind), nil
	}
}

// buildRaces embeds a snapshot of each referenced attribute, carrying the
// attribute's stored id
func buildRaces(set *catalog.Set, res *Resolver) ([]dnd5e.Record, error) {
	attributes := make(map[string]*dnd5e.Attribute, len(set.Attributes))
	for _, attr := range set.Attributes {
		attributes[attr.Name] = attr
	}

	records := make([]dnd5e.Record, 0, len(set.Races))
	for _, race := range set.Races {
		ids, err := res.ResolveAll(dnd5e.KindAttribute, race.AttributeNames)
		if err != nil {
			return nil, errors.Wrapf(err, "race %q", race.Name)
		}

		race.Attributes = make([]dnd5e.Attribute, len(ids))
		for i, name := range race.AttributeNames {
			snapshot := dnd5e.Attribute{Name: name}
			if attr, ok := attributes[name]; ok {
				snapshot = *attr
				snapshot.AbilityBonuses = copyBonuses(attr.AbilityBonuses)
			}
			snapshot.ID = ids[i]
			race.Attributes[i] = snapshot
		}
		records = append(records, race)
	}
	return records, nil
}

func buildSubclasses(set *catalog.Set, res *Resolver) ([]dnd5e.Record, error) {
	records := make([]dnd5e.Record, 0, len(set.Subclasses))
	for _, subclass := range set.Subclasses {
		id, err := res.Resolve(dnd5e.KindClass, subclass.ClassName)
		if err != nil {
			return nil, errors.Wrapf(err, "subclass %q", subclass.Name)
		}
		subclass.ClassID = id
		records = append(records, subclass)
	}
	return records, nil
}

// buildFeatures only checks that every granting class exists; the stored
// feature keeps class names
func buildFeatures(set *catalog.Set, res *Resolver) ([]dnd5e.Record, error) {
	records := make([]dnd5e.Record, 0, len(set.Features))
	for _, feature := range set.Features {
		for _, className := range sortedKeys(feature.Classes) {
			if _, err := res.Resolve(dnd5e.KindClass, className); err != nil {
				return nil, errors.Wrapf(err, "feature %q", feature.Name)
			}
		}
		records = append(records, feature)
	}
	return records, nil
}

func buildSubraces(set *catalog.Set, res *Resolver) ([]dnd5e.Record, error) {
	records := make([]dnd5e.Record, 0, len(set.Subraces))
	for _, subrace := range set.Subraces {
		id, err := res.Resolve(dnd5e.KindRace, subrace.RaceName)
		if err != nil {
			return nil, errors.Wrapf(err, "subrace %q", subrace.Name)
		}
		subrace.RaceID = id
		records = append(records, subrace)
	}
	return records, nil
}
