package srd

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/laasilva/dracolich-library-api-sub000/internal/catalog"
	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
)

// Problem classifies an audit finding
type Problem string

const (
	ProblemMissingFromCatalog Problem = "missing_from_catalog"
	ProblemNotInSRD           Problem = "not_in_srd"
	ProblemMismatch           Problem = "mismatch"
)

// Finding is one difference between the catalog and the SRD
type Finding struct {
	Kind    dnd5e.Kind `json:"kind" yaml:"kind"`
	Name    string     `json:"name" yaml:"name"`
	Problem Problem    `json:"problem" yaml:"problem"`
	Detail  string     `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Report lists every finding in kind then name order
type Report struct {
	Checked  int       `json:"checked" yaml:"checked"`
	Findings []Finding `json:"findings" yaml:"findings"`
}

// Clean reports whether the audit found nothing
func (r *Report) Clean() bool {
	return len(r.Findings) == 0
}

// Audit compares the catalog's classes, races and subraces against the SRD.
// Content the SRD does not publish is reported, not treated as an error;
// only a failing SRD read fails the audit.
func Audit(ctx context.Context, client Client, set *catalog.Set) (*Report, error) {
	if client == nil {
		return nil, errors.InvalidArgument("srd client is required")
	}
	if set == nil {
		return nil, errors.InvalidArgument("catalog set is required")
	}

	report := &Report{Findings: []Finding{}}

	if err := auditClasses(ctx, client, set.Classes, report); err != nil {
		return nil, err
	}
	if err := auditRaces(ctx, client, set.Races, set.Subraces, report); err != nil {
		return nil, err
	}

	sort.SliceStable(report.Findings, func(i, j int) bool {
		a, b := report.Findings[i], report.Findings[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Name < b.Name
	})
	return report, nil
}

func auditClasses(ctx context.Context, client Client, classes []*dnd5e.Class, report *Report) error {
	refs, err := client.ListClasses(ctx)
	if err != nil {
		return err
	}

	known := make(map[string]bool, len(classes))
	for _, class := range classes {
		known[Slug(class.Name)] = true
	}
	for _, ref := range refs {
		if !known[ref.Key] {
			report.add(dnd5e.KindClass, ref.Name, ProblemMissingFromCatalog, "")
		}
	}

	published := keySet(refs)
	for _, class := range classes {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "audit interrupted")
		}

		report.Checked++
		key := Slug(class.Name)
		if !published[key] {
			report.add(dnd5e.KindClass, class.Name, ProblemNotInSRD, "")
			continue
		}

		srdClass, err := client.GetClass(ctx, key)
		if err != nil {
			return err
		}
		if die := hitDieSides(class.HitDice); die != srdClass.HitDie {
			report.add(dnd5e.KindClass, class.Name, ProblemMismatch,
				fmt.Sprintf("hit die d%d, srd has d%d", die, srdClass.HitDie))
		}
	}
	return nil
}

func auditRaces(ctx context.Context, client Client, races []*dnd5e.Race, subraces []*dnd5e.Subrace, report *Report) error {
	refs, err := client.ListRaces(ctx)
	if err != nil {
		return err
	}

	known := make(map[string]bool, len(races))
	for _, race := range races {
		known[Slug(race.Name)] = true
	}
	for _, ref := range refs {
		if !known[ref.Key] {
			report.add(dnd5e.KindRace, ref.Name, ProblemMissingFromCatalog, "")
		}
	}

	children := make(map[string][]*dnd5e.Subrace)
	for _, sub := range subraces {
		children[sub.RaceName] = append(children[sub.RaceName], sub)
	}

	published := keySet(refs)
	for _, race := range races {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "audit interrupted")
		}

		report.Checked++
		key := Slug(race.Name)
		if !published[key] {
			report.add(dnd5e.KindRace, race.Name, ProblemNotInSRD, "")
			for _, sub := range children[race.Name] {
				report.Checked++
				report.add(dnd5e.KindSubrace, sub.Name, ProblemNotInSRD, "")
			}
			continue
		}

		srdRace, err := client.GetRace(ctx, key)
		if err != nil {
			return err
		}
		if race.Speed != srdRace.Speed {
			report.add(dnd5e.KindRace, race.Name, ProblemMismatch,
				fmt.Sprintf("speed %d, srd has %d", race.Speed, srdRace.Speed))
		}
		if !strings.EqualFold(race.Size, srdRace.Size) {
			report.add(dnd5e.KindRace, race.Name, ProblemMismatch,
				fmt.Sprintf("size %s, srd has %s", race.Size, srdRace.Size))
		}

		srdSubraces := keySet(srdRace.Subraces)
		ours := make(map[string]bool)
		for _, sub := range children[race.Name] {
			report.Checked++
			ours[Slug(sub.Name)] = true
			if !srdSubraces[Slug(sub.Name)] {
				report.add(dnd5e.KindSubrace, sub.Name, ProblemNotInSRD, "")
			}
		}
		for _, ref := range srdRace.Subraces {
			if !ours[ref.Key] {
				report.add(dnd5e.KindSubrace, ref.Name, ProblemMissingFromCatalog, "")
			}
		}
	}
	return nil
}

func (r *Report) add(kind dnd5e.Kind, name string, problem Problem, detail string) {
	r.Findings = append(r.Findings, Finding{Kind: kind, Name: name, Problem: problem, Detail: detail})
}

func keySet(refs []Reference) map[string]bool {
	out := make(map[string]bool, len(refs))
	for _, ref := range refs {
		out[ref.Key] = true
	}
	return out
}

// hitDieSides reads the die size out of notation like "1d12"
func hitDieSides(notation string) int {
	_, sides, ok := strings.Cut(strings.ToLower(notation), "d")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(sides)
	if err != nil {
		return 0
	}
	return n
}
