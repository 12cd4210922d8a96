package seed

import (
	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
)

// Resolver maps (kind, name) to the id the store assigned during one seed
// run. It is not safe for concurrent use and must not outlive the run.
type Resolver struct {
	ids map[dnd5e.Kind]map[string]string
}

// NewResolver creates an empty resolver
func NewResolver() *Resolver {
	return &Resolver{ids: make(map[dnd5e.Kind]map[string]string)}
}

// Remember records the id for a name. A later call for the same name wins.
func (r *Resolver) Remember(kind dnd5e.Kind, name, id string) {
	byName, ok := r.ids[kind]
	if !ok {
		byName = make(map[string]string)
		r.ids[kind] = byName
	}
	byName[name] = id
}

// Resolve returns the id remembered for name. An unknown name is a
// FailedPrecondition: the stage that produces kind has not run or did not
// contain the name.
func (r *Resolver) Resolve(kind dnd5e.Kind, name string) (string, error) {
	id, ok := r.ids[kind][name]
	if !ok {
		return "", errors.FailedPreconditionf("unresolved %s reference %q", kind, name).
			WithMetaMap(map[string]interface{}{
				"kind": string(kind),
				"name": name,
			})
	}
	return id, nil
}

// ResolveAll resolves names in order, failing on the first unknown name
func (r *Resolver) ResolveAll(kind dnd5e.Kind, names []string) ([]string, error) {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		id, err := r.Resolve(kind, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Len returns how many names are remembered for kind
func (r *Resolver) Len(kind dnd5e.Kind) int {
	return len(r.ids[kind])
}
