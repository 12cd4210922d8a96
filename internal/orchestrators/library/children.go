package library

import (
	"context"

	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
	"github.com/laasilva/dracolich-library-api-sub000/internal/pkg/metrics"
	"github.com/laasilva/dracolich-library-api-sub000/internal/repositories/documents"
)

// ChildLoader loads the children of a set of parents. Every requested parent
// id is present in the result, with an empty slice when it has no children.
type ChildLoader interface {
	Subclasses(ctx context.Context, classIDs []string) (map[string][]*dnd5e.Subclass, error)
	Subraces(ctx context.Context, raceIDs []string) (map[string][]*dnd5e.Subrace, error)
}

// NewFanOutLoader returns a loader that issues one child query per parent
func NewFanOutLoader(repo documents.Repository, m *metrics.Metrics) ChildLoader {
	return &fanOutLoader{repo: repo, metrics: m}
}

type fanOutLoader struct {
	repo    documents.Repository
	metrics *metrics.Metrics
}

func (l *fanOutLoader) Subclasses(ctx context.Context, classIDs []string) (map[string][]*dnd5e.Subclass, error) {
	return fanOut[dnd5e.Subclass](ctx, l, dnd5e.KindClass, dnd5e.KindSubclass, dnd5e.FieldClassID, classIDs)
}

func (l *fanOutLoader) Subraces(ctx context.Context, raceIDs []string) (map[string][]*dnd5e.Subrace, error) {
	return fanOut[dnd5e.Subrace](ctx, l, dnd5e.KindRace, dnd5e.KindSubrace, dnd5e.FieldRaceID, raceIDs)
}

func fanOut[T any](ctx context.Context, l *fanOutLoader, parent, child dnd5e.Kind, field string, ids []string) (map[string][]*T, error) {
	out := make(map[string][]*T, len(ids))
	for _, id := range ids {
		l.metrics.ChildQuery(parent.String())
		found, err := l.repo.FindByField(ctx, documents.FindByFieldInput{Kind: child, Field: field, Value: id})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load %ss of %s %s", child, parent, id)
		}
		children, err := documents.Decode[T](found.Documents)
		if err != nil {
			return nil, err
		}
		out[id] = children
	}
	return out, nil
}

// NewBatchLoader returns a loader that reads each child kind once and groups
// the children by parent id
func NewBatchLoader(repo documents.Repository, m *metrics.Metrics) ChildLoader {
	return &batchLoader{repo: repo, metrics: m}
}

type batchLoader struct {
	repo    documents.Repository
	metrics *metrics.Metrics
}

func (l *batchLoader) Subclasses(ctx context.Context, classIDs []string) (map[string][]*dnd5e.Subclass, error) {
	return batch(ctx, l, dnd5e.KindClass, dnd5e.KindSubclass, classIDs,
		func(s *dnd5e.Subclass) string { return s.ClassID })
}

func (l *batchLoader) Subraces(ctx context.Context, raceIDs []string) (map[string][]*dnd5e.Subrace, error) {
	return batch(ctx, l, dnd5e.KindRace, dnd5e.KindSubrace, raceIDs,
		func(s *dnd5e.Subrace) string { return s.RaceID })
}

func batch[T any](ctx context.Context, l *batchLoader, parent, child dnd5e.Kind, ids []string, parentOf func(*T) string) (map[string][]*T, error) {
	out := make(map[string][]*T, len(ids))
	for _, id := range ids {
		out[id] = []*T{}
	}
	if len(ids) == 0 {
		return out, nil
	}

	l.metrics.ChildQuery(parent.String())
	found, err := l.repo.FindAll(ctx, documents.FindAllInput{Kind: child})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %ss", child)
	}
	children, err := documents.Decode[T](found.Documents)
	if err != nil {
		return nil, err
	}

	for _, c := range children {
		id := parentOf(c)
		if _, ok := out[id]; ok {
			out[id] = append(out[id], c)
		}
	}
	return out, nil
}
