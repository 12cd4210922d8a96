// Package srd reads the public D&D 5e SRD API so the catalog can be audited
// against it
package srd

//go:generate mockgen -destination=mock/mock_client.go -package=srdmock github.com/laasilva/dracolich-library-api-sub000/internal/clients/srd Client

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"

	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
)

var (
	slugPattern  = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenGroups = regexp.MustCompile(`-+`)
)

// Slug converts a catalog name to the key format the SRD API uses
func Slug(s string) string {
	slug := strings.ToLower(strings.TrimSpace(s))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = hyphenGroups.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Reference is an SRD index entry
type Reference struct {
	Key  string
	Name string
}

// Race is the part of an SRD race the audit compares
type Race struct {
	Key      string
	Name     string
	Size     string
	Speed    int
	Subraces []Reference
}

// Class is the part of an SRD class the audit compares
type Class struct {
	Key    string
	Name   string
	HitDie int
}

// Client defines the SRD reads the audit needs
type Client interface {
	ListRaces(ctx context.Context) ([]Reference, error)
	GetRace(ctx context.Context, key string) (*Race, error)
	ListClasses(ctx context.Context) ([]Reference, error)
	GetClass(ctx context.Context, key string) (*Class, error)
}

// Config contains configuration options for the SRD client
type Config struct {
	// BaseURL for the SRD API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.HTTPTimeout < 0 || cfg.CacheTTL < 0 {
		return errors.InvalidArgument("timeouts cannot be negative")
	}
	return nil
}

type client struct {
	api dnd5e.Interface
}

// New creates an SRD client backed by a caching dnd5e-api client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SRD API client")
	}

	return &client{api: dnd5e.NewCachedClient(base, cfg.CacheTTL)}, nil
}

func (c *client) ListRaces(_ context.Context) ([]Reference, error) {
	refs, err := c.api.ListRaces()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list SRD races")
	}

	out := make([]Reference, 0, len(refs))
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		out = append(out, Reference{Key: ref.Key, Name: ref.Name})
	}
	return out, nil
}

func (c *client) GetRace(_ context.Context, key string) (*Race, error) {
	race, err := c.api.GetRace(key)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get SRD race %s", key)
	}
	if race == nil {
		return nil, errors.NotFoundf("SRD race %s not found", key)
	}

	subraces := make([]Reference, 0, len(race.SubRaces))
	for _, sub := range race.SubRaces {
		subraces = append(subraces, Reference{Key: sub.Key, Name: sub.Name})
	}

	return &Race{
		Key:      race.Key,
		Name:     race.Name,
		Size:     race.Size,
		Speed:    int(race.Speed),
		Subraces: subraces,
	}, nil
}

func (c *client) ListClasses(_ context.Context) ([]Reference, error) {
	refs, err := c.api.ListClasses()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list SRD classes")
	}

	out := make([]Reference, 0, len(refs))
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		out = append(out, Reference{Key: ref.Key, Name: ref.Name})
	}
	return out, nil
}

func (c *client) GetClass(_ context.Context, key string) (*Class, error) {
	class, err := c.api.GetClass(key)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get SRD class %s", key)
	}
	if class == nil {
		return nil, errors.NotFoundf("SRD class %s not found", key)
	}

	return &Class{
		Key:    class.Key,
		Name:   class.Name,
		HitDie: int(class.HitDie),
	}, nil
}
