package documents

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
	"github.com/laasilva/dracolich-library-api-sub000/internal/pkg/idgen"
	redisclient "github.com/laasilva/dracolich-library-api-sub000/internal/redis"
)

const keyPrefix = "catalog:"

// insertScript writes one document unless its name is already taken.
// KEYS: names hash, id list, document key, then one sorted-set key per index field.
// ARGV: name, id, body.
// Returns {id, 0} for a new document or {existing id, 1} for a duplicate.
const insertScript = `
local existing = redis.call('HGET', KEYS[1], ARGV[1])
if existing then
  return {existing, 1}
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
redis.call('SET', KEYS[3], ARGV[3])
local position = redis.call('RPUSH', KEYS[2], ARGV[2])
for i = 4, #KEYS do
  redis.call('ZADD', KEYS[i], position, ARGV[2])
end
return {ARGV[2], 0}
`

type redisRepository struct {
	client redisclient.Client
	idGen  idgen.Generator
}

// RedisConfig contains configuration for the Redis document repository
type RedisConfig struct {
	Client      redisclient.Client
	IDGenerator idgen.Generator
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed document repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID()
	}

	return &redisRepository{
		client: cfg.Client,
		idGen:  gen,
	}, nil
}

// Keys share a {kind} hash tag so one kind lives on one cluster slot
func kindKey(kind dnd5e.Kind) string {
	return fmt.Sprintf("%s{%s}", keyPrefix, kind)
}

func documentKey(kind dnd5e.Kind, id string) string {
	return kindKey(kind) + ":" + id
}

func idsKey(kind dnd5e.Kind) string {
	return kindKey(kind) + ":ids"
}

func namesKey(kind dnd5e.Kind) string {
	return kindKey(kind) + ":names"
}

func indexKey(kind dnd5e.Kind, field, value string) string {
	return fmt.Sprintf("%s:idx:%s:%s", kindKey(kind), field, value)
}

func (r *redisRepository) InsertMany(ctx context.Context, input InsertManyInput) (*InsertManyOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}
	if len(input.Records) == 0 {
		return &InsertManyOutput{Results: []InsertResult{}}, nil
	}

	docs, err := prepare(input.Kind, input.Records, r.idGen.Generate)
	if err != nil {
		return nil, err
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.Cmd, len(docs))
	for i, doc := range docs {
		keys := []string{namesKey(input.Kind), idsKey(input.Kind), documentKey(input.Kind, doc.id)}
		fields := make([]string, 0, len(doc.fields))
		for field := range doc.fields {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			keys = append(keys, indexKey(input.Kind, field, doc.fields[field]))
		}
		cmds[i] = pipe.Eval(ctx, insertScript, keys, doc.name, doc.id, string(doc.body))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, storeError(err, fmt.Sprintf("failed to insert %s documents", input.Kind))
	}

	results := make([]InsertResult, len(docs))
	for i, cmd := range cmds {
		reply, err := cmd.Slice()
		if err != nil {
			return nil, storeError(err, fmt.Sprintf("failed to insert %s %q", input.Kind, docs[i].name))
		}
		if len(reply) != 2 {
			return nil, errors.Internalf("unexpected insert reply for %s %q", input.Kind, docs[i].name)
		}
		id, _ := reply[0].(string)
		flag, _ := reply[1].(int64)

		results[i] = InsertResult{ID: id, Name: docs[i].name, Duplicate: flag == 1}

		if results[i].Duplicate {
			slog.DebugContext(ctx, "Duplicate document skipped",
				"kind", input.Kind,
				"name", docs[i].name,
				"existing_id", id)
		}
	}

	for i := range results {
		input.Records[i].SetID(results[i].ID)
	}
	return &InsertManyOutput{Results: results}, nil
}

func (r *redisRepository) FindAll(ctx context.Context, input FindAllInput) (*FindAllOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	ids, err := r.client.LRange(ctx, idsKey(input.Kind), 0, -1).Result()
	if err != nil {
		return nil, storeError(err, fmt.Sprintf("failed to list %s ids", input.Kind))
	}

	docs, err := r.load(ctx, input.Kind, ids)
	if err != nil {
		return nil, err
	}
	if len(docs) != len(compact(docs)) {
		return nil, errors.DataLossf("%s id list references missing documents", input.Kind)
	}
	return &FindAllOutput{Documents: docs}, nil
}

func (r *redisRepository) FindByField(ctx context.Context, input FindByFieldInput) (*FindByFieldOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}
	if input.Field == "" {
		return nil, errors.InvalidArgument("field is required")
	}

	var ids []string
	switch input.Field {
	case dnd5e.FieldID:
		ids = []string{input.Value}
	case dnd5e.FieldName:
		id, err := r.client.HGet(ctx, namesKey(input.Kind), input.Value).Result()
		if err != nil && !stderrors.Is(err, redis.Nil) {
			return nil, storeError(err, fmt.Sprintf("failed to look up %s name", input.Kind))
		}
		if id != "" {
			ids = []string{id}
		}
	default:
		found, err := r.client.ZRange(ctx, indexKey(input.Kind, input.Field, input.Value), 0, -1).Result()
		if err != nil {
			return nil, storeError(err, fmt.Sprintf("failed to query %s by %s", input.Kind, input.Field))
		}
		ids = found
	}

	docs, err := r.load(ctx, input.Kind, ids)
	if err != nil {
		return nil, err
	}

	// a direct id lookup of a missing document is an empty result
	if input.Field == dnd5e.FieldID {
		docs = compact(docs)
	} else if len(docs) != len(compact(docs)) {
		return nil, errors.DataLossf("%s index %s=%s references missing documents", input.Kind, input.Field, input.Value)
	}

	return &FindByFieldOutput{Documents: docs}, nil
}

func (r *redisRepository) Count(ctx context.Context, input CountInput) (*CountOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	n, err := r.client.LLen(ctx, idsKey(input.Kind)).Result()
	if err != nil {
		return nil, storeError(err, fmt.Sprintf("failed to count %s documents", input.Kind))
	}
	return &CountOutput{Count: n}, nil
}

func (r *redisRepository) Ping(ctx context.Context) error {
	return redisclient.Ping(ctx, r.client)
}

// load fetches documents by id, keeping nil slots for missing keys
func (r *redisRepository) load(ctx context.Context, kind dnd5e.Kind, ids []string) ([]*Document, error) {
	if len(ids) == 0 {
		return []*Document{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = documentKey(kind, id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, storeError(err, fmt.Sprintf("failed to load %s documents", kind))
	}

	docs := make([]*Document, len(ids))
	for i, value := range values {
		body, ok := value.(string)
		if !ok {
			continue
		}
		docs[i] = &Document{ID: ids[i], Kind: kind, Body: []byte(body)}
	}
	return docs, nil
}

func compact(docs []*Document) []*Document {
	out := make([]*Document, 0, len(docs))
	for _, doc := range docs {
		if doc != nil {
			out = append(out, doc)
		}
	}
	return out
}

// storeError classifies a storage failure. Connection problems are Unavailable
// so callers can tell an outage from a bad request.
func storeError(err error, message string) error {
	var netErr net.Error
	if stderrors.As(err, &netErr) {
		return errors.WrapWithCode(err, errors.CodeUnavailable, message)
	}
	return errors.Wrap(err, message)
}
