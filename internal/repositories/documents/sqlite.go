package documents

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
	"github.com/laasilva/dracolich-library-api-sub000/internal/pkg/idgen"
)

//go:embed schema.sql
var schema string

// OpenSQLite opens the database at path and applies the schema
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	// one writer keeps bulk inserts serialized
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "ping sqlite db")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "apply sqlite schema")
	}
	return db, nil
}

type sqliteRepository struct {
	db    *sql.DB
	idGen idgen.Generator
}

// SQLiteConfig contains configuration for the SQLite document repository
type SQLiteConfig struct {
	DB          *sql.DB
	IDGenerator idgen.Generator
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// NewSQLite creates a SQLite-backed document repository. The database must
// have been prepared with OpenSQLite.
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID()
	}

	return &sqliteRepository{
		db:    cfg.DB,
		idGen: gen,
	}, nil
}

func (r *sqliteRepository) InsertMany(ctx context.Context, input InsertManyInput) (*InsertManyOutput, error) {
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

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to begin %s insert", input.Kind)
	}
	defer func() { _ = tx.Rollback() }()

	results := make([]InsertResult, len(docs))
	for i, doc := range docs {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO documents (id, kind, name, body) VALUES (?, ?, ?, ?)
			 ON CONFLICT (kind, name) DO NOTHING`,
			doc.id, string(input.Kind), doc.name, string(doc.body))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to insert %s %q", input.Kind, doc.name)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to insert %s %q", input.Kind, doc.name)
		}

		if affected == 0 {
			var existing string
			err := tx.QueryRowContext(ctx,
				`SELECT id FROM documents WHERE kind = ? AND name = ?`,
				string(input.Kind), doc.name).Scan(&existing)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to read existing %s %q", input.Kind, doc.name)
			}
			results[i] = InsertResult{ID: existing, Name: doc.name, Duplicate: true}
			slog.DebugContext(ctx, "Duplicate document skipped",
				"kind", input.Kind,
				"name", doc.name,
				"existing_id", existing)
			continue
		}

		for field, value := range doc.fields {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO document_fields (document_id, kind, field, value) VALUES (?, ?, ?, ?)`,
				doc.id, string(input.Kind), field, value); err != nil {
				return nil, errors.Wrapf(err, "failed to index %s %q", input.Kind, doc.name)
			}
		}
		results[i] = InsertResult{ID: doc.id, Name: doc.name}
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit %s insert", input.Kind)
	}

	for i := range results {
		input.Records[i].SetID(results[i].ID)
	}
	return &InsertManyOutput{Results: results}, nil
}

func (r *sqliteRepository) FindAll(ctx context.Context, input FindAllInput) (*FindAllOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	docs, err := r.query(ctx, input.Kind,
		`SELECT id, body FROM documents WHERE kind = ? ORDER BY seq`,
		string(input.Kind))
	if err != nil {
		return nil, err
	}
	return &FindAllOutput{Documents: docs}, nil
}

func (r *sqliteRepository) FindByField(ctx context.Context, input FindByFieldInput) (*FindByFieldOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}
	if input.Field == "" {
		return nil, errors.InvalidArgument("field is required")
	}

	var (
		docs []*Document
		err  error
	)
	switch input.Field {
	case dnd5e.FieldID:
		docs, err = r.query(ctx, input.Kind,
			`SELECT id, body FROM documents WHERE kind = ? AND id = ?`,
			string(input.Kind), input.Value)
	case dnd5e.FieldName:
		docs, err = r.query(ctx, input.Kind,
			`SELECT id, body FROM documents WHERE kind = ? AND name = ?`,
			string(input.Kind), input.Value)
	default:
		docs, err = r.query(ctx, input.Kind,
			`SELECT d.id, d.body FROM documents d
			 JOIN document_fields f ON f.document_id = d.id
			 WHERE d.kind = ? AND f.field = ? AND f.value = ?
			 ORDER BY d.seq`,
			string(input.Kind), input.Field, input.Value)
	}
	if err != nil {
		return nil, err
	}
	return &FindByFieldOutput{Documents: docs}, nil
}

func (r *sqliteRepository) Count(ctx context.Context, input CountInput) (*CountOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM documents WHERE kind = ?`,
		string(input.Kind)).Scan(&n)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count %s documents", input.Kind)
	}
	return &CountOutput{Count: n}, nil
}

func (r *sqliteRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "sqlite ping failed")
	}
	return nil
}

func (r *sqliteRepository) query(ctx context.Context, kind dnd5e.Kind, q string, args ...interface{}) ([]*Document, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %s documents", kind)
	}
	defer func() { _ = rows.Close() }()

	docs := []*Document{}
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, errors.Wrapf(err, "failed to scan %s document", kind)
		}
		docs = append(docs, &Document{ID: id, Kind: kind, Body: []byte(body)})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("failed to read %s documents", kind))
	}
	return docs, nil
}
