package documents

import (
	"encoding/json"
	"strings"

	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
)

// Decode unmarshals documents into typed records, preserving order
func Decode[T any](docs []*Document) ([]*T, error) {
	out := make([]*T, 0, len(docs))
	for _, doc := range docs {
		record, err := DecodeOne[T](doc)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

// DecodeOne unmarshals a single document
func DecodeOne[T any](doc *Document) (*T, error) {
	var record T
	if err := json.Unmarshal(doc.Body, &record); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to decode %s document %s", doc.Kind, doc.ID)
	}
	return &record, nil
}

func validateKind(kind dnd5e.Kind) error {
	if !kind.Valid() {
		return errors.InvalidArgumentf("unknown kind %q", kind)
	}
	return nil
}

// prepared is a record ready for writing: id assigned, body encoded
type prepared struct {
	id     string
	name   string
	body   []byte
	fields map[string]string
}

func prepare(kind dnd5e.Kind, records []dnd5e.Record, generate func(prefix string) string) ([]prepared, error) {
	out := make([]prepared, 0, len(records))
	for i, record := range records {
		if record == nil {
			return nil, errors.InvalidArgumentf("%s record %d is nil", kind, i)
		}
		if record.GetType() != string(kind) {
			return nil, errors.InvalidArgumentf("record %q is a %s, not a %s", record.GetName(), record.GetType(), kind)
		}
		if strings.TrimSpace(record.GetName()) == "" {
			return nil, errors.InvalidArgumentf("%s record %d has no name", kind, i)
		}

		// The caller's record only takes the id once the write commits.
		original := record.GetID()
		id := generate(string(kind))
		record.SetID(id)
		body, err := json.Marshal(record)
		fields := record.IndexFields()
		record.SetID(original)
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to marshal %s %q", kind, record.GetName())
		}

		indexed := make(map[string]string)
		for field, value := range fields {
			if field == dnd5e.FieldName || field == dnd5e.FieldID || value == "" {
				continue
			}
			indexed[field] = value
		}

		out = append(out, prepared{
			id:     id,
			name:   record.GetName(),
			body:   body,
			fields: indexed,
		})
	}
	return out, nil
}
