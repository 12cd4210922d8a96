// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"fmt"

	"go.uber.org/mock/gomock"

	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/repositories/documents"
	documentsmock "github.com/laasilva/dracolich-library-api-sub000/internal/repositories/documents/mock"
)

// ExpectSeedGate sets up the attribute count the seed orchestrator reads to
// decide whether the store is already seeded
func ExpectSeedGate(ctx context.Context, mockRepo *documentsmock.MockRepository, count int64) *gomock.Call {
	return mockRepo.EXPECT().
		Count(ctx, documents.CountInput{Kind: dnd5e.KindAttribute}).
		Return(&documents.CountOutput{Count: count}, nil)
}

// StoreRecords answers InsertMany like a store that already holds the names
// in existing and assigns kind_N ids to everything else
func StoreRecords(existing map[string]string) func(context.Context, documents.InsertManyInput) (*documents.InsertManyOutput, error) {
	return func(_ context.Context, input documents.InsertManyInput) (*documents.InsertManyOutput, error) {
		results := make([]documents.InsertResult, len(input.Records))
		for i, record := range input.Records {
			if id, ok := existing[record.GetName()]; ok {
				results[i] = documents.InsertResult{ID: id, Name: record.GetName(), Duplicate: true}
				continue
			}
			results[i] = documents.InsertResult{ID: fmt.Sprintf("%s_%d", input.Kind, i+1), Name: record.GetName()}
		}
		return &documents.InsertManyOutput{Results: results}, nil
	}
}

// ExpectChildren sets up one FindByField read of kind's children under
// parentID, returning docs
func ExpectChildren(
	ctx context.Context, mockRepo *documentsmock.MockRepository,
	kind dnd5e.Kind, field, parentID string, docs []*documents.Document, err error,
) *gomock.Call {
	call := mockRepo.EXPECT().
		FindByField(ctx, documents.FindByFieldInput{Kind: kind, Field: field, Value: parentID})
	if err != nil {
		return call.Return(nil, err)
	}
	return call.Return(&documents.FindByFieldOutput{Documents: docs}, nil)
}
