package library_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
	"github.com/laasilva/dracolich-library-api-sub000/internal/orchestrators/library"
	"github.com/laasilva/dracolich-library-api-sub000/internal/repositories/documents"
	documentsmock "github.com/laasilva/dracolich-library-api-sub000/internal/repositories/documents/mock"
	"github.com/laasilva/dracolich-library-api-sub000/internal/testutils/mocks"
)

type LibraryOrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *documentsmock.MockRepository
	svc      library.Service
	ctx      context.Context
}

func TestLibraryOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(LibraryOrchestratorTestSuite))
}

func (s *LibraryOrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = documentsmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	svc, err := library.NewOrchestrator(&library.Config{Repository: s.mockRepo})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *LibraryOrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func doc(kind dnd5e.Kind, id, body string) *documents.Document {
	return &documents.Document{ID: id, Kind: kind, Body: []byte(body)}
}

func (s *LibraryOrchestratorTestSuite) TestNewOrchestratorRequiresRepository() {
	_, err := library.NewOrchestrator(&library.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *LibraryOrchestratorTestSuite) TestChildFailureFailsTheWholeCall() {
	s.mockRepo.EXPECT().
		FindByField(s.ctx, documents.FindByFieldInput{Kind: dnd5e.KindClass, Field: dnd5e.FieldName, Value: "monk"}).
		Return(&documents.FindByFieldOutput{Documents: []*documents.Document{
			doc(dnd5e.KindClass, "class_4", `{"id":"class_4","name":"monk","hit_dice":"1d8","progression":[]}`),
		}}, nil)
	mocks.ExpectChildren(s.ctx, s.mockRepo, dnd5e.KindSubclass, dnd5e.FieldClassID, "class_4", nil, errors.Unavailable("redis is down"))

	out, err := s.svc.GetClassDetails(s.ctx, &library.GetClassDetailsInput{NameOrID: "monk"})
	s.Nil(out)
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *LibraryOrchestratorTestSuite) TestCorruptChildIsDataLoss() {
	s.mockRepo.EXPECT().
		FindByField(s.ctx, documents.FindByFieldInput{Kind: dnd5e.KindRace, Field: dnd5e.FieldName, Value: "dwarf"}).
		Return(&documents.FindByFieldOutput{Documents: []*documents.Document{
			doc(dnd5e.KindRace, "race_1", `{"id":"race_1","name":"dwarf"}`),
		}}, nil)
	mocks.ExpectChildren(s.ctx, s.mockRepo, dnd5e.KindSubrace, dnd5e.FieldRaceID, "race_1",
		[]*documents.Document{doc(dnd5e.KindSubrace, "subrace_1", `{"id":`)}, nil)

	_, err := s.svc.GetRaceDetails(s.ctx, &library.GetRaceDetailsInput{NameOrID: "dwarf"})
	s.Require().Error(err)
	s.True(errors.IsDataLoss(err))
}

func (s *LibraryOrchestratorTestSuite) TestNotFoundSurvivesSuggestionFailure() {
	s.mockRepo.EXPECT().
		FindByField(s.ctx, gomock.Any()).
		Return(&documents.FindByFieldOutput{Documents: []*documents.Document{}}, nil).
		Times(2)
	s.mockRepo.EXPECT().
		FindAll(s.ctx, documents.FindAllInput{Kind: dnd5e.KindSpell}).
		Return(nil, errors.Unavailable("redis is down"))

	_, err := s.svc.GetSpell(s.ctx, &library.GetSpellInput{Name: "Wish"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.NotContains(errors.GetMeta(err), "suggestion")
}

func (s *LibraryOrchestratorTestSuite) TestListWithNoParentsSkipsChildQueries() {
	s.mockRepo.EXPECT().
		FindAll(s.ctx, documents.FindAllInput{Kind: dnd5e.KindClass}).
		Return(&documents.FindAllOutput{Documents: []*documents.Document{}}, nil)

	out, err := s.svc.ListClassDetails(s.ctx, &library.ListClassDetailsInput{})
	s.Require().NoError(err)
	s.NotNil(out.Details)
	s.Empty(out.Details)
}

func (s *LibraryOrchestratorTestSuite) TestNilInputs() {
	_, err := s.svc.GetClassDetails(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.GetRaceDetails(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.GetEquipment(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}
