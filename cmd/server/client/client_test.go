package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
	"github.com/laasilva/dracolich-library-api-sub000/internal/handlers/library/v1alpha1"
	"github.com/laasilva/dracolich-library-api-sub000/internal/orchestrators/library"
	librarymock "github.com/laasilva/dracolich-library-api-sub000/internal/orchestrators/library/mock"
)

type ClientCommandTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockLibrary *librarymock.MockService
	server      *grpc.Server
	out         *bytes.Buffer
}

func TestClientCommandTestSuite(t *testing.T) {
	suite.Run(t, new(ClientCommandTestSuite))
}

func (s *ClientCommandTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLibrary = librarymock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{LibraryService: s.mockLibrary})
	s.Require().NoError(err)

	listener := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer()
	v1alpha1.RegisterLibraryServiceServer(s.server, handler)
	go func() { _ = s.server.Serve(listener) }()

	serverAddr = "passthrough:///bufnet"
	timeout = 5 * time.Second
	dialOptions = []grpc.DialOption{
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
	}

	s.out = &bytes.Buffer{}
}

func (s *ClientCommandTestSuite) TearDownTest() {
	s.server.Stop()
	dialOptions = nil
	s.ctrl.Finish()
}

func (s *ClientCommandTestSuite) TestGetClassPrintsJSON() {
	s.mockLibrary.EXPECT().
		GetClassDetails(gomock.Any(), &library.GetClassDetailsInput{NameOrID: "monk"}).
		Return(&library.GetClassDetailsOutput{Details: &library.ClassDetails{
			Class:      &dnd5e.Class{ID: "class_4", Name: "monk", HitDice: "1d8"},
			Subclasses: []*dnd5e.Subclass{},
		}}, nil)

	getClassCmd.SetOut(s.out)
	getClassCmd.SetContext(context.Background())
	s.Require().NoError(getClassCmd.RunE(getClassCmd, []string{"monk"}))

	var payload map[string]interface{}
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &payload))
	s.Equal("monk", payload["class"].(map[string]interface{})["name"])
	s.Equal([]interface{}{}, payload["subclasses"])
}

func (s *ClientCommandTestSuite) TestListSpellsSendsFilters() {
	level := 2
	s.mockLibrary.EXPECT().
		ListSpells(gomock.Any(), &library.ListSpellsInput{Level: &level, ClassName: "wizard"}).
		Return(&library.ListSpellsOutput{Spells: []*dnd5e.Spell{{ID: "spell_3", Name: "Misty Step", Level: 2}}}, nil)

	s.Require().NoError(listSpellsCmd.Flags().Set("level", "2"))
	s.Require().NoError(listSpellsCmd.Flags().Set("class", "wizard"))
	defer func() {
		listSpellsCmd.Flags().Lookup("level").Changed = false
		spellLevel, spellClass = 0, ""
	}()

	listSpellsCmd.SetOut(s.out)
	listSpellsCmd.SetContext(context.Background())
	s.Require().NoError(listSpellsCmd.RunE(listSpellsCmd, nil))

	var payload []map[string]interface{}
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &payload))
	s.Require().Len(payload, 1)
	s.Equal("Misty Step", payload[0]["name"])
}

func (s *ClientCommandTestSuite) TestServerErrorsAreReturned() {
	s.mockLibrary.EXPECT().
		GetRaceDetails(gomock.Any(), &library.GetRaceDetailsInput{NameOrID: "orc"}).
		Return(nil, errors.NotFound(`race "orc" not found`))

	getRaceCmd.SetOut(s.out)
	getRaceCmd.SetContext(context.Background())
	err := getRaceCmd.RunE(getRaceCmd, []string{"orc"})
	s.Equal(codes.NotFound, status.Code(err))
	s.Empty(s.out.String())
}

func (s *ClientCommandTestSuite) TestListEquipmentSendsCategory() {
	s.mockLibrary.EXPECT().
		ListEquipment(gomock.Any(), &library.ListEquipmentInput{Category: "tool"}).
		Return(&library.ListEquipmentOutput{Equipment: []*dnd5e.Equipment{
			{ID: "equipment_9", Name: "Lute", Category: "tool"},
		}}, nil)

	listEquipmentCmd.SetOut(s.out)
	listEquipmentCmd.SetContext(context.Background())
	s.Require().NoError(listEquipmentCmd.RunE(listEquipmentCmd, []string{"tool"}))

	var payload []map[string]interface{}
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &payload))
	s.Require().Len(payload, 1)
	s.Equal("Lute", payload[0]["name"])
}

func (s *ClientCommandTestSuite) TestListAlignments() {
	s.mockLibrary.EXPECT().
		ListAlignments(gomock.Any(), &library.ListAlignmentsInput{}).
		Return(&library.ListAlignmentsOutput{Alignments: []*dnd5e.Alignment{
			{ID: "alignment_1", Name: "Lawful Good", Abbreviation: "LG"},
		}}, nil)

	listAlignmentsCmd.SetOut(s.out)
	listAlignmentsCmd.SetContext(context.Background())
	s.Require().NoError(listAlignmentsCmd.RunE(listAlignmentsCmd, nil))

	var payload []map[string]interface{}
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &payload))
	s.Require().Len(payload, 1)
	s.Equal("LG", payload[0]["abbreviation"])
}
