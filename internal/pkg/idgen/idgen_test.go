package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/laasilva/dracolich-library-api-sub000/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (s *IDGenTestSuite) TestSequential() {
	gen := idgen.NewSequential()

	s.Equal("class_1", gen.Generate("class"))
	s.Equal("class_2", gen.Generate("class"))
	s.Equal("race_1", gen.Generate("race"))
	s.Equal("1", gen.Generate(""))
}

func (s *IDGenTestSuite) TestUUID() {
	gen := idgen.NewUUID()

	first := gen.Generate("spell")
	second := gen.Generate("spell")

	s.True(strings.HasPrefix(first, "spell_"))
	s.NotEqual(first, second)
	s.Len(gen.Generate(""), 36)
}
