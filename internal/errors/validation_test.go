package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/anyventure/companion-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationTestSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "Wither", vb)
	errors.ValidateRange("talent", 3, 0, 6, vb)
	errors.ValidateEnum("school", "black", []string{"black", "primal"}, vb)

	s.False(vb.HasErrors())
	s.NoError(vb.Build())
}

func (s *ValidationTestSuite) TestBuilderCollectsFields() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "   ", vb)
	errors.ValidateRange("talent", 9, 0, 6, vb)
	errors.ValidateEnum("school", "chrono", []string{"black", "primal"}, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	s.Equal("is required", meta["field.name"])
	s.Equal("must be between 0 and 6", meta["field.talent"])
	s.Equal("must be one of: black, primal", meta["field.school"])
}

func (s *ValidationTestSuite) TestMessageListsFieldsInOrder() {
	vb := errors.NewValidationBuilder().
		RequiredField("spell_id").
		RequiredField("character_id").
		Field("character_id", "must not be blank")

	s.Equal(
		"validation failed: character_id: is required, must not be blank; spell_id: is required",
		errors.GetMessage(vb.Build()),
	)
}

func (s *ValidationTestSuite) TestFieldMetaSurvivesGRPC() {
	err := errors.NewValidationBuilder().RequiredField("spell_id").Build()

	back := errors.FromGRPCError(errors.ToGRPCError(err))
	s.True(errors.IsInvalidArgument(back))
	s.Equal("is required", errors.GetMeta(back)["field.spell_id"])
}
