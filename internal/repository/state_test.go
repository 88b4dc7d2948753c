//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"coach-planner-backend/internal/database/models"
	apperrors "coach-planner-backend/internal/errors"
	"coach-planner-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// StateRepositoryTestSuite tests the postgres StateRepository
type StateRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *StateRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *StateRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewStateRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *StateRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *StateRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *StateRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *StateRepositoryTestSuite) TestRead_NotFound() {
	data, err := suite.repo.Read(suite.ctx, "missing")

	suite.Nil(data)
	suite.ErrorIs(err, apperrors.ErrStateNotFound)
}

func (suite *StateRepositoryTestSuite) TestWriteThenRead() {
	blob := testutils.MarshalState(suite.factories.CreateFullState())

	suite.Require().NoError(suite.repo.Write(suite.ctx, "state", blob))

	data, err := suite.repo.Read(suite.ctx, "state")
	suite.Require().NoError(err)
	suite.JSONEq(string(blob), string(data))
}

func (suite *StateRepositoryTestSuite) TestWrite_ReplacesWholeDocument() {
	first := testutils.MarshalState(suite.factories.CreateFullState())
	second := testutils.MarshalState(models.NewAppState())

	suite.Require().NoError(suite.repo.Write(suite.ctx, "state", first))
	suite.Require().NoError(suite.repo.Write(suite.ctx, "state", second))

	data, err := suite.repo.Read(suite.ctx, "state")
	suite.Require().NoError(err)
	suite.JSONEq(string(second), string(data))

	var count int64
	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.StateBlob{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *StateRepositoryTestSuite) TestKeysAreIndependent() {
	suite.Require().NoError(suite.repo.Write(suite.ctx, "a", []byte(`{"teams":[]}`)))

	_, err := suite.repo.Read(suite.ctx, "b")
	suite.ErrorIs(err, apperrors.ErrStateNotFound)
}

func (suite *StateRepositoryTestSuite) TestPing() {
	suite.NoError(suite.repo.Ping(suite.ctx))
}

func TestStateRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StateRepositoryTestSuite))
}
