//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	apperrors "coach-planner-backend/internal/errors"
	"coach-planner-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// RedisStateRepositoryTestSuite tests the RedisStateRepository
type RedisStateRepositoryTestSuite struct {
	suite.Suite
	redisTestSuite *testutils.RedisTestSuite
	repo           *RedisStateRepository
	factories      *testutils.FactorySet
	ctx            context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *RedisStateRepositoryTestSuite) SetupSuite() {
	suite.redisTestSuite = testutils.SetupRedisTestSuite(suite.T())

	suite.repo = NewRedisStateRepository(suite.redisTestSuite.Client)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *RedisStateRepositoryTestSuite) TearDownSuite() {
	suite.redisTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RedisStateRepositoryTestSuite) SetupTest() {
	suite.redisTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *RedisStateRepositoryTestSuite) TearDownTest() {
	suite.redisTestSuite.TearDownTest()
}

func (suite *RedisStateRepositoryTestSuite) TestRead_NotFound() {
	_, err := suite.repo.Read(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrStateNotFound)
}

func (suite *RedisStateRepositoryTestSuite) TestWriteThenRead() {
	blob := testutils.MarshalState(suite.factories.CreateFullState())

	suite.Require().NoError(suite.repo.Write(suite.ctx, "state", blob))

	data, err := suite.repo.Read(suite.ctx, "state")
	suite.Require().NoError(err)
	suite.Equal(blob, data)

	ttl, err := suite.redisTestSuite.Client.TTL(suite.ctx, "state").Result()
	suite.Require().NoError(err)
	suite.Less(ttl.Seconds(), float64(0), "state must not expire")
}

func (suite *RedisStateRepositoryTestSuite) TestPing() {
	suite.NoError(suite.repo.Ping(suite.ctx))
}

func TestRedisStateRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisStateRepositoryTestSuite))
}
