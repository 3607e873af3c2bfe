package matches

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/skirmish/internal"
	"github.com/KirkDiggler/skirmish/internal/entities"
	"github.com/KirkDiggler/skirmish/internal/testutils"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
	match      *entities.CombatState
	data       string
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedis(s.mockClient)

	s.match = testutils.CreateTestMatch("match-1", time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC))
	data, err := json.Marshal(s.match)
	s.Require().NoError(err)
	s.data = string(data)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()

	s.mock.ExpectSetNX("match:match-1", s.data, matchTTL).SetVal(true)
	s.mock.ExpectSAdd("matches", "match-1").SetVal(1)

	s.NoError(s.repo.Create(ctx, s.match))
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	ctx := context.Background()

	s.mock.ExpectSetNX("match:match-1", s.data, matchTTL).SetVal(false)

	err := s.repo.Create(ctx, s.match)
	s.ErrorIs(err, internal.ErrExists)
}

func (s *RedisRepoTestSuite) TestCreate_Errors() {
	ctx := context.Background()

	s.ErrorIs(s.repo.Create(ctx, nil), internal.ErrMissingParam)

	s.mock.ExpectSetNX("match:match-1", s.data, matchTTL).SetErr(errors.New("redis error"))
	s.Error(s.repo.Create(ctx, s.match))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()

	s.mock.ExpectGet("match:match-1").SetVal(s.data)

	got, err := s.repo.Get(ctx, "match-1")
	s.Require().NoError(err)
	s.Equal(s.match, got)
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	s.mock.ExpectGet("match:missing").RedisNil()

	_, err := s.repo.Get(ctx, "missing")
	s.ErrorIs(err, internal.ErrNotFound)
}

func (s *RedisRepoTestSuite) TestGet_BadPayload() {
	ctx := context.Background()

	s.mock.ExpectGet("match:match-1").SetVal("{not json")

	_, err := s.repo.Get(ctx, "match-1")
	s.ErrorContains(err, "deserialize")
}

func (s *RedisRepoTestSuite) TestUpdate() {
	ctx := context.Background()
	testutils.AppendTestTurn(s.match, 7)
	data, err := json.Marshal(s.match)
	s.Require().NoError(err)

	s.mock.ExpectExists("match:match-1").SetVal(1)
	s.mock.ExpectSet("match:match-1", string(data), matchTTL).SetVal("OK")
	s.mock.ExpectSAdd("matches", "match-1").SetVal(0)

	s.NoError(s.repo.Update(ctx, s.match))
}

func (s *RedisRepoTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()

	s.mock.ExpectExists("match:match-1").SetVal(0)

	err := s.repo.Update(ctx, s.match)
	s.ErrorIs(err, internal.ErrNotFound)
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()

	s.mock.ExpectDel("match:match-1").SetVal(1)
	s.mock.ExpectSRem("matches", "match-1").SetVal(1)
	s.NoError(s.repo.Delete(ctx, "match-1"))

	s.mock.ExpectDel("match:gone").SetVal(0)
	s.mock.ExpectSRem("matches", "gone").SetVal(0)
	s.ErrorIs(s.repo.Delete(ctx, "gone"), internal.ErrNotFound)
}

func (s *RedisRepoTestSuite) TestList() {
	ctx := context.Background()
	s.mock.MatchExpectationsInOrder(false)

	later := testutils.CreateTestMatch("match-2", s.match.StartedAt.Add(time.Minute))
	laterData, err := json.Marshal(later)
	s.Require().NoError(err)

	s.mock.ExpectSMembers("matches").SetVal([]string{"match-2", "expired", "match-1"})
	s.mock.ExpectGet("match:match-2").SetVal(string(laterData))
	s.mock.ExpectGet("match:expired").RedisNil()
	s.mock.ExpectGet("match:match-1").SetVal(s.data)

	list, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("match-1", list[0].ID)
	s.Equal("match-2", list[1].ID)
}

func (s *RedisRepoTestSuite) TestList_Error() {
	ctx := context.Background()

	s.mock.ExpectSMembers("matches").SetErr(errors.New("redis error"))

	_, err := s.repo.List(ctx)
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestNewRedisRepository_RequiresClient() {
	s.Panics(func() { NewRedisRepository(&RedisRepoConfig{}) })
}
