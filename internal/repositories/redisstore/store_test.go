package redisstore_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/anyventure/companion-api/internal/errors"
	"github.com/anyventure/companion-api/internal/repositories/redisstore"
	"github.com/anyventure/companion-api/internal/testutils"
)

type note struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

func (n *note) GetID() string   { return n.ID }
func (n *note) GetType() string { return "note" }

type StoreTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	store *redisstore.Store[*note]
	ctx   context.Context
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.ctx = context.Background()

	store, err := redisstore.New[*note](&redisstore.Config{
		Client:    client,
		KeyPrefix: "note:",
		IndexKey:  "note:index",
	})
	s.Require().NoError(err)
	s.store = store
}

func (s *StoreTestSuite) TestConfigValidation() {
	_, err := redisstore.New[*note](nil)
	s.Error(err)

	_, err = redisstore.New[*note](&redisstore.Config{IndexKey: "note:index"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "client")
	s.Contains(err.Error(), "key_prefix")
}

func (s *StoreTestSuite) TestPutGetDelete() {
	s.Require().NoError(s.store.Put(s.ctx, &note{ID: "n1", Body: "hello"}, nil))

	got, err := s.store.Get(s.ctx, "n1")
	s.Require().NoError(err)
	s.Equal("hello", got.Body)

	members, err := s.mr.SMembers("note:index")
	s.Require().NoError(err)
	s.Equal([]string{"n1"}, members)

	s.Require().NoError(s.store.Delete(s.ctx, "n1", nil))
	_, err = s.store.Get(s.ctx, "n1")
	s.True(errors.IsNotFound(err))
	list, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(list)

	err = s.store.Delete(s.ctx, "n1", nil)
	s.True(errors.IsNotFound(err))
}

func (s *StoreTestSuite) TestEntityTypeNamesRecords() {
	_, err := s.store.Get(s.ctx, "missing")
	s.Require().True(errors.IsNotFound(err))
	s.Contains(err.Error(), "note with ID missing not found")

	err = s.store.Put(s.ctx, &note{Body: "no id"}, nil)
	s.Require().True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "note ID cannot be empty")
}

func (s *StoreTestSuite) TestPutRunsExtraCommands() {
	err := s.store.Put(s.ctx, &note{ID: "n1"}, func(pipe goredis.Pipeliner) {
		pipe.SAdd(s.ctx, "note:owner:alice", "n1")
	})
	s.Require().NoError(err)

	ok, err := s.mr.SIsMember("note:owner:alice", "n1")
	s.Require().NoError(err)
	s.True(ok)

	list, err := s.store.ListByIndex(s.ctx, "note:owner:alice")
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *StoreTestSuite) TestListOrdersAndCleansStaleIDs() {
	s.Require().NoError(s.store.Put(s.ctx, &note{ID: "b"}, nil))
	s.Require().NoError(s.store.Put(s.ctx, &note{ID: "a"}, nil))
	_, err := s.mr.SAdd("note:index", "ghost")
	s.Require().NoError(err)
	s.Require().NoError(s.mr.Set("note:corrupt", "{not json"))
	_, err = s.mr.SAdd("note:index", "corrupt")
	s.Require().NoError(err)

	list, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("a", list[0].ID)
	s.Equal("b", list[1].ID)

	ghost, err := s.mr.SIsMember("note:index", "ghost")
	s.Require().NoError(err)
	s.False(ghost)
}

func (s *StoreTestSuite) TestListEmpty() {
	list, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.NotNil(list)
	s.Empty(list)
}
