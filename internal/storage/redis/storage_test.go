package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SaveTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.storage.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestSaveAndLoad() {
	err := s.storage.SaveGame(s.ctx, "alice", "2048", []byte(`{"score":12}`))
	s.Require().NoError(err)

	saved, err := s.storage.LoadGame(s.ctx, "alice", "2048")
	s.Require().NoError(err)
	s.Equal("alice", saved.Owner)
	s.Equal("2048", saved.GameID)
	s.JSONEq(`{"score":12}`, string(saved.State))
	s.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), saved.UpdatedAt)
}

func (s *StorageSuite) TestLoadNotFound() {
	_, err := s.storage.LoadGame(s.ctx, "nobody", "2048")
	s.ErrorIs(err, storage.ErrNoSavedGame)
}

func (s *StorageSuite) TestSaveOverwrites() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, "alice", "2048", []byte(`1`)))
	s.Require().NoError(s.storage.SaveGame(s.ctx, "alice", "2048", []byte(`2`)))

	saved, err := s.storage.LoadGame(s.ctx, "alice", "2048")
	s.Require().NoError(err)
	s.Equal([]byte(`2`), saved.State)
}

func (s *StorageSuite) TestSavesAreScoped() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, "alice", "2048", []byte(`1`)))

	_, err := s.storage.LoadGame(s.ctx, "alice", "2048_endless")
	s.ErrorIs(err, storage.ErrNoSavedGame)
	_, err = s.storage.LoadGame(s.ctx, "bob", "2048")
	s.ErrorIs(err, storage.ErrNoSavedGame)
}

func (s *StorageSuite) TestDelete() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, "alice", "2048", []byte(`1`)))
	s.Require().NoError(s.storage.DeleteGame(s.ctx, "alice", "2048"))

	_, err := s.storage.LoadGame(s.ctx, "alice", "2048")
	s.ErrorIs(err, storage.ErrNoSavedGame)

	// Deleting twice is fine
	s.NoError(s.storage.DeleteGame(s.ctx, "alice", "2048"))
}

func (s *StorageSuite) TestKeyAndTTL() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, "alice", "2048", []byte(`1`)))

	s.True(s.mini.Exists("t2048:save:alice:2048"))
	s.Equal(time.Hour, s.mini.TTL(savedGameKey("alice", "2048")))

	s.mini.FastForward(2 * time.Hour)
	_, err := s.storage.LoadGame(s.ctx, "alice", "2048")
	s.ErrorIs(err, storage.ErrNoSavedGame)
}

func (s *StorageSuite) TestCorruptValue() {
	s.Require().NoError(s.mini.Set(savedGameKey("alice", "2048"), "not json"))

	_, err := s.storage.LoadGame(s.ctx, "alice", "2048")
	s.Error(err)
	s.NotErrorIs(err, storage.ErrNoSavedGame)
}

func (s *StorageSuite) TestPing() {
	s.NoError(s.storage.Ping(s.ctx))
}

func TestNewInvalidURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.URL = "not-a-url://"
	if _, err := New(cfg); err == nil {
		t.Error("New() with invalid URL should fail")
	}
}

func TestNewConnects(t *testing.T) {
	mini := miniredis.RunT(t)
	cfg := DefaultConfig()
	cfg.URL = "redis://" + mini.Addr()

	st, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer st.Close()

	if err := st.SaveGame(context.Background(), "a", "2048", []byte(`1`)); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
}
