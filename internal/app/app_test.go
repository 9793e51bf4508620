package app

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/GlebRadaev/savesmart/internal/config"
	"github.com/GlebRadaev/savesmart/internal/kv"
	sqliterepo "github.com/GlebRadaev/savesmart/internal/repo/sqlite-repo"
	"github.com/GlebRadaev/savesmart/internal/storage"
	"github.com/stretchr/testify/suite"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestFailurePolicy() {
	policy, err := failurePolicy(config.PolicyOpen)
	s.Require().NoError(err)
	s.Equal(storage.FailOpen, policy)

	policy, err = failurePolicy(config.PolicyClosed)
	s.Require().NoError(err)
	s.Equal(storage.FailClosed, policy)

	_, err = failurePolicy("strict")
	s.Error(err)
}

func (s *ApplicationSuite) TestOpenStore_Memory() {
	store, err := s.app.openStore(context.Background(), &config.Config{Driver: config.DriverMemory, Quota: 16})
	s.Require().NoError(err)
	s.IsType(&kv.MemoryStore{}, store)
	s.ErrorIs(store.Set(context.Background(), "savesmart_users", "[\"more than sixteen bytes\"]"), kv.ErrQuotaExceeded)
	s.Empty(s.app.closers)
}

func (s *ApplicationSuite) TestOpenStore_SQLite() {
	path := filepath.Join(s.T().TempDir(), "savesmart.db")
	store, err := s.app.openStore(context.Background(), &config.Config{Driver: config.DriverSQLite, SQLitePath: path})
	s.Require().NoError(err)
	s.IsType(&sqliterepo.Repository{}, store)
	s.Require().Len(s.app.closers, 1)

	ctx := context.Background()
	s.Require().NoError(store.Set(ctx, "savesmart_users", "[]"))
	value, ok, err := store.Get(ctx, "savesmart_users")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("[]", value)

	s.app.closers[0]()
}

func (s *ApplicationSuite) TestOpenStore_Unsupported() {
	_, err := s.app.openStore(context.Background(), &config.Config{Driver: "redis"})
	s.ErrorContains(err, "unsupported store driver")
}
