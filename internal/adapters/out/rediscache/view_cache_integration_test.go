package rediscache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"rental/internal/adapters/out/rediscache"
	"rental/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type ViewCacheIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	rdb       *redis.Client
	cache     *rediscache.ViewCache
}

func (suite *ViewCacheIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	rdb, err := rediscache.Connect(ctx, endpoint, "", 0)
	suite.Require().NoError(err)
	suite.rdb = rdb
	suite.cache = rediscache.NewViewCache(rdb)
}

func (suite *ViewCacheIntegrationTestSuite) TearDownSuite() {
	if suite.rdb != nil {
		suite.Require().NoError(suite.rdb.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ViewCacheIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.rdb.FlushDB(context.Background()).Err())
}

func (suite *ViewCacheIntegrationTestSuite) TestGet_Miss() {
	value, found, err := suite.cache.Get(context.Background(), "views:cart:nobody")

	suite.Require().NoError(err)
	suite.False(found)
	suite.Nil(value)
}

func (suite *ViewCacheIntegrationTestSuite) TestSetThenGet() {
	ctx := context.Background()
	suite.Require().NoError(suite.cache.Set(ctx, "views:cart:1", []byte(`{"Days":2}`), time.Minute))

	value, found, err := suite.cache.Get(ctx, "views:cart:1")

	suite.Require().NoError(err)
	suite.True(found)
	suite.JSONEq(`{"Days":2}`, string(value))

	ttl, err := suite.rdb.TTL(ctx, "views:cart:1").Result()
	suite.Require().NoError(err)
	suite.Greater(ttl, time.Duration(0))
}

func (suite *ViewCacheIntegrationTestSuite) TestInvalidate_PatternAndExactKeys() {
	ctx := context.Background()
	for i := range 250 {
		suite.Require().NoError(suite.cache.Set(ctx, ports.CatalogViewKey(fmt.Sprint(i)), []byte("[]"), 0))
	}
	suite.Require().NoError(suite.cache.Set(ctx, ports.CartViewKey("a"), []byte("{}"), 0))
	suite.Require().NoError(suite.cache.Set(ctx, ports.CartViewKey("b"), []byte("{}"), 0))

	err := suite.cache.Invalidate(ctx, ports.CatalogViewPattern, ports.CartViewKey("a"))
	suite.Require().NoError(err)

	remaining, err := suite.rdb.Keys(ctx, "*").Result()
	suite.Require().NoError(err)
	suite.Equal([]string{ports.CartViewKey("b")}, remaining)
}

func (suite *ViewCacheIntegrationTestSuite) TestInvalidate_NothingMatches() {
	suite.NoError(suite.cache.Invalidate(context.Background(), ports.CatalogViewPattern))
}

func TestViewCacheIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ViewCacheIntegrationTestSuite))
}
