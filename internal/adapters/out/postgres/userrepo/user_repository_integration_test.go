package userrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "rental/internal/adapters/out/postgres"
	"rental/internal/adapters/out/postgres/categoryrepo"
	"rental/internal/adapters/out/postgres/orderrepo"
	"rental/internal/adapters/out/postgres/productrepo"
	"rental/internal/adapters/out/postgres/userrepo"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/product"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Connect(connStr, nil)
	suite.Require().NoError(err)
	suite.db = db
	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.repository = userrepo.NewGormUserRepository(db)
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE order_lines, rental_orders, products, categories, users CASCADE").Error)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet() {
	id := suite.addUser("vendor@rent.test", "vendor")

	account, err := suite.repository.Get(context.Background(), id)

	suite.Require().NoError(err)
	suite.Equal("vendor@rent.test", account.Email())
	suite.Equal(kernel.RoleVendor, account.Role())

	_, err = suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	id := suite.addUser("idle@rent.test", "CUSTOMER")

	suite.Require().NoError(suite.repository.Delete(ctx, id))
	suite.Require().ErrorIs(suite.repository.Delete(ctx, id), errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestDelete_CustomerWithOrders() {
	ctx := context.Background()
	id := suite.addUser("renter@rent.test", "CUSTOMER")

	now := time.Now()
	q, err := order.NewQuotation(kernel.NewUUID(), id, kernel.DefaultDateRange(now), now)
	suite.Require().NoError(err)
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.db, noopTracker{}).Add(ctx, q))

	err = suite.repository.Delete(ctx, id)

	suite.Require().ErrorIs(err, ports.ErrUserIsReferenced)
	suite.Equal(errs.KindValidation, errs.KindOf(err))
	_, err = suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
}

func (suite *UserRepositoryIntegrationTestSuite) TestDelete_VendorWithProducts() {
	ctx := context.Background()
	id := suite.addUser("shop@rent.test", "VENDOR")

	category, err := product.NewCategory(kernel.NewUUID(), "Camping", "")
	suite.Require().NoError(err)
	suite.Require().NoError(categoryrepo.NewGormCategoryRepository(suite.db).UpsertBySlug(ctx, category))
	p, err := product.NewProduct(kernel.NewUUID(), &id, product.Details{
		Name:       "Tent",
		CategoryID: category.ID(),
		PriceDaily: kernel.MustMoney("15"),
		TotalStock: 2,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(productrepo.NewGormProductRepository(suite.db, noopTracker{}).Add(ctx, p))

	suite.Require().ErrorIs(suite.repository.Delete(ctx, id), ports.ErrUserIsReferenced)
}

func (suite *UserRepositoryIntegrationTestSuite) addUser(email, role string) kernel.UUID {
	id := kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&userrepo.UserDTO{
		ID:    id.Bytes(),
		Email: email,
		Name:  "Test User",
		Role:  role,
	}).Error)
	return id
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
