package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "rental/internal/adapters/out/postgres"
	"rental/internal/adapters/out/postgres/categoryrepo"
	"rental/internal/adapters/out/postgres/orderrepo"
	"rental/internal/adapters/out/postgres/productrepo"
	"rental/internal/adapters/out/postgres/userrepo"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/product"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type OrderQueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository

	admin    kernel.Actor
	vendor   kernel.Actor
	customer kernel.Actor
	other    kernel.Actor

	vendorProduct   *product.Product
	platformProduct *product.Product

	cart      *order.RentalOrder
	pending   *order.RentalOrder
	confirmed *order.RentalOrder
}

func (suite *OrderQueryHandlersTestSuite) SetupSuite() {
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

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *OrderQueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderQueryHandlersTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE order_lines, rental_orders, products, categories, users CASCADE").Error)

	suite.admin = suite.actor(kernel.RoleAdmin)
	suite.vendor = suite.actor(kernel.RoleVendor)
	suite.customer = suite.actor(kernel.RoleCustomer)
	suite.other = suite.actor(kernel.RoleCustomer)

	suite.Require().NoError(suite.db.Create(&userrepo.UserDTO{
		ID:    suite.customer.ID().Bytes(),
		Email: "ada@example.com",
		Name:  "Ada",
		Role:  kernel.RoleCustomer.String(),
	}).Error)

	category, err := product.NewCategory(kernel.NewUUID(), "Camping", "")
	suite.Require().NoError(err)
	suite.Require().NoError(categoryrepo.NewGormCategoryRepository(suite.db).UpsertBySlug(ctx, category))

	productRepo := productrepo.NewGormProductRepository(suite.db, noopTracker{})
	vendorID := suite.vendor.ID()
	suite.vendorProduct = suite.newProduct(productRepo, &vendorID, category.ID(), "Kayak", "10.00")
	suite.platformProduct = suite.newProduct(productRepo, nil, category.ID(), "Paddle", "2.50")

	now := time.Now().UTC()

	suite.pending = suite.newOrder(suite.customer, now.Add(-2*time.Hour), suite.platformProduct)
	suite.Require().NoError(suite.pending.Submit(suite.customer))
	suite.Require().NoError(suite.orderRepo.Add(ctx, suite.pending))

	suite.confirmed = suite.newOrder(suite.other, now.Add(-time.Hour), suite.vendorProduct, suite.platformProduct)
	suite.Require().NoError(suite.confirmed.Submit(suite.other))
	_, err = suite.confirmed.ChangeStatus(order.Confirmed, suite.admin)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, suite.confirmed))

	suite.cart = suite.newOrder(suite.customer, now, suite.vendorProduct, suite.vendorProduct)
	suite.Require().NoError(suite.orderRepo.Add(ctx, suite.cart))
}

func (suite *OrderQueryHandlersTestSuite) TestGetCart_ReturnsLinesAndEstimate() {
	result, err := queries.NewGetCartQueryHandler(suite.db, nil, 0).
		Handle(context.Background(), queries.NewGetCartQuery(suite.customer))

	suite.Require().NoError(err)
	suite.Require().NotNil(result.OrderID)
	suite.Equal(suite.cart.ID(), *result.OrderID)
	suite.Equal(3, result.Days)
	suite.Equal("20.00", result.Total.String())
	suite.Equal("60.00", result.Estimate.String())
	suite.Require().Len(result.Lines, 1)
	suite.Equal("Kayak", result.Lines[0].ProductName)
	suite.Equal(2, result.Lines[0].Quantity)
	suite.Equal("20.00", result.Lines[0].Subtotal.String())
}

func (suite *OrderQueryHandlersTestSuite) TestGetCart_WithoutQuotation_ReturnsEmptyCart() {
	result, err := queries.NewGetCartQueryHandler(suite.db, nil, 0).
		Handle(context.Background(), queries.NewGetCartQuery(suite.other))

	suite.Require().NoError(err)
	suite.Nil(result.OrderID)
	suite.Empty(result.Lines)
	suite.True(result.Total.IsZero())
	suite.Equal(1, result.Days)
}

func (suite *OrderQueryHandlersTestSuite) TestGetCart_Anonymous() {
	_, err := queries.NewGetCartQueryHandler(suite.db, nil, 0).
		Handle(context.Background(), queries.NewGetCartQuery(kernel.Anonymous()))

	suite.ErrorIs(err, errs.ErrUnauthenticated)
}

func (suite *OrderQueryHandlersTestSuite) TestListCustomerOrders_ExcludesCart() {
	result, err := queries.NewListCustomerOrdersQueryHandler(suite.db).
		Handle(context.Background(), queries.NewListCustomerOrdersQuery(suite.customer))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(suite.pending.ID(), result[0].ID)
	suite.Equal(order.Pending, result[0].Status)
	suite.Equal("Ada", result[0].CustomerName)
	suite.Equal("ada@example.com", result[0].CustomerEmail)
}

func (suite *OrderQueryHandlersTestSuite) TestListVendorOrders_OnlyVendorLines() {
	result, err := queries.NewListVendorOrdersQueryHandler(suite.db).
		Handle(context.Background(), queries.NewListVendorOrdersQuery(suite.vendor))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(suite.confirmed.ID(), result[0].ID)
	suite.Require().Len(result[0].Lines, 1)
	suite.Equal(suite.vendorProduct.ID(), result[0].Lines[0].ProductID)
	suite.Empty(result[0].CustomerName)
}

func (suite *OrderQueryHandlersTestSuite) TestListVendorOrders_RequiresVendor() {
	_, err := queries.NewListVendorOrdersQueryHandler(suite.db).
		Handle(context.Background(), queries.NewListVendorOrdersQuery(suite.customer))

	suite.Equal(errs.KindForbidden, errs.KindOf(err))
}

func (suite *OrderQueryHandlersTestSuite) TestListOrders_NewestFirst() {
	query, err := queries.NewListOrdersQuery(suite.admin, nil)
	suite.Require().NoError(err)

	result, err := queries.NewListOrdersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(suite.confirmed.ID(), result[0].ID)
	suite.Equal(suite.pending.ID(), result[1].ID)
	suite.Len(result[0].Lines, 2)
}

func (suite *OrderQueryHandlersTestSuite) TestListOrders_FiltersByStatus() {
	query, err := queries.NewListOrdersQuery(suite.admin, []string{"PENDING", "RETURNED"})
	suite.Require().NoError(err)

	result, err := queries.NewListOrdersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(suite.pending.ID(), result[0].ID)
}

func (suite *OrderQueryHandlersTestSuite) TestListOrders_RequiresAdmin() {
	query, err := queries.NewListOrdersQuery(suite.vendor, nil)
	suite.Require().NoError(err)

	_, err = queries.NewListOrdersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Equal(errs.KindForbidden, errs.KindOf(err))
}

func (suite *OrderQueryHandlersTestSuite) TestGetOrder_AdminAndOwner() {
	for _, actor := range []kernel.Actor{suite.admin, suite.customer} {
		query, err := queries.NewGetOrderQuery(actor, suite.pending.ID())
		suite.Require().NoError(err)

		result, err := queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)

		suite.Require().NoError(err)
		suite.Equal(suite.pending.ID(), result.ID)
		suite.Len(result.Lines, 1)
	}
}

func (suite *OrderQueryHandlersTestSuite) TestGetOrder_Stranger() {
	query, err := queries.NewGetOrderQuery(suite.other, suite.pending.ID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Equal(errs.KindForbidden, errs.KindOf(err))
}

func (suite *OrderQueryHandlersTestSuite) TestGetOrder_NotFound() {
	query, err := queries.NewGetOrderQuery(suite.admin, kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Equal(errs.KindNotFound, errs.KindOf(err))
}

func (suite *OrderQueryHandlersTestSuite) actor(role kernel.Role) kernel.Actor {
	a, err := kernel.NewActor(kernel.NewUUID(), role)
	suite.Require().NoError(err)
	return a
}

func (suite *OrderQueryHandlersTestSuite) newProduct(
	repo *productrepo.GormProductRepository,
	vendorID *kernel.UUID,
	categoryID kernel.UUID,
	name, price string,
) *product.Product {
	p, err := product.NewProduct(kernel.NewUUID(), vendorID, product.Details{
		Name:       name,
		CategoryID: categoryID,
		PriceDaily: kernel.MustMoney(price),
		TotalStock: 5,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(context.Background(), p))
	return p
}

// newOrder builds a three-day quotation holding one unit per listed product.
func (suite *OrderQueryHandlersTestSuite) newOrder(
	owner kernel.Actor,
	createdAt time.Time,
	products ...*product.Product,
) *order.RentalOrder {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	period, err := kernel.NewDateRange(start, start.AddDate(0, 0, 3))
	suite.Require().NoError(err)

	o, err := order.NewQuotation(kernel.NewUUID(), owner.ID(), period, createdAt)
	suite.Require().NoError(err)
	for _, p := range products {
		_, err = o.AddProduct(kernel.NewUUID(), p.ID(), p.PriceDaily())
		suite.Require().NoError(err)
	}
	return o
}

func TestOrderQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueryHandlersTestSuite))
}
