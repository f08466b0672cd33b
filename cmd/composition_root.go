package cmd

import (
	"log/slog"

	httpin "rental/internal/adapters/in/http"
	"rental/internal/adapters/out/postgres"
	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	cache      ports.ViewCache
	effects    commands.SideEffects
	logger     *slog.Logger
}

// NewCompositionRoot wires the use cases. cache and notifier may be nil when the
// corresponding adapters are not configured.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	cache ports.ViewCache,
	notifier ports.Notifier,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:      cache,
		effects:    commands.NewSideEffects(notifier, cache, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddLineCommandHandler() commands.AddLineCommandHandler {
	return commands.NewAddLineCommandHandler(c.crossUoWFactory(), c.effects)
}

func (c *CompositionRoot) CreateRemoveLineCommandHandler() commands.RemoveLineCommandHandler {
	return commands.NewRemoveLineCommandHandler(c.orderUoWFactory(), c.effects)
}

func (c *CompositionRoot) CreateSubmitQuotationCommandHandler() commands.SubmitQuotationCommandHandler {
	return commands.NewSubmitQuotationCommandHandler(c.orderUoWFactory(), c.effects)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.crossUoWFactory(), c.effects)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.catalogUoWFactory(), c.effects)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.catalogUoWFactory(), c.effects)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.catalogUoWFactory(), c.effects)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.userUoWFactory(), c.config.MasterAdminEmail)
}

func (c *CompositionRoot) CreateSeedCategoriesCommandHandler() commands.SeedCategoriesCommandHandler {
	return commands.NewSeedCategoriesCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateSendOverdueRemindersCommandHandler() commands.SendOverdueRemindersCommandHandler {
	return commands.NewSendOverdueRemindersCommandHandler(c.orderUoWFactory(), c.effects)
}

func (c *CompositionRoot) CreateListCategoriesQueryHandler() queries.ListCategoriesQueryHandler {
	return queries.NewListCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB, c.cache, c.config.CacheTTL)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB, c.cache, c.config.CacheTTL)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListVendorOrdersQueryHandler() queries.ListVendorOrdersQueryHandler {
	return queries.NewListVendorOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB, c.config.MasterAdminEmail)
}

func (c *CompositionRoot) CreateAdminStatsQueryHandler() queries.AdminStatsQueryHandler {
	return queries.NewAdminStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		AddLine:            c.CreateAddLineCommandHandler(),
		RemoveLine:         c.CreateRemoveLineCommandHandler(),
		SubmitQuotation:    c.CreateSubmitQuotationCommandHandler(),
		UpdateOrderStatus:  c.CreateUpdateOrderStatusCommandHandler(),
		CreateProduct:      c.CreateCreateProductCommandHandler(),
		UpdateProduct:      c.CreateUpdateProductCommandHandler(),
		DeleteProduct:      c.CreateDeleteProductCommandHandler(),
		DeleteUser:         c.CreateDeleteUserCommandHandler(),
		ListCategories:     c.CreateListCategoriesQueryHandler(),
		ListProducts:       c.CreateListProductsQueryHandler(),
		GetProduct:         c.CreateGetProductQueryHandler(),
		GetCart:            c.CreateGetCartQueryHandler(),
		ListCustomerOrders: c.CreateListCustomerOrdersQueryHandler(),
		ListVendorOrders:   c.CreateListVendorOrdersQueryHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		ListUsers:          c.CreateListUsersQueryHandler(),
		AdminStats:         c.CreateAdminStatsQueryHandler(),
	}, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
