package queries_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockViewCache struct{ mock.Mock }

func (m *MockViewCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Bool(1), args.Error(2)
}

func (m *MockViewCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockViewCache) Invalidate(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, sqlMock
}

var productRowColumns = []string{
	"id", "vendor_id", "category_id", "category_name", "name", "description",
	"image", "price_daily", "total_stock", "available_stock", "is_rentable",
}

func TestListCategoriesQueryHandler_Handle(t *testing.T) {
	db, sqlMock := newMockDB(t)
	first, second := kernel.NewUUID(), kernel.NewUUID()

	sqlMock.ExpectQuery("FROM categories").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "description"}).
			AddRow(first.String(), "Camping", "camping", "Tents and stoves").
			AddRow(second.String(), "Photo & Video", "photo-video", ""))

	result, err := queries.NewListCategoriesQueryHandler(db).Handle(t.Context(), queries.NewListCategoriesQuery())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, first, result[0].ID)
	assert.Equal(t, "camping", result[0].Slug)
	assert.Equal(t, "photo-video", result[1].Slug)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestListCategoriesQueryHandler_DatabaseError(t *testing.T) {
	db, sqlMock := newMockDB(t)
	sqlMock.ExpectQuery("FROM categories").WillReturnError(errors.New("connection reset"))

	result, err := queries.NewListCategoriesQueryHandler(db).Handle(t.Context(), queries.NewListCategoriesQuery())

	require.ErrorIs(t, err, errs.ErrStorage)
	assert.Equal(t, errs.KindStorage, errs.KindOf(err))
	assert.Nil(t, result)
}

func TestGetProductQueryHandler_Handle(t *testing.T) {
	db, sqlMock := newMockDB(t)
	productID, vendorID, categoryID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	sqlMock.ExpectQuery(`WHERE p.id = \$1`).
		WithArgs(productID.String()).
		WillReturnRows(sqlmock.NewRows(productRowColumns).
			AddRow(productID.String(), vendorID.String(), categoryID.String(), "Camping",
				"Tent", "Two person tent", "tent.png", "25.50", 4, 3, false))

	query, err := queries.NewGetProductQuery(productID)
	require.NoError(t, err)

	result, err := queries.NewGetProductQueryHandler(db).Handle(t.Context(), query)

	require.NoError(t, err)
	assert.Equal(t, productID, result.ID)
	require.NotNil(t, result.VendorID)
	assert.Equal(t, vendorID, *result.VendorID)
	assert.Equal(t, "Camping", result.CategoryName)
	assert.Equal(t, "25.50", result.PriceDaily.String())
	assert.Equal(t, 4, result.TotalStock)
	assert.Equal(t, 3, result.AvailableStock)
	assert.False(t, result.IsRentable)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestGetProductQueryHandler_NotFound(t *testing.T) {
	db, sqlMock := newMockDB(t)
	productID := kernel.NewUUID()

	sqlMock.ExpectQuery(`WHERE p.id = \$1`).WillReturnRows(sqlmock.NewRows(productRowColumns))

	query, err := queries.NewGetProductQuery(productID)
	require.NoError(t, err)

	result, err := queries.NewGetProductQueryHandler(db).Handle(t.Context(), query)

	assert.Nil(t, result)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestListProductsQueryHandler_CacheMissReadsAndStores(t *testing.T) {
	db, sqlMock := newMockDB(t)
	cache := new(MockViewCache)
	productID, categoryID := kernel.NewUUID(), kernel.NewUUID()

	cache.On("Get", mock.Anything, "views:catalog:all").Return(nil, false, nil).Once()
	sqlMock.ExpectQuery("WHERE p.is_rentable").
		WillReturnRows(sqlmock.NewRows(productRowColumns).
			AddRow(productID.String(), nil, categoryID.String(), "Camping",
				"Stove", "", "", "5.00", 2, 2, true))
	cache.On("Set", mock.Anything, "views:catalog:all", mock.Anything, time.Minute).Return(nil).Once()

	result, err := queries.NewListProductsQueryHandler(db, cache, time.Minute).
		Handle(t.Context(), queries.NewListProductsQuery(nil))

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Nil(t, result[0].VendorID)
	assert.Equal(t, "Stove", result[0].Name)
	cache.AssertExpectations(t)
	assert.NoError(t, sqlMock.ExpectationsWereMet())

	stored := cache.Calls[1].Arguments.Get(2).([]byte)
	var roundTrip []queries.ProductResponse
	require.NoError(t, json.Unmarshal(stored, &roundTrip))
	require.Len(t, roundTrip, 1)
	assert.Equal(t, productID, roundTrip[0].ID)
	assert.Equal(t, "5.00", roundTrip[0].PriceDaily.String())
}

func TestListProductsQueryHandler_CacheHitSkipsDatabase(t *testing.T) {
	db, sqlMock := newMockDB(t)
	cache := new(MockViewCache)
	categoryID := kernel.NewUUID()

	cachedView := []queries.ProductResponse{{
		ID:         kernel.NewUUID(),
		CategoryID: categoryID,
		Name:       "Kayak",
		PriceDaily: kernel.MustMoney("40"),
		TotalStock: 1,
		IsRentable: true,
	}}
	raw, err := json.Marshal(cachedView)
	require.NoError(t, err)
	cache.On("Get", mock.Anything, "views:catalog:"+categoryID.String()).Return(raw, true, nil).Once()

	result, err := queries.NewListProductsQueryHandler(db, cache, time.Minute).
		Handle(t.Context(), queries.NewListProductsQuery(&categoryID))

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Kayak", result[0].Name)
	assert.Equal(t, "40.00", result[0].PriceDaily.String())
	cache.AssertExpectations(t)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestListProductsQueryHandler_CacheFailureFallsBackToDatabase(t *testing.T) {
	db, sqlMock := newMockDB(t)
	cache := new(MockViewCache)
	categoryID := kernel.NewUUID()

	cache.On("Get", mock.Anything, mock.Anything).Return(nil, false, errors.New("redis down"))
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))
	sqlMock.ExpectQuery(`AND p.category_id = \$1`).
		WithArgs(categoryID.String()).
		WillReturnRows(sqlmock.NewRows(productRowColumns))

	result, err := queries.NewListProductsQueryHandler(db, cache, time.Minute).
		Handle(t.Context(), queries.NewListProductsQuery(&categoryID))

	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestListProductsQueryHandler_WithoutCache(t *testing.T) {
	db, sqlMock := newMockDB(t)
	sqlMock.ExpectQuery("FROM products p").WillReturnRows(sqlmock.NewRows(productRowColumns))

	result, err := queries.NewListProductsQueryHandler(db, nil, 0).
		Handle(t.Context(), queries.NewListProductsQuery(nil))

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
