package queries_test

import (
	"testing"

	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_ZeroValuesAreNotConstructed(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"GetCart", queries.GetCartQuery{}.Validate(), queries.ErrGetCartQueryIsNotConstructed},
		{"ListProducts", queries.ListProductsQuery{}.Validate(), queries.ErrListProductsQueryIsNotConstructed},
		{"GetProduct", queries.GetProductQuery{}.Validate(), queries.ErrGetProductQueryIsNotConstructed},
		{"ListCategories", queries.ListCategoriesQuery{}.Validate(), queries.ErrListCategoriesQueryIsNotConstructed},
		{
			"ListCustomerOrders",
			queries.ListCustomerOrdersQuery{}.Validate(),
			queries.ErrListCustomerOrdersQueryIsNotConstructed,
		},
		{
			"ListVendorOrders",
			queries.ListVendorOrdersQuery{}.Validate(),
			queries.ErrListVendorOrdersQueryIsNotConstructed,
		},
		{"ListOrders", queries.ListOrdersQuery{}.Validate(), queries.ErrListOrdersQueryIsNotConstructed},
		{"GetOrder", queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed},
		{"ListUsers", queries.ListUsersQuery{}.Validate(), queries.ErrListUsersQueryIsNotConstructed},
		{"AdminStats", queries.AdminStatsQuery{}.Validate(), queries.ErrAdminStatsQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.want)
		})
	}
}

func TestNewListOrdersQuery_ParsesStatuses(t *testing.T) {
	query, err := queries.NewListOrdersQuery(kernel.Anonymous(), []string{"pending", "PICKED_UP"})

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.Equal(t, []order.Status{order.Pending, order.PickedUp}, query.Statuses())
}

func TestNewListOrdersQuery_UnknownStatus(t *testing.T) {
	_, err := queries.NewListOrdersQuery(kernel.Anonymous(), []string{"SHIPPED"})

	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestNewGetProductQuery_RequiresID(t *testing.T) {
	_, err := queries.NewGetProductQuery(kernel.UUID{})
	assert.Error(t, err)

	query, err := queries.NewGetProductQuery(kernel.NewUUID())
	require.NoError(t, err)
	assert.NoError(t, query.Validate())
}

func TestNewGetOrderQuery_RequiresID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.Anonymous(), kernel.UUID{})
	assert.Error(t, err)
}
