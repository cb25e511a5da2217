package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dcastanera/possync/internal/logger"
	"github.com/dcastanera/possync/internal/mock"
	"github.com/dcastanera/possync/internal/store"
	"github.com/dcastanera/possync/models"
)

func newTestSaleSvc(t *testing.T, ctrl *gomock.Controller) (SaleService, *mock.MockPendingSaleRepository, *mock.MockProductCacheRepository) {
	t.Helper()

	mockSales := mock.NewMockPendingSaleRepository(ctrl)
	mockCache := mock.NewMockProductCacheRepository(ctrl)

	storages := &store.Storages{
		PendingSales: mockSales,
		ProductCache: mockCache,
	}

	return NewSaleService(storages, logger.Nop()), mockSales, mockCache
}

func validSale() models.PendingSale {
	return models.PendingSale{
		Items:         []models.SaleItem{{ProductID: 5, Quantity: 2, UnitPrice: 3.25}},
		PaymentMethod: models.PaymentStandard,
	}
}

func TestRecordSale_QueuesLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSales, _ := newTestSaleSvc(t, ctrl)
	ctx := context.Background()

	mockSales.EXPECT().Append(ctx, validSale()).Return("sale-1", nil)

	id, err := svc.RecordSale(ctx, validSale())

	require.NoError(t, err)
	assert.Equal(t, "sale-1", id)
}

func TestRecordSale_Validation(t *testing.T) {
	tests := []struct {
		name string
		sale models.PendingSale
	}{
		{
			name: "no items",
			sale: models.PendingSale{PaymentMethod: models.PaymentStandard},
		},
		{
			name: "zero quantity",
			sale: models.PendingSale{
				Items:         []models.SaleItem{{ProductID: 1, Quantity: 0, UnitPrice: 1}},
				PaymentMethod: models.PaymentStandard,
			},
		},
		{
			name: "negative price",
			sale: models.PendingSale{
				Items:         []models.SaleItem{{ProductID: 1, Quantity: 1, UnitPrice: -1}},
				PaymentMethod: models.PaymentStandard,
			},
		},
		{
			name: "missing product id",
			sale: models.PendingSale{
				Items:         []models.SaleItem{{Quantity: 1, UnitPrice: 1}},
				PaymentMethod: models.PaymentStandard,
			},
		},
		{
			name: "missing payment method",
			sale: models.PendingSale{
				Items: []models.SaleItem{{ProductID: 1, Quantity: 1, UnitPrice: 1}},
			},
		},
		{
			name: "unknown payment method",
			sale: models.PendingSale{
				Items:         []models.SaleItem{{ProductID: 1, Quantity: 1, UnitPrice: 1}},
				PaymentMethod: "credit",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _, _ := newTestSaleSvc(t, ctrl)

			_, err := svc.RecordSale(context.Background(), tt.sale)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSale)
		})
	}
}

func TestRecordSale_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSales, _ := newTestSaleSvc(t, ctrl)
	ctx := context.Background()

	mockSales.EXPECT().Append(ctx, gomock.Any()).Return("", assert.AnError)

	_, err := svc.RecordSale(ctx, validSale())

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestLookupProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCache := newTestSaleSvc(t, ctrl)
	ctx := context.Background()

	mockCache.EXPECT().Get(ctx, int64(5)).Return(models.CachedProduct{ID: 5, Name: "Milk"}, nil)

	product, err := svc.LookupProduct(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, "Milk", product.Name)
}

func TestSearchProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCache := newTestSaleSvc(t, ctrl)
	ctx := context.Background()

	filter := store.ProductFilter{Category: "dairy", Limit: 10}
	mockCache.EXPECT().ListProducts(ctx, filter).Return([]models.CachedProduct{{ID: 1}}, nil)

	products, err := svc.SearchProducts(ctx, filter)

	require.NoError(t, err)
	assert.Len(t, products, 1)
}
