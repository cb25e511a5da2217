package service

import (
	"context"
	"fmt"

	"github.com/dcastanera/possync/internal/logger"
	"github.com/dcastanera/possync/internal/store"
	"github.com/dcastanera/possync/models"
)

type saleService struct {
	storages *store.Storages
	logger   *logger.Logger
}

func NewSaleService(storages *store.Storages, logger *logger.Logger) SaleService {
	return &saleService{
		storages: storages,
		logger:   logger,
	}
}

// RecordSale appends the sale to the durable queue. Recording never touches
// the network, so a sale completes in the same way online and offline.
func (s *saleService) RecordSale(ctx context.Context, sale models.PendingSale) (string, error) {
	if err := validateSale(sale); err != nil {
		return "", err
	}

	id, err := s.storages.PendingSales.Append(ctx, sale)
	if err != nil {
		return "", fmt.Errorf("record sale: %w", err)
	}

	s.logger.Info().
		Str("func", "saleService.RecordSale").
		Str("sale_id", id).
		Int("items", len(sale.Items)).
		Msg("sale queued locally")

	return id, nil
}

func (s *saleService) LookupProduct(ctx context.Context, id int64) (models.CachedProduct, error) {
	return s.storages.ProductCache.Get(ctx, id)
}

func (s *saleService) SearchProducts(ctx context.Context, filter store.ProductFilter) ([]models.CachedProduct, error) {
	return s.storages.ProductCache.ListProducts(ctx, filter)
}

func validateSale(sale models.PendingSale) error {
	if len(sale.Items) == 0 {
		return fmt.Errorf("%w: sale has no items", ErrInvalidSale)
	}
	for _, item := range sale.Items {
		if item.ProductID <= 0 {
			return fmt.Errorf("%w: item has no product id", ErrInvalidSale)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item quantity must be positive", ErrInvalidSale)
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("%w: item price must not be negative", ErrInvalidSale)
		}
	}

	switch sale.PaymentMethod {
	case models.PaymentStandard, models.PaymentCashDiscount:
		return nil
	case "":
		return fmt.Errorf("%w: payment method is required", ErrInvalidSale)
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidSale, sale.PaymentMethod)
	}
}
