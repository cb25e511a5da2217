package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/dcastanera/possync/internal/logger"
	"github.com/dcastanera/possync/models"
)

// insertChunkSize bounds the number of rows per INSERT statement so the
// variable count stays below SQLite's host-parameter limit.
const insertChunkSize = 90

var productColumns = []string{
	"id", "name", "description", "category", "barcode",
	"cost_price", "sale_price", "stock", "min_stock", "updated_at",
}

type productCacheRepository struct {
	*DB
	logger  *logger.Logger
	builder sq.StatementBuilderType
}

func NewProductCacheRepository(db *DB, logger *logger.Logger) ProductCacheRepository {
	return &productCacheRepository{
		DB:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *productCacheRepository) ReplaceAll(ctx context.Context, products []models.CachedProduct) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Err(err).
			Str("func", "productCacheRepository.ReplaceAll").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllProducts); err != nil {
		r.logger.Err(err).
			Str("func", "productCacheRepository.ReplaceAll").
			Msg("failed to clear product cache")
		return fmt.Errorf("%w: clear product cache: %w", ErrStorageUnavailable, err)
	}

	for start := 0; start < len(products); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(products) {
			end = len(products)
		}

		// OR REPLACE keeps the last write when the same product id shows up
		// twice in one download, which happens when the catalog shifts between
		// page rounds.
		insert := r.builder.Insert("product_cache").
			Options("OR REPLACE").
			Columns(productColumns...)
		for _, p := range products[start:end] {
			insert = insert.Values(
				p.ID, p.Name, p.Description, p.Category, p.Barcode,
				p.CostPrice, p.SalePrice, p.Stock, p.MinStock, p.UpdatedAt,
			)
		}

		query, args, buildErr := insert.ToSql()
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).
				Str("func", "productCacheRepository.ReplaceAll").
				Int("chunk_start", start).
				Msg("failed to insert product chunk")
			return fmt.Errorf("%w: insert product chunk: %w", ErrStorageUnavailable, err)
		}
	}

	if err = tx.Commit(); err != nil {
		r.logger.Err(err).
			Str("func", "productCacheRepository.ReplaceAll").
			Msg("failed to commit product cache replacement")
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrCommitingTransaction, err)
	}

	r.logger.Debug().
		Str("func", "productCacheRepository.ReplaceAll").
		Int("products", len(products)).
		Msg("product cache replaced")

	return nil
}

func (r *productCacheRepository) Count(ctx context.Context) (int, error) {
	var count int
	row := r.DB.QueryRowContext(ctx, countProducts)
	if err := row.Scan(&count); err != nil {
		r.logger.Err(err).
			Str("func", "productCacheRepository.Count").
			Msg("failed to count cached products")
		return 0, fmt.Errorf("%w: count products: %w", ErrStorageUnavailable, err)
	}

	return count, nil
}

func (r *productCacheRepository) Get(ctx context.Context, id int64) (models.CachedProduct, error) {
	query, args, err := r.builder.
		Select(productColumns...).
		From("product_cache").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.CachedProduct{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var p models.CachedProduct
	row := r.DB.QueryRowContext(ctx, query, args...)
	err = row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Category, &p.Barcode,
		&p.CostPrice, &p.SalePrice, &p.Stock, &p.MinStock, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CachedProduct{}, fmt.Errorf("%w: id=%d", ErrProductNotFound, id)
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "productCacheRepository.Get").
			Int64("product_id", id).
			Msg("failed to query cached product")
		return models.CachedProduct{}, fmt.Errorf("%w: get product (id=%d): %w", ErrStorageUnavailable, id, err)
	}

	return p, nil
}

func (r *productCacheRepository) ListProducts(ctx context.Context, filter ProductFilter) ([]models.CachedProduct, error) {
	builder := r.builder.
		Select(productColumns...).
		From("product_cache").
		OrderBy("name")

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Barcode != "" {
		builder = builder.Where(sq.Eq{"barcode": filter.Barcode})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "productCacheRepository.ListProducts").
			Msg("failed to query cached products")
		return nil, fmt.Errorf("%w: list products: %w", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var products []models.CachedProduct

	for rows.Next() {
		var p models.CachedProduct
		scanErr := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Category, &p.Barcode,
			&p.CostPrice, &p.SalePrice, &p.Stock, &p.MinStock, &p.UpdatedAt,
		)
		if scanErr != nil {
			r.logger.Err(scanErr).
				Str("func", "productCacheRepository.ListProducts").
				Msg("failed to scan cached product row")
			return nil, fmt.Errorf("failed to scan cached product row: %w", scanErr)
		}

		products = append(products, p)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: iterating cached product rows: %w", ErrStorageUnavailable, rowsErr)
	}

	return products, nil
}
