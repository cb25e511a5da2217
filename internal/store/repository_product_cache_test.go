package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastanera/possync/internal/logger"
	"github.com/dcastanera/possync/models"
)

func newTestProductRepo(t *testing.T, db *sql.DB) ProductCacheRepository {
	t.Helper()
	return NewProductCacheRepository(newDBFromSQL(db), logger.Nop())
}

func sampleProducts(n int) []models.CachedProduct {
	products := make([]models.CachedProduct, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, models.CachedProduct{
			ID:        int64(i + 1),
			Name:      "product",
			Category:  "general",
			SalePrice: 9.99,
			Stock:     10,
		})
	}
	return products
}

func TestProductCacheReplaceAll_SingleTransaction(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestProductRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM product_cache").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT OR REPLACE INTO product_cache").
		WillReturnResult(sqlmock.NewResult(2, 2))
	mock.ExpectCommit()

	err := repo.ReplaceAll(context.Background(), sampleProducts(2))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductCacheReplaceAll_DuplicateIDKeepsLastWrite(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestProductRepo(t, db)

	// A catalog that shifted between page rounds can return the same product
	// twice. The insert must upsert so the later copy wins instead of the
	// whole refill failing on the primary key.
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM product_cache").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT OR REPLACE INTO product_cache").
		WithArgs(
			int64(7), "stale copy", "", "", "", 0.0, 0.0, 0, 0, nil,
			int64(7), "fresh copy", "", "", "", 0.0, 0.0, 0, 0, nil,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.ReplaceAll(context.Background(), []models.CachedProduct{
		{ID: 7, Name: "stale copy"},
		{ID: 7, Name: "fresh copy"},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductCacheReplaceAll_ChunksLargeBatches(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestProductRepo(t, db)

	// insertChunkSize rows per statement: 200 products means three inserts.
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM product_cache").
		WillReturnResult(sqlmock.NewResult(0, 0))
	for i := 0; i < 3; i++ {
		mock.ExpectExec("INSERT OR REPLACE INTO product_cache").
			WillReturnResult(sqlmock.NewResult(0, insertChunkSize))
	}
	mock.ExpectCommit()

	err := repo.ReplaceAll(context.Background(), sampleProducts(200))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductCacheReplaceAll_EmptyCatalogClearsCache(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestProductRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM product_cache").
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectCommit()

	err := repo.ReplaceAll(context.Background(), nil)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductCacheReplaceAll_InsertErrorRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestProductRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM product_cache").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT OR REPLACE INTO product_cache").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.ReplaceAll(context.Background(), sampleProducts(1))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductCacheCount(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestProductRepo(t, db)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1200))

	count, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1200, count)
}

func TestProductCacheGet(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestProductRepo(t, db)

	updatedAt := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM product_cache").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(int64(42), "Coffee", "ground 250g", "beverages", "750100000001",
				2.1, 4.5, 30, 5, updatedAt))

	product, err := repo.Get(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), product.ID)
	assert.Equal(t, "Coffee", product.Name)
	assert.Equal(t, "beverages", product.Category)
	assert.Equal(t, 4.5, product.SalePrice)
	require.NotNil(t, product.UpdatedAt)
	assert.True(t, updatedAt.Equal(*product.UpdatedAt))
}

func TestProductCacheGet_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestProductRepo(t, db)

	mock.ExpectQuery("SELECT (.+) FROM product_cache").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductCacheListProducts_CategoryFilter(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestProductRepo(t, db)

	mock.ExpectQuery("SELECT (.+) FROM product_cache").
		WithArgs("beverages").
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(int64(1), "Coffee", "", "beverages", "", 2.1, 4.5, 30, 5, nil).
			AddRow(int64(2), "Tea", "", "beverages", "", 1.0, 2.5, 12, 3, nil))

	products, err := repo.ListProducts(context.Background(), ProductFilter{Category: "beverages"})

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Coffee", products[0].Name)
	assert.Equal(t, "Tea", products[1].Name)
	assert.Nil(t, products[0].UpdatedAt)
}

func TestProductCacheListProducts_BarcodeFilter(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestProductRepo(t, db)

	mock.ExpectQuery("SELECT (.+) FROM product_cache").
		WithArgs("750100000001").
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(int64(1), "Coffee", "", "beverages", "750100000001", 2.1, 4.5, 30, 5, nil))

	products, err := repo.ListProducts(context.Background(), ProductFilter{Barcode: "750100000001"})

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "750100000001", products[0].Barcode)
}
