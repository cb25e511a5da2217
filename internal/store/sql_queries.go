// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Castanera

package store

const (
	appendPendingSale = `
		INSERT INTO pending_sales (
			id,
			items,
			payment_method,
			created_at,
			sync_state
		) VALUES ($1, $2, $3, $4, $5);`

	listPendingSales = `
		SELECT
			id,
			items,
			payment_method,
			created_at,
			sync_state
		FROM pending_sales
		WHERE sync_state = 'pending'
		ORDER BY created_at, rowid;`

	markSaleSynced = `
		UPDATE pending_sales
		SET sync_state = 'synced'
		WHERE id = $1
		  AND sync_state = 'pending';`

	countPendingSales = `
		SELECT COUNT(*)
		FROM pending_sales
		WHERE sync_state = 'pending';`

	purgeSyncedSales = `
		DELETE FROM pending_sales
		WHERE sync_state = 'synced';`

	deleteAllProducts = `DELETE FROM product_cache;`

	countProducts = `SELECT COUNT(*) FROM product_cache;`
)
