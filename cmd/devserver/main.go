// Command devserver is a stand-in sales backend for local development. It
// serves a generated product catalog with the same pagination contract as the
// production API and accepts sale submissions, so the client's offline-sync
// behavior can be exercised by stopping and restarting the process.
package main

import (
	"flag"
	"fmt"

	"github.com/dcastanera/possync/internal/handler"
	"github.com/dcastanera/possync/internal/logger"
	"github.com/dcastanera/possync/internal/server"
	"github.com/dcastanera/possync/models"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	products := flag.Int("products", 1200, "number of generated catalog products")
	flag.Parse()

	log := logger.New("possync-devserver")

	h := handler.NewHandler(generateCatalog(*products), log)

	srv, err := server.NewServer(h.Init(), *addr, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func generateCatalog(n int) []models.CachedProduct {
	categories := []string{"beverages", "snacks", "dairy", "bakery", "household"}

	catalog := make([]models.CachedProduct, 0, n)
	for i := 0; i < n; i++ {
		catalog = append(catalog, models.CachedProduct{
			ID:        int64(i + 1),
			Name:      fmt.Sprintf("Product %04d", i+1),
			Category:  categories[i%len(categories)],
			Barcode:   fmt.Sprintf("750%09d", i+1),
			CostPrice: 1 + float64(i%50)*0.25,
			SalePrice: 2 + float64(i%50)*0.4,
			Stock:     10 + i%90,
			MinStock:  5,
		})
	}
	return catalog
}
