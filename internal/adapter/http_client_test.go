// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Castanera

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastanera/possync/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPServerAdapter(HTTPClientConfig{BaseURL: srv.URL, Timeout: 2 * time.Second})
}

func TestSubmitSale_SendsPayloadAndToken(t *testing.T) {
	var (
		gotPath  string
		gotAuth  string
		gotBody  models.SaleSubmission
		decodeOK bool
	)

	srv := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		decodeOK = json.NewDecoder(r.Body).Decode(&gotBody) == nil
		w.WriteHeader(http.StatusCreated)
	}))
	srv.SetToken("cashier-token")

	err := srv.SubmitSale(context.Background(), models.SaleSubmission{
		Items:         []models.SaleItem{{ProductID: 3, Quantity: 1, UnitPrice: 7.25}},
		PaymentMethod: models.PaymentStandard,
	})

	require.NoError(t, err)
	assert.Equal(t, "/api/sales", gotPath)
	assert.Equal(t, "Bearer cashier-token", gotAuth)
	require.True(t, decodeOK)
	require.Len(t, gotBody.Items, 1)
	assert.Equal(t, int64(3), gotBody.Items[0].ProductID)
}

func TestSubmitSale_ServerErrorIsSentinel(t *testing.T) {
	srv := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	err := srv.SubmitSale(context.Background(), models.SaleSubmission{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestSubmitSale_Unauthorized(t *testing.T) {
	srv := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	err := srv.SubmitSale(context.Background(), models.SaleSubmission{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSubmitSale_UnmappedStatusKeepsCode(t *testing.T) {
	srv := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	err := srv.SubmitSale(context.Background(), models.SaleSubmission{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 502")
	assert.Contains(t, err.Error(), http.StatusText(http.StatusBadGateway))
}

func TestFetchProductPage_ForwardsPagination(t *testing.T) {
	srv := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.Equal(t, "1000", r.URL.Query().Get("skip"))
		assert.Equal(t, "500", r.URL.Query().Get("limit"))

		page := models.ProductPage{
			Products: []models.CachedProduct{{ID: 1001, Name: "Sugar"}},
			HasMore:  true,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(page)
	}))

	page, err := srv.FetchProductPage(context.Background(), 1000, 500)

	require.NoError(t, err)
	assert.True(t, page.HasMore)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Sugar", page.Products[0].Name)
}

func TestFetchProductPage_DecodeError(t *testing.T) {
	srv := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))

	_, err := srv.FetchProductPage(context.Background(), 0, 500)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode product page response")
}

func TestPing(t *testing.T) {
	var gotPath string
	srv := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, srv.Ping(context.Background()))
	assert.Equal(t, "/api/health", gotPath)
}

func TestPing_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	adapter := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: srv.URL, Timeout: time.Second})
	srv.Close()

	err := adapter.Ping(context.Background())

	require.Error(t, err)
}

func TestSetToken_TrimsWhitespace(t *testing.T) {
	adapter := NewHTTPServerAdapter(HTTPClientConfig{})

	adapter.SetToken("  token  ")
	assert.Equal(t, "token", adapter.Token())

	adapter.SetToken("")
	assert.Empty(t, adapter.Token())
}
