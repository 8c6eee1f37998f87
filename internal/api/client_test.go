package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alturino/inventory/pkg/request"
)

func newTestClient(t *testing.T, router *mux.Router) *Client {
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return NewClient(server.URL + "/api")
}

func TestListProducts(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"sku":"PROD001","name":"Widget","quantity":5,"price":9.99,"createdAt":"2025-01-02T15:04:05Z","updatedAt":"2025-01-02T15:04:05Z"},
			{"id":2,"sku":"PROD002","name":"Gadget","quantity":0,"price":0.01,"createdAt":"2025-02-03T10:00:00Z","updatedAt":"2025-02-03T10:00:00Z"}
		]`))
	}).Methods(http.MethodGet)
	client := newTestClient(t, router)

	products, err := client.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "PROD001", products[0].SKU)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, 5, products[0].Quantity)
	assert.True(t, decimal.NewFromFloat(9.99).Equal(products[0].Price))
	assert.Equal(t, 2025, products[0].CreatedAt.Year())
	assert.True(t, decimal.NewFromFloat(0.01).Equal(products[1].Price))
}

func TestListProductsServerFailure(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}).Methods(http.MethodGet)
	client := newTestClient(t, router)

	products, err := client.ListProducts(context.Background())

	require.Error(t, err)
	assert.Nil(t, products)
	var requestError *RequestError
	require.True(t, errors.As(err, &requestError))
	assert.Equal(t, http.StatusInternalServerError, requestError.StatusCode)
	assert.Equal(t, http.MethodGet, requestError.Method)
}

func TestCreateProduct(t *testing.T) {
	var decoded map[string]interface{}
	var contentType, requestId string
	router := mux.NewRouter()
	router.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		requestId = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&decoded)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`"Producto creado"`))
	}).Methods(http.MethodPost)
	client := newTestClient(t, router)

	payload, err := client.CreateProduct(context.Background(), request.CreateProduct{
		SKU:      "PROD001",
		Name:     "Widget",
		Quantity: 5,
		Price:    decimal.NewFromFloat(9.99),
	})

	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`"Producto creado"`), payload)
	assert.Equal(t, "application/json", contentType)
	assert.NotEmpty(t, requestId)
	assert.Equal(t, "PROD001", decoded["sku"])
	assert.Equal(t, "Widget", decoded["name"])
	assert.Equal(t, float64(5), decoded["quantity"])
	assert.Equal(t, 9.99, decoded["price"])
}

func TestUpdateProductAddressesResourceById(t *testing.T) {
	var pathId string
	router := mux.NewRouter()
	router.HandleFunc("/api/products/{productId}", func(w http.ResponseWriter, r *http.Request) {
		pathId = mux.Vars(r)["productId"]
		_, _ = w.Write([]byte(`"Producto actualizado"`))
	}).Methods(http.MethodPut)
	client := newTestClient(t, router)

	_, err := client.UpdateProduct(context.Background(), 42, request.CreateProduct{
		SKU:      "PROD001",
		Name:     "Widget",
		Quantity: 5,
		Price:    decimal.NewFromFloat(9.99),
	})

	require.NoError(t, err)
	assert.Equal(t, "42", pathId)
}

func TestDeleteProduct(t *testing.T) {
	var pathId string
	router := mux.NewRouter()
	router.HandleFunc("/api/products/{productId}", func(w http.ResponseWriter, r *http.Request) {
		pathId = mux.Vars(r)["productId"]
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodDelete)
	client := newTestClient(t, router)

	err := client.DeleteProduct(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "7", pathId)
}

func TestDeleteProductNotFound(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/products/{productId}", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}).Methods(http.MethodDelete)
	client := newTestClient(t, router)

	err := client.DeleteProduct(context.Background(), 999)

	require.Error(t, err)
	var requestError *RequestError
	require.True(t, errors.As(err, &requestError))
	assert.Equal(t, http.StatusNotFound, requestError.StatusCode)
}

func TestTransportFailurePropagates(t *testing.T) {
	client := NewClient("http://127.0.0.1:1/api")

	_, err := client.ListProducts(context.Background())

	require.Error(t, err)
	var requestError *RequestError
	assert.False(t, errors.As(err, &requestError))
}
