package validate

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Alturino/inventory/pkg/request"
)

func validProduct() request.CreateProduct {
	return request.CreateProduct{
		SKU:      "PROD001",
		Name:     "Widget",
		Quantity: 5,
		Price:    decimal.NewFromFloat(9.99),
	}
}

func TestStructValidProduct(t *testing.T) {
	fieldErrors := Struct(context.Background(), validProduct())
	assert.Nil(t, fieldErrors)
}

func TestStructSkuRules(t *testing.T) {
	tests := []struct {
		name     string
		sku      string
		expected string
	}{
		{name: "empty sku is required", sku: "", expected: "sku is required"},
		{name: "two characters is too short", sku: "AB", expected: "sku must be at least 3 characters"},
		{name: "three characters passes", sku: "ABC", expected: ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			param := validProduct()
			param.SKU = test.sku

			fieldErrors := Struct(context.Background(), param)

			if test.expected == "" {
				assert.NotContains(t, fieldErrors, "sku")
				return
			}
			assert.Equal(t, test.expected, fieldErrors["sku"])
		})
	}
}

func TestStructNameRules(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "empty name is required", value: "", expected: "name is required"},
		{name: "one character is too short", value: "W", expected: "name must be at least 2 characters"},
		{name: "two characters passes", value: "Wi", expected: ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			param := validProduct()
			param.Name = test.value

			fieldErrors := Struct(context.Background(), param)

			if test.expected == "" {
				assert.NotContains(t, fieldErrors, "name")
				return
			}
			assert.Equal(t, test.expected, fieldErrors["name"])
		})
	}
}

func TestStructQuantityRules(t *testing.T) {
	param := validProduct()
	param.Quantity = -1
	fieldErrors := Struct(context.Background(), param)
	assert.Equal(t, "quantity cannot be negative", fieldErrors["quantity"])

	param.Quantity = 0
	fieldErrors = Struct(context.Background(), param)
	assert.NotContains(t, fieldErrors, "quantity")
}

func TestStructPriceRules(t *testing.T) {
	tests := []struct {
		name     string
		price    decimal.Decimal
		rejected bool
	}{
		{name: "zero price is rejected", price: decimal.Zero, rejected: true},
		{name: "negative price is rejected", price: decimal.NewFromInt(-1), rejected: true},
		{name: "one cent passes", price: decimal.NewFromFloat(0.01), rejected: false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			param := validProduct()
			param.Price = test.price

			fieldErrors := Struct(context.Background(), param)

			if test.rejected {
				assert.Equal(t, "price must be greater than 0", fieldErrors["price"])
				return
			}
			assert.NotContains(t, fieldErrors, "price")
		})
	}
}

func TestStructReportsEveryInvalidField(t *testing.T) {
	param := request.CreateProduct{
		SKU:      "AB",
		Name:     "W",
		Quantity: -1,
		Price:    decimal.Zero,
	}

	fieldErrors := Struct(context.Background(), param)

	assert.Len(t, fieldErrors, 4)
	assert.Equal(t, "sku must be at least 3 characters", fieldErrors["sku"])
	assert.Equal(t, "name must be at least 2 characters", fieldErrors["name"])
	assert.Equal(t, "quantity cannot be negative", fieldErrors["quantity"])
	assert.Equal(t, "price must be greater than 0", fieldErrors["price"])
}

func TestStructUpdateProductRequiresID(t *testing.T) {
	param := request.UpdateProduct{CreateProduct: validProduct()}

	fieldErrors := Struct(context.Background(), param)

	assert.Equal(t, "id is required", fieldErrors["id"])

	param.ID = 42
	assert.Nil(t, Struct(context.Background(), param))
}

func TestFieldErrorsError(t *testing.T) {
	fieldErrors := FieldErrors{
		"sku":  "sku is required",
		"name": "name is required",
	}
	assert.Equal(t, "name is required; sku is required", fieldErrors.Error())
}
