package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeProductStore struct {
	products  []models.Product
	insertErr error
	findErr   error
}

func (f *fakeProductStore) Insert(_ context.Context, product *models.Product) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	product.ID = primitive.NewObjectID()
	f.products = append(f.products, *product)
	return product.ID.Hex(), nil
}

func (f *fakeProductStore) FindAll(_ context.Context) ([]models.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return append([]models.Product{}, f.products...), nil
}

func TestUploadProduct(t *testing.T) {
	fake := &fakeProductStore{}
	pc := NewProductController(fake)

	rec := doJSON(t, pc.UploadProduct, http.MethodPost, "/uploadProduct",
		`{"name":"Mango","category":"fruits","image":"mango.jpg","price":"80","description":"ripe"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Upload successful", decodeOutcome(t, rec)["message"])

	require.Len(t, fake.products, 1)
	assert.Equal(t, "Mango", fake.products[0].Name)
	assert.Equal(t, "80", fake.products[0].Price)
}

func TestUploadProduct_InvalidJSON(t *testing.T) {
	pc := NewProductController(&fakeProductStore{})

	rec := doJSON(t, pc.UploadProduct, http.MethodPost, "/uploadProduct", `{broken`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListProducts_ReturnsEveryUpload(t *testing.T) {
	fake := &fakeProductStore{}
	pc := NewProductController(fake)

	const n = 5
	for i := 0; i < n; i++ {
		body := fmt.Sprintf(`{"name":"item-%d","category":"misc","price":"%d"}`, i, (i+1)*10)
		rec := doJSON(t, pc.UploadProduct, http.MethodPost, "/uploadProduct", body)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(t, pc.ListProducts, http.MethodGet, "/product", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, n)
	for i, product := range listed {
		assert.Equal(t, fmt.Sprintf("item-%d", i), product.Name)
		assert.Equal(t, fmt.Sprintf("%d", (i+1)*10), product.Price)
	}
}

func TestListProducts_Empty(t *testing.T) {
	pc := NewProductController(&fakeProductStore{})

	rec := doJSON(t, pc.ListProducts, http.MethodGet, "/product", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListProducts_StoreError(t *testing.T) {
	pc := NewProductController(&fakeProductStore{findErr: errors.New("boom")})

	rec := doJSON(t, pc.ListProducts, http.MethodGet, "/product", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeOutcome(t, rec)["message"])
}
