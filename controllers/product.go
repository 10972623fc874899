package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go-storefront/models"
)

// ProductStore is the catalog persistence the controller depends on
type ProductStore interface {
	Insert(ctx context.Context, product *models.Product) (string, error)
	FindAll(ctx context.Context) ([]models.Product, error)
}

// ProductController handles catalog uploads and listings
type ProductController struct {
	Store ProductStore
}

// NewProductController creates a new ProductController
func NewProductController(productStore ProductStore) *ProductController {
	return &ProductController{
		Store: productStore,
	}
}

// UploadProduct persists a product payload as-is. No duplicate checking.
func (pc *ProductController) UploadProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	err := json.NewDecoder(r.Body).Decode(&product)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = pc.Store.Insert(ctx, &product)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeMessage(w, http.StatusOK, "Upload successful")
}

// ListProducts returns the full catalog, unfiltered and unpaginated
func (pc *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products, err := pc.Store.FindAll(ctx)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}
