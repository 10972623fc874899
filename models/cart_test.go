package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    CartItem
		wantErr bool
	}{
		{"valid", CartItem{Name: "Apple", Price: 40, Qty: 2}, false},
		{"fractional price", CartItem{Name: "Apple", Price: 40.50, Qty: 1}, false},
		{"empty name", CartItem{Name: "", Price: 40, Qty: 1}, true},
		{"blank name", CartItem{Name: "   ", Price: 40, Qty: 1}, true},
		{"zero price", CartItem{Name: "Apple", Price: 0, Qty: 1}, true},
		{"negative price", CartItem{Name: "Apple", Price: -1, Qty: 1}, true},
		{"nan price", CartItem{Name: "Apple", Price: math.NaN(), Qty: 1}, true},
		{"inf price", CartItem{Name: "Apple", Price: math.Inf(1), Qty: 1}, true},
		{"zero qty", CartItem{Name: "Apple", Price: 40, Qty: 0}, true},
		{"negative qty", CartItem{Name: "Apple", Price: 40, Qty: -3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
