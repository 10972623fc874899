package models

import (
	"errors"
	"math"
	"strings"
)

// CartItem is a transient checkout line. It is never persisted; it exists
// only to build a payment session request.
type CartItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

// Validate rejects items that cannot be turned into a well-formed payment
// line: price must be a positive finite number and qty at least 1.
func (i CartItem) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return errors.New("name is required")
	}
	if math.IsNaN(i.Price) || math.IsInf(i.Price, 0) || i.Price <= 0 {
		return errors.New("price must be a positive number")
	}
	if i.Qty < 1 {
		return errors.New("qty must be at least 1")
	}
	return nil
}
