package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"

	"go-storefront/models"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/checkout/session"
)

const (
	// checkoutCurrency is applied to every line item; amounts are sent to
	// the provider in minor units (paise).
	checkoutCurrency = "inr"
	// shippingRateID is the single flat shipping rate attached to every session
	shippingRateID = "shr_1N0qDnSAq8kJSdzMvlVkJdua"
)

// CheckoutController turns a cart into a payment-provider checkout session
type CheckoutController struct {
	FrontendURL string

	createSession func(*stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// NewCheckoutController creates a CheckoutController. Redirect targets are
// built from frontendURL plus fixed /success and /cancel suffixes.
func NewCheckoutController(frontendURL string) *CheckoutController {
	return &CheckoutController{
		FrontendURL:   frontendURL,
		createSession: session.New,
	}
}

// CreateCheckoutSession validates the cart, builds the session request and
// returns the provider-issued session id. Provider failures pass through
// with the provider's status code and raw message; there is no retry.
func (cc *CheckoutController) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var items []models.CartItem
	err := json.NewDecoder(r.Body).Decode(&items)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if len(items) == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			http.Error(w, fmt.Sprintf("Invalid cart item %d: %v", i, err), http.StatusBadRequest)
			return
		}
	}

	sess, err := cc.createSession(buildSessionParams(items, cc.FrontendURL))
	if err != nil {
		status := http.StatusInternalServerError
		message := err.Error()
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			if stripeErr.HTTPStatusCode != 0 {
				status = stripeErr.HTTPStatusCode
			}
			message = stripeErr.Msg
		}
		log.Printf("checkout session creation failed: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(message)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sess.ID)
}

// buildSessionParams maps cart items onto the provider's line-item schema.
// Unit amounts convert to minor currency units; the buyer may adjust each
// quantity in the payment UI down to 1, with no maximum.
func buildSessionParams(items []models.CartItem, frontendURL string) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(checkoutCurrency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(int64(math.Round(item.Price * 100))),
			},
			AdjustableQuantity: &stripe.CheckoutSessionLineItemAdjustableQuantityParams{
				Enabled: stripe.Bool(true),
				Minimum: stripe.Int64(1),
			},
			Quantity: stripe.Int64(int64(item.Qty)),
		})
	}

	return &stripe.CheckoutSessionParams{
		SubmitType:               stripe.String(string(stripe.CheckoutSessionSubmitTypePay)),
		Mode:                     stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes:       stripe.StringSlice([]string{"card"}),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionAuto)),
		ShippingOptions: []*stripe.CheckoutSessionShippingOptionParams{
			{ShippingRate: stripe.String(shippingRateID)},
		},
		LineItems:  lineItems,
		SuccessURL: stripe.String(frontendURL + "/success"),
		CancelURL:  stripe.String(frontendURL + "/cancel"),
	}
}
