// routes/routes.go
package routes

import (
	"fmt"
	"net/http"

	"go-storefront/controllers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, productController *controllers.ProductController, checkoutController *controllers.CheckoutController) {
	// Liveness
	router.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, "Server is running")
	}).Methods("GET")

	// Account routes
	router.HandleFunc("/signup", userController.SignUp).Methods("POST")
	router.HandleFunc("/login", userController.LogIn).Methods("POST")
	router.HandleFunc("/api/users", userController.ListUsers).Methods("GET")

	// Catalog routes
	router.HandleFunc("/uploadProduct", productController.UploadProduct).Methods("POST")
	router.HandleFunc("/product", productController.ListProducts).Methods("GET")

	// Payment routes
	router.HandleFunc("/create-checkout-session", checkoutController.CreateCheckoutSession).Methods("POST")
}
