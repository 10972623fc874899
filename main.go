// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"go-storefront/controllers"
	"go-storefront/middleware"
	"go-storefront/routes"
	"go-storefront/store"
	"go-storefront/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v83"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the payment provider key
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	// Connect to MongoDB
	client, err := store.Connect(os.Getenv("MONGODB_URI"))
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()
	log.Println("Connected to Database")

	// Initialize EmailService when configured
	var emailService *utils.EmailService
	if os.Getenv("SENDGRID_API_KEY") != "" {
		emailService = utils.NewEmailService()
	}

	// Initialize controllers
	userController := controllers.NewUserController(store.NewUsers(client), emailService)
	productController := controllers.NewProductController(store.NewProducts(client))
	checkoutController := controllers.NewCheckoutController(os.Getenv("FRONTEND_URL"))

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, userController, productController, checkoutController)
	router.Use(middleware.Logging)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Server is running at port: %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
