// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"docushop/controllers"
	"docushop/routes"
	"docushop/utils"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Initialize EmailService
	emailService := utils.NewEmailService()
	if !emailService.Enabled() {
		log.Println("SENDGRID_API_KEY not set. Order confirmation emails disabled.")
	}

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	if err := utils.EnsureIndexes(client); err != nil {
		log.Fatalf("Error creating indexes: %v", err)
	}

	// Initialize controllers
	userController := controllers.NewUserController(client)
	cryptoController := controllers.NewCryptoController(client)
	productController := controllers.NewProductController(client)
	orderController := controllers.NewOrderController(client, emailService)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, userController, cryptoController, productController, orderController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
