// routes/routes.go
package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"docushop/controllers"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, cryptoController *controllers.CryptoController, productController *controllers.ProductController, orderController *controllers.OrderController) {
	// Health check
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("DocuShop backend is running"))
	}).Methods("GET")

	// User routes
	router.HandleFunc("/users/register", userController.Register).Methods("POST")
	router.HandleFunc("/users/login", userController.Login).Methods("POST")
	router.HandleFunc("/users/admin", userController.UpdateAdmin).Methods("PUT")
	router.HandleFunc("/create-admin", userController.CreateAdmin).Methods("POST")

	// Crypto address routes
	router.HandleFunc("/crypto-addresses", cryptoController.GetAddresses).Methods("GET")
	router.HandleFunc("/crypto-addresses", cryptoController.UpdateAddresses).Methods("PUT")

	// Product routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products", productController.CreateProduct).Methods("POST")

	// Order routes
	router.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	router.HandleFunc("/orders", orderController.CreateOrder).Methods("POST")
	router.HandleFunc("/orders/{id}/cancel", orderController.CancelOrder).Methods("PATCH")
}
