// controllers/order.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"docushop/models"
	"docushop/utils"
)

// OrderController handles order placement, listing and cancellation.
type OrderController struct {
	OrderCollection   *mongo.Collection
	ProductCollection *mongo.Collection
	UserCollection    *mongo.Collection
	EmailService      *utils.EmailService
}

// NewOrderController creates a new OrderController
func NewOrderController(client *mongo.Client, emailService *utils.EmailService) *OrderController {
	db := client.Database(utils.DatabaseName)
	return &OrderController{
		OrderCollection:   db.Collection("orders"),
		ProductCollection: db.Collection("products"),
		UserCollection:    db.Collection("users"),
		EmailService:      emailService,
	}
}

// CreateOrder persists an order as submitted with an initial "placed"
// status and echoes it back. Inventory is not adjusted.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	order.ID = primitive.NilObjectID
	order.Status = models.OrderStatusPlaced
	order.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := oc.OrderCollection.InsertOne(ctx, order)
	if err != nil {
		utils.ErrorResponse(w, http.StatusInternalServerError, "Error placing order")
		return
	}
	order.ID = result.InsertedID.(primitive.ObjectID)

	if oc.EmailService.Enabled() && order.BillingInfo.Email != "" {
		go func(email string, order models.Order) {
			if err := oc.EmailService.SendOrderConfirmationEmail(email, order); err != nil {
				log.Printf("Failed to send email to %s: %v", email, err)
			}
		}(order.BillingInfo.Email, order)
	}

	utils.JSONResponse(w, http.StatusOK, map[string]any{
		"message": "Order placed",
		"order":   order,
	})
}

// GetOrders retrieves all orders with the user and product references
// resolved to full records. A dangling reference resolves to null instead
// of failing the listing.
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cursor, err := oc.OrderCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.ErrorResponse(w, http.StatusInternalServerError, "Error fetching orders")
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		utils.ErrorResponse(w, http.StatusInternalServerError, "Error fetching orders")
		return
	}

	users := map[primitive.ObjectID]*models.User{}
	products := map[primitive.ObjectID]*models.Product{}

	populated := []models.PopulatedOrder{}
	for _, order := range orders {
		user, err := oc.lookupUser(ctx, users, order.UserID)
		if err != nil {
			utils.ErrorResponse(w, http.StatusInternalServerError, "Error fetching orders")
			return
		}

		items := make([]models.PopulatedOrderItem, 0, len(order.Products))
		for _, item := range order.Products {
			product, err := oc.lookupProduct(ctx, products, item.ProductID)
			if err != nil {
				utils.ErrorResponse(w, http.StatusInternalServerError, "Error fetching orders")
				return
			}
			items = append(items, models.PopulatedOrderItem{
				Product:  product,
				Quantity: item.Quantity,
				Variant:  item.Variant,
			})
		}

		populated = append(populated, models.PopulatedOrder{
			ID:               order.ID,
			User:             user,
			Products:         items,
			Total:            order.Total,
			BillingInfo:      order.BillingInfo,
			PaymentAddresses: order.PaymentAddresses,
			Status:           order.Status,
			CreatedAt:        order.CreatedAt,
		})
	}

	utils.JSONResponse(w, http.StatusOK, populated)
}

// CancelOrder transitions an order to "cancelled" and returns the updated
// record. Cancelling an already cancelled order is a no-op success.
func (oc *OrderController) CancelOrder(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		// A malformed id cannot match any order.
		utils.ErrorResponse(w, http.StatusNotFound, "Order not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": models.OrderStatusCancelled}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order models.Order
	err = oc.OrderCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.ErrorResponse(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.ErrorResponse(w, http.StatusInternalServerError, "Error cancelling order")
		return
	}

	utils.JSONResponse(w, http.StatusOK, map[string]any{
		"message": "Order cancelled",
		"order":   order,
	})
}

func (oc *OrderController) lookupUser(ctx context.Context, cache map[primitive.ObjectID]*models.User, id primitive.ObjectID) (*models.User, error) {
	if user, ok := cache[id]; ok {
		return user, nil
	}
	var user models.User
	err := oc.UserCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			cache[id] = nil
			return nil, nil
		}
		return nil, err
	}
	cache[id] = &user
	return &user, nil
}

func (oc *OrderController) lookupProduct(ctx context.Context, cache map[primitive.ObjectID]*models.Product, id primitive.ObjectID) (*models.Product, error) {
	if product, ok := cache[id]; ok {
		return product, nil
	}
	var product models.Product
	err := oc.ProductCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			cache[id] = nil
			return nil, nil
		}
		return nil, err
	}
	cache[id] = &product
	return &product, nil
}
