// controllers/crypto.go
package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"docushop/models"
	"docushop/utils"
)

// CryptoController handles the singleton crypto-addresses record.
type CryptoController struct {
	Collection *mongo.Collection
}

// NewCryptoController creates a new CryptoController
func NewCryptoController(client *mongo.Client) *CryptoController {
	collection := client.Database(utils.DatabaseName).Collection("crypto_addresses")
	return &CryptoController{
		Collection: collection,
	}
}

// GetAddresses returns the singleton record, creating it with empty fields
// on first read. Repeated reads without an intervening update return
// identical content.
func (cc *CryptoController) GetAddresses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"key": models.CryptoAddressKey}
	update := bson.M{"$setOnInsert": bson.M{
		"key":        models.CryptoAddressKey,
		"bitcoin":    "",
		"ethereum":   "",
		"usdt":       "",
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var addresses models.CryptoAddresses
	if err := cc.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&addresses); err != nil {
		utils.ServerError(w)
		return
	}

	utils.JSONResponse(w, http.StatusOK, addresses)
}

// UpdateAddresses overwrites all three addresses together, creating the
// record if it does not exist yet. There is no partial-field update.
func (cc *CryptoController) UpdateAddresses(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Bitcoin  string `json:"bitcoin"`
		Ethereum string `json:"ethereum"`
		USDT     string `json:"usdt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"key": models.CryptoAddressKey}
	update := bson.M{"$set": bson.M{
		"key":        models.CryptoAddressKey,
		"bitcoin":    input.Bitcoin,
		"ethereum":   input.Ethereum,
		"usdt":       input.USDT,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var addresses models.CryptoAddresses
	if err := cc.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&addresses); err != nil {
		utils.ServerError(w)
		return
	}

	utils.JSONResponse(w, http.StatusOK, map[string]any{
		"message":   "Crypto addresses updated",
		"addresses": addresses,
	})
}
