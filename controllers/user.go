package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"docushop/models"
	"docushop/utils"
)

// UserController handles registration, login and admin account management.
type UserController struct {
	Collection *mongo.Collection
}

// NewUserController creates a new UserController
func NewUserController(client *mongo.Client) *UserController {
	collection := client.Database(utils.DatabaseName).Collection("users")
	return &UserController{
		Collection: collection,
	}
}

// Register handles user registration
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
		Username  string `json:"username"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Password  string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.Firstname == "" || input.Lastname == "" || input.Username == "" ||
		input.Email == "" || input.Phone == "" || input.Password == "" {
		utils.ErrorResponse(w, http.StatusBadRequest, "All fields are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Check both unique fields in one query. The unique indexes still back
	// this up if two registrations race past the check.
	count, err := uc.Collection.CountDocuments(ctx, bson.M{"$or": []bson.M{
		{"email": input.Email},
		{"username": input.Username},
	}})
	if err != nil {
		utils.ServerError(w)
		return
	}
	if count > 0 {
		utils.ErrorResponse(w, http.StatusBadRequest, "Email or username already exists")
		return
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.ServerError(w)
		return
	}

	user := models.User{
		Firstname: input.Firstname,
		Lastname:  input.Lastname,
		Username:  input.Username,
		Email:     input.Email,
		Phone:     input.Phone,
		Password:  hashedPassword,
		Role:      "user",
		Status:    "active",
	}

	result, err := uc.Collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.ErrorResponse(w, http.StatusBadRequest, "Email or username already exists")
			return
		}
		utils.ServerError(w)
		return
	}

	utils.JSONResponse(w, http.StatusOK, map[string]any{
		"message": "Registration successful",
		"user": models.PublicUser{
			ID:       result.InsertedID.(primitive.ObjectID),
			Email:    user.Email,
			Username: user.Username,
		},
	})
}

// Login handles user authentication
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if creds.Email == "" || creds.Password == "" {
		utils.ErrorResponse(w, http.StatusBadRequest, "Email and password required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	err := uc.Collection.FindOne(ctx, bson.M{"email": creds.Email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.ErrorResponse(w, http.StatusBadRequest, "User not found")
			return
		}
		utils.ServerError(w)
		return
	}

	if !utils.CheckPasswordHash(creds.Password, user.Password) {
		utils.ErrorResponse(w, http.StatusBadRequest, "Incorrect password")
		return
	}
	if user.Status != "active" {
		utils.ErrorResponse(w, http.StatusForbidden, "Account not active")
		return
	}

	utils.JSONResponse(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user": models.PublicUser{
			ID:       user.ID,
			Email:    user.Email,
			Username: user.Username,
			Role:     user.Role,
			Status:   user.Status,
		},
	})
}

// UpdateAdmin overwrites the admin account's login details. The password
// goes through the same bcrypt path as registration.
func (uc *UserController) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.ErrorResponse(w, http.StatusBadRequest, "Email and password required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var admin models.User
	err := uc.Collection.FindOne(ctx, bson.M{"role": "admin"}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.ErrorResponse(w, http.StatusNotFound, "Admin user not found")
			return
		}
		utils.ServerError(w)
		return
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.ServerError(w)
		return
	}

	_, err = uc.Collection.UpdateOne(ctx, bson.M{"_id": admin.ID}, bson.M{
		"$set": bson.M{
			"email":    input.Email,
			"password": hashedPassword,
		},
	})
	if err != nil {
		utils.ServerError(w)
		return
	}

	utils.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Admin login details updated",
	})
}

// CreateAdmin bootstraps the single admin account. Fields default to fixed
// literals when omitted; a second admin is never created.
func (uc *UserController) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	input := struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "admin123",
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil && !errors.Is(err, io.EOF) {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	count, err := uc.Collection.CountDocuments(ctx, bson.M{"role": "admin"})
	if err != nil {
		utils.ServerError(w)
		return
	}
	if count > 0 {
		utils.ErrorResponse(w, http.StatusBadRequest, "Admin user already exists")
		return
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.ServerError(w)
		return
	}

	admin := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashedPassword,
		Role:     "admin",
		Status:   "active",
	}

	result, err := uc.Collection.InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.ErrorResponse(w, http.StatusBadRequest, "Admin user already exists")
			return
		}
		utils.ServerError(w)
		return
	}

	utils.JSONResponse(w, http.StatusOK, map[string]any{
		"message": "Admin user created",
		"admin": models.PublicUser{
			ID:       result.InsertedID.(primitive.ObjectID),
			Email:    admin.Email,
			Username: admin.Username,
		},
	})
}
