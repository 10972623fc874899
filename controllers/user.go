package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"go-storefront/models"
	"go-storefront/store"
	"go-storefront/utils"

	"golang.org/x/crypto/bcrypt"
)

// UserStore is the account persistence the controller depends on
type UserStore interface {
	Insert(ctx context.Context, user *models.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
}

// outcomeResponse reports a business outcome. Alert is true on success;
// rejected outcomes (duplicate email, unknown email, bad credentials) are
// still HTTP 200 — clients read the flag, not the status code.
type outcomeResponse struct {
	Message string             `json:"message"`
	Alert   bool               `json:"alert"`
	Data    *models.PublicUser `json:"data,omitempty"`
}

// UserController handles signup, login and the user listing
type UserController struct {
	Store        UserStore
	EmailService *utils.EmailService
}

// NewUserController creates a new UserController. emailService may be nil,
// in which case no signup email is sent.
func NewUserController(userStore UserStore, emailService *utils.EmailService) *UserController {
	return &UserController{
		Store:        userStore,
		EmailService: emailService,
	}
}

type signUpRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// SignUp registers a new account. Duplicate emails are a normal rejected
// outcome, not an error.
func (uc *UserController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		writeOutcome(w, http.StatusOK, outcomeResponse{Message: "Passwords do not match", Alert: false})
		return
	}

	// Check if the email is already registered
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = uc.Store.FindByEmail(ctx, req.Email)
	if err == nil {
		writeOutcome(w, http.StatusOK, outcomeResponse{Message: "Email id is already registered", Alert: false})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		writeOutcome(w, http.StatusInternalServerError, outcomeResponse{Message: "Internal server error", Alert: false})
		return
	}

	// Hash the password; the plaintext is never persisted
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Error hashing password", http.StatusInternalServerError)
		return
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashedPassword),
	}
	_, err = uc.Store.Insert(ctx, &user)
	if err != nil {
		writeOutcome(w, http.StatusInternalServerError, outcomeResponse{Message: "Internal server error", Alert: false})
		return
	}

	if uc.EmailService != nil {
		go func(email, firstName string) {
			if err := uc.EmailService.SendWelcomeEmail(email, firstName); err != nil {
				log.Printf("welcome email to %s failed: %v", email, err)
			}
		}(user.Email, user.FirstName)
	}

	writeOutcome(w, http.StatusOK, outcomeResponse{Message: "Successfully signed up", Alert: true})
}

// LogIn authenticates by email and password and returns the reduced profile
func (uc *UserController) LogIn(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	err := json.NewDecoder(r.Body).Decode(&creds)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if creds.Email == "" || creds.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	user, err := uc.Store.FindByEmail(ctx, creds.Email)
	if errors.Is(err, store.ErrNotFound) {
		writeOutcome(w, http.StatusOK, outcomeResponse{Message: "Email is not available, please sign up", Alert: false})
		return
	}
	if err != nil {
		writeOutcome(w, http.StatusInternalServerError, outcomeResponse{Message: "Internal server error", Alert: false})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		writeOutcome(w, http.StatusOK, outcomeResponse{Message: "Invalid email or password", Alert: false})
		return
	}

	profile := user.Public()
	writeOutcome(w, http.StatusOK, outcomeResponse{Message: "Successfully logged in", Alert: true, Data: &profile})
}

// ListUsers returns every registered user. Credential fields are excluded
// from serialization by the model.
func (uc *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users, err := uc.Store.FindAll(ctx)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

func writeOutcome(w http.ResponseWriter, status int, resp outcomeResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// writeMessage answers with a bare {"message": ...} body
func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
