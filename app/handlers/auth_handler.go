package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ssapkota/hamropasal/app/helpers"
	"github.com/ssapkota/hamropasal/app/models"
	"github.com/ssapkota/hamropasal/app/repositories"
	"github.com/ssapkota/hamropasal/app/utils/sessions"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	userRepo     repositories.UserRepository
	sessionStore sessions.SessionStore
	render       *render.Render
	validator    *validator.Validate
}

func NewAuthHandler(userRepo repositories.UserRepository, sessionStore sessions.SessionStore, render *render.Render, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{
		userRepo:     userRepo,
		sessionStore: sessionStore,
		render:       render,
		validator:    validate,
	}
}

type RegisterForm struct {
	Username        string `form:"username" validate:"required,min=3,max=100"`
	FirstName       string `form:"first_name" validate:"required"`
	LastName        string `form:"last_name" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=8"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// RegisterPage serves the registration form shell.
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"title": "Register",
	})
}

// Register creates the account. Username and email must both be
// unique; either collision sends the user back with the form intact.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.FlashRedirect(w, r, "/register/", "error", "Could not read the submitted form.")
		return
	}

	form := RegisterForm{
		Username:        strings.TrimSpace(r.FormValue("username")),
		FirstName:       strings.TrimSpace(r.FormValue("first_name")),
		LastName:        strings.TrimSpace(r.FormValue("last_name")),
		Email:           strings.TrimSpace(r.FormValue("email")),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}

	if err := h.validator.Struct(form); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			helpers.FlashRedirect(w, r, "/register/", "error", helpers.JoinValidationErrors(validationErrs))
			return
		}
		helpers.FlashRedirect(w, r, "/register/", "error", "Please correct the errors in the form.")
		return
	}

	existing, err := h.userRepo.FindByUsername(r.Context(), form.Username)
	if err != nil {
		log.Printf("Register: username lookup failed: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		helpers.FlashRedirect(w, r, "/register/", "error", "That username is already taken.")
		return
	}

	existing, err = h.userRepo.FindByEmail(r.Context(), form.Email)
	if err != nil {
		log.Printf("Register: email lookup failed: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		helpers.FlashRedirect(w, r, "/register/", "error", "An account with that email already exists.")
		return
	}

	hashed := helpers.HashPassword(form.Password)
	if hashed == "" {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Username:  form.Username,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  hashed,
	}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		log.Printf("Register: failed to create user: %v", err)
		helpers.FlashRedirect(w, r, "/register/", "error", "Could not create your account. Please try again.")
		return
	}

	helpers.FlashRedirect(w, r, "/login/", "success", "Account created! Please log in.")
}

// LoginPage serves the login form shell.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"title": "Login",
		"next":  r.URL.Query().Get("next"),
	})
}

// Login authenticates by username and starts a session. A failed
// lookup and a bad password produce the same message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.FlashRedirect(w, r, "/login/", "error", "Could not read the submitted form.")
		return
	}

	form := LoginForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
	}
	if err := h.validator.Struct(form); err != nil {
		helpers.FlashRedirect(w, r, "/login/", "error", "Username and password are required.")
		return
	}

	user, err := h.userRepo.FindByUsername(r.Context(), form.Username)
	if err != nil {
		log.Printf("Login: user lookup failed: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if user == nil || !helpers.PasswordCompare(user.Password, []byte(form.Password)) {
		helpers.FlashRedirect(w, r, "/login/", "error", "Invalid username or password.")
		return
	}

	remember := r.FormValue("remember") != ""
	if err := h.sessionStore.SetUserID(w, r, user.ID, remember); err != nil {
		log.Printf("Login: failed to save session: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	next := r.FormValue("next")
	if next == "" || !strings.HasPrefix(next, "/") {
		next = "/"
	}
	helpers.FlashRedirect(w, r, next, "success", "Welcome back, "+user.FirstName+"!")
}

// Logout drops the auth session. The cart session is left alone so the
// cart survives logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		log.Printf("Logout: failed to clear session: %v", err)
	}
	helpers.FlashRedirect(w, r, "/", "success", "You have been logged out.")
}
