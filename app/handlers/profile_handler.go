package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ssapkota/hamropasal/app/helpers"
	"github.com/ssapkota/hamropasal/app/models"
	"github.com/ssapkota/hamropasal/app/repositories"
	"github.com/unrolled/render"
)

type ProfileHandler struct {
	userRepo     repositories.UserRepository
	orderRepo    repositories.OrderRepository
	wishlistRepo repositories.WishlistRepository
	render       *render.Render
	validator    *validator.Validate
}

func NewProfileHandler(userRepo repositories.UserRepository, orderRepo repositories.OrderRepository, wishlistRepo repositories.WishlistRepository, render *render.Render, validate *validator.Validate) *ProfileHandler {
	return &ProfileHandler{
		userRepo:     userRepo,
		orderRepo:    orderRepo,
		wishlistRepo: wishlistRepo,
		render:       render,
		validator:    validate,
	}
}

type ProfileForm struct {
	FirstName     string `form:"first_name" validate:"required"`
	LastName      string `form:"last_name" validate:"required"`
	Email         string `form:"email" validate:"required,email"`
	Phone         string `form:"phone" validate:"max=20"`
	StreetAddress string `form:"street_address" validate:"max=255"`
}

// Dashboard is the account landing page with order and wishlist
// counts.
func (h *ProfileHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if user == nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	orders, err := h.orderRepo.FindByUserID(r.Context(), user.ID)
	if err != nil {
		log.Printf("Dashboard: failed to load orders for %s: %v", user.ID, err)
	}
	wishlist, err := h.wishlistRepo.GetByUserID(r.Context(), user.ID)
	if err != nil {
		log.Printf("Dashboard: failed to load wishlist for %s: %v", user.ID, err)
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"title":          "Dashboard",
		"user":           user,
		"order_count":    len(orders),
		"wishlist_count": len(wishlist),
	})
}

// Show serves the editable profile fields.
func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	user, _ := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if user == nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"title": "My Profile",
		"user":  user,
	})
}

// Update writes the contact fields back. Username and password are not
// editable here.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, _ := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if user == nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		helpers.FlashRedirect(w, r, "/profile/", "error", "Could not read the submitted form.")
		return
	}

	form := ProfileForm{
		FirstName:     strings.TrimSpace(r.FormValue("first_name")),
		LastName:      strings.TrimSpace(r.FormValue("last_name")),
		Email:         strings.TrimSpace(r.FormValue("email")),
		Phone:         strings.TrimSpace(r.FormValue("phone")),
		StreetAddress: strings.TrimSpace(r.FormValue("street_address")),
	}
	if err := h.validator.Struct(form); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			helpers.FlashRedirect(w, r, "/profile/", "error", helpers.JoinValidationErrors(validationErrs))
			return
		}
		helpers.FlashRedirect(w, r, "/profile/", "error", "Please correct the errors in the form.")
		return
	}

	if form.Email != user.Email {
		existing, err := h.userRepo.FindByEmail(r.Context(), form.Email)
		if err != nil {
			log.Printf("Profile Update: email lookup failed: %v", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if existing != nil {
			helpers.FlashRedirect(w, r, "/profile/", "error", "An account with that email already exists.")
			return
		}
	}

	user.FirstName = form.FirstName
	user.LastName = form.LastName
	user.Email = form.Email
	user.Phone = form.Phone
	user.StreetAddress = form.StreetAddress

	if err := h.userRepo.Update(r.Context(), user); err != nil {
		log.Printf("Profile Update: failed for user %s: %v", user.ID, err)
		helpers.FlashRedirect(w, r, "/profile/", "error", "Could not save your profile. Please try again.")
		return
	}

	helpers.FlashRedirect(w, r, "/profile/", "success", "Your profile has been updated.")
}
