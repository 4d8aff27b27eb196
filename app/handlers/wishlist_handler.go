package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ssapkota/hamropasal/app/helpers"
	"github.com/ssapkota/hamropasal/app/repositories"
	"github.com/ssapkota/hamropasal/app/services"
	"github.com/unrolled/render"
)

type WishlistHandler struct {
	wishlistSvc  *services.WishlistService
	wishlistRepo repositories.WishlistRepository
	productRepo  repositories.ProductRepository
	render       *render.Render
}

func NewWishlistHandler(wishlistSvc *services.WishlistService, wishlistRepo repositories.WishlistRepository, productRepo repositories.ProductRepository, render *render.Render) *WishlistHandler {
	return &WishlistHandler{
		wishlistSvc:  wishlistSvc,
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		render:       render,
	}
}

// List shows the user's wishlist with the linked products.
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)

	entries, err := h.wishlistRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("Wishlist List: failed for user %s: %v", userID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"title":          "My Wishlist",
		"wishlist_items": entries,
		"wishlist_count": len(entries),
	})
}

// Add is idempotent; an existing membership is reported, not
// duplicated. AJAX callers get JSON instead of a redirect.
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)
	productID := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		log.Printf("Wishlist Add: failed to load product %s: %v", productID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.NotFound(w, r)
		return
	}

	created, err := h.wishlistSvc.Add(r.Context(), userID, productID)
	if err != nil {
		log.Printf("Wishlist Add: failed for user %s product %s: %v", userID, productID, err)
		helpers.FlashRedirect(w, r, helpers.Referer(r, "/wishlist/"), "error", "Could not update your wishlist.")
		return
	}

	message := product.Name + " added to your wishlist!"
	if !created {
		message = product.Name + " is already in your wishlist."
	}

	if helpers.IsAjax(r) {
		_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
			"status":  "success",
			"created": created,
			"message": message,
		})
		return
	}

	status := "success"
	if !created {
		status = "info"
	}
	helpers.FlashRedirect(w, r, helpers.Referer(r, "/wishlist/"), status, message)
}

// Remove deletes the membership if present.
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)
	productID := mux.Vars(r)["id"]

	removed, err := h.wishlistSvc.Remove(r.Context(), userID, productID)
	if err != nil {
		log.Printf("Wishlist Remove: failed for user %s product %s: %v", userID, productID, err)
		helpers.FlashRedirect(w, r, "/wishlist/", "error", "Could not update your wishlist.")
		return
	}

	if helpers.IsAjax(r) {
		_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
			"status":  "success",
			"message": "Removed from wishlist",
		})
		return
	}

	if removed {
		helpers.FlashRedirect(w, r, "/wishlist/", "success", "Product removed from your wishlist.")
		return
	}
	helpers.FlashRedirect(w, r, "/wishlist/", "error", "Product not found in your wishlist.")
}

// Toggle flips the membership for the heart icon and reports the
// resulting state.
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, mux.Vars(r)["id"])
}

// ToggleForm is the POST form variant of Toggle, carrying the product
// id in the body instead of the path.
func (h *WishlistHandler) ToggleForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.FlashRedirect(w, r, "/wishlist/", "error", "Could not read the submitted form.")
		return
	}
	productID := r.FormValue("product_id")
	if productID == "" {
		helpers.FlashRedirect(w, r, "/wishlist/", "error", "No product selected.")
		return
	}
	h.toggle(w, r, productID)
}

func (h *WishlistHandler) toggle(w http.ResponseWriter, r *http.Request, productID string) {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)

	inWishlist, err := h.wishlistSvc.Toggle(r.Context(), userID, productID)
	if err != nil {
		log.Printf("Wishlist Toggle: failed for user %s product %s: %v", userID, productID, err)
		helpers.FlashRedirect(w, r, helpers.Referer(r, "/wishlist/"), "error", "Could not update your wishlist.")
		return
	}

	message := "Removed from wishlist"
	if inWishlist {
		message = "Added to wishlist"
	}

	if helpers.IsAjax(r) {
		_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
			"status":      "success",
			"in_wishlist": inWishlist,
			"message":     message,
		})
		return
	}

	helpers.FlashRedirect(w, r, helpers.Referer(r, "/wishlist/"), "success", message)
}
