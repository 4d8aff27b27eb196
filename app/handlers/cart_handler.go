package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ssapkota/hamropasal/app/helpers"
	"github.com/ssapkota/hamropasal/app/models"
	"github.com/ssapkota/hamropasal/app/repositories"
	"github.com/ssapkota/hamropasal/app/utils/format"
	"github.com/ssapkota/hamropasal/app/utils/sessions"
	"github.com/unrolled/render"
)

const cartDetailURL = "/cart/cart-detail/"

type CartHandler struct {
	productRepo repositories.ProductRepository
	cartStore   sessions.CartStore
	render      *render.Render
}

func NewCartHandler(productRepo repositories.ProductRepository, cartStore sessions.CartStore, render *render.Render) *CartHandler {
	return &CartHandler{
		productRepo: productRepo,
		cartStore:   cartStore,
		render:      render,
	}
}

func (h *CartHandler) addOne(w http.ResponseWriter, r *http.Request, redirectTo string) {
	productID := mux.Vars(r)["id"]
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		log.Printf("CartHandler: failed to load product %s: %v", productID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.NotFound(w, r)
		return
	}

	if _, err := h.cartStore.Update(w, r, func(cart *models.Cart) error {
		cart.Add(userID, product)
		return nil
	}); err != nil {
		log.Printf("CartHandler: failed to update cart: %v", err)
		helpers.FlashRedirect(w, r, redirectTo, "error", "Could not update your cart.")
		return
	}

	helpers.FlashRedirect(w, r, redirectTo, "success", product.Name+" added to your cart.")
}

// Add puts one unit in the cart from a listing page.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	h.addOne(w, r, "/")
}

// Increment is Add invoked from the cart page itself.
func (h *CartHandler) Increment(w http.ResponseWriter, r *http.Request) {
	h.addOne(w, r, cartDetailURL)
}

// Decrement lowers the quantity by one, dropping the line at zero.
// A missing line is a safe no-op.
func (h *CartHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	if _, err := h.cartStore.Update(w, r, func(cart *models.Cart) error {
		cart.Decrement(productID)
		return nil
	}); err != nil {
		log.Printf("CartHandler: failed to decrement cart item: %v", err)
		helpers.FlashRedirect(w, r, cartDetailURL, "error", "Could not update your cart.")
		return
	}

	http.Redirect(w, r, cartDetailURL, http.StatusSeeOther)
}

// ItemClear removes the whole line regardless of quantity.
func (h *CartHandler) ItemClear(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	if _, err := h.cartStore.Update(w, r, func(cart *models.Cart) error {
		cart.Remove(productID)
		return nil
	}); err != nil {
		log.Printf("CartHandler: failed to remove cart item: %v", err)
		helpers.FlashRedirect(w, r, cartDetailURL, "error", "Could not update your cart.")
		return
	}

	http.Redirect(w, r, cartDetailURL, http.StatusSeeOther)
}

// CartClear empties the whole mapping.
func (h *CartHandler) CartClear(w http.ResponseWriter, r *http.Request) {
	if _, err := h.cartStore.Update(w, r, func(cart *models.Cart) error {
		cart.Clear()
		return nil
	}); err != nil {
		log.Printf("CartHandler: failed to clear cart: %v", err)
		helpers.FlashRedirect(w, r, cartDetailURL, "error", "Could not clear your cart.")
		return
	}

	http.Redirect(w, r, cartDetailURL, http.StatusSeeOther)
}

// Detail renders the cart with per-line and grand totals.
func (h *CartHandler) Detail(w http.ResponseWriter, r *http.Request) {
	cart := h.cartStore.Get(r)

	lines := make([]map[string]interface{}, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, map[string]interface{}{
			"product_id":    line.ProductID,
			"name":          line.Name,
			"quantity":      line.Qty,
			"price":         line.Price,
			"price_display": format.Rupee(line.Price),
			"image":         line.Image,
			"line_total":    line.LineTotal(),
			"total_display": format.Rupee(line.LineTotal()),
		})
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"title":         "Shopping Cart",
		"lines":         lines,
		"item_count":    cart.ItemCount(),
		"total":         cart.Total(),
		"total_display": format.Rupee(cart.Total()),
	})
}
