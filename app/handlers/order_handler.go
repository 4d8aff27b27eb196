package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/ssapkota/hamropasal/app/helpers"
	"github.com/ssapkota/hamropasal/app/models"
	"github.com/ssapkota/hamropasal/app/repositories"
	"github.com/ssapkota/hamropasal/app/services"
	"github.com/ssapkota/hamropasal/app/utils/format"
	"github.com/ssapkota/hamropasal/app/utils/sessions"
	"github.com/unrolled/render"
)

const myOrderURL = "/my_order/"

type OrderHandler struct {
	orderSvc  *services.OrderService
	orderRepo repositories.OrderRepository
	cartStore sessions.CartStore
	render    *render.Render
}

func NewOrderHandler(orderSvc *services.OrderService, orderRepo repositories.OrderRepository, cartStore sessions.CartStore, render *render.Render) *OrderHandler {
	return &OrderHandler{
		orderSvc:  orderSvc,
		orderRepo: orderRepo,
		cartStore: cartStore,
		render:    render,
	}
}

// List shows the user's orders newest first.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)

	orders, err := h.orderRepo.FindByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("Order List: failed for user %s: %v", userID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	rows := make([]map[string]interface{}, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, map[string]interface{}{
			"order":         order,
			"total_display": format.Rupee(order.Total),
		})
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"title":  "My Orders",
		"orders": rows,
	})
}

// Place turns the session cart into order rows. Running inside the
// cart store's update keeps the session write tied to a successful
// commit; a failed transaction leaves the cart cookie untouched.
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)
	user, _ := r.Context().Value(helpers.ContextKeyUser).(*models.User)

	if err := r.ParseForm(); err != nil {
		helpers.FlashRedirect(w, r, cartDetailURL, "error", "Could not read the submitted form.")
		return
	}

	phone := strings.TrimSpace(r.FormValue("phone"))
	address := strings.TrimSpace(r.FormValue("address"))
	if user != nil {
		if phone == "" {
			phone = user.Phone
		}
		if address == "" {
			address = user.StreetAddress
		}
	}
	if phone == "" || address == "" {
		helpers.FlashRedirect(w, r, cartDetailURL, "error", "Phone and delivery address are required.")
		return
	}

	_, err := h.cartStore.Update(w, r, func(cart *models.Cart) error {
		_, err := h.orderSvc.PlaceOrder(r.Context(), userID, cart, phone, address)
		return err
	})
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		helpers.FlashRedirect(w, r, cartDetailURL, "warning", "Your cart is empty.")
		return
	case err != nil:
		log.Printf("Order Place: failed for user %s: %v", userID, err)
		helpers.FlashRedirect(w, r, cartDetailURL, "error", "Could not place your order. Please try again.")
		return
	}

	helpers.FlashRedirect(w, r, myOrderURL, "success", "Your order has been placed and is awaiting payment.")
}
