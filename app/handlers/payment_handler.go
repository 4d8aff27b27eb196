package handlers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/ssapkota/hamropasal/app/helpers"
	"github.com/ssapkota/hamropasal/app/models"
	"github.com/ssapkota/hamropasal/app/repositories"
	"github.com/ssapkota/hamropasal/app/services"
	"github.com/unrolled/render"
)

type PaymentHandler struct {
	gateway   services.PaymentGateway
	orderRepo repositories.OrderRepository
	render    *render.Render
	appURL    string
}

func NewPaymentHandler(gateway services.PaymentGateway, orderRepo repositories.OrderRepository, render *render.Render, appURL string) *PaymentHandler {
	return &PaymentHandler{
		gateway:   gateway,
		orderRepo: orderRepo,
		render:    render,
		appURL:    appURL,
	}
}

// InitKhalti starts payment for one order and sends the customer to
// the gateway's payment page. The return URL carries the order id so
// the callback can find the row again.
func (h *PaymentHandler) InitKhalti(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)
	orderID := mux.Vars(r)["id"]

	order, err := h.orderRepo.GetByID(r.Context(), orderID)
	if err != nil {
		log.Printf("InitKhalti: failed to load order %s: %v", orderID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if order == nil || order.UserID != userID {
		http.NotFound(w, r)
		return
	}
	if order.PaymentStatus == models.PaymentStatusCompleted {
		helpers.FlashRedirect(w, r, myOrderURL, "info", "This order is already paid.")
		return
	}

	returnURL := h.appURL + "/verify/?order_id=" + url.QueryEscape(order.ID)
	paymentURL, _, err := h.gateway.Initiate(r.Context(), order, returnURL)
	if err != nil {
		log.Printf("InitKhalti: initiation failed for order %s: %v", order.ID, err)
		helpers.FlashRedirect(w, r, myOrderURL, "error", "Could not start the payment. Please try again.")
		return
	}

	http.Redirect(w, r, paymentURL, http.StatusSeeOther)
}

// Verify is the gateway's return callback. The lookup result, not the
// query parameters, decides whether the order is marked paid.
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)

	// Khalti appends pidx to the return URL; order_id is ours.
	orderID := r.FormValue("order_id")
	pidx := r.FormValue("pidx")
	if orderID == "" || pidx == "" {
		helpers.FlashRedirect(w, r, myOrderURL, "error", "Missing payment details.")
		return
	}

	order, err := h.orderRepo.GetByID(r.Context(), orderID)
	if err != nil {
		log.Printf("Verify: failed to load order %s: %v", orderID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if order == nil || order.UserID != userID {
		http.NotFound(w, r)
		return
	}

	result, err := h.gateway.Verify(r.Context(), pidx)
	if err != nil {
		log.Printf("Verify: lookup failed for order %s pidx %s: %v", orderID, pidx, err)
		helpers.FlashRedirect(w, r, myOrderURL, "error", "Could not verify the payment. Please contact support.")
		return
	}

	// A completed payment for the wrong amount does not settle the
	// order; a reused pidx from a cheaper purchase must not mark an
	// expensive order paid.
	paid := result.Success
	if paid && result.AmountPaisa != services.RupeesToPaisa(order.Total) {
		log.Printf("Verify: amount mismatch for order %s: paid %d paisa, order total %d paisa",
			order.ID, result.AmountPaisa, services.RupeesToPaisa(order.Total))
		paid = false
	}

	status := models.PaymentStatusFailed
	if paid {
		status = models.PaymentStatusCompleted
	}
	if err := h.orderRepo.UpdatePayment(r.Context(), order.ID, status, result.TransactionID); err != nil {
		log.Printf("Verify: failed to update order %s: %v", order.ID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if paid {
		helpers.FlashRedirect(w, r, myOrderURL, "success", "Payment successful! Thank you for your purchase.")
		return
	}
	helpers.FlashRedirect(w, r, myOrderURL, "error", "Payment was not completed.")
}
