package handlers

import (
	"net/http"
	"strings"

	"github.com/ssapkota/hamropasal/app/helpers"
	"github.com/unrolled/render"
)

type PagesHandler struct {
	render *render.Render
}

func NewPagesHandler(render *render.Render) *PagesHandler {
	return &PagesHandler{render: render}
}

func (h *PagesHandler) About(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"title": "About Us",
	})
}

func (h *PagesHandler) ContactPage(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"title": "Contact Us",
	})
}

// Contact acknowledges the message. Delivery of the message itself is
// out of scope, only the confirmation flow exists.
func (h *PagesHandler) Contact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.FlashRedirect(w, r, "/contact/", "error", "Could not read the submitted form.")
		return
	}

	if strings.TrimSpace(r.FormValue("message")) == "" {
		helpers.FlashRedirect(w, r, "/contact/", "error", "Please write a message before sending.")
		return
	}

	helpers.FlashRedirect(w, r, "/contact/", "success", "Thank you! We'll reply within 1 hour.")
}
