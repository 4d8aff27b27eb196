package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/ssapkota/hamropasal/app/models"
	"github.com/ssapkota/hamropasal/app/repositories"
	"github.com/unrolled/render"
)

type SearchHandler struct {
	productRepo repositories.ProductRepository
	render      *render.Render
}

func NewSearchHandler(productRepo repositories.ProductRepository, render *render.Render) *SearchHandler {
	return &SearchHandler{productRepo: productRepo, render: render}
}

// Search runs the case-insensitive substring match across names,
// descriptions and taxonomy titles. An empty query returns an empty
// result set rather than everything.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	products := []models.Product{}
	if query != "" {
		var err error
		products, err = h.productRepo.Search(r.Context(), query)
		if err != nil {
			log.Printf("Search: failed for query %q: %v", query, err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"query":    query,
		"products": products,
		"count":    len(products),
	})
}
