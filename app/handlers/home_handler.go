package handlers

import (
	"log"
	"net/http"

	"github.com/ssapkota/hamropasal/app/helpers"
	"github.com/ssapkota/hamropasal/app/repositories"
	"github.com/unrolled/render"
)

const (
	catalogPageSize  = 9
	recommendedCount = 12
)

type HomeHandler struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	offerRepo    repositories.OfferRepository
	render       *render.Render
}

func NewHomeHandler(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, offerRepo repositories.OfferRepository, render *render.Render) *HomeHandler {
	return &HomeHandler{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		offerRepo:    offerRepo,
		render:       render,
	}
}

// Index serves the catalog: active offers, the category sidebar,
// recommended products, and the product listing narrowed by the
// optional subcategory and price-range filters.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := repositories.CatalogFilter{
		SubCategoryID: query.Get("subcategory"),
		MinPrice:      helpers.ParsePriceBound(query.Get("min")),
		MaxPrice:      helpers.ParsePriceBound(query.Get("max")),
	}
	page := helpers.ParsePage(query.Get("page"))
	offset := (page - 1) * catalogPageSize

	products, total, err := h.productRepo.GetPaginated(r.Context(), filter, catalogPageSize, offset)
	if err != nil {
		log.Printf("Index: failed to load products: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	offers, err := h.offerRepo.GetActive(r.Context())
	if err != nil {
		log.Printf("Index: failed to load offers: %v", err)
	}

	categories, err := h.categoryRepo.GetAllWithCounts(r.Context())
	if err != nil {
		log.Printf("Index: failed to load categories: %v", err)
	}

	recommended, err := h.productRepo.GetRecommended(r.Context(), recommendedCount)
	if err != nil {
		log.Printf("Index: failed to load recommended products: %v", err)
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"title":       "Hamro Pasal",
		"offers":      offers,
		"categories":  categories,
		"recommended": recommended,
		"products":    products,
		"pagination":  helpers.Paginate(total, page, catalogPageSize),
		"cart_count":  r.Context().Value(helpers.CartCountKey),
	})
}
