package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/ssapkota/hamropasal/app/helpers"
	"github.com/ssapkota/hamropasal/app/models"
	"github.com/ssapkota/hamropasal/app/repositories"
	"github.com/ssapkota/hamropasal/app/services"
	"github.com/ssapkota/hamropasal/app/utils/format"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	productRepo repositories.ProductRepository
	reviewRepo  repositories.ReviewRepository
	reviewSvc   *services.ReviewService
	render      *render.Render
	validator   *validator.Validate
}

func NewProductHandler(productRepo repositories.ProductRepository, reviewRepo repositories.ReviewRepository, reviewSvc *services.ReviewService, render *render.Render, validate *validator.Validate) *ProductHandler {
	return &ProductHandler{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		reviewSvc:   reviewSvc,
		render:      render,
		validator:   validate,
	}
}

type ReviewForm struct {
	Rating   int    `form:"rating" validate:"required,gte=1,lte=5"`
	Feedback string `form:"feedback" validate:"required"`
}

// Detail serves the product page: the product itself, its reviews,
// and the rating aggregate with the star breakdown.
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("Detail: failed to load product %s: %v", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.NotFound(w, r)
		return
	}

	reviews, err := h.reviewRepo.GetByProductID(r.Context(), product.ID)
	if err != nil {
		log.Printf("Detail: failed to load reviews for product %s: %v", product.ID, err)
	}

	summary, err := h.reviewSvc.Aggregate(r.Context(), product.ID)
	if err != nil {
		log.Printf("Detail: failed to aggregate reviews for product %s: %v", product.ID, err)
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"title":         product.Name,
		"product":       product,
		"price_display": format.Rupee(product.Price),
		"reviews":       reviewRows(reviews),
		"review_count":  summary.Count,
		"average":       summary.Average,
		"stars":         summary.Stars,
	})
}

// reviewRows strips each review down to its public fields: the page
// shows who said what, not the reviewer's account record.
func reviewRows(reviews []models.Review) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(reviews))
	for _, review := range reviews {
		reviewer := ""
		if review.User != nil {
			reviewer = review.User.FirstName + " " + review.User.LastName
		}
		rows = append(rows, map[string]interface{}{
			"id":         review.ID,
			"rating":     review.Rating,
			"feedback":   review.Feedback,
			"reviewer":   reviewer,
			"created_at": review.CreatedAt,
		})
	}
	return rows
}

// SubmitReview handles the review POST on the product page. The route
// is auth-gated; validation and the one-review-per-user rule live in
// the review service.
func (h *ProductHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	detailURL := "/product_detail/" + id

	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)

	if err := r.ParseForm(); err != nil {
		helpers.FlashRedirect(w, r, detailURL, "error", "Could not read the submitted form.")
		return
	}

	rating, err := strconv.Atoi(r.FormValue("rating"))
	if err != nil {
		helpers.FlashRedirect(w, r, detailURL, "error", "Rating must be a number from 1 to 5.")
		return
	}

	form := ReviewForm{Rating: rating, Feedback: r.FormValue("feedback")}
	if err := h.validator.Struct(form); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			helpers.FlashRedirect(w, r, detailURL, "error", helpers.JoinValidationErrors(validationErrs))
			return
		}
		helpers.FlashRedirect(w, r, detailURL, "error", "Please correct the errors in your review.")
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("SubmitReview: failed to load product %s: %v", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.NotFound(w, r)
		return
	}

	_, err = h.reviewSvc.Submit(r.Context(), userID, product.ID, form.Rating, form.Feedback)
	switch {
	case errors.Is(err, services.ErrDuplicateReview):
		helpers.FlashRedirect(w, r, detailURL, "warning", "You have already reviewed this product.")
	case errors.Is(err, services.ErrRatingOutOfRange), errors.Is(err, services.ErrFeedbackRequired):
		helpers.FlashRedirect(w, r, detailURL, "error", "Please correct the errors in your review.")
	case err != nil:
		log.Printf("SubmitReview: failed to submit review for product %s: %v", product.ID, err)
		helpers.FlashRedirect(w, r, detailURL, "error", "Could not save your review. Please try again.")
	default:
		helpers.FlashRedirect(w, r, detailURL, "success", "Your review has been successfully posted!")
	}
}
