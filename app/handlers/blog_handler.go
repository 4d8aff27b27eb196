package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ssapkota/hamropasal/app/helpers"
	"github.com/ssapkota/hamropasal/app/repositories"
	"github.com/unrolled/render"
)

const (
	blogPageSize     = 6
	recentPostCount  = 5
	featuredCount    = 3
	popularTagsCount = 10
)

type BlogHandler struct {
	blogRepo repositories.BlogRepository
	render   *render.Render
}

func NewBlogHandler(blogRepo repositories.BlogRepository, render *render.Render) *BlogHandler {
	return &BlogHandler{blogRepo: blogRepo, render: render}
}

// List serves published posts six per page with optional category,
// tag and search filters, plus the sidebar data.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := repositories.BlogFilter{
		CategoryID: query.Get("category"),
		TagSlug:    query.Get("tag"),
		Search:     query.Get("search"),
	}
	page := helpers.ParsePage(query.Get("page"))
	offset := (page - 1) * blogPageSize

	posts, total, err := h.blogRepo.GetPublishedPaginated(r.Context(), filter, blogPageSize, offset)
	if err != nil {
		log.Printf("Blog List: failed to load posts: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	categories, err := h.blogRepo.GetCategoriesWithCounts(r.Context())
	if err != nil {
		log.Printf("Blog List: failed to load categories: %v", err)
	}
	recent, err := h.blogRepo.GetRecent(r.Context(), recentPostCount)
	if err != nil {
		log.Printf("Blog List: failed to load recent posts: %v", err)
	}
	featured, err := h.blogRepo.GetFeatured(r.Context(), featuredCount)
	if err != nil {
		log.Printf("Blog List: failed to load featured posts: %v", err)
	}
	tags, err := h.blogRepo.GetPopularTags(r.Context(), popularTagsCount)
	if err != nil {
		log.Printf("Blog List: failed to load popular tags: %v", err)
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"title":           "Blog",
		"posts":           posts,
		"pagination":      helpers.Paginate(total, page, blogPageSize),
		"blog_categories": categories,
		"recent_posts":    recent,
		"featured_posts":  featured,
		"popular_tags":    tags,
	})
}

// Detail serves one published post by slug and bumps its view count.
func (h *BlogHandler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post, err := h.blogRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("Blog Detail: failed to load post %s: %v", slug, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if post == nil {
		http.NotFound(w, r)
		return
	}

	if err := h.blogRepo.IncrementViews(r.Context(), post.ID); err != nil {
		log.Printf("Blog Detail: failed to increment views for %s: %v", post.ID, err)
	}
	post.Views++

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"title":         post.Title,
		"post":          post,
		"comment_count": len(post.Comments),
	})
}
