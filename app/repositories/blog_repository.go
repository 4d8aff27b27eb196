package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/ssapkota/hamropasal/app/models"
	"gorm.io/gorm"
)

// BlogFilter narrows the published-post listing; every predicate is
// optional.
type BlogFilter struct {
	CategoryID string
	TagSlug    string
	Search     string
}

type BlogRepository interface {
	GetPublishedPaginated(ctx context.Context, filter BlogFilter, limit, offset int) ([]models.BlogPost, int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	IncrementViews(ctx context.Context, postID string) error
	GetCategoriesWithCounts(ctx context.Context) ([]models.BlogCategory, error)
	GetRecent(ctx context.Context, limit int) ([]models.BlogPost, error)
	GetFeatured(ctx context.Context, limit int) ([]models.BlogPost, error)
	GetPopularTags(ctx context.Context, limit int) ([]models.Tag, error)
	CreatePost(ctx context.Context, post *models.BlogPost) error
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db}
}

func (r *blogRepository) published(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.BlogPost{}).Where("is_published = ?", true)
}

func (r *blogRepository) applyFilter(tx *gorm.DB, filter BlogFilter) *gorm.DB {
	if filter.CategoryID != "" {
		tx = tx.Where("category_id = ?", filter.CategoryID)
	}
	if filter.TagSlug != "" {
		tx = tx.
			Joins("JOIN blog_post_tags ON blog_post_tags.blog_post_id = blog_posts.id").
			Joins("JOIN tags ON tags.id = blog_post_tags.tag_id").
			Where("tags.slug = ?", filter.TagSlug)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where("LOWER(blog_posts.title) LIKE ? OR LOWER(blog_posts.content) LIKE ?", pattern, pattern)
	}
	return tx
}

func (r *blogRepository) GetPublishedPaginated(ctx context.Context, filter BlogFilter, limit, offset int) ([]models.BlogPost, int64, error) {
	var posts []models.BlogPost
	var total int64

	if err := r.applyFilter(r.published(ctx), filter).
		Distinct("blog_posts.id").
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.applyFilter(r.published(ctx), filter).
		Distinct("blog_posts.*").
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Order("blog_posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error

	return posts, total, err
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Preload("Comments", "is_approved = ?", true).
		Preload("Comments.Author").
		Where("slug = ? AND is_published = ?", slug, true).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// IncrementViews bumps the counter in one statement so concurrent
// detail fetches do not lose counts.
func (r *blogRepository) IncrementViews(ctx context.Context, postID string) error {
	return r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("id = ?", postID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *blogRepository) GetCategoriesWithCounts(ctx context.Context) ([]models.BlogCategory, error) {
	var categories []models.BlogCategory
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	type catCount struct {
		CategoryID string
		Count      int64
	}
	var counts []catCount
	if err := r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Select("category_id, COUNT(*) AS count").
		Where("is_published = ? AND category_id IS NOT NULL", true).
		Group("category_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	countByID := make(map[string]int64, len(counts))
	for _, c := range counts {
		countByID[c.CategoryID] = c.Count
	}
	for i := range categories {
		categories[i].PostCount = countByID[categories[i].ID]
	}
	return categories, nil
}

func (r *blogRepository) GetRecent(ctx context.Context, limit int) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.published(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *blogRepository) GetFeatured(ctx context.Context, limit int) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.published(ctx).
		Where("is_featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *blogRepository) GetPopularTags(ctx context.Context, limit int) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.WithContext(ctx).
		Model(&models.Tag{}).
		Select("tags.*, COUNT(blog_post_tags.blog_post_id) AS post_count").
		Joins("LEFT JOIN blog_post_tags ON blog_post_tags.tag_id = tags.id").
		Group("tags.id").
		Order("post_count DESC").
		Limit(limit).
		Find(&tags).Error
	return tags, err
}

func (r *blogRepository) CreatePost(ctx context.Context, post *models.BlogPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}
