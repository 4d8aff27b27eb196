package repositories

import (
	"context"

	"github.com/ssapkota/hamropasal/app/models"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	GetAllWithCounts(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db}
}

// GetAllWithCounts loads the two-level taxonomy and annotates each
// subcategory with its product count for the sidebar.
func (r *categoryRepository) GetAllWithCounts(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Preload("SubCategories").
		Order("title ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}

	type subCount struct {
		SubCategoryID string
		Count         int64
	}
	var counts []subCount
	if err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("sub_category_id, COUNT(*) AS count").
		Group("sub_category_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	countByID := make(map[string]int64, len(counts))
	for _, c := range counts {
		countByID[c.SubCategoryID] = c.Count
	}
	for i := range categories {
		for j := range categories[i].SubCategories {
			sub := &categories[i].SubCategories[j]
			sub.ProductCount = countByID[sub.ID]
		}
	}

	return categories, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}
