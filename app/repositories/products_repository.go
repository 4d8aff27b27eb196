package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ssapkota/hamropasal/app/models"
	"github.com/ssapkota/hamropasal/app/utils/calc"
	"gorm.io/gorm"
)

// CatalogFilter is a conjunction of independently-optional predicates:
// subcategory equality plus an open or closed price range. A nil bound
// means the predicate is not applied.
type CatalogFilter struct {
	SubCategoryID string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
}

type ProductRepository interface {
	GetPaginated(ctx context.Context, filter CatalogFilter, limit, offset int) ([]models.Product, int64, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetRecommended(ctx context.Context, limit int) ([]models.Product, error)
	Search(ctx context.Context, keyword string) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db}
}

func (p *productRepository) applyFilter(tx *gorm.DB, filter CatalogFilter) *gorm.DB {
	if filter.SubCategoryID != "" {
		tx = tx.Where("sub_category_id = ?", filter.SubCategoryID)
	}
	if filter.MinPrice != nil {
		tx = tx.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		tx = tx.Where("price <= ?", filter.MaxPrice)
	}
	return tx
}

func (p *productRepository) GetPaginated(ctx context.Context, filter CatalogFilter, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	if err := p.applyFilter(p.db.WithContext(ctx).Model(&models.Product{}), filter).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := p.applyFilter(p.db.WithContext(ctx), filter).
		Preload("Category").
		Preload("SubCategory").
		Preload("ProductImages").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("SubCategory").
		Preload("ProductImages").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("SubCategory").
		Preload("ProductImages").
		Where("slug = ?", slug).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetRecommended(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("ProductImages").
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// Search matches a case-insensitive substring across product name,
// short description, category title and subcategory title, de-duped.
func (p *productRepository) Search(ctx context.Context, keyword string) ([]models.Product, error) {
	var products []models.Product
	pattern := "%" + strings.ToLower(keyword) + "%"

	err := p.db.WithContext(ctx).
		Distinct("products.*").
		Joins("JOIN categories ON categories.id = products.category_id").
		Joins("JOIN sub_categories ON sub_categories.id = products.sub_category_id").
		Where(
			"LOWER(products.name) LIKE ? OR LOWER(products.short_description) LIKE ? OR LOWER(categories.title) LIKE ? OR LOWER(sub_categories.title) LIKE ?",
			pattern, pattern, pattern, pattern,
		).
		Preload("ProductImages").
		Find(&products).Error

	return products, err
}

// Create recomputes the derived price before the row is written.
func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	product.Price = calc.SellingPrice(product.MarkPrice, product.DiscountPercent)
	return p.db.WithContext(ctx).Create(product).Error
}

// Update recomputes the derived price before the row is written.
func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	product.Price = calc.SellingPrice(product.MarkPrice, product.DiscountPercent)
	return p.db.WithContext(ctx).Save(product).Error
}
