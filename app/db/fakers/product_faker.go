package fakers

import (
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"github.com/ssapkota/hamropasal/app/models"
	"github.com/ssapkota/hamropasal/app/utils/calc"
)

var sampleImages = []string{
	"/images/products/sample1.jpg",
	"/images/products/sample2.jpg",
	"/images/products/sample3.jpg",
}

// ProductFaker builds one product under the given subcategory. Price
// is derived the same way the repository derives it on writes.
func ProductFaker(category *models.Category, subCategory *models.SubCategory) *models.Product {
	name := faker.Word() + " " + faker.Word()

	productID := uuid.New().String()
	markPrice := decimal.NewFromInt(int64(rand.Intn(20000) + 500))
	discount := decimal.NewFromInt(int64(rand.Intn(40)))

	numImages := rand.Intn(3) + 1
	images := make([]models.ProductImage, numImages)
	for i := range images {
		images[i] = models.ProductImage{
			ID:        uuid.New().String(),
			ProductID: productID,
			Path:      sampleImages[rand.Intn(len(sampleImages))],
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
	}

	return &models.Product{
		ID:               productID,
		Name:             name,
		Slug:             slug.Make(name + "-" + uuid.NewString()[:6]),
		CategoryID:       category.ID,
		SubCategoryID:    subCategory.ID,
		ShortDescription: faker.Sentence(),
		Description:      faker.Paragraph(),
		Image:            sampleImages[rand.Intn(len(sampleImages))],
		ProductImages:    images,
		MarkPrice:        markPrice,
		DiscountPercent:  discount,
		Price:            calc.SellingPrice(markPrice, discount),
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
}

// CategoryFaker builds a category with a couple of subcategories.
func CategoryFaker() *models.Category {
	categoryID := uuid.New().String()

	subCount := rand.Intn(3) + 2
	subs := make([]models.SubCategory, subCount)
	for i := range subs {
		subs[i] = models.SubCategory{
			ID:         uuid.New().String(),
			Title:      faker.Word() + " " + uuid.NewString()[:4],
			CategoryID: categoryID,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
	}

	return &models.Category{
		ID:            categoryID,
		Title:         faker.Word() + " " + uuid.NewString()[:4],
		SubCategories: subs,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}
